package util

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"github.com/Knetic/govaluate"
	"github.com/shopspring/decimal"
)

const floatPlaces = 8

var mathExpression = regexp.MustCompile(`^[0-9+\-*/.() ]+$`)

// EvaluateExpression evaluates an amount typed as arithmetic, such as
// "19.99 * 2" or "$1,200 / 3". The result has at least two decimals and
// keeps any further precision the input carried.
func EvaluateExpression(expr string) (string, error) {
	clean := cleanCurrencyString(expr)
	if clean == "" {
		return "", fmt.Errorf("empty expression")
	}

	if isSimpleNumber(clean) {
		value, err := decimal.NewFromString(clean)
		if err != nil {
			return "", fmt.Errorf("invalid number format")
		}
		return core.FormatAmount(value), nil
	}

	if !mathExpression.MatchString(clean) {
		return "", fmt.Errorf("invalid expression: contains non-mathematical characters")
	}

	expression, err := govaluate.NewEvaluableExpression(clean)
	if err != nil {
		return "", fmt.Errorf("invalid expression: %w", err)
	}
	result, err := expression.Evaluate(nil)
	if err != nil {
		return "", fmt.Errorf("evaluation error: %w", err)
	}

	value, err := toDecimal(result)
	if err != nil {
		return "", err
	}
	return core.FormatAmount(value), nil
}

// EvaluateAmount evaluates expr when it is arithmetic and otherwise returns
// the input unchanged, leaving validation to the ledger.
func EvaluateAmount(expr string) string {
	value, err := EvaluateExpression(expr)
	if err != nil {
		return strings.TrimSpace(expr)
	}
	return value
}

func toDecimal(result any) (decimal.Decimal, error) {
	switch v := result.(type) {
	case float64:
		if math.IsNaN(v) {
			return decimal.Zero, fmt.Errorf("result is not a number (NaN)")
		}
		if math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("result is infinite")
		}
		return trimFloat(decimal.NewFromFloat(v)), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	}
	value, err := decimal.NewFromString(fmt.Sprintf("%v", result))
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not convert result to decimal: %w", err)
	}
	return value, nil
}

// trimFloat drops binary float noise such as 0.1+0.2 = 0.30000000000000004.
func trimFloat(d decimal.Decimal) decimal.Decimal {
	return decimal.RequireFromString(d.Round(floatPlaces).String())
}

// cleanCurrencyString drops currency symbols and thousands separators.
func cleanCurrencyString(s string) string {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// isSimpleNumber expects an already cleaned string.
func isSimpleNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
