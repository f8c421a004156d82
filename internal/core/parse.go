package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrFormat, s)
	}
	return date, nil
}

// ParseAmount parses any decimal amount, signed or not.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", ErrFormat, s)
	}
	return amount, nil
}

// ParsePositiveAmount parses an amount and rejects zero and negative values.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	amount, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrNotPositive, amount.String())
	}
	return amount, nil
}

// NormalizeKind lower-cases and trims a type value without validating it.
func NormalizeKind(s string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(s)))
}

// ParseEntryKind accepts only the kinds a user may enter: credit or debit.
func ParseEntryKind(s string) (Kind, error) {
	kind := NormalizeKind(s)
	switch kind {
	case KindCredit, KindDebit:
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q must be 'credit' or 'debit'", ErrInvalidKind, s)
}

// NewTransaction validates a draft and builds a transaction with the given id.
func NewTransaction(id int, d Draft) (Transaction, error) {
	date, err := ParseDate(d.Date)
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParsePositiveAmount(d.Amount)
	if err != nil {
		return Transaction{}, err
	}
	kind, err := ParseEntryKind(d.Kind)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:          id,
		Date:        date,
		CustomerID:  strings.TrimSpace(d.CustomerID),
		Amount:      amount,
		Kind:        kind,
		Description: strings.TrimSpace(d.Description),
	}, nil
}
