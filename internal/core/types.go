package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical textual form of a transaction date.
const DateLayout = "2006-01-02"

// Kind is the direction of a transaction.
type Kind string

const (
	KindCredit   Kind = "credit"
	KindDebit    Kind = "debit"
	KindTransfer Kind = "transfer"
)

// Transaction represents a single financial event for one customer.
type Transaction struct {
	ID          int             `json:"transaction_id"`
	Date        time.Time       `json:"date"`
	CustomerID  string          `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"` // signed; debit rows read from disk are negative
	Kind        Kind            `json:"type"`
	Description string          `json:"description"`
}

// Draft holds the raw user-entered values for a new transaction.
type Draft struct {
	Date        string
	CustomerID  string
	Amount      string
	Kind        string
	Description string
}

// Magnitude returns the absolute value of the amount. Aggregations take the
// direction from Kind, never from the stored sign.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}

// DateString formats the date in its canonical form.
func (t Transaction) DateString() string {
	return t.Date.Format(DateLayout)
}

// AmountString formats the amount with at least two decimals.
func (t Transaction) AmountString() string {
	return FormatAmount(t.Amount)
}

// String formats the transaction as a numbered-listing line.
func (t Transaction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d, Date: %s, ", t.ID, t.DateString())
	fmt.Fprintf(&b, "Customer ID: %s, Amount: %s, ", t.CustomerID, t.AmountString())
	fmt.Fprintf(&b, "Type: %s, Description: %s", t.Kind, t.Description)
	return b.String()
}

// FormatAmount renders an amount with two decimals, keeping any extra
// precision the value already carries.
func FormatAmount(d decimal.Decimal) string {
	if d.Exponent() < -2 {
		return d.String()
	}
	return d.StringFixed(2)
}
