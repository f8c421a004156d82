package core

import "github.com/shopspring/decimal"

// CustomerBalance is the running balance of one customer.
type CustomerBalance struct {
	CustomerID string
	Balance    decimal.Decimal
}

// Summary aggregates a ledger: totals per kind, net balance and balances per
// customer in first-appearance order.
type Summary struct {
	Count     int
	Credit    decimal.Decimal
	Debit     decimal.Decimal
	Transfer  decimal.Decimal
	Net       decimal.Decimal
	Customers []CustomerBalance
	Warnings  []string
}

// IsEmpty reports whether the summary was computed over no transactions.
func (s Summary) IsEmpty() bool {
	return s.Count == 0
}

// HasWarnings reports whether unrecognized types were seen.
func (s Summary) HasWarnings() bool {
	return len(s.Warnings) > 0
}

// Balance returns the balance for a customer and whether it was present.
func (s Summary) Balance(customerID string) (decimal.Decimal, bool) {
	for _, c := range s.Customers {
		if c.CustomerID == customerID {
			return c.Balance, true
		}
	}
	return decimal.Zero, false
}

// ByKind lists the per-kind totals in report order.
func (s Summary) ByKind() []KindTotal {
	return []KindTotal{
		{Kind: KindCredit, Total: s.Credit},
		{Kind: KindDebit, Total: s.Debit},
		{Kind: KindTransfer, Total: s.Transfer},
	}
}

// KindTotal pairs a kind with its total.
type KindTotal struct {
	Kind  Kind
	Total decimal.Decimal
}
