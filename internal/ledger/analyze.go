package ledger

import (
	"fmt"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"github.com/shopspring/decimal"
)

// Analyze computes per-kind totals, the net balance and per-customer balances
// in a single pass. Amounts are aggregated by magnitude: records loaded from
// disk carry a negative sign for debits while entered records do not, so the
// kind alone decides the direction.
func (l *Ledger) Analyze() core.Summary {
	return Summarize(l.transactions)
}

// Summarize is Analyze over an arbitrary slice of transactions.
func Summarize(transactions []core.Transaction) core.Summary {
	summary := core.Summary{
		Count:    len(transactions),
		Credit:   decimal.Zero,
		Debit:    decimal.Zero,
		Transfer: decimal.Zero,
	}
	customerIndex := make(map[string]int)

	for _, tx := range transactions {
		magnitude := tx.Magnitude()
		kind := core.NormalizeKind(string(tx.Kind))

		switch kind {
		case core.KindCredit:
			summary.Credit = summary.Credit.Add(magnitude)
		case core.KindDebit:
			summary.Debit = summary.Debit.Add(magnitude)
		case core.KindTransfer:
			summary.Transfer = summary.Transfer.Add(magnitude)
		default:
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("Unknown transaction type '%s' encountered (transaction %d).", kind, tx.ID))
		}

		// every non-credit kind reduces the customer's balance
		contribution := magnitude.Neg()
		if kind == core.KindCredit {
			contribution = magnitude
		}
		i, ok := customerIndex[tx.CustomerID]
		if !ok {
			i = len(summary.Customers)
			customerIndex[tx.CustomerID] = i
			summary.Customers = append(summary.Customers, core.CustomerBalance{CustomerID: tx.CustomerID, Balance: decimal.Zero})
		}
		summary.Customers[i].Balance = summary.Customers[i].Balance.Add(contribution)
	}

	summary.Net = summary.Credit.Sub(summary.Debit)
	return summary
}
