// Package ledger holds the in-memory ordered sequence of transactions and the
// operations a user performs on it. It performs no I/O; loading and saving
// live in the store package.
package ledger

import (
	"fmt"
	"strings"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
)

// AffirmativeToken is the only confirmation that lets Delete remove a record.
const AffirmativeToken = "yes"

// Ledger is an ordered collection of transactions.
type Ledger struct {
	transactions []core.Transaction
	dirty        bool
}

// New creates a ledger holding a copy of the given transactions.
func New(transactions ...core.Transaction) *Ledger {
	return &Ledger{transactions: append([]core.Transaction(nil), transactions...)}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Transactions returns a copy of the transactions in display order.
func (l *Ledger) Transactions() []core.Transaction {
	return append([]core.Transaction(nil), l.transactions...)
}

// Get returns the transaction at a 1-based display index.
func (l *Ledger) Get(index int) (core.Transaction, error) {
	if err := l.checkIndex(index); err != nil {
		return core.Transaction{}, err
	}
	return l.transactions[index-1], nil
}

// Replace swaps the whole sequence, as after a successful load.
func (l *Ledger) Replace(transactions []core.Transaction) {
	l.transactions = append([]core.Transaction(nil), transactions...)
	l.dirty = false
}

// Restore swaps the whole sequence with changes that were never saved, such
// as a recovered session; the ledger stays dirty.
func (l *Ledger) Restore(transactions []core.Transaction) {
	l.transactions = append([]core.Transaction(nil), transactions...)
	l.dirty = true
}

// Dirty reports whether the ledger changed since it was loaded or saved.
func (l *Ledger) Dirty() bool {
	return l.dirty
}

// MarkSaved clears the dirty flag after the caller persisted the ledger.
func (l *Ledger) MarkSaved() {
	l.dirty = false
}

// Add validates a draft and appends it with id = Len()+1.
func (l *Ledger) Add(d core.Draft) (core.Transaction, error) {
	tx, err := core.NewTransaction(len(l.transactions)+1, d)
	if err != nil {
		return core.Transaction{}, err
	}
	l.transactions = append(l.transactions, tx)
	l.dirty = true
	return tx, nil
}

// Update overwrites one field of the transaction at a 1-based index. The
// record is left untouched when the index, field or value is invalid.
func (l *Ledger) Update(index int, field, value string) (core.Transaction, error) {
	if err := l.checkIndex(index); err != nil {
		return core.Transaction{}, err
	}
	tx := l.transactions[index-1]

	switch normalizeField(field) {
	case FieldDate:
		date, err := core.ParseDate(value)
		if err != nil {
			return core.Transaction{}, err
		}
		tx.Date = date
	case FieldCustomerID:
		tx.CustomerID = strings.TrimSpace(value)
	case FieldAmount:
		amount, err := core.ParsePositiveAmount(value)
		if err != nil {
			return core.Transaction{}, err
		}
		tx.Amount = amount
	case FieldType:
		kind, err := core.ParseEntryKind(value)
		if err != nil {
			return core.Transaction{}, err
		}
		tx.Kind = kind
	case FieldDescription:
		tx.Description = strings.TrimSpace(value)
	default:
		return core.Transaction{}, fmt.Errorf("%w: %q (want one of %s)", core.ErrInvalidField, field, strings.Join(Fields, ", "))
	}

	l.transactions[index-1] = tx
	l.dirty = true
	return tx, nil
}

// Delete removes the transaction at a 1-based index when confirm is the
// affirmative token. It reports whether the record was removed.
func (l *Ledger) Delete(index int, confirm string) (core.Transaction, bool, error) {
	if err := l.checkIndex(index); err != nil {
		return core.Transaction{}, false, err
	}
	tx := l.transactions[index-1]
	if !strings.EqualFold(strings.TrimSpace(confirm), AffirmativeToken) {
		return tx, false, nil
	}
	l.transactions = append(l.transactions[:index-1], l.transactions[index:]...)
	l.dirty = true
	return tx, true, nil
}

// Listing returns one numbered line per transaction, as shown before a
// user picks a record to update or delete.
func (l *Ledger) Listing() []string {
	lines := make([]string, len(l.transactions))
	for i, tx := range l.transactions {
		lines[i] = fmt.Sprintf("%d. %s", i+1, tx.String())
	}
	return lines
}

func (l *Ledger) checkIndex(index int) error {
	if index < 1 || index > len(l.transactions) {
		if len(l.transactions) == 0 {
			return fmt.Errorf("%w: ledger is empty", core.ErrRange)
		}
		return fmt.Errorf("%w: %d is not between 1 and %d", core.ErrRange, index, len(l.transactions))
	}
	return nil
}
