package tui

import (
	"errors"
	"fmt"
	"time"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"git.sr.ht/~jakintosh/ledgerman/internal/intelligence"
	"git.sr.ht/~jakintosh/ledgerman/internal/ledger"
	"git.sr.ht/~jakintosh/ledgerman/internal/log"
	"git.sr.ht/~jakintosh/ledgerman/internal/session"
	"git.sr.ht/~jakintosh/ledgerman/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// resetForm clears the entry form and seeds it with baseDate.
func (m *Model) resetForm(baseDate time.Time) {
	m.form = newEntryForm(baseDate)
	m.editingIndex = 0
}

// defaultDate is the date of the last entry, else of the last record, else today.
func (m *Model) defaultDate() time.Time {
	if !m.lastDate.IsZero() {
		return m.lastDate
	}
	if n := m.ledger.Len(); n > 0 {
		if tx, err := m.ledger.Get(n); err == nil {
			return tx.Date
		}
	}
	return time.Now().UTC()
}

// selectedIndex is the 1-based ledger index under the table cursor, or 0.
func (m *Model) selectedIndex() int {
	if m.ledger.Len() == 0 {
		return 0
	}
	return m.table.Cursor() + 1
}

func (m *Model) startNewTransaction() {
	m.resetForm(m.defaultDate())
	m.focusField(focusDate)
	m.currentView = viewForm
}

func (m *Model) startEditingTransaction(index int) {
	tx, err := m.ledger.Get(index)
	if err != nil {
		return
	}
	m.resetForm(tx.Date)
	m.editingIndex = index
	m.form.customerInput.SetValue(tx.CustomerID)
	m.form.amountInput.SetValue(core.FormatAmount(tx.Magnitude()))
	m.form.kind = string(tx.Kind)
	m.form.descriptionInput.SetValue(tx.Description)
	m.focusField(focusDate)
	m.currentView = viewForm
}

func (m *Model) cancelForm() {
	m.resetForm(m.defaultDate())
	m.currentView = viewList
}

// submitForm adds a new record or applies the changed fields of the edited
// one. Nothing changes unless every field is valid.
func (m *Model) submitForm() {
	draft := m.form.draft()
	if m.editingIndex == 0 {
		tx, err := m.ledger.Add(draft)
		if err != nil {
			m.setStatus("Invalid input: "+err.Error(), statusError, statusDuration)
			return
		}
		m.customers.Observe(tx.CustomerID)
		m.lastDate = tx.Date
		m.refreshTable()
		m.table.GotoBottom()
		m.log.Debug("transaction added", log.FieldTransaction, tx.ID)
		m.setStatus(fmt.Sprintf("Added transaction %d", tx.ID), statusSuccess, statusShortDuration)
		m.resetForm(m.defaultDate())
		m.currentView = viewList
		return
	}

	original, err := m.ledger.Get(m.editingIndex)
	if err != nil {
		m.setStatus(err.Error(), statusError, statusDuration)
		return
	}
	changes := changedFields(original, draft)
	if len(changes) == 0 {
		m.setStatus("No changes", statusInfo, statusShortDuration)
		m.cancelForm()
		return
	}

	// validate against a scratch copy so a bad field leaves the record intact
	scratch := ledger.New(m.ledger.Transactions()...)
	for _, change := range changes {
		if _, err := scratch.Update(m.editingIndex, change.field, change.value); err != nil {
			m.setStatus("Invalid input: "+err.Error(), statusError, statusDuration)
			return
		}
	}
	var tx core.Transaction
	for _, change := range changes {
		if tx, err = m.ledger.Update(m.editingIndex, change.field, change.value); err != nil {
			m.setStatus(err.Error(), statusError, statusDuration)
			return
		}
	}
	m.customers = intelligence.NewCustomers(m.ledger.Transactions())
	m.refreshTable()
	m.log.Debug("transaction updated", log.FieldTransaction, tx.ID, log.FieldCount, len(changes))
	m.setStatus(fmt.Sprintf("Updated transaction %d", tx.ID), statusSuccess, statusShortDuration)
	m.resetForm(m.defaultDate())
	m.currentView = viewList
}

type fieldChange struct {
	field string
	value string
}

// changedFields compares the form draft with the record as the form showed it.
func changedFields(tx core.Transaction, d core.Draft) []fieldChange {
	var changes []fieldChange
	if d.Date != tx.DateString() {
		changes = append(changes, fieldChange{ledger.FieldDate, d.Date})
	}
	if d.CustomerID != tx.CustomerID {
		changes = append(changes, fieldChange{ledger.FieldCustomerID, d.CustomerID})
	}
	if d.Amount != core.FormatAmount(tx.Magnitude()) {
		changes = append(changes, fieldChange{ledger.FieldAmount, d.Amount})
	}
	if d.Kind != string(tx.Kind) {
		changes = append(changes, fieldChange{ledger.FieldType, d.Kind})
	}
	if d.Description != tx.Description {
		changes = append(changes, fieldChange{ledger.FieldDescription, d.Description})
	}
	return changes
}

func (m *Model) openConfirm(kind confirmKind, returnView viewState) {
	m.pendingConfirm = kind
	m.confirmReturnView = returnView
	m.confirmDetail = ""
	m.currentView = viewConfirm
}

func (m *Model) openWriteConfirm() {
	if m.ledger.Len() == 0 {
		m.setStatus("No transactions to save", statusInfo, statusShortDuration)
		return
	}
	m.openConfirm(confirmWrite, viewList)
	diff, err := store.Preview(m.opts.LedgerFile, m.ledger.Transactions())
	switch {
	case err != nil:
		m.confirmDetail = "Preview unavailable: " + err.Error()
	case diff == "":
		m.confirmDetail = "File is already up to date."
	default:
		m.confirmDetail = diff
	}
}

func (m *Model) deleteSelected() {
	index := m.selectedIndex()
	tx, removed, err := m.ledger.Delete(index, ledger.AffirmativeToken)
	if err != nil {
		m.setStatus(err.Error(), statusError, statusDuration)
		return
	}
	if removed {
		m.refreshTable()
		m.log.Debug("transaction deleted", log.FieldTransaction, tx.ID)
		m.setStatus(fmt.Sprintf("Deleted transaction %d", tx.ID), statusSuccess, statusShortDuration)
	}
}

func (m *Model) writeLedger() {
	err := store.SaveFile(m.opts.LedgerFile, m.ledger.Transactions())
	if err != nil {
		m.log.Error("save failed", log.FieldPath, m.opts.LedgerFile, log.FieldError, err)
		m.setStatus("Error saving transactions: "+err.Error(), statusError, statusDuration)
		return
	}
	m.ledger.MarkSaved()
	if err := session.DeleteSession(m.opts.SessionFile); err != nil {
		m.log.Warn("failed to clear session", log.FieldPath, m.opts.SessionFile, log.FieldError, err)
	}
	m.setStatus(fmt.Sprintf("Saved %d transactions to %s", m.ledger.Len(), m.opts.LedgerFile), statusSuccess, statusDuration)
}

func (m *Model) writeReport() {
	err := store.WriteReportFile(m.opts.ReportFile, m.ledger.Analyze())
	switch {
	case errors.Is(err, core.ErrNoTransactions):
		m.setStatus("No transactions to report", statusInfo, statusShortDuration)
	case err != nil:
		m.log.Error("report failed", log.FieldPath, m.opts.ReportFile, log.FieldError, err)
		m.setStatus("Error writing report: "+err.Error(), statusError, statusDuration)
	default:
		m.setStatus("Report saved to "+m.opts.ReportFile, statusSuccess, statusDuration)
	}
}

func (m *Model) copySelected() {
	tx, err := m.ledger.Get(m.selectedIndex())
	if err != nil {
		m.setStatus("Nothing to copy", statusInfo, statusShortDuration)
		return
	}
	if err := m.opts.Clipboard(tx.String()); err != nil {
		m.setStatus("Clipboard unavailable: "+err.Error(), statusError, statusDuration)
		return
	}
	m.setStatus(fmt.Sprintf("Copied transaction %d", tx.ID), statusSuccess, statusShortDuration)
}

// quit keeps unsaved changes in the session file before exiting.
func (m *Model) quit() tea.Cmd {
	if m.ledger.Dirty() {
		if err := m.persistSession(); err != nil {
			m.log.Error("failed to save session", log.FieldPath, m.opts.SessionFile, log.FieldError, err)
		}
	}
	return tea.Quit
}

func (m *Model) persistSession() error {
	return session.SaveLedger(m.opts.SessionFile, m.opts.LedgerFile, m.ledger.Transactions())
}

func (m *Model) setStatus(message string, kind statusKind, duration time.Duration) {
	m.statusMessage = message
	m.statusKind = kind
	m.statusExpiry = time.Now().Add(duration)
}

// statusLine returns the current status message if it hasn't expired
func (m *Model) statusLine() string {
	if m.statusMessage == "" {
		return ""
	}
	if !m.statusExpiry.IsZero() && time.Now().After(m.statusExpiry) {
		return ""
	}
	return formatStatus(m.statusMessage, m.statusKind)
}
