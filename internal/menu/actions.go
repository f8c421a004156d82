package menu

import (
	"errors"
	"strconv"
	"strings"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"git.sr.ht/~jakintosh/ledgerman/internal/intelligence"
	"git.sr.ht/~jakintosh/ledgerman/internal/ledger"
	"git.sr.ht/~jakintosh/ledgerman/internal/log"
	"git.sr.ht/~jakintosh/ledgerman/internal/session"
	"git.sr.ht/~jakintosh/ledgerman/internal/store"
	"git.sr.ht/~jakintosh/ledgerman/internal/util"
)

// fieldLabels are shown in the update prompt, in ledger.Fields order.
var fieldLabels = []string{"date", "customer_id", "amount", "type", "description"}

func (m *Menu) load() {
	transactions, err := store.LoadFile(m.opts.LedgerFile)
	if err != nil {
		m.log.Warn("load failed", log.FieldPath, m.opts.LedgerFile, log.FieldError, err)
		m.println(m.styles.err.Render("Error loading transactions: " + err.Error()))
		return
	}
	m.replace(transactions)
	if err := session.DeleteSession(m.opts.SessionFile); err != nil {
		m.log.Warn("failed to clear session", log.FieldPath, m.opts.SessionFile, log.FieldError, err)
	}
	m.printf("Loaded %d transactions from '%s'.\n", len(transactions), m.opts.LedgerFile)
}

func (m *Menu) replace(transactions []core.Transaction) {
	m.ledger.Replace(transactions)
	m.customers = intelligence.NewCustomers(transactions)
}

func (m *Menu) add() error {
	var d core.Draft
	var err error

	if d.Date, err = m.prompt("Enter transaction date (YYYY-MM-DD): "); err != nil {
		return err
	}
	if d.CustomerID, err = m.promptCustomer("Enter customer ID: "); err != nil {
		return err
	}
	amount, err := m.prompt("Enter transaction amount: ")
	if err != nil {
		return err
	}
	d.Amount = util.EvaluateAmount(amount)
	if d.Kind, err = m.prompt("Enter transaction type (credit/debit): "); err != nil {
		return err
	}
	if d.Description, err = m.prompt("Enter transaction description: "); err != nil {
		return err
	}

	tx, err := m.ledger.Add(d)
	if err != nil {
		m.invalid(err)
		return nil
	}
	m.customers.Observe(tx.CustomerID)
	m.log.Debug("transaction added", log.FieldTransaction, tx.ID)
	m.println(m.styles.success.Render("Transaction added successfully!"))
	return nil
}

// promptCustomer re-asks while the answer ends in '?', listing the known
// customer ids that start with what was typed before it.
func (m *Menu) promptCustomer(label string) (string, error) {
	for {
		answer, err := m.prompt(label)
		if err != nil {
			return "", err
		}
		prefix, lookup := strings.CutSuffix(answer, "?")
		if !lookup {
			return answer, nil
		}
		matches := m.customers.Find(prefix)
		if len(matches) == 0 {
			m.printf("No known customers match '%s'.\n", strings.TrimSpace(prefix))
			continue
		}
		m.println(m.styles.info.Render("Known customers: " + strings.Join(matches, ", ")))
	}
}

func (m *Menu) view() {
	m.printf("%s", m.ledger.View())
}

func (m *Menu) update() error {
	if m.ledger.Len() == 0 {
		m.println("No transactions to update.")
		return nil
	}
	m.printListing()

	index, ok, err := m.promptNumber("\nEnter the number of the transaction you want to update: ")
	if err != nil || !ok {
		return err
	}
	if _, err := m.ledger.Get(index); err != nil {
		m.println("Invalid choice.")
		return nil
	}

	m.println("\nWhich field would you like to update?")
	for i, label := range fieldLabels {
		m.printf("%d. %s\n", i+1, label)
	}
	fieldChoice, ok, err := m.promptNumber("Enter the number of the field: ")
	if err != nil || !ok {
		return err
	}
	if fieldChoice < 1 || fieldChoice > len(ledger.Fields) {
		m.println("Invalid field choice.")
		return nil
	}
	field := ledger.Fields[fieldChoice-1]

	var value string
	if field == ledger.FieldCustomerID {
		value, err = m.promptCustomer("Enter new value for '" + fieldLabels[fieldChoice-1] + "': ")
	} else {
		value, err = m.prompt("Enter new value for '" + fieldLabels[fieldChoice-1] + "': ")
	}
	if err != nil {
		return err
	}
	if field == ledger.FieldAmount {
		value = util.EvaluateAmount(value)
	}

	tx, err := m.ledger.Update(index, field, value)
	if err != nil {
		m.invalid(err)
		return nil
	}
	if field == ledger.FieldCustomerID {
		m.customers.Observe(tx.CustomerID)
	}
	m.log.Debug("transaction updated", log.FieldTransaction, tx.ID, log.FieldField, field)
	m.println(m.styles.success.Render("Transaction updated successfully!"))
	return nil
}

func (m *Menu) delete() error {
	if m.ledger.Len() == 0 {
		m.println("No transactions to delete.")
		return nil
	}
	m.printListing()

	index, ok, err := m.promptNumber("\nEnter the number of the transaction to delete: ")
	if err != nil || !ok {
		return err
	}
	tx, err := m.ledger.Get(index)
	if err != nil {
		m.println("Invalid selection.")
		return nil
	}

	confirm, err := m.prompt("Are you sure you want to delete transaction ID " + strconv.Itoa(tx.ID) + "? (yes/no): ")
	if err != nil {
		return err
	}
	if _, removed, err := m.ledger.Delete(index, confirm); err != nil {
		m.invalid(err)
	} else if removed {
		m.log.Debug("transaction deleted", log.FieldTransaction, tx.ID)
		m.println(m.styles.success.Render("Transaction deleted successfully."))
	} else {
		m.println("Deletion cancelled.")
	}
	return nil
}

func (m *Menu) analyze() {
	if m.ledger.Len() == 0 {
		m.println("No transactions to analyze.")
		return
	}
	m.printf("%s", store.Analysis(m.ledger.Analyze()))
}

func (m *Menu) save() {
	err := store.SaveFile(m.opts.LedgerFile, m.ledger.Transactions())
	switch {
	case errors.Is(err, core.ErrNoTransactions):
		m.println("No transactions to save.")
	case err != nil:
		m.log.Error("save failed", log.FieldPath, m.opts.LedgerFile, log.FieldError, err)
		m.println(m.styles.err.Render("Error saving transactions: " + err.Error()))
	default:
		m.ledger.MarkSaved()
		if err := session.DeleteSession(m.opts.SessionFile); err != nil {
			m.log.Warn("failed to clear session", log.FieldPath, m.opts.SessionFile, log.FieldError, err)
		}
		m.println(m.styles.success.Render("Transactions saved to '" + m.opts.LedgerFile + "' successfully."))
	}
}

func (m *Menu) report() {
	err := store.WriteReportFile(m.opts.ReportFile, m.ledger.Analyze())
	switch {
	case errors.Is(err, core.ErrNoTransactions):
		m.println("No transactions to report.")
	case err != nil:
		m.log.Error("report failed", log.FieldPath, m.opts.ReportFile, log.FieldError, err)
		m.println(m.styles.err.Render("Error writing report: " + err.Error()))
	default:
		m.println(m.styles.success.Render("Report generated and saved to '" + m.opts.ReportFile + "'"))
	}
}

func (m *Menu) printListing() {
	m.println("\nExisting Transactions:")
	for _, line := range m.ledger.Listing() {
		m.println(line)
	}
}

// promptNumber reports ok=false after printing a diagnostic when the answer
// is not an integer.
func (m *Menu) promptNumber(label string) (int, bool, error) {
	answer, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		m.printf("Invalid input: '%s' is not a number.\n", answer)
		return 0, false, nil
	}
	return n, true, nil
}

func (m *Menu) invalid(err error) {
	m.println(m.styles.err.Render("Invalid input: " + err.Error()))
}
