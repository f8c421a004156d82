package menu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.sr.ht/~jakintosh/ledgerman/internal/session"
	"git.sr.ht/~jakintosh/ledgerman/internal/store"
)

const seedCSV = `transaction_id,date,customer_id,amount,type,description
1,2024-01-15,C1001,100.00,credit,Paycheck
2,2024-01-16,C1001,40.00,debit,Groceries
`

type fixture struct {
	dir  string
	opts Options
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	return fixture{
		dir: dir,
		opts: Options{
			LedgerFile:  filepath.Join(dir, "financial_transactions.csv"),
			ReportFile:  filepath.Join(dir, "report.txt"),
			SessionFile: filepath.Join(dir, "session.tmp"),
		},
	}
}

func (f fixture) seed(t *testing.T) {
	t.Helper()
	if err := os.WriteFile(f.opts.LedgerFile, []byte(seedCSV), 0644); err != nil {
		t.Fatalf("seed ledger: %v", err)
	}
}

// run feeds the given answers, one per line, and returns everything printed.
func (f fixture) run(t *testing.T, answers ...string) (*Menu, string) {
	t.Helper()
	var out bytes.Buffer
	m := New(strings.NewReader(strings.Join(answers, "\n")+"\n"), &out, f.opts)
	if err := m.Run(); err != nil {
		t.Fatalf("Run() err=%v", err)
	}
	return m, out.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q\n--- output ---\n%s", want, out)
		}
	}
}

func TestExitOption(t *testing.T) {
	f := newFixture(t)
	_, out := f.run(t, "9")
	assertContains(t, out,
		"Smart Personal Finance Analyzer\n1. Load Transactions\n",
		"9. Exit\nSelect an option: ",
		"Exiting the program. Goodbye!",
	)
}

func TestEndOfInputExits(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer
	if err := New(strings.NewReader(""), &out, f.opts).Run(); err != nil {
		t.Fatalf("Run() err=%v", err)
	}
	assertContains(t, out.String(), "Exiting the program. Goodbye!")
}

func TestInvalidOptionRedisplaysMenu(t *testing.T) {
	f := newFixture(t)
	_, out := f.run(t, "0", "abc", "9")
	if n := strings.Count(out, "Invalid option. Please select a number between 1 and 9."); n != 2 {
		t.Fatalf("expected 2 diagnostics, got %d\n%s", n, out)
	}
	if n := strings.Count(out, "Select an option: "); n != 3 {
		t.Fatalf("expected menu shown 3 times, got %d", n)
	}
}

func TestLoadAndView(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	m, out := f.run(t, "1", "3", "9")
	assertContains(t, out,
		"Loaded 2 transactions from '"+f.opts.LedgerFile+"'.",
		"2     2024-01-16   C1001               -40.00 debit      Groceries",
	)
	if m.Ledger().Len() != 2 || m.Ledger().Dirty() {
		t.Fatalf("expected clean ledger of 2, got len=%d dirty=%v", m.Ledger().Len(), m.Ledger().Dirty())
	}
}

func TestLoadMissingFileKeepsLedger(t *testing.T) {
	f := newFixture(t)
	m, out := f.run(t, "2", "2024-03-01", "C9", "5", "credit", "Tip", "1", "9")
	assertContains(t, out, "Error loading transactions:")
	if m.Ledger().Len() != 1 {
		t.Fatalf("failed load must not replace the ledger, got %d records", m.Ledger().Len())
	}
}

func TestAutoLoad(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	f.opts.AutoLoad = true
	m, _ := f.run(t, "9")
	if m.Ledger().Len() != 2 {
		t.Fatalf("expected autoloaded ledger, got %d records", m.Ledger().Len())
	}
}

func TestAutoLoadToleratesMissingFile(t *testing.T) {
	f := newFixture(t)
	f.opts.AutoLoad = true
	_, out := f.run(t, "9")
	if strings.Contains(out, "Could not load") {
		t.Fatalf("missing ledger file should start empty silently:\n%s", out)
	}
}

func TestAddEvaluatesAmountExpression(t *testing.T) {
	f := newFixture(t)
	m, out := f.run(t, "2", "2024-02-01", "C7", "19.99 * 2", "Credit", "Books", "9")
	assertContains(t, out, "Transaction added successfully!")
	tx, err := m.Ledger().Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tx.ID != 1 || tx.AmountString() != "39.98" || tx.Kind != "credit" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
}

func TestAddKeepsEnteredPrecision(t *testing.T) {
	f := newFixture(t)
	m, _ := f.run(t,
		"2", "2024-01-15", "C1", "12.345", "credit", "x",
		"2", "2024-01-15", "C1", "0.004", "credit", "y",
		"9",
	)
	if m.Ledger().Len() != 2 {
		t.Fatalf("expected 2 transactions, got %d", m.Ledger().Len())
	}
	for id, want := range map[int]string{1: "12.345", 2: "0.004"} {
		tx, err := m.Ledger().Get(id)
		if err != nil {
			t.Fatalf("get %d: %v", id, err)
		}
		if tx.AmountString() != want {
			t.Fatalf("transaction %d: expected amount %s, got %s", id, want, tx.AmountString())
		}
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    string
	}{
		{"bad date", []string{"2", "2024/02/01", "C7", "10", "credit", "x", "9"}, "Invalid input:"},
		{"zero amount", []string{"2", "2024-02-01", "C7", "0", "credit", "x", "9"}, "amount must be greater than zero"},
		{"bad type", []string{"2", "2024-02-01", "C7", "10", "transfer", "x", "9"}, "invalid transaction type"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			m, out := f.run(t, test.answers...)
			assertContains(t, out, test.want)
			if m.Ledger().Len() != 0 {
				t.Fatalf("expected no transaction, got %d", m.Ledger().Len())
			}
		})
	}
}

func TestCustomerLookup(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	_, out := f.run(t, "1", "2", "2024-02-01", "C1?", "Z?", "C1001", "10", "credit", "x", "9")
	assertContains(t, out,
		"Known customers: C1001",
		"No known customers match 'Z'.",
		"Transaction added successfully!",
	)
}

func TestUpdateField(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	m, out := f.run(t, "1", "4", "1", "3", "250", "9")
	assertContains(t, out,
		"Existing Transactions:\n1. ID: 1, Date: 2024-01-15, Customer ID: C1001, Amount: 100.00, Type: credit, Description: Paycheck",
		"Which field would you like to update?\n1. date\n2. customer_id\n",
		"Enter new value for 'amount': ",
		"Transaction updated successfully!",
	)
	tx, _ := m.Ledger().Get(1)
	if tx.AmountString() != "250.00" {
		t.Fatalf("expected amount 250.00, got %s", tx.AmountString())
	}
}

func TestUpdateRejectsBadChoices(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	m, out := f.run(t,
		"1",
		"4", "7",
		"4", "1", "9",
		"4", "1", "1", "15/01/2024",
		"9",
	)
	assertContains(t, out, "Invalid choice.", "Invalid field choice.", "Invalid input:")
	if tx, _ := m.Ledger().Get(1); tx.DateString() != "2024-01-15" {
		t.Fatalf("record changed: %+v", tx)
	}
}

func TestUpdateEmptyLedger(t *testing.T) {
	f := newFixture(t)
	_, out := f.run(t, "4", "5", "6", "9")
	assertContains(t, out,
		"No transactions to update.",
		"No transactions to delete.",
		"No transactions to analyze.",
	)
}

func TestDeleteRequiresYes(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	m, out := f.run(t, "1", "5", "2", "no", "5", "2", "YES", "9")
	assertContains(t, out,
		"Are you sure you want to delete transaction ID 2? (yes/no): ",
		"Deletion cancelled.",
		"Transaction deleted successfully.",
	)
	if m.Ledger().Len() != 1 {
		t.Fatalf("expected 1 transaction left, got %d", m.Ledger().Len())
	}
}

func TestAnalyze(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	_, out := f.run(t, "1", "6", "9")
	assertContains(t, out,
		"Financial Summary:",
		"Total Credits:   $100.00",
		"Total Debits:    $40.00",
		"Net Balance:     $60.00",
		"  Customer C1001: $60.00",
	)
}

func TestSaveAndReport(t *testing.T) {
	f := newFixture(t)
	m, out := f.run(t, "7", "8", "2", "2024-02-01", "C7", "12.5", "credit", "Lunch", "7", "8", "9")
	assertContains(t, out,
		"No transactions to save.",
		"No transactions to report.",
		"Transactions saved to '"+f.opts.LedgerFile+"' successfully.",
		"Report generated and saved to '"+f.opts.ReportFile+"'",
	)
	if m.Ledger().Dirty() {
		t.Fatalf("expected ledger to be clean after save")
	}

	saved, err := store.LoadFile(f.opts.LedgerFile)
	if err != nil || len(saved) != 1 {
		t.Fatalf("expected 1 saved transaction, got %d (%v)", len(saved), err)
	}
	report, err := os.ReadFile(f.opts.ReportFile)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(report), "Total Credits:   $12.50") {
		t.Fatalf("unexpected report:\n%s", report)
	}
	if session.HasSession(f.opts.SessionFile) {
		t.Fatalf("clean exit should leave no session file")
	}
}

func TestUnsavedChangesSurviveAsSession(t *testing.T) {
	f := newFixture(t)
	_, out := f.run(t, "2", "2024-02-01", "C7", "12.5", "credit", "Lunch", "9")
	assertContains(t, out, "Unsaved changes kept in")
	if !session.HasSession(f.opts.SessionFile) {
		t.Fatalf("expected session file after dirty exit")
	}

	m, out := f.run(t, "y", "9")
	assertContains(t, out, "Previous session found. Restore it? [y/N]: ", "Restored 1 transactions from previous session.")
	if m.Ledger().Len() != 1 || !m.Ledger().Dirty() {
		t.Fatalf("expected restored dirty ledger, got len=%d dirty=%v", m.Ledger().Len(), m.Ledger().Dirty())
	}
}

func TestLoadAfterRestoreClearsSession(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	f.run(t, "2", "2024-02-01", "C7", "12.5", "credit", "Lunch", "9")

	m, _ := f.run(t, "y", "1", "9")
	if m.Ledger().Len() != 2 || m.Ledger().Dirty() {
		t.Fatalf("expected clean ledger from file, got len=%d dirty=%v", m.Ledger().Len(), m.Ledger().Dirty())
	}
	if session.HasSession(f.opts.SessionFile) {
		t.Fatalf("expected session file to be removed after loading the ledger file")
	}
}

func TestDecliningSessionDiscardsIt(t *testing.T) {
	f := newFixture(t)
	f.run(t, "2", "2024-02-01", "C7", "12.5", "credit", "Lunch", "9")

	m, _ := f.run(t, "n", "9")
	if m.Ledger().Len() != 0 {
		t.Fatalf("expected empty ledger, got %d", m.Ledger().Len())
	}
	if session.HasSession(f.opts.SessionFile) {
		t.Fatalf("expected session file to be removed")
	}
}
