// Package menu is the numbered, line-based interface to a ledger. It reads
// answers from any io.Reader and writes prompts to any io.Writer, so the
// whole loop runs the same against a terminal or a test buffer.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"git.sr.ht/~jakintosh/ledgerman/internal/intelligence"
	"git.sr.ht/~jakintosh/ledgerman/internal/ledger"
	"git.sr.ht/~jakintosh/ledgerman/internal/log"
	"git.sr.ht/~jakintosh/ledgerman/internal/session"
	"git.sr.ht/~jakintosh/ledgerman/internal/store"
	"github.com/charmbracelet/lipgloss"
)

const (
	invalidOption = "Invalid option. Please select a number between 1 and 9."
	goodbye       = "Exiting the program. Goodbye!"
)

var options = []string{
	"Load Transactions",
	"Add Transaction",
	"View Transactions",
	"Update Transaction",
	"Delete Transaction",
	"Analyze Finances",
	"Save Transactions",
	"Generate Report",
	"Exit",
}

// Options configures a menu session.
type Options struct {
	LedgerFile  string
	ReportFile  string
	SessionFile string
	// AutoLoad reads LedgerFile before the first prompt; a missing file
	// starts an empty ledger.
	AutoLoad bool
	Logger   *log.Logger
}

// Menu drives one interactive session over a ledger.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	opts      Options
	log       *log.Logger
	styles    styles
	ledger    *ledger.Ledger
	customers *intelligence.Customers
}

// New creates a menu reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Menu {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	if opts.SessionFile == "" {
		opts.SessionFile = session.DefaultFileName
	}
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		opts:      opts,
		log:       logger.WithComponent(log.ComponentMenu),
		styles:    newStyles(lipgloss.NewRenderer(out)),
		ledger:    ledger.New(),
		customers: intelligence.NewCustomers(nil),
	}
}

// Ledger exposes the ledger the menu operates on.
func (m *Menu) Ledger() *ledger.Ledger {
	return m.ledger
}

// Run shows the menu until the user exits or input ends. Core errors are
// reported and the loop continues; only failing to write output stops it.
func (m *Menu) Run() error {
	if err := m.start(); err != nil {
		if !errors.Is(err, io.EOF) {
			return err
		}
		return m.exit()
	}

	for {
		m.printMenu()
		choice, err := m.prompt("Select an option: ")
		if errors.Is(err, io.EOF) {
			return m.exit()
		}
		if err != nil {
			return err
		}

		if choice == "9" {
			return m.exit()
		}
		err = m.dispatch(choice)
		if errors.Is(err, io.EOF) {
			return m.exit()
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) dispatch(choice string) error {
	switch choice {
	case "1":
		m.load()
	case "2":
		return m.add()
	case "3":
		m.view()
	case "4":
		return m.update()
	case "5":
		return m.delete()
	case "6":
		m.analyze()
	case "7":
		m.save()
	case "8":
		m.report()
	default:
		m.println(m.styles.err.Render(invalidOption))
	}
	return nil
}

// start offers a pending session for restore, otherwise autoloads the
// ledger file.
func (m *Menu) start() error {
	if session.HasSession(m.opts.SessionFile) {
		answer, err := m.prompt("Previous session found. Restore it? [y/N]: ")
		if err != nil {
			return err
		}
		if strings.EqualFold(answer, "y") {
			m.restore()
			return nil
		}
		if err := session.DeleteSession(m.opts.SessionFile); err != nil {
			m.log.Warn("failed to discard session", log.FieldPath, m.opts.SessionFile, log.FieldError, err)
		}
	}

	if m.opts.AutoLoad && m.opts.LedgerFile != "" {
		transactions, err := store.LoadFile(m.opts.LedgerFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			m.log.Debug("no ledger file yet", log.FieldPath, m.opts.LedgerFile)
		case err != nil:
			m.printf("Could not load '%s': %v\n", m.opts.LedgerFile, err)
		default:
			m.replace(transactions)
			m.log.Info("ledger loaded", log.FieldPath, m.opts.LedgerFile, log.FieldCount, len(transactions))
		}
	}
	return nil
}

func (m *Menu) restore() {
	snapshot, err := session.LoadLedger(m.opts.SessionFile)
	if err != nil {
		m.printf("Warning: failed to load previous session: %v\n", err)
		return
	}
	m.ledger.Restore(snapshot.Transactions)
	m.customers = intelligence.NewCustomers(snapshot.Transactions)
	m.printf("Restored %d transactions from previous session.\n", len(snapshot.Transactions))
}

// exit keeps unsaved changes in the session file.
func (m *Menu) exit() error {
	if m.ledger.Dirty() {
		err := session.SaveLedger(m.opts.SessionFile, m.opts.LedgerFile, m.ledger.Transactions())
		if err != nil {
			m.log.Error("failed to save session", log.FieldPath, m.opts.SessionFile, log.FieldError, err)
			m.printf("Warning: unsaved changes could not be kept: %v\n", err)
		} else if m.ledger.Len() > 0 {
			m.printf("Unsaved changes kept in '%s'.\n", m.opts.SessionFile)
		}
	}
	m.println(goodbye)
	return nil
}

func (m *Menu) printMenu() {
	m.println()
	m.println(m.styles.title.Render("Smart Personal Finance Analyzer"))
	for i, option := range options {
		m.printf("%d. %s\n", i+1, option)
	}
}

// prompt writes label and returns the next trimmed input line, or io.EOF.
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		m.println()
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) println(args ...any) {
	fmt.Fprintln(m.out, args...)
}
