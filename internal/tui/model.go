// Package tui implements a full-screen terminal interface over a ledger: a
// scrollable table of transactions, an entry form with customer
// suggestions and calculator amounts, and confirmation screens for
// destructive actions.
package tui

import (
	"fmt"
	"time"

	"git.sr.ht/~jakintosh/ledgerman/internal/intelligence"
	"git.sr.ht/~jakintosh/ledgerman/internal/ledger"
	"git.sr.ht/~jakintosh/ledgerman/internal/log"
	"git.sr.ht/~jakintosh/ledgerman/internal/session"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel creates a TUI model operating on l.
func NewModel(l *ledger.Ledger, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	if opts.SessionFile == "" {
		opts.SessionFile = session.DefaultFileName
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	m := &Model{
		ledger:      l,
		customers:   intelligence.NewCustomers(l.Transactions()),
		opts:        opts,
		log:         logger.WithComponent(log.ComponentTUI),
		table:       newTable(),
		currentView: viewList,
	}
	m.refreshTable()
	m.resetForm(m.defaultDate())
	return m
}

// Ledger exposes the ledger being edited.
func (m *Model) Ledger() *ledger.Ledger {
	return m.ledger
}

// Init initializes the model and returns the initial command
func (m *Model) Init() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTick{} })
}

// Update handles incoming messages and updates the model state
func (m *Model) Update(msg tea.Msg) (updated tea.Model, cmd tea.Cmd) {
	defer func() {
		if recovered := recover(); recovered != nil {
			recoveredErr := fmt.Errorf("unexpected internal error: %v", recovered)
			if m.ledger.Dirty() {
				if saveErr := m.persistSession(); saveErr != nil {
					recoveredErr = fmt.Errorf("%w (failed to persist session: %v)", recoveredErr, saveErr)
				} else {
					recoveredErr = fmt.Errorf("%w (unsaved changes were kept in %s)", recoveredErr, m.opts.SessionFile)
				}
			}
			m.log.Error("recovered from panic", log.FieldError, recoveredErr)
			m.err = recoveredErr
			updated = m
			cmd = nil
		}
	}()

	if m.err != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "ctrl+q", "ctrl+c":
				return m, tea.Quit
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
		return m, nil
	case statusTick:
		if !m.statusExpiry.IsZero() && time.Now().After(m.statusExpiry) {
			m.statusMessage = ""
			m.statusExpiry = time.Time{}
		}
		return m, tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTick{} })
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View renders the current view based on the model state
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress ctrl+q to quit.", m.err)
	}

	switch m.currentView {
	case viewList:
		return m.renderListView()
	case viewForm:
		return m.renderFormView()
	case viewConfirm:
		return m.renderConfirmView()
	case viewAnalysis:
		return m.renderAnalysisView()
	default:
		return "Unknown view"
	}
}
