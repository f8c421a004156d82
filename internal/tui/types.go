package tui

import (
	"time"

	"git.sr.ht/~jakintosh/ledgerman/internal/intelligence"
	"git.sr.ht/~jakintosh/ledgerman/internal/ledger"
	"git.sr.ht/~jakintosh/ledgerman/internal/log"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	statusDuration       = 5 * time.Second
	statusShortDuration  = 3 * time.Second
	maxSuggestionDisplay = 5
	minTableHeight       = 3
	defaultTableHeight   = 12
	chromeHeight         = 6 // title, status and hint lines around the table
)

// viewState represents the current screen being displayed
type viewState int

const (
	viewList viewState = iota
	viewForm
	viewConfirm
	viewAnalysis
)

// confirmKind represents the type of confirmation being requested
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmWrite
	confirmQuit
	confirmDelete
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// focusedField is the form field holding focus, in tab order.
type focusedField int

const (
	focusDate focusedField = iota
	focusCustomer
	focusAmount
	focusKind
	focusDescription
)

type dateSegment int

const (
	dateSegmentYear dateSegment = iota
	dateSegmentMonth
	dateSegmentDay
)

// Options configures the TUI.
type Options struct {
	LedgerFile  string
	ReportFile  string
	SessionFile string
	Logger      *log.Logger
	// Clipboard receives the text of the copied row; defaults to the
	// system clipboard.
	Clipboard func(string) error
}

// Model is the bubbletea model for the ledger screen.
type Model struct {
	ledger    *ledger.Ledger
	customers *intelligence.Customers
	opts      Options
	log       *log.Logger

	table       table.Model
	currentView viewState

	form              entryForm
	editingIndex      int // 1-based; 0 while adding
	pendingConfirm    confirmKind
	confirmReturnView viewState
	confirmDetail     string

	lastDate      time.Time
	width         int
	height        int
	statusMessage string
	statusKind    statusKind
	statusExpiry  time.Time
	err           error
}

// entryForm holds the state of the add/edit form.
type entryForm struct {
	date             dateField
	customerInput    textinput.Model
	amountInput      textinput.Model
	kind             string
	descriptionInput textinput.Model
	focusedField     focusedField
}

// dateField manages a date with segment-based navigation
type dateField struct {
	year    int
	month   int
	day     int
	segment dateSegment
	buffer  string
}

// statusTick is sent periodically to update status message expiry
type statusTick struct{}
