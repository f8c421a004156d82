package tui

import (
	"strings"
	"time"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"git.sr.ht/~jakintosh/ledgerman/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var entryKinds = []string{string(core.KindCredit), string(core.KindDebit)}

func newEntryForm(baseDate time.Time) entryForm {
	form := entryForm{
		customerInput:    newTextInput("customer id", 32),
		amountInput:      newTextInput("0.00 or 19.99*2", 24),
		kind:             string(core.KindCredit),
		descriptionInput: newTextInput("description", 64),
		focusedField:     focusDate,
	}
	form.customerInput.ShowSuggestions = true
	form.date.setTime(baseDate)
	return form
}

func newTextInput(placeholder string, width int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	input.Width = width
	input.CharLimit = 256
	return input
}

// draft collects the form into a core.Draft; the amount goes through the
// calculator first.
func (f *entryForm) draft() core.Draft {
	return core.Draft{
		Date:        f.date.String(),
		CustomerID:  strings.TrimSpace(f.customerInput.Value()),
		Amount:      util.EvaluateAmount(f.amountInput.Value()),
		Kind:        f.kind,
		Description: strings.TrimSpace(f.descriptionInput.Value()),
	}
}

// toggleKind cycles between the kinds a user can enter. A loaded kind the
// form cannot produce, such as transfer, moves to credit.
func (f *entryForm) toggleKind(delta int) {
	current := -1
	for i, kind := range entryKinds {
		if kind == f.kind {
			current = i
		}
	}
	if current == -1 {
		f.kind = entryKinds[0]
		return
	}
	f.kind = entryKinds[(current+delta+len(entryKinds))%len(entryKinds)]
}

func (m *Model) currentTextInput() *textinput.Model {
	switch m.form.focusedField {
	case focusCustomer:
		return &m.form.customerInput
	case focusAmount:
		return &m.form.amountInput
	case focusDescription:
		return &m.form.descriptionInput
	}
	return nil
}

func (m *Model) focusField(field focusedField) {
	if input := m.currentTextInput(); input != nil {
		input.Blur()
	}
	m.form.focusedField = field
	if input := m.currentTextInput(); input != nil {
		input.Focus()
		input.CursorEnd()
	}
	m.refreshSuggestions()
}

func (m *Model) advanceFocus() {
	if m.form.focusedField < focusDescription {
		m.focusField(m.form.focusedField + 1)
	}
}

func (m *Model) retreatFocus() {
	if m.form.focusedField > focusDate {
		m.focusField(m.form.focusedField - 1)
	}
}

// evaluateAmountField replaces an arithmetic amount with its result when
// focus leaves the field.
func (m *Model) evaluateAmountField() {
	if m.form.focusedField != focusAmount {
		return
	}
	raw := strings.TrimSpace(m.form.amountInput.Value())
	if raw == "" {
		return
	}
	if value, err := util.EvaluateExpression(raw); err == nil {
		m.form.amountInput.SetValue(value)
		m.form.amountInput.CursorEnd()
	}
}

func (m *Model) refreshSuggestions() {
	if m.form.focusedField == focusCustomer {
		m.form.customerInput.SetSuggestions(m.customers.Find(m.form.customerInput.Value()))
	}
}

// tryAcceptSuggestion reports whether a suggestion was accepted into the
// focused input.
func (m *Model) tryAcceptSuggestion() bool {
	input := m.currentTextInput()
	if input == nil || !input.Focused() || !input.ShowSuggestions {
		return false
	}
	suggestion := input.CurrentSuggestion()
	if suggestion == "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(input.Value()), suggestion) {
		return false
	}
	input.SetValue(suggestion)
	input.CursorEnd()
	m.refreshSuggestions()
	return true
}

// customerSuggestions returns the top matches shown under the field.
func (m *Model) customerSuggestions() []string {
	value := strings.TrimSpace(m.form.customerInput.Value())
	if value == "" {
		return nil
	}
	matches := m.customers.Find(value)
	if len(matches) > maxSuggestionDisplay {
		matches = matches[:maxSuggestionDisplay]
	}
	return matches
}

func (m *Model) updateFocusedInput(msg tea.KeyMsg) tea.Cmd {
	input := m.currentTextInput()
	if input == nil {
		return nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return cmd
}
