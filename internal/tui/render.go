package tui

import (
	"fmt"
	"strings"

	"git.sr.ht/~jakintosh/ledgerman/internal/store"
)

func (m *Model) renderListView() string {
	var b strings.Builder
	title := fmt.Sprintf("ledgerman: %s (%d transactions)", m.opts.LedgerFile, m.ledger.Len())
	b.WriteString(titleStyle.Render(title))
	if m.ledger.Dirty() {
		b.WriteString(" " + formatDirty("[unsaved]"))
	}
	b.WriteString("\n\n")

	if m.ledger.Len() == 0 {
		b.WriteString("No transactions to display.\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if msg := m.statusLine(); msg != "" {
		fmt.Fprintf(&b, "\n%s\n", msg)
	}
	b.WriteString("\n")
	hasRows := m.ledger.Len() > 0
	hints := []string{
		formatCommand("[n]ew", true),
		formatCommand("[e]dit", hasRows),
		formatCommand("[d]elete", hasRows),
		formatCommand("[a]nalyze", hasRows),
		formatCommand("[w]rite", hasRows),
		formatCommand("[r]eport", hasRows),
		formatCommand("[y]ank", hasRows),
		formatCommand("[q]uit", true),
	}
	b.WriteString(strings.Join(hints, "  "))
	return b.String()
}

func (m *Model) renderFormView() string {
	var b strings.Builder
	heading := "New Transaction"
	if m.editingIndex > 0 {
		if tx, err := m.ledger.Get(m.editingIndex); err == nil {
			heading = fmt.Sprintf("Edit Transaction %d", tx.ID)
		}
	}
	b.WriteString(titleStyle.Render("-- "+heading+" --") + "\n\n")

	focus := m.form.focusedField
	fmt.Fprintf(&b, "%s Date:        %s\n", cursorMarker(focus == focusDate), m.form.date.display(focus == focusDate))
	fmt.Fprintf(&b, "%s Customer ID: %s\n", cursorMarker(focus == focusCustomer), m.form.customerInput.View())
	if focus == focusCustomer {
		for _, suggestion := range m.customerSuggestions() {
			uses := m.customers.Uses(suggestion)
			fmt.Fprintf(&b, "    %s %s\n", suggestion, formatFrequency(fmt.Sprintf("(%d)", uses)))
		}
	}
	fmt.Fprintf(&b, "%s Amount:      %s\n", cursorMarker(focus == focusAmount), m.form.amountInput.View())
	fmt.Fprintf(&b, "%s Type:        %s\n", cursorMarker(focus == focusKind), m.renderKind(focus == focusKind))
	fmt.Fprintf(&b, "%s Description: %s\n", cursorMarker(focus == focusDescription), m.form.descriptionInput.View())

	if msg := m.statusLine(); msg != "" {
		fmt.Fprintf(&b, "\n%s\n", msg)
	}
	b.WriteString("\n[tab]next\n[shift+tab]prev\n[ctrl+s]save\n[esc]cancel")
	return b.String()
}

func (m *Model) renderKind(focused bool) string {
	options := make([]string, len(entryKinds))
	for i, kind := range entryKinds {
		if kind == m.form.kind {
			options[i] = formatSelected("(" + kind + ")")
		} else {
			options[i] = " " + kind + " "
		}
	}
	out := strings.Join(options, " ")
	if !isEntryKind(m.form.kind) {
		out += " " + formatDirty("["+m.form.kind+"]")
	}
	if focused {
		out += "  " + dimmedColor.Render("space to switch")
	}
	return out
}

func isEntryKind(kind string) bool {
	for _, k := range entryKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (m *Model) renderConfirmView() string {
	var b strings.Builder
	switch m.pendingConfirm {
	case confirmWrite:
		fmt.Fprintf(&b, "Write %d transactions to %s?\n\n", m.ledger.Len(), m.opts.LedgerFile)
		if m.confirmDetail != "" {
			b.WriteString(m.confirmDetail)
			if !strings.HasSuffix(m.confirmDetail, "\n") {
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	case confirmDelete:
		if tx, err := m.ledger.Get(m.selectedIndex()); err == nil {
			fmt.Fprintf(&b, "Delete transaction ID %d?\n\n%s\n\n", tx.ID, tx.String())
		}
	case confirmQuit:
		b.WriteString("You have unsaved changes. Quit anyway?\n")
		fmt.Fprintf(&b, "They will be kept in %s for next time.\n\n", m.opts.SessionFile)
	}
	b.WriteString("[y]es  [n]o")
	return b.String()
}

func (m *Model) renderAnalysisView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("-- Analysis --") + "\n")
	b.WriteString(store.Analysis(m.ledger.Analyze()))
	b.WriteString("\n[esc]back")
	return b.String()
}
