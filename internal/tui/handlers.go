package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes keyboard input to the handler of the current view
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+q" {
		return m, m.quit()
	}
	switch m.currentView {
	case viewList:
		return m, m.updateListView(msg)
	case viewForm:
		return m, m.updateFormView(msg)
	case viewConfirm:
		return m, m.updateConfirmView(msg)
	case viewAnalysis:
		return m, m.updateAnalysisView(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateListView(msg tea.KeyMsg) tea.Cmd {
	hasRows := m.ledger.Len() > 0
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "n":
		m.startNewTransaction()
		return nil
	case "e", "enter":
		if hasRows {
			m.startEditingTransaction(m.selectedIndex())
		}
		return nil
	case "d", "delete":
		if hasRows {
			m.openConfirm(confirmDelete, viewList)
		}
		return nil
	case "a":
		if hasRows {
			m.currentView = viewAnalysis
		} else {
			m.setStatus("No transactions to analyze", statusInfo, statusShortDuration)
		}
		return nil
	case "w":
		m.openWriteConfirm()
		return nil
	case "r":
		m.writeReport()
		return nil
	case "y":
		m.copySelected()
		return nil
	case "q":
		if m.ledger.Dirty() {
			m.openConfirm(confirmQuit, viewList)
			return nil
		}
		return m.quit()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *Model) updateFormView(msg tea.KeyMsg) tea.Cmd {
	switch m.form.focusedField {
	case focusDate:
		if m.handleDateKey(msg) {
			return nil
		}
	case focusKind:
		switch msg.String() {
		case " ", "left", "right", "up", "down":
			m.form.toggleKind(1)
			return nil
		case "c":
			m.form.kind = entryKinds[0]
			return nil
		case "d":
			m.form.kind = entryKinds[1]
			return nil
		}
	}

	switch msg.String() {
	case "ctrl+s":
		m.evaluateAmountField()
		m.submitForm()
		return nil
	case "esc":
		m.cancelForm()
		return nil
	case "shift+tab":
		m.evaluateAmountField()
		m.retreatFocus()
		return nil
	case "tab":
		if !m.tryAcceptSuggestion() {
			m.evaluateAmountField()
			m.advanceFocus()
		}
		return nil
	case "enter":
		m.evaluateAmountField()
		if m.form.focusedField == focusDescription {
			m.submitForm()
		} else {
			m.advanceFocus()
		}
		return nil
	}

	cmd := m.updateFocusedInput(msg)
	m.refreshSuggestions()
	return cmd
}

func (m *Model) updateConfirmView(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		kind := m.pendingConfirm
		m.pendingConfirm = confirmNone
		m.currentView = m.confirmReturnView
		switch kind {
		case confirmWrite:
			m.writeLedger()
		case confirmDelete:
			m.deleteSelected()
		case confirmQuit:
			return m.quit()
		}
	case "n", "N", "esc", "q":
		if m.pendingConfirm == confirmDelete {
			m.setStatus("Deletion cancelled", statusInfo, statusShortDuration)
		}
		m.pendingConfirm = confirmNone
		m.currentView = m.confirmReturnView
	}
	return nil
}

func (m *Model) updateAnalysisView(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "a", "enter":
		m.currentView = viewList
	}
	return nil
}
