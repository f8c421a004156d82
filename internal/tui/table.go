package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func newTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Date", Width: 10},
		{Title: "Customer ID", Width: 15},
		{Title: "Amount", Width: 10},
		{Title: "Type", Width: 8},
		{Title: "Description", Width: 24},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("13")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// refreshTable rebuilds the rows from the ledger, keeping the cursor in range.
func (m *Model) refreshTable() {
	transactions := m.ledger.Transactions()
	rows := make([]table.Row, len(transactions))
	for i, tx := range transactions {
		rows[i] = table.Row{
			strconv.Itoa(tx.ID),
			tx.DateString(),
			tx.CustomerID,
			tx.Amount.StringFixed(2),
			string(tx.Kind),
			tx.Description,
		}
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// resizeTable fits the table between the title and the command hints, and
// gives the description column whatever width is left.
func (m *Model) resizeTable() {
	m.table.SetHeight(max(m.height-chromeHeight, minTableHeight))

	columns := m.table.Columns()
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width + 2
	}
	columns[len(columns)-1].Width = max(m.width-used-2, 12)
	m.table.SetColumns(columns)
}
