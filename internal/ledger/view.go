package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// EmptyViewMessage is rendered instead of a table when there is nothing to show.
const EmptyViewMessage = "No transactions to display."

const ruleWidth = 80

// View renders the transactions as a fixed-width table in display order.
func (l *Ledger) View() string {
	if len(l.transactions) == 0 {
		return EmptyViewMessage + "\n"
	}

	rule := strings.Repeat("-", ruleWidth) + "\n"
	var b strings.Builder
	b.WriteString(rule)
	b.WriteString(viewRow("ID", "Date", "Customer ID", "Amount", "Type", "Description"))
	b.WriteString(rule)
	for _, tx := range l.transactions {
		b.WriteString(viewRow(
			strconv.Itoa(tx.ID),
			tx.DateString(),
			tx.CustomerID,
			tx.Amount.StringFixed(2),
			string(tx.Kind),
			tx.Description,
		))
	}
	b.WriteString(rule)
	return b.String()
}

// viewRow lays out one line; columns are padded by display width so wide
// runes in customer ids keep the table aligned.
func viewRow(id, date, customer, amount, kind, description string) string {
	return fmt.Sprintf("%s %s %s %s %s %s\n",
		runewidth.FillRight(id, 5),
		runewidth.FillRight(date, 12),
		runewidth.FillRight(customer, 15),
		runewidth.FillLeft(amount, 10),
		runewidth.FillRight(kind, 10),
		description,
	)
}
