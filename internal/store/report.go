package store

import (
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
)

// WriteReportFile writes the summary report to path, replacing its contents.
func WriteReportFile(path string, summary core.Summary) (err error) {
	if summary.IsEmpty() {
		return core.ErrNoTransactions
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", core.ErrIO, path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", core.ErrIO, path, closeErr)
		}
	}()
	return WriteReport(file, summary)
}

// WriteReport writes the fixed-layout plain-text summary report.
func WriteReport(w io.Writer, summary core.Summary) error {
	if summary.IsEmpty() {
		return core.ErrNoTransactions
	}
	if _, err := io.WriteString(w, Report(summary)); err != nil {
		return fmt.Errorf("%w: write report: %w", core.ErrIO, err)
	}
	return nil
}

// Report renders the summary report text.
func Report(summary core.Summary) string {
	var b strings.Builder
	b.WriteString("Financial Summary Report\n")
	b.WriteString("========================\n")
	fmt.Fprintf(&b, "Total Credits:   %s\n", core.FormatMoney(summary.Credit))
	fmt.Fprintf(&b, "Total Debits:    %s\n", core.FormatMoney(summary.Debit))
	fmt.Fprintf(&b, "Total Transfers: %s\n", core.FormatMoney(summary.Transfer))
	fmt.Fprintf(&b, "Net Balance:     %s\n", core.FormatMoney(summary.Net))
	b.WriteString("\n")
	b.WriteString("By Type:\n")
	for _, total := range summary.ByKind() {
		fmt.Fprintf(&b, "  %s: %s\n", kindLabel(total.Kind), core.FormatMoney(total.Total))
	}
	return b.String()
}

// Analysis renders the interactive summary: warnings, totals, per-type totals
// and the balance of each customer.
func Analysis(summary core.Summary) string {
	var b strings.Builder
	for _, warning := range summary.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", warning)
	}
	b.WriteString("\nFinancial Summary:\n")
	fmt.Fprintf(&b, "Total Credits:   %s\n", core.FormatMoney(summary.Credit))
	fmt.Fprintf(&b, "Total Debits:    %s\n", core.FormatMoney(summary.Debit))
	fmt.Fprintf(&b, "Total Transfers: %s\n", core.FormatMoney(summary.Transfer))
	fmt.Fprintf(&b, "Net Balance:     %s\n", core.FormatMoney(summary.Net))

	b.WriteString("\nBy Type:\n")
	for _, total := range summary.ByKind() {
		fmt.Fprintf(&b, "  %s: %s\n", kindLabel(total.Kind), core.FormatMoney(total.Total))
	}

	b.WriteString("\nBalance by Customer ID:\n")
	for _, customer := range summary.Customers {
		fmt.Fprintf(&b, "  Customer %s: %s\n", customer.CustomerID, core.FormatMoney(customer.Balance))
	}
	return b.String()
}

// Markdown renders the summary as a markdown document for terminal rendering.
func Markdown(summary core.Summary) string {
	var b strings.Builder
	b.WriteString("# Financial Summary\n\n")
	if summary.HasWarnings() {
		for _, warning := range summary.Warnings {
			fmt.Fprintf(&b, "> %s\n", warning)
		}
		b.WriteString("\n")
	}
	b.WriteString("| Type | Total |\n|:---|---:|\n")
	for _, total := range summary.ByKind() {
		fmt.Fprintf(&b, "| %s | %s |\n", kindLabel(total.Kind), core.FormatMoney(total.Total))
	}
	fmt.Fprintf(&b, "| **Net Balance** | **%s** |\n\n", core.FormatMoney(summary.Net))

	b.WriteString("## Balance by Customer\n\n")
	b.WriteString("| Customer | Balance |\n|:---|---:|\n")
	for _, customer := range summary.Customers {
		fmt.Fprintf(&b, "| %s | %s |\n", customer.CustomerID, core.FormatMoney(customer.Balance))
	}
	return b.String()
}

func kindLabel(kind core.Kind) string {
	s := string(kind)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
