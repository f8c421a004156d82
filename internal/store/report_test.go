package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"github.com/shopspring/decimal"
)

func sampleSummary() core.Summary {
	return core.Summary{
		Count:    3,
		Credit:   decimal.RequireFromString("1250"),
		Debit:    decimal.RequireFromString("40"),
		Transfer: decimal.RequireFromString("100"),
		Net:      decimal.RequireFromString("1210"),
		Customers: []core.CustomerBalance{
			{CustomerID: "C1001", Balance: decimal.RequireFromString("1210")},
		},
	}
}

func TestReportExactLayout(t *testing.T) {
	expected := "Financial Summary Report\n" +
		"========================\n" +
		"Total Credits:   $1,250.00\n" +
		"Total Debits:    $40.00\n" +
		"Total Transfers: $100.00\n" +
		"Net Balance:     $1,210.00\n" +
		"\n" +
		"By Type:\n" +
		"  Credit: $1,250.00\n" +
		"  Debit: $40.00\n" +
		"  Transfer: $100.00\n"

	if actual := Report(sampleSummary()); actual != expected {
		t.Fatalf("report mismatch\nExpected:\n%q\n\nActual:\n%q", expected, actual)
	}
}

func TestReportNegativeNet(t *testing.T) {
	summary := core.Summary{
		Count:  2,
		Credit: decimal.RequireFromString("10"),
		Debit:  decimal.RequireFromString("50"),
		Net:    decimal.RequireFromString("-40"),
		Customers: []core.CustomerBalance{
			{CustomerID: "C2", Balance: decimal.RequireFromString("-40")},
		},
	}
	if out := Report(summary); !strings.Contains(out, "Net Balance:     $-40.00\n") {
		t.Fatalf("expected negative net after the symbol:\n%s", out)
	}
	if out := Analysis(summary); !strings.Contains(out, "  Customer C2: $-40.00") {
		t.Fatalf("expected negative customer balance after the symbol:\n%s", out)
	}
}

func TestWriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := WriteReportFile(path, sampleSummary()); err != nil {
		t.Fatalf("write report: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "Financial Summary Report\n") {
		t.Fatalf("unexpected report contents: %q", data)
	}
}

func TestWriteReportEmptySummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := WriteReportFile(path, core.Summary{}); !errors.Is(err, core.ErrNoTransactions) {
		t.Fatalf("expected ErrNoTransactions, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no report file, got %v", err)
	}
}

func TestWriteReportFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "report.txt")
	if err := WriteReportFile(path, sampleSummary()); !errors.Is(err, core.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestAnalysisIncludesCustomersAndWarnings(t *testing.T) {
	summary := sampleSummary()
	summary.Warnings = []string{"Unknown transaction type 'refund' encountered (transaction 9)."}
	out := Analysis(summary)
	for _, want := range []string{
		"Warning: Unknown transaction type 'refund'",
		"Net Balance:     $1,210.00",
		"  Customer C1001: $1,210.00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("analysis missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownTables(t *testing.T) {
	out := Markdown(sampleSummary())
	if !strings.Contains(out, "| Credit | $1,250.00 |") {
		t.Fatalf("markdown missing credit row:\n%s", out)
	}
	if !strings.Contains(out, "| C1001 | $1,210.00 |") {
		t.Fatalf("markdown missing customer row:\n%s", out)
	}
}
