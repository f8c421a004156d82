package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"github.com/shopspring/decimal"
)

func TestSaveAndLoadLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	transactions := []core.Transaction{
		{
			ID:          1,
			Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			CustomerID:  "C1001",
			Amount:      decimal.RequireFromString("-40.25"),
			Kind:        core.KindDebit,
			Description: "Groceries",
		},
	}

	if err := SaveLedger(path, "ledger.csv", transactions); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !HasSession(path) {
		t.Fatalf("expected session file to exist")
	}

	snapshot, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snapshot.LedgerFile != "ledger.csv" || len(snapshot.Transactions) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	got := snapshot.Transactions[0]
	if !got.Amount.Equal(transactions[0].Amount) || !got.Date.Equal(transactions[0].Date) || got.Kind != core.KindDebit {
		t.Fatalf("transaction did not survive round trip: %+v", got)
	}
}

func TestSaveEmptyDeletesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SaveLedger(path, "ledger.csv", nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if HasSession(path) {
		t.Fatalf("expected session file to be removed")
	}
}

func TestLoadMissingSession(t *testing.T) {
	snapshot, err := LoadLedger(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot.Transactions) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snapshot)
	}
	if err := DeleteSession(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Fatalf("deleting a missing session should succeed, got %v", err)
	}
}

func TestLoadCorruptSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := LoadLedger(path); !errors.Is(err, core.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}
