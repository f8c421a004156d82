// Package session keeps a snapshot of unsaved ledger changes between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
)

// DefaultFileName is used when no session path is configured.
const DefaultFileName = ".ledgerman-session.tmp"

// Snapshot is the persisted state of an unsaved ledger.
type Snapshot struct {
	SavedAt      time.Time          `json:"saved_at"`
	LedgerFile   string             `json:"ledger_file"`
	Transactions []core.Transaction `json:"transactions"`
}

// SaveLedger writes the pending transactions to the session file. An empty
// ledger removes the session instead.
func SaveLedger(path, ledgerFile string, transactions []core.Transaction) error {
	if len(transactions) == 0 {
		return DeleteSession(path)
	}

	snapshot := Snapshot{
		SavedAt:      time.Now().UTC(),
		LedgerFile:   ledgerFile,
		Transactions: transactions,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: failed to write session file: %w", core.ErrIO, err)
	}
	return nil
}

// LoadLedger reads the session file. A missing file yields an empty snapshot.
func LoadLedger(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: failed to read session file: %w", core.ErrIO, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("%w: failed to unmarshal session data: %w", core.ErrFormat, err)
	}
	return snapshot, nil
}

// HasSession reports whether a session file exists.
func HasSession(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DeleteSession removes the session file; a missing file is not an error.
func DeleteSession(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: failed to delete session file: %w", core.ErrIO, err)
	}
	return nil
}
