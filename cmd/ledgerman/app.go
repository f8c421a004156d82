package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~jakintosh/ledgerman/internal/config"
	"git.sr.ht/~jakintosh/ledgerman/internal/ledger"
	"git.sr.ht/~jakintosh/ledgerman/internal/log"
	"git.sr.ht/~jakintosh/ledgerman/internal/session"
	"git.sr.ht/~jakintosh/ledgerman/internal/store"
	"github.com/google/subcommands"
)

// A CLI run is short lived, so the resolved configuration and logger are
// package globals set once by main.
var (
	cfg    *config.Config
	logger = log.Discard()
)

var commands = []subcommands.Command{
	&menuCmd{},
	&tuiCmd{},
	&viewCmd{},
	&analyzeCmd{},
	&reportCmd{},
	&diffCmd{},
	&customersCmd{},
}

// setup validates the configuration once flags have been applied.
func setup() error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger = log.New(log.Config{
		Level:     cfg.Level(),
		Component: log.ComponentApp,
		Output:    os.Stderr,
	})
	log.SetDefault(logger)
	logger.Debug("configuration loaded", log.FieldPath, cfg.LedgerFile)
	return nil
}

// loadLedger reads the configured ledger file for the one-shot commands.
func loadLedger() (*ledger.Ledger, error) {
	transactions, err := store.LoadFile(cfg.LedgerFile)
	if err != nil {
		return nil, err
	}
	logger.Info("ledger loaded", log.FieldPath, cfg.LedgerFile, log.FieldCount, len(transactions))
	return ledger.New(transactions...), nil
}

// restoreSession offers a pending session before a full-screen program takes
// over the terminal. It reports whether l now holds the restored records.
func restoreSession(in io.Reader, out io.Writer, sessionFile string, l *ledger.Ledger) bool {
	if !session.HasSession(sessionFile) {
		return false
	}
	fmt.Fprint(out, "Previous session found. Restore it? [y/N]: ")
	answer, _ := bufio.NewReader(in).ReadString('\n')
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		if err := session.DeleteSession(sessionFile); err != nil {
			logger.Warn("failed to discard session", log.FieldPath, sessionFile, log.FieldError, err)
		}
		return false
	}

	snapshot, err := session.LoadLedger(sessionFile)
	if err != nil {
		fmt.Fprintf(out, "Warning: failed to load previous session: %v\n", err)
		return false
	}
	l.Restore(snapshot.Transactions)
	fmt.Fprintf(out, "Restored %d transactions from previous session.\n", len(snapshot.Transactions))
	return true
}
