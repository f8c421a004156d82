package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"git.sr.ht/~jakintosh/ledgerman/internal/ledger"
	"git.sr.ht/~jakintosh/ledgerman/internal/store"
	"git.sr.ht/~jakintosh/ledgerman/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"
)

type tuiCmd struct{}

func (*tuiCmd) Name() string     { return "tui" }
func (*tuiCmd) Synopsis() string { return "full-screen terminal interface" }
func (*tuiCmd) Usage() string {
	return `tui:
  Browse and edit the ledger in a full-screen table.
`
}

func (*tuiCmd) SetFlags(*flag.FlagSet) {}

func (*tuiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := ledger.New()
	if !restoreSession(os.Stdin, os.Stdout, cfg.SessionFile, l) {
		transactions, err := store.LoadFile(cfg.LedgerFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Failed to load ledger file '%s': %v\n", cfg.LedgerFile, err)
			return subcommands.ExitFailure
		}
		l.Replace(transactions)
	}

	model := tui.NewModel(l, tui.Options{
		LedgerFile:  cfg.LedgerFile,
		ReportFile:  cfg.ReportFile,
		SessionFile: cfg.SessionFile,
		Logger:      logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
