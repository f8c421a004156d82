package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"git.sr.ht/~jakintosh/ledgerman/internal/menu"
	"github.com/google/subcommands"
)

type menuCmd struct {
	noAutoLoad bool
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive numbered menu (the default)" }
func (*menuCmd) Usage() string {
	return `menu [-no-autoload]:
  Load, add, view, update, delete, analyze, save and report transactions
  through a numbered menu.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noAutoLoad, "no-autoload", false, "start with an empty ledger instead of reading the ledger file")
}

func (c *menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m := menu.New(os.Stdin, os.Stdout, menu.Options{
		LedgerFile:  cfg.LedgerFile,
		ReportFile:  cfg.ReportFile,
		SessionFile: cfg.SessionFile,
		AutoLoad:    cfg.AutoLoad && !c.noAutoLoad,
		Logger:      logger,
	})
	if err := m.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "menu: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
