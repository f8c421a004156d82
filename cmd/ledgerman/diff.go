package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~jakintosh/ledgerman/internal/session"
	"git.sr.ht/~jakintosh/ledgerman/internal/store"
	"github.com/google/subcommands"
)

type diffCmd struct{}

func (*diffCmd) Name() string     { return "diff" }
func (*diffCmd) Synopsis() string { return "show what saving the pending session would change" }
func (*diffCmd) Usage() string {
	return `diff:
  Print a unified diff between the ledger file and the unsaved changes
  kept in the session file.
`
}

func (*diffCmd) SetFlags(*flag.FlagSet) {}

func (c *diffCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "diff: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (*diffCmd) run(w io.Writer) error {
	snapshot, err := session.LoadLedger(cfg.SessionFile)
	if err != nil {
		return err
	}
	if len(snapshot.Transactions) == 0 {
		_, err := fmt.Fprintln(w, "No unsaved changes.")
		return err
	}

	target := snapshot.LedgerFile
	if target == "" {
		target = cfg.LedgerFile
	}
	diff, err := store.Preview(target, snapshot.Transactions)
	if err != nil {
		return err
	}
	if diff == "" {
		_, err := fmt.Fprintf(w, "Session matches '%s'.\n", target)
		return err
	}
	_, err = io.WriteString(w, diff)
	return err
}
