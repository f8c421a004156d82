package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~jakintosh/ledgerman/internal/intelligence"
	"github.com/google/subcommands"
	"github.com/mattn/go-runewidth"
)

type customersCmd struct{}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list known customer ids" }
func (*customersCmd) Usage() string {
	return `customers [prefix]:
  List customer ids starting with prefix, most used first, with the
  number of transactions referencing each.
`
}

func (*customersCmd) SetFlags(*flag.FlagSet) {}

func (c *customersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	if err := c.run(os.Stdout, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "customers: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (*customersCmd) run(w io.Writer, prefix string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}
	customers := intelligence.NewCustomers(l.Transactions())
	if customers.Len() == 0 {
		_, err := fmt.Fprintln(w, "No customers in the ledger.")
		return err
	}
	matches := customers.Find(prefix)
	if len(matches) == 0 {
		_, err := fmt.Fprintf(w, "No known customers match '%s'.\n", prefix)
		return err
	}

	width := 0
	for _, id := range matches {
		width = max(width, runewidth.StringWidth(id))
	}
	for _, id := range matches {
		if _, err := fmt.Fprintf(w, "%s  %d\n", runewidth.FillRight(id, width), customers.Uses(id)); err != nil {
			return err
		}
	}
	return nil
}
