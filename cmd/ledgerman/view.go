package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "print the transactions as a table" }
func (*viewCmd) Usage() string {
	return `view:
  Print every transaction in the ledger file.
`
}

func (*viewCmd) SetFlags(*flag.FlagSet) {}

func (c *viewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "view: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (*viewCmd) run(w io.Writer) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, l.View())
	return err
}
