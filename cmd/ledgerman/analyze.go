package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"git.sr.ht/~jakintosh/ledgerman/internal/store"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	plain bool
	width int
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "summarize totals by type and by customer" }
func (*analyzeCmd) Usage() string {
	return `analyze [-plain] [-width n]:
  Print credit, debit and transfer totals, the net balance and the balance
  of every customer.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print plain text instead of rendered markdown")
	f.IntVar(&c.width, "width", 80, "word wrap width of the rendered output")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *analyzeCmd) run(w io.Writer) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}
	summary := l.Analyze()
	if summary.IsEmpty() {
		return core.ErrNoTransactions
	}
	if c.plain {
		_, err = io.WriteString(w, store.Analysis(summary))
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(c.width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := renderer.Render(store.Markdown(summary))
	if err != nil {
		return fmt.Errorf("render analysis: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
