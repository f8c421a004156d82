package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~jakintosh/ledgerman/internal/store"
	"github.com/google/subcommands"
)

type reportCmd struct {
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write the summary report" }
func (*reportCmd) Usage() string {
	return `report [-o path]:
  Write the financial summary report to the report file, or to stdout
  with -o -.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output path; '-' for stdout (default: the report file)")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *reportCmd) run(w io.Writer) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}
	summary := l.Analyze()

	switch c.output {
	case "-":
		return store.WriteReport(w, summary)
	case "":
		c.output = cfg.ReportFile
	}
	if err := store.WriteReportFile(c.output, summary); err != nil {
		return err
	}
	fmt.Fprintf(w, "Report generated and saved to '%s'\n", c.output)
	return nil
}
