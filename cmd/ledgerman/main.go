// Command ledgerman manages a CSV ledger of financial transactions from the
// terminal: a numbered menu, a full-screen UI, and one-shot subcommands for
// viewing, analyzing and reporting.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"git.sr.ht/~jakintosh/ledgerman/internal/config"
	"github.com/google/subcommands"
)

func main() {
	cfg = config.Load()
	flag.StringVar(&cfg.LedgerFile, "ledger-file", cfg.LedgerFile, "path to the CSV transaction file")
	flag.StringVar(&cfg.ReportFile, "report-file", cfg.ReportFile, "path of the generated report")
	flag.StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "where unsaved changes are kept between runs")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	// answers shell completion requests and exits; a no-op otherwise
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range commands {
		commander.Register(c, "ledger")
	}
	commander.Register(&versionCmd{}, "")

	flag.Parse()
	if err := setup(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	ctx := context.Background()
	if flag.NArg() == 0 {
		os.Exit(int((&menuCmd{}).Execute(ctx, flag.CommandLine)))
	}
	os.Exit(int(commander.Execute(ctx)))
}
