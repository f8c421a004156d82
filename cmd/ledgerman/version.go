package main

import (
	"context"
	"flag"
	"fmt"

	"git.sr.ht/~jakintosh/ledgerman/internal/version"
	"github.com/google/subcommands"
)

type versionCmd struct{}

func (*versionCmd) Name() string           { return "version" }
func (*versionCmd) Synopsis() string       { return "print build information" }
func (*versionCmd) Usage() string          { return "version:\n  Print the version, commit and build date.\n" }
func (*versionCmd) SetFlags(*flag.FlagSet) {}
func (*versionCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	fmt.Println(version.Get())
	return subcommands.ExitSuccess
}
