package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tontine/renderer"
	"github.com/google/subcommands"
)

// tontinesCmd holds the flags for the 'tontines' subcommand.
type tontinesCmd struct{}

func (*tontinesCmd) Name() string     { return "tontines" }
func (*tontinesCmd) Synopsis() string { return "list tontines" }
func (*tontinesCmd) Usage() string {
	return `tnt tontines

  Lists all tontines with their status and current round.
`
}

func (*tontinesCmd) SetFlags(f *flag.FlagSet) {}

func (c *tontinesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TontinesMarkdown(l))
	return subcommands.ExitSuccess
}
