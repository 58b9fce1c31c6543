package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tontine/renderer"
	"github.com/google/subcommands"
)

// roundsCmd holds the flags for the 'rounds' subcommand.
type roundsCmd struct{}

func (*roundsCmd) Name() string     { return "rounds" }
func (*roundsCmd) Synopsis() string { return "detail the rounds of a tontine" }
func (*roundsCmd) Usage() string {
	return `tnt rounds <tontine>

  Details every round of a tontine: receiver, due date, who has paid,
  the amounts collected and the payouts.
`
}

func (*roundsCmd) SetFlags(f *flag.FlagSet) {}

func (c *roundsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one tontine, got %d arguments", f.NArg()))
	}
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	t, err := findTontine(l, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RoundsMarkdown(l, t))
	return subcommands.ExitSuccess
}
