package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// rmTontineCmd holds the flags for the 'rm-tontine' subcommand.
type rmTontineCmd struct{}

func (*rmTontineCmd) Name() string     { return "rm-tontine" }
func (*rmTontineCmd) Synopsis() string { return "remove a tontine" }
func (*rmTontineCmd) Usage() string {
	return `tnt rm-tontine <tontine>

  Removes a tontine. A tontine with recorded payments cannot be removed.
`
}

func (*rmTontineCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmTontineCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := l.DeleteTontine(t.ID); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed tontine %q\n", t.Name)
	return subcommands.ExitSuccess
}
