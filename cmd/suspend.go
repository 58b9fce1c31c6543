package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// suspendCmd holds the flags for the 'suspend' subcommand.
type suspendCmd struct{}

func (*suspendCmd) Name() string     { return "suspend" }
func (*suspendCmd) Synopsis() string { return "suspend an active tontine" }
func (*suspendCmd) Usage() string {
	return `tnt suspend <tontine>

  Suspends an active tontine. No payment can be recorded until it is
  resumed.
`
}

func (*suspendCmd) SetFlags(f *flag.FlagSet) {}

func (c *suspendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := l.SuspendTontine(t.ID); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Suspended tontine %q\n", t.Name)
	return subcommands.ExitSuccess
}
