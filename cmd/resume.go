package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// resumeCmd holds the flags for the 'resume' subcommand.
type resumeCmd struct{}

func (*resumeCmd) Name() string     { return "resume" }
func (*resumeCmd) Synopsis() string { return "resume a suspended tontine" }
func (*resumeCmd) Usage() string {
	return `tnt resume <tontine>

  Resumes a suspended tontine.
`
}

func (*resumeCmd) SetFlags(f *flag.FlagSet) {}

func (c *resumeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := l.ResumeTontine(t.ID); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Resumed tontine %q\n", t.Name)
	return subcommands.ExitSuccess
}
