package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// rmMemberCmd holds the flags for the 'rm-member' subcommand.
type rmMemberCmd struct{}

func (*rmMemberCmd) Name() string     { return "rm-member" }
func (*rmMemberCmd) Synopsis() string { return "remove a member" }
func (*rmMemberCmd) Usage() string {
	return `tnt rm-member <cni|name|id>

  Removes a member. A member holding a position in a tontine that is not
  completed cannot be removed.
`
}

func (*rmMemberCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmMemberCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one member, got %d arguments", f.NArg()))
	}
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	m, err := findMember(l, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if err := l.DeleteMember(m.ID); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed member %q\n", m.Name)
	return subcommands.ExitSuccess
}
