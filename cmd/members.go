package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tontine/renderer"
	"github.com/google/subcommands"
)

// membersCmd holds the flags for the 'members' subcommand.
type membersCmd struct {
	cni string
}

func (*membersCmd) Name() string     { return "members" }
func (*membersCmd) Synopsis() string { return "list registered members" }
func (*membersCmd) Usage() string {
	return `tnt members [-cni <cni>]

  Lists all registered members, or looks up the one holding the given CNI.
`
}

func (c *membersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cni, "cni", "", "Look up a single member by CNI.")
}

func (c *membersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}

	if c.cni != "" {
		m, err := l.MemberByCNI(c.cni)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", m.Name, m.CNI, m.Phone, m.ID)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.MembersMarkdown(l))
	return subcommands.ExitSuccess
}
