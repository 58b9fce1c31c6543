package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tontine"
	"github.com/google/subcommands"
)

// addMemberCmd holds the flags for the 'add-member' subcommand.
type addMemberCmd struct {
	name    string
	cni     string
	phone   string
	email   string
	address string
}

func (*addMemberCmd) Name() string     { return "add-member" }
func (*addMemberCmd) Synopsis() string { return "register a new member" }
func (*addMemberCmd) Usage() string {
	return `tnt add-member -name <name> -cni <cni> [-phone <phone>]

  Registers a new member. The CNI (national id) must be unique across
  all members.
`
}

func (c *addMemberCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Member's full name.")
	f.StringVar(&c.cni, "cni", "", "Member's national id. Must be unique.")
	f.StringVar(&c.phone, "phone", "", "Member's phone number.")
	f.StringVar(&c.email, "email", "", "Member's email address.")
	f.StringVar(&c.address, "address", "", "Member's postal address.")
}

func (c *addMemberCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}

	m := tontine.NewMember(c.name, c.cni, c.phone)
	m.Email = c.email
	m.Address = c.address
	if err := l.AddMember(m); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Added member %q (%s)\n", m.Name, m.ID)
	return subcommands.ExitSuccess
}
