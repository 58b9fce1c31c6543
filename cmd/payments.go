package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tontine"
	"github.com/etnz/tontine/renderer"
	"github.com/google/subcommands"
)

// paymentsCmd holds the flags for the 'payments' subcommand.
type paymentsCmd struct {
	tontine string
	member  string
	ref     string
}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "list recorded payments" }
func (*paymentsCmd) Usage() string {
	return `tnt payments [-t <tontine>] [-m <member>] [-ref <fragment>]

  Lists payments, most filters combine. -ref matches a fragment of the
  payment reference, ignoring case.
`
}

func (c *paymentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tontine, "t", "", "Only payments of this tontine.")
	f.StringVar(&c.member, "m", "", "Only payments of this member, by CNI or name.")
	f.StringVar(&c.ref, "ref", "", "Only payments whose reference contains this fragment.")
}

func (c *paymentsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}

	var payments []*tontine.Payment
	switch {
	case c.ref != "":
		payments = l.SearchPayments(c.ref)
	case c.tontine != "":
		t, err := findTontine(l, c.tontine)
		if err != nil {
			return fail(err)
		}
		payments = l.PaymentsOf(t.ID)
	default:
		payments = l.Payments()
	}

	if c.member != "" {
		m, err := findMember(l, c.member)
		if err != nil {
			return fail(err)
		}
		kept := payments[:0:0]
		for _, p := range payments {
			if p.MemberID == m.ID {
				kept = append(kept, p)
			}
		}
		payments = kept
	}

	printMarkdown(renderer.PaymentsMarkdown(l, payments))
	return subcommands.ExitSuccess
}
