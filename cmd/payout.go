package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tontine"
	"github.com/etnz/tontine/renderer"
	"github.com/google/subcommands"
)

// payoutCmd holds the flags for the 'payout' subcommand.
type payoutCmd struct {
	tontine string
	round   int
	date    string
	method  string
	notes   string
}

func (*payoutCmd) Name() string     { return "payout" }
func (*payoutCmd) Synopsis() string { return "pay the current round's pot to its beneficiary" }
func (*payoutCmd) Usage() string {
	return `tnt payout -t <tontine> [-round <n>] [-d <date>] [-method <method>]

  Hands the pot of a round (the current one by default) to its
  beneficiary. The
  round must be fully paid: every member must have contributed. The pot
  is the sum of the round's contributions, penalties included. On
  success the round is closed and the rotation advances.
`
}

func (c *payoutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tontine, "t", "", "Tontine paying out.")
	f.IntVar(&c.round, "round", 0, "Round to pay out. Defaults to the current round.")
	f.StringVar(&c.date, "d", tontine.Today().String(), "Payout date. See the user manual for supported date formats.")
	f.StringVar(&c.method, "method", "cash", "Payment method: cash, mobile, bank or check.")
	f.StringVar(&c.notes, "notes", "", "Free-form note attached to the payout.")
}

func (c *payoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tontine.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	method, err := tontine.ParseMethod(c.method)
	if err != nil {
		return fail(err)
	}

	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	t, err := findTontine(l, c.tontine)
	if err != nil {
		return fail(err)
	}

	p, err := l.ProcessPayout(tontine.PayoutRequest{
		TontineID: t.ID,
		Round:     c.round,
		Date:      on,
		Method:    method,
		Notes:     c.notes,
	})
	if err != nil {
		return fail(err)
	}
	if err := encodeLedger(ctx, l); err != nil {
		return fail(err)
	}

	printMarkdown(renderer.ReceiptMarkdown(l, p))
	return subcommands.ExitSuccess
}
