package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tontine"
	"github.com/etnz/tontine/renderer"
	"github.com/google/subcommands"
)

// payCmd holds the flags for the 'pay' subcommand.
type payCmd struct {
	tontine string
	member  string
	round   int
	amount  float64
	date    string
	method  string
	notes   string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a member's contribution" }
func (*payCmd) Usage() string {
	return `tnt pay -t <tontine> -m <member> -amount <amount> [-round <n>] [-d <date>] [-method <method>]

  Records a member's contribution. By default the payment goes to the
  tontine's current round; -round lets a member pay a later round ahead
  of the payouts, as long as they have paid every round before it. The
  amount must match exactly what the member owes: the base amount, plus
  the late penalty when the payment date is past the round's due date.
  Prints a receipt on success.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tontine, "t", "", "Tontine receiving the contribution.")
	f.StringVar(&c.member, "m", "", "Member paying, by CNI or name.")
	f.IntVar(&c.round, "round", 0, "Round to pay. Defaults to the current round.")
	f.Float64Var(&c.amount, "amount", 0, "Amount handed over, penalty included.")
	f.StringVar(&c.date, "d", tontine.Today().String(), "Payment date. See the user manual for supported date formats.")
	f.StringVar(&c.method, "method", "cash", "Payment method: cash, mobile, bank or check.")
	f.StringVar(&c.notes, "notes", "", "Free-form note attached to the payment.")
}

func (c *payCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	m, err := findMember(l, c.member)
	if err != nil {
		return fail(err)
	}

	p, err := l.RecordContribution(tontine.Contribution{
		TontineID: t.ID,
		MemberID:  m.ID,
		Round:     c.round,
		Amount:    tontine.M(c.amount, t.Amount.Currency()),
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
