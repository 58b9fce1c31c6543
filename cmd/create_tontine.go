package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/tontine"
	"github.com/google/subcommands"
)

// createTontineCmd holds the flags for the 'create-tontine' subcommand.
type createTontineCmd struct {
	name        string
	description string
	amount      float64
	currency    string
	frequency   string
	start       string
	members     string
}

func (*createTontineCmd) Name() string     { return "create-tontine" }
func (*createTontineCmd) Synopsis() string { return "create a new tontine" }
func (*createTontineCmd) Usage() string {
	return `tnt create-tontine -name <name> -amount <amount> -frequency <weekly|monthly|quarterly> -start <date> -members <cni,cni,...>

  Creates a new tontine. The members are given in rotation order: the
  first one receives the payout of round 1, the second of round 2, and
  so on. There are as many rounds as members.
`
}

func (c *createTontineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the tontine.")
	f.StringVar(&c.description, "description", "", "Free-form description.")
	f.Float64Var(&c.amount, "amount", 0, "Contribution amount per member per round.")
	f.StringVar(&c.currency, "currency", "", "Currency code. Defaults to "+tontine.DefaultCurrency+".")
	f.StringVar(&c.frequency, "frequency", "monthly", "Round frequency: weekly, monthly or quarterly.")
	f.StringVar(&c.start, "start", tontine.Today().String(), "Start date, due date of round 1. See the user manual for supported date formats.")
	f.StringVar(&c.members, "members", "", "Comma-separated member CNIs, in rotation order.")
}

func (c *createTontineCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	freq, err := tontine.ParseFrequency(c.frequency)
	if err != nil {
		return fail(err)
	}
	start, err := tontine.ParseDate(c.start)
	if err != nil {
		return fail(err)
	}

	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}

	var positions []tontine.Position
	for i, ref := range strings.Split(c.members, ",") {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		m, err := findMember(l, ref)
		if err != nil {
			return fail(err)
		}
		positions = append(positions, tontine.Position{Position: i + 1, MemberID: m.ID})
	}

	amount := tontine.F(c.amount)
	if c.currency != "" {
		amount = tontine.M(c.amount, c.currency)
	}

	t, err := tontine.NewTontine(c.name, amount, freq, start, positions)
	if err != nil {
		return fail(err)
	}
	t.Description = c.description

	if err := l.AddTontine(t); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Created tontine %q with %d members, %s per round (%s)\n",
		t.Name, t.TotalRounds(), t.Amount, t.ID)
	return subcommands.ExitSuccess
}
