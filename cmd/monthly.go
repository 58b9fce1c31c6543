package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tontine"
	"github.com/etnz/tontine/renderer"
	"github.com/google/subcommands"
)

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	date string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly activity report" }
func (*monthlyCmd) Usage() string {
	return `tnt monthly [-d <date>]

  Displays the activity of the month containing the given date, tontine
  by tontine.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tontine.Today().String(), "Any date within the month to report. See the user manual for supported date formats.")
}

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tontine.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.MonthlyMarkdown(l, l.MonthlyReport(on)))
	return subcommands.ExitSuccess
}
