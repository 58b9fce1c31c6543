package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tontine"
	"github.com/etnz/tontine/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display an overall ledger summary" }
func (*summaryCmd) Usage() string {
	return `tnt summary [-d <date>]

  Displays an overall summary of the ledger: members, tontines, pending
  rounds and the amounts collected and paid out during the month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tontine.Today().String(), "Date for the summary. See the user manual for supported date formats.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tontine.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(l.Summary(on)))
	return subcommands.ExitSuccess
}
