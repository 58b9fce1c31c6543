package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tontine"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input string
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with an exported backup" }
func (*importCmd) Usage() string {
	return `tnt import -i <file.json> -force

  Replaces the whole ledger with the content of a .json backup produced
  by 'tnt export'. This discards the current ledger, so -force is
  required.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to import.")
	f.BoolVar(&c.force, "force", false, "Confirm replacing the current ledger.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		return fail(fmt.Errorf("import replaces the current ledger, run again with -force"))
	}
	b, err := os.ReadFile(c.input)
	if err != nil {
		return fail(err)
	}
	l, err := tontine.DecodeDatabase(b)
	if err != nil {
		return fail(err)
	}
	if err := encodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d members, %d tontines, %d payments from %s\n",
		len(l.Members()), len(l.Tontines()), len(l.Payments()), c.input)
	return subcommands.ExitSuccess
}
