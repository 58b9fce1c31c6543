package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/tontine"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole ledger to a file" }
func (*exportCmd) Usage() string {
	return `tnt export -o <file>

  Exports the whole ledger. The format follows the file extension:
  .json for a backup that 'tnt import' can read back, .xlsx for an
  Excel workbook with one sheet per collection.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "tontine-export.json", "Output file, .json or .xlsx.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}

	switch strings.ToLower(filepath.Ext(c.output)) {
	case ".xlsx":
		w, err := os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer w.Close()
		if err := tontine.ExportWorkbook(l, w); err != nil {
			return fail(err)
		}
	case ".json":
		b, err := tontine.EncodeDatabase(l)
		if err != nil {
			return fail(err)
		}
		if err := os.WriteFile(c.output, b, 0644); err != nil {
			return fail(err)
		}
	default:
		return fail(fmt.Errorf("unsupported export format %q, use .json or .xlsx", filepath.Ext(c.output)))
	}

	fmt.Printf("Exported ledger to %s\n", c.output)
	return subcommands.ExitSuccess
}
