package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/tontine"
	"github.com/etnz/tontine/renderer"
	"github.com/google/subcommands"
)

// receiptCmd holds the flags for the 'receipt' subcommand.
type receiptCmd struct{}

func (*receiptCmd) Name() string     { return "receipt" }
func (*receiptCmd) Synopsis() string { return "print the receipt of a payment" }
func (*receiptCmd) Usage() string {
	return `tnt receipt <reference>

  Prints the receipt of the payment with the given reference.
`
}

func (*receiptCmd) SetFlags(f *flag.FlagSet) {}

// findPayment resolves a payment from its reference or id. A reference
// fragment is accepted when it matches a single payment.
func findPayment(l *tontine.Ledger, ref string) (*tontine.Payment, error) {
	if p, err := l.Payment(ref); err == nil {
		return p, nil
	}
	matches := l.SearchPayments(ref)
	for _, p := range matches {
		if strings.EqualFold(p.Reference, ref) {
			return p, nil
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("%d payments match %q, give a full reference", len(matches), ref)
	}
	return nil, fmt.Errorf("no payment matching %q", ref)
}

func (c *receiptCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one reference, got %d arguments", f.NArg()))
	}
	l, err := decodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	p, err := findPayment(l, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ReceiptMarkdown(l, p))
	return subcommands.ExitSuccess
}
