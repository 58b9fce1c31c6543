package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// rmPaymentCmd holds the flags for the 'rm-payment' subcommand.
type rmPaymentCmd struct{}

func (*rmPaymentCmd) Name() string     { return "rm-payment" }
func (*rmPaymentCmd) Synopsis() string { return "remove a mistaken payment" }
func (*rmPaymentCmd) Usage() string {
	return `tnt rm-payment <reference>

  Removes a payment recorded by mistake. Payouts, carried-over payments
  and contributions of a round already paid out are frozen and cannot
  be removed.
`
}

func (*rmPaymentCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmPaymentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := l.DeletePayment(p.ID); err != nil {
		return fail(err)
	}
	if err := encodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed payment %s\n", p.Reference)
	return subcommands.ExitSuccess
}
