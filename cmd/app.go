// Package cmd implements the CLI application to manage tontines.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tontine"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addMemberCmd{}, "members")
	c.Register(&membersCmd{}, "members")
	c.Register(&rmMemberCmd{}, "members")

	c.Register(&createTontineCmd{}, "tontines")
	c.Register(&tontinesCmd{}, "tontines")
	c.Register(&roundsCmd{}, "tontines")
	c.Register(&suspendCmd{}, "tontines")
	c.Register(&resumeCmd{}, "tontines")
	c.Register(&rmTontineCmd{}, "tontines")

	c.Register(&payCmd{}, "payments")
	c.Register(&payoutCmd{}, "payments")
	c.Register(&paymentsCmd{}, "payments")
	c.Register(&receiptCmd{}, "payments")
	c.Register(&rmPaymentCmd{}, "payments")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&importCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".", "Path to the ledger data directory")
var remoteURL = flag.String("remote", "", "Base URL of a remote document store. Overrides -data.")
var remoteKey = flag.String("api-key", "", "API key for the remote document store")

// openStore returns the store selected by the global flags.
func openStore() (tontine.Store, error) {
	if *remoteURL != "" {
		return tontine.NewCloudStore(*remoteURL, *remoteKey), nil
	}
	return tontine.NewDirStore(*dataDir)
}

// decodeLedger loads the ledger from the app store.
func decodeLedger(ctx context.Context) (*tontine.Ledger, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	return tontine.OpenLedger(ctx, s)
}

// encodeLedger writes the ledger back to the app store.
func encodeLedger(ctx context.Context, l *tontine.Ledger) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	return tontine.SaveLedger(ctx, s, l)
}

// findTontine resolves a tontine from a user-supplied name or id,
// ignoring case on the name.
func findTontine(l *tontine.Ledger, ref string) (*tontine.Tontine, error) {
	if t, err := l.Tontine(ref); err == nil {
		return t, nil
	}
	for _, t := range l.Tontines() {
		if strings.EqualFold(t.Name, ref) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no tontine matching %q", ref)
}

// findMember resolves a member from a user-supplied CNI, name or id.
func findMember(l *tontine.Ledger, ref string) (*tontine.Member, error) {
	if m, err := l.MemberByCNI(ref); err == nil {
		return m, nil
	}
	if m, err := l.Member(ref); err == nil {
		return m, nil
	}
	for _, m := range l.Members() {
		if strings.EqualFold(m.Name, ref) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("no member matching %q", ref)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
