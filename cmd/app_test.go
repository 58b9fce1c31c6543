package cmd

import (
	"context"
	"testing"

	"github.com/etnz/tontine"
)

func newTestLedger(t *testing.T) (*tontine.Ledger, *tontine.Tontine, []*tontine.Member) {
	t.Helper()
	l := tontine.NewLedger()
	var members []*tontine.Member
	var positions []tontine.Position
	for i, name := range []string{"Awa Diop", "Moussa Ndiaye", "Fatou Sall"} {
		m := tontine.NewMember(name, "CNI-20"+string(rune('0'+i)), "")
		if err := l.AddMember(m); err != nil {
			t.Fatalf("AddMember: %v", err)
		}
		members = append(members, m)
		positions = append(positions, tontine.Position{Position: i + 1, MemberID: m.ID})
	}
	tn, err := tontine.NewTontine("Caisse du marché", tontine.F(10000), tontine.Monthly,
		tontine.MustParse("2024-01-01"), positions)
	if err != nil {
		t.Fatalf("NewTontine: %v", err)
	}
	if err := l.AddTontine(tn); err != nil {
		t.Fatalf("AddTontine: %v", err)
	}
	return l, tn, members
}

func TestFindMember(t *testing.T) {
	l, _, members := newTestLedger(t)

	cases := []struct {
		ref  string
		want string
	}{
		{"CNI-200", members[0].ID},
		{members[1].ID, members[1].ID},
		{"fatou sall", members[2].ID},
	}
	for _, c := range cases {
		m, err := findMember(l, c.ref)
		if err != nil {
			t.Errorf("findMember(%q): %v", c.ref, err)
			continue
		}
		if m.ID != c.want {
			t.Errorf("findMember(%q) = %s, want %s", c.ref, m.ID, c.want)
		}
	}

	if _, err := findMember(l, "nobody"); err == nil {
		t.Error("findMember(nobody) should fail")
	}
}

func TestFindTontine(t *testing.T) {
	l, tn, _ := newTestLedger(t)

	for _, ref := range []string{tn.ID, "Caisse du marché", "caisse du marché"} {
		got, err := findTontine(l, ref)
		if err != nil {
			t.Errorf("findTontine(%q): %v", ref, err)
			continue
		}
		if got.ID != tn.ID {
			t.Errorf("findTontine(%q) = %s, want %s", ref, got.ID, tn.ID)
		}
	}

	if _, err := findTontine(l, "no such group"); err == nil {
		t.Error("findTontine(no such group) should fail")
	}
}

func TestFindPayment(t *testing.T) {
	l, tn, members := newTestLedger(t)
	p, err := l.RecordContribution(tontine.Contribution{
		TontineID: tn.ID, MemberID: members[0].ID,
		Amount: tontine.F(10000), Date: tontine.MustParse("2024-01-01"),
	})
	if err != nil {
		t.Fatalf("RecordContribution: %v", err)
	}

	got, err := findPayment(l, p.Reference)
	if err != nil {
		t.Fatalf("findPayment(%q): %v", p.Reference, err)
	}
	if got.ID != p.ID {
		t.Errorf("findPayment(%q) = %s, want %s", p.Reference, got.ID, p.ID)
	}

	// A fragment matching a single payment is accepted too.
	frag := p.Reference[len(p.Reference)-6:]
	if got, err := findPayment(l, frag); err != nil || got.ID != p.ID {
		t.Errorf("findPayment(%q) = %v, %v", frag, got, err)
	}

	if _, err := findPayment(l, "REF00000000-XXXXXX"); err == nil {
		t.Error("findPayment(unknown) should fail")
	}
}

func TestLedgerRoundTripThroughStore(t *testing.T) {
	old := *dataDir
	*dataDir = t.TempDir()
	defer func() { *dataDir = old }()

	l, tn, _ := newTestLedger(t)
	ctx := context.Background()
	if err := encodeLedger(ctx, l); err != nil {
		t.Fatalf("encodeLedger: %v", err)
	}

	reloaded, err := decodeLedger(ctx)
	if err != nil {
		t.Fatalf("decodeLedger: %v", err)
	}
	if got, err := reloaded.Tontine(tn.ID); err != nil || got.Name != tn.Name {
		t.Errorf("reloaded tontine = %v, %v", got, err)
	}
	if len(reloaded.Members()) != 3 {
		t.Errorf("reloaded members = %d, want 3", len(reloaded.Members()))
	}
}
