package tontine

import (
	"fmt"
	"testing"
)

// XOF is a helper for tests to create CFA franc money from const.
func XOF(v float64) Money { return M(v, "XOF") }

var testNames = []string{"Awa Diop", "Moussa Ndiaye", "Fatou Sall", "Ibrahima Ba", "Aminata Sow"}

// newGroup builds a ledger with n registered members and one active monthly
// tontine of 10000 XOF starting 2024-01-01, members positioned in
// registration order.
func newGroup(t *testing.T, n int) (*Ledger, *Tontine, []*Member) {
	t.Helper()
	l := NewLedger()
	members := make([]*Member, 0, n)
	positions := make([]Position, 0, n)
	for i := range n {
		m := NewMember(testNames[i], fmt.Sprintf("CNI-%03d", i+1), "")
		if err := l.AddMember(m); err != nil {
			t.Fatalf("AddMember(%q): %v", m.Name, err)
		}
		members = append(members, m)
		positions = append(positions, Position{Position: i + 1, MemberID: m.ID})
	}
	tn, err := NewTontine("Caisse du marché", XOF(10000), Monthly, MustParse("2024-01-01"), positions)
	if err != nil {
		t.Fatalf("NewTontine: %v", err)
	}
	if err := l.AddTontine(tn); err != nil {
		t.Fatalf("AddTontine: %v", err)
	}
	return l, tn, members
}

// payRound records an on-time contribution for every member of the current
// round.
func payRound(t *testing.T, l *Ledger, tn *Tontine) {
	t.Helper()
	on := tn.DueDate(tn.CurrentRound)
	for _, p := range tn.Positions {
		a := Assess(tn, tn.CurrentRound, on)
		if _, err := l.RecordContribution(Contribution{
			TontineID: tn.ID, MemberID: p.MemberID, Amount: a.Total, Date: on,
		}); err != nil {
			t.Fatalf("RecordContribution(member %s, round %d): %v", p.MemberID, tn.CurrentRound, err)
		}
	}
}
