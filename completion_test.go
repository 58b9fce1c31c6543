package tontine

import (
	"errors"
	"testing"
)

// runRotation pays and closes every round of the full rotation.
func runRotation(t *testing.T, l *Ledger, tn *Tontine) {
	t.Helper()
	for round := 1; round <= tn.TotalRounds(); round++ {
		payRound(t, l, tn)
		if _, err := l.ProcessPayout(PayoutRequest{TontineID: tn.ID}); err != nil {
			t.Fatalf("ProcessPayout round %d: %v", round, err)
		}
	}
}

func TestCompletionOpensExtraRounds(t *testing.T) {
	l, tn, _ := newGroup(t, 3)

	runRotation(t, l, tn)

	if tn.Status != StatusCompleted {
		t.Fatalf("Status = %s, want completed after the full rotation", tn.Status)
	}
	if !tn.AllowExtraRounds {
		t.Fatal("AllowExtraRounds = false, want true once the rotation is settled")
	}
	if tn.CurrentRound != 4 {
		t.Fatalf("CurrentRound = %d, want 4", tn.CurrentRound)
	}
	if tn.CompletedAt.IsZero() {
		t.Error("CompletedAt is zero")
	}
}

func TestCompletionByContributions(t *testing.T) {
	l, tn, members := newGroup(t, 3)

	// every member pays every round ahead of any payout
	for round := 1; round <= tn.TotalRounds(); round++ {
		on := tn.DueDate(round)
		for _, m := range members {
			if _, err := l.RecordContribution(Contribution{
				TontineID: tn.ID, MemberID: m.ID, Round: round, Amount: XOF(10000), Date: on,
			}); err != nil {
				t.Fatalf("RecordContribution(member %s, round %d): %v", m.Name, round, err)
			}
		}
	}

	if tn.Status != StatusCompleted {
		t.Fatalf("Status = %s, want completed once every round is fully contributed", tn.Status)
	}
	if !tn.AllowExtraRounds {
		t.Fatal("AllowExtraRounds = false, want true")
	}

	// the rotation's payouts are still owed and still processable
	p, err := l.ProcessPayout(PayoutRequest{TontineID: tn.ID})
	if err != nil {
		t.Fatalf("ProcessPayout on completed tontine: %v", err)
	}
	if p.MemberID != members[0].ID {
		t.Errorf("beneficiary = %s, want position 1 holder %s", p.MemberID, members[0].ID)
	}
}

func TestCarryoverReclassification(t *testing.T) {
	l, tn, members := newGroup(t, 3)
	runRotation(t, l, tn)

	var reclassified []PaymentReclassified
	l.Subscribe(func(e Event) {
		if r, ok := e.(PaymentReclassified); ok {
			reclassified = append(reclassified, r)
		}
	})

	// round 4 wraps around: (4-1)%3+1 = 1, back to the first position
	on := tn.DueDate(4)
	p, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[1].ID, Amount: XOF(10000), Date: on,
	})
	if err != nil {
		t.Fatalf("RecordContribution round 4: %v", err)
	}

	if p.Round != 4 {
		t.Errorf("Round = %d, want 4", p.Round)
	}
	if p.Kind != KindCarryover {
		t.Errorf("Kind = %s, want %s", p.Kind, KindCarryover)
	}
	if p.ReceiverID != members[0].ID {
		t.Errorf("ReceiverID = %s, want position 1 holder %s", p.ReceiverID, members[0].ID)
	}
	if len(reclassified) != 1 {
		t.Fatalf("PaymentReclassified events = %d, want 1", len(reclassified))
	}

	// idempotent: another completion check leaves the carryover alone
	l.checkCompletion(tn)
	if len(reclassified) != 1 {
		t.Errorf("reclassification replayed, events = %d", len(reclassified))
	}
}

func TestCarryoverReceiverRotation(t *testing.T) {
	tests := []struct {
		round int
		rank  int
	}{
		{4, 1},
		{5, 2},
		{6, 3},
		{7, 1},
	}
	_, tn, members := newGroup(t, 3)
	for _, tc := range tests {
		if got := tn.ReceiverFor(tc.round); got != members[tc.rank-1].ID {
			t.Errorf("ReceiverFor(%d) = %s, want rank %d holder", tc.round, got, tc.rank)
		}
	}
}

func TestCarryoverBeforeCompletionRejected(t *testing.T) {
	l, tn, members := newGroup(t, 3)

	payRound(t, l, tn)
	_, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Round: 4, Amount: XOF(10000), Date: tn.DueDate(4),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("RecordContribution past the rotation on a running tontine = %v, want ErrValidation", err)
	}
}

func TestCarryoverFrozen(t *testing.T) {
	l, tn, members := newGroup(t, 3)
	runRotation(t, l, tn)

	p, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: XOF(10000), Date: tn.DueDate(4),
	})
	if err != nil {
		t.Fatalf("RecordContribution: %v", err)
	}
	if err := l.DeletePayment(p.ID); err == nil {
		t.Fatal("DeletePayment of a carryover succeeded, want error")
	}
}
