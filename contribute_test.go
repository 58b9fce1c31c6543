package tontine

import (
	"errors"
	"testing"
)

func TestRecordContribution(t *testing.T) {
	l, tn, members := newGroup(t, 3)

	p, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: XOF(10000), Date: MustParse("2024-01-01"),
	})
	if err != nil {
		t.Fatalf("RecordContribution: %v", err)
	}
	if p.Kind != KindContribution {
		t.Errorf("Kind = %s", p.Kind)
	}
	if p.Round != 1 {
		t.Errorf("Round = %d, want 1", p.Round)
	}
	if !p.Penalty.IsZero() || p.DaysLate != 0 {
		t.Errorf("on-time payment got penalty %s, %d days late", p.Penalty, p.DaysLate)
	}
	if p.Method != MethodCash {
		t.Errorf("Method = %s, want default cash", p.Method)
	}
	if p.Reference == "" {
		t.Error("payment has no reference")
	}
}

func TestRecordContributionLate(t *testing.T) {
	l, tn, members := newGroup(t, 3)

	// due 2024-01-01, paid 2024-01-05: 4 days late, 1000 penalty
	_, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: XOF(10000), Date: MustParse("2024-01-05"),
	})
	if !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("late payment of the base amount = %v, want ErrAmountMismatch", err)
	}

	p, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: XOF(11000), Date: MustParse("2024-01-05"),
	})
	if err != nil {
		t.Fatalf("RecordContribution: %v", err)
	}
	if !p.Penalty.Equal(XOF(1000)) {
		t.Errorf("Penalty = %s, want %s", p.Penalty, XOF(1000))
	}
	if p.DaysLate != 4 {
		t.Errorf("DaysLate = %d, want 4", p.DaysLate)
	}
	if !p.Amount.Equal(XOF(11000)) {
		t.Errorf("Amount = %s, want %s", p.Amount, XOF(11000))
	}
}

func TestRecordContributionRejections(t *testing.T) {
	l, tn, members := newGroup(t, 3)
	on := MustParse("2024-01-01")

	if _, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: XOF(10000), Date: on,
	}); err != nil {
		t.Fatalf("RecordContribution: %v", err)
	}

	tests := []struct {
		name string
		c    Contribution
		want error
	}{
		{"unknown tontine", Contribution{TontineID: "nope", MemberID: members[0].ID, Amount: XOF(10000), Date: on}, ErrNotFound},
		{"unknown member", Contribution{TontineID: tn.ID, MemberID: "nope", Amount: XOF(10000), Date: on}, ErrNotFound},
		{"second contribution same round", Contribution{TontineID: tn.ID, MemberID: members[0].ID, Amount: XOF(10000), Date: on}, ErrDuplicatePayment},
		{"wrong amount", Contribution{TontineID: tn.ID, MemberID: members[1].ID, Amount: XOF(9999), Date: on}, ErrAmountMismatch},
		{"round zero is the current round", Contribution{TontineID: tn.ID, MemberID: members[0].ID, Round: 0, Amount: XOF(10000), Date: on}, ErrDuplicatePayment},
		{"negative round", Contribution{TontineID: tn.ID, MemberID: members[1].ID, Round: -1, Amount: XOF(10000), Date: on}, ErrValidation},
		{"round past the rotation", Contribution{TontineID: tn.ID, MemberID: members[1].ID, Round: 4, Amount: XOF(10000), Date: on}, ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := l.RecordContribution(tc.c); !errors.Is(err, tc.want) {
				t.Errorf("RecordContribution = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRecordContributionUnpositionedMember(t *testing.T) {
	l, tn, _ := newGroup(t, 3)
	outsider := NewMember("Aminata Sow", "CNI-999", "")
	if err := l.AddMember(outsider); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	_, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: outsider.ID, Amount: XOF(10000), Date: MustParse("2024-01-01"),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("RecordContribution by outsider = %v, want ErrValidation", err)
	}
}

func TestRecordContributionSequencing(t *testing.T) {
	l, tn, members := newGroup(t, 3)

	if _, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: XOF(10000), Date: MustParse("2024-01-01"),
	}); err != nil {
		t.Fatalf("RecordContribution round 1: %v", err)
	}

	// round 3 with round 2 still unpaid is a gap in the member's sequence
	_, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Round: 3, Amount: XOF(10000), Date: MustParse("2024-01-02"),
	})
	if !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("RecordContribution round 3 with unpaid round 2 = %v, want ErrOutOfSequence", err)
	}
}

func TestRecordContributionAhead(t *testing.T) {
	l, tn, members := newGroup(t, 3)

	if _, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: XOF(10000), Date: MustParse("2024-01-01"),
	}); err != nil {
		t.Fatalf("RecordContribution round 1: %v", err)
	}

	// round 1 is not paid out yet, but the member's own sequence is gapless
	p, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Round: 2, Amount: XOF(10000), Date: MustParse("2024-01-02"),
	})
	if err != nil {
		t.Fatalf("RecordContribution round 2 ahead of payouts: %v", err)
	}
	if p.Round != 2 {
		t.Errorf("Round = %d, want 2", p.Round)
	}
	if p.Kind != KindContribution {
		t.Errorf("Kind = %s, want %s", p.Kind, KindContribution)
	}
	if !p.Penalty.IsZero() {
		t.Errorf("payment before round 2's due date got penalty %s", p.Penalty)
	}
	if p.DueDate != tn.DueDate(2) {
		t.Errorf("DueDate = %s, want %s", p.DueDate, tn.DueDate(2))
	}
}

func TestRoundFullEvent(t *testing.T) {
	l, tn, _ := newGroup(t, 3)
	var full []RoundFull
	l.Subscribe(func(e Event) {
		if f, ok := e.(RoundFull); ok {
			full = append(full, f)
		}
	})

	payRound(t, l, tn)
	if len(full) != 1 || full[0].Round != 1 {
		t.Fatalf("RoundFull events = %+v, want one for round 1", full)
	}
}
