package tontine

import (
	"errors"
	"testing"
)

func TestAddMemberRejectsDuplicateCNI(t *testing.T) {
	l := NewLedger()
	if err := l.AddMember(NewMember("Awa Diop", "CNI-001", "")); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	err := l.AddMember(NewMember("Moussa Ndiaye", "CNI-001", ""))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("AddMember with duplicate cni = %v, want ErrValidation", err)
	}
}

func TestAddMemberValidation(t *testing.T) {
	tests := []struct {
		name   string
		member *Member
	}{
		{"missing name", NewMember("", "CNI-001", "")},
		{"missing cni", NewMember("Awa Diop", "", "")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := NewLedger().AddMember(tc.member); !errors.Is(err, ErrValidation) {
				t.Errorf("AddMember = %v, want ErrValidation", err)
			}
		})
	}
}

func TestUpdateMemberKeepsCNIUnique(t *testing.T) {
	l, _, members := newGroup(t, 3)

	changed := *members[0]
	changed.CNI = members[1].CNI
	if err := l.UpdateMember(&changed); !errors.Is(err, ErrValidation) {
		t.Fatalf("UpdateMember stealing a cni = %v, want ErrValidation", err)
	}

	changed = *members[0]
	changed.Phone = "+221771234567"
	if err := l.UpdateMember(&changed); err != nil {
		t.Fatalf("UpdateMember: %v", err)
	}
	got, _ := l.Member(members[0].ID)
	if got.Phone != "+221771234567" {
		t.Errorf("Phone = %q after update", got.Phone)
	}
}

func TestDeleteMemberGuardedByPosition(t *testing.T) {
	l, tn, members := newGroup(t, 3)

	if err := l.DeleteMember(members[0].ID); !errors.Is(err, ErrValidation) {
		t.Fatalf("DeleteMember of positioned member = %v, want ErrValidation", err)
	}

	// once the tontine completes, its members can leave the registry
	tn.Status = StatusCompleted
	if err := l.DeleteMember(members[0].ID); err != nil {
		t.Fatalf("DeleteMember after completion: %v", err)
	}
	if _, err := l.Member(members[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Member after delete = %v, want ErrNotFound", err)
	}
}

func TestNewTontineBijection(t *testing.T) {
	tests := []struct {
		name      string
		positions []Position
	}{
		{"duplicate position", []Position{{1, "a"}, {1, "b"}}},
		{"duplicate member", []Position{{1, "a"}, {2, "a"}}},
		{"position out of range", []Position{{1, "a"}, {3, "b"}}},
		{"no members", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTontine("Caisse", XOF(10000), Monthly, MustParse("2024-01-01"), tc.positions)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("NewTontine = %v, want ErrValidation", err)
			}
		})
	}
}

func TestAddTontineRequiresRegisteredMembers(t *testing.T) {
	l := NewLedger()
	tn, err := NewTontine("Caisse", XOF(10000), Monthly, MustParse("2024-01-01"),
		[]Position{{1, "ghost"}})
	if err != nil {
		t.Fatalf("NewTontine: %v", err)
	}
	if err := l.AddTontine(tn); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddTontine with unknown member = %v, want ErrNotFound", err)
	}
}

func TestDeleteTontineGuardedByPayments(t *testing.T) {
	l, tn, members := newGroup(t, 3)
	a := Assess(tn, 1, tn.StartDate)
	if _, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: a.Total, Date: tn.StartDate,
	}); err != nil {
		t.Fatalf("RecordContribution: %v", err)
	}

	if err := l.DeleteTontine(tn.ID); !errors.Is(err, ErrValidation) {
		t.Fatalf("DeleteTontine with payments = %v, want ErrValidation", err)
	}
}

func TestSuspendResume(t *testing.T) {
	l, tn, members := newGroup(t, 3)
	if err := l.SuspendTontine(tn.ID); err != nil {
		t.Fatalf("SuspendTontine: %v", err)
	}

	a := Assess(tn, 1, tn.StartDate)
	_, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: a.Total, Date: tn.StartDate,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("RecordContribution on suspended tontine = %v, want ErrValidation", err)
	}

	if err := l.ResumeTontine(tn.ID); err != nil {
		t.Fatalf("ResumeTontine: %v", err)
	}
	if _, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: a.Total, Date: tn.StartDate,
	}); err != nil {
		t.Fatalf("RecordContribution after resume: %v", err)
	}
}

func TestSearchPayments(t *testing.T) {
	l, tn, members := newGroup(t, 3)
	a := Assess(tn, 1, tn.StartDate)
	p, err := l.RecordContribution(Contribution{
		TontineID: tn.ID, MemberID: members[0].ID, Amount: a.Total, Date: tn.StartDate,
	})
	if err != nil {
		t.Fatalf("RecordContribution: %v", err)
	}

	if got := l.SearchPayments(p.Reference[3:10]); len(got) != 1 || got[0].ID != p.ID {
		t.Errorf("SearchPayments(%q) = %d payments", p.Reference[3:10], len(got))
	}
	if got := l.SearchPayments("NOPE-XX"); len(got) != 0 {
		t.Errorf("SearchPayments(no match) = %d payments, want 0", len(got))
	}
}
