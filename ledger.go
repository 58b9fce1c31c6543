package tontine

import (
	"fmt"
	"slices"
	"strings"
)

// Ledger is the single holder of the application state: the member registry,
// the tontines, and every payment ever recorded. All mutations go through
// its methods, which validate before touching anything.
//
// The ledger is single-writer: methods are synchronous and not safe for
// concurrent mutation.
type Ledger struct {
	members  []*Member
	tontines []*Tontine
	payments []*Payment

	memberIndex  map[string]*Member
	tontineIndex map[string]*Tontine
	paymentIndex map[string]*Payment

	handlers []Handler
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		memberIndex:  make(map[string]*Member),
		tontineIndex: make(map[string]*Tontine),
		paymentIndex: make(map[string]*Payment),
	}
}

// Members returns the registry sorted by name.
func (l *Ledger) Members() []*Member {
	out := slices.Clone(l.members)
	slices.SortFunc(out, func(a, b *Member) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Member returns the member with the given id.
func (l *Ledger) Member(id string) (*Member, error) {
	if m, ok := l.memberIndex[id]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: member %q", ErrNotFound, id)
}

// MemberByCNI returns the member holding the given national identity number.
func (l *Ledger) MemberByCNI(cni string) (*Member, error) {
	for _, m := range l.members {
		if m.CNI == cni {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: member with cni %q", ErrNotFound, cni)
}

// AddMember registers a member, enforcing CNI uniqueness across the registry.
func (l *Ledger) AddMember(m *Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if _, ok := l.memberIndex[m.ID]; ok {
		return fmt.Errorf("%w: member id %q already registered", ErrValidation, m.ID)
	}
	if prev, err := l.MemberByCNI(m.CNI); err == nil {
		return fmt.Errorf("%w: cni %q already registered to %q", ErrValidation, m.CNI, prev.Name)
	}
	l.members = append(l.members, m)
	l.memberIndex[m.ID] = m
	return nil
}

// UpdateMember replaces a member's details. The CNI must stay unique.
func (l *Ledger) UpdateMember(m *Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if _, err := l.Member(m.ID); err != nil {
		return err
	}
	if prev, err := l.MemberByCNI(m.CNI); err == nil && prev.ID != m.ID {
		return fmt.Errorf("%w: cni %q already registered to %q", ErrValidation, m.CNI, prev.Name)
	}
	*l.memberIndex[m.ID] = *m
	return nil
}

// DeleteMember removes a member from the registry. A member holding a
// position in any non-completed tontine cannot be removed.
func (l *Ledger) DeleteMember(id string) error {
	m, err := l.Member(id)
	if err != nil {
		return err
	}
	for _, t := range l.tontines {
		if t.Status != StatusCompleted && t.HasMember(id) {
			return fmt.Errorf("%w: member %q holds a position in tontine %q", ErrValidation, m.Name, t.Name)
		}
	}
	l.members = slices.DeleteFunc(l.members, func(x *Member) bool { return x.ID == id })
	delete(l.memberIndex, id)
	return nil
}

// Tontines returns all tontines sorted by creation date then name.
func (l *Ledger) Tontines() []*Tontine {
	out := slices.Clone(l.tontines)
	slices.SortFunc(out, func(a, b *Tontine) int {
		if a.CreatedAt != b.CreatedAt {
			if a.CreatedAt.Before(b.CreatedAt) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Tontine returns the tontine with the given id.
func (l *Ledger) Tontine(id string) (*Tontine, error) {
	if t, ok := l.tontineIndex[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: tontine %q", ErrNotFound, id)
}

// AddTontine registers a tontine. Every positioned member must exist in the
// registry.
func (l *Ledger) AddTontine(t *Tontine) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, ok := l.tontineIndex[t.ID]; ok {
		return fmt.Errorf("%w: tontine id %q already registered", ErrValidation, t.ID)
	}
	for _, p := range t.Positions {
		if _, err := l.Member(p.MemberID); err != nil {
			return fmt.Errorf("position %d: %w", p.Position, err)
		}
	}
	l.tontines = append(l.tontines, t)
	l.tontineIndex[t.ID] = t
	return nil
}

// SuspendTontine pauses an active tontine.
func (l *Ledger) SuspendTontine(id string) error {
	t, err := l.Tontine(id)
	if err != nil {
		return err
	}
	if !t.IsActive() {
		return fmt.Errorf("%w: tontine %q is %s, only an active tontine can be suspended", ErrValidation, t.Name, t.Status)
	}
	t.Status = StatusSuspended
	return nil
}

// ResumeTontine reopens a suspended tontine.
func (l *Ledger) ResumeTontine(id string) error {
	t, err := l.Tontine(id)
	if err != nil {
		return err
	}
	if t.Status != StatusSuspended {
		return fmt.Errorf("%w: tontine %q is %s, only a suspended tontine can be resumed", ErrValidation, t.Name, t.Status)
	}
	t.Status = StatusActive
	return nil
}

// DeleteTontine removes a tontine. A tontine with recorded payments cannot
// be removed, its history must stay auditable.
func (l *Ledger) DeleteTontine(id string) error {
	t, err := l.Tontine(id)
	if err != nil {
		return err
	}
	if n := len(l.PaymentsOf(id)); n > 0 {
		return fmt.Errorf("%w: tontine %q has %d recorded payments", ErrValidation, t.Name, n)
	}
	l.tontines = slices.DeleteFunc(l.tontines, func(x *Tontine) bool { return x.ID == id })
	delete(l.tontineIndex, id)
	return nil
}

// Payments returns every payment, oldest first.
func (l *Ledger) Payments() []*Payment {
	out := slices.Clone(l.payments)
	l.stableSort(out)
	return out
}

// Payment returns the payment with the given id.
func (l *Ledger) Payment(id string) (*Payment, error) {
	if p, ok := l.paymentIndex[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: payment %q", ErrNotFound, id)
}

// SearchPayments returns payments whose reference contains the given
// fragment, case-insensitive.
func (l *Ledger) SearchPayments(ref string) []*Payment {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	var out []*Payment
	for _, p := range l.payments {
		if strings.Contains(strings.ToUpper(p.Reference), ref) {
			out = append(out, p)
		}
	}
	l.stableSort(out)
	return out
}

// PaymentsOf returns the payments of one tontine, oldest first.
func (l *Ledger) PaymentsOf(tontineID string) []*Payment {
	var out []*Payment
	for _, p := range l.payments {
		if p.TontineID == tontineID {
			out = append(out, p)
		}
	}
	l.stableSort(out)
	return out
}

func (l *Ledger) stableSort(ps []*Payment) {
	slices.SortStableFunc(ps, func(a, b *Payment) int {
		if a.Date != b.Date {
			if a.Date.Before(b.Date) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Reference, b.Reference)
	})
}

// contributions returns the round's contributions and carryovers.
func (l *Ledger) contributions(tontineID string, round int) []*Payment {
	var out []*Payment
	for _, p := range l.payments {
		if p.TontineID == tontineID && p.Round == round && p.Kind != KindPayout {
			out = append(out, p)
		}
	}
	return out
}

// contributionBy returns the member's contribution (or carryover) to a round.
func (l *Ledger) contributionBy(tontineID, memberID string, round int) *Payment {
	for _, p := range l.contributions(tontineID, round) {
		if p.MemberID == memberID {
			return p
		}
	}
	return nil
}

// payoutOf returns the payout of a round, or nil.
func (l *Ledger) payoutOf(tontineID string, round int) *Payment {
	for _, p := range l.payments {
		if p.TontineID == tontineID && p.Round == round && p.Kind == KindPayout {
			return p
		}
	}
	return nil
}

func (l *Ledger) appendPayment(p *Payment) {
	l.payments = append(l.payments, p)
	l.paymentIndex[p.ID] = p
}

// DeletePayment removes a payment. Once the round's payout is processed, or
// once the payment was reclassified as a carryover, the record is frozen.
func (l *Ledger) DeletePayment(id string) error {
	p, err := l.Payment(id)
	if err != nil {
		return err
	}
	if p.Kind == KindCarryover {
		return fmt.Errorf("%w: payment %s was carried over to the shared pot", ErrValidation, p.Reference)
	}
	if p.Kind == KindPayout {
		return fmt.Errorf("%w: payment %s is a payout, the round is closed", ErrValidation, p.Reference)
	}
	if l.payoutOf(p.TontineID, p.Round) != nil {
		return fmt.Errorf("%w: round %d of tontine %s was paid out", ErrValidation, p.Round, p.TontineID)
	}
	l.payments = slices.DeleteFunc(l.payments, func(x *Payment) bool { return x.ID == id })
	delete(l.paymentIndex, id)
	return nil
}
