package tontine

import "fmt"

// Contribution is a request to record a member's share of a round.
type Contribution struct {
	TontineID string
	MemberID  string
	// Round to pay. Zero means the tontine's current round. A member may pay
	// rounds ahead of the payouts, as long as their own sequence has no gap.
	Round int
	// Amount is the total handed over. It must match exactly the assessed
	// contribution plus penalty for the payment date.
	Amount Money
	Date   Date // defaults to today
	Method PaymentMethod
	Notes  string
}

// RecordContribution validates and records a member's contribution. The
// validation chain rejects, in order: unknown or inoperative tontine, unknown
// or unpositioned member, a second contribution for the same round, a gap in
// the member's round sequence, and an amount that does not match the
// assessment. Once a tontine has completed its rotation, contributions past
// the last round are still accepted and reclassified as carryovers.
func (l *Ledger) RecordContribution(c Contribution) (*Payment, error) {
	t, err := l.Tontine(c.TontineID)
	if err != nil {
		return nil, err
	}
	switch t.Status {
	case StatusActive:
	case StatusCompleted:
		if !t.AllowExtraRounds {
			return nil, fmt.Errorf("%w: tontine %q is %s", ErrValidation, t.Name, t.Status)
		}
	default:
		return nil, fmt.Errorf("%w: tontine %q is %s", ErrValidation, t.Name, t.Status)
	}
	m, err := l.Member(c.MemberID)
	if err != nil {
		return nil, err
	}
	if !t.HasMember(m.ID) {
		return nil, fmt.Errorf("%w: member %q holds no position in tontine %q", ErrValidation, m.Name, t.Name)
	}

	round := c.Round
	if round == 0 {
		round = t.CurrentRound
	}
	if round < 1 {
		return nil, fmt.Errorf("%w: tontine %q has no round %d", ErrValidation, t.Name, round)
	}
	if round > t.TotalRounds() && !t.AllowExtraRounds {
		return nil, fmt.Errorf("%w: tontine %q has only %d rounds", ErrValidation, t.Name, t.TotalRounds())
	}
	if prev := l.contributionBy(t.ID, m.ID, round); prev != nil {
		return nil, fmt.Errorf("%w: member %q already paid round %d (%s)", ErrDuplicatePayment, m.Name, round, prev.Reference)
	}
	for r := 1; r < round; r++ {
		if l.contributionBy(t.ID, m.ID, r) == nil {
			return nil, fmt.Errorf("%w: member %q has not paid round %d yet", ErrOutOfSequence, m.Name, r)
		}
	}

	if c.Date.IsZero() {
		c.Date = Today()
	}
	a := Assess(t, round, c.Date)
	if !c.Amount.Equal(a.Total) {
		return nil, fmt.Errorf("%w: round %d due on %s expects %s (%s + %s penalty), got %s",
			ErrAmountMismatch, round, a.DueDate, a.Total, a.Base, a.Penalty, c.Amount)
	}

	p := newPayment(KindContribution, t.ID, m.ID, round, a.Total, c.Date)
	p.Penalty = a.Penalty
	p.DaysLate = a.DaysLate
	p.DueDate = a.DueDate
	p.Method = c.Method
	if p.Method == "" {
		p.Method = MethodCash
	}
	p.Notes = c.Notes
	l.appendPayment(p)
	l.publish(PaymentRecorded{Payment: p})

	if len(l.contributions(t.ID, round)) == t.TotalRounds() {
		l.publish(RoundFull{TontineID: t.ID, Round: round})
	}
	l.checkCompletion(t)
	return p, nil
}
