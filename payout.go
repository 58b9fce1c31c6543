package tontine

import "fmt"

// PayoutRequest asks for the pot of a round to be handed to its beneficiary.
type PayoutRequest struct {
	TontineID string
	Round     int  // defaults to the tontine's current round
	Date      Date // defaults to today
	Method    PaymentMethod
	Notes     string
}

// ProcessPayout closes a round: it checks that every member contributed, sums
// the round's contributions (penalties included) and records a payout to the
// member holding the round's position. The round is marked completed and the
// current-round pointer advances past every closed round.
func (l *Ledger) ProcessPayout(req PayoutRequest) (*Payment, error) {
	t, err := l.Tontine(req.TontineID)
	if err != nil {
		return nil, err
	}
	if t.Status != StatusActive && t.Status != StatusCompleted {
		return nil, fmt.Errorf("%w: tontine %q is %s", ErrValidation, t.Name, t.Status)
	}

	round := req.Round
	if round == 0 {
		round = t.CurrentRound
	}
	if round < 1 || round > t.TotalRounds() {
		return nil, fmt.Errorf("%w: tontine %q has no round %d to pay out", ErrValidation, t.Name, round)
	}
	if t.IsRoundCompleted(round) || l.payoutOf(t.ID, round) != nil {
		return nil, fmt.Errorf("%w: round %d of tontine %q was already paid out", ErrDuplicatePayment, round, t.Name)
	}
	contribs := l.contributions(t.ID, round)
	if len(contribs) < t.TotalRounds() {
		return nil, fmt.Errorf("%w: round %d of tontine %q has %d of %d contributions",
			ErrIncompleteRound, round, t.Name, len(contribs), t.TotalRounds())
	}

	total := M(0, t.Amount.Currency())
	for _, p := range contribs {
		total = total.Add(p.Amount)
	}
	beneficiary := t.ReceiverFor(round)

	if req.Date.IsZero() {
		req.Date = Today()
	}
	p := newPayment(KindPayout, t.ID, beneficiary, round, total, req.Date)
	p.Method = req.Method
	if p.Method == "" {
		p.Method = MethodCash
	}
	p.Notes = req.Notes
	l.appendPayment(p)

	t.completeRound(round)
	for t.CurrentRound <= t.TotalRounds() && t.IsRoundCompleted(t.CurrentRound) {
		t.CurrentRound++
	}

	l.publish(PaymentRecorded{Payment: p})
	l.publish(RoundCompleted{TontineID: t.ID, Round: round, Payout: p})
	l.checkCompletion(t)
	return p, nil
}
