package tontine

// rotationContributed reports whether every round of the rotation holds a
// full set of contributions, paid out or not.
func (l *Ledger) rotationContributed(t *Tontine) bool {
	for r := 1; r <= t.TotalRounds(); r++ {
		if len(l.contributions(t.ID, r)) < t.TotalRounds() {
			return false
		}
	}
	return true
}

// checkCompletion runs after every mutation of a tontine's payments. The
// tontine completes as soon as its rotation is settled, that is every round
// either paid out or fully contributed. Completion opens the extra rounds:
// members may keep paying into a shared pot past the rotation, and those
// payments are reclassified as carryovers for their wrap-around receiver.
//
// Reclassification is one-way and idempotent: a carryover never reverts to a
// contribution, and an already reclassified payment is left untouched.
func (l *Ledger) checkCompletion(t *Tontine) {
	if t.Status == StatusActive && (t.RotationComplete() || l.rotationContributed(t)) {
		t.Status = StatusCompleted
		t.AllowExtraRounds = true
		t.CompletedAt = Today()
		l.publish(TontineCompleted{TontineID: t.ID, On: t.CompletedAt})
	}
	if t.Status != StatusCompleted || !t.AllowExtraRounds {
		return
	}
	for _, p := range l.payments {
		if p.TontineID != t.ID || p.Kind != KindContribution || p.Round <= t.TotalRounds() {
			continue
		}
		p.Kind = KindCarryover
		p.ReceiverID = t.ReceiverFor(p.Round)
		l.publish(PaymentReclassified{Payment: p, ReceiverID: p.ReceiverID})
	}
}
