package tontine

// RoundState is the derived status of one round of a tontine.
type RoundState string

const (
	// RoundFuture has not been reached by the rotation yet.
	RoundFuture RoundState = "future"
	// RoundCurrent is the round being collected.
	RoundCurrent RoundState = "current"
	// RoundPending was passed by the rotation without a payout.
	RoundPending RoundState = "pending"
	// RoundClosed was paid out.
	RoundClosed RoundState = "completed"
)

// RoundInfo is the analysis of one round: who receives it, what came in,
// and where it stands.
type RoundInfo struct {
	Round         int
	ReceiverID    string
	DueDate       Date
	State         RoundState
	Contributions int
	Expected      int
	Collected     Money
	Penalties     Money
	Payout        *Payment // nil until the round closes
}

// RoundState derives the state of a round of the tontine. The stored
// completed set and the current-round pointer are the only authorities.
func (l *Ledger) RoundState(t *Tontine, round int) RoundState {
	switch {
	case t.IsRoundCompleted(round):
		return RoundClosed
	case round > t.CurrentRound:
		return RoundFuture
	case round < t.CurrentRound:
		return RoundPending
	default:
		return RoundCurrent
	}
}

// RoundAnalysis returns one RoundInfo per round of the rotation, plus any
// extra rounds already opened past it.
func (l *Ledger) RoundAnalysis(t *Tontine) []RoundInfo {
	last := t.TotalRounds()
	if t.AllowExtraRounds && t.CurrentRound > last {
		last = t.CurrentRound
	}
	for _, p := range l.payments {
		if p.TontineID == t.ID && p.Round > last {
			last = p.Round
		}
	}
	out := make([]RoundInfo, 0, last)
	for r := 1; r <= last; r++ {
		info := RoundInfo{
			Round:      r,
			ReceiverID: t.ReceiverFor(r),
			DueDate:    t.DueDate(r),
			State:      l.RoundState(t, r),
			Expected:   t.TotalRounds(),
			Collected:  M(0, t.Amount.Currency()),
			Penalties:  M(0, t.Amount.Currency()),
			Payout:     l.payoutOf(t.ID, r),
		}
		for _, p := range l.contributions(t.ID, r) {
			info.Contributions++
			info.Collected = info.Collected.Add(p.Amount)
			info.Penalties = info.Penalties.Add(p.Penalty)
		}
		out = append(out, info)
	}
	return out
}

// Progress returns the share of the rotation already paid out, in percent.
func (t *Tontine) Progress() float64 {
	done := 0
	for r := 1; r <= t.TotalRounds(); r++ {
		if t.IsRoundCompleted(r) {
			done++
		}
	}
	return 100 * float64(done) / float64(t.TotalRounds())
}
