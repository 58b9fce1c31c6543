package tontine

// Summary is the dashboard snapshot: registry counts plus the money that
// moved during the month of the given date.
//
// Collected and Penalties only count contributions to rounds that are still
// open: once a round is paid out its contributions drop out of the figures.
// Payouts are always counted. The asymmetry is deliberate, the dashboard
// shows money sitting in open rounds against money already distributed.
type Summary struct {
	Date              Date
	Members           int
	ActiveTontines    int
	CompletedTontines int
	Collected         Money
	Penalties         Money
	Payouts           Money
	PendingRounds     int
}

// Summary computes the dashboard snapshot for the month containing on.
func (l *Ledger) Summary(on Date) *Summary {
	s := &Summary{
		Date:      on,
		Members:   len(l.members),
		Collected: F(0),
		Penalties: F(0),
		Payouts:   F(0),
	}
	for _, t := range l.tontines {
		switch t.Status {
		case StatusActive:
			s.ActiveTontines++
		case StatusCompleted:
			s.CompletedTontines++
		default:
			continue
		}
		// rounds fully contributed but not yet paid out
		for r := 1; r <= t.TotalRounds(); r++ {
			if t.IsRoundCompleted(r) || l.payoutOf(t.ID, r) != nil {
				continue
			}
			if len(l.contributions(t.ID, r)) >= t.TotalRounds() {
				s.PendingRounds++
			}
		}
	}

	from, to := on.StartOfMonth(), on.EndOfMonth()
	for _, p := range l.payments {
		if p.Date.Before(from) || p.Date.After(to) {
			continue
		}
		if p.Kind == KindPayout {
			s.Payouts = s.Payouts.Add(p.Amount)
			continue
		}
		t, err := l.Tontine(p.TontineID)
		if err == nil && t.IsRoundCompleted(p.Round) {
			continue
		}
		s.Collected = s.Collected.Add(p.Amount)
		s.Penalties = s.Penalties.Add(p.Penalty)
	}
	return s
}
