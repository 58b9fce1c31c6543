package tontine

// TontineMonth is one tontine's activity during a month.
type TontineMonth struct {
	Tontine   *Tontine
	Collected Money
	Penalties Money
	Payouts   Money
	// Payments lists every payment of the month, including contributions to
	// rounds that were since paid out and therefore excluded from the
	// aggregated figures.
	Payments []*Payment
}

// MonthlyReport breaks down a month of activity per tontine. The aggregation
// follows the dashboard rules: contributions to closed rounds are excluded,
// payouts always counted.
type MonthlyReport struct {
	Month     Date // first day of the reported month
	Tontines  []TontineMonth
	Collected Money
	Penalties Money
	Payouts   Money
}

// MonthlyReport computes the report for the month containing on.
func (l *Ledger) MonthlyReport(on Date) *MonthlyReport {
	r := &MonthlyReport{
		Month:     on.StartOfMonth(),
		Collected: F(0),
		Penalties: F(0),
		Payouts:   F(0),
	}
	from, to := on.StartOfMonth(), on.EndOfMonth()

	for _, t := range l.Tontines() {
		tm := TontineMonth{
			Tontine:   t,
			Collected: M(0, t.Amount.Currency()),
			Penalties: M(0, t.Amount.Currency()),
			Payouts:   M(0, t.Amount.Currency()),
		}
		for _, p := range l.PaymentsOf(t.ID) {
			if p.Date.Before(from) || p.Date.After(to) {
				continue
			}
			tm.Payments = append(tm.Payments, p)
			if p.Kind == KindPayout {
				tm.Payouts = tm.Payouts.Add(p.Amount)
				continue
			}
			if t.IsRoundCompleted(p.Round) {
				continue
			}
			tm.Collected = tm.Collected.Add(p.Amount)
			tm.Penalties = tm.Penalties.Add(p.Penalty)
		}
		if len(tm.Payments) == 0 {
			continue
		}
		r.Tontines = append(r.Tontines, tm)
		r.Collected = r.Collected.Add(tm.Collected)
		r.Penalties = r.Penalties.Add(tm.Penalties)
		r.Payouts = r.Payouts.Add(tm.Payouts)
	}
	return r
}
