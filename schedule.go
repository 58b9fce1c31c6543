package tontine

import "github.com/shopspring/decimal"

// penaltyRate is the flat late fee: 10% of the contribution, applied once
// however late the payment is.
var penaltyRate = decimal.NewFromFloat(0.10)

// Assessment is what a member owes for a round, given the day they pay.
type Assessment struct {
	Base     Money
	Penalty  Money
	Total    Money
	DaysLate int
	DueDate  Date
}

// Assess computes the amount due for a round of the tontine when paid on the
// given day. Payments on or before the due date owe the base amount; later
// payments owe the base plus a flat penalty of 10% rounded down to the whole
// unit.
func Assess(t *Tontine, round int, on Date) Assessment {
	a := Assessment{
		Base:    t.Amount,
		Penalty: M(0, t.Amount.Currency()),
		DueDate: t.DueDate(round),
	}
	if on.After(a.DueDate) {
		a.DaysLate = on.DaysSince(a.DueDate)
		a.Penalty = t.Amount.Scale(penaltyRate).Floor()
	}
	a.Total = a.Base.Add(a.Penalty)
	return a
}
