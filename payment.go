package tontine

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// PaymentKind discriminates ledger payments.
type PaymentKind string

const (
	// KindContribution is a member paying their share of a round.
	KindContribution PaymentKind = "contribution"
	// KindPayout is the pot of a round handed to its beneficiary.
	KindPayout PaymentKind = "payout"
	// KindCarryover (cagnotte rapportée) is a contribution recorded after the
	// full rotation, earmarked for the wrap-around receiver of its round.
	KindCarryover PaymentKind = "cagnotte_rapportee"
)

// PaymentMethod is how the money changed hands.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodMobile PaymentMethod = "mobile"
	MethodBank   PaymentMethod = "bank"
	MethodCheck  PaymentMethod = "check"
)

func ParseMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case MethodCash:
		return MethodCash, nil
	case MethodMobile:
		return MethodMobile, nil
	case MethodBank:
		return MethodBank, nil
	case MethodCheck:
		return MethodCheck, nil
	default:
		return MethodCash, fmt.Errorf("unknown payment method %s", s)
	}
}

// Payment is a single money movement in a tontine. For contributions and
// carryovers MemberID is the payer; for payouts it is the beneficiary.
type Payment struct {
	ID        string
	TontineID string
	MemberID  string
	Round     int
	// Amount is the total that changed hands. For a late contribution it
	// includes the penalty.
	Amount   Money
	Penalty  Money
	DaysLate int
	Date     Date
	DueDate  Date
	Kind     PaymentKind
	Method   PaymentMethod
	Reference string
	// ReceiverID is set on carryovers only: the wrap-around beneficiary.
	ReceiverID string
	Notes      string
	CreatedAt  Date
}

const refRunes = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewReference builds a human-readable payment reference like
// "REF20240115-K7Q2ZD".
func NewReference(on Date) string {
	var b strings.Builder
	b.WriteString("REF")
	b.WriteString(on.Format("20060102"))
	b.WriteByte('-')
	for range 6 {
		b.WriteByte(refRunes[rand.IntN(len(refRunes))])
	}
	return b.String()
}

func newPayment(kind PaymentKind, tontineID, memberID string, round int, amount Money, on Date) *Payment {
	return &Payment{
		ID:        uuid.NewString(),
		TontineID: tontineID,
		MemberID:  memberID,
		Round:     round,
		Amount:    amount,
		Kind:      kind,
		Date:      on,
		Reference: NewReference(on),
		CreatedAt: Today(),
	}
}

func (p *Payment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("kind", p.Kind)
	w.Append("tontineId", p.TontineID)
	w.Append("memberId", p.MemberID)
	w.Append("round", p.Round)
	w.Append("amount", p.Amount)
	if !p.Penalty.IsZero() {
		w.Append("penalty", p.Penalty)
		w.Append("daysLate", p.DaysLate)
	}
	w.Append("date", p.Date)
	w.Optional("dueDate", p.DueDate)
	w.Optional("method", p.Method)
	w.Append("reference", p.Reference)
	w.Optional("receiverId", p.ReceiverID)
	w.Optional("notes", p.Notes)
	w.Optional("createdAt", p.CreatedAt)
	return w.MarshalJSON()
}

func (p *Payment) UnmarshalJSON(b []byte) error {
	var temp struct {
		ID         string        `json:"id"`
		Kind       PaymentKind   `json:"kind"`
		TontineID  string        `json:"tontineId"`
		MemberID   string        `json:"memberId"`
		Round      int           `json:"round"`
		Amount     moneyDoc      `json:"amount"`
		Penalty    moneyDoc      `json:"penalty"`
		DaysLate   int           `json:"daysLate"`
		Date       Date          `json:"date"`
		DueDate    Date          `json:"dueDate"`
		Method     PaymentMethod `json:"method"`
		Reference  string        `json:"reference"`
		ReceiverID string        `json:"receiverId"`
		Notes      string        `json:"notes"`
		CreatedAt  Date          `json:"createdAt"`
	}
	if err := json.Unmarshal(b, &temp); err != nil {
		return err
	}
	p.ID = temp.ID
	p.Kind = temp.Kind
	p.TontineID = temp.TontineID
	p.MemberID = temp.MemberID
	p.Round = temp.Round
	p.Amount = temp.Amount.Money()
	p.Penalty = temp.Penalty.Money()
	p.DaysLate = temp.DaysLate
	p.Date = temp.Date
	p.DueDate = temp.DueDate
	p.Method = temp.Method
	p.Reference = temp.Reference
	p.ReceiverID = temp.ReceiverID
	p.Notes = temp.Notes
	p.CreatedAt = temp.CreatedAt
	return nil
}
