package tontine

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// TontineStatus is the lifecycle state of a tontine.
type TontineStatus string

const (
	StatusPending   TontineStatus = "pending"
	StatusActive    TontineStatus = "active"
	StatusCompleted TontineStatus = "completed"
	StatusSuspended TontineStatus = "suspended"
)

// Position assigns a member to a payout rank in the rotation. Rank r receives
// the payout of round r.
type Position struct {
	Position int
	MemberID string
}

// Tontine is a rotating savings group: a fixed contribution amount collected
// from every member each round, and paid out in full to one member per round,
// in position order.
type Tontine struct {
	ID          string
	Name        string
	Description string
	Amount      Money
	Frequency   Frequency
	StartDate   Date
	// Positions is the rotation order, sorted by rank. There are exactly as
	// many positions as members, and as many rounds as positions.
	Positions []Position
	Status    TontineStatus
	// CurrentRound is the single authority on where the rotation stands.
	// It starts at 1 and lands past TotalRounds once every round is paid out.
	CurrentRound    int
	CompletedRounds []int // sorted
	// AllowExtraRounds opens contributions past the rotation, into a shared
	// pot. The ledger latches it when the tontine completes.
	AllowExtraRounds bool
	CreatedAt        Date
	CompletedAt      Date
}

// NewTontine creates an active tontine starting at round 1. The positions
// must form a bijection between ranks 1..n and n distinct members.
func NewTontine(name string, amount Money, freq Frequency, start Date, positions []Position) (*Tontine, error) {
	t := &Tontine{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Amount:       amount,
		Frequency:    freq,
		StartDate:    start,
		Positions:    slices.Clone(positions),
		Status:       StatusActive,
		CurrentRound: 1,
		CreatedAt:    Today(),
	}
	slices.SortFunc(t.Positions, func(a, b Position) int { return a.Position - b.Position })
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the tontine's own consistency, including the rank/member
// bijection.
func (t *Tontine) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: tontine has no name", ErrValidation)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: tontine %q amount must be positive", ErrValidation, t.Name)
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("%w: tontine %q has no start date", ErrValidation, t.Name)
	}
	n := len(t.Positions)
	if n == 0 {
		return fmt.Errorf("%w: tontine %q has no members", ErrValidation, t.Name)
	}
	members := make(map[string]bool, n)
	ranks := make(map[int]bool, n)
	for _, p := range t.Positions {
		if p.Position < 1 || p.Position > n {
			return fmt.Errorf("%w: tontine %q position %d out of range 1..%d", ErrValidation, t.Name, p.Position, n)
		}
		if ranks[p.Position] {
			return fmt.Errorf("%w: tontine %q position %d assigned twice", ErrValidation, t.Name, p.Position)
		}
		if members[p.MemberID] {
			return fmt.Errorf("%w: tontine %q member %s holds two positions", ErrValidation, t.Name, p.MemberID)
		}
		ranks[p.Position] = true
		members[p.MemberID] = true
	}
	return nil
}

// TotalRounds returns the number of rounds in a full rotation, one per member.
func (t *Tontine) TotalRounds() int { return len(t.Positions) }

// IsActive reports whether the tontine accepts payments.
func (t *Tontine) IsActive() bool { return t.Status == StatusActive }

// MemberAt returns the member holding the given rank.
func (t *Tontine) MemberAt(rank int) (string, bool) {
	for _, p := range t.Positions {
		if p.Position == rank {
			return p.MemberID, true
		}
	}
	return "", false
}

// PositionOf returns the rank held by the given member.
func (t *Tontine) PositionOf(memberID string) (int, bool) {
	for _, p := range t.Positions {
		if p.MemberID == memberID {
			return p.Position, true
		}
	}
	return 0, false
}

// HasMember reports whether the member holds a position in this tontine.
func (t *Tontine) HasMember(memberID string) bool {
	_, ok := t.PositionOf(memberID)
	return ok
}

// DueDate returns the contribution deadline for a round. Round 1 is due on
// the start date; each following round one schedule unit later. Rounds past
// the full rotation extrapolate on the same schedule.
func (t *Tontine) DueDate(round int) Date {
	return t.Frequency.Shift(t.StartDate, round-1)
}

// IsRoundCompleted reports whether the round's payout was processed.
func (t *Tontine) IsRoundCompleted(round int) bool {
	_, found := slices.BinarySearch(t.CompletedRounds, round)
	return found
}

// RotationComplete reports whether every round of the full rotation has been
// paid out.
func (t *Tontine) RotationComplete() bool {
	for r := 1; r <= t.TotalRounds(); r++ {
		if !t.IsRoundCompleted(r) {
			return false
		}
	}
	return true
}

// ReceiverFor returns the member entitled to the pot of the given round,
// wrapping around the rotation for extra rounds.
func (t *Tontine) ReceiverFor(round int) string {
	rank := (round-1)%t.TotalRounds() + 1
	id, _ := t.MemberAt(rank)
	return id
}

func (t *Tontine) completeRound(round int) {
	if i, found := slices.BinarySearch(t.CompletedRounds, round); !found {
		t.CompletedRounds = slices.Insert(t.CompletedRounds, i, round)
	}
}

func (t *Tontine) MarshalJSON() ([]byte, error) {
	positions := make([]map[string]any, 0, len(t.Positions))
	for _, p := range t.Positions {
		positions = append(positions, map[string]any{"position": p.Position, "memberId": p.MemberID})
	}
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("name", t.Name)
	w.Optional("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("frequency", t.Frequency)
	w.Append("startDate", t.StartDate)
	w.Append("positions", positions)
	w.Append("status", t.Status)
	w.Append("currentRound", t.CurrentRound)
	w.Optional("completedRounds", t.CompletedRounds)
	w.Optional("allowExtraRounds", t.AllowExtraRounds)
	w.Optional("createdAt", t.CreatedAt)
	w.Optional("completedAt", t.CompletedAt)
	return w.MarshalJSON()
}

func (t *Tontine) UnmarshalJSON(b []byte) error {
	var temp struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string    `json:"description"`
		Amount      moneyDoc  `json:"amount"`
		Frequency   Frequency `json:"frequency"`
		StartDate   Date      `json:"startDate"`
		Positions   []struct {
			Position int    `json:"position"`
			MemberID string `json:"memberId"`
		} `json:"positions"`
		Status           TontineStatus `json:"status"`
		CurrentRound     int           `json:"currentRound"`
		CompletedRounds  []int         `json:"completedRounds"`
		AllowExtraRounds bool          `json:"allowExtraRounds"`
		CreatedAt        Date          `json:"createdAt"`
		CompletedAt      Date          `json:"completedAt"`
	}
	if err := json.Unmarshal(b, &temp); err != nil {
		return err
	}
	t.ID = temp.ID
	t.Name = temp.Name
	t.Description = temp.Description
	t.Amount = temp.Amount.Money()
	t.Frequency = temp.Frequency
	t.StartDate = temp.StartDate
	t.Positions = t.Positions[:0]
	for _, p := range temp.Positions {
		t.Positions = append(t.Positions, Position{Position: p.Position, MemberID: p.MemberID})
	}
	t.Status = temp.Status
	t.CurrentRound = temp.CurrentRound
	t.CompletedRounds = temp.CompletedRounds
	slices.Sort(t.CompletedRounds)
	t.AllowExtraRounds = temp.AllowExtraRounds
	t.CreatedAt = temp.CreatedAt
	t.CompletedAt = temp.CompletedAt
	return nil
}
