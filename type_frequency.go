package tontine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Frequency is the contribution schedule of a tontine.
type Frequency int

const (
	Weekly Frequency = iota
	Monthly
	Quarterly
)

func (f Frequency) String() string {
	switch f {
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the frequency (e.g., "week", "month").
func (f Frequency) Name() string {
	switch f {
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	default:
		return "period"
	}
}

// Shift returns d moved forward by n schedule units.
func (f Frequency) Shift(d Date, n int) Date {
	switch f {
	case Weekly:
		return d.Add(7 * n)
	case Monthly:
		return d.AddMonth(n)
	case Quarterly:
		return d.AddMonth(3 * n)
	default:
		panic("unknown frequency")
	}
}

func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	default:
		return Monthly, fmt.Errorf("unknown frequency %s", s)
	}
}

func (f Frequency) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

func (f *Frequency) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	p, err := ParseFrequency(s)
	if err != nil {
		return err
	}
	*f = p
	return nil
}
