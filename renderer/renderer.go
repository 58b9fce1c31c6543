// Package renderer turns ledger snapshots into markdown reports. It is
// strictly read-only: renderers take computed reports and entity lookups,
// and never mutate the ledger.
package renderer

import (
	"fmt"

	"github.com/etnz/tontine"
)

// memberName resolves a member id to its display name, falling back to the
// raw id for members gone from the registry.
func memberName(l *tontine.Ledger, id string) string {
	if id == "" {
		return "-"
	}
	m, err := l.Member(id)
	if err != nil {
		return id
	}
	return m.Name
}

// lateness renders the penalty column of a payment row.
func lateness(p *tontine.Payment) string {
	if p.Penalty.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s (%dd late)", p.Penalty, p.DaysLate)
}
