package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tontine"
	md "github.com/nao1215/markdown"
)

func PaymentsMarkdown(l *tontine.Ledger, payments []*tontine.Payment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Payments (%d)", len(payments)))

	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		tname := p.TontineID
		if t, err := l.Tontine(p.TontineID); err == nil {
			tname = t.Name
		}
		rows = append(rows, []string{
			p.Date.String(),
			p.Reference,
			string(p.Kind),
			tname,
			memberName(l, p.MemberID),
			fmt.Sprintf("%d", p.Round),
			p.Amount.String(),
			lateness(p),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Reference", "Kind", "Tontine", "Member", "Round", "Amount", "Penalty"},
		Rows:   rows,
	})

	return doc.String()
}

// ReceiptMarkdown renders a single payment as a receipt the treasurer can
// hand over.
func ReceiptMarkdown(l *tontine.Ledger, p *tontine.Payment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Receipt %s", p.Reference))

	tname := p.TontineID
	if t, err := l.Tontine(p.TontineID); err == nil {
		tname = t.Name
	}
	rows := [][]string{
		{"Date", p.Date.String()},
		{"Tontine", tname},
		{"Member", memberName(l, p.MemberID)},
		{"Round", fmt.Sprintf("%d", p.Round)},
		{"Kind", string(p.Kind)},
		{"Amount", p.Amount.String()},
		{"Method", string(p.Method)},
	}
	if !p.Penalty.IsZero() {
		rows = append(rows,
			[]string{"Due date", p.DueDate.String()},
			[]string{"Penalty", fmt.Sprintf("%s (%d days late)", p.Penalty, p.DaysLate)})
	}
	if p.ReceiverID != "" {
		rows = append(rows, []string{"Carried over to", memberName(l, p.ReceiverID)})
	}
	if p.Notes != "" {
		rows = append(rows, []string{"Notes", p.Notes})
	}
	doc.Table(md.TableSet{Header: []string{"Field", "Value"}, Rows: rows})

	return doc.String()
}
