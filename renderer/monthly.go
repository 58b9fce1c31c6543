package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/tontine"
	md "github.com/nao1215/markdown"
)

func MonthlyMarkdown(l *tontine.Ledger, r *tontine.MonthlyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(io.Discard)

	doc.H1(fmt.Sprintf("Monthly Report for %s", r.Month.Format("January 2006")))

	if len(r.Tontines) == 0 {
		doc.PlainText("No activity this month.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Tontines)+1)
	for _, tm := range r.Tontines {
		rows = append(rows, []string{
			tm.Tontine.Name,
			tm.Collected.String(),
			tm.Penalties.String(),
			tm.Payouts.String(),
			fmt.Sprintf("%d", len(tm.Payments)),
		})
	}
	rows = append(rows, []string{"**Total**",
		r.Collected.String(), r.Penalties.String(), r.Payouts.String(), ""})
	doc.Table(md.TableSet{
		Header: []string{"Tontine", "Collected", "Penalties", "Payouts", "Payments"},
		Rows:   rows,
	})
	io.WriteString(&buf, doc.String())

	for _, tm := range r.Tontines {
		ConditionalBlock(&buf, func(w io.Writer) bool {
			sub := md.NewMarkdown(io.Discard)
			sub.H2(tm.Tontine.Name)
			rows := make([][]string, 0, len(tm.Payments))
			for _, p := range tm.Payments {
				rows = append(rows, []string{
					p.Date.String(),
					p.Reference,
					string(p.Kind),
					memberName(l, p.MemberID),
					fmt.Sprintf("%d", p.Round),
					p.Amount.String(),
					lateness(p),
				})
			}
			sub.Table(md.TableSet{
				Header: []string{"Date", "Reference", "Kind", "Member", "Round", "Amount", "Penalty"},
				Rows:   rows,
			})
			io.WriteString(w, "\n")
			io.WriteString(w, sub.String())
			return len(tm.Payments) > 0
		})
	}

	return buf.String()
}
