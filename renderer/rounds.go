package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tontine"
	md "github.com/nao1215/markdown"
)

func RoundsMarkdown(l *tontine.Ledger, t *tontine.Tontine) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Rounds of %s", t.Name))
	doc.PlainText(fmt.Sprintf("%s every %s, starting %s. Status %s, round %d, %.0f%% complete.",
		t.Amount, t.Frequency.Name(), t.StartDate, t.Status, t.CurrentRound, t.Progress()))

	rows := [][]string{}
	for _, r := range l.RoundAnalysis(t) {
		payout := "-"
		if r.Payout != nil {
			payout = fmt.Sprintf("%s on %s", r.Payout.Amount, r.Payout.Date)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Round),
			memberName(l, r.ReceiverID),
			r.DueDate.String(),
			string(r.State),
			fmt.Sprintf("%d/%d", r.Contributions, r.Expected),
			r.Collected.String(),
			payout,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Round", "Receiver", "Due", "Status", "Paid", "Collected", "Payout"},
		Rows:   rows,
	})

	return doc.String()
}
