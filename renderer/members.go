package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tontine"
	md "github.com/nao1215/markdown"
)

func MembersMarkdown(l *tontine.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	members := l.Members()
	doc.H1(fmt.Sprintf("Members (%d)", len(members)))

	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{m.Name, m.CNI, m.Phone, m.JoinedAt.String(), m.ID})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "CNI", "Phone", "Joined", "ID"},
		Rows:   rows,
	})

	return doc.String()
}

func TontinesMarkdown(l *tontine.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	tontines := l.Tontines()
	doc.H1(fmt.Sprintf("Tontines (%d)", len(tontines)))

	rows := make([][]string, 0, len(tontines))
	for _, t := range tontines {
		rows = append(rows, []string{
			t.Name,
			t.Amount.String(),
			t.Frequency.String(),
			t.StartDate.String(),
			fmt.Sprintf("%d/%d", t.CurrentRound, t.TotalRounds()),
			string(t.Status),
			t.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Amount", "Frequency", "Start", "Round", "Status", "ID"},
		Rows:   rows,
	})

	return doc.String()
}
