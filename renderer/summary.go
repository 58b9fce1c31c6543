package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tontine"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *tontine.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Tontine Summary on %s", s.Date))

	table := md.TableSet{
		Header: []string{"Indicator", "Value"},
		Rows: [][]string{
			{"Members", fmt.Sprintf("%d", s.Members)},
			{"Active tontines", fmt.Sprintf("%d", s.ActiveTontines)},
			{"Completed tontines", fmt.Sprintf("%d", s.CompletedTontines)},
			{"Collected this month", s.Collected.String()},
			{"Penalties this month", s.Penalties.String()},
			{"Paid out this month", s.Payouts.String()},
			{"Rounds awaiting payout", fmt.Sprintf("%d", s.PendingRounds)},
		},
	}
	doc.Table(table)

	return doc.String()
}
