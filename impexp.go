package tontine

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// database is the interchange shape of a full backup: the three collections
// in one JSON object.
type database struct {
	Members  []json.RawMessage `json:"members"`
	Tontines []json.RawMessage `json:"tontines"`
	Payments []json.RawMessage `json:"payments"`
}

// EncodeDatabase serializes the whole ledger as a single JSON document
// suitable for backups and for DecodeDatabase.
func EncodeDatabase(l *Ledger) ([]byte, error) {
	db := database{
		Members:  marshalDocs(l.members),
		Tontines: marshalDocs(l.tontines),
		Payments: marshalDocs(l.payments),
	}
	// collections must never encode as null, an empty database is still a
	// valid one
	if db.Members == nil {
		db.Members = []json.RawMessage{}
	}
	if db.Tontines == nil {
		db.Tontines = []json.RawMessage{}
	}
	if db.Payments == nil {
		db.Payments = []json.RawMessage{}
	}
	return json.MarshalIndent(db, "", " ")
}

// DecodeDatabase parses a full backup into a fresh ledger. The payload must
// carry all three collections; a missing key means the file is not a backup
// of this application and nothing is imported.
func DecodeDatabase(b []byte) (*Ledger, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	for _, col := range Collections {
		if _, ok := keys[col]; !ok {
			return nil, fmt.Errorf("%w: missing %q collection", ErrBadFormat, col)
		}
	}

	var db database
	if err := json.Unmarshal(b, &db); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	l := NewLedger()
	for _, doc := range db.Members {
		m := &Member{}
		if err := json.Unmarshal(doc, m); err != nil {
			return nil, fmt.Errorf("%w: member: %v", ErrBadFormat, err)
		}
		l.members = append(l.members, m)
		l.memberIndex[m.ID] = m
	}
	for _, doc := range db.Tontines {
		t := &Tontine{}
		if err := json.Unmarshal(doc, t); err != nil {
			return nil, fmt.Errorf("%w: tontine: %v", ErrBadFormat, err)
		}
		l.tontines = append(l.tontines, t)
		l.tontineIndex[t.ID] = t
	}
	for _, doc := range db.Payments {
		p := &Payment{}
		if err := json.Unmarshal(doc, p); err != nil {
			return nil, fmt.Errorf("%w: payment: %v", ErrBadFormat, err)
		}
		l.payments = append(l.payments, p)
		l.paymentIndex[p.ID] = p
	}
	return l, nil
}

// ExportWorkbook writes the whole ledger as a spreadsheet workbook with one
// sheet per collection, plus a summary and a per-round analysis.
func ExportWorkbook(l *Ledger, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := exportSummarySheet(f, l); err != nil {
		return err
	}
	if err := exportMembersSheet(f, l); err != nil {
		return err
	}
	if err := exportTontinesSheet(f, l); err != nil {
		return err
	}
	if err := exportPaymentsSheet(f, l); err != nil {
		return err
	}
	if err := exportRoundsSheet(f, l); err != nil {
		return err
	}

	// drop the default sheet created by NewFile
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func exportSummarySheet(f *excelize.File, l *Ledger) error {
	s := l.Summary(Today())
	rows := [][]any{
		{"Exported", Today().String()},
		{"Members", s.Members},
		{"Active tontines", s.ActiveTontines},
		{"Completed tontines", s.CompletedTontines},
		{"Collected this month", s.Collected.String()},
		{"Penalties this month", s.Penalties.String()},
		{"Payouts this month", s.Payouts.String()},
		{"Rounds awaiting payout", s.PendingRounds},
	}
	return writeRows(f, "Summary", rows)
}

func exportMembersSheet(f *excelize.File, l *Ledger) error {
	rows := [][]any{{"ID", "Name", "CNI", "Phone", "Email", "Address", "Joined"}}
	for _, m := range l.Members() {
		rows = append(rows, []any{m.ID, m.Name, m.CNI, m.Phone, m.Email, m.Address, m.JoinedAt.String()})
	}
	return writeRows(f, "Members", rows)
}

func exportTontinesSheet(f *excelize.File, l *Ledger) error {
	rows := [][]any{{"ID", "Name", "Amount", "Frequency", "Start", "Rounds", "Current", "Status", "Progress %"}}
	for _, t := range l.Tontines() {
		rows = append(rows, []any{
			t.ID, t.Name, t.Amount.String(), t.Frequency.String(), t.StartDate.String(),
			t.TotalRounds(), t.CurrentRound, string(t.Status), t.Progress(),
		})
	}
	return writeRows(f, "Tontines", rows)
}

func exportPaymentsSheet(f *excelize.File, l *Ledger) error {
	rows := [][]any{{"Reference", "Kind", "Tontine", "Member", "Round", "Amount", "Penalty", "Days late", "Date", "Due", "Method"}}
	for _, p := range l.Payments() {
		rows = append(rows, []any{
			p.Reference, string(p.Kind), p.TontineID, p.MemberID, p.Round,
			p.Amount.String(), p.Penalty.String(), p.DaysLate,
			p.Date.String(), p.DueDate.String(), string(p.Method),
		})
	}
	return writeRows(f, "Payments", rows)
}

func exportRoundsSheet(f *excelize.File, l *Ledger) error {
	rows := [][]any{{"Tontine", "Round", "Receiver", "Due", "Status", "Contributions", "Collected", "Payout"}}
	for _, t := range l.Tontines() {
		for _, r := range l.RoundAnalysis(t) {
			payout := ""
			if r.Payout != nil {
				payout = r.Payout.Amount.String()
			}
			rows = append(rows, []any{
				t.Name, r.Round, r.ReceiverID, r.DueDate.String(), string(r.State),
				fmt.Sprintf("%d/%d", r.Contributions, r.Expected), r.Collected.String(), payout,
			})
		}
	}
	return writeRows(f, "Rounds", rows)
}
