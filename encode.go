package tontine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// moneyDoc is a specialized struct to read a monetary amount persisted in
// two fields.
type moneyDoc struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a moneyDoc) Money() Money {
	return M(a.Amount, a.Currency)
}

// encodeJSONL writes one JSON document per line.
func encodeJSONL[T json.Marshaler](w io.Writer, docs []T) error {
	for _, doc := range docs {
		b, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// decodeJSONL reads one JSON document per line, skipping empty lines.
func decodeJSONL(r io.Reader, decode func(line []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := decode(line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}
