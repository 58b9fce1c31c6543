package tontine

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names understood by every Store backend.
const (
	ColMembers  = "members"
	ColTontines = "tontines"
	ColPayments = "payments"
)

// Collections lists every collection a full database holds.
var Collections = []string{ColMembers, ColTontines, ColPayments}

// Store is the persistence gateway: a collection-oriented document store.
// Load returns an empty slice for a collection that was never saved. Save
// replaces the whole collection. Delete drops it.
type Store interface {
	Load(ctx context.Context, collection string) ([]json.RawMessage, error)
	Save(ctx context.Context, collection string, docs []json.RawMessage) error
	Delete(ctx context.Context, collection string) error
}

// OpenLedger loads the three collections from the store and rebuilds the
// ledger. Stored data is trusted: it is indexed as-is, without replaying the
// registration guards.
func OpenLedger(ctx context.Context, s Store) (*Ledger, error) {
	l := NewLedger()

	docs, err := s.Load(ctx, ColMembers)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", ErrStorage, ColMembers, err)
	}
	for _, doc := range docs {
		m := &Member{}
		if err := json.Unmarshal(doc, m); err != nil {
			return nil, fmt.Errorf("%w: decoding member: %v", ErrStorage, err)
		}
		l.members = append(l.members, m)
		l.memberIndex[m.ID] = m
	}

	docs, err = s.Load(ctx, ColTontines)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", ErrStorage, ColTontines, err)
	}
	for _, doc := range docs {
		t := &Tontine{}
		if err := json.Unmarshal(doc, t); err != nil {
			return nil, fmt.Errorf("%w: decoding tontine: %v", ErrStorage, err)
		}
		l.tontines = append(l.tontines, t)
		l.tontineIndex[t.ID] = t
	}

	docs, err = s.Load(ctx, ColPayments)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", ErrStorage, ColPayments, err)
	}
	for _, doc := range docs {
		p := &Payment{}
		if err := json.Unmarshal(doc, p); err != nil {
			return nil, fmt.Errorf("%w: decoding payment: %v", ErrStorage, err)
		}
		l.payments = append(l.payments, p)
		l.paymentIndex[p.ID] = p
	}

	return l, nil
}

// SaveLedger writes the three collections of the ledger to the store.
func SaveLedger(ctx context.Context, s Store, l *Ledger) error {
	if err := s.Save(ctx, ColMembers, marshalDocs(l.members)); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrStorage, ColMembers, err)
	}
	if err := s.Save(ctx, ColTontines, marshalDocs(l.tontines)); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrStorage, ColTontines, err)
	}
	if err := s.Save(ctx, ColPayments, marshalDocs(l.payments)); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrStorage, ColPayments, err)
	}
	return nil
}

func marshalDocs[T json.Marshaler](items []T) []json.RawMessage {
	docs := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		b, err := item.MarshalJSON()
		if err != nil {
			// entity marshalers are infallible on valid in-memory state
			panic(err)
		}
		docs = append(docs, b)
	}
	return docs
}
