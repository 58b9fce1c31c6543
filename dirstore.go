package tontine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// legacyFilename is the single-file database of earlier versions, holding
// the three collections in one JSON object.
const legacyFilename = "tontine-data.json"

// stateFilename persists the store's own bookkeeping, like the one-shot
// migration flag.
const stateFilename = "state.json"

// DirStore persists each collection as a JSONL file in a directory.
type DirStore struct {
	dir string
}

// NewDirStore opens (and creates if needed) a directory-backed store. If a
// legacy single-file database is present and was never migrated, its content
// is moved into the per-collection files first.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %q: %w", dir, err)
	}
	s := &DirStore{dir: dir}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *DirStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".jsonl")
}

// Load reads every document of a collection. A collection never saved yet is
// an empty one.
func (s *DirStore) Load(_ context.Context, collection string) ([]json.RawMessage, error) {
	f, err := os.Open(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var docs []json.RawMessage
	err = decodeJSONL(f, func(line []byte) error {
		doc := make(json.RawMessage, len(line))
		copy(doc, line)
		docs = append(docs, doc)
		return nil
	})
	return docs, err
}

// Save replaces the collection file. The write goes through a temporary file
// renamed into place, so a crash never leaves a half-written collection.
func (s *DirStore) Save(_ context.Context, collection string, docs []json.RawMessage) error {
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := encodeJSONL(tmp, docs); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(collection))
}

// Delete drops the collection file.
func (s *DirStore) Delete(_ context.Context, collection string) error {
	err := os.Remove(s.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

type dirState struct {
	Migrated bool `json:"migrated"`
}

func (s *DirStore) loadState() dirState {
	var st dirState
	b, err := os.ReadFile(filepath.Join(s.dir, stateFilename))
	if err != nil {
		return st
	}
	// a corrupt state file reads as "never migrated"
	json.Unmarshal(b, &st)
	return st
}

func (s *DirStore) saveState(st dirState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, stateFilename), b, 0644)
}

// migrate moves a legacy single-file database into the per-collection files,
// at most once. After a successful migration the legacy file is kept aside
// with a .bak suffix and the flag is persisted so the migration never runs
// again, even if a new legacy file shows up.
func (s *DirStore) migrate() error {
	if s.loadState().Migrated {
		return nil
	}

	legacy := filepath.Join(s.dir, legacyFilename)
	b, err := os.ReadFile(legacy)
	if errors.Is(err, fs.ErrNotExist) {
		// nothing to migrate, but remember we looked
		return s.saveState(dirState{Migrated: true})
	}
	if err != nil {
		return fmt.Errorf("cannot read legacy database %q: %w", legacy, err)
	}

	db, err := DecodeDatabase(b)
	if err != nil {
		return fmt.Errorf("legacy database %q: %w", legacy, err)
	}

	ctx := context.Background()
	if err := SaveLedger(ctx, s, db); err != nil {
		return err
	}
	if err := s.saveState(dirState{Migrated: true}); err != nil {
		return err
	}
	if err := os.Rename(legacy, legacy+".bak"); err != nil {
		return err
	}
	log.Printf("migrated legacy database %q (%d members, %d tontines, %d payments)",
		legacy, len(db.members), len(db.tontines), len(db.payments))
	return nil
}
