package tontine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDirStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}

	l, tn, _ := newGroup(t, 3)
	payRound(t, l, tn)
	if err := SaveLedger(ctx, s, l); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}

	// reopen from disk
	s2, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	got, err := OpenLedger(ctx, s2)
	if err != nil {
		t.Fatalf("OpenLedger: %v", err)
	}
	if len(got.Members()) != 3 || len(got.Tontines()) != 1 || len(got.Payments()) != 3 {
		t.Errorf("reloaded %d members, %d tontines, %d payments",
			len(got.Members()), len(got.Tontines()), len(got.Payments()))
	}
	gt, err := got.Tontine(tn.ID)
	if err != nil {
		t.Fatalf("Tontine: %v", err)
	}
	if gt.Name != tn.Name || gt.Frequency != Monthly || !gt.Amount.Equal(XOF(10000)) {
		t.Errorf("tontine fields lost: %+v", gt)
	}
}

func TestDirStoreEmptyIsEmpty(t *testing.T) {
	ctx := context.Background()
	s, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	l, err := OpenLedger(ctx, s)
	if err != nil {
		t.Fatalf("OpenLedger: %v", err)
	}
	if len(l.Members()) != 0 || len(l.Tontines()) != 0 || len(l.Payments()) != 0 {
		t.Error("fresh store opened with content")
	}
}

func TestDirStoreDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	l, _, _ := newGroup(t, 3)
	if err := SaveLedger(ctx, s, l); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}

	if err := s.Delete(ctx, ColMembers); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	docs, err := s.Load(ctx, ColMembers)
	if err != nil || len(docs) != 0 {
		t.Errorf("Load after delete = %d docs, %v", len(docs), err)
	}
	// deleting twice is fine
	if err := s.Delete(ctx, ColMembers); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestDirStoreMigration(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	l, tn, _ := newGroup(t, 3)
	legacy, err := EncodeDatabase(l)
	if err != nil {
		t.Fatalf("EncodeDatabase: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, legacyFilename), legacy, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	got, err := OpenLedger(ctx, s)
	if err != nil {
		t.Fatalf("OpenLedger: %v", err)
	}
	if len(got.Members()) != 3 {
		t.Errorf("migrated %d members, want 3", len(got.Members()))
	}
	if _, err := got.Tontine(tn.ID); err != nil {
		t.Errorf("migrated tontine lost: %v", err)
	}

	// the legacy file was set aside
	if _, err := os.Stat(filepath.Join(dir, legacyFilename)); !os.IsNotExist(err) {
		t.Error("legacy file still in place after migration")
	}
	if _, err := os.Stat(filepath.Join(dir, legacyFilename+".bak")); err != nil {
		t.Errorf("legacy backup missing: %v", err)
	}
}

func TestDirStoreMigrationRunsOnce(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	if _, err := NewDirStore(dir); err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}

	// a legacy file appearing after the first open must be ignored
	l, _, _ := newGroup(t, 2)
	legacy, err := EncodeDatabase(l)
	if err != nil {
		t.Fatalf("EncodeDatabase: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, legacyFilename), legacy, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("NewDirStore: %v", err)
	}
	got, err := OpenLedger(ctx, s)
	if err != nil {
		t.Fatalf("OpenLedger: %v", err)
	}
	if len(got.Members()) != 0 {
		t.Errorf("late legacy file was migrated, got %d members", len(got.Members()))
	}
}
