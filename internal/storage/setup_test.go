package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tmdict/stargazer-sub002/internal/domain"
)

func sampleSetup() *Setup {
	return &Setup{
		SavedAt: 1724371200,
		Arena:   "arena",
		States: []domain.StateRecord{
			{HexID: 1, State: domain.StateAvailableEnemy},
			{HexID: 30, State: domain.StateDefault},
			{HexID: 61, State: domain.StateAvailableAlly},
		},
		Units: []domain.UnitRecord{
			{HexID: 61, Character: 7, Team: domain.TeamAlly},
			{HexID: 1, Character: 8, Team: domain.TeamEnemy},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	want := sampleSetup()

	if err := store.Save("lineup", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("lineup")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "junk.sgzs"), []byte("not a setup file at all"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load("junk"); err == nil {
		t.Error("expected an error for a corrupt file")
	}
}

func TestNameValidation(t *testing.T) {
	store := NewStore(t.TempDir())
	for _, name := range []string{"", "../escape", "a/b", `a\b`} {
		if err := store.Save(name, sampleSetup()); err == nil {
			t.Errorf("Save(%q) accepted an invalid name", name)
		}
	}
}

func TestList(t *testing.T) {
	store := NewStore(t.TempDir())
	for _, name := range []string{"alpha", "beta"} {
		if err := store.Save(name, sampleSetup()); err != nil {
			t.Fatal(err)
		}
	}

	names, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Errorf("List = %v, want two entries", names)
	}
}
