package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"dungeonexplorer/internal/game"
)

func testState() *game.State {
	s := game.NewState()
	s.StoryContext = game.DefaultStoryContext()
	s.SetPlayer(game.DefaultPlayerSetup())
	s.SeedInitialGoal()
	s.Apply("search the rubble", game.Outcome{
		Narrative:            "You find a torch.",
		ItemsGained:          []string{"torch"},
		CharacterEncountered: "Old Sage",
	})
	s.CustomTitle = &game.CustomTitle{Title1: "CURSED", Title2: "TEMPLE"}
	return s
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	fs := NewFileStore(path)
	s := testState()

	if err := fs.Save(s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(loaded, s) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", s, loaded)
	}
}

func TestLoad_NotFound(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := fs.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileStore(path).Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestLoad_ToleratesOmittedOptionalKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	minimal := `{
		"story_context": {"theme": "Ancient cursed temple"},
		"player": {"name": "Adventurer"}
	}`
	if err := os.WriteFile(path, []byte(minimal), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Inventory == nil || s.CharactersMet == nil || s.CompletedGoals == nil || s.History == nil {
		t.Errorf("expected collections normalized to non-nil, got %+v", s)
	}
	if s.CurrentGoal != "" || s.CustomTitle != nil {
		t.Errorf("expected absent optionals to stay zero, got %+v", s)
	}
}

func TestRoundTrip_PresentButEmptyOptionalKeys(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	doc := `{
		"story_context": {"theme": "Ancient cursed temple"},
		"player": {"name": "Adventurer"},
		"inventory": [],
		"characters_met": [],
		"completed_goals": [],
		"history": []
	}`
	if err := os.WriteFile(first, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	s1, err := NewFileStore(first).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	second := NewFileStore(filepath.Join(dir, "second.json"))
	if err := second.Save(s1); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s2, err := second.Load()
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}

	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("round trip changed the state:\nbefore: %+v\nafter:  %+v", s1, s2)
	}
}

func TestSave_DoesNotTruncateOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "savegame.json")
	fs := NewFileStore(path)

	if err := fs.Save(testState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// A second save writes to a temp file first; the existing document is
	// only replaced by a rename. Verify no stray temp files remain and the
	// save is still readable.
	if err := fs.Save(testState()); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the save file in %s, found %d entries", dir, len(entries))
	}

	current, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(current) == 0 || len(original) == 0 {
		t.Error("save file was truncated")
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	fs := NewFileStore(path)

	if fs.Exists() {
		t.Error("expected Exists false before save")
	}
	if err := fs.Save(game.NewState()); err != nil {
		t.Fatal(err)
	}
	if !fs.Exists() {
		t.Error("expected Exists true after save")
	}
}
