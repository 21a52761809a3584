package ui

import (
	"fmt"
	"testing"

	"dungeonexplorer/internal/game"
	"dungeonexplorer/internal/store"
)

func TestApplyTitleParsesPair(t *testing.T) {
	m := Model{state: game.NewState()}
	m.applyTitle("Cursed / Temple")

	if m.state.CustomTitle == nil {
		t.Fatal("expected custom title to be set")
	}
	if m.state.CustomTitle.Title1 != "Cursed" || m.state.CustomTitle.Title2 != "Temple" {
		t.Errorf("expected Cursed/Temple, got %q/%q", m.state.CustomTitle.Title1, m.state.CustomTitle.Title2)
	}
}

func TestApplyTitleSingleWord(t *testing.T) {
	m := Model{state: game.NewState()}
	m.applyTitle("Catacombs")

	if m.state.CustomTitle == nil {
		t.Fatal("expected custom title to be set")
	}
	if m.state.CustomTitle.Title1 != "Catacombs" || m.state.CustomTitle.Title2 != "" {
		t.Errorf("expected Catacombs with empty second line, got %q/%q",
			m.state.CustomTitle.Title1, m.state.CustomTitle.Title2)
	}
}

func TestApplyTitleEmptyResets(t *testing.T) {
	m := Model{state: game.NewState()}
	m.state.CustomTitle = &game.CustomTitle{Title1: "A", Title2: "B"}
	m.applyTitle("   ")

	if m.state.CustomTitle != nil {
		t.Errorf("expected custom title reset, got %+v", m.state.CustomTitle)
	}
}

func TestTitleValueRoundTrip(t *testing.T) {
	m := Model{state: game.NewState()}
	if got := m.titleValue(); got != "" {
		t.Errorf("expected empty title value, got %q", got)
	}

	m.applyTitle("Cursed / Temple")
	if got := m.titleValue(); got != "Cursed / Temple" {
		t.Errorf("expected round-tripped title value, got %q", got)
	}
}

func TestIsMissingSave(t *testing.T) {
	if !isMissingSave(store.ErrNotFound) {
		t.Error("expected ErrNotFound to count as missing save")
	}
	if !isMissingSave(fmt.Errorf("load: %w", store.ErrNotFound)) {
		t.Error("expected wrapped ErrNotFound to count as missing save")
	}
	if isMissingSave(fmt.Errorf("load: %w", store.ErrCorrupt)) {
		t.Error("expected corrupt save not to count as missing")
	}
}

func TestVisibleMessagesTail(t *testing.T) {
	m := Model{state: game.NewState(), height: 23}
	for i := 0; i < 20; i++ {
		m.say(fmt.Sprintf("line %d", i))
	}

	visible := m.visibleMessages()
	if len(visible) != 5 {
		t.Fatalf("expected 5 visible messages, got %d", len(visible))
	}
	if visible[len(visible)-1] != "line 19" {
		t.Errorf("expected tail to end at the newest message, got %q", visible[len(visible)-1])
	}
}
