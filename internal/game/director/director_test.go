package director

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"dungeonexplorer/internal/game"
	"dungeonexplorer/internal/game/response"
)

// fakeGenerator replays a canned reply (or error) and captures the prompt it
// was asked.
type fakeGenerator struct {
	reply      string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, _ int, _ float64) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeGenerator) Model() string { return "fake-model" }

func newTestDirector(gen *fakeGenerator) *Director {
	return NewDirector(gen, nil, nil)
}

func TestInitializeWorld_InstallsGeneratedContext(t *testing.T) {
	gen := &fakeGenerator{reply: `{"theme": "Sunken city", "conflict": "Rising tide",
		"possible_solutions": ["Drain it"], "characters": [{"name": "Diver"}],
		"failure_cases": ["Drowning"], "initial_goal": "Find high ground"}`}
	d := newTestDirector(gen)
	s := game.NewState()

	kind := d.InitializeWorld(context.Background(), s)

	if kind != response.FailureNone {
		t.Fatalf("expected no failure, got %v", kind)
	}
	if s.StoryContext.Theme != "Sunken city" {
		t.Errorf("unexpected theme %q", s.StoryContext.Theme)
	}
	if s.CurrentGoal != "Find high ground" {
		t.Errorf("expected initial goal seeded, got %q", s.CurrentGoal)
	}
	if gen.calls != 1 {
		t.Errorf("expected a single attempt, got %d", gen.calls)
	}
}

func TestInitializeWorld_ServiceFailureUsesDefault(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	d := newTestDirector(gen)
	s := game.NewState()

	kind := d.InitializeWorld(context.Background(), s)

	if kind != response.FailureServiceUnavailable {
		t.Fatalf("expected service_unavailable, got %v", kind)
	}
	if !reflect.DeepEqual(s.StoryContext, game.DefaultStoryContext()) {
		t.Errorf("expected the fixed default story context, got %+v", s.StoryContext)
	}
	if s.CurrentGoal != game.DefaultStoryContext().InitialGoal {
		t.Errorf("expected default initial goal seeded, got %q", s.CurrentGoal)
	}
}

func TestCreatePlayer_InstallsCharacter(t *testing.T) {
	gen := &fakeGenerator{reply: `{"player_name": "Mira", "player_background": "Scribe",
		"starting_items": ["quill"], "starting_location": "Archive",
		"location_description": "Dusty shelves."}`}
	d := newTestDirector(gen)
	s := game.NewState()

	kind := d.CreatePlayer(context.Background(), s)

	if kind != response.FailureNone {
		t.Fatalf("expected no failure, got %v", kind)
	}
	if s.Player.Name != "Mira" || s.CurrentLocation != "Archive" {
		t.Errorf("player not installed: %+v", s)
	}
	if !reflect.DeepEqual(s.Inventory, []string{"quill"}) {
		t.Errorf("unexpected inventory %v", s.Inventory)
	}
}

func TestCreatePlayer_MalformedUsesDefault(t *testing.T) {
	gen := &fakeGenerator{reply: "I refuse to answer in JSON."}
	d := newTestDirector(gen)
	s := game.NewState()

	kind := d.CreatePlayer(context.Background(), s)

	if kind != response.FailureMalformed {
		t.Fatalf("expected malformed_response, got %v", kind)
	}
	if s.Player.Name != "Adventurer" || s.CurrentLocation != "Temple Entrance" {
		t.Errorf("expected default character, got %+v", s)
	}
}

func TestOfferChoices_AlwaysFour(t *testing.T) {
	gen := &fakeGenerator{reply: `{"choices": ["Only", "three", "choices"]}`}
	d := newTestDirector(gen)
	s := game.NewState()

	choices, kind := d.OfferChoices(context.Background(), s)

	if kind != response.FailureMalformed {
		t.Errorf("expected malformed_response, got %v", kind)
	}
	if len(choices) != 4 {
		t.Fatalf("expected 4 choices, got %d", len(choices))
	}
}

func TestResolveAction_AppliesOutcome(t *testing.T) {
	gen := &fakeGenerator{reply: `{"action_result": "You find a torch.",
		"items_gained": ["torch"], "character_encountered": "Old Sage"}`}
	d := newTestDirector(gen)
	s := game.NewState()

	outcome, kind := d.ResolveAction(context.Background(), s, "search the rubble")

	if kind != response.FailureNone {
		t.Fatalf("expected no failure, got %v", kind)
	}
	if outcome.Narrative != "You find a torch." {
		t.Errorf("unexpected narrative %q", outcome.Narrative)
	}
	if !reflect.DeepEqual(s.Inventory, []string{"torch"}) {
		t.Errorf("expected inventory [torch], got %v", s.Inventory)
	}
	if !s.HasMet("Old Sage") {
		t.Error("expected Old Sage recorded as met")
	}
	if len(s.History) != 1 {
		t.Errorf("expected one history entry, got %d", len(s.History))
	}
}

func TestResolveAction_FailureStillCompletesTurn(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection reset")}
	d := newTestDirector(gen)
	s := game.NewState()

	outcome, kind := d.ResolveAction(context.Background(), s, "shout")

	if kind != response.FailureServiceUnavailable {
		t.Errorf("expected service_unavailable, got %v", kind)
	}
	if outcome.Narrative != game.DefaultNarrative {
		t.Errorf("expected default narrative, got %q", outcome.Narrative)
	}
	// Even a fallback turn leaves an audit trail.
	if len(s.History) != 1 || s.History[0].Result != game.DefaultNarrative {
		t.Errorf("expected fallback history entry, got %v", s.History)
	}
}
