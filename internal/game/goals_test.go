package game

import (
	"reflect"
	"testing"
)

func TestSeedInitialGoal(t *testing.T) {
	s := NewState()
	s.StoryContext = DefaultStoryContext()

	s.SeedInitialGoal()

	if s.CurrentGoal != s.StoryContext.InitialGoal {
		t.Errorf("expected goal %q, got %q", s.StoryContext.InitialGoal, s.CurrentGoal)
	}
}

func TestSeedInitialGoal_DoesNotClobberActiveGoal(t *testing.T) {
	s := NewState()
	s.StoryContext = DefaultStoryContext()
	s.CurrentGoal = "Escape the crypt"

	s.SeedInitialGoal()

	if s.CurrentGoal != "Escape the crypt" {
		t.Errorf("seed overwrote active goal: %q", s.CurrentGoal)
	}
}

func TestGoalCompleted_MovesGoalAndActivatesNew(t *testing.T) {
	s := NewState()
	s.CurrentGoal = "Find the key"

	s.Apply("unlock", Outcome{
		Narrative:     "The lock clicks.",
		GoalCompleted: true,
		NewGoal:       "Open the vault",
	})

	if !reflect.DeepEqual(s.CompletedGoals, []string{"Find the key"}) {
		t.Errorf("expected completed goals [Find the key], got %v", s.CompletedGoals)
	}
	if s.CurrentGoal != "Open the vault" {
		t.Errorf("expected new goal active, got %q", s.CurrentGoal)
	}
}

func TestGoalCompleted_NoNewGoalLeavesNoGoal(t *testing.T) {
	s := NewState()
	s.CurrentGoal = "Find the key"

	s.Apply("unlock", Outcome{Narrative: "Done.", GoalCompleted: true})

	if s.CurrentGoal != "" {
		t.Errorf("expected no active goal, got %q", s.CurrentGoal)
	}
}

func TestGoalNotCompleted_NoTransition(t *testing.T) {
	s := NewState()
	s.CurrentGoal = "Find the key"

	s.Apply("wander", Outcome{Narrative: "Nothing here.", NewGoal: "Ignored"})

	if s.CurrentGoal != "Find the key" {
		t.Errorf("goal changed without completion: %q", s.CurrentGoal)
	}
	if len(s.CompletedGoals) != 0 {
		t.Errorf("expected no completed goals, got %v", s.CompletedGoals)
	}
}

func TestGoalIdempotence(t *testing.T) {
	s := NewState()
	s.CurrentGoal = "Find the key"
	s.Apply("unlock", Outcome{Narrative: "Done.", GoalCompleted: true})

	// Re-activating and re-completing the same goal must not duplicate it.
	s.CurrentGoal = "Find the key"
	s.Apply("unlock again", Outcome{Narrative: "Still done.", GoalCompleted: true})

	if !reflect.DeepEqual(s.CompletedGoals, []string{"Find the key"}) {
		t.Errorf("expected completed goals [Find the key], got %v", s.CompletedGoals)
	}
}

func TestGoalCompleted_WithNoActiveGoal(t *testing.T) {
	s := NewState()

	s.Apply("explore", Outcome{Narrative: "A purpose emerges.", GoalCompleted: true, NewGoal: "Reach the summit"})

	if len(s.CompletedGoals) != 0 {
		t.Errorf("expected no completed goals, got %v", s.CompletedGoals)
	}
	if s.CurrentGoal != "Reach the summit" {
		t.Errorf("expected new goal active, got %q", s.CurrentGoal)
	}
}
