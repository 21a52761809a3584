package game

// Goal tracking. The state machine has two shapes: no goal (CurrentGoal
// empty) and one active goal. Transitions happen only while applying a
// resolved action's outcome; there is no terminal state.

// SeedInitialGoal activates the story outline's initial goal, if the outline
// supplies one and no goal is active yet. Called once at world
// initialization.
func (s *State) SeedInitialGoal() {
	if s.CurrentGoal == "" {
		s.CurrentGoal = s.StoryContext.InitialGoal
	}
}

// applyGoalOutcome performs the goal transition for one outcome. When the
// outcome marks the goal completed, the active goal moves to the completed
// log (skipped if already there, so replays can't duplicate it) and the
// supplied new goal, if any, becomes active.
func (s *State) applyGoalOutcome(o Outcome) {
	if !o.GoalCompleted {
		return
	}
	if s.CurrentGoal != "" && !s.hasCompletedGoal(s.CurrentGoal) {
		s.CompletedGoals = append(s.CompletedGoals, s.CurrentGoal)
	}
	s.CurrentGoal = o.NewGoal
}

func (s *State) hasCompletedGoal(goal string) bool {
	for _, done := range s.CompletedGoals {
		if done == goal {
			return true
		}
	}
	return false
}
