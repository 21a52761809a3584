package game

// Outcome is the validated result of resolving one player action. Every
// field except Narrative is optional; an empty string or nil slice means the
// reply did not supply that field. An Outcome is consumed exactly once by
// Apply and then discarded.
type Outcome struct {
	Narrative            string
	NewLocation          string
	LocationDescription  string
	ItemsGained          []string
	ItemsLost            []string
	CharacterEncountered string
	CharacterInteraction string
	GoalCompleted        bool
	NewGoal              string
}
