package game

// Hand-authored fallback content. Whenever generation fails or a reply does
// not satisfy its intent's required fields, the validator substitutes these
// values so a turn can always complete.

// DefaultNarrative is the outcome text used when action resolution fails.
const DefaultNarrative = "Nothing significant happened."

// DefaultStoryContext returns the fixed world outline used when world
// generation fails.
func DefaultStoryContext() StoryContext {
	return StoryContext{
		Theme:    "Ancient cursed temple",
		Conflict: "A powerful artifact is causing monsters to appear",
		PossibleSolutions: []string{
			"Destroy the artifact",
			"Return the artifact to its rightful place",
			"Use the artifact to seal the temple",
		},
		Characters: []Character{
			{
				Name:        "Old Sage",
				Description: "A wise old man who knows the temple's history",
				Motivation:  "Wants to preserve knowledge",
				Help:        "Can provide information about the artifact",
			},
			{
				Name:        "Temple Guardian",
				Description: "A magical construct protecting the temple",
				Motivation:  "Follows ancient orders to protect the artifact",
				Hinder:      "Will attack anyone trying to take the artifact",
			},
			{
				Name:        "Treasure Hunter",
				Description: "A rival explorer seeking the artifact",
				Motivation:  "Wants to sell the artifact for profit",
				Hinder:      "Will try to steal the artifact from the player",
			},
		},
		FailureCases: []string{
			"Getting trapped in the temple forever",
			"Releasing an ancient evil by misusing the artifact",
		},
		MainGoal:    "Lift the curse on the temple",
		InitialGoal: "Find a way into the temple's inner sanctum",
	}
}

// DefaultPlayerSetup returns the fixed character used when character
// creation fails.
func DefaultPlayerSetup() PlayerSetup {
	return PlayerSetup{
		Player: Player{
			Name:       "Adventurer",
			Background: "A brave explorer seeking fortune and glory",
		},
		Inventory: []string{"torch", "rope", "dagger"},
		Location:  "Temple Entrance",
		LocationDescription: "A massive stone doorway covered in ancient runes. " +
			"The air feels heavy with magic.",
	}
}

// DefaultChoices returns the fixed action menu used when choice generation
// fails. Always exactly four entries.
func DefaultChoices() []string {
	return []string{
		"Explore deeper into the dungeon",
		"Search the current area",
		"Check your inventory",
		"Rest and recover",
	}
}
