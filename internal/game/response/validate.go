package response

import (
	"encoding/json"

	"dungeonexplorer/internal/game"
)

// FailureKind distinguishes why a fallback was substituted. Callers use it
// for logging and player feedback only; the returned value is complete and
// usable either way.
type FailureKind int

const (
	// FailureNone means the generated reply passed validation.
	FailureNone FailureKind = iota
	// FailureServiceUnavailable means the generation call itself failed.
	FailureServiceUnavailable
	// FailureMalformed means the reply could not be parsed or was missing
	// required fields for its intent.
	FailureMalformed
)

func (k FailureKind) String() string {
	switch k {
	case FailureServiceUnavailable:
		return "service_unavailable"
	case FailureMalformed:
		return "malformed_response"
	default:
		return "none"
	}
}

// StoryContext validates a world-initialization reply. Required: a non-empty
// parsed mapping. Anything less yields the fixed default story context.
func StoryContext(raw string, genErr error) (game.StoryContext, FailureKind) {
	if genErr != nil {
		return game.DefaultStoryContext(), FailureServiceUnavailable
	}

	var keys map[string]json.RawMessage
	if !decode(raw, &keys) || len(keys) == 0 {
		return game.DefaultStoryContext(), FailureMalformed
	}

	var sc game.StoryContext
	if !decode(raw, &sc) || sc.IsEmpty() {
		return game.DefaultStoryContext(), FailureMalformed
	}
	return sc, FailureNone
}

type playerWire struct {
	PlayerName          string   `json:"player_name"`
	PlayerBackground    string   `json:"player_background"`
	StartingItems       []string `json:"starting_items"`
	StartingLocation    string   `json:"starting_location"`
	LocationDescription string   `json:"location_description"`
}

// PlayerSetup validates a character-creation reply. Required: player_name.
// Other fields are taken as supplied; the full default character is
// substituted only when the reply as a whole is unusable.
func PlayerSetup(raw string, genErr error) (game.PlayerSetup, FailureKind) {
	if genErr != nil {
		return game.DefaultPlayerSetup(), FailureServiceUnavailable
	}

	var wire playerWire
	if !decode(raw, &wire) || wire.PlayerName == "" {
		return game.DefaultPlayerSetup(), FailureMalformed
	}

	setup := game.PlayerSetup{
		Player: game.Player{
			Name:       wire.PlayerName,
			Background: wire.PlayerBackground,
		},
		Inventory:           wire.StartingItems,
		Location:            wire.StartingLocation,
		LocationDescription: wire.LocationDescription,
	}
	if setup.Inventory == nil {
		setup.Inventory = []string{}
	}
	return setup, FailureNone
}

type choicesWire struct {
	Choices []string `json:"choices"`
}

// Choices validates a choice-offering reply. Required: a choices array with
// exactly four entries. A malformed count is replaced wholesale by the fixed
// default list, never trimmed or padded.
func Choices(raw string, genErr error) ([]string, FailureKind) {
	if genErr != nil {
		return game.DefaultChoices(), FailureServiceUnavailable
	}

	var wire choicesWire
	if !decode(raw, &wire) || len(wire.Choices) != 4 {
		return game.DefaultChoices(), FailureMalformed
	}
	return wire.Choices, FailureNone
}

type outcomeWire struct {
	ActionResult         string   `json:"action_result"`
	NewLocation          string   `json:"new_location"`
	LocationDescription  string   `json:"location_description"`
	ItemsGained          []string `json:"items_gained"`
	ItemsLost            []string `json:"items_lost"`
	CharacterEncountered string   `json:"character_encountered"`
	CharacterInteraction string   `json:"character_interaction"`
	GoalCompleted        bool     `json:"goal_completed"`
	NewGoal              string   `json:"new_goal"`
}

// Outcome validates an action-resolution reply. Required: action_result.
// On any failure the caller still gets a usable outcome whose narrative is
// the fixed default, so a turn can never be blocked by a bad reply.
func Outcome(raw string, genErr error) (game.Outcome, FailureKind) {
	if genErr != nil {
		return game.Outcome{Narrative: game.DefaultNarrative}, FailureServiceUnavailable
	}

	var wire outcomeWire
	if !decode(raw, &wire) || wire.ActionResult == "" {
		return game.Outcome{Narrative: game.DefaultNarrative}, FailureMalformed
	}

	return game.Outcome{
		Narrative:            wire.ActionResult,
		NewLocation:          wire.NewLocation,
		LocationDescription:  wire.LocationDescription,
		ItemsGained:          wire.ItemsGained,
		ItemsLost:            wire.ItemsLost,
		CharacterEncountered: wire.CharacterEncountered,
		CharacterInteraction: wire.CharacterInteraction,
		GoalCompleted:        wire.GoalCompleted,
		NewGoal:              wire.NewGoal,
	}, FailureNone
}
