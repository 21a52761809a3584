package director

import (
	"encoding/json"
	"fmt"
	"strings"

	"dungeonexplorer/internal/game"
)

// Intent is the category of generation request. Each intent has its own
// expected reply schema and its own fallback content.
type Intent int

const (
	IntentInitWorld Intent = iota
	IntentCreatePlayer
	IntentOfferChoices
	IntentResolveAction
)

func (i Intent) String() string {
	switch i {
	case IntentInitWorld:
		return "init_world"
	case IntentCreatePlayer:
		return "create_player"
	case IntentOfferChoices:
		return "offer_choices"
	case IntentResolveAction:
		return "resolve_action"
	default:
		return "unknown"
	}
}

const jsonOnlySuffix = "\n\nRespond with valid JSON only, no additional text."

// Prompt builders are pure functions of the game state and intent: no side
// effects, no randomness. Each prompt embeds the exact field schema the
// validator expects for that intent.

func initWorldPrompt() string {
	return `You are a game master. A new game is about to start and we need an outline.

Please provide the following in JSON format:
1. theme: A fantasy theme for the dungeon
2. conflict: The main conflict or challenge
3. possible_solutions: At least 3 different ways to resolve the conflict
4. characters: At least 3 characters, each with name, description, motivation, and how they can help or hinder the player
5. failure_cases: At least 2 ways the player might fail
6. main_goal: The overall goal the player is working toward
7. initial_goal: The first concrete objective the player should pursue` + jsonOnlySuffix
}

func createPlayerPrompt(s *game.State) string {
	context, _ := json.Marshal(s.StoryContext)
	return fmt.Sprintf(`Based on this game context: %s

Please create:
1. A player character (name, brief background, starting items)
2. A starting location in the dungeon

Format your response with these fields:
- player_name
- player_background
- starting_items (as a list)
- starting_location
- location_description`, context) + jsonOnlySuffix
}

func offerChoicesPrompt(s *game.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Based on the current game state: %s

Generate exactly 4 possible actions the player can take right now.
These should be logical given the current location, inventory, and story context.
`, stateSnapshot(s))

	if s.CurrentGoal != "" {
		fmt.Fprintf(&b, `
The player's current goal is: %q
At least 2 of the 4 actions must make concrete progress toward this goal.
`, s.CurrentGoal)
	}

	b.WriteString(`
Format your response with a single field "choices" containing an array of 4 strings.
Each string should be a brief action description (5-10 words).`)
	b.WriteString(jsonOnlySuffix)
	return b.String()
}

func resolveActionPrompt(s *game.State, action string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Based on the current game state: %s

The player has chosen to: %q

Please continue the game by:
1. Describing what happens as a result of this action
2. Determining if any new items were found or lost
3. Determining if any characters were encountered
4. Updating the current location if the player moved
5. Evaluating whether the player's current goal was completed by this action

Narrative continuity rules:
- Only introduce characters who belong to the story context or have been met already; no unmotivated appearances
- Do not resolve the action by undoing it or returning the player to where they just were; avoid circular back-and-forth outcomes
- Stay consistent with the history of what has already happened
`, stateSnapshot(s), action)

	if s.CurrentGoal != "" {
		fmt.Fprintf(&b, "\nThe player's current goal is: %q\n", s.CurrentGoal)
	}

	b.WriteString(`
Format your response with these fields:
- action_result: A paragraph describing what happens
- new_location (optional): If the player moved to a new location
- location_description (optional): Description of the new location
- items_gained (optional): List of items the player gained
- items_lost (optional): List of items the player lost
- character_encountered (optional): Name of any character encountered
- character_interaction (optional): Description of the interaction
- goal_completed (optional): true if this action completed the current goal
- new_goal (optional): The next objective, if the current goal was completed`)
	b.WriteString(jsonOnlySuffix)
	return b.String()
}

// stateSnapshot serializes the slice of state the model needs: everything
// except the cosmetic title, with history capped to the most recent entries
// to bound prompt size.
func stateSnapshot(s *game.State) string {
	const historyWindow = 10

	history := s.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	snapshot := struct {
		StoryContext        game.StoryContext   `json:"story_context"`
		Player              game.Player         `json:"player"`
		CurrentLocation     string              `json:"current_location"`
		LocationDescription string              `json:"location_description"`
		Inventory           []string            `json:"inventory"`
		CharactersMet       []string            `json:"characters_met"`
		CurrentGoal         string              `json:"current_goal,omitempty"`
		CompletedGoals      []string            `json:"completed_goals,omitempty"`
		History             []game.HistoryEntry `json:"history"`
	}{
		StoryContext:        s.StoryContext,
		Player:              s.Player,
		CurrentLocation:     s.CurrentLocation,
		LocationDescription: s.LocationDescription,
		Inventory:           s.Inventory,
		CharactersMet:       s.CharactersMet,
		CurrentGoal:         s.CurrentGoal,
		CompletedGoals:      s.CompletedGoals,
		History:             history,
	}

	data, _ := json.Marshal(snapshot)
	return string(data)
}
