package game

// StoryContext is the world outline generated once at the start of a game.
// It is read-only afterwards: prompt construction consumes it, nothing
// mutates it.
type StoryContext struct {
	Theme             string      `json:"theme"`
	Conflict          string      `json:"conflict"`
	PossibleSolutions []string    `json:"possible_solutions"`
	Characters        []Character `json:"characters"`
	FailureCases      []string    `json:"failure_cases"`
	MainGoal          string      `json:"main_goal,omitempty"`
	InitialGoal       string      `json:"initial_goal,omitempty"`
}

// IsEmpty reports whether no world outline has been installed yet.
func (sc StoryContext) IsEmpty() bool {
	return sc.Theme == "" && sc.Conflict == "" &&
		len(sc.PossibleSolutions) == 0 && len(sc.Characters) == 0
}

// Character is one descriptor in the story outline. Help and Hinder are
// mutually optional: a character may offer either, both, or neither.
type Character struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Motivation  string `json:"motivation"`
	Help        string `json:"help,omitempty"`
	Hinder      string `json:"hinder,omitempty"`
}

// Player identity, set once at character creation.
type Player struct {
	Name       string `json:"name"`
	Background string `json:"background"`
}

// HistoryEntry is one processed action and its narrated result. Entries are
// append-only and never edited after the fact.
type HistoryEntry struct {
	Action string `json:"action"`
	Result string `json:"result"`
}

// CustomTitle is the cosmetic two-line banner title. It has no bearing on
// game logic.
type CustomTitle struct {
	Title1 string `json:"title1"`
	Title2 string `json:"title2"`
}

// State is the single persistent aggregate for a running game. Its JSON
// encoding is the save-file format: key names here are the on-disk contract.
type State struct {
	StoryContext        StoryContext   `json:"story_context"`
	Player              Player         `json:"player"`
	CurrentLocation     string         `json:"current_location,omitempty"`
	LocationDescription string         `json:"location_description,omitempty"`
	Inventory           []string       `json:"inventory"`
	CharactersMet       []string       `json:"characters_met"`
	CurrentGoal         string         `json:"current_goal,omitempty"`
	CompletedGoals      []string       `json:"completed_goals,omitempty"`
	History             []HistoryEntry `json:"history"`
	CustomTitle         *CustomTitle   `json:"custom_title,omitempty"`
}

// NewState returns an empty game state with all collections initialized.
func NewState() *State {
	return &State{
		Inventory:      []string{},
		CharactersMet:  []string{},
		CompletedGoals: []string{},
		History:        []HistoryEntry{},
	}
}

// Normalize replaces nil collections with empty ones. Save files may omit
// optional keys entirely, so loaded states pass through here before use.
func (s *State) Normalize() {
	if s.Inventory == nil {
		s.Inventory = []string{}
	}
	if s.CharactersMet == nil {
		s.CharactersMet = []string{}
	}
	if s.CompletedGoals == nil {
		s.CompletedGoals = []string{}
	}
	if s.History == nil {
		s.History = []HistoryEntry{}
	}
}

// HasMet reports whether the named character is already in the met list.
func (s *State) HasMet(name string) bool {
	for _, met := range s.CharactersMet {
		if met == name {
			return true
		}
	}
	return false
}

// PlayerSetup is the validated result of character creation, installed into
// the state in one step.
type PlayerSetup struct {
	Player              Player
	Inventory           []string
	Location            string
	LocationDescription string
}

// SetPlayer installs the character-creation result. Called exactly once per
// new game; the player identity is immutable afterwards.
func (s *State) SetPlayer(setup PlayerSetup) {
	s.Player = setup.Player
	s.Inventory = append([]string{}, setup.Inventory...)
	s.CurrentLocation = setup.Location
	s.LocationDescription = setup.LocationDescription
}
