package game

// Apply folds a validated outcome into the state. Steps run in a fixed
// order, each conditional on its field being present:
//
//  1. append {action, narrative} to the history log
//  2. overwrite the location if a new one was supplied
//  3. append gained items to the inventory
//  4. remove one occurrence of each lost item, skipping absentees
//  5. record a newly encountered character
//  6. apply the goal transition
//
// Once an outcome is accepted no step can fail, so a turn never leaves the
// state half-applied.
func (s *State) Apply(action string, o Outcome) {
	s.History = append(s.History, HistoryEntry{Action: action, Result: o.Narrative})

	if o.NewLocation != "" {
		s.CurrentLocation = o.NewLocation
		s.LocationDescription = o.LocationDescription
	}

	s.Inventory = append(s.Inventory, o.ItemsGained...)

	for _, item := range o.ItemsLost {
		s.removeItem(item)
	}

	if o.CharacterEncountered != "" && !s.HasMet(o.CharacterEncountered) {
		s.CharactersMet = append(s.CharactersMet, o.CharacterEncountered)
	}

	s.applyGoalOutcome(o)
}

// removeItem drops the first occurrence of name from the inventory. Missing
// items are a no-op, never an error.
func (s *State) removeItem(name string) {
	for i, item := range s.Inventory {
		if item == name {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return
		}
	}
}
