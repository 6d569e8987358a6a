// Package inbox holds the multi-select state used to bulk delete notifications.
package inbox

import (
	"github.com/samber/lo"
)

// State is the mode of a Selection
type State int

const (
	// Idle means nothing is selected
	Idle State = iota
	// Selecting means at least one notification is selected
	Selecting
)

func (s State) String() string {
	if s == Selecting {
		return "selecting"
	}
	return "idle"
}

// Selection is a set of notification ids kept in selection order.
// It is not safe for concurrent use.
type Selection struct {
	ids []string
}

// NewSelection returns a selection holding ids, duplicates removed
func NewSelection(ids ...string) *Selection {
	s := &Selection{}
	for _, id := range ids {
		s.Select(id)
	}
	return s
}

// Toggle adds id when absent and removes it when present, returning the new state
func (s *Selection) Toggle(id string) State {
	if s.Contains(id) {
		s.ids = lo.Without(s.ids, id)
	} else {
		s.ids = append(s.ids, id)
	}
	return s.State()
}

// Select adds id if it is not already selected. Empty ids are ignored.
func (s *Selection) Select(id string) {
	if id == "" || s.Contains(id) {
		return
	}
	s.ids = append(s.ids, id)
}

// Contains reports whether id is selected
func (s *Selection) Contains(id string) bool {
	return lo.Contains(s.ids, id)
}

// Selected returns a copy of the selected ids
func (s *Selection) Selected() []string {
	return append([]string(nil), s.ids...)
}

// Len returns the number of selected ids
func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) State() State {
	if len(s.ids) == 0 {
		return Idle
	}
	return Selecting
}

// Reset clears the selection, returning it to Idle
func (s *Selection) Reset() {
	s.ids = nil
}
