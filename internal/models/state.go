package models

import (
	"slices"
)

const (
	// DefaultAppName is the app name of a fresh ledger.
	DefaultAppName = "حسابگر دُنگ"

	// DefaultTheme is the theme of a fresh ledger.
	DefaultTheme = "default"
)

// Themes lists the theme ids a ledger may use.
var Themes = []string{"default", "ocean", "sunset", "forest"}

// IsTheme reports whether id names a known theme.
func IsTheme(id string) bool {
	return slices.Contains(Themes, id)
}

// State is the aggregate root of the ledger. It is treated as an immutable
// value: producing a new version means building new slices for the
// containers that changed and sharing the rest.
type State struct {
	AppName      string          `json:"appName"`
	Theme        string          `json:"theme"`
	Participants []Participant   `json:"participants"`
	Items        []Item          `json:"items"`
	Expenses     []ExpenseRecord `json:"expenses"`
}

// NewState returns the state of a fresh ledger.
func NewState() State {
	return State{
		AppName:      DefaultAppName,
		Theme:        DefaultTheme,
		Participants: []Participant{},
		Items:        []Item{},
		Expenses:     []ExpenseRecord{},
	}
}

// Normalize returns s with nil containers replaced by empty ones.
func (s State) Normalize() State {
	if s.Participants == nil {
		s.Participants = []Participant{}
	}
	if s.Items == nil {
		s.Items = []Item{}
	}
	if s.Expenses == nil {
		s.Expenses = []ExpenseRecord{}
	}
	return s
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Participants = slices.Clone(s.Participants)
	s.Items = slices.Clone(s.Items)
	s.Expenses = slices.Clone(s.Expenses)
	return s.Normalize()
}

// Participant returns the participant with the given id.
func (s State) Participant(id string) (Participant, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}
