// Package ledger applies typed actions to the ledger state.
//
// Reducer.Reduce is the only way a new state version is produced. It never
// fails: malformed payloads and unknown actions leave the state unchanged.
// Book owns the current state and hands every new version to storage.
package ledger

import (
	"math"
	"slices"
	"strings"

	"github.com/mmynk/dongledger/internal/models"
)

// Reducer applies actions to a state.
type Reducer struct {
	ids IDGenerator
}

// NewReducer creates a Reducer drawing fresh ids from ids.
// A nil generator falls back to UUIDGenerator.
func NewReducer(ids IDGenerator) *Reducer {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Reducer{ids: ids}
}

// Reduce returns the state after applying a. The input is never mutated;
// only the containers touched by a are rebuilt, the rest are shared.
func (r *Reducer) Reduce(s models.State, a Action) models.State {
	next, _ := r.apply(s, a)
	return next
}

// apply reports whether a changed the state.
func (r *Reducer) apply(s models.State, a Action) (models.State, bool) {
	switch a := a.(type) {
	case ReplaceState:
		if !validState(a.State) {
			return s, false
		}
		return a.State.Clone(), true

	case SetAppName:
		if strings.TrimSpace(a.Name) == "" {
			return s, false
		}
		s.AppName = a.Name
		return s, true

	case SetTheme:
		if a.Theme == "" {
			return s, false
		}
		s.Theme = a.Theme
		return s, true

	case AddParticipant:
		if strings.TrimSpace(a.Participant.Name) == "" {
			return s, false
		}
		p := a.Participant
		p.ID = r.ids.NewID()
		s.Participants = appendOne(s.Participants, p)
		return s, true

	case UpdateParticipant:
		if strings.TrimSpace(a.Participant.Name) == "" {
			return s, false
		}
		next, ok := replaceByID(s.Participants, a.Participant, participantID)
		if !ok {
			return s, false
		}
		s.Participants = next
		return s, true

	case DeleteParticipant:
		next, ok := removeWhere(s.Participants, func(p models.Participant) bool { return p.ID == a.ID })
		if !ok {
			return s, false
		}
		s.Participants = next
		return s, true

	case AddItem:
		if !validItem(a.Item) {
			return s, false
		}
		it := a.Item
		it.ID = r.ids.NewID()
		s.Items = appendOne(s.Items, it)
		return s, true

	case UpdateItem:
		if !validItem(a.Item) {
			return s, false
		}
		next, ok := replaceByID(s.Items, a.Item, itemID)
		if !ok {
			return s, false
		}
		s.Items = next
		return s, true

	case DeleteItem:
		next, ok := removeWhere(s.Items, func(it models.Item) bool { return it.ID == a.ID })
		if !ok {
			return s, false
		}
		s.Items = next
		return s, true

	case AddExpenseGroup:
		if !validGroup(s.Expenses, a.Records) {
			return s, false
		}
		next := make([]models.ExpenseRecord, 0, len(s.Expenses)+len(a.Records))
		next = append(next, s.Expenses...)
		s.Expenses = append(next, a.Records...)
		return s, true

	case UpdateExpense:
		if a.Record.TransactionID == "" || !validAmount(a.Record.Amount) {
			return s, false
		}
		next, ok := replaceByID(s.Expenses, a.Record, expenseID)
		if !ok {
			return s, false
		}
		s.Expenses = next
		return s, true

	case DeleteExpenseGroup:
		if a.TransactionID == "" {
			return s, false
		}
		next, ok := removeWhere(s.Expenses, func(e models.ExpenseRecord) bool { return e.TransactionID == a.TransactionID })
		if !ok {
			return s, false
		}
		s.Expenses = next
		return s, true

	case ToggleSettle:
		i := slices.IndexFunc(s.Expenses, func(e models.ExpenseRecord) bool { return e.ID == a.ID })
		if a.ID == "" || i < 0 {
			return s, false
		}
		next := slices.Clone(s.Expenses)
		next[i].IsSettled = !next[i].IsSettled
		s.Expenses = next
		return s, true
	}

	return s, false
}

func participantID(p models.Participant) string { return p.ID }
func itemID(it models.Item) string                { return it.ID }
func expenseID(e models.ExpenseRecord) string     { return e.ID }

func appendOne[T any](list []T, v T) []T {
	next := make([]T, 0, len(list)+1)
	next = append(next, list...)
	return append(next, v)
}

// replaceByID returns a copy of list with the element sharing v's id
// replaced by v.
func replaceByID[T any](list []T, v T, id func(T) string) ([]T, bool) {
	key := id(v)
	if key == "" {
		return list, false
	}
	i := slices.IndexFunc(list, func(e T) bool { return id(e) == key })
	if i < 0 {
		return list, false
	}
	next := slices.Clone(list)
	next[i] = v
	return next, true
}

// removeWhere returns a copy of list without the matching elements,
// keeping the relative order of the rest.
func removeWhere[T any](list []T, match func(T) bool) ([]T, bool) {
	if !slices.ContainsFunc(list, match) {
		return list, false
	}
	next := make([]T, 0, len(list))
	for _, e := range list {
		if !match(e) {
			next = append(next, e)
		}
	}
	return next, true
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validItem(it models.Item) bool {
	return strings.TrimSpace(it.Name) != "" && validAmount(it.Price) && it.Price >= 0
}

// validGroup checks a batch of records before it is appended: non-empty,
// one shared TransactionID, and ids unique among themselves and existing.
func validGroup(existing, records []models.ExpenseRecord) bool {
	if len(records) == 0 {
		return false
	}
	tx := records[0].TransactionID
	if tx == "" {
		return false
	}
	ids := make(map[string]bool, len(existing)+len(records))
	for _, e := range existing {
		ids[e.ID] = true
	}
	for _, r := range records {
		if r.ID == "" || r.TransactionID != tx || ids[r.ID] || !validAmount(r.Amount) {
			return false
		}
		ids[r.ID] = true
	}
	return true
}

// validState checks id uniqueness within every container.
func validState(s models.State) bool {
	return uniqueIDs(s.Participants, participantID) &&
		uniqueIDs(s.Items, itemID) &&
		uniqueIDs(s.Expenses, expenseID)
}

func uniqueIDs[T any](list []T, id func(T) string) bool {
	seen := make(map[string]bool, len(list))
	for _, e := range list {
		k := id(e)
		if k == "" || seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}
