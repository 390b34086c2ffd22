package calculator

import (
	"cmp"
	"slices"

	"github.com/mmynk/dongledger/internal/models"
)

// Filter restricts the expense set before grouping or summing.
// The zero value selects every record.
type Filter struct {
	ParticipantID string
}

func (f Filter) match(e models.ExpenseRecord) bool {
	return f.ParticipantID == "" || e.EmployeeID == f.ParticipantID
}

// Apply returns the records matching f, in their original order.
func (f Filter) Apply(expenses []models.ExpenseRecord) []models.ExpenseRecord {
	out := make([]models.ExpenseRecord, 0, len(expenses))
	for _, e := range expenses {
		if f.match(e) {
			out = append(out, e)
		}
	}
	return out
}

// TransactionGroup is the set of records produced by one split.
type TransactionGroup struct {
	TransactionID string
	Records       []models.ExpenseRecord
}

// Head returns the first record of the group, which carries its
// description, date and per-person share.
func (g TransactionGroup) Head() models.ExpenseRecord {
	return g.Records[0]
}

// Total returns the sum of the group's record amounts.
func (g TransactionGroup) Total() float64 {
	var total float64
	for _, r := range g.Records {
		total += r.Amount
	}
	return total
}

// SettledCount returns how many records of the group are settled.
func (g TransactionGroup) SettledCount() int {
	n := 0
	for _, r := range g.Records {
		if r.IsSettled {
			n++
		}
	}
	return n
}

// GroupByTransaction partitions the filtered expenses by TransactionID.
// Records keep insertion order within a group. Groups are ordered by the
// date of their first record, descending, compared as strings; equal dates
// keep first-appearance order.
func GroupByTransaction(expenses []models.ExpenseRecord, filter Filter) []TransactionGroup {
	var groups []TransactionGroup
	index := make(map[string]int)

	for _, e := range expenses {
		if !filter.match(e) {
			continue
		}
		i, ok := index[e.TransactionID]
		if !ok {
			i = len(groups)
			index[e.TransactionID] = i
			groups = append(groups, TransactionGroup{TransactionID: e.TransactionID})
		}
		groups[i].Records = append(groups[i].Records, e)
	}

	slices.SortStableFunc(groups, func(a, b TransactionGroup) int {
		return cmp.Compare(b.Head().Date, a.Head().Date)
	})
	return groups
}

// ParticipantBalance is the net of one participant's unsettled records.
type ParticipantBalance struct {
	ParticipantID string
	Name          string
	Total         float64 // Positive = owes money
	Records       int

	// Orphaned is set when the participant no longer exists and Name comes
	// from the record snapshot.
	Orphaned bool
}

// NetBalances sums the unsettled amounts of every participant referenced
// by the filtered expenses. Participants with a zero total are omitted.
// Records whose participant was deleted still count, under their name
// snapshot and flagged Orphaned.
//
// The result is ordered by Total descending; ties keep roster order, with
// orphaned participants after the roster in first-appearance order.
func NetBalances(roster []models.Participant, expenses []models.ExpenseRecord, filter Filter) []ParticipantBalance {
	var balances []*ParticipantBalance
	byID := make(map[string]*ParticipantBalance, len(roster))

	for _, p := range roster {
		if _, dup := byID[p.ID]; dup {
			continue
		}
		b := &ParticipantBalance{ParticipantID: p.ID, Name: p.Name}
		byID[p.ID] = b
		balances = append(balances, b)
	}

	for _, e := range expenses {
		if e.IsSettled || !filter.match(e) {
			continue
		}
		b, ok := byID[e.EmployeeID]
		if !ok {
			b = &ParticipantBalance{ParticipantID: e.EmployeeID, Name: e.EmployeeName, Orphaned: true}
			byID[e.EmployeeID] = b
			balances = append(balances, b)
		}
		b.Total += e.Amount
		b.Records++
	}

	out := make([]ParticipantBalance, 0, len(balances))
	for _, b := range balances {
		if b.Total != 0 {
			out = append(out, *b)
		}
	}
	slices.SortStableFunc(out, func(a, b ParticipantBalance) int {
		return cmp.Compare(b.Total, a.Total)
	})
	return out
}
