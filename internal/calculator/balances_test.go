package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/dongledger/internal/models"
)

func rec(id, tx, emp, name string, amount float64, date string, settled bool) models.ExpenseRecord {
	return models.ExpenseRecord{
		ID: id, TransactionID: tx, EmployeeID: emp, EmployeeName: name,
		Amount: amount, Date: date, Description: "d-" + tx, IsSettled: settled,
	}
}

func sampleExpenses() []models.ExpenseRecord {
	return []models.ExpenseRecord{
		rec("a-p1", "a", "p1", "Sara", 100, "1403/01/05", false),
		rec("a-p2", "a", "p2", "Reza", 100, "1403/01/05", true),
		rec("b-p1", "b", "p1", "Sara", 50, "1403/02/01", false),
		rec("b-p3", "b", "p3", "Mina", 50, "1403/02/01", false),
		rec("c-p2", "c", "p2", "Reza", 30, "1403/01/05", false),
		rec("c-gone", "c", "gone", "Ali", 30, "1403/01/05", false),
	}
}

func TestGroupByTransaction(t *testing.T) {
	groups := GroupByTransaction(sampleExpenses(), Filter{})

	wantOrder := []string{"b", "a", "c"}
	if len(groups) != len(wantOrder) {
		t.Fatalf("expected %d groups, got %d", len(wantOrder), len(groups))
	}
	for i, want := range wantOrder {
		if groups[i].TransactionID != want {
			t.Errorf("group %d = %s, want %s", i, groups[i].TransactionID, want)
		}
	}

	a := groups[1]
	if len(a.Records) != 2 || a.Records[0].ID != "a-p1" || a.Records[1].ID != "a-p2" {
		t.Errorf("group a lost insertion order: %+v", a.Records)
	}
	if a.Total() != 200 {
		t.Errorf("group a total = %v, want 200", a.Total())
	}
	if a.SettledCount() != 1 {
		t.Errorf("group a settled = %d, want 1", a.SettledCount())
	}
}

func TestGroupByTransaction_Filter(t *testing.T) {
	expenses := sampleExpenses()
	groups := GroupByTransaction(expenses, Filter{ParticipantID: "p2"})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	for _, g := range groups {
		for _, r := range g.Records {
			if r.EmployeeID != "p2" {
				t.Errorf("filtered group contains %s", r.EmployeeID)
			}
		}
	}
	if len(expenses) != 6 {
		t.Error("filter mutated the input")
	}
}

func TestGroupByTransaction_Empty(t *testing.T) {
	if groups := GroupByTransaction(nil, Filter{}); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestNetBalances(t *testing.T) {
	balances := NetBalances(roster, sampleExpenses(), Filter{})

	want := []struct {
		id       string
		total    float64
		orphaned bool
	}{
		{"p1", 150, false},
		{"p3", 50, false},
		{"p2", 30, false},
		{"gone", 30, true},
	}

	if len(balances) != len(want) {
		t.Fatalf("expected %d balances, got %d: %+v", len(want), len(balances), balances)
	}
	for i, w := range want {
		b := balances[i]
		if b.ParticipantID != w.id || math.Abs(b.Total-w.total) > 0.0001 || b.Orphaned != w.orphaned {
			t.Errorf("balance %d = %+v, want %+v", i, b, w)
		}
	}
	if balances[3].Name != "Ali" {
		t.Errorf("orphan name = %q, want snapshot %q", balances[3].Name, "Ali")
	}
}

func TestNetBalances_ExcludesZero(t *testing.T) {
	expenses := []models.ExpenseRecord{
		rec("a-p1", "a", "p1", "Sara", 100, "d", true),
	}
	if balances := NetBalances(roster, expenses, Filter{}); len(balances) != 0 {
		t.Errorf("expected no balances, got %+v", balances)
	}
}

func TestNetBalances_FilterWithoutRecords(t *testing.T) {
	balances := NetBalances(roster, sampleExpenses(), Filter{ParticipantID: "nobody"})
	if len(balances) != 0 {
		t.Errorf("expected empty result, got %+v", balances)
	}
}

// Every non-zero balance equals the sum of that participant's unsettled records.
func TestNetBalances_MatchesUnsettledSums(t *testing.T) {
	expenses := sampleExpenses()
	sums := make(map[string]float64)
	for _, e := range expenses {
		if !e.IsSettled {
			sums[e.EmployeeID] += e.Amount
		}
	}

	balances := NetBalances(roster, expenses, Filter{})
	for _, b := range balances {
		if math.Abs(sums[b.ParticipantID]-b.Total) > 1e-9 {
			t.Errorf("%s: balance %v, unsettled sum %v", b.ParticipantID, b.Total, sums[b.ParticipantID])
		}
	}
	for id, sum := range sums {
		if sum == 0 {
			continue
		}
		found := false
		for _, b := range balances {
			if b.ParticipantID == id {
				found = true
			}
		}
		if !found {
			t.Errorf("participant %s with sum %v missing from balances", id, sum)
		}
	}
}
