package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/dongledger/internal/models"
)

const (
	// DescriptionSeparator joins the "name (×qty)" parts of a description.
	DescriptionSeparator = "، "

	// UnknownParticipantName is snapshotted when a selected id has no participant.
	UnknownParticipantName = "Unknown"
)

var (
	ErrNoParticipants  = errors.New("must have at least one participant")
	ErrNothingSelected = errors.New("must select at least one item")
)

// Line is one selected item of a split.
type Line struct {
	ItemID   string
	Name     string
	Price    float64
	Quantity int
	Subtotal float64
}

// Split is the result of dividing a selection of items among participants.
type Split struct {
	Lines         []Line
	TotalCost     float64
	CostPerPerson float64
	Participants  []string
	Description   string
}

// CalculateSplit computes the total of the selected items and each
// participant's even share of it.
//
// Quantities of zero or less, and ids missing from the catalog, are not
// selected. Lines follow catalog order. Duplicate participant ids count once.
// CostPerPerson is left unrounded.
func CalculateSplit(catalog []models.Item, quantities map[string]int, participants []string) (*Split, error) {
	people := uniqueIDs(participants)
	if len(people) == 0 {
		return nil, ErrNoParticipants
	}

	split := &Split{Participants: people}
	parts := make([]string, 0, len(quantities))
	for _, item := range catalog {
		qty := quantities[item.ID]
		if qty <= 0 {
			continue
		}
		line := Line{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: qty,
			Subtotal: item.Price * float64(qty),
		}
		split.Lines = append(split.Lines, line)
		split.TotalCost += line.Subtotal
		parts = append(parts, fmt.Sprintf("%s (×%d)", item.Name, qty))
	}

	split.CostPerPerson = split.TotalCost / float64(len(people))
	split.Description = strings.Join(parts, DescriptionSeparator)
	return split, nil
}

// NewExpenseGroup builds one unsettled ExpenseRecord per participant of the
// split. Every record carries the same transactionID, date, description and
// per-person amount. Names are snapshotted from roster.
func NewExpenseGroup(split *Split, roster []models.Participant, transactionID, date string) ([]models.ExpenseRecord, error) {
	if split == nil || len(split.Participants) == 0 {
		return nil, ErrNoParticipants
	}
	if len(split.Lines) == 0 {
		return nil, ErrNothingSelected
	}
	if transactionID == "" {
		return nil, fmt.Errorf("transaction id required")
	}

	names := make(map[string]string, len(roster))
	for _, p := range roster {
		names[p.ID] = p.Name
	}

	records := make([]models.ExpenseRecord, 0, len(split.Participants))
	for _, id := range split.Participants {
		name, ok := names[id]
		if !ok {
			name = UnknownParticipantName
		}
		records = append(records, models.ExpenseRecord{
			ID:            RecordID(transactionID, id),
			TransactionID: transactionID,
			EmployeeID:    id,
			EmployeeName:  name,
			Amount:        split.CostPerPerson,
			Date:          date,
			Description:   split.Description,
			IsSettled:     false,
		})
	}
	return records, nil
}

// RecordID returns the id of a participant's record within a transaction.
func RecordID(transactionID, participantID string) string {
	return transactionID + "-" + participantID
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
