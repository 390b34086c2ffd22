// Package api defines the request and response messages of the ledger
// RPC service.
package api

import (
	"github.com/mmynk/dongledger/internal/ledger"
	"github.com/mmynk/dongledger/internal/models"
)

type GetStateRequest struct{}

type GetStateResponse struct {
	State models.State `json:"state"`
}

// DispatchRequest carries one tagged action, e.g.
// {"action":{"type":"TOGGLE_SETTLE_EXPENSE","payload":"<record id>"}}.
type DispatchRequest struct {
	Action ledger.Envelope `json:"action"`
}

type DispatchResponse struct {
	State models.State `json:"state"`
}

// ReplaceStateRequest restores a full state, e.g. from an exported file.
type ReplaceStateRequest struct {
	State models.State `json:"state"`
}

type ReplaceStateResponse struct {
	State models.State `json:"state"`
}

type ListTransactionsRequest struct {
	ParticipantID string `json:"participantId,omitempty"`
}

type TransactionGroup struct {
	TransactionID string                 `json:"transactionId"`
	Description   string                 `json:"description"`
	Date          string                 `json:"date"`
	Amount        float64                `json:"amount"`
	Total         float64                `json:"total"`
	SettledCount  int                    `json:"settledCount"`
	Records       []models.ExpenseRecord `json:"records"`
}

type ListTransactionsResponse struct {
	Groups []TransactionGroup `json:"groups"`
}

type GetBalancesRequest struct {
	ParticipantID string `json:"participantId,omitempty"`
}

type Balance struct {
	ParticipantID string  `json:"participantId"`
	Name          string  `json:"name"`
	Total         float64 `json:"total"`
	Records       int     `json:"records"`
	Orphaned      bool    `json:"orphaned,omitempty"`
}

type GetBalancesResponse struct {
	Balances []Balance `json:"balances"`
}

type CalculateSplitRequest struct {
	Quantities     map[string]int `json:"quantities"`
	ParticipantIDs []string       `json:"participantIds"`
}

type SplitLine struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type CalculateSplitResponse struct {
	Lines         []SplitLine `json:"lines"`
	TotalCost     float64     `json:"totalCost"`
	CostPerPerson float64     `json:"costPerPerson"`
	Description   string      `json:"description"`
}

type CreateExpenseGroupRequest struct {
	Quantities     map[string]int `json:"quantities"`
	ParticipantIDs []string       `json:"participantIds"`
	// Date is free-form; a zero-padded YYYY/MM/DD of today is used when empty.
	Date string `json:"date,omitempty"`
}

type CreateExpenseGroupResponse struct {
	TransactionID string                 `json:"transactionId"`
	Records       []models.ExpenseRecord `json:"records"`
	State         models.State           `json:"state"`
}

// ShareReportRequest asks for one group's report when TransactionID is
// set, and for the full report otherwise.
type ShareReportRequest struct {
	TransactionID string `json:"transactionId,omitempty"`
	ParticipantID string `json:"participantId,omitempty"`
}

type ShareReportResponse struct {
	Text string `json:"text"`
}
