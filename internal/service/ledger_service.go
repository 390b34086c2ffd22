// Package service implements the ledger RPC service on top of a Book.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/dongledger/internal/calculator"
	"github.com/mmynk/dongledger/internal/ledger"
	"github.com/mmynk/dongledger/internal/models"
	"github.com/mmynk/dongledger/internal/report"
	"github.com/mmynk/dongledger/pkg/api"
	"github.com/mmynk/dongledger/pkg/api/apiconnect"
)

// DateLayout is used for expense groups created without an explicit date.
// Zero-padded so that string order matches chronological order.
const DateLayout = "2006/01/02"

var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	book     *ledger.Book
	reporter *report.Reporter
	ids      ledger.IDGenerator
	now      func() time.Time
}

// NewLedgerService creates a LedgerService serving book. Reports are
// rendered with reporter.
func NewLedgerService(book *ledger.Book, reporter *report.Reporter) *LedgerService {
	return &LedgerService{
		book:     book,
		reporter: reporter,
		ids:      ledger.UUIDGenerator{},
		now:      time.Now,
	}
}

// GetState returns the current ledger state.
func (s *LedgerService) GetState(ctx context.Context, req *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error) {
	state := s.book.State()
	slog.Debug("GetState successful",
		"participants", len(state.Participants),
		"items", len(state.Items),
		"expenses", len(state.Expenses),
	)
	return connect.NewResponse(&api.GetStateResponse{State: state}), nil
}

// Dispatch decodes and applies one action. Actions the ledger ignores are
// not errors; the unchanged state is returned.
func (s *LedgerService) Dispatch(ctx context.Context, req *connect.Request[api.DispatchRequest]) (*connect.Response[api.DispatchResponse], error) {
	slog.Info("Dispatch request received", "type", req.Msg.Action.Type)

	action, err := req.Msg.Action.Decode()
	if err != nil {
		slog.Warn("Dispatch rejected", "type", req.Msg.Action.Type, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if t, ok := action.(ledger.SetTheme); ok && t.Theme != "" && !models.IsTheme(t.Theme) {
		slog.Warn("Unknown theme id, storing as given", "theme", t.Theme)
	}

	state, changed := s.book.Apply(ctx, action)
	slog.Info("Dispatch handled", "type", action.Type(), "changed", changed)

	return connect.NewResponse(&api.DispatchResponse{State: state}), nil
}

// ReplaceState swaps the whole state. A state with missing or duplicate
// ids is rejected.
func (s *LedgerService) ReplaceState(ctx context.Context, req *connect.Request[api.ReplaceStateRequest]) (*connect.Response[api.ReplaceStateResponse], error) {
	slog.Info("ReplaceState request received",
		"participants", len(req.Msg.State.Participants),
		"items", len(req.Msg.State.Items),
		"expenses", len(req.Msg.State.Expenses),
	)

	state, changed := s.book.Apply(ctx, ledger.ReplaceState{State: req.Msg.State.Normalize()})
	if !changed {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("state has missing or duplicate ids"))
	}

	return connect.NewResponse(&api.ReplaceStateResponse{State: state}), nil
}

// ListTransactions returns the expense records grouped by transaction,
// newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	state := s.book.State()
	groups := calculator.GroupByTransaction(state.Expenses, calculator.Filter{ParticipantID: req.Msg.ParticipantID})

	out := make([]api.TransactionGroup, len(groups))
	for i, g := range groups {
		head := g.Head()
		out[i] = api.TransactionGroup{
			TransactionID: g.TransactionID,
			Description:   head.Description,
			Date:          head.Date,
			Amount:        head.Amount,
			Total:         g.Total(),
			SettledCount:  g.SettledCount(),
			Records:       g.Records,
		}
	}

	slog.Debug("ListTransactions successful", "participant_id", req.Msg.ParticipantID, "count", len(out))

	return connect.NewResponse(&api.ListTransactionsResponse{Groups: out}), nil
}

// GetBalances returns every participant's unsettled net.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	state := s.book.State()
	balances := calculator.NetBalances(state.Participants, state.Expenses, calculator.Filter{ParticipantID: req.Msg.ParticipantID})

	out := make([]api.Balance, len(balances))
	for i, b := range balances {
		out[i] = api.Balance{
			ParticipantID: b.ParticipantID,
			Name:          b.Name,
			Total:         b.Total,
			Records:       b.Records,
			Orphaned:      b.Orphaned,
		}
	}

	return connect.NewResponse(&api.GetBalancesResponse{Balances: out}), nil
}

// CalculateSplit previews a split of the selected items without
// recording it.
func (s *LedgerService) CalculateSplit(ctx context.Context, req *connect.Request[api.CalculateSplitRequest]) (*connect.Response[api.CalculateSplitResponse], error) {
	slog.Info("CalculateSplit request received",
		"items", len(req.Msg.Quantities),
		"participants", len(req.Msg.ParticipantIDs),
	)

	split, err := calculator.CalculateSplit(s.book.State().Items, req.Msg.Quantities, req.Msg.ParticipantIDs)
	if err != nil {
		slog.Warn("CalculateSplit failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	return connect.NewResponse(toSplitResponse(split)), nil
}

// CreateExpenseGroup splits the selected items among the participants and
// records one unsettled expense per participant under a new transaction.
func (s *LedgerService) CreateExpenseGroup(ctx context.Context, req *connect.Request[api.CreateExpenseGroupRequest]) (*connect.Response[api.CreateExpenseGroupResponse], error) {
	slog.Info("CreateExpenseGroup request received",
		"items", len(req.Msg.Quantities),
		"participants", len(req.Msg.ParticipantIDs),
	)

	current := s.book.State()
	for _, id := range req.Msg.ParticipantIDs {
		if _, ok := current.Participant(id); !ok {
			slog.Warn("CreateExpenseGroup failed", "participant_id", id)
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown participant %q", id))
		}
	}

	split, err := calculator.CalculateSplit(current.Items, req.Msg.Quantities, req.Msg.ParticipantIDs)
	if err != nil {
		slog.Warn("CreateExpenseGroup failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	date := req.Msg.Date
	if date == "" {
		date = s.now().Format(DateLayout)
	}
	txID := s.ids.NewID()

	records, err := calculator.NewExpenseGroup(split, current.Participants, txID, date)
	if err != nil {
		slog.Warn("CreateExpenseGroup failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	state, changed := s.book.Apply(ctx, ledger.AddExpenseGroup{Records: records})
	if !changed {
		slog.Error("CreateExpenseGroup rejected by ledger", "transaction_id", txID)
		return nil, connect.NewError(connect.CodeInternal, errors.New("expense group was not recorded"))
	}

	slog.Info("Expense group created",
		"transaction_id", txID,
		"records", len(records),
		"cost_per_person", split.CostPerPerson,
	)

	return connect.NewResponse(&api.CreateExpenseGroupResponse{
		TransactionID: txID,
		Records:       records,
		State:         state,
	}), nil
}

// ShareReport renders a shareable text report of one transaction, or of
// the whole ledger when no transaction is named.
func (s *LedgerService) ShareReport(ctx context.Context, req *connect.Request[api.ShareReportRequest]) (*connect.Response[api.ShareReportResponse], error) {
	state := s.book.State()
	filter := calculator.Filter{ParticipantID: req.Msg.ParticipantID}

	if req.Msg.TransactionID == "" {
		return connect.NewResponse(&api.ShareReportResponse{Text: s.reporter.Full(state, filter)}), nil
	}

	group, ok := findGroup(state.Expenses, req.Msg.TransactionID)
	if !ok {
		slog.Warn("ShareReport failed", "transaction_id", req.Msg.TransactionID)
		return nil, connect.NewError(connect.CodeNotFound, errors.New("transaction not found"))
	}
	return connect.NewResponse(&api.ShareReportResponse{Text: s.reporter.Group(group)}), nil
}

func findGroup(expenses []models.ExpenseRecord, transactionID string) (calculator.TransactionGroup, bool) {
	for _, g := range calculator.GroupByTransaction(expenses, calculator.Filter{}) {
		if g.TransactionID == transactionID {
			return g, true
		}
	}
	return calculator.TransactionGroup{}, false
}

func toSplitResponse(split *calculator.Split) *api.CalculateSplitResponse {
	lines := make([]api.SplitLine, len(split.Lines))
	for i, l := range split.Lines {
		lines[i] = api.SplitLine{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal,
		}
	}
	return &api.CalculateSplitResponse{
		Lines:         lines,
		TotalCost:     split.TotalCost,
		CostPerPerson: split.CostPerPerson,
		Description:   split.Description,
	}
}
