// Package apiconnect wires the ledger service into Connect handlers and
// clients using the JSON codec from package api.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/dongledger/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "dongledger.v1.LedgerService"

// Procedure paths of the LedgerService RPCs.
const (
	LedgerServiceGetStateProcedure           = "/dongledger.v1.LedgerService/GetState"
	LedgerServiceDispatchProcedure           = "/dongledger.v1.LedgerService/Dispatch"
	LedgerServiceReplaceStateProcedure       = "/dongledger.v1.LedgerService/ReplaceState"
	LedgerServiceListTransactionsProcedure   = "/dongledger.v1.LedgerService/ListTransactions"
	LedgerServiceGetBalancesProcedure        = "/dongledger.v1.LedgerService/GetBalances"
	LedgerServiceCalculateSplitProcedure     = "/dongledger.v1.LedgerService/CalculateSplit"
	LedgerServiceCreateExpenseGroupProcedure = "/dongledger.v1.LedgerService/CreateExpenseGroup"
	LedgerServiceShareReportProcedure        = "/dongledger.v1.LedgerService/ShareReport"
)

// LedgerServiceHandler is implemented by the ledger service.
type LedgerServiceHandler interface {
	GetState(context.Context, *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error)
	Dispatch(context.Context, *connect.Request[api.DispatchRequest]) (*connect.Response[api.DispatchResponse], error)
	ReplaceState(context.Context, *connect.Request[api.ReplaceStateRequest]) (*connect.Response[api.ReplaceStateResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	CalculateSplit(context.Context, *connect.Request[api.CalculateSplitRequest]) (*connect.Response[api.CalculateSplitResponse], error)
	CreateExpenseGroup(context.Context, *connect.Request[api.CreateExpenseGroupRequest]) (*connect.Response[api.CreateExpenseGroupResponse], error)
	ShareReport(context.Context, *connect.Request[api.ShareReportRequest]) (*connect.Response[api.ShareReportResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and
// the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)

	routes := map[string]http.Handler{
		LedgerServiceGetStateProcedure:           connect.NewUnaryHandler(LedgerServiceGetStateProcedure, svc.GetState, opts...),
		LedgerServiceDispatchProcedure:           connect.NewUnaryHandler(LedgerServiceDispatchProcedure, svc.Dispatch, opts...),
		LedgerServiceReplaceStateProcedure:       connect.NewUnaryHandler(LedgerServiceReplaceStateProcedure, svc.ReplaceState, opts...),
		LedgerServiceListTransactionsProcedure:   connect.NewUnaryHandler(LedgerServiceListTransactionsProcedure, svc.ListTransactions, opts...),
		LedgerServiceGetBalancesProcedure:        connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, svc.GetBalances, opts...),
		LedgerServiceCalculateSplitProcedure:     connect.NewUnaryHandler(LedgerServiceCalculateSplitProcedure, svc.CalculateSplit, opts...),
		LedgerServiceCreateExpenseGroupProcedure: connect.NewUnaryHandler(LedgerServiceCreateExpenseGroupProcedure, svc.CreateExpenseGroup, opts...),
		LedgerServiceShareReportProcedure:        connect.NewUnaryHandler(LedgerServiceShareReportProcedure, svc.ShareReport, opts...),
	}

	return "/" + LedgerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// LedgerServiceClient is a client for the LedgerService service.
type LedgerServiceClient interface {
	GetState(context.Context, *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error)
	Dispatch(context.Context, *connect.Request[api.DispatchRequest]) (*connect.Response[api.DispatchResponse], error)
	ReplaceState(context.Context, *connect.Request[api.ReplaceStateRequest]) (*connect.Response[api.ReplaceStateResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	CalculateSplit(context.Context, *connect.Request[api.CalculateSplitRequest]) (*connect.Response[api.CalculateSplitResponse], error)
	CreateExpenseGroup(context.Context, *connect.Request[api.CreateExpenseGroupRequest]) (*connect.Response[api.CreateExpenseGroupResponse], error)
	ShareReport(context.Context, *connect.Request[api.ShareReportRequest]) (*connect.Response[api.ShareReportResponse], error)
}

// NewLedgerServiceClient constructs a client for the LedgerService
// service at baseURL (e.g. http://localhost:8080).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &ledgerServiceClient{
		getState:           connect.NewClient[api.GetStateRequest, api.GetStateResponse](httpClient, baseURL+LedgerServiceGetStateProcedure, opts...),
		dispatch:           connect.NewClient[api.DispatchRequest, api.DispatchResponse](httpClient, baseURL+LedgerServiceDispatchProcedure, opts...),
		replaceState:       connect.NewClient[api.ReplaceStateRequest, api.ReplaceStateResponse](httpClient, baseURL+LedgerServiceReplaceStateProcedure, opts...),
		listTransactions:   connect.NewClient[api.ListTransactionsRequest, api.ListTransactionsResponse](httpClient, baseURL+LedgerServiceListTransactionsProcedure, opts...),
		getBalances:        connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
		calculateSplit:     connect.NewClient[api.CalculateSplitRequest, api.CalculateSplitResponse](httpClient, baseURL+LedgerServiceCalculateSplitProcedure, opts...),
		createExpenseGroup: connect.NewClient[api.CreateExpenseGroupRequest, api.CreateExpenseGroupResponse](httpClient, baseURL+LedgerServiceCreateExpenseGroupProcedure, opts...),
		shareReport:        connect.NewClient[api.ShareReportRequest, api.ShareReportResponse](httpClient, baseURL+LedgerServiceShareReportProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	getState           *connect.Client[api.GetStateRequest, api.GetStateResponse]
	dispatch           *connect.Client[api.DispatchRequest, api.DispatchResponse]
	replaceState       *connect.Client[api.ReplaceStateRequest, api.ReplaceStateResponse]
	listTransactions   *connect.Client[api.ListTransactionsRequest, api.ListTransactionsResponse]
	getBalances        *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
	calculateSplit     *connect.Client[api.CalculateSplitRequest, api.CalculateSplitResponse]
	createExpenseGroup *connect.Client[api.CreateExpenseGroupRequest, api.CreateExpenseGroupResponse]
	shareReport        *connect.Client[api.ShareReportRequest, api.ShareReportResponse]
}

func (c *ledgerServiceClient) GetState(ctx context.Context, req *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error) {
	return c.getState.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) Dispatch(ctx context.Context, req *connect.Request[api.DispatchRequest]) (*connect.Response[api.DispatchResponse], error) {
	return c.dispatch.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ReplaceState(ctx context.Context, req *connect.Request[api.ReplaceStateRequest]) (*connect.Response[api.ReplaceStateResponse], error) {
	return c.replaceState.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CalculateSplit(ctx context.Context, req *connect.Request[api.CalculateSplitRequest]) (*connect.Response[api.CalculateSplitResponse], error) {
	return c.calculateSplit.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateExpenseGroup(ctx context.Context, req *connect.Request[api.CreateExpenseGroupRequest]) (*connect.Response[api.CreateExpenseGroupResponse], error) {
	return c.createExpenseGroup.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ShareReport(ctx context.Context, req *connect.Request[api.ShareReportRequest]) (*connect.Response[api.ShareReportResponse], error) {
	return c.shareReport.CallUnary(ctx, req)
}
