package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/pkg/api"
)

// FinanceServiceName is the fully-qualified name of the FinanceService service.
const FinanceServiceName = "shuttlecash.v1.FinanceService"

const (
	// FinanceServiceListSettlementsProcedure is the path of FinanceService.ListSettlements.
	FinanceServiceListSettlementsProcedure = "/shuttlecash.v1.FinanceService/ListSettlements"
	// FinanceServicePayProcedure is the path of FinanceService.Pay.
	FinanceServicePayProcedure = "/shuttlecash.v1.FinanceService/Pay"
	// FinanceServiceCreateIncomeProcedure is the path of FinanceService.CreateIncome.
	FinanceServiceCreateIncomeProcedure = "/shuttlecash.v1.FinanceService/CreateIncome"
	// FinanceServiceDeleteIncomeProcedure is the path of FinanceService.DeleteIncome.
	FinanceServiceDeleteIncomeProcedure = "/shuttlecash.v1.FinanceService/DeleteIncome"
	// FinanceServiceListIncomeProcedure is the path of FinanceService.ListIncome.
	FinanceServiceListIncomeProcedure = "/shuttlecash.v1.FinanceService/ListIncome"
	// FinanceServiceCreateExpenseProcedure is the path of FinanceService.CreateExpense.
	FinanceServiceCreateExpenseProcedure = "/shuttlecash.v1.FinanceService/CreateExpense"
	// FinanceServiceDeleteExpenseProcedure is the path of FinanceService.DeleteExpense.
	FinanceServiceDeleteExpenseProcedure = "/shuttlecash.v1.FinanceService/DeleteExpense"
	// FinanceServiceListExpensesProcedure is the path of FinanceService.ListExpenses.
	FinanceServiceListExpensesProcedure = "/shuttlecash.v1.FinanceService/ListExpenses"
	// FinanceServiceCollectMembershipFeeProcedure is the path of FinanceService.CollectMembershipFee.
	FinanceServiceCollectMembershipFeeProcedure = "/shuttlecash.v1.FinanceService/CollectMembershipFee"
)

// FinanceServiceClient is a client for the shuttlecash.v1.FinanceService service.
type FinanceServiceClient interface {
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	Pay(context.Context, *connect.Request[api.PayRequest]) (*connect.Response[api.PayResponse], error)
	CreateIncome(context.Context, *connect.Request[api.CreateIncomeRequest]) (*connect.Response[api.CreateIncomeResponse], error)
	DeleteIncome(context.Context, *connect.Request[api.DeleteIncomeRequest]) (*connect.Response[api.DeleteIncomeResponse], error)
	ListIncome(context.Context, *connect.Request[api.ListIncomeRequest]) (*connect.Response[api.ListIncomeResponse], error)
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	CollectMembershipFee(context.Context, *connect.Request[api.CollectMembershipFeeRequest]) (*connect.Response[api.CollectMembershipFeeResponse], error)
}

// NewFinanceServiceClient constructs a client for the shuttlecash.v1.FinanceService service.
func NewFinanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FinanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &financeServiceClient{
		listSettlements: connect.NewClient[api.ListSettlementsRequest, api.ListSettlementsResponse](
			httpClient, baseURL+FinanceServiceListSettlementsProcedure, opts...,
		),
		pay: connect.NewClient[api.PayRequest, api.PayResponse](
			httpClient, baseURL+FinanceServicePayProcedure, opts...,
		),
		createIncome: connect.NewClient[api.CreateIncomeRequest, api.CreateIncomeResponse](
			httpClient, baseURL+FinanceServiceCreateIncomeProcedure, opts...,
		),
		deleteIncome: connect.NewClient[api.DeleteIncomeRequest, api.DeleteIncomeResponse](
			httpClient, baseURL+FinanceServiceDeleteIncomeProcedure, opts...,
		),
		listIncome: connect.NewClient[api.ListIncomeRequest, api.ListIncomeResponse](
			httpClient, baseURL+FinanceServiceListIncomeProcedure, opts...,
		),
		createExpense: connect.NewClient[api.CreateExpenseRequest, api.CreateExpenseResponse](
			httpClient, baseURL+FinanceServiceCreateExpenseProcedure, opts...,
		),
		deleteExpense: connect.NewClient[api.DeleteExpenseRequest, api.DeleteExpenseResponse](
			httpClient, baseURL+FinanceServiceDeleteExpenseProcedure, opts...,
		),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient, baseURL+FinanceServiceListExpensesProcedure, opts...,
		),
		collectMembershipFee: connect.NewClient[api.CollectMembershipFeeRequest, api.CollectMembershipFeeResponse](
			httpClient, baseURL+FinanceServiceCollectMembershipFeeProcedure, opts...,
		),
	}
}

type financeServiceClient struct {
	listSettlements      *connect.Client[api.ListSettlementsRequest, api.ListSettlementsResponse]
	pay                  *connect.Client[api.PayRequest, api.PayResponse]
	createIncome         *connect.Client[api.CreateIncomeRequest, api.CreateIncomeResponse]
	deleteIncome         *connect.Client[api.DeleteIncomeRequest, api.DeleteIncomeResponse]
	listIncome           *connect.Client[api.ListIncomeRequest, api.ListIncomeResponse]
	createExpense        *connect.Client[api.CreateExpenseRequest, api.CreateExpenseResponse]
	deleteExpense        *connect.Client[api.DeleteExpenseRequest, api.DeleteExpenseResponse]
	listExpenses         *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	collectMembershipFee *connect.Client[api.CollectMembershipFeeRequest, api.CollectMembershipFeeResponse]
}

func (c *financeServiceClient) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

func (c *financeServiceClient) Pay(ctx context.Context, req *connect.Request[api.PayRequest]) (*connect.Response[api.PayResponse], error) {
	return c.pay.CallUnary(ctx, req)
}

func (c *financeServiceClient) CreateIncome(ctx context.Context, req *connect.Request[api.CreateIncomeRequest]) (*connect.Response[api.CreateIncomeResponse], error) {
	return c.createIncome.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeleteIncome(ctx context.Context, req *connect.Request[api.DeleteIncomeRequest]) (*connect.Response[api.DeleteIncomeResponse], error) {
	return c.deleteIncome.CallUnary(ctx, req)
}

func (c *financeServiceClient) ListIncome(ctx context.Context, req *connect.Request[api.ListIncomeRequest]) (*connect.Response[api.ListIncomeResponse], error) {
	return c.listIncome.CallUnary(ctx, req)
}

func (c *financeServiceClient) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *financeServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *financeServiceClient) CollectMembershipFee(ctx context.Context, req *connect.Request[api.CollectMembershipFeeRequest]) (*connect.Response[api.CollectMembershipFeeResponse], error) {
	return c.collectMembershipFee.CallUnary(ctx, req)
}

// FinanceServiceHandler is implemented by the shuttlecash.v1.FinanceService server.
type FinanceServiceHandler interface {
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	Pay(context.Context, *connect.Request[api.PayRequest]) (*connect.Response[api.PayResponse], error)
	CreateIncome(context.Context, *connect.Request[api.CreateIncomeRequest]) (*connect.Response[api.CreateIncomeResponse], error)
	DeleteIncome(context.Context, *connect.Request[api.DeleteIncomeRequest]) (*connect.Response[api.DeleteIncomeResponse], error)
	ListIncome(context.Context, *connect.Request[api.ListIncomeRequest]) (*connect.Response[api.ListIncomeResponse], error)
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	CollectMembershipFee(context.Context, *connect.Request[api.CollectMembershipFeeRequest]) (*connect.Response[api.CollectMembershipFeeResponse], error)
}

// NewFinanceServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewFinanceServiceHandler(svc FinanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withHandlerCodec(opts)
	return "/" + FinanceServiceName + "/", route(map[string]http.Handler{
		FinanceServiceListSettlementsProcedure:      connect.NewUnaryHandler(FinanceServiceListSettlementsProcedure, svc.ListSettlements, opts...),
		FinanceServicePayProcedure:                  connect.NewUnaryHandler(FinanceServicePayProcedure, svc.Pay, opts...),
		FinanceServiceCreateIncomeProcedure:         connect.NewUnaryHandler(FinanceServiceCreateIncomeProcedure, svc.CreateIncome, opts...),
		FinanceServiceDeleteIncomeProcedure:         connect.NewUnaryHandler(FinanceServiceDeleteIncomeProcedure, svc.DeleteIncome, opts...),
		FinanceServiceListIncomeProcedure:           connect.NewUnaryHandler(FinanceServiceListIncomeProcedure, svc.ListIncome, opts...),
		FinanceServiceCreateExpenseProcedure:        connect.NewUnaryHandler(FinanceServiceCreateExpenseProcedure, svc.CreateExpense, opts...),
		FinanceServiceDeleteExpenseProcedure:        connect.NewUnaryHandler(FinanceServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...),
		FinanceServiceListExpensesProcedure:         connect.NewUnaryHandler(FinanceServiceListExpensesProcedure, svc.ListExpenses, opts...),
		FinanceServiceCollectMembershipFeeProcedure: connect.NewUnaryHandler(FinanceServiceCollectMembershipFeeProcedure, svc.CollectMembershipFee, opts...),
	})
}
