package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/internal/finance"
	"github.com/mmynk/shuttlecash/internal/middleware"
	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/pkg/api"
)

// Settlements computes daily settlements and applies payments.
type Settlements interface {
	ListSettlements(ctx context.Context, date string) ([]models.Settlement, error)
	Pay(ctx context.Context, date, memberID string, amount int64) (models.Settlement, error)
}

// CashBook keeps income and expense entries.
type CashBook interface {
	AddIncome(ctx context.Context, date, description string, amount int64) (*models.FinanceEntry, error)
	AddExpense(ctx context.Context, date, description string, amount int64) (*models.FinanceEntry, error)
	Delete(ctx context.Context, kind models.EntryKind, id string) error
	Income(ctx context.Context, r models.DateRange) ([]models.FinanceEntry, error)
	Expenses(ctx context.Context, r models.DateRange) ([]models.FinanceEntry, error)
	CollectMembershipFee(ctx context.Context, memberID, date string) (*models.FinanceEntry, error)
}

// FinanceService implements the Connect FinanceService: daily settlements
// and the club's cash book.
type FinanceService struct {
	settlements Settlements
	book        CashBook
}

// NewFinanceService creates a FinanceService.
func NewFinanceService(settlements Settlements, book CashBook) *FinanceService {
	return &FinanceService{settlements: settlements, book: book}
}

// ListSettlements returns every player's bill and payment state for a date.
func (s *FinanceService) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	list, err := s.settlements.ListSettlements(ctx, req.Msg.Date)
	if err != nil {
		slog.Error("ListSettlements failed", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Settlement, len(list))
	for i, st := range list {
		out[i] = toAPISettlement(st)
	}
	return connect.NewResponse(&api.ListSettlementsResponse{Settlements: out}), nil
}

// Pay records a payment and returns the player's refreshed settlement.
func (s *FinanceService) Pay(ctx context.Context, req *connect.Request[api.PayRequest]) (*connect.Response[api.PayResponse], error) {
	st, err := s.settlements.Pay(ctx, req.Msg.Date, req.Msg.MemberID, req.Msg.Amount)
	if err != nil {
		slog.Error("Pay failed",
			"date", req.Msg.Date,
			"member_id", req.Msg.MemberID,
			"recorded_by", middleware.GetUsername(ctx),
			"error", err,
		)
		return nil, toConnectError(err)
	}

	slog.Debug("Payment confirmed",
		"member_id", st.MemberID,
		"status", st.Status,
		"recorded_by", middleware.GetUsername(ctx),
	)
	return connect.NewResponse(&api.PayResponse{Settlement: toAPISettlement(st)}), nil
}

// CreateIncome books a manual income entry.
func (s *FinanceService) CreateIncome(ctx context.Context, req *connect.Request[api.CreateIncomeRequest]) (*connect.Response[api.CreateIncomeResponse], error) {
	entry, err := s.book.AddIncome(ctx, req.Msg.Date, req.Msg.Description, req.Msg.Amount)
	if err != nil {
		slog.Error("CreateIncome failed", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CreateIncomeResponse{Entry: toAPIFinanceEntry(entry)}), nil
}

// DeleteIncome removes a manual or membership income entry.
func (s *FinanceService) DeleteIncome(ctx context.Context, req *connect.Request[api.DeleteIncomeRequest]) (*connect.Response[api.DeleteIncomeResponse], error) {
	if err := s.book.Delete(ctx, models.KindIncome, req.Msg.ID); err != nil {
		slog.Error("DeleteIncome failed", "id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.DeleteIncomeResponse{}), nil
}

// ListIncome returns income entries, settlement payments included.
func (s *FinanceService) ListIncome(ctx context.Context, req *connect.Request[api.ListIncomeRequest]) (*connect.Response[api.ListIncomeResponse], error) {
	r, err := finance.ParseRange(req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, toConnectError(err)
	}
	entries, err := s.book.Income(ctx, r)
	if err != nil {
		slog.Error("ListIncome failed", "error", err)
		return nil, toConnectError(err)
	}

	out, total := toAPIFinanceEntries(entries)
	return connect.NewResponse(&api.ListIncomeResponse{Entries: out, Total: total}), nil
}

// CreateExpense books an expense.
func (s *FinanceService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	entry, err := s.book.AddExpense(ctx, req.Msg.Date, req.Msg.Description, req.Msg.Amount)
	if err != nil {
		slog.Error("CreateExpense failed", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CreateExpenseResponse{Entry: toAPIFinanceEntry(entry)}), nil
}

// DeleteExpense removes an expense.
func (s *FinanceService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	if err := s.book.Delete(ctx, models.KindExpense, req.Msg.ID); err != nil {
		slog.Error("DeleteExpense failed", "id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// ListExpenses returns expenses in the requested range.
func (s *FinanceService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	r, err := finance.ParseRange(req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, toConnectError(err)
	}
	entries, err := s.book.Expenses(ctx, r)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, toConnectError(err)
	}

	out, total := toAPIFinanceEntries(entries)
	return connect.NewResponse(&api.ListExpensesResponse{Entries: out, Total: total}), nil
}

// CollectMembershipFee books a member's monthly fee at the current price.
func (s *FinanceService) CollectMembershipFee(ctx context.Context, req *connect.Request[api.CollectMembershipFeeRequest]) (*connect.Response[api.CollectMembershipFeeResponse], error) {
	entry, err := s.book.CollectMembershipFee(ctx, req.Msg.MemberID, req.Msg.Date)
	if err != nil {
		slog.Error("CollectMembershipFee failed",
			"member_id", req.Msg.MemberID,
			"date", req.Msg.Date,
			"recorded_by", middleware.GetUsername(ctx),
			"error", err,
		)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CollectMembershipFeeResponse{Entry: toAPIFinanceEntry(entry)}), nil
}
