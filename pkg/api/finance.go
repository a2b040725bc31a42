package api

import "github.com/shopspring/decimal"

// Settlement is one player's bill and payment state for a date.
type Settlement struct {
	Date     string `json:"date"`
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	IsMember bool   `json:"isMember"`

	// ShuttlecockCount is the attributed share rounded to two decimals for display.
	ShuttlecockCount decimal.Decimal `json:"shuttlecockCount"`
	// ShuttlecockShare is the exact share as a fraction, e.g. "4/3".
	ShuttlecockShare string `json:"shuttlecockShare"`

	ShuttlecockCost int64  `json:"shuttlecockCost"`
	CourtFee        int64  `json:"courtFee"`
	TotalBill       int64  `json:"totalBill"`
	PaidAmount      int64  `json:"paidAmount"`
	Status          string `json:"status"`
	Overpayment     int64  `json:"overpayment"`
	Outstanding     int64  `json:"outstanding"`
}

type ListSettlementsRequest struct {
	Date string `json:"date"`
}

type ListSettlementsResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

type PayRequest struct {
	Date     string `json:"date"`
	MemberID string `json:"memberId"`
	Amount   int64  `json:"amount"`
}

type PayResponse struct {
	Settlement *Settlement `json:"settlement"`
}

// FinanceEntry is one line of the cash book. Entries with source
// "settlement" mirror ledger payments and cannot be deleted.
type FinanceEntry struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Source      string `json:"source"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	MemberID    string `json:"memberId,omitempty"`
	Period      string `json:"period,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

type CreateIncomeRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type CreateIncomeResponse struct {
	Entry *FinanceEntry `json:"entry"`
}

type DeleteIncomeRequest struct {
	ID string `json:"id"`
}

type DeleteIncomeResponse struct{}

// ListIncomeRequest selects an inclusive date range; empty bounds are open.
type ListIncomeRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type ListIncomeResponse struct {
	Entries []*FinanceEntry `json:"entries"`
	Total   int64           `json:"total"`
}

type CreateExpenseRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type CreateExpenseResponse struct {
	Entry *FinanceEntry `json:"entry"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

type ListExpensesRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type ListExpensesResponse struct {
	Entries []*FinanceEntry `json:"entries"`
	Total   int64           `json:"total"`
}

// CollectMembershipFeeRequest books the monthly fee for the month of Date.
type CollectMembershipFeeRequest struct {
	MemberID string `json:"memberId"`
	Date     string `json:"date"`
}

type CollectMembershipFeeResponse struct {
	Entry *FinanceEntry `json:"entry"`
}
