package api

import "github.com/shopspring/decimal"

type MemberStatistics struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	NonMembers int `json:"nonMembers"`
}

type UsageStatistics struct {
	Today         int64 `json:"today"`
	Week          int64 `json:"week"`
	TodaySessions int   `json:"todaySessions"`
	WeekSessions  int   `json:"weekSessions"`
}

type FinanceStatistics struct {
	WeekIncome        int64 `json:"weekIncome"`
	WeekExpenses      int64 `json:"weekExpenses"`
	Balance           int64 `json:"balance"`
	WeekIncomeCount   int   `json:"weekIncomeCount"`
	WeekExpensesCount int   `json:"weekExpensesCount"`
}

type Statistics struct {
	Members MemberStatistics  `json:"members"`
	Usage   UsageStatistics   `json:"usage"`
	Finance FinanceStatistics `json:"finance"`
}

// Activity is a recent cash book entry or usage session. Type is "income",
// "expense" or "usage"; Amount is shuttlecocks for usage.
type Activity struct {
	Type        string `json:"type"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	CreatedAt   int64  `json:"createdAt"`
}

type TopPlayer struct {
	MemberID   string          `json:"memberId"`
	Name       string          `json:"name"`
	TotalUsage decimal.Decimal `json:"totalUsage"`
}

// DashboardSummary covers the week from WeekStart to Date inclusive.
type DashboardSummary struct {
	Date             string       `json:"date"`
	WeekStart        string       `json:"weekStart"`
	Statistics       Statistics   `json:"statistics"`
	RecentActivities []*Activity  `json:"recentActivities"`
	TopPlayers       []*TopPlayer `json:"topPlayers"`
	Settings         *Pricing     `json:"settings"`
}

// GetSummaryRequest names the last day of the week; empty means today.
type GetSummaryRequest struct {
	Date string `json:"date,omitempty"`
}

type GetSummaryResponse struct {
	Summary *DashboardSummary `json:"summary"`
}
