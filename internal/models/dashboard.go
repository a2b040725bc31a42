package models

import "math/big"

// MemberCounts splits the roster by membership.
type MemberCounts struct {
	Total      int
	Members    int
	NonMembers int
}

// UsageTotals counts shuttlecocks used on a day and over the week ending on it.
type UsageTotals struct {
	Today         int64
	TodaySessions int
	Week          int64
	WeekSessions  int
}

// Activity is one recent event shown on the dashboard.
type Activity struct {
	// Kind is "income", "expense" or "usage".
	Kind        string
	Date        string
	Description string

	// Amount is Rupiah for income and expenses and shuttlecocks for usage.
	Amount    int64
	CreatedAt int64
}

// PlayerTotal is a player's attributed shuttlecock usage over a period.
type PlayerTotal struct {
	PlayerID string
	Name     string
	Quantity *big.Rat
}

// DashboardSummary is the club overview for the week ending on Date.
type DashboardSummary struct {
	Date      string
	WeekStart string

	Members MemberCounts
	Usage   UsageTotals
	Finance CashTotals

	// RecentActivity is newest first.
	RecentActivity []Activity

	// TopPlayers is ordered by usage, highest first.
	TopPlayers []PlayerTotal

	Pricing PricingConfig
}
