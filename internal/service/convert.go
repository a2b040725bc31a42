package service

import (
	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/pkg/api"
)

func toAPISettlement(s models.Settlement) *api.Settlement {
	share := "0"
	if s.ShuttlecockCount != nil {
		share = s.ShuttlecockCount.RatString()
	}
	return &api.Settlement{
		Date:             s.Date,
		MemberID:         s.MemberID,
		Name:             s.Name,
		IsMember:         s.IsMember,
		ShuttlecockCount: models.QuantityDecimal(s.ShuttlecockCount),
		ShuttlecockShare: share,
		ShuttlecockCost:  s.ShuttlecockCost,
		CourtFee:         s.CourtFee,
		TotalBill:        s.TotalBill,
		PaidAmount:       s.PaidAmount,
		Status:           string(s.Status),
		Overpayment:      s.Overpayment,
		Outstanding:      s.Outstanding,
	}
}

func toAPIPricing(p models.PricingConfig) *api.Pricing {
	return &api.Pricing{
		ShuttlecockPrice:     p.ShuttlecockUnitPrice,
		CourtPriceNonMember:  p.NonMemberCourtFee,
		MembershipFeeMonthly: p.MembershipFeeMonthly,
		UpdatedAt:            p.UpdatedAt,
	}
}

func toAPIMember(p *models.Player) *api.Member {
	return &api.Member{
		ID:        p.ID,
		Name:      p.Name,
		IsMember:  p.IsMember,
		Grade:     p.Grade,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toAPIUsage(u *models.UsageSession) *api.UsageSession {
	return &api.UsageSession{
		ID:          u.ID,
		Date:        u.Date,
		PlayerIDs:   u.PlayerIDs,
		Quantity:    u.Quantity,
		MatchNumber: u.MatchNumber,
		CreatedAt:   u.CreatedAt,
	}
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func toAPIFinanceEntry(e *models.FinanceEntry) *api.FinanceEntry {
	return &api.FinanceEntry{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Source:      string(e.Source),
		Date:        e.Date,
		Description: e.Description,
		Amount:      e.Amount,
		MemberID:    e.MemberID,
		Period:      e.Period,
		CreatedAt:   e.CreatedAt,
	}
}

// toAPIFinanceEntries converts entries and sums their amounts.
func toAPIFinanceEntries(entries []models.FinanceEntry) ([]*api.FinanceEntry, int64) {
	out := make([]*api.FinanceEntry, len(entries))
	var total int64
	for i := range entries {
		out[i] = toAPIFinanceEntry(&entries[i])
		total += entries[i].Amount
	}
	return out, total
}

func toAPIDashboard(d *models.DashboardSummary) *api.DashboardSummary {
	out := &api.DashboardSummary{
		Date:      d.Date,
		WeekStart: d.WeekStart,
		Statistics: api.Statistics{
			Members: api.MemberStatistics{
				Total:      d.Members.Total,
				Active:     d.Members.Members,
				NonMembers: d.Members.NonMembers,
			},
			Usage: api.UsageStatistics{
				Today:         d.Usage.Today,
				Week:          d.Usage.Week,
				TodaySessions: d.Usage.TodaySessions,
				WeekSessions:  d.Usage.WeekSessions,
			},
			Finance: api.FinanceStatistics{
				WeekIncome:        d.Finance.Income,
				WeekExpenses:      d.Finance.Expenses,
				Balance:           d.Finance.Balance(),
				WeekIncomeCount:   d.Finance.IncomeCount,
				WeekExpensesCount: d.Finance.ExpenseCount,
			},
		},
		RecentActivities: make([]*api.Activity, len(d.RecentActivity)),
		TopPlayers:       make([]*api.TopPlayer, len(d.TopPlayers)),
		Settings:         toAPIPricing(d.Pricing),
	}
	for i, a := range d.RecentActivity {
		out.RecentActivities[i] = &api.Activity{
			Type:        a.Kind,
			Date:        a.Date,
			Description: a.Description,
			Amount:      a.Amount,
			CreatedAt:   a.CreatedAt,
		}
	}
	for i, p := range d.TopPlayers {
		out.TopPlayers[i] = &api.TopPlayer{
			MemberID:   p.PlayerID,
			Name:       p.Name,
			TotalUsage: models.QuantityDecimal(p.Quantity),
		}
	}
	return out
}
