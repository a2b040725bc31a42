// Package dashboard builds the club overview: roster counts, shuttlecock
// usage, the week's cash totals, recent activity and the heaviest users.
package dashboard

import (
	"cmp"
	"context"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/mmynk/shuttlecash/internal/calculator"
	"github.com/mmynk/shuttlecash/internal/models"
)

const (
	// WeekDays is the length of the summary window, ending on the given date.
	WeekDays = 7

	recentLimit     = 10
	topPlayersLimit = 5
)

// Roster lists every player.
type Roster interface {
	ListPlayers(ctx context.Context) ([]*models.Player, error)
}

// UsageSource lists sessions over a date range.
type UsageSource interface {
	ListUsageInRange(ctx context.Context, r models.DateRange) ([]models.UsageSession, error)
}

// CashBook lists the cash book over a date range.
type CashBook interface {
	Income(ctx context.Context, r models.DateRange) ([]models.FinanceEntry, error)
	Expenses(ctx context.Context, r models.DateRange) ([]models.FinanceEntry, error)
	Totals(ctx context.Context, r models.DateRange) (models.CashTotals, error)
}

// PricingSource provides the live pricing.
type PricingSource interface {
	Get(ctx context.Context) (models.PricingConfig, error)
}

// Service computes dashboard summaries. Nothing is cached.
type Service struct {
	roster  Roster
	usage   UsageSource
	book    CashBook
	pricing PricingSource
	now     func() time.Time
}

// NewService wires the dashboard to its collaborators.
func NewService(roster Roster, usage UsageSource, book CashBook, pricing PricingSource) *Service {
	return &Service{
		roster:  roster,
		usage:   usage,
		book:    book,
		pricing: pricing,
		now:     time.Now,
	}
}

// Week returns the WeekDays-long range ending on date.
func Week(date string) (models.DateRange, error) {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", models.ErrInvalidInput, date)
	}
	return models.DateRange{
		From: t.AddDate(0, 0, -(WeekDays - 1)).Format(models.DateLayout),
		To:   t.Format(models.DateLayout),
	}, nil
}

// Summary returns the overview for the week ending on date. An empty date
// means today.
func (s *Service) Summary(ctx context.Context, date string) (*models.DashboardSummary, error) {
	if date == "" {
		date = s.now().Format(models.DateLayout)
	}
	week, err := Week(date)
	if err != nil {
		return nil, err
	}

	players, err := s.roster.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	sessions, err := s.usage.ListUsageInRange(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage: %w", err)
	}
	totals, err := s.book.Totals(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash totals: %w", err)
	}
	pricing, err := s.pricing.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing: %w", err)
	}

	summary := &models.DashboardSummary{
		Date:       week.To,
		WeekStart:  week.From,
		Members:    countMembers(players),
		Usage:      usageTotals(week.To, sessions),
		Finance:    totals,
		TopPlayers: topPlayers(players, sessions),
		Pricing:    pricing,
	}
	if summary.RecentActivity, err = s.recentActivity(ctx, week, sessions); err != nil {
		return nil, err
	}
	return summary, nil
}

func countMembers(players []*models.Player) models.MemberCounts {
	c := models.MemberCounts{Total: len(players)}
	for _, p := range players {
		if p.IsMember {
			c.Members++
		}
	}
	c.NonMembers = c.Total - c.Members
	return c
}

func usageTotals(today string, sessions []models.UsageSession) models.UsageTotals {
	var t models.UsageTotals
	for _, s := range sessions {
		t.Week += s.Quantity
		t.WeekSessions++
		if s.Date == today {
			t.Today += s.Quantity
			t.TodaySessions++
		}
	}
	return t
}

// topPlayers ranks players by attributed usage over the sessions, highest
// first and then by name. Players no longer on the roster are named by ID.
func topPlayers(players []*models.Player, sessions []models.UsageSession) []models.PlayerTotal {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	totals := make(map[string]*big.Rat)
	var order []string
	for _, s := range sessions {
		for _, u := range calculator.AggregateUsage(s.Date, []models.UsageSession{s}) {
			if q, ok := totals[u.PlayerID]; ok {
				q.Add(q, u.Quantity)
				continue
			}
			totals[u.PlayerID] = new(big.Rat).Set(u.Quantity)
			order = append(order, u.PlayerID)
		}
	}

	out := make([]models.PlayerTotal, 0, len(order))
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = id
		}
		out = append(out, models.PlayerTotal{PlayerID: id, Name: name, Quantity: totals[id]})
	}
	slices.SortStableFunc(out, func(x, y models.PlayerTotal) int {
		return cmp.Or(y.Quantity.Cmp(x.Quantity), cmp.Compare(x.Name, y.Name))
	})
	if len(out) > topPlayersLimit {
		out = out[:topPlayersLimit]
	}
	return out
}

// recentActivity merges the week's cash book and usage, newest first.
func (s *Service) recentActivity(ctx context.Context, week models.DateRange, sessions []models.UsageSession) ([]models.Activity, error) {
	income, err := s.book.Income(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load income: %w", err)
	}
	expenses, err := s.book.Expenses(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	activity := make([]models.Activity, 0, len(income)+len(expenses)+len(sessions))
	for _, entries := range [][]models.FinanceEntry{income, expenses} {
		for _, e := range entries {
			activity = append(activity, models.Activity{
				Kind:        string(e.Kind),
				Date:        e.Date,
				Description: e.Description,
				Amount:      e.Amount,
				CreatedAt:   e.CreatedAt,
			})
		}
	}
	for _, us := range sessions {
		activity = append(activity, models.Activity{
			Kind:        "usage",
			Date:        us.Date,
			Description: fmt.Sprintf("%d shuttlecocks, %d players", us.Quantity, len(us.PlayerIDs)),
			Amount:      us.Quantity,
			CreatedAt:   us.CreatedAt,
		})
	}

	slices.SortStableFunc(activity, func(x, y models.Activity) int {
		return cmp.Or(cmp.Compare(y.Date, x.Date), cmp.Compare(y.CreatedAt, x.CreatedAt))
	})
	if len(activity) > recentLimit {
		activity = activity[:recentLimit]
	}
	return activity, nil
}
