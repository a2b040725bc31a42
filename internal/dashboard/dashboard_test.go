package dashboard

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/mmynk/shuttlecash/internal/models"
)

type fakeRoster []*models.Player

func (f fakeRoster) ListPlayers(context.Context) ([]*models.Player, error) { return f, nil }

type fakeUsage struct {
	sessions []models.UsageSession
	asked    models.DateRange
}

func (f *fakeUsage) ListUsageInRange(_ context.Context, r models.DateRange) ([]models.UsageSession, error) {
	f.asked = r
	var out []models.UsageSession
	for _, s := range f.sessions {
		if r.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeBook struct {
	income, expenses []models.FinanceEntry
}

func filter(entries []models.FinanceEntry, r models.DateRange) []models.FinanceEntry {
	out := []models.FinanceEntry{}
	for _, e := range entries {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeBook) Income(_ context.Context, r models.DateRange) ([]models.FinanceEntry, error) {
	return filter(f.income, r), nil
}

func (f *fakeBook) Expenses(_ context.Context, r models.DateRange) ([]models.FinanceEntry, error) {
	return filter(f.expenses, r), nil
}

func (f *fakeBook) Totals(ctx context.Context, r models.DateRange) (models.CashTotals, error) {
	var t models.CashTotals
	for _, e := range filter(f.income, r) {
		t.Income += e.Amount
		t.IncomeCount++
	}
	for _, e := range filter(f.expenses, r) {
		t.Expenses += e.Amount
		t.ExpenseCount++
	}
	return t, nil
}

type fixedPricing models.PricingConfig

func (p fixedPricing) Get(context.Context) (models.PricingConfig, error) {
	return models.PricingConfig(p), nil
}

func TestWeek(t *testing.T) {
	tests := []struct {
		date string
		want models.DateRange
	}{
		{"2024-05-01", models.DateRange{From: "2024-04-25", To: "2024-05-01"}},
		{"2024-03-03", models.DateRange{From: "2024-02-26", To: "2024-03-03"}},
		{"2025-01-02", models.DateRange{From: "2024-12-27", To: "2025-01-02"}},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := Week(tt.date)
			if err != nil {
				t.Fatalf("Week failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Week(%s) = %+v, want %+v", tt.date, got, tt.want)
			}
		})
	}

	if _, err := Week("2024-13-01"); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("invalid month error = %v, want ErrInvalidInput", err)
	}
}

func TestTopPlayers(t *testing.T) {
	players := []*models.Player{
		{ID: "a", Name: "Alice"},
		{ID: "b", Name: "Bob"},
		{ID: "c", Name: "Carol"},
	}
	sessions := []models.UsageSession{
		{Date: "2024-05-01", PlayerIDs: []string{"c", "b"}, Quantity: 2},
		{Date: "2024-05-01", PlayerIDs: []string{"a", "b", "c"}, Quantity: 3},
		{Date: "2024-05-02", PlayerIDs: []string{"gone", "a"}, Quantity: 4},
	}

	got := topPlayers(players, sessions)
	want := []struct {
		id, name string
		qty      *big.Rat
	}{
		{"a", "Alice", big.NewRat(3, 1)},
		{"b", "Bob", big.NewRat(2, 1)},
		{"c", "Carol", big.NewRat(2, 1)},
		{"gone", "gone", big.NewRat(2, 1)},
	}
	if len(got) != len(want) {
		t.Fatalf("topPlayers returned %d players, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].PlayerID != w.id || got[i].Name != w.name || got[i].Quantity.Cmp(w.qty) != 0 {
			t.Errorf("rank %d = %s %s %s, want %s %s %s", i,
				got[i].PlayerID, got[i].Name, got[i].Quantity.RatString(), w.id, w.name, w.qty.RatString())
		}
	}
}

func TestTopPlayers_Limit(t *testing.T) {
	var sessions []models.UsageSession
	for _, pair := range [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}, {"7", "8"}} {
		sessions = append(sessions, models.UsageSession{Date: "2024-05-01", PlayerIDs: pair, Quantity: 2})
	}
	if got := topPlayers(nil, sessions); len(got) != topPlayersLimit {
		t.Errorf("topPlayers returned %d players, want %d", len(got), topPlayersLimit)
	}
}

func TestSummary_DefaultsToToday(t *testing.T) {
	usage := &fakeUsage{sessions: []models.UsageSession{
		{Date: "2024-05-01", PlayerIDs: []string{"a", "b"}, Quantity: 4, CreatedAt: 10},
		{Date: "2024-04-24", PlayerIDs: []string{"a", "b"}, Quantity: 8, CreatedAt: 5},
	}}
	book := &fakeBook{
		income:   []models.FinanceEntry{{Kind: models.KindIncome, Date: "2024-05-01", Description: "Fee", Amount: 100000, CreatedAt: 20}},
		expenses: []models.FinanceEntry{{Kind: models.KindExpense, Date: "2024-04-30", Description: "Net", Amount: 150000, CreatedAt: 15}},
	}
	roster := fakeRoster{{ID: "a", Name: "Alice", IsMember: true}, {ID: "b", Name: "Bob"}}

	svc := NewService(roster, usage, book, fixedPricing{ShuttlecockUnitPrice: 10000})
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 21, 0, 0, 0, time.UTC) }

	got, err := svc.Summary(context.Background(), "")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if usage.asked != (models.DateRange{From: "2024-04-25", To: "2024-05-01"}) {
		t.Errorf("usage range = %+v", usage.asked)
	}
	if got.Usage != (models.UsageTotals{Today: 4, TodaySessions: 1, Week: 4, WeekSessions: 1}) {
		t.Errorf("usage = %+v", got.Usage)
	}
	if got.Finance.Balance() != -50000 {
		t.Errorf("balance = %d, want -50000", got.Finance.Balance())
	}
	if got.Members != (models.MemberCounts{Total: 2, Members: 1, NonMembers: 1}) {
		t.Errorf("members = %+v", got.Members)
	}

	kinds := make([]string, len(got.RecentActivity))
	for i, a := range got.RecentActivity {
		kinds[i] = a.Kind
	}
	if len(kinds) != 3 || kinds[0] != "income" || kinds[1] != "usage" || kinds[2] != "expense" {
		t.Errorf("activity kinds = %v, want [income usage expense]", kinds)
	}
	if got.Pricing.ShuttlecockUnitPrice != 10000 {
		t.Errorf("pricing = %+v", got.Pricing)
	}
}
