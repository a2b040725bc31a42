// Package finance keeps the club's cash book: manual income and expenses,
// collected membership fees and the settlement payments from the ledger.
package finance

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/mmynk/shuttlecash/internal/metrics"
	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/storage"
)

// Roster resolves a player by ID.
type Roster interface {
	GetPlayer(ctx context.Context, playerID string) (*models.Player, error)
}

// PricingSource provides the live pricing.
type PricingSource interface {
	Get(ctx context.Context) (models.PricingConfig, error)
}

// Book is the cash book. Settlement payments are not copied into it; they
// are read from the payment ledger whenever income is listed, so a corrected
// payment is reflected immediately.
type Book struct {
	store   storage.FinanceStore
	roster  Roster
	pricing PricingSource
}

// NewBook creates a cash book.
func NewBook(store storage.FinanceStore, roster Roster, pricing PricingSource) *Book {
	return &Book{store: store, roster: roster, pricing: pricing}
}

// ParseRange validates optional YYYY-MM-DD bounds.
func ParseRange(from, to string) (models.DateRange, error) {
	var (
		r   models.DateRange
		err error
	)
	if from != "" {
		if r.From, err = models.ParseDate(from); err != nil {
			return models.DateRange{}, err
		}
	}
	if to != "" {
		if r.To, err = models.ParseDate(to); err != nil {
			return models.DateRange{}, err
		}
	}
	if r.From != "" && r.To != "" && r.From > r.To {
		return models.DateRange{}, fmt.Errorf("%w: range starts after it ends", models.ErrInvalidInput)
	}
	return r, nil
}

func newEntry(kind models.EntryKind, date, description string, amount int64) (*models.FinanceEntry, error) {
	date, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description required", models.ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrInvalidInput)
	}
	return &models.FinanceEntry{
		Kind:        kind,
		Source:      models.SourceManual,
		Date:        date,
		Description: description,
		Amount:      amount,
	}, nil
}

// AddIncome books money received outside of settlements.
func (b *Book) AddIncome(ctx context.Context, date, description string, amount int64) (*models.FinanceEntry, error) {
	return b.add(ctx, models.KindIncome, date, description, amount)
}

// AddExpense books money spent.
func (b *Book) AddExpense(ctx context.Context, date, description string, amount int64) (*models.FinanceEntry, error) {
	return b.add(ctx, models.KindExpense, date, description, amount)
}

func (b *Book) add(ctx context.Context, kind models.EntryKind, date, description string, amount int64) (*models.FinanceEntry, error) {
	entry, err := newEntry(kind, date, description, amount)
	if err != nil {
		return nil, err
	}
	if err := b.store.CreateFinanceEntry(ctx, entry); err != nil {
		return nil, err
	}

	metrics.FinanceEntries.WithLabelValues(string(kind), string(entry.Source)).Inc()
	slog.Info("Finance entry booked",
		"id", entry.ID,
		"kind", kind,
		"date", entry.Date,
		"amount", entry.Amount,
	)
	return entry, nil
}

// Delete removes a stored entry. Settlement income cannot be deleted here;
// its ID is unknown to the store, so it fails with models.ErrNotFound.
func (b *Book) Delete(ctx context.Context, kind models.EntryKind, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id required", models.ErrInvalidInput)
	}
	if err := b.store.DeleteFinanceEntry(ctx, kind, id); err != nil {
		return err
	}
	slog.Info("Finance entry deleted", "id", id, "kind", kind)
	return nil
}

// CollectMembershipFee books the monthly membership fee of a member for the
// month of date at the current price. Each member pays once per month; a
// second collection fails with models.ErrConflict.
func (b *Book) CollectMembershipFee(ctx context.Context, memberID, date string) (*models.FinanceEntry, error) {
	date, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}
	player, err := b.roster.GetPlayer(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !player.IsMember {
		return nil, fmt.Errorf("%w: %s is not a member", models.ErrInvalidInput, player.Name)
	}
	pricing, err := b.pricing.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing: %w", err)
	}
	if pricing.MembershipFeeMonthly <= 0 {
		return nil, fmt.Errorf("%w: no membership fee configured", models.ErrInvalidInput)
	}

	period := date[:len("2006-01")]
	entry := &models.FinanceEntry{
		Kind:        models.KindIncome,
		Source:      models.SourceMembership,
		Date:        date,
		Description: fmt.Sprintf("Membership fee %s: %s", period, player.Name),
		Amount:      pricing.MembershipFeeMonthly,
		MemberID:    player.ID,
		Period:      period,
	}
	if err := b.store.CreateFinanceEntry(ctx, entry); err != nil {
		return nil, err
	}

	metrics.FinanceEntries.WithLabelValues(string(entry.Kind), string(entry.Source)).Inc()
	slog.Info("Membership fee collected",
		"member_id", player.ID,
		"period", period,
		"amount", entry.Amount,
	)
	return entry, nil
}

// Income lists stored income and settlement payments in r, ordered by date
// and then creation time.
func (b *Book) Income(ctx context.Context, r models.DateRange) ([]models.FinanceEntry, error) {
	stored, err := b.store.ListFinanceEntries(ctx, models.KindIncome, r)
	if err != nil {
		return nil, err
	}
	payments, err := b.store.ListPaymentIncome(ctx, r)
	if err != nil {
		return nil, err
	}

	entries := append(stored, payments...)
	slices.SortStableFunc(entries, func(x, y models.FinanceEntry) int {
		return cmp.Or(cmp.Compare(x.Date, y.Date), cmp.Compare(x.CreatedAt, y.CreatedAt))
	})
	if entries == nil {
		entries = []models.FinanceEntry{}
	}
	return entries, nil
}

// Expenses lists expenses in r, ordered by date and then creation time.
func (b *Book) Expenses(ctx context.Context, r models.DateRange) ([]models.FinanceEntry, error) {
	entries, err := b.store.ListFinanceEntries(ctx, models.KindExpense, r)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.FinanceEntry{}
	}
	return entries, nil
}

// Totals sums income and expenses in r.
func (b *Book) Totals(ctx context.Context, r models.DateRange) (models.CashTotals, error) {
	income, err := b.Income(ctx, r)
	if err != nil {
		return models.CashTotals{}, err
	}
	expenses, err := b.Expenses(ctx, r)
	if err != nil {
		return models.CashTotals{}, err
	}

	var t models.CashTotals
	if t.Income, err = sum(income); err != nil {
		return models.CashTotals{}, err
	}
	if t.Expenses, err = sum(expenses); err != nil {
		return models.CashTotals{}, err
	}
	t.IncomeCount, t.ExpenseCount = len(income), len(expenses)
	return t, nil
}

func sum(entries []models.FinanceEntry) (int64, error) {
	var total int64
	for _, e := range entries {
		if total > math.MaxInt64-e.Amount {
			return 0, fmt.Errorf("%w: total exceeds %d", models.ErrInvalidInput, int64(math.MaxInt64))
		}
		total += e.Amount
	}
	return total, nil
}
