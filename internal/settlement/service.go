// Package settlement turns a day's shuttlecock usage into per-player bills
// and applies payments against them.
package settlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/shuttlecash/internal/calculator"
	"github.com/mmynk/shuttlecash/internal/metrics"
	"github.com/mmynk/shuttlecash/internal/models"
)

// UsageSource provides the usage sessions of a date in logging order.
type UsageSource interface {
	ListUsageByDate(ctx context.Context, date string) ([]models.UsageSession, error)
}

// Roster resolves players by ID. Unknown IDs are omitted from the result.
type Roster interface {
	GetPlayersByIDs(ctx context.Context, ids []string) (map[string]*models.Player, error)
}

// PricingSource provides the live pricing.
type PricingSource interface {
	Get(ctx context.Context) (models.PricingConfig, error)
}

// Payments is the payment ledger.
type Payments interface {
	RecordPayment(ctx context.Context, date, memberID string, amount, billAtPayment int64) (*models.PaymentRecord, error)
	Lookup(ctx context.Context, date, memberID string) (*models.PaymentRecord, error)
	ForDate(ctx context.Context, date string) (map[string]*models.PaymentRecord, error)
}

// Service computes settlements on demand. Nothing it returns is cached: every
// call reads the current usage, roster and pricing.
type Service struct {
	usage    UsageSource
	roster   Roster
	pricing  PricingSource
	payments Payments
}

// NewService wires the settlement service to its collaborators.
func NewService(usage UsageSource, roster Roster, pricing PricingSource, payments Payments) *Service {
	return &Service{
		usage:    usage,
		roster:   roster,
		pricing:  pricing,
		payments: payments,
	}
}

// dayBill is the billing state of one date before payments are merged.
type dayBill struct {
	date    string
	pricing models.PricingConfig
	usage   []calculator.PlayerUsage
	players map[string]*models.Player
}

func (s *Service) loadDay(ctx context.Context, date string) (*dayBill, error) {
	date, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}

	sessions, err := s.usage.ListUsageByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage: %w", err)
	}
	usage := calculator.AggregateUsage(date, sessions)

	day := &dayBill{date: date, usage: usage}
	if len(usage) == 0 {
		return day, nil
	}

	ids := make([]string, len(usage))
	for i, u := range usage {
		ids[i] = u.PlayerID
	}
	if day.players, err = s.roster.GetPlayersByIDs(ctx, ids); err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	if day.pricing, err = s.pricing.Get(ctx); err != nil {
		return nil, fmt.Errorf("failed to load pricing: %w", err)
	}
	return day, nil
}

// settle builds the settlement of one player from the day's bill and the
// ledger record, if any.
func (d *dayBill) settle(u calculator.PlayerUsage, record *models.PaymentRecord) (models.Settlement, error) {
	name, isMember := u.PlayerID, false
	if p, ok := d.players[u.PlayerID]; ok {
		name, isMember = p.Name, p.IsMember
	}

	bill, err := calculator.CalculateBill(u.Quantity, isMember, d.pricing)
	if err != nil {
		return models.Settlement{}, err
	}
	state := calculator.ResolvePayment(bill.TotalBill, record)

	return models.Settlement{
		Date:             d.date,
		MemberID:         u.PlayerID,
		Name:             name,
		IsMember:         isMember,
		ShuttlecockCount: u.Quantity,
		ShuttlecockCost:  bill.ShuttlecockCost,
		CourtFee:         bill.CourtFee,
		TotalBill:        bill.TotalBill,
		PaidAmount:       state.PaidAmount,
		Status:           state.Status,
		Overpayment:      state.Overpayment,
		Outstanding:      state.Outstanding,
	}, nil
}

func (d *dayBill) find(memberID string) (calculator.PlayerUsage, bool) {
	for _, u := range d.usage {
		if u.PlayerID == memberID {
			return u, true
		}
	}
	return calculator.PlayerUsage{}, false
}

// ListSettlements returns the settlement of every player who played on date,
// in order of first appearance that day. It has no side effects.
func (s *Service) ListSettlements(ctx context.Context, date string) ([]models.Settlement, error) {
	day, err := s.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}
	metrics.SettlementListings.Inc()
	if len(day.usage) == 0 {
		return []models.Settlement{}, nil
	}

	records, err := s.payments.ForDate(ctx, day.date)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	out := make([]models.Settlement, 0, len(day.usage))
	for _, u := range day.usage {
		st, err := day.settle(u, records[u.PlayerID])
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// Pay records a payment for memberID on date against the bill as it stands
// now and returns the refreshed settlement. A player with no usage on that
// date has no bill and fails with models.ErrNotFound.
func (s *Service) Pay(ctx context.Context, date, memberID string, amount int64) (models.Settlement, error) {
	if amount < 0 {
		return models.Settlement{}, fmt.Errorf("%w: amount cannot be negative", models.ErrInvalidInput)
	}

	day, err := s.loadDay(ctx, date)
	if err != nil {
		return models.Settlement{}, err
	}
	u, ok := day.find(memberID)
	if !ok {
		return models.Settlement{}, fmt.Errorf("%w: no usage for member %s on %s", models.ErrNotFound, memberID, day.date)
	}

	// Price the bill first so the ledger stores what the payment was made against.
	current, err := day.settle(u, nil)
	if err != nil {
		return models.Settlement{}, err
	}

	record, err := s.payments.RecordPayment(ctx, day.date, memberID, amount, current.TotalBill)
	if err != nil {
		return models.Settlement{}, err
	}

	metrics.PaymentsRecorded.WithLabelValues(metrics.PaymentResult(amount, current.TotalBill)).Inc()
	metrics.PaymentAmount.Add(float64(amount))
	slog.Info("Payment recorded",
		"date", day.date,
		"member_id", memberID,
		"amount", amount,
		"total_bill", current.TotalBill,
		"version", record.Version,
	)

	return day.settle(u, record)
}
