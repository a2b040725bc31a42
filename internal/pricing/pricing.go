// Package pricing holds the club's price configuration.
package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/storage"
)

// Service reads and updates the pricing singleton.
//
// Reads are served from memory once loaded. Set writes through to the store
// and refreshes the cache before returning, so a caller always sees its own
// update on the next Get.
type Service struct {
	store storage.PricingStore

	mu     sync.RWMutex
	cached *models.PricingConfig
}

// NewService creates a pricing service backed by store.
func NewService(store storage.PricingStore) *Service {
	return &Service{store: store}
}

// Get returns the current pricing.
func (s *Service) Get(ctx context.Context) (models.PricingConfig, error) {
	s.mu.RLock()
	if s.cached != nil {
		p := *s.cached
		s.mu.RUnlock()
		return p, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return *s.cached, nil
	}

	p, err := s.store.GetPricing(ctx)
	if err != nil {
		return models.PricingConfig{}, err
	}
	s.cached = &p
	return p, nil
}

// Set applies a partial update. Negative values fail with models.ErrInvalidInput
// and leave the stored pricing unchanged.
func (s *Service) Set(ctx context.Context, update models.PricingUpdate) (models.PricingConfig, error) {
	if err := validateUpdate(update); err != nil {
		return models.PricingConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.UpdatePricing(ctx, update)
	if err != nil {
		return models.PricingConfig{}, err
	}
	s.cached = &p

	slog.Info("Pricing updated",
		"shuttlecock_price", p.ShuttlecockUnitPrice,
		"court_fee_non_member", p.NonMemberCourtFee,
		"membership_fee_monthly", p.MembershipFeeMonthly,
	)
	return p, nil
}

func validateUpdate(u models.PricingUpdate) error {
	fields := []struct {
		name  string
		value *int64
	}{
		{"shuttlecock_price", u.ShuttlecockUnitPrice},
		{"court_price_non_member", u.NonMemberCourtFee},
		{"membership_fee_monthly", u.MembershipFeeMonthly},
	}
	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			return fmt.Errorf("%w: %s cannot be negative", models.ErrInvalidInput, f.name)
		}
	}
	return nil
}
