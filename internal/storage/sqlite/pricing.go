package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/shuttlecash/internal/models"
)

// GetPricing retrieves the pricing singleton.
func (s *SQLiteStore) GetPricing(ctx context.Context) (models.PricingConfig, error) {
	var p models.PricingConfig
	err := s.db.QueryRowContext(ctx,
		`SELECT shuttlecock_price, court_fee_non_member, membership_fee_monthly, updated_at
		 FROM pricing WHERE id = 1`,
	).Scan(&p.ShuttlecockUnitPrice, &p.NonMemberCourtFee, &p.MembershipFeeMonthly, &p.UpdatedAt)
	if err != nil {
		return models.PricingConfig{}, fmt.Errorf("failed to get pricing: %w", err)
	}
	return p, nil
}

// UpdatePricing applies a partial update in a single statement.
func (s *SQLiteStore) UpdatePricing(ctx context.Context, update models.PricingUpdate) (models.PricingConfig, error) {
	var p models.PricingConfig
	err := s.db.QueryRowContext(ctx,
		`UPDATE pricing SET
		     shuttlecock_price = COALESCE(?, shuttlecock_price),
		     court_fee_non_member = COALESCE(?, court_fee_non_member),
		     membership_fee_monthly = COALESCE(?, membership_fee_monthly),
		     updated_at = ?
		 WHERE id = 1
		 RETURNING shuttlecock_price, court_fee_non_member, membership_fee_monthly, updated_at`,
		update.ShuttlecockUnitPrice, update.NonMemberCourtFee, update.MembershipFeeMonthly, time.Now().Unix(),
	).Scan(&p.ShuttlecockUnitPrice, &p.NonMemberCourtFee, &p.MembershipFeeMonthly, &p.UpdatedAt)
	if err != nil {
		return models.PricingConfig{}, fmt.Errorf("failed to update pricing: %w", classify(err))
	}
	return p, nil
}

// SeedPricing stores the initial pricing if it was never configured.
func (s *SQLiteStore) SeedPricing(ctx context.Context, pricing models.PricingConfig) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE pricing SET
		     shuttlecock_price = ?,
		     court_fee_non_member = ?,
		     membership_fee_monthly = ?,
		     updated_at = ?
		 WHERE id = 1 AND updated_at = 0`,
		pricing.ShuttlecockUnitPrice, pricing.NonMemberCourtFee, pricing.MembershipFeeMonthly, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to seed pricing: %w", classify(err))
	}
	return nil
}
