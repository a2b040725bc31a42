package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/pkg/api"
)

// Pricing reads and updates the club's price configuration.
type Pricing interface {
	Get(ctx context.Context) (models.PricingConfig, error)
	Set(ctx context.Context, update models.PricingUpdate) (models.PricingConfig, error)
}

// SettingsService implements the Connect SettingsService.
type SettingsService struct {
	pricing Pricing
}

// NewSettingsService creates a SettingsService backed by the pricing service.
func NewSettingsService(pricing Pricing) *SettingsService {
	return &SettingsService{pricing: pricing}
}

// GetPricing returns the current pricing.
func (s *SettingsService) GetPricing(ctx context.Context, req *connect.Request[api.GetPricingRequest]) (*connect.Response[api.GetPricingResponse], error) {
	p, err := s.pricing.Get(ctx)
	if err != nil {
		slog.Error("GetPricing failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetPricingResponse{Pricing: toAPIPricing(p)}), nil
}

// UpdatePricing applies a partial pricing update.
func (s *SettingsService) UpdatePricing(ctx context.Context, req *connect.Request[api.UpdatePricingRequest]) (*connect.Response[api.UpdatePricingResponse], error) {
	p, err := s.pricing.Set(ctx, models.PricingUpdate{
		ShuttlecockUnitPrice: req.Msg.ShuttlecockPrice,
		NonMemberCourtFee:    req.Msg.CourtPriceNonMember,
		MembershipFeeMonthly: req.Msg.MembershipFeeMonthly,
	})
	if err != nil {
		slog.Error("UpdatePricing failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.UpdatePricingResponse{Pricing: toAPIPricing(p)}), nil
}
