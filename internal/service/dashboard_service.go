package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/pkg/api"
)

// Summarizer builds the dashboard overview.
type Summarizer interface {
	Summary(ctx context.Context, date string) (*models.DashboardSummary, error)
}

// DashboardService implements the Connect DashboardService.
type DashboardService struct {
	dashboard Summarizer
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(dashboard Summarizer) *DashboardService {
	return &DashboardService{dashboard: dashboard}
}

// GetSummary returns the overview for the week ending on the requested date.
func (s *DashboardService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	summary, err := s.dashboard.Summary(ctx, req.Msg.Date)
	if err != nil {
		slog.Error("GetSummary failed", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetSummaryResponse{Summary: toAPIDashboard(summary)}), nil
}
