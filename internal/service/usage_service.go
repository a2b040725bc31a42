package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/storage"
	"github.com/mmynk/shuttlecash/pkg/api"
)

// UsageStorage is what UsageService needs from storage: sessions and the
// roster to check players against.
type UsageStorage interface {
	storage.UsageStore
	GetPlayersByIDs(ctx context.Context, ids []string) (map[string]*models.Player, error)
}

// UsageService implements the Connect UsageService.
type UsageService struct {
	store UsageStorage
}

// NewUsageService creates a new UsageService with the given storage backend.
func NewUsageService(store UsageStorage) *UsageService {
	return &UsageService{store: store}
}

// validatePlayers checks the player count and that every player is distinct
// and present in the roster.
func (s *UsageService) validatePlayers(ctx context.Context, ids []string) error {
	if len(ids) < models.MinSessionPlayers || len(ids) > models.MaxSessionPlayers {
		return fmt.Errorf("%w: a session needs %d to %d players, got %d",
			models.ErrInvalidInput, models.MinSessionPlayers, models.MaxSessionPlayers, len(ids))
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: empty player id", models.ErrInvalidInput)
		}
		if seen[id] {
			return fmt.Errorf("%w: player %s listed twice", models.ErrInvalidInput, id)
		}
		seen[id] = true
	}

	players, err := s.store.GetPlayersByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}
	for _, id := range ids {
		if _, ok := players[id]; !ok {
			return fmt.Errorf("%w: unknown player %s", models.ErrInvalidInput, id)
		}
	}
	return nil
}

// LogUsage records the shuttlecocks used in one game.
func (s *UsageService) LogUsage(ctx context.Context, req *connect.Request[api.LogUsageRequest]) (*connect.Response[api.LogUsageResponse], error) {
	date, err := models.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, toConnectError(err)
	}
	if req.Msg.Quantity <= 0 {
		return nil, toConnectError(fmt.Errorf("%w: quantity must be positive", models.ErrInvalidInput))
	}
	if req.Msg.MatchNumber < 0 {
		return nil, toConnectError(fmt.Errorf("%w: match number cannot be negative", models.ErrInvalidInput))
	}
	if err := s.validatePlayers(ctx, req.Msg.PlayerIDs); err != nil {
		slog.Warn("LogUsage rejected", "date", date, "error", err)
		return nil, toConnectError(err)
	}

	session := &models.UsageSession{
		Date:        date,
		PlayerIDs:   req.Msg.PlayerIDs,
		Quantity:    req.Msg.Quantity,
		MatchNumber: req.Msg.MatchNumber,
	}
	if err := s.store.CreateUsage(ctx, session); err != nil {
		slog.Error("LogUsage failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Usage logged",
		"session_id", session.ID,
		"date", session.Date,
		"players", len(session.PlayerIDs),
		"quantity", session.Quantity,
	)
	return connect.NewResponse(&api.LogUsageResponse{Session: toAPIUsage(session)}), nil
}

// DeleteUsage removes a logged session.
func (s *UsageService) DeleteUsage(ctx context.Context, req *connect.Request[api.DeleteUsageRequest]) (*connect.Response[api.DeleteUsageResponse], error) {
	if err := s.store.DeleteUsage(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteUsage failed", "session_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Usage deleted", "session_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteUsageResponse{}), nil
}

// ListUsage returns the sessions of a date in the order they were logged.
func (s *UsageService) ListUsage(ctx context.Context, req *connect.Request[api.ListUsageRequest]) (*connect.Response[api.ListUsageResponse], error) {
	date, err := models.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, toConnectError(err)
	}

	sessions, err := s.store.ListUsageByDate(ctx, date)
	if err != nil {
		slog.Error("ListUsage failed", "date", date, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.UsageSession, len(sessions))
	for i := range sessions {
		out[i] = toAPIUsage(&sessions[i])
	}
	return connect.NewResponse(&api.ListUsageResponse{Sessions: out}), nil
}
