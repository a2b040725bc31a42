package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/storage"
	"github.com/mmynk/shuttlecash/pkg/api"
)

// MemberService implements the Connect MemberService over the player roster.
type MemberService struct {
	store storage.PlayerStore
}

// NewMemberService creates a new MemberService with the given storage backend.
func NewMemberService(store storage.PlayerStore) *MemberService {
	return &MemberService{store: store}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", models.ErrInvalidInput)
	}
	return name, nil
}

// CreateMember adds a player to the roster.
func (s *MemberService) CreateMember(ctx context.Context, req *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error) {
	name, err := validateName(req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	player := &models.Player{
		Name:     name,
		IsMember: req.Msg.IsMember,
		Grade:    strings.TrimSpace(req.Msg.Grade),
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		slog.Error("CreateMember failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member created", "member_id", player.ID, "name", player.Name, "is_member", player.IsMember)
	return connect.NewResponse(&api.CreateMemberResponse{Member: toAPIMember(player)}), nil
}

// UpdateMember changes a player's name, membership or grade.
// Settlements pick up the new membership immediately.
func (s *MemberService) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	name, err := validateName(req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	player, err := s.store.GetPlayer(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	player.Name = name
	player.IsMember = req.Msg.IsMember
	player.Grade = strings.TrimSpace(req.Msg.Grade)

	if err := s.store.UpdatePlayer(ctx, player); err != nil {
		slog.Error("UpdateMember failed", "member_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member updated", "member_id", player.ID, "is_member", player.IsMember)
	return connect.NewResponse(&api.UpdateMemberResponse{Member: toAPIMember(player)}), nil
}

// DeleteMember removes a player from the roster. Their logged sessions are kept.
func (s *MemberService) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	if err := s.store.DeletePlayer(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteMember failed", "member_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member deleted", "member_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteMemberResponse{}), nil
}

// ListMembers returns the roster ordered by name.
func (s *MemberService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		slog.Error("ListMembers failed", "error", err)
		return nil, toConnectError(err)
	}

	members := make([]*api.Member, len(players))
	for i, p := range players {
		members[i] = toAPIMember(p)
	}
	return connect.NewResponse(&api.ListMembersResponse{Members: members}), nil
}
