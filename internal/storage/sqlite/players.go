package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/shuttlecash/internal/models"
)

const playerColumns = "id, name, is_member, grade, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	p := &models.Player{}
	var isMember int
	if err := row.Scan(&p.ID, &p.Name, &isMember, &p.Grade, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.IsMember = isMember != 0
	return p, nil
}

// CreatePlayer persists a new player to the database.
func (s *SQLiteStore) CreatePlayer(ctx context.Context, player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if player.CreatedAt == 0 {
		player.CreatedAt = now
	}
	player.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (id, name, is_member, grade, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		player.ID, player.Name, boolToInt(player.IsMember), player.Grade, player.CreatedAt, player.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", classify(err))
	}
	return nil
}

// GetPlayer retrieves a player by ID.
func (s *SQLiteStore) GetPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+playerColumns+" FROM players WHERE id = ?", playerID)

	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: player %s", models.ErrNotFound, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// UpdatePlayer updates name, membership and grade of an existing player.
func (s *SQLiteStore) UpdatePlayer(ctx context.Context, player *models.Player) error {
	player.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx,
		`UPDATE players SET name = ?, is_member = ?, grade = ?, updated_at = ? WHERE id = ?`,
		player.Name, boolToInt(player.IsMember), player.Grade, player.UpdatedAt, player.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: player %s", models.ErrNotFound, player.ID)
	}
	return nil
}

// DeletePlayer removes a player from the roster. Their usage history is kept.
func (s *SQLiteStore) DeletePlayer(ctx context.Context, playerID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", playerID)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: player %s", models.ErrNotFound, playerID)
	}
	return nil
}

// ListPlayers retrieves the whole roster ordered by name.
func (s *SQLiteStore) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+playerColumns+" FROM players ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// GetPlayersByIDs retrieves multiple players by their IDs.
// Returns a map of player ID to Player.
// Players that don't exist are omitted from the result.
func (s *SQLiteStore) GetPlayersByIDs(ctx context.Context, ids []string) (map[string]*models.Player, error) {
	players := make(map[string]*models.Player, len(ids))
	if len(ids) == 0 {
		return players, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+playerColumns+" FROM players WHERE id IN ("+placeholders(len(ids))+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating players: %w", err)
	}
	return players, nil
}
