package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/shuttlecash/internal/models"
)

// CreateUsage persists a usage session and its players in one transaction.
func (s *SQLiteStore) CreateUsage(ctx context.Context, session *models.UsageSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt == 0 {
		session.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO usage_sessions (id, date, quantity, match_number, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.Date, session.Quantity, session.MatchNumber, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert usage session: %w", classify(err))
	}

	for i, playerID := range session.PlayerIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO usage_players (session_id, player_id, position) VALUES (?, ?, ?)",
			session.ID, playerID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert usage player: %w", classify(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classify(err))
	}
	return nil
}

// DeleteUsage removes a session; its player rows cascade.
func (s *SQLiteStore) DeleteUsage(ctx context.Context, sessionID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM usage_sessions WHERE id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete usage session: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: usage session %s", models.ErrNotFound, sessionID)
	}
	return nil
}

// ListUsageByDate retrieves the sessions of a date in logging order,
// each with its players in entry order.
func (s *SQLiteStore) ListUsageByDate(ctx context.Context, date string) ([]models.UsageSession, error) {
	return s.listUsage(ctx, models.DateRange{From: date, To: date})
}

// ListUsageInRange retrieves the sessions of every date in r.
func (s *SQLiteStore) ListUsageInRange(ctx context.Context, r models.DateRange) ([]models.UsageSession, error) {
	return s.listUsage(ctx, r)
}

func (s *SQLiteStore) listUsage(ctx context.Context, r models.DateRange) ([]models.UsageSession, error) {
	cond, args := rangeClause("date", r)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, quantity, match_number, created_at
		 FROM usage_sessions WHERE `+cond+` ORDER BY date, created_at, rowid`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list usage sessions: %w", err)
	}

	var sessions []models.UsageSession
	index := make(map[string]int)
	for rows.Next() {
		var us models.UsageSession
		if err := rows.Scan(&us.ID, &us.Date, &us.Quantity, &us.MatchNumber, &us.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan usage session: %w", err)
		}
		index[us.ID] = len(sessions)
		sessions = append(sessions, us)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate usage sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	// The pool has one connection, so the first result set must be closed
	// before this query runs.
	cond, args = rangeClause("us.date", r)
	playerRows, err := s.db.QueryContext(ctx,
		`SELECT up.session_id, up.player_id
		 FROM usage_players up
		 JOIN usage_sessions us ON us.id = up.session_id
		 WHERE `+cond+`
		 ORDER BY up.session_id, up.position`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage players: %w", err)
	}
	defer playerRows.Close()

	for playerRows.Next() {
		var sessionID, playerID string
		if err := playerRows.Scan(&sessionID, &playerID); err != nil {
			return nil, fmt.Errorf("failed to scan usage player: %w", err)
		}
		if i, ok := index[sessionID]; ok {
			sessions[i].PlayerIDs = append(sessions[i].PlayerIDs, playerID)
		}
	}
	if err := playerRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate usage players: %w", err)
	}

	return sessions, nil
}
