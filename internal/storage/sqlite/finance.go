package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/shuttlecash/internal/models"
)

// CreateFinanceEntry inserts a cash book entry.
func (s *SQLiteStore) CreateFinanceEntry(ctx context.Context, entry *models.FinanceEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Source == "" {
		entry.Source = models.SourceManual
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO finance_entries (id, kind, source, date, description, amount, member_id, period, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Kind, entry.Source, entry.Date, entry.Description, entry.Amount,
		entry.MemberID, entry.Period, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert finance entry: %w", classify(err))
	}
	return nil
}

// DeleteFinanceEntry removes an entry of the given kind.
func (s *SQLiteStore) DeleteFinanceEntry(ctx context.Context, kind models.EntryKind, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM finance_entries WHERE id = ? AND kind = ?", id, kind)
	if err != nil {
		return fmt.Errorf("failed to delete finance entry: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s entry %s", models.ErrNotFound, kind, id)
	}
	return nil
}

// ListFinanceEntries retrieves stored entries of one kind within r.
func (s *SQLiteStore) ListFinanceEntries(ctx context.Context, kind models.EntryKind, r models.DateRange) ([]models.FinanceEntry, error) {
	cond, args := rangeClause("date", r)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, source, date, description, amount, member_id, period, created_at
		 FROM finance_entries
		 WHERE kind = ? AND `+cond+`
		 ORDER BY date, created_at, rowid`,
		append([]any{kind}, args...)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list finance entries: %w", err)
	}
	defer rows.Close()

	var entries []models.FinanceEntry
	for rows.Next() {
		var e models.FinanceEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Source, &e.Date, &e.Description, &e.Amount,
			&e.MemberID, &e.Period, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan finance entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate finance entries: %w", err)
	}
	return entries, nil
}

// ListPaymentIncome reads ledger payments within r as income entries named
// after the payer. A payer missing from the roster is named by ID.
func (s *SQLiteStore) ListPaymentIncome(ctx context.Context, r models.DateRange) ([]models.FinanceEntry, error) {
	cond, args := rangeClause("p.date", r)
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.date, p.member_id, COALESCE(pl.name, p.member_id), p.amount, p.recorded_at
		 FROM payments p
		 LEFT JOIN players pl ON pl.id = p.member_id
		 WHERE p.amount > 0 AND `+cond+`
		 ORDER BY p.date, p.recorded_at, p.rowid`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment income: %w", err)
	}
	defer rows.Close()

	var entries []models.FinanceEntry
	for rows.Next() {
		e := models.FinanceEntry{Kind: models.KindIncome, Source: models.SourceSettlement}
		var name string
		if err := rows.Scan(&e.ID, &e.Date, &e.MemberID, &name, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment income: %w", err)
		}
		e.Description = "Shuttlecock payment: " + name
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment income: %w", err)
	}
	return entries, nil
}
