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

const paymentColumns = "id, date, member_id, amount, bill_at_payment, recorded_at, version"

func scanPayment(row rowScanner) (*models.PaymentRecord, error) {
	p := &models.PaymentRecord{}
	if err := row.Scan(&p.ID, &p.Date, &p.MemberID, &p.Amount, &p.BillAtPayment, &p.RecordedAt, &p.Version); err != nil {
		return nil, err
	}
	return p, nil
}

// UpsertPayment creates the record for (date, member_id) or overwrites the
// existing one. The read-modify-write happens inside one statement, so
// concurrent payments for the same key cannot lose an update.
func (s *SQLiteStore) UpsertPayment(ctx context.Context, record *models.PaymentRecord) error {
	record.RecordedAt = time.Now().Unix()

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO payments (id, date, member_id, amount, bill_at_payment, recorded_at, version)
		 VALUES (?, ?, ?, ?, ?, ?, 1)
		 ON CONFLICT (date, member_id) DO UPDATE SET
		     amount = excluded.amount,
		     bill_at_payment = excluded.bill_at_payment,
		     recorded_at = excluded.recorded_at,
		     version = payments.version + 1
		 RETURNING id, version`,
		uuid.New().String(), record.Date, record.MemberID, record.Amount, record.BillAtPayment, record.RecordedAt,
	).Scan(&record.ID, &record.Version)
	if err != nil {
		return fmt.Errorf("failed to upsert payment: %w", classify(err))
	}
	return nil
}

// GetPayment retrieves the record for (date, memberID), or nil if none exists.
func (s *SQLiteStore) GetPayment(ctx context.Context, date, memberID string) (*models.PaymentRecord, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE date = ? AND member_id = ?",
		date, memberID,
	)
	record, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return record, nil
}

// ListPaymentsByDate retrieves all records of a date keyed by member ID.
func (s *SQLiteStore) ListPaymentsByDate(ctx context.Context, date string) (map[string]*models.PaymentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE date = ?", date)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	records := make(map[string]*models.PaymentRecord)
	for rows.Next() {
		record, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		records[record.MemberID] = record
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return records, nil
}
