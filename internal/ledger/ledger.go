// Package ledger records player payments per play date.
package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/storage"
)

// Ledger tracks payments keyed by (date, member).
//
// A key with no record is unpaid. RecordPayment moves it to paid; paying
// again replaces the stored amount so a mis-entered payment can be corrected.
// There is no way back to unpaid.
type Ledger struct {
	store storage.PaymentStore
}

// New creates a ledger backed by store.
func New(store storage.PaymentStore) *Ledger {
	return &Ledger{store: store}
}

// RecordPayment creates or overwrites the payment for (date, memberID).
// billAtPayment is the total bill the payment was made against.
func (l *Ledger) RecordPayment(ctx context.Context, date, memberID string, amount, billAtPayment int64) (*models.PaymentRecord, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount cannot be negative", models.ErrInvalidInput)
	}
	if memberID == "" {
		return nil, fmt.Errorf("%w: member_id required", models.ErrInvalidInput)
	}
	date, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}

	record := &models.PaymentRecord{
		Date:          date,
		MemberID:      memberID,
		Amount:        amount,
		BillAtPayment: billAtPayment,
	}
	if err := l.store.UpsertPayment(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Lookup returns the payment for (date, memberID), or nil if unpaid.
func (l *Ledger) Lookup(ctx context.Context, date, memberID string) (*models.PaymentRecord, error) {
	return l.store.GetPayment(ctx, date, memberID)
}

// ForDate returns every payment recorded for date, keyed by member ID.
func (l *Ledger) ForDate(ctx context.Context, date string) (map[string]*models.PaymentRecord, error) {
	return l.store.ListPaymentsByDate(ctx, date)
}
