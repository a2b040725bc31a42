package ledger

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/storage/sqlite"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func TestLedger_RecordPayment(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.Lookup(ctx, "2024-05-01", "bob")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected no record before payment, got %+v", rec)
	}

	rec, err = l.RecordPayment(ctx, "2024-05-01", "bob", 60000, 70000)
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if rec.Amount != 60000 || rec.Version != 1 {
		t.Errorf("first payment = %+v", rec)
	}

	// Correction replaces the amount.
	rec, err = l.RecordPayment(ctx, "2024-05-01", "bob", 70000, 70000)
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if rec.Amount != 70000 || rec.Version != 2 {
		t.Errorf("corrected payment = %+v", rec)
	}

	all, err := l.ForDate(ctx, "2024-05-01")
	if err != nil {
		t.Fatalf("ForDate failed: %v", err)
	}
	if len(all) != 1 || all["bob"].Amount != 70000 {
		t.Errorf("ForDate = %v, want one record of 70000", all)
	}
}

func TestLedger_RecordPaymentValidation(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		date     string
		memberID string
		amount   int64
	}{
		{"negative amount", "2024-05-01", "bob", -1},
		{"malformed date", "01/05/2024", "bob", 1000},
		{"missing member", "2024-05-01", "", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.RecordPayment(ctx, tt.date, tt.memberID, tt.amount, 0)
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("RecordPayment error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestLedger_ConcurrentPaymentsSameKey(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	amounts := []int64{70000, 80000, 90000, 100000}
	var wg sync.WaitGroup
	for _, a := range amounts {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()
			if _, err := l.RecordPayment(ctx, "2024-05-01", "bob", amount, 70000); err != nil {
				t.Errorf("RecordPayment failed: %v", err)
			}
		}(a)
	}
	wg.Wait()

	rec, err := l.Lookup(ctx, "2024-05-01", "bob")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if rec.Version != int64(len(amounts)) {
		t.Errorf("version = %d, want %d", rec.Version, len(amounts))
	}
	found := false
	for _, a := range amounts {
		if rec.Amount == a {
			found = true
		}
	}
	if !found {
		t.Errorf("final amount %d is not one of the submitted amounts", rec.Amount)
	}
}
