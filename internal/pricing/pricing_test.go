package pricing

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/storage/sqlite"
)

func int64Ptr(v int64) *int64 { return &v }

func newTestService(t *testing.T) (*Service, *sqlite.SQLiteStore) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "pricing.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	err = store.SeedPricing(context.Background(), models.PricingConfig{
		ShuttlecockUnitPrice: 10000,
		NonMemberCourtFee:    50000,
		MembershipFeeMonthly: 100000,
	})
	if err != nil {
		t.Fatalf("failed to seed pricing: %v", err)
	}
	return NewService(store), store
}

func TestService_GetAndSet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.ShuttlecockUnitPrice != 10000 {
		t.Errorf("shuttlecock price = %d, want 10000", p.ShuttlecockUnitPrice)
	}

	updated, err := svc.Set(ctx, models.PricingUpdate{NonMemberCourtFee: int64Ptr(40000)})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if updated.NonMemberCourtFee != 40000 || updated.ShuttlecockUnitPrice != 10000 {
		t.Errorf("Set = %+v, want court fee 40000 and shuttlecock unchanged", updated)
	}

	// Read-your-writes through the cache.
	p, err = svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.NonMemberCourtFee != 40000 {
		t.Errorf("Get after Set = %+v, want court fee 40000", p)
	}
}

func TestService_SetRejectsNegative(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		update models.PricingUpdate
	}{
		{"shuttlecock", models.PricingUpdate{ShuttlecockUnitPrice: int64Ptr(-1)}},
		{"court fee", models.PricingUpdate{NonMemberCourtFee: int64Ptr(-1)}},
		{"membership", models.PricingUpdate{MembershipFeeMonthly: int64Ptr(-100)}},
		{"mixed", models.PricingUpdate{ShuttlecockUnitPrice: int64Ptr(5), NonMemberCourtFee: int64Ptr(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Set(ctx, tt.update)
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("Set error = %v, want ErrInvalidInput", err)
			}
		})
	}

	stored, err := store.GetPricing(ctx)
	if err != nil {
		t.Fatalf("GetPricing failed: %v", err)
	}
	if stored.ShuttlecockUnitPrice != 10000 || stored.NonMemberCourtFee != 50000 {
		t.Errorf("stored pricing changed after rejected updates: %+v", stored)
	}
}
