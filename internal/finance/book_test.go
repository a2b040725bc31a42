package finance

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/shuttlecash/internal/ledger"
	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/pricing"
	"github.com/mmynk/shuttlecash/internal/storage/sqlite"
)

func newTestBook(t *testing.T) (*Book, *sqlite.SQLiteStore) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "finance.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.SeedPricing(ctx, models.PricingConfig{MembershipFeeMonthly: 100000}); err != nil {
		t.Fatalf("failed to seed pricing: %v", err)
	}
	return NewBook(store, store, pricing.NewService(store)), store
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     models.DateRange
		wantErr  bool
	}{
		{"open", "", "", models.DateRange{}, false},
		{"from only", "2024-05-01", "", models.DateRange{From: "2024-05-01"}, false},
		{"single day", "2024-05-01", "2024-05-01", models.DateRange{From: "2024-05-01", To: "2024-05-01"}, false},
		{"reversed", "2024-05-02", "2024-05-01", models.DateRange{}, true},
		{"malformed", "2024/05/01", "", models.DateRange{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.from, tt.to)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidInput) {
					t.Errorf("error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRange failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRange = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBook_IncomeIncludesLedgerPayments(t *testing.T) {
	book, store := newTestBook(t)
	ctx := context.Background()

	bob := &models.Player{Name: "Bob"}
	if err := store.CreatePlayer(ctx, bob); err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	payments := ledger.New(store)
	if _, err := payments.RecordPayment(ctx, "2024-05-01", bob.ID, 70000, 70000); err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	// A zero payment marks the bill paid but brings in no money.
	if _, err := payments.RecordPayment(ctx, "2024-05-01", "ghost", 0, 20000); err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if _, err := book.AddIncome(ctx, "2024-04-30", "Sponsor", 25000); err != nil {
		t.Fatalf("AddIncome failed: %v", err)
	}
	if _, err := book.AddExpense(ctx, "2024-05-01", "Shuttlecocks", 40000); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	income, err := book.Income(ctx, models.DateRange{})
	if err != nil {
		t.Fatalf("Income failed: %v", err)
	}
	if len(income) != 2 {
		t.Fatalf("income entries = %d, want 2", len(income))
	}
	if income[0].Description != "Sponsor" || income[1].Source != models.SourceSettlement || income[1].Amount != 70000 {
		t.Errorf("income = %+v", income)
	}

	totals, err := book.Totals(ctx, models.DateRange{From: "2024-05-01", To: "2024-05-01"})
	if err != nil {
		t.Fatalf("Totals failed: %v", err)
	}
	want := models.CashTotals{Income: 70000, Expenses: 40000, IncomeCount: 1, ExpenseCount: 1}
	if totals != want {
		t.Errorf("Totals = %+v, want %+v", totals, want)
	}
	if totals.Balance() != 30000 {
		t.Errorf("Balance = %d, want 30000", totals.Balance())
	}
}

func TestBook_DeleteChecksKind(t *testing.T) {
	book, _ := newTestBook(t)
	ctx := context.Background()

	expense, err := book.AddExpense(ctx, "2024-05-01", "Net", 150000)
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	if err := book.Delete(ctx, models.KindIncome, expense.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Delete as income error = %v, want ErrNotFound", err)
	}
	if err := book.Delete(ctx, models.KindExpense, ""); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("Delete without id error = %v, want ErrInvalidInput", err)
	}
	if err := book.Delete(ctx, models.KindExpense, expense.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	expenses, err := book.Expenses(ctx, models.DateRange{})
	if err != nil {
		t.Fatalf("Expenses failed: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("expenses after delete = %+v", expenses)
	}
}

func TestBook_CollectMembershipFee(t *testing.T) {
	book, store := newTestBook(t)
	ctx := context.Background()

	alice := &models.Player{Name: "Alice", IsMember: true}
	if err := store.CreatePlayer(ctx, alice); err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}

	entry, err := book.CollectMembershipFee(ctx, alice.ID, "2024-05-15")
	if err != nil {
		t.Fatalf("CollectMembershipFee failed: %v", err)
	}
	if entry.Amount != 100000 || entry.Period != "2024-05" || entry.Description != "Membership fee 2024-05: Alice" {
		t.Errorf("entry = %+v", entry)
	}

	if _, err := book.CollectMembershipFee(ctx, alice.ID, "2024-05-31"); !errors.Is(err, models.ErrConflict) {
		t.Errorf("second fee in May error = %v, want ErrConflict", err)
	}

	prices := pricing.NewService(store)
	book = NewBook(store, store, prices)
	if _, err := prices.Set(ctx, models.PricingUpdate{MembershipFeeMonthly: new(int64)}); err != nil {
		t.Fatalf("Set pricing failed: %v", err)
	}
	if _, err := book.CollectMembershipFee(ctx, alice.ID, "2024-06-01"); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("fee with zero price error = %v, want ErrInvalidInput", err)
	}
}
