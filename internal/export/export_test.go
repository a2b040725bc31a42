package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/shuttlecash/internal/models"
)

func sampleSettlements() []models.Settlement {
	return []models.Settlement{
		{
			Date: "2024-05-01", MemberID: "a", Name: "Alice", IsMember: true,
			ShuttlecockCount: big.NewRat(2, 1), ShuttlecockCost: 20000, TotalBill: 20000,
			Status: models.StatusUnpaid, Outstanding: 20000,
		},
		{
			Date: "2024-05-01", MemberID: "b", Name: "Bob",
			ShuttlecockCount: big.NewRat(4, 3), ShuttlecockCost: 13333, CourtFee: 50000, TotalBill: 63333,
			PaidAmount: 70000, Status: models.StatusPaid, Overpayment: 6667,
		},
	}
}

func readRows(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("failed to read sheet %s: %v", sheet, err)
	}
	return rows
}

func TestWriteSettlements(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteSettlements(buf, "2024-05-01", sampleSettlements()); err != nil {
		t.Fatalf("WriteSettlements failed: %v", err)
	}

	rows := readRows(t, buf.Bytes(), "2024-05-01")
	if len(rows) != 4 {
		t.Fatalf("expected header, 2 rows and totals, got %d rows", len(rows))
	}
	if rows[0][0] != "Member ID" || rows[0][6] != "Total Bill" {
		t.Errorf("header = %v", rows[0])
	}

	alice := rows[1]
	if alice[1] != "Alice" || alice[2] != "Yes" || alice[3] != "2" || alice[6] != "20000" || alice[8] != "unpaid" {
		t.Errorf("Alice row = %v", alice)
	}
	bob := rows[2]
	if bob[3] != "1.33" || bob[5] != "50000" || bob[9] != "6667" {
		t.Errorf("Bob row = %v", bob)
	}

	totals := rows[3]
	if totals[0] != "Total" || totals[6] != "83333" || totals[7] != "70000" || totals[10] != "20000" {
		t.Errorf("totals row = %v", totals)
	}
}

func TestWriteSettlements_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteSettlements(buf, "2024-05-02", nil); err != nil {
		t.Fatalf("WriteSettlements failed: %v", err)
	}
	rows := readRows(t, buf.Bytes(), "2024-05-02")
	if len(rows) != 2 || rows[1][0] != "Total" {
		t.Errorf("rows = %v, want header and totals", rows)
	}
}

type fakeLister struct {
	list []models.Settlement
	err  error
}

func (f fakeLister) ListSettlements(ctx context.Context, date string) ([]models.Settlement, error) {
	return f.list, f.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		lister     fakeLister
		wantStatus int
	}{
		{"ok", http.MethodGet, fakeLister{list: sampleSettlements()}, http.StatusOK},
		{"bad date", http.MethodGet, fakeLister{err: fmt.Errorf("%w: bad date", models.ErrInvalidInput)}, http.StatusBadRequest},
		{"store failure", http.MethodGet, fakeLister{err: errors.New("boom")}, http.StatusInternalServerError},
		{"wrong method", http.MethodPost, fakeLister{}, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/export/settlements.xlsx?date=2024-05-01", nil)
			rec := httptest.NewRecorder()
			Handler(tt.lister).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if ct := rec.Header().Get("Content-Type"); ct != ContentType {
				t.Errorf("Content-Type = %s", ct)
			}
			rows := readRows(t, rec.Body.Bytes(), "2024-05-01")
			if len(rows) != 4 {
				t.Errorf("expected 4 rows, got %d", len(rows))
			}
		})
	}
}
