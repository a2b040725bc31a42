// Package export renders daily settlements as an XLSX workbook.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/shuttlecash/internal/models"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{
	"Member ID",
	"Name",
	"Member",
	"Shuttlecocks",
	"Shuttlecock Cost",
	"Court Fee",
	"Total Bill",
	"Paid",
	"Status",
	"Overpayment",
	"Outstanding",
}

// WriteSettlements writes the settlements of date to w as a workbook with a
// single sheet named after the date: a header row, one row per settlement
// and a totals row.
func WriteSettlements(w io.Writer, date string, settlements []models.Settlement) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := date
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	row := 1
	setRow := func(values []any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
		return nil
	}

	if err := setRow(header); err != nil {
		return err
	}

	var totalBill, totalPaid, totalOver, totalOutstanding int64
	for _, s := range settlements {
		member := "No"
		if s.IsMember {
			member = "Yes"
		}
		err := setRow([]any{
			s.MemberID,
			s.Name,
			member,
			models.QuantityDecimal(s.ShuttlecockCount).InexactFloat64(),
			s.ShuttlecockCost,
			s.CourtFee,
			s.TotalBill,
			s.PaidAmount,
			string(s.Status),
			s.Overpayment,
			s.Outstanding,
		})
		if err != nil {
			return err
		}
		totalBill += s.TotalBill
		totalPaid += s.PaidAmount
		totalOver += s.Overpayment
		totalOutstanding += s.Outstanding
	}

	totals := []any{"Total", "", "", "", "", "", totalBill, totalPaid, "", totalOver, totalOutstanding}
	if err := setRow(totals); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	first, _ := excelize.CoordinatesToCellName(1, row-1)
	last, _ = excelize.CoordinatesToCellName(len(header), row-1)
	if err := f.SetCellStyle(sheet, first, last, bold); err != nil {
		return fmt.Errorf("failed to style totals: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SettlementLister lists a date's settlements.
type SettlementLister interface {
	ListSettlements(ctx context.Context, date string) ([]models.Settlement, error)
}

// Handler serves GET ?date=YYYY-MM-DD as an XLSX download.
func Handler(settlements SettlementLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		date := r.URL.Query().Get("date")
		list, err := settlements.ListSettlements(r.Context(), date)
		if err != nil {
			if errors.Is(err, models.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			slog.Error("Settlement export failed", "date", date, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		buf := &bytes.Buffer{}
		if err := WriteSettlements(buf, date, list); err != nil {
			slog.Error("Settlement export failed", "date", date, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="settlements-%s.xlsx"`, date))
		_, _ = w.Write(buf.Bytes())
	})
}
