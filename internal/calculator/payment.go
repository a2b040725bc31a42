package calculator

import "github.com/mmynk/shuttlecash/internal/models"

// PaymentState is the derived payment side of a settlement.
type PaymentState struct {
	Status      models.PaymentStatus
	PaidAmount  int64
	Overpayment int64
	Outstanding int64
}

// ResolvePayment derives the payment state from the live bill and the ledger
// record, if any.
//
// Any recorded payment marks the settlement paid, even when it is short of the
// bill; the shortfall is reported in Outstanding instead.
func ResolvePayment(totalBill int64, record *models.PaymentRecord) PaymentState {
	if record == nil {
		return PaymentState{
			Status:      models.StatusUnpaid,
			Outstanding: max(0, totalBill),
		}
	}
	return PaymentState{
		Status:      models.StatusPaid,
		PaidAmount:  record.Amount,
		Overpayment: max(0, record.Amount-totalBill),
		Outstanding: max(0, totalBill-record.Amount),
	}
}
