package models

import "math/big"

// PaymentStatus is the payment state of a settlement.
type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "unpaid"
	StatusPaid   PaymentStatus = "paid"
)

// PaymentRecord is the ledger entry for one player on one date.
// There is at most one record per (Date, MemberID); paying again overwrites it.
type PaymentRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string

	// Date is the settled play date (YYYY-MM-DD).
	Date string

	// MemberID is the paying player.
	MemberID string

	// Amount is the amount received, in whole Rupiah.
	Amount int64

	// BillAtPayment is the total bill shown when the payment was confirmed.
	// Kept for reference only; status and overpayment use the live bill.
	BillAtPayment int64

	// RecordedAt is the Unix timestamp of the latest write.
	RecordedAt int64

	// Version starts at 1 and is incremented on every overwrite.
	Version int64
}

// Settlement is the computed daily bill and payment state for one player.
// It is derived on demand and never persisted.
type Settlement struct {
	Date     string
	MemberID string
	Name     string
	IsMember bool

	// ShuttlecockCount is the player's attributed share of the day's shuttlecocks.
	ShuttlecockCount *big.Rat

	ShuttlecockCost int64
	CourtFee        int64
	TotalBill       int64

	PaidAmount  int64
	Status      PaymentStatus
	Overpayment int64

	// Outstanding is max(0, TotalBill - PaidAmount).
	Outstanding int64
}
