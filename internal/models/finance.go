package models

// EntryKind separates money received from money spent.
type EntryKind string

const (
	KindIncome  EntryKind = "income"
	KindExpense EntryKind = "expense"
)

// EntrySource tells where a finance entry came from.
type EntrySource string

const (
	// SourceManual entries are typed in by an administrator.
	SourceManual EntrySource = "manual"

	// SourceMembership entries are collected monthly membership fees.
	SourceMembership EntrySource = "membership"

	// SourceSettlement entries mirror the payment ledger. They are read-only
	// and change only through a new payment.
	SourceSettlement EntrySource = "settlement"
)

// FinanceEntry is one line of the club's cash book.
type FinanceEntry struct {
	// ID is the unique identifier for the entry (UUID format). Settlement
	// entries carry the ID of their payment record.
	ID string

	Kind   EntryKind
	Source EntrySource

	// Date is the booking date (YYYY-MM-DD).
	Date string

	Description string

	// Amount is always positive, in whole Rupiah.
	Amount int64

	// MemberID is set for membership and settlement entries.
	MemberID string

	// Period is the YYYY-MM month a membership fee covers.
	Period string

	// CreatedAt is the Unix timestamp when the entry was written.
	CreatedAt int64
}

// DateRange is an inclusive range of calendar dates. An empty bound is open.
type DateRange struct {
	From string
	To   string
}

// Contains reports whether date falls inside the range. Dates compare
// lexically because they are YYYY-MM-DD.
func (r DateRange) Contains(date string) bool {
	return (r.From == "" || date >= r.From) && (r.To == "" || date <= r.To)
}

// CashTotals sums a range of the cash book.
type CashTotals struct {
	Income       int64
	Expenses     int64
	IncomeCount  int
	ExpenseCount int
}

// Balance is income minus expenses; negative means a deficit.
func (t CashTotals) Balance() int64 {
	return t.Income - t.Expenses
}
