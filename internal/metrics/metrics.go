// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shuttlecash"

var (
	// RPCDuration observes every Connect call by procedure and result code.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_duration_seconds",
		Help:      "Duration of RPC calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure", "code"})

	// SettlementListings counts settlement list computations.
	SettlementListings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settlement_listings_total",
		Help:      "Number of daily settlement lists computed.",
	})

	// PaymentsRecorded counts payments by how they compare to the live bill:
	// exact, over or under.
	PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Number of payments written to the ledger.",
	}, []string{"result"})

	// FinanceEntries counts cash book entries by kind and source.
	FinanceEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "finance_entries_total",
		Help:      "Number of income and expense entries booked.",
	}, []string{"kind", "source"})

	// PaymentAmount sums recorded payment amounts in Rupiah.
	PaymentAmount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_amount_rupiah_total",
		Help:      "Sum of recorded payment amounts.",
	})
)

// PaymentResult labels a payment against its bill.
func PaymentResult(amount, totalBill int64) string {
	switch {
	case amount > totalBill:
		return "over"
	case amount < totalBill:
		return "under"
	default:
		return "exact"
	}
}
