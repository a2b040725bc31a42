package models

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// QuantityPlaces is the display precision of attributed shuttlecock counts.
const QuantityPlaces = 2

// QuantityDecimal rounds an exact quantity to QuantityPlaces for display.
// A nil quantity is zero.
func QuantityDecimal(r *big.Rat) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, QuantityPlaces)
}
