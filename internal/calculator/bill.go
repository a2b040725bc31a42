package calculator

import (
	"fmt"
	"math"
	"math/big"

	"github.com/mmynk/shuttlecash/internal/models"
)

// Bill is one player's charge for one day.
type Bill struct {
	ShuttlecockCost int64
	CourtFee        int64
	TotalBill       int64
}

// CalculateBill prices a player's attributed quantity.
//
//	shuttlecock_cost = round_half_up(quantity × unit_price)
//	court_fee        = 0 for members, the non-member fee otherwise (once per day)
//	total_bill       = shuttlecock_cost + court_fee
func CalculateBill(quantity *big.Rat, isMember bool, pricing models.PricingConfig) (Bill, error) {
	if quantity == nil {
		return Bill{}, fmt.Errorf("%w: quantity is required", models.ErrInvalidInput)
	}
	if quantity.Sign() < 0 {
		return Bill{}, fmt.Errorf("%w: quantity cannot be negative", models.ErrInvalidInput)
	}
	if err := ValidatePricing(pricing); err != nil {
		return Bill{}, err
	}

	cost := new(big.Rat).Mul(quantity, new(big.Rat).SetInt64(pricing.ShuttlecockUnitPrice))
	shuttlecockCost, err := RoundHalfUp(cost)
	if err != nil {
		return Bill{}, fmt.Errorf("shuttlecock cost: %w", err)
	}

	bill := Bill{ShuttlecockCost: shuttlecockCost}
	if !isMember {
		bill.CourtFee = pricing.NonMemberCourtFee
	}
	if bill.ShuttlecockCost > math.MaxInt64-bill.CourtFee {
		return Bill{}, fmt.Errorf("%w: total bill exceeds %d", models.ErrInvalidInput, int64(math.MaxInt64))
	}
	bill.TotalBill = bill.ShuttlecockCost + bill.CourtFee
	return bill, nil
}

// ValidatePricing rejects negative prices.
func ValidatePricing(p models.PricingConfig) error {
	switch {
	case p.ShuttlecockUnitPrice < 0:
		return fmt.Errorf("%w: shuttlecock price cannot be negative", models.ErrInvalidInput)
	case p.NonMemberCourtFee < 0:
		return fmt.Errorf("%w: court fee cannot be negative", models.ErrInvalidInput)
	case p.MembershipFeeMonthly < 0:
		return fmt.Errorf("%w: membership fee cannot be negative", models.ErrInvalidInput)
	}
	return nil
}

// RoundHalfUp rounds a non-negative rational to the nearest integer, halves
// rounding up. Negative values round half away from zero. A result outside
// the int64 range fails with models.ErrInvalidInput.
func RoundHalfUp(r *big.Rat) (int64, error) {
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()

	// floor((2·num + den) / (2·den))
	n := new(big.Int).Lsh(num, 1)
	n.Add(n, den)
	d := new(big.Int).Lsh(den, 1)
	q := n.Quo(n, d)

	if r.Sign() < 0 {
		q.Neg(q)
	}
	if !q.IsInt64() {
		return 0, fmt.Errorf("%w: %s does not fit in int64", models.ErrInvalidInput, q)
	}
	return q.Int64(), nil
}
