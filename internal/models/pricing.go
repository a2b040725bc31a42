package models

// PricingConfig holds the club's tunable prices in whole Rupiah.
// There is exactly one PricingConfig; changes apply to every settlement
// computed afterwards and are never applied retroactively to stored payments.
type PricingConfig struct {
	// ShuttlecockUnitPrice is the price of one shuttlecock.
	ShuttlecockUnitPrice int64

	// NonMemberCourtFee is charged once per day to each non-member who played.
	NonMemberCourtFee int64

	// MembershipFeeMonthly is the monthly membership fee.
	MembershipFeeMonthly int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}

// PricingUpdate is a partial update; nil fields are left unchanged.
type PricingUpdate struct {
	ShuttlecockUnitPrice *int64
	NonMemberCourtFee    *int64
	MembershipFeeMonthly *int64
}
