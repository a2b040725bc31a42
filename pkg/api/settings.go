package api

// Pricing is the club's price configuration in whole Rupiah.
type Pricing struct {
	ShuttlecockPrice     int64 `json:"shuttlecockPrice"`
	CourtPriceNonMember  int64 `json:"courtPriceNonMember"`
	MembershipFeeMonthly int64 `json:"membershipFeeMonthly"`
	UpdatedAt            int64 `json:"updatedAt,omitempty"`
}

type GetPricingRequest struct{}

type GetPricingResponse struct {
	Pricing *Pricing `json:"pricing"`
}

// UpdatePricingRequest is a partial update; omitted fields keep their value.
type UpdatePricingRequest struct {
	ShuttlecockPrice     *int64 `json:"shuttlecockPrice,omitempty"`
	CourtPriceNonMember  *int64 `json:"courtPriceNonMember,omitempty"`
	MembershipFeeMonthly *int64 `json:"membershipFeeMonthly,omitempty"`
}

type UpdatePricingResponse struct {
	Pricing *Pricing `json:"pricing"`
}
