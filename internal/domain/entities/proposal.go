package entities

// ProposalLine is one line item of a proposal revision.

type ProposalLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// ProposalTotals is the result of the revision cascade: subtotal, then
// discount, then TDS on the discounted amount, then GST on the amount after
// TDS. All figures rounded to 2 decimals.

type ProposalTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	AfterDiscount  float64 `json:"after_discount"`
	TDSAmount      float64 `json:"tds_amount"`
	AfterTDS       float64 `json:"after_tds"`
	GSTAmount      float64 `json:"gst_amount"`
	GrandTotal     float64 `json:"grand_total"`
}
