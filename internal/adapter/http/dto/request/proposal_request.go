package request

type ProposalLineRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

// ProposalRevisionRequest asks for the revision total cascade over a set of
// line items: discount first, then TDS, then GST.
type ProposalRevisionRequest struct {
	Lines       []ProposalLineRequest `json:"lines" binding:"required"`
	DiscountPct float64               `json:"discount_pct"`
	TDSPct      float64               `json:"tds_pct"`
	GSTPct      float64               `json:"gst_pct"`
}
