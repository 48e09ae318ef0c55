package response

import (
	"fieldserve/internal/domain/entities"
)

type ProposalTotalsResponse struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	AfterDiscount  float64 `json:"after_discount"`
	TDSAmount      float64 `json:"tds_amount"`
	AfterTDS       float64 `json:"after_tds"`
	GSTAmount      float64 `json:"gst_amount"`
	GrandTotal     float64 `json:"grand_total"`
}

func FromProposalTotals(t entities.ProposalTotals) ProposalTotalsResponse {
	return ProposalTotalsResponse{
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		AfterDiscount:  t.AfterDiscount,
		TDSAmount:      t.TDSAmount,
		AfterTDS:       t.AfterTDS,
		GSTAmount:      t.GSTAmount,
		GrandTotal:     t.GrandTotal,
	}
}
