package usecase

import (
	"errors"
	"math"

	"fieldserve/internal/domain/entities"
)

var (
	ErrNoProposalLines   = errors.New("proposal has no lines")
	ErrInvalidLine       = errors.New("invalid proposal line")
	ErrInvalidPercentage = errors.New("percentage out of range")
)

// IProposalUseCase computes revision totals for a proposal: subtotal, then
// discount, then TDS on the discounted amount, then GST on the amount after
// TDS. The cascade order is fixed; each stage rounds to 2 decimals.

type IProposalUseCase interface {
	RevisionTotals(lines []entities.ProposalLine, discountPct, tdsPct, gstPct float64) (entities.ProposalTotals, error)
}

type ProposalUseCase struct{}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase() *ProposalUseCase {
	return &ProposalUseCase{}
}

func (u *ProposalUseCase) RevisionTotals(lines []entities.ProposalLine, discountPct, tdsPct, gstPct float64) (entities.ProposalTotals, error) {
	if len(lines) == 0 {
		return entities.ProposalTotals{}, ErrNoProposalLines
	}
	for _, p := range []float64{discountPct, tdsPct, gstPct} {
		if p < 0 || p > 100 {
			return entities.ProposalTotals{}, ErrInvalidPercentage
		}
	}

	subtotal := 0.0
	for _, l := range lines {
		if l.Quantity <= 0 || l.UnitPrice < 0 {
			return entities.ProposalTotals{}, ErrInvalidLine
		}
		subtotal += float64(l.Quantity) * l.UnitPrice
	}
	subtotal = round2(subtotal)

	discount := round2(subtotal * discountPct / 100)
	afterDiscount := round2(subtotal - discount)
	tds := round2(afterDiscount * tdsPct / 100)
	afterTDS := round2(afterDiscount - tds)
	gst := round2(afterTDS * gstPct / 100)

	return entities.ProposalTotals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		AfterDiscount:  afterDiscount,
		TDSAmount:      tds,
		AfterTDS:       afterTDS,
		GSTAmount:      gst,
		GrandTotal:     round2(afterTDS + gst),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
