package handlers

import (
	"errors"
	"net/http"

	request "fieldserve/internal/adapter/http/dto/request"
	response "fieldserve/internal/adapter/http/dto/response"
	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase"
	"fieldserve/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)

// ProposalHandler computes revision totals for service proposals.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// RevisionTotals applies the discount, TDS and GST cascade over the line
// items and returns every intermediate figure.
func (h *ProposalHandler) RevisionTotals(c *gin.Context) {
	var payload request.ProposalRevisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	lines := make([]entities.ProposalLine, 0, len(payload.Lines))
	for _, l := range payload.Lines {
		lines = append(lines, entities.ProposalLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	totals, err := h.usecase.RevisionTotals(lines, payload.DiscountPct, payload.TDSPct, payload.GSTPct)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposalTotals(totals))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoProposalLines):
		return pkg.NewDomainErrorSimple("PROPOSAL_EMPTY", "Proposal has no line items", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLine):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_LINE", "Line items need a positive quantity and price", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPercentage):
		return pkg.NewDomainErrorSimple("INVALID_PERCENTAGE", "Percentages must be between 0 and 100", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
