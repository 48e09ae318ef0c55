package handlers

import (
	"errors"
	"net/http"

	response "fieldserve/internal/adapter/http/dto/response"
	"fieldserve/internal/usecase"
	"fieldserve/pkg"

	"github.com/gin-gonic/gin"
)

// RecordHandler serves the pending-record worklist and per-part lookups the
// app needs before a checklist can be walked.

type RecordHandler struct {
	usecase usecase.IRecordUseCase
}

func NewRecordHandler(uc usecase.IRecordUseCase) *RecordHandler {
	return &RecordHandler{usecase: uc}
}

// ListPending returns the customer's records still awaiting maintenance.
func (h *RecordHandler) ListPending(c *gin.Context) {
	customerCode := c.Param("customer_code")
	if customerCode == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	records, err := h.usecase.ListPending(c.Request.Context(), customerCode)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceRecords(records))
}

// ChecklistByPart returns the blank checklist template for a part number.
func (h *RecordHandler) ChecklistByPart(c *gin.Context) {
	partNumber := c.Param("part_number")

	items, err := h.usecase.ChecklistByPart(c.Request.Context(), partNumber)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChecklistItems(items))
}

// DocRefsByPart returns the document/format reference numbers for a part.
func (h *RecordHandler) DocRefsByPart(c *gin.Context) {
	partNumber := c.Param("part_number")

	refs, err := h.usecase.DocRefsByPart(c.Request.Context(), partNumber)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocReferenceSet(refs))
}

func mapRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerCode):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_CODE", "Invalid customer code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPartNumber):
		return pkg.NewDomainErrorSimple("INVALID_PART_NUMBER", "Invalid part number", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
