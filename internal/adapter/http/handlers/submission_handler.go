package handlers

import (
	"errors"
	"net/http"

	request "fieldserve/internal/adapter/http/dto/request"
	response "fieldserve/internal/adapter/http/dto/response"
	"fieldserve/internal/adapter/http/middleware"
	"fieldserve/internal/usecase"
	"fieldserve/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid submission payload", http.StatusBadRequest)

// SubmissionHandler runs batch submissions and serves their progress logs.

type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// SubmitBatch processes the given records strictly in order and responds with
// the finished batch, ordered progress log included. The run is synchronous;
// the app polls nothing.
func (h *SubmissionHandler) SubmitBatch(c *gin.Context) {
	var payload request.SubmitBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized).ToHTTPError())
		return
	}

	batch, err := h.usecase.SubmitBatch(c.Request.Context(), usecase.SubmitBatchCommand{
		RecordIDs:    payload.RecordIDs,
		EngineerCode: claims.EmployeeCode,
		EngineerName: claims.Name,
	})
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmissionBatch(batch))
}

// GetBatch returns a finished batch with its progress log.
func (h *SubmissionHandler) GetBatch(c *gin.Context) {
	batch, err := h.usecase.GetBatch(c.Request.Context(), c.Param("batch_id"))
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmissionBatch(batch))
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyBatch):
		return pkg.NewDomainErrorSimple("BATCH_EMPTY", "No records selected for submission", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMixedCustomerCodes):
		return pkg.NewDomainErrorSimple("BATCH_MIXED_CUSTOMERS", "All records in a batch must belong to one customer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBatchIncomplete):
		return pkg.NewDomainErrorSimple("BATCH_INCOMPLETE", "Every record needs a completed checklist before submission", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOtpNotVerified):
		return pkg.NewDomainErrorSimple("OTP_NOT_VERIFIED", "Verify the customer code before submitting", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Maintenance record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FOUND", "Submission batch not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
