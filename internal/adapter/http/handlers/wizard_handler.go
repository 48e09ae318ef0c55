package handlers

import (
	"errors"
	"net/http"

	request "fieldserve/internal/adapter/http/dto/request"
	response "fieldserve/internal/adapter/http/dto/response"
	"fieldserve/internal/usecase"
	"fieldserve/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)

// WizardHandler drives the one-checkpoint-at-a-time checklist walk. Every
// operation returns the full session snapshot so the app never tracks state
// of its own.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// Start opens a wizard session for one pending record.
func (h *WizardHandler) Start(c *gin.Context) {
	var payload request.StartWizardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Start(c.Request.Context(), payload.RecordID)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWizardSession(session))
}

// SetResult records a binary answer on a checkpoint.
func (h *WizardHandler) SetResult(c *gin.Context) {
	var payload request.SetResultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SetResult(c.Request.Context(), c.Param("session_id"), payload.ItemID, payload.Value)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(session))
}

// SetRemark records free text on a checkpoint.
func (h *WizardHandler) SetRemark(c *gin.Context) {
	var payload request.SetRemarkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SetRemark(c.Request.Context(), c.Param("session_id"), payload.ItemID, payload.Text)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(session))
}

// SetMeasurement stages the raw measured value for the current numeric
// checkpoint.
func (h *WizardHandler) SetMeasurement(c *gin.Context) {
	var payload request.SetMeasurementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SetMeasurement(c.Request.Context(), c.Param("session_id"), payload.Value)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(session))
}

// Advance validates the current checkpoint and moves to the next one, or into
// review after the last.
func (h *WizardHandler) Advance(c *gin.Context) {
	session, err := h.usecase.Advance(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(session))
}

// Retreat moves back one checkpoint; earlier answers stay editable.
func (h *WizardHandler) Retreat(c *gin.Context) {
	session, err := h.usecase.Retreat(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(session))
}

// Finish stores the completed answer set and closes the session.
func (h *WizardHandler) Finish(c *gin.Context) {
	var payload request.FinishWizardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Finish(c.Request.Context(), c.Param("session_id"), payload.GlobalRemark)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmissionResult(result))
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWizardSessionNotFound):
		return pkg.NewDomainErrorSimple("WIZARD_SESSION_NOT_FOUND", "Wizard session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Maintenance record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecordAlreadyDone):
		return pkg.NewDomainErrorSimple("RECORD_ALREADY_COMPLETED", "Maintenance record already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrChecklistEmpty):
		return pkg.NewDomainErrorSimple("CHECKLIST_EMPTY", "No checklist items for this part number", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrChecklistItemNotFound):
		return pkg.NewDomainErrorSimple("CHECKLIST_ITEM_NOT_FOUND", "Checklist item not found in session", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidResultValue):
		return pkg.NewDomainErrorSimple("INVALID_RESULT_VALUE", "Result value is not valid for this item type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNumericResultDerived):
		return pkg.NewDomainErrorSimple("NUMERIC_RESULT_DERIVED", "Numeric checkpoints derive their result from the measurement", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRemarkTooLong):
		return pkg.NewDomainErrorSimple("REMARK_TOO_LONG", "Remark exceeds the maximum length", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResultRequired):
		return pkg.NewDomainErrorSimple("RESULT_REQUIRED", "Answer the checkpoint before advancing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRemarkRequired):
		return pkg.NewDomainErrorSimple("REMARK_REQUIRED", "A remark is required for a negative result", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMeasurementRequired):
		return pkg.NewDomainErrorSimple("MEASUREMENT_REQUIRED", "A numeric measurement is required before advancing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAlreadyInReview):
		return pkg.NewDomainErrorSimple("ALREADY_IN_REVIEW", "Wizard is already in review", http.StatusConflict)
	case errors.Is(err, usecase.ErrCannotRetreat):
		return pkg.NewDomainErrorSimple("CANNOT_RETREAT", "Already at the first checkpoint", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotInReview):
		return pkg.NewDomainErrorSimple("NOT_IN_REVIEW", "Wizard has not reached review", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
