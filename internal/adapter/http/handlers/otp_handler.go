package handlers

import (
	"errors"
	"net/http"

	request "fieldserve/internal/adapter/http/dto/request"
	"fieldserve/internal/usecase"
	"fieldserve/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOtpPayload = pkg.NewDomainErrorSimple("INVALID_OTP_INPUT", "Invalid OTP payload", http.StatusBadRequest)

// OtpHandler issues and verifies the customer authorization codes that gate
// batch submission.

type OtpHandler struct {
	usecase usecase.IOtpUseCase
}

func NewOtpHandler(uc usecase.IOtpUseCase) *OtpHandler {
	return &OtpHandler{usecase: uc}
}

// RequestCode generates a fresh code for the customer and sends it through
// the mail relay. A re-request replaces any live challenge.
func (h *OtpHandler) RequestCode(c *gin.Context) {
	var payload request.RequestOtpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOtpPayload.HTTPStatus, errInvalidOtpPayload.ToHTTPError())
		return
	}

	if err := h.usecase.RequestCode(c.Request.Context(), payload.CustomerCode); err != nil {
		appErr := mapOtpError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}

// VerifyCode checks the submitted code against the live challenge.
func (h *OtpHandler) VerifyCode(c *gin.Context) {
	var payload request.VerifyOtpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOtpPayload.HTTPStatus, errInvalidOtpPayload.ToHTTPError())
		return
	}

	if err := h.usecase.VerifyCode(c.Request.Context(), payload.CustomerCode, payload.Code); err != nil {
		appErr := mapOtpError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "verified"})
}

func mapOtpError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerCode):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_CODE", "Invalid customer code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOtpCodeRequired):
		return pkg.NewDomainErrorSimple("OTP_CODE_REQUIRED", "Enter the code before verifying", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOtpChallengeNotFound):
		return pkg.NewDomainErrorSimple("OTP_NOT_REQUESTED", "No code was requested for this customer", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOtpExpired):
		return pkg.NewDomainErrorSimple("OTP_EXPIRED", "The code has expired, request a new one", http.StatusGone)
	case errors.Is(err, usecase.ErrOtpMismatch):
		return pkg.NewDomainErrorSimple("OTP_MISMATCH", "The code does not match", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
