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

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler handles engineer login from the mobile app.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login authenticates an engineer and returns a session token. The device id
// sent by the app is bound to the account on first login; later logins from a
// different device are rejected.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.EmployeeCode, payload.Password, payload.DeviceID)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(token, user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid employee code or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccountDeactivated):
		return pkg.NewDomainErrorSimple("ACCOUNT_DEACTIVATED", "Account is deactivated", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMobileAccessDenied):
		return pkg.NewDomainErrorSimple("MOBILE_ACCESS_DENIED", "Mobile access is not enabled for this account", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDeviceMismatch):
		return pkg.NewDomainErrorSimple("DEVICE_MISMATCH", "Account is registered to a different device", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
