package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrMobileAccessDenied = errors.New("mobile access denied")
	ErrDeviceMismatch     = errors.New("device mismatch")
)

// IAuthUseCase authenticates an engineer and issues the session token. The
// token carries expiry; there is no separate session state to poll.

type IAuthUseCase interface {
	Login(ctx context.Context, employeeCode, password, deviceID string) (string, entities.User, error)
}

type AuthUseCase struct {
	users interfaces.IUserRepository
	auth  interfaces.IAuthService
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, auth interfaces.IAuthService) *AuthUseCase {
	return &AuthUseCase{users: users, auth: auth}
}

func (u *AuthUseCase) Login(ctx context.Context, employeeCode, password, deviceID string) (string, entities.User, error) {
	employeeCode = strings.TrimSpace(employeeCode)
	deviceID = strings.TrimSpace(deviceID)
	if employeeCode == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" || !u.auth.CheckPassword(password, user.PasswordHash) {
		log.Printf("[auth][usecase] login rejected employee_code=%s", employeeCode)
		return "", entities.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", entities.User{}, ErrAccountDeactivated
	}
	if !user.MobileAccess {
		return "", entities.User{}, ErrMobileAccessDenied
	}

	if deviceID != "" {
		switch {
		case user.DeviceID == "":
			// First mobile login binds the device.
			user, err = u.users.BindDevice(ctx, employeeCode, deviceID)
			if err != nil {
				return "", entities.User{}, err
			}
			log.Printf("[auth][usecase] device bound employee_code=%s", employeeCode)
		case user.DeviceID != deviceID:
			log.Printf("[auth][usecase] device mismatch employee_code=%s", employeeCode)
			return "", entities.User{}, ErrDeviceMismatch
		}
	}

	token, err := u.auth.GenerateToken(user)
	if err != nil {
		return "", entities.User{}, err
	}
	log.Printf("[auth][usecase] login success employee_code=%s", employeeCode)
	return token, user, nil
}
