package response

import (
	"fieldserve/internal/domain/entities"
)

type LoginResponse struct {
	Token        string `json:"token"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}

func FromLogin(token string, u entities.User) LoginResponse {
	return LoginResponse{
		Token:        token,
		EmployeeCode: u.EmployeeCode,
		Name:         u.Name,
		Email:        u.Email,
	}
}
