package entities

import "time"

// User is a field engineer account.
//
// Storage model (DynamoDB):
//   - PK: employee_code
//
// DeviceID is the single registered mobile device; logins from another device
// are rejected with DEVICE_MISMATCH. MobileAccess gates app logins entirely.

type User struct {
	ID           string    `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DeviceID     string    `json:"device_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	MobileAccess bool      `json:"mobile_access"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims is the authenticated session carried in the JWT and injected into
// request context by the auth middleware.

type Claims struct {
	UserID       string `json:"user_id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Exp          int64  `json:"exp"`
}
