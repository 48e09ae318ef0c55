package interfaces

import (
	"context"
	"fieldserve/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for engineer accounts.
// BindDevice registers the first mobile device an account logs in from;
// subsequent logins must present the same device id.

type IUserRepository interface {
	GetByEmployeeCode(ctx context.Context, employeeCode string) (entities.User, error)
	BindDevice(ctx context.Context, employeeCode, deviceID string) (entities.User, error)
}
