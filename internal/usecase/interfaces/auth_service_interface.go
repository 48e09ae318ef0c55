package interfaces

import "fieldserve/internal/domain/entities"

// IAuthService abstracts credential checking and session token handling.
type IAuthService interface {
	CheckPassword(password, hash string) bool
	GenerateToken(user entities.User) (string, error)
	ValidateToken(token string) (*entities.Claims, error)
}
