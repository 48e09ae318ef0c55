package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"fieldserve/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Service handles password hashing and session tokens. The token carries the
// session expiry; nothing else tracks it.
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration
}

// NewService reads JWT_SECRET and JWT_EXPIRY from the environment.
func NewService() *Service {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-change-in-production"
	}

	exp := 12 * time.Hour
	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			exp = parsed
		}
	}

	return &Service{jwtSecret: []byte(secret), tokenExp: exp}
}

// HashPassword hashes a password using bcrypt.
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword checks if a password matches a hash.
func (s *Service) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken issues the session JWT for an engineer.
func (s *Service) GenerateToken(user entities.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":       user.ID,
		"employee_code": user.EmployeeCode,
		"name":          user.Name,
		"exp":           time.Now().Add(s.tokenExp).Unix(),
		"iat":           time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*entities.Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	employeeCode, ok := claims["employee_code"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	name, _ := claims["name"].(string)
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &entities.Claims{
		UserID:       userID,
		EmployeeCode: employeeCode,
		Name:         name,
		Exp:          int64(exp),
	}, nil
}
