package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldserve/internal/domain/entities"
	mock_interfaces "fieldserve/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authTestRouter(t *testing.T) (*gin.Engine, *mock_interfaces.MockIAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock_interfaces.NewMockIAuthService(ctrl)

	r := gin.New()
	r.GET("/protected", RequireAuth(auth), func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no claims"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"employee_code": claims.EmployeeCode})
	})
	return r, auth
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		r, _ := authTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("header without bearer prefix", func(t *testing.T) {
		r, _ := authTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "token-without-prefix")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r, auth := authTestRouter(t)
		auth.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("invalid token"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token injects claims", func(t *testing.T) {
		r, auth := authTestRouter(t)
		auth.EXPECT().ValidateToken("good-token").Return(&entities.Claims{UserID: "u-1", EmployeeCode: "ENG-7"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"employee_code":"ENG-7"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})
}

func TestClaimsFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := ClaimsFrom(c); ok {
		t.Fatalf("expected no claims on a bare context")
	}

	c.Set(ClaimsKey, "not-claims")
	if _, ok := ClaimsFrom(c); ok {
		t.Fatalf("expected type mismatch to be rejected")
	}

	c.Set(ClaimsKey, &entities.Claims{EmployeeCode: "ENG-7"})
	claims, ok := ClaimsFrom(c)
	if !ok || claims.EmployeeCode != "ENG-7" {
		t.Fatalf("expected claims to round-trip, got %+v ok=%v", claims, ok)
	}
}
