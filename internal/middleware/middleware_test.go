package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"perpus/internal/auth"
	"perpus/internal/model"
)

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func sessionToken(role string) *jwt.Token {
	return &jwt.Token{Claims: &auth.Claims{
		UserID: 1,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "token-id",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}}
}

func TestRequireSession(t *testing.T) {
	t.Run("valid token passes and claims are exposed", func(t *testing.T) {
		tokenStore := new(MockTokenStore)
		tokenStore.On("IsTokenRevoked", mock.Anything, "token-id").Return(false, nil)

		c := newTestContext()
		c.Set("user", sessionToken(model.RoleUser))

		err := RequireSession(tokenStore)(func(c echo.Context) error {
			claims, ok := CurrentClaims(c)
			assert.True(t, ok)
			assert.Equal(t, uint(1), claims.UserID)
			return okHandler(c)
		})(c)

		assert.NoError(t, err)
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		tokenStore := new(MockTokenStore)
		tokenStore.On("IsTokenRevoked", mock.Anything, "token-id").Return(true, nil)

		c := newTestContext()
		c.Set("user", sessionToken(model.RoleUser))

		err := RequireSession(tokenStore)(okHandler)(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		c := newTestContext()

		err := RequireSession(new(MockTokenStore))(okHandler)(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	setClaims := func(c echo.Context, role string) {
		c.Set(claimsKey, &auth.Claims{UserID: 1, Role: role})
	}

	t.Run("petugas passes the petugas gate", func(t *testing.T) {
		c := newTestContext()
		setClaims(c, model.RolePetugas)

		assert.NoError(t, RequirePetugas()(okHandler)(c))
	})

	t.Run("plain user is rejected", func(t *testing.T) {
		c := newTestContext()
		setClaims(c, model.RoleUser)

		err := RequirePetugas()(okHandler)(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("missing claims rejected", func(t *testing.T) {
		c := newTestContext()

		err := RequireRole(model.RolePetugas)(okHandler)(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
