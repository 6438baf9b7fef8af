package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"perpus/internal/model"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenID, token, expiresAt, err := svc.GenerateToken(42, "budi@mail.co", model.RolePetugas)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "budi@mail.co", claims.Email)
	assert.Equal(t, model.RolePetugas, claims.Role)
	assert.Equal(t, tokenID, claims.ID)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret")
	_, token, _, err := svc.GenerateToken(42, "budi@mail.co", model.RoleUser)
	assert.NoError(t, err)

	other := NewJWTService("another-secret")
	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret")
	claims, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := NewJWTService("test-secret")
	first, _, _, err := svc.GenerateToken(1, "a@mail.co", model.RoleUser)
	assert.NoError(t, err)
	second, _, _, err := svc.GenerateToken(1, "a@mail.co", model.RoleUser)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
