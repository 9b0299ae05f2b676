package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	mgr := NewManager(TokenConfig{Secret: []byte("secret")})
	user := User{ID: uuid.New(), DisplayName: "Student", Role: "student"}

	token, err := mgr.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.DisplayName, claims.DisplayName)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, "mindplay", claims.Issuer)
}

func TestTokenWrongSecret(t *testing.T) {
	mgr := NewManager(TokenConfig{Secret: []byte("secret")})
	token, err := mgr.GenerateToken(User{ID: uuid.New(), Role: "student"})
	assert.NoError(t, err)

	other := NewManager(TokenConfig{Secret: []byte("different")})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	mgr := NewManager(TokenConfig{Secret: []byte("secret"), TTL: -time.Minute})
	token, err := mgr.GenerateToken(User{ID: uuid.New(), Role: "student"})
	assert.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
