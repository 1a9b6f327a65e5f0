package token

import (
	"testing"
	"time"
	
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(testSecret)
	require.NoError(t, err)
	
	token, issued, err := maker.CreateToken("user-1", "a@example.com", "user", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	
	payload, err := maker.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.Identity())
	assert.Equal(t, "a@example.com", payload.Email)
	assert.Equal(t, issued.ID, payload.ID)
}

func TestJWTMakerExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecret)
	require.NoError(t, err)
	
	token, _, err := maker.CreateToken("user-1", "", "user", -time.Minute)
	require.NoError(t, err)
	
	_, err = maker.VerifyToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTMakerRejects(t *testing.T) {
	maker, err := NewJWTMaker(testSecret)
	require.NoError(t, err)
	
	other, err := NewJWTMaker("another-secret")
	require.NoError(t, err)
	foreign, _, err := other.CreateToken("user-1", "", "user", time.Minute)
	require.NoError(t, err)
	
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Payload{
		UserID: "user-1",
		Type:   tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Payload{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Payload{UserID: "user-1"}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	
	for name, token := range map[string]string{
		"garbage":   "not-a-token",
		"foreign":   foreign,
		"refresh":   refresh,
		"alg none":  unsigned,
		"no expiry": noExpiry,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := maker.VerifyToken(token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewJWTMakerRequiresSecret(t *testing.T) {
	_, err := NewJWTMaker("")
	require.Error(t, err)
}
