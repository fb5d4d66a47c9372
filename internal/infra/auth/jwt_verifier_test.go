package auth

import (
	"context"
	"testing"
	"time"

	"waitlist/internal/domain/service"
	"waitlist/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func signToken(t *testing.T, method jwt.SigningMethod, secret any, claims identityClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)

	return token
}

func validClaims() identityClaims {
	return identityClaims{
		Email:          "alice@example.com",
		SignInProvider: "google.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid-alice",
			Issuer:    "waitlist-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	verifier, err := NewJWTVerifier("", "")
	assert.Error(t, err)
	assert.Nil(t, verifier)
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "waitlist-test")
	require.NoError(t, err)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "uid-alice", identity.UID)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.True(t, identity.GoogleLinked)
}

func TestJWTVerifier_PasswordSignInIsNotGoogleLinked(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "")
	require.NoError(t, err)

	claims := validClaims()
	claims.SignInProvider = "password"

	identity, err := verifier.Verify(context.Background(), signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
	require.NoError(t, err)
	assert.False(t, identity.GoogleLinked)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "waitlist-test")
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"

	noSubject := validClaims()
	noSubject.Subject = ""

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("another_secret"), validClaims())},
		{name: "wrong algorithm", token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims())},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{name: "wrong issuer", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongIssuer)},
		{name: "missing subject", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject)},
		{name: "missing expiry", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.Verify(context.Background(), tt.token)
			require.Error(t, err)
			assert.Nil(t, identity)
			assert.True(t, errors.Is(err, service.ErrInvalidIdentityToken))
		})
	}
}
