package auth

import (
	"context"

	"waitlist/internal/domain/constants"
	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/service"
	"waitlist/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// identityClaims mirrors the subset of Firebase ID token claims the service reads.
type identityClaims struct {
	Email          string `json:"email,omitempty"`
	SignInProvider string `json:"sign_in_provider,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier validates HS256 tokens signed with a shared secret.
type jwtVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(secret, issuer string) (service.IdentityVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Verify parses the token and requires a subject.
func (v *jwtVerifier) Verify(_ context.Context, token string) (*entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &identityClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(service.ErrInvalidIdentityToken, err.Error())
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidIdentityToken, "missing subject")
	}

	return &entity.Identity{
		UID:          claims.Subject,
		Email:        claims.Email,
		GoogleLinked: claims.SignInProvider == constants.SignInProviderGoogle,
	}, nil
}
