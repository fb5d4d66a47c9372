package service

import (
	"context"

	"waitlist/internal/domain/entity"
	"waitlist/internal/errors"
)

// ErrInvalidIdentityToken is returned when a bearer token cannot be verified.
var ErrInvalidIdentityToken = errors.New("invalid identity token")

// IdentityVerifier turns a bearer token into a verified identity
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
