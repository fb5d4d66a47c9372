// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"waitlist/internal/domain/entity"
	"waitlist/internal/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile exists for a uid or code.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileAlreadyExists is returned when the identity already owns a profile.
	ErrProfileAlreadyExists = errors.New("profile already exists")
	// ErrUsernameTaken is returned when the lowercase username is in use.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrReferralCodeTaken is returned when a generated code collides at write time.
	ErrReferralCodeTaken = errors.New("referral code already taken")
)

// ProfileRepository defines the interface for user profile persistence.
type ProfileRepository interface {
	// Create persists a new profile. The identity, username and referral code checks
	// and the write are one atomic unit.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// FindByUID retrieves a profile by its identity key.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// FindByReferralCode retrieves the profile that owns a referral code.
	FindByReferralCode(ctx context.Context, code string) (*entity.UserProfile, error)

	// ExistsUsername reports whether a lowercase username is in use.
	ExistsUsername(ctx context.Context, username string) (bool, error)

	// ExistsReferralCode reports whether a referral code is in use.
	ExistsReferralCode(ctx context.Context, code string) (bool, error)

	// IncrementPoints atomically adds amount to field and to the total in a single update.
	IncrementPoints(ctx context.Context, uid string, field entity.PointsField, amount int64) error

	// ListActive returns all active profiles ordered by creation time, then uid.
	ListActive(ctx context.Context) ([]*entity.UserProfile, error)

	// FindUsernamesByUIDs maps uids to usernames; unknown uids are omitted.
	FindUsernamesByUIDs(ctx context.Context, uids []string) (map[string]string, error)

	// FindInconsistentPoints returns profiles whose total differs from the sum of its sources.
	FindInconsistentPoints(ctx context.Context) ([]*entity.UserProfile, error)
}
