// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"waitlist/internal/domain/entity"
)

// SignupUsecase creates the waitlist profile for a verified identity.
type SignupUsecase interface {
	// CompleteSignup persists the profile with its signup bonus and attributes the
	// signup to the referrer when a code is given. It fails with ErrAlreadyOnboarded
	// when the identity already owns a profile.
	CompleteSignup(ctx context.Context, identity *entity.Identity, input *CompleteSignupInput) (*SignupResult, error)
}

// --- Input DTOs ---

// CompleteSignupInput defines the data a new member submits.
type CompleteSignupInput struct {
	Username       string
	TelegramHandle *string
	ReferrerCode   *string
}

// --- Output DTOs ---

// SignupResult carries the referral code assigned to the new profile.
type SignupResult struct {
	ReferralCode string
	Referral     *entity.ReferralResult
}
