package usecase

import (
	"context"

	"waitlist/internal/domain/entity"
)

// ReferralUsecase records referral edges and pays referral and loop bonuses.
type ReferralUsecase interface {
	// AttributeReferral links referredUID to the owner of referrerCode at most once.
	// Unknown codes and self-referrals yield NoAttribution without an error.
	AttributeReferral(ctx context.Context, referrerCode, referredUID, referredUsername string) (*entity.ReferralResult, error)
}
