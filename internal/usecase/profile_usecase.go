package usecase

import (
	"context"

	"waitlist/internal/domain/entity"
)

// ProfileUsecase serves the member dashboard and public invite pages.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, uid string) (*ProfileView, error)
	ListReferrals(ctx context.Context, uid string) ([]*entity.ReferredUser, error)
	ResolveInvite(ctx context.Context, code string) (*Invite, error)
	InviteQR(ctx context.Context, uid string) ([]byte, error)
}

// --- Output DTOs ---

// ProfileView is a member's own profile with the link they share.
type ProfileView struct {
	Profile   *entity.UserProfile
	InviteURL string
}

// Invite is the public view of a referral code owner.
type Invite struct {
	Username     string
	ReferralCode string
}
