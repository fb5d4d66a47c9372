// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// ProfileStatus controls whether a profile takes part in ranking.
type ProfileStatus string

const (
	ProfileStatusActive  ProfileStatus = "active"
	ProfileStatusPending ProfileStatus = "pending"
	ProfileStatusBanned  ProfileStatus = "banned"
)

// String returns the string representation of the ProfileStatus.
func (s ProfileStatus) String() string {
	return string(s)
}

// IsValid checks if the ProfileStatus is a valid value.
func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfileStatusActive, ProfileStatusPending, ProfileStatusBanned:
		return true
	default:
		return false
	}
}

// PointsField names one of the three point sources that roll up into the total.
type PointsField string

const (
	PointsFromSignup    PointsField = "signup"
	PointsFromReferrals PointsField = "referrals"
	PointsFromLoops     PointsField = "loops"
)

// IsValid checks if the PointsField is a valid value.
func (f PointsField) IsValid() bool {
	switch f {
	case PointsFromSignup, PointsFromReferrals, PointsFromLoops:
		return true
	default:
		return false
	}
}

// Points is the ledger of a single profile. Total always equals the sum of the sources.
type Points struct {
	Total         int64
	FromSignup    int64
	FromReferrals int64
	FromLoops     int64
}

// Consistent reports whether Total matches the sum of the three sources.
func (p Points) Consistent() bool {
	return p.Total == p.FromSignup+p.FromReferrals+p.FromLoops
}

// Add credits amount to field and to the total.
func (p *Points) Add(field PointsField, amount int64) {
	switch field {
	case PointsFromSignup:
		p.FromSignup += amount
	case PointsFromReferrals:
		p.FromReferrals += amount
	case PointsFromLoops:
		p.FromLoops += amount
	default:
		return
	}
	p.Total += amount
}

// UserProfile is one participant of the waitlist, keyed by the identity provider uid.
type UserProfile struct {
	UID              string        // Identity key issued by the identity provider; never changes.
	Email            string        // Email claim of the verified identity.
	GoogleLinked     bool          // Whether the identity signed in with Google.
	Username         string        // Lowercase handle, unique across profiles.
	TelegramHandle   *string       // Optional handle supplied at signup.
	TelegramLinked   bool          // Reserved until Telegram linking exists.
	ReferralCode     string        // Code other users sign up with; unique and immutable.
	ReferredByCode   *string       // Code this user signed up with, if it resolved.
	ReferredByUID    *string       // Referrer's uid, set together with ReferredByCode.
	Points           Points        // Point ledger.
	Status           ProfileStatus // Only active profiles are ranked.
	WaitlistPosition *int          // Reserved for manual waitlist ordering.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUserProfile builds an active profile credited with the signup bonus.
func NewUserProfile(identity *Identity, username, referralCode string, signupBonus int64, now time.Time) *UserProfile {
	profile := &UserProfile{
		UID:          identity.UID,
		Email:        identity.Email,
		GoogleLinked: identity.GoogleLinked,
		Username:     username,
		ReferralCode: referralCode,
		Status:       ProfileStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile.Points.Add(PointsFromSignup, signupBonus)

	return profile
}

// SetReferrer records who referred this profile. Only meaningful before the profile is persisted.
func (p *UserProfile) SetReferrer(code, uid string) {
	p.ReferredByCode = &code
	p.ReferredByUID = &uid
}

// IsActive reports whether the profile is ranked.
func (p *UserProfile) IsActive() bool {
	return p.Status == ProfileStatusActive
}

// Summary projects the profile onto its public leaderboard shape.
func (p *UserProfile) Summary() UserSummary {
	return UserSummary{
		UID:                 p.UID,
		Username:            p.Username,
		PointsTotal:         p.Points.Total,
		PointsFromSignup:    p.Points.FromSignup,
		PointsFromReferrals: p.Points.FromReferrals,
		PointsFromLoops:     p.Points.FromLoops,
	}
}
