package entity

import "time"

// ReferralStatus is the lifecycle state of a referral edge.
// Edges are created confirmed; pending and invalid are reserved for review flows.
type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusConfirmed ReferralStatus = "confirmed"
	ReferralStatusInvalid   ReferralStatus = "invalid"
)

// String returns the string representation of the ReferralStatus.
func (s ReferralStatus) String() string {
	return string(s)
}

// ReferralEdge links a referrer to the user who signed up with their code.
type ReferralEdge struct {
	ID             string
	ReferrerUID    string
	ReferredUID    string
	ReferrerCode   string
	Status         ReferralStatus
	LoopBonusGiven bool
	CreatedAt      time.Time
	ConfirmedAt    *time.Time
}

// ReferralEdgeID is the deterministic key of the edge between referrer and referred.
// Using it as the primary key makes edge creation idempotent.
func ReferralEdgeID(referrerUID, referredUID string) string {
	return referrerUID + "_" + referredUID
}

// NewConfirmedReferralEdge builds a confirmed edge with the loop bonus still unpaid.
func NewConfirmedReferralEdge(referrerUID, referredUID, referrerCode string, now time.Time) *ReferralEdge {
	return &ReferralEdge{
		ID:           ReferralEdgeID(referrerUID, referredUID),
		ReferrerUID:  referrerUID,
		ReferredUID:  referredUID,
		ReferrerCode: referrerCode,
		Status:       ReferralStatusConfirmed,
		CreatedAt:    now,
		ConfirmedAt:  &now,
	}
}

// ReferralOutcome is the result kind of an attribution attempt.
type ReferralOutcome string

const (
	ReferralNoAttribution     ReferralOutcome = "no_attribution"
	ReferralAlreadyAttributed ReferralOutcome = "already_attributed"
	ReferralAttributed        ReferralOutcome = "attributed"
)

// ReferralResult reports what an attribution attempt did.
type ReferralResult struct {
	Outcome       ReferralOutcome
	ReferrerUID   string
	LoopBonusPaid bool
	AncestorUID   string
}

// ReferredUser is a row of the caller's referral list.
type ReferredUser struct {
	Username    string
	Status      ReferralStatus
	CreatedAt   time.Time
	ConfirmedAt *time.Time
}
