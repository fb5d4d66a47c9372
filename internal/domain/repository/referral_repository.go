package repository

import (
	"context"

	"waitlist/internal/domain/entity"
	"waitlist/internal/errors"
)

// ErrReferralNotFound is returned when no edge exists for a key.
var ErrReferralNotFound = errors.New("referral not found")

// ReferralRepository defines the interface for referral edge persistence.
type ReferralRepository interface {
	// CreateIfAbsent stores the edge at its deterministic key unless one already exists.
	// It reports whether this call created the edge.
	CreateIfAbsent(ctx context.Context, edge *entity.ReferralEdge) (bool, error)

	// FindByID retrieves an edge by its deterministic key.
	FindByID(ctx context.Context, id string) (*entity.ReferralEdge, error)

	// MarkLoopBonusGiven flips loopBonusGiven to true only while it is false.
	// It reports whether this call performed the flip.
	MarkLoopBonusGiven(ctx context.Context, id string) (bool, error)

	// ListByReferrer returns the edges created by a referrer, newest first.
	ListByReferrer(ctx context.Context, referrerUID string) ([]*entity.ReferralEdge, error)
}
