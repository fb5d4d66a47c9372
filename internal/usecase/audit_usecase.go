package usecase

import (
	"context"

	"waitlist/internal/domain/service"
)

// AuditUsecase persists audit events delivered by the event transport.
type AuditUsecase interface {
	// RecordAuditEvent appends the event. Redelivered events are ignored.
	RecordAuditEvent(ctx context.Context, msg *service.AuditMessage) error
}

// LedgerAuditUsecase checks the points invariant across all profiles.
type LedgerAuditUsecase interface {
	// CheckPointsLedger reports how many profiles have a total that differs from
	// the sum of their point sources.
	CheckPointsLedger(ctx context.Context) (int, error)
}
