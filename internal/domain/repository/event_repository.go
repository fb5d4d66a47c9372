package repository

import (
	"context"

	"waitlist/internal/domain/entity"
)

// EventRepository is the append-only audit event sink.
type EventRepository interface {
	// Append stores an event. Appending an id that already exists is a no-op.
	Append(ctx context.Context, event *entity.AuditEvent) error
}
