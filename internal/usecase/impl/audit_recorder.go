package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "waitlist/internal/delivery/context"
	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/service"
)

// auditRecorder emits best-effort audit events. Failures are logged and never
// returned, and the emission has its own deadline detached from the request.
type auditRecorder struct {
	publisher service.EventPublisher
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func newAuditRecorder(publisher service.EventPublisher, timeout time.Duration, logger *slog.Logger) *auditRecorder {
	return &auditRecorder{
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

func (r *auditRecorder) record(ctx context.Context, eventType entity.AuditEventType, uid string, metadata map[string]string) {
	event := entity.NewAuditEvent(eventType, uid, metadata, r.now().UTC())
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	emitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	if err := r.publisher.PublishAuditEvent(emitCtx, service.NewAuditMessage(event)); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Failed to emit audit event",
			slog.String("type", string(eventType)),
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)
	}
}
