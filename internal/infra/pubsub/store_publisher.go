package pubsub

import (
	"context"

	"waitlist/internal/domain/repository"
	"waitlist/internal/domain/service"
)

// storePublisher writes audit events straight to the event repository,
// for deployments that run without a separate audit worker
type storePublisher struct {
	events repository.EventRepository
}

// NewStorePublisher creates a publisher backed by the event repository
func NewStorePublisher(events repository.EventRepository) service.EventPublisher {
	return &storePublisher{events: events}
}

func (p *storePublisher) PublishAuditEvent(ctx context.Context, msg *service.AuditMessage) error {
	event, err := msg.ToEvent()
	if err != nil {
		return err
	}

	return p.events.Append(ctx, event)
}

func (p *storePublisher) Close() error {
	return nil
}
