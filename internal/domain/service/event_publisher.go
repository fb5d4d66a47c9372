package service

import (
	"context"
	"time"

	"waitlist/internal/domain/entity"
	"waitlist/internal/errors"

	"github.com/google/uuid"
)

// AuditMessage is the wire form of an audit event travelling to the audit worker.
type AuditMessage struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	EventID   string            `json:"event_id"`
	UID       string            `json:"uid,omitempty"`
	Type      string            `json:"type"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewAuditMessage converts an audit event into its wire form.
func NewAuditMessage(event *entity.AuditEvent) *AuditMessage {
	msg := &AuditMessage{
		RequestID: event.RequestID,
		EventID:   event.ID.String(),
		Type:      string(event.Type),
		Metadata:  event.Metadata,
		CreatedAt: event.CreatedAt,
	}
	if event.UID != nil {
		msg.UID = *event.UID
	}

	return msg
}

// ToEvent converts the wire form back into an audit event.
func (m *AuditMessage) ToEvent() (*entity.AuditEvent, error) {
	id, err := uuid.Parse(m.EventID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid event id %q", m.EventID)
	}
	if m.Type == "" {
		return nil, errors.New("audit message has no type")
	}

	event := &entity.AuditEvent{
		ID:        id,
		Type:      entity.AuditEventType(m.Type),
		Metadata:  m.Metadata,
		RequestID: m.RequestID,
		CreatedAt: m.CreatedAt,
	}
	if m.UID != "" {
		uid := m.UID
		event.UID = &uid
	}

	return event, nil
}

// EventPublisher defines the interface for shipping audit events to their sink
type EventPublisher interface {
	// PublishAuditEvent hands an audit event to the configured transport
	PublishAuditEvent(ctx context.Context, msg *AuditMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
