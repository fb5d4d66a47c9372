package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditEventType classifies append-only audit records.
type AuditEventType string

const (
	AuditEventSignup            AuditEventType = "signup"
	AuditEventReferralConfirmed AuditEventType = "referral_confirmed"
	AuditEventError             AuditEventType = "error"
)

// AuditEvent is an append-only record; nothing in the service reads it back.
type AuditEvent struct {
	ID        uuid.UUID
	UID       *string
	Type      AuditEventType
	Metadata  map[string]string
	RequestID string
	CreatedAt time.Time
}

// NewAuditEvent stamps a new event with a fresh id.
func NewAuditEvent(eventType AuditEventType, uid string, metadata map[string]string, now time.Time) *AuditEvent {
	event := &AuditEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Metadata:  metadata,
		CreatedAt: now,
	}
	if uid != "" {
		event.UID = &uid
	}

	return event
}
