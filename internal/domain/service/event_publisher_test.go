package service

import (
	"testing"
	"time"

	"waitlist/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditMessage_ToEventKeepsIdentity(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := entity.NewAuditEvent(entity.AuditEventSignup, "uid-1", map[string]string{"username": "alice"}, now)
	event.RequestID = "req-1"

	got, err := NewAuditMessage(event).ToEvent()
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, "uid-1", *got.UID)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, entity.AuditEventSignup, got.Type)
}

func TestAuditMessage_ToEventWithoutUID(t *testing.T) {
	event := entity.NewAuditEvent(entity.AuditEventError, "", nil, time.Now())

	msg := NewAuditMessage(event)
	assert.Empty(t, msg.UID)

	got, err := msg.ToEvent()
	require.NoError(t, err)
	assert.Nil(t, got.UID)
}

func TestAuditMessage_ToEventRejectsMalformed(t *testing.T) {
	_, err := (&AuditMessage{EventID: "not-a-uuid", Type: "signup"}).ToEvent()
	assert.Error(t, err)

	_, err = (&AuditMessage{EventID: "7f1b8a4e-3c2d-4e5f-9a6b-1c2d3e4f5a6b"}).ToEvent()
	assert.Error(t, err)
}
