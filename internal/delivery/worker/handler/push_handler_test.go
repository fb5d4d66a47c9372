package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waitlist/config"
	deliverycontext "waitlist/internal/delivery/context"
	"waitlist/internal/domain/entity"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/service"
	mockUsecase "waitlist/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockAuditUsecase) {
	t.Helper()

	auditUC := mockUsecase.NewMockAuditUsecase(t)
	cfg := &config.Config{}
	cfg.PubSub = &config.PubSubConfig{Provider: "local"}

	return NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuditUC: auditUC,
	}), auditUC
}

func auditPayload(t *testing.T) []byte {
	t.Helper()

	event := entity.NewAuditEvent(entity.AuditEventSignup, "alice", map[string]string{"username": "alice"}, time.Now())
	event.RequestID = "req-from-event"

	data, err := json.Marshal(service.NewAuditMessage(event))
	require.NoError(t, err)

	return data
}

func push(t *testing.T, h *PushHandler, data string, attributes map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))

	return rec
}

func TestPushHandler_RecordsEvent(t *testing.T) {
	h, auditUC := newTestPushHandler(t)
	payload := auditPayload(t)

	auditUC.EXPECT().
		RecordAuditEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, msg *service.AuditMessage) error {
			assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, "alice", msg.UID)
			assert.Equal(t, string(entity.AuditEventSignup), msg.Type)

			return nil
		})

	rec := push(t, h, base64.StdEncoding.EncodeToString(payload), map[string]string{"request_id": "req-from-attributes"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_FallsBackToEventRequestID(t *testing.T) {
	h, auditUC := newTestPushHandler(t)

	auditUC.EXPECT().
		RecordAuditEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.AuditMessage) error {
			assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := push(t, h, base64.StdEncoding.EncodeToString(auditPayload(t)), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadData(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := push(t, h, "%%%not-base64", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_DropsInvalidMessages(t *testing.T) {
	h, auditUC := newTestPushHandler(t)
	auditUC.EXPECT().
		RecordAuditEvent(mock.Anything, mock.Anything).
		Return(domainerrors.ErrValidationFailed.WithDetails("invalid event id"))

	rec := push(t, h, base64.StdEncoding.EncodeToString(auditPayload(t)), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetriesStoreFailures(t *testing.T) {
	h, auditUC := newTestPushHandler(t)
	auditUC.EXPECT().RecordAuditEvent(mock.Anything, mock.Anything).Return(assert.AnError)

	rec := push(t, h, base64.StdEncoding.EncodeToString(auditPayload(t)), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_Process(t *testing.T) {
	t.Run("undecodable payload is dropped", func(t *testing.T) {
		h, _ := newTestPushHandler(t)

		assert.NoError(t, h.Process(context.Background(), []byte("{"), ""))
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		h, auditUC := newTestPushHandler(t)
		auditUC.EXPECT().RecordAuditEvent(mock.Anything, mock.Anything).Return(assert.AnError)

		err := h.Process(context.Background(), auditPayload(t), "")

		require.Error(t, err)
		assert.True(t, IsRetryable(err))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNewPushHandler_VerifiesGooglePushOutsideDevelop(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "production"
	cfg.PubSub = &config.PubSubConfig{Provider: "google"}

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.True(t, h.verifyPushAuth)

	cfg.Env.Env = "develop"
	h = NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.False(t, h.verifyPushAuth)
}
