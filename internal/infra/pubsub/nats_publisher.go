package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"waitlist/internal/domain/service"
	"waitlist/internal/errors"

	"github.com/nats-io/nats.go"
)

// RequestIDHeader carries the originating request id on NATS messages
const RequestIDHeader = "X-Request-Id"

// natsPublisher implements EventPublisher on a core NATS subject
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to NATS and publishes audit events on subject
func NewNATSPublisher(url, subject string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("waitlist-audit-publisher"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to NATS at %s", url)
	}

	logger.Info("NATS publisher initialized",
		slog.String("url", url),
		slog.String("subject", subject),
	)

	return &natsPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}, nil
}

// PublishAuditEvent publishes the event and flushes so the server has it before returning
func (p *natsPublisher) PublishAuditEvent(ctx context.Context, msg *service.AuditMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	natsMsg := nats.NewMsg(p.subject)
	natsMsg.Data = data
	if msg.RequestID != "" {
		natsMsg.Header.Set(RequestIDHeader, msg.RequestID)
	}

	if err := p.conn.PublishMsg(natsMsg); err != nil {
		return errors.Wrap(err, "failed to publish audit event")
	}

	if err := p.conn.FlushWithContext(ctx); err != nil {
		return errors.Wrap(err, "failed to flush NATS connection")
	}

	return nil
}

// Close drains pending messages before closing the connection
func (p *natsPublisher) Close() error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}

	return errors.WithStack(p.conn.Drain())
}
