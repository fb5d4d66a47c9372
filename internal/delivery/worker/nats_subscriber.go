package worker

import (
	"context"
	"log/slog"
	"sync"

	"waitlist/config"
	"waitlist/internal/delivery"
	"waitlist/internal/delivery/worker/handler"
	"waitlist/internal/errors"
	"waitlist/internal/infra/pubsub"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

const defaultNATSQueue = "waitlist-audit-worker"

// natsSubscriber consumes audit events from a NATS queue group. Core NATS delivers at
// most once, so storage failures are logged and the event is lost.
type natsSubscriber struct {
	url     string
	subject string
	queue   string
	handler *handler.PushHandler
	logger  *slog.Logger

	mu   sync.Mutex
	conn *nats.Conn
	done chan struct{}
}

// NATSSubscriberParams holds dependencies for the NATS subscriber
type NATSSubscriberParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewNATSSubscriber creates the NATS delivery when NATS is configured. Otherwise the
// returned delivery returns immediately from Serve.
func NewNATSSubscriber(params NATSSubscriberParams) (delivery.Delivery, error) {
	cfg := params.Cfg.NATS
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("NATS not configured, subscriber disabled")

		return disabledDelivery{}, nil
	}
	if cfg.Subject == "" {
		return nil, errors.New("nats subject is required")
	}

	queue := cfg.Queue
	if queue == "" {
		queue = defaultNATSQueue
	}

	sub := &natsSubscriber{
		url:     cfg.URL,
		subject: cfg.Subject,
		queue:   queue,
		handler: params.PushHandler,
		logger:  params.Logger,
		done:    make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: sub.stop,
	})

	return sub, nil
}

// Serve subscribes and blocks until the subscriber is stopped or ctx ends
func (s *natsSubscriber) Serve(ctx context.Context) error {
	conn, err := nats.Connect(s.url,
		nats.Name("waitlist-audit-worker"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to connect to NATS at %s", s.url)
	}
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	if _, err := conn.QueueSubscribe(s.subject, s.queue, func(msg *nats.Msg) {
		s.handle(ctx, msg)
	}); err != nil {
		conn.Close()

		return errors.Wrapf(err, "failed to subscribe to %s", s.subject)
	}

	s.logger.Info("Consuming audit events from NATS",
		slog.String("subject", s.subject),
		slog.String("queue", s.queue),
	)

	select {
	case <-ctx.Done():
	case <-s.done:
	}

	return nil
}

func (s *natsSubscriber) handle(ctx context.Context, msg *nats.Msg) {
	var requestID string
	if msg.Header != nil {
		requestID = msg.Header.Get(pubsub.RequestIDHeader)
	}

	if err := s.handler.Process(ctx, msg.Data, requestID); err != nil {
		s.logger.Error("[Worker] Audit event lost", slog.Any("error", err))
	}
}

func (s *natsSubscriber) stop(_ context.Context) error {
	close(s.done)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil || s.conn.IsClosed() {
		return nil
	}

	s.logger.Info("Draining NATS subscriber")

	return errors.WithStack(s.conn.Drain())
}

type disabledDelivery struct{}

func (disabledDelivery) Serve(context.Context) error { return nil }
