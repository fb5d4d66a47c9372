package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"waitlist/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewNATSSubscriber(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("disabled without url", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		sub, err := NewNATSSubscriber(NATSSubscriberParams{Lc: lc, Cfg: &config.Config{}, Logger: logger})

		require.NoError(t, err)
		assert.NoError(t, sub.Serve(context.Background()))
	})

	t.Run("requires subject", func(t *testing.T) {
		cfg := &config.Config{NATS: &config.NATSConfig{URL: "nats://127.0.0.1:4222"}}

		_, err := NewNATSSubscriber(NATSSubscriberParams{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: logger})

		assert.Error(t, err)
	})

	t.Run("defaults queue and stops cleanly", func(t *testing.T) {
		cfg := &config.Config{NATS: &config.NATSConfig{URL: "nats://127.0.0.1:4222", Subject: "audit"}}
		lc := fxtest.NewLifecycle(t)

		sub, err := NewNATSSubscriber(NATSSubscriberParams{Lc: lc, Cfg: cfg, Logger: logger})
		require.NoError(t, err)

		natsSub, ok := sub.(*natsSubscriber)
		require.True(t, ok)
		assert.Equal(t, defaultNATSQueue, natsSub.queue)

		lc.RequireStart().RequireStop()
	})
}
