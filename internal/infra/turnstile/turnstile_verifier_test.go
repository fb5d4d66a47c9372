package turnstile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"waitlist/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSiteverifyServer(t *testing.T, handler func(req siteverifyRequest) (int, siteverifyResponse)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req siteverifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		status, resp := handler(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestTurnstileVerifier_Accepts(t *testing.T) {
	srv := newSiteverifyServer(t, func(req siteverifyRequest) (int, siteverifyResponse) {
		assert.Equal(t, "secret", req.Secret)
		assert.Equal(t, "token-ok", req.Response)
		assert.Equal(t, "203.0.113.7", req.RemoteIP)

		return http.StatusOK, siteverifyResponse{Success: true}
	})

	verifier := NewTurnstileVerifier(&config.TurnstileConfig{SecretKey: "secret", VerifyURL: srv.URL}, newTestLogger())

	ok, err := verifier.Verify(context.Background(), "token-ok", "203.0.113.7")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, verifier.Enabled())
}

func TestTurnstileVerifier_Rejects(t *testing.T) {
	srv := newSiteverifyServer(t, func(siteverifyRequest) (int, siteverifyResponse) {
		return http.StatusOK, siteverifyResponse{Success: false, ErrorCodes: []string{"invalid-input-response"}}
	})

	verifier := NewTurnstileVerifier(&config.TurnstileConfig{SecretKey: "secret", VerifyURL: srv.URL}, newTestLogger())

	ok, err := verifier.Verify(context.Background(), "token-bad", "")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTurnstileVerifier_EmptyTokenNeverCallsOut(t *testing.T) {
	verifier := NewTurnstileVerifier(&config.TurnstileConfig{SecretKey: "secret", VerifyURL: "http://127.0.0.1:1"}, newTestLogger())

	ok, err := verifier.Verify(context.Background(), "", "")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTurnstileVerifier_UpstreamFailure(t *testing.T) {
	srv := newSiteverifyServer(t, func(siteverifyRequest) (int, siteverifyResponse) {
		return http.StatusBadGateway, siteverifyResponse{}
	})

	verifier := NewTurnstileVerifier(&config.TurnstileConfig{SecretKey: "secret", VerifyURL: srv.URL}, newTestLogger())

	ok, err := verifier.Verify(context.Background(), "token", "")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewHumanVerifier(t *testing.T) {
	cfg := &config.Config{}

	verifier, err := NewHumanVerifier(Params{Config: cfg, Logger: newTestLogger()})
	require.NoError(t, err)
	assert.False(t, verifier.Enabled())

	ok, err := verifier.Verify(context.Background(), "", "")
	require.NoError(t, err)
	assert.True(t, ok)

	cfg.Turnstile = &config.TurnstileConfig{Enabled: true}
	_, err = NewHumanVerifier(Params{Config: cfg, Logger: newTestLogger()})
	assert.Error(t, err)

	cfg.Turnstile.SecretKey = "secret"
	verifier, err = NewHumanVerifier(Params{Config: cfg, Logger: newTestLogger()})
	require.NoError(t, err)
	assert.True(t, verifier.Enabled())
}
