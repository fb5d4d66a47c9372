// Package turnstile verifies Cloudflare Turnstile tokens before a signup reaches the ledger.
package turnstile

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"waitlist/config"
	"waitlist/internal/domain/service"
	"waitlist/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"
	defaultTimeout   = 5 * time.Second
)

type siteverifyRequest struct {
	Secret   string `json:"secret"`
	Response string `json:"response"`
	RemoteIP string `json:"remoteip,omitempty"`
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
	Hostname   string   `json:"hostname"`
}

// turnstileVerifier implements service.HumanVerifier against the siteverify endpoint
type turnstileVerifier struct {
	secretKey  string
	verifyURL  string
	httpClient *http.Client
	logger     *slog.Logger
}

// noopVerifier accepts every request when the gate is disabled
type noopVerifier struct{}

func (noopVerifier) Enabled() bool {
	return false
}

func (noopVerifier) Verify(context.Context, string, string) (bool, error) {
	return true, nil
}

// Params holds dependencies for the human verifier, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewHumanVerifier returns the Turnstile verifier, or a pass-through when it is disabled
func NewHumanVerifier(params Params) (service.HumanVerifier, error) {
	cfg := params.Config.Turnstile
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Human verification disabled")

		return noopVerifier{}, nil
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("turnstile secret key is required when turnstile is enabled")
	}

	return NewTurnstileVerifier(cfg, params.Logger), nil
}

// NewTurnstileVerifier creates a verifier for the configured secret
func NewTurnstileVerifier(cfg *config.TurnstileConfig, logger *slog.Logger) service.HumanVerifier {
	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &turnstileVerifier{
		secretKey:  cfg.SecretKey,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (v *turnstileVerifier) Enabled() bool {
	return true
}

// Verify reports whether Cloudflare accepted the token. A transport failure is an
// error, not a rejection.
func (v *turnstileVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if token == "" {
		return false, nil
	}

	body, err := json.Marshal(siteverifyRequest{
		Secret:   v.secretKey,
		Response: token,
		RemoteIP: remoteIP,
	})
	if err != nil {
		return false, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "turnstile siteverify request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, errors.Errorf("turnstile siteverify returned status %d", resp.StatusCode)
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, errors.Wrap(err, "failed to decode turnstile response")
	}

	if !result.Success {
		v.logger.Info("Turnstile token rejected", slog.Any("error_codes", result.ErrorCodes))
	}

	return result.Success, nil
}
