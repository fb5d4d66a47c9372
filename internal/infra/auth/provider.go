// Package auth provides the bearer token verifiers behind service.IdentityVerifier.
package auth

import (
	"context"
	"log/slog"

	"waitlist/config"
	"waitlist/internal/domain/constants"
	"waitlist/internal/domain/service"
	"waitlist/internal/errors"
	firebaseinfra "waitlist/internal/infra/firebase"

	"go.uber.org/fx"
)

// Params defines the parameters required for the identity verifier
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityVerifier creates the verifier for the configured auth provider
func NewIdentityVerifier(params Params) (service.IdentityVerifier, error) {
	cfg := params.Config.Auth
	if cfg == nil {
		return nil, errors.New("auth configuration is required")
	}

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		app, err := firebaseinfra.NewApp(firebaseinfra.Params{
			Ctx:    params.Ctx,
			Config: params.Config,
			Logger: params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return NewFirebaseVerifier(params.Ctx, app)

	case constants.AuthProviderJWT:
		params.Logger.Warn("Using shared-secret JWT verification; intended for local development")

		return NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)

	default:
		return nil, errors.Errorf("unsupported auth provider: %s", cfg.Provider)
	}
}
