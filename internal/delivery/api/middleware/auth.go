package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "waitlist/internal/delivery/context"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/service"
	"waitlist/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies bearer ID tokens and stores the caller identity
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects requests without a valid bearer token
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		if err := m.verify(c, token); err != nil {
			return err
		}

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when a token is present. A missing or
// invalid token leaves the request anonymous.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if err := m.verify(c, token); err != nil {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					Debug("Ignoring invalid optional token", slog.Any("error", err))
			}
		}

		return next(c)
	}
}

func (m *AuthMiddleware) verify(c echo.Context, token string) error {
	identity, err := m.verifier.Verify(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidIdentityToken) {
			return domainerrors.ErrUnauthenticated
		}

		return errors.Wrap(err, "failed to verify identity token")
	}

	deliverycontext.SetIdentity(c, identity)

	return nil
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
