// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"waitlist/internal/delivery/api/response"
	"waitlist/internal/delivery/api/validator"
	deliverycontext "waitlist/internal/delivery/context"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/service"
	"waitlist/internal/errors"
	"waitlist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SignupHandlerParams holds dependencies for SignupHandler, injected by Fx.
type SignupHandlerParams struct {
	fx.In

	SignupUC      usecase.SignupUsecase
	ProfileUC     usecase.ProfileUsecase
	HumanVerifier service.HumanVerifier
	Logger        *slog.Logger
}

// SignupHandler completes the waitlist signup of an authenticated caller
type SignupHandler struct {
	signupUC      usecase.SignupUsecase
	profileUC     usecase.ProfileUsecase
	humanVerifier service.HumanVerifier
	logger        *slog.Logger
}

// NewSignupHandler is the constructor for SignupHandler
func NewSignupHandler(params SignupHandlerParams) *SignupHandler {
	return &SignupHandler{
		signupUC:      params.SignupUC,
		profileUC:     params.ProfileUC,
		humanVerifier: params.HumanVerifier,
		logger:        params.Logger,
	}
}

// SignupRequest represents the request body for completing a signup
type SignupRequest struct {
	Username       string  `json:"username" validate:"required,username"`
	TelegramHandle *string `json:"telegramHandle" validate:"omitempty,max=64"`
	ReferrerCode   *string `json:"referrerCode" validate:"omitempty,max=128"`
	TurnstileToken string  `json:"turnstileToken"`
}

// SignupResponse carries the caller's referral code
type SignupResponse struct {
	ReferralCode string `json:"referralCode"`
}

// CompleteSignup creates the caller's profile. A caller that already owns a
// profile gets its existing referral code back.
func (h *SignupHandler) CompleteSignup(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthenticated
	}

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is malformed")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Details(err))
	}

	ctx := c.Request().Context()

	if h.humanVerifier.Enabled() {
		// A retry after a successful signup must not spend another challenge token
		code, found, err := h.existingReferralCode(ctx, identity.UID)
		if err != nil {
			return err
		}
		if found {
			return response.OK(c, SignupResponse{ReferralCode: code})
		}

		human, err := h.humanVerifier.Verify(ctx, req.TurnstileToken, c.RealIP())
		if err != nil {
			return errors.Wrap(err, "failed to verify human challenge")
		}
		if !human {
			return domainerrors.ErrHumanVerificationFailed
		}
	}

	result, err := h.signupUC.CompleteSignup(ctx, identity, &usecase.CompleteSignupInput{
		Username:       req.Username,
		TelegramHandle: req.TelegramHandle,
		ReferrerCode:   req.ReferrerCode,
	})
	if errors.Is(err, domainerrors.ErrAlreadyOnboarded) {
		view, err := h.profileUC.GetProfile(ctx, identity.UID)
		if err != nil {
			return err
		}

		return response.OK(c, SignupResponse{ReferralCode: view.Profile.ReferralCode})
	}
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, SignupResponse{ReferralCode: result.ReferralCode})
}

func (h *SignupHandler) existingReferralCode(ctx context.Context, uid string) (string, bool, error) {
	view, err := h.profileUC.GetProfile(ctx, uid)
	if errors.Is(err, domainerrors.ErrProfileNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return view.Profile.ReferralCode, true, nil
}
