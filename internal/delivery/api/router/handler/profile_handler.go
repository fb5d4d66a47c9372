package handler

import (
	"log/slog"
	"net/http"
	"time"

	"waitlist/internal/delivery/api/response"
	deliverycontext "waitlist/internal/delivery/context"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the member dashboard and public invite pages
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// PointsResponse is the point breakdown of a profile
type PointsResponse struct {
	Total         int64 `json:"total"`
	FromSignup    int64 `json:"fromSignup"`
	FromReferrals int64 `json:"fromReferrals"`
	FromLoops     int64 `json:"fromLoops"`
}

// ProfileResponse is the caller's own profile
type ProfileResponse struct {
	UID              string         `json:"uid"`
	Email            string         `json:"email"`
	GoogleLinked     bool           `json:"googleLinked"`
	Username         string         `json:"username"`
	TelegramHandle   *string        `json:"telegramHandle"`
	TelegramLinked   bool           `json:"telegramLinked"`
	ReferralCode     string         `json:"referralCode"`
	ReferredByCode   *string        `json:"referredByCode"`
	Points           PointsResponse `json:"points"`
	Status           string         `json:"status"`
	WaitlistPosition *int           `json:"waitlistPosition"`
	InviteURL        string         `json:"inviteUrl,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// ReferredUserResponse is one member the caller referred
type ReferredUserResponse struct {
	Username    string     `json:"username"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ConfirmedAt *time.Time `json:"confirmedAt"`
}

// InviteResponse is the public view of a referral code
type InviteResponse struct {
	Username     string `json:"username"`
	ReferralCode string `json:"referralCode"`
}

// GetMe returns the caller's profile with point breakdown and invite link
func (h *ProfileHandler) GetMe(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthenticated
	}

	view, err := h.profileUC.GetProfile(c.Request().Context(), identity.UID)
	if err != nil {
		return err
	}

	profile := view.Profile

	return response.OK(c, ProfileResponse{
		UID:            profile.UID,
		Email:          profile.Email,
		GoogleLinked:   profile.GoogleLinked,
		Username:       profile.Username,
		TelegramHandle: profile.TelegramHandle,
		TelegramLinked: profile.TelegramLinked,
		ReferralCode:   profile.ReferralCode,
		ReferredByCode: profile.ReferredByCode,
		Points: PointsResponse{
			Total:         profile.Points.Total,
			FromSignup:    profile.Points.FromSignup,
			FromReferrals: profile.Points.FromReferrals,
			FromLoops:     profile.Points.FromLoops,
		},
		Status:           profile.Status.String(),
		WaitlistPosition: profile.WaitlistPosition,
		InviteURL:        view.InviteURL,
		CreatedAt:        profile.CreatedAt,
	})
}

// ListReferrals returns the members the caller referred, newest first
func (h *ProfileHandler) ListReferrals(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthenticated
	}

	referred, err := h.profileUC.ListReferrals(c.Request().Context(), identity.UID)
	if err != nil {
		return err
	}

	resp := make([]ReferredUserResponse, 0, len(referred))
	for _, user := range referred {
		resp = append(resp, ReferredUserResponse{
			Username:    user.Username,
			Status:      user.Status.String(),
			CreatedAt:   user.CreatedAt,
			ConfirmedAt: user.ConfirmedAt,
		})
	}

	return response.OK(c, resp)
}

// GetInviteQR renders the caller's invite link as a PNG
func (h *ProfileHandler) GetInviteQR(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthenticated
	}

	png, err := h.profileUC.InviteQR(c.Request().Context(), identity.UID)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveInvite returns the owner of a referral code
func (h *ProfileHandler) ResolveInvite(c echo.Context) error {
	invite, err := h.profileUC.ResolveInvite(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}

	return response.OK(c, InviteResponse{
		Username:     invite.Username,
		ReferralCode: invite.ReferralCode,
	})
}
