package impl

import (
	"context"
	"log/slog"
	"net/url"

	"waitlist/config"
	deliverycontext "waitlist/internal/delivery/context"
	"waitlist/internal/domain/entity"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/repository"
	"waitlist/internal/domain/service"
	"waitlist/internal/errors"
	"waitlist/internal/usecase"

	"go.uber.org/fx"
)

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo   repository.ProfileRepository
	ReferralRepo  repository.ReferralRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profiles      repository.ProfileRepository
	referrals     repository.ReferralRepository
	qrcode        service.QRCodeService
	inviteBaseURL string
	logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profiles:      params.ProfileRepo,
		referrals:     params.ReferralRepo,
		qrcode:        params.QRCodeService,
		inviteBaseURL: params.Config.Invite.BaseURL,
		logger:        params.Logger,
	}
}

// GetProfile retrieves the caller's profile and invite link.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*usecase.ProfileView, error) {
	profile, err := srv.findProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	inviteURL, err := srv.inviteURL(profile.ReferralCode)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Invite link unavailable", slog.Any("error", err))
	}

	return &usecase.ProfileView{
		Profile:   profile,
		InviteURL: inviteURL,
	}, nil
}

// ListReferrals returns the users the caller referred, newest first.
func (srv *profileService) ListReferrals(ctx context.Context, uid string) ([]*entity.ReferredUser, error) {
	edges, err := srv.referrals.ListByReferrer(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	uids := make([]string, 0, len(edges))
	for _, edge := range edges {
		uids = append(uids, edge.ReferredUID)
	}

	usernames, err := srv.profiles.FindUsernamesByUIDs(ctx, uids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve referred usernames")
	}

	referred := make([]*entity.ReferredUser, 0, len(edges))
	for _, edge := range edges {
		referred = append(referred, &entity.ReferredUser{
			Username:    usernames[edge.ReferredUID],
			Status:      edge.Status,
			CreatedAt:   edge.CreatedAt,
			ConfirmedAt: edge.ConfirmedAt,
		})
	}

	return referred, nil
}

// ResolveInvite looks up the owner of a referral code for the public invite page.
func (srv *profileService) ResolveInvite(ctx context.Context, code string) (*usecase.Invite, error) {
	normalized := entity.NormalizeReferralCode(code)
	if normalized == "" {
		return nil, domainerrors.ErrReferralCodeNotFound
	}

	profile, err := srv.profiles.FindByReferralCode(ctx, normalized)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrReferralCodeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve invite")
	}

	return &usecase.Invite{
		Username:     profile.Username,
		ReferralCode: profile.ReferralCode,
	}, nil
}

// InviteQR renders the caller's invite link as a PNG.
func (srv *profileService) InviteQR(ctx context.Context, uid string) ([]byte, error) {
	profile, err := srv.findProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	inviteURL, err := srv.inviteURL(profile.ReferralCode)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateInviteQR(inviteURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invite QR code")
	}

	return png, nil
}

func (srv *profileService) findProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.profiles.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func (srv *profileService) inviteURL(code string) (string, error) {
	if srv.inviteBaseURL == "" {
		return "", errors.New("invite base URL is not configured")
	}

	link, err := url.JoinPath(srv.inviteBaseURL, code)
	if err != nil {
		return "", errors.Wrap(err, "failed to build invite link")
	}

	return link, nil
}
