// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// SignupServiceParams holds dependencies for SignupService, injected by Fx.
type SignupServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ReferralUsecase usecase.ReferralUsecase
	Publisher       service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

// signupService implements the SignupUsecase interface.
type signupService struct {
	txManager   repository.TransactionManager
	referrals   usecase.ReferralUsecase
	codes       *codeGenerator
	audit       *auditRecorder
	signupBonus int64
	logger      *slog.Logger
	now         func() time.Time
}

// NewSignupService is the constructor for signupService.
func NewSignupService(params SignupServiceParams) usecase.SignupUsecase {
	cfg := params.Config.Referral

	return &signupService{
		txManager:   params.TxManager,
		referrals:   params.ReferralUsecase,
		codes:       newCodeGenerator(cfg.CodeLength, cfg.CodeMaxAttempts),
		audit:       newAuditRecorder(params.Publisher, params.Config.Audit.Timeout, params.Logger),
		signupBonus: cfg.SignupBonus,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *signupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompleteSignup creates the profile, then attributes the referral.
func (srv *signupService) CompleteSignup(ctx context.Context, identity *entity.Identity, input *usecase.CompleteSignupInput) (*usecase.SignupResult, error) {
	if identity == nil || identity.UID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	username := entity.NormalizeUsername(input.Username)
	if err := entity.ValidateUsername(username); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username: " + err.Error())
	}

	referrerCode := ""
	if input.ReferrerCode != nil {
		referrerCode = entity.NormalizeReferralCode(*input.ReferrerCode)
	}

	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profiles := repoFactory.ProfileRepo()

		// 1. One profile per identity
		if _, err := profiles.FindByUID(ctx, identity.UID); err == nil {
			return domainerrors.ErrAlreadyOnboarded
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to look up profile")
		}

		// 2. Username must be free
		taken, err := profiles.ExistsUsername(ctx, username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if taken {
			return domainerrors.ErrUsernameTaken
		}

		// 3. Referral code
		code, err := srv.codes.Generate(ctx, profiles)
		if err != nil {
			return err
		}

		newProfile := entity.NewUserProfile(identity, username, code, srv.signupBonus, srv.now().UTC())
		newProfile.TelegramHandle = normalizeTelegramHandle(input.TelegramHandle)

		// 4. Referrer fields are only written at creation
		if referrerCode != "" {
			referrer, err := profiles.FindByReferralCode(ctx, referrerCode)
			switch {
			case err == nil:
				newProfile.SetReferrer(referrerCode, referrer.UID)
			case !errors.Is(err, repository.ErrProfileNotFound):
				return errors.Wrap(err, "failed to resolve referrer")
			}
		}

		if err := profiles.Create(ctx, newProfile); err != nil {
			return translateCreateError(err)
		}
		profile = newProfile

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile created",
		slog.String("uid", profile.UID),
		slog.String("username", profile.Username),
		slog.Bool("referred", profile.ReferredByUID != nil),
	)

	srv.audit.record(ctx, entity.AuditEventSignup, profile.UID, signupMetadata(profile.Username, referrerCode))

	result := &usecase.SignupResult{ReferralCode: profile.ReferralCode}

	if referrerCode != "" {
		referral, err := srv.referrals.AttributeReferral(ctx, referrerCode, profile.UID, profile.Username)
		if err != nil {
			srv.log(ctx).Error("Referral attribution failed after signup",
				slog.String("uid", profile.UID),
				slog.String("referrer_code", referrerCode),
				slog.Any("error", err),
			)
		}
		result.Referral = referral
	}

	return result, nil
}

// translateCreateError maps store conflicts that slipped past the reads inside the transaction.
func translateCreateError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProfileAlreadyExists):
		return domainerrors.ErrAlreadyOnboarded
	case errors.Is(err, repository.ErrUsernameTaken):
		return domainerrors.ErrUsernameTaken
	default:
		return errors.Wrap(err, "failed to create profile")
	}
}

func normalizeTelegramHandle(handle *string) *string {
	if handle == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*handle)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func signupMetadata(username, referrerCode string) map[string]string {
	metadata := map[string]string{"username": username}
	if referrerCode != "" {
		metadata["referrerCode"] = referrerCode
	}

	return metadata
}
