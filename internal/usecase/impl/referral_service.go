package impl

import (
	"context"
	"log/slog"
	"time"

	"waitlist/config"
	deliverycontext "waitlist/internal/delivery/context"
	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/repository"
	"waitlist/internal/domain/service"
	"waitlist/internal/errors"
	"waitlist/internal/usecase"

	"go.uber.org/fx"
)

// ReferralServiceParams holds dependencies for ReferralService, injected by Fx.
type ReferralServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// referralService implements the ReferralUsecase interface.
type referralService struct {
	txManager     repository.TransactionManager
	profiles      repository.ProfileRepository
	audit         *auditRecorder
	referralBonus int64
	loopBonus     int64
	logger        *slog.Logger
	now           func() time.Time
}

// NewReferralService is the constructor for referralService.
func NewReferralService(params ReferralServiceParams) usecase.ReferralUsecase {
	return &referralService{
		txManager:     params.TxManager,
		profiles:      params.ProfileRepo,
		audit:         newAuditRecorder(params.Publisher, params.Config.Audit.Timeout, params.Logger),
		referralBonus: params.Config.Referral.ReferralBonus,
		loopBonus:     params.Config.Referral.LoopBonus,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *referralService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AttributeReferral records the edge and pays the referrer, then tries the loop bonus.
func (srv *referralService) AttributeReferral(ctx context.Context, referrerCode, referredUID, referredUsername string) (*entity.ReferralResult, error) {
	code := entity.NormalizeReferralCode(referrerCode)
	if code == "" {
		return &entity.ReferralResult{Outcome: entity.ReferralNoAttribution}, nil
	}

	referrer, err := srv.profiles.FindByReferralCode(ctx, code)
	if errors.Is(err, repository.ErrProfileNotFound) {
		srv.log(ctx).Info("Referral code did not resolve", slog.String("referrer_code", code))

		return &entity.ReferralResult{Outcome: entity.ReferralNoAttribution}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve referrer")
	}

	if referrer.UID == referredUID {
		srv.log(ctx).Warn("Self-referral ignored", slog.String("uid", referredUID))

		return &entity.ReferralResult{Outcome: entity.ReferralNoAttribution}, nil
	}

	edge := entity.NewConfirmedReferralEdge(referrer.UID, referredUID, code, srv.now().UTC())

	created := false
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		created = false

		inserted, err := repoFactory.ReferralRepo().CreateIfAbsent(ctx, edge)
		if err != nil {
			return errors.Wrap(err, "failed to create referral edge")
		}
		if !inserted {
			return nil
		}

		if err := repoFactory.ProfileRepo().IncrementPoints(ctx, referrer.UID, entity.PointsFromReferrals, srv.referralBonus); err != nil {
			return errors.Wrap(err, "failed to award referral bonus")
		}
		created = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &entity.ReferralResult{ReferrerUID: referrer.UID}
	if !created {
		result.Outcome = entity.ReferralAlreadyAttributed

		return result, nil
	}
	result.Outcome = entity.ReferralAttributed

	ancestorUID, paid, err := srv.payLoopBonus(ctx, referrer.UID, referredUID, edge.ID)
	if err != nil {
		srv.log(ctx).Error("Loop bonus failed",
			slog.String("edge_id", edge.ID),
			slog.Any("error", err),
		)
	}
	result.LoopBonusPaid = paid
	result.AncestorUID = ancestorUID

	srv.log(ctx).Info("Referral attributed",
		slog.String("referrer_uid", referrer.UID),
		slog.String("referred_uid", referredUID),
		slog.Bool("loop_bonus_paid", paid),
	)

	srv.audit.record(ctx, entity.AuditEventReferralConfirmed, referrer.UID, map[string]string{
		"referredUid":      referredUID,
		"referredUsername": referredUsername,
	})

	return result, nil
}

// payLoopBonus credits the referrer's own referrer once per edge. The mark and the
// award commit together, so a failed award leaves the edge unmarked.
func (srv *referralService) payLoopBonus(ctx context.Context, referrerUID, referredUID, edgeID string) (string, bool, error) {
	var (
		ancestorUID string
		paid        bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ancestorUID, paid = "", false

		referrer, err := repoFactory.ProfileRepo().FindByUID(ctx, referrerUID)
		if err != nil {
			return errors.Wrap(err, "failed to load referrer")
		}
		if referrer.ReferredByUID == nil {
			return nil
		}

		ancestor := *referrer.ReferredByUID
		if ancestor == referredUID || ancestor == referrerUID {
			return nil
		}

		// A direct edge already pays the ancestor for this user.
		_, err = repoFactory.ReferralRepo().FindByID(ctx, entity.ReferralEdgeID(ancestor, referredUID))
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrReferralNotFound) {
			return errors.Wrap(err, "failed to check direct edge")
		}

		won, err := repoFactory.ReferralRepo().MarkLoopBonusGiven(ctx, edgeID)
		if err != nil {
			return errors.Wrap(err, "failed to mark loop bonus")
		}
		if !won {
			return nil
		}

		if err := repoFactory.ProfileRepo().IncrementPoints(ctx, ancestor, entity.PointsFromLoops, srv.loopBonus); err != nil {
			return errors.Wrap(err, "failed to award loop bonus")
		}
		ancestorUID, paid = ancestor, true

		return nil
	})
	if err != nil {
		return "", false, err
	}

	return ancestorUID, paid, nil
}
