package impl

import (
	"context"
	"log/slog"

	deliverycontext "waitlist/internal/delivery/context"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/repository"
	"waitlist/internal/domain/service"
	"waitlist/internal/errors"
	"waitlist/internal/usecase"

	"go.uber.org/fx"
)

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	EventRepo   repository.EventRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// auditService implements the AuditUsecase and LedgerAuditUsecase interfaces.
type auditService struct {
	events   repository.EventRepository
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewAuditService is the constructor for the audit event sink.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return newAuditService(params)
}

// NewLedgerAuditService is the constructor for the points ledger sweep.
func NewLedgerAuditService(params AuditServiceParams) usecase.LedgerAuditUsecase {
	return newAuditService(params)
}

func newAuditService(params AuditServiceParams) *auditService {
	return &auditService{
		events:   params.EventRepo,
		profiles: params.ProfileRepo,
		logger:   params.Logger,
	}
}

// RecordAuditEvent appends a delivered event. Malformed messages are reported as
// validation failures so the transport does not redeliver them.
func (srv *auditService) RecordAuditEvent(ctx context.Context, msg *service.AuditMessage) error {
	event, err := msg.ToEvent()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := srv.events.Append(ctx, event); err != nil {
		return errors.Wrap(err, "failed to append audit event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Audit event stored",
		slog.String("event_id", msg.EventID),
		slog.String("type", msg.Type),
	)

	return nil
}

// CheckPointsLedger logs every profile whose total drifted from its sources.
func (srv *auditService) CheckPointsLedger(ctx context.Context) (int, error) {
	drifted, err := srv.profiles.FindInconsistentPoints(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to scan points ledger")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	for _, profile := range drifted {
		logger.Error("Points ledger drift",
			slog.String("uid", profile.UID),
			slog.Int64("points_total", profile.Points.Total),
			slog.Int64("points_from_signup", profile.Points.FromSignup),
			slog.Int64("points_from_referrals", profile.Points.FromReferrals),
			slog.Int64("points_from_loops", profile.Points.FromLoops),
		)
	}

	return len(drifted), nil
}
