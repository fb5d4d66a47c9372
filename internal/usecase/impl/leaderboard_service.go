package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

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

// LeaderboardServiceParams holds dependencies for LeaderboardService, injected by Fx.
type LeaderboardServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// leaderboardService implements the LeaderboardUsecase interface.
type leaderboardService struct {
	profiles repository.ProfileRepository
	audit    *auditRecorder
	size     int
	logger   *slog.Logger
}

// NewLeaderboardService is the constructor for leaderboardService.
func NewLeaderboardService(params LeaderboardServiceParams) usecase.LeaderboardUsecase {
	return &leaderboardService{
		profiles: params.ProfileRepo,
		audit:    newAuditRecorder(params.Publisher, params.Config.Audit.Timeout, params.Logger),
		size:     params.Config.Referral.LeaderboardSize,
		logger:   params.Logger,
	}
}

// GetLeaderboard ranks every active profile in memory.
func (srv *leaderboardService) GetLeaderboard(ctx context.Context, callerUID string) (*entity.Leaderboard, error) {
	profiles, err := srv.profiles.ListActive(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to load leaderboard", slog.Any("error", err))
		srv.audit.record(ctx, entity.AuditEventError, callerUID, map[string]string{
			"operation": "leaderboard",
			"error":     err.Error(),
		})

		return nil, errors.Wrap(domainerrors.ErrLeaderboardUnavailable, err.Error())
	}

	return buildLeaderboard(profiles, callerUID, srv.size), nil
}

// rankProfiles orders by points descending; ties go to the earlier signup, then the lower uid.
func rankProfiles(profiles []*entity.UserProfile) []*entity.UserProfile {
	ranked := make([]*entity.UserProfile, 0, len(profiles))
	for _, profile := range profiles {
		if profile.IsActive() {
			ranked = append(ranked, profile)
		}
	}

	slices.SortStableFunc(ranked, func(a, b *entity.UserProfile) int {
		if c := cmp.Compare(b.Points.Total, a.Points.Total); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.UID, b.UID)
	})

	return ranked
}

func buildLeaderboard(profiles []*entity.UserProfile, callerUID string, size int) *entity.Leaderboard {
	ranked := rankProfiles(profiles)

	board := &entity.Leaderboard{
		TopUsers:   make([]entity.UserSummary, 0, min(size, len(ranked))),
		TotalUsers: len(ranked),
	}

	for i, profile := range ranked {
		if i < size {
			board.TopUsers = append(board.TopUsers, profile.Summary())
		}

		if callerUID != "" && profile.UID == callerUID {
			rank := i + 1
			summary := profile.Summary()
			board.CurrentUserRank = &rank
			board.CurrentUserData = &summary
		}
	}

	return board
}
