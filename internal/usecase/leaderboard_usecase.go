package usecase

import (
	"context"

	"waitlist/internal/domain/entity"
)

// LeaderboardUsecase ranks active members by points.
type LeaderboardUsecase interface {
	// GetLeaderboard returns the top members and, when callerUID is set and ranked,
	// the caller's own rank.
	GetLeaderboard(ctx context.Context, callerUID string) (*entity.Leaderboard, error)
}
