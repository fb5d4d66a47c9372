package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"waitlist/config"
	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/repository"
	mockRepo "waitlist/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Referral = config.ReferralConfig{
		SignupBonus:     5,
		ReferralBonus:   5,
		LoopBonus:       1,
		CodeLength:      8,
		CodeMaxAttempts: 10,
		LeaderboardSize: 20,
	}
	cfg.Audit.Timeout = time.Second
	cfg.Invite.BaseURL = "https://waitlist.example.com/invite"

	return cfg
}

// expectTx makes txManager run fn against factory and return whatever fn returns.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newStoredProfile(uid, username, code string, total int64, createdAt time.Time) *entity.UserProfile {
	profile := entity.NewUserProfile(&entity.Identity{UID: uid}, username, code, 5, createdAt)
	profile.Points.Add(entity.PointsFromReferrals, total-5)

	return profile
}
