package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newProfile(uid, username, code string, createdAt time.Time) *entity.UserProfile {
	profile := entity.NewUserProfile(&entity.Identity{UID: uid, Email: uid + "@example.com"}, username, code, 5, createdAt)

	return profile
}

func TestProfileRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	telegram := "@alice"
	profile := newProfile("uid-a", "alice", "AAAA1111", baseTime)
	profile.TelegramHandle = &telegram
	profile.SetReferrer("BBBB2222", "uid-b")

	require.NoError(t, repo.Create(ctx, profile))

	found, err := repo.FindByUID(ctx, "uid-a")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "AAAA1111", found.ReferralCode)
	assert.Equal(t, entity.Points{Total: 5, FromSignup: 5}, found.Points)
	assert.Equal(t, entity.ProfileStatusActive, found.Status)
	require.NotNil(t, found.TelegramHandle)
	assert.Equal(t, "@alice", *found.TelegramHandle)
	require.NotNil(t, found.ReferredByUID)
	assert.Equal(t, "uid-b", *found.ReferredByUID)

	byCode, err := repo.FindByReferralCode(ctx, "AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, "uid-a", byCode.UID)

	_, err = repo.FindByUID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	_, err = repo.FindByReferralCode(ctx, "ZZZZ9999")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_CreateRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, newProfile("uid-a", "alice", "AAAA1111", baseTime)))

	tests := []struct {
		name    string
		profile *entity.UserProfile
		wantErr error
	}{
		{name: "same identity", profile: newProfile("uid-a", "other", "CCCC3333", baseTime), wantErr: repository.ErrProfileAlreadyExists},
		{name: "same username", profile: newProfile("uid-b", "alice", "DDDD4444", baseTime), wantErr: repository.ErrUsernameTaken},
		{name: "same referral code", profile: newProfile("uid-c", "carol", "AAAA1111", baseTime), wantErr: repository.ErrReferralCodeTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.profile)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))
	require.NoError(t, repo.Create(ctx, newProfile("uid-a", "alice", "AAAA1111", baseTime)))

	exists, err := repo.ExistsUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsReferralCode(ctx, "AAAA1111")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsReferralCode(ctx, "BBBB2222")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProfileRepository_IncrementPoints(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))
	require.NoError(t, repo.Create(ctx, newProfile("uid-a", "alice", "AAAA1111", baseTime)))

	require.NoError(t, repo.IncrementPoints(ctx, "uid-a", entity.PointsFromReferrals, 5))
	require.NoError(t, repo.IncrementPoints(ctx, "uid-a", entity.PointsFromReferrals, 5))
	require.NoError(t, repo.IncrementPoints(ctx, "uid-a", entity.PointsFromLoops, 1))

	found, err := repo.FindByUID(ctx, "uid-a")
	require.NoError(t, err)
	assert.Equal(t, entity.Points{Total: 16, FromSignup: 5, FromReferrals: 10, FromLoops: 1}, found.Points)
	assert.True(t, found.Points.Consistent())

	err = repo.IncrementPoints(ctx, "missing", entity.PointsFromReferrals, 5)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	err = repo.IncrementPoints(ctx, "uid-a", entity.PointsField("bogus"), 5)
	assert.Error(t, err)
}

func TestProfileRepository_ListActiveOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProfileRepository(db)

	require.NoError(t, repo.Create(ctx, newProfile("uid-c", "carol", "CCCC3333", baseTime.Add(2*time.Minute))))
	require.NoError(t, repo.Create(ctx, newProfile("uid-b", "bob", "BBBB2222", baseTime)))
	require.NoError(t, repo.Create(ctx, newProfile("uid-a", "alice", "AAAA1111", baseTime)))

	banned := newProfile("uid-x", "xavier", "XXXX0000", baseTime)
	banned.Status = entity.ProfileStatusBanned
	require.NoError(t, repo.Create(ctx, banned))

	profiles, err := repo.ListActive(ctx)
	require.NoError(t, err)

	uids := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		uids = append(uids, profile.UID)
	}
	assert.Equal(t, []string{"uid-a", "uid-b", "uid-c"}, uids)
}

func TestProfileRepository_FindUsernamesByUIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))
	require.NoError(t, repo.Create(ctx, newProfile("uid-a", "alice", "AAAA1111", baseTime)))
	require.NoError(t, repo.Create(ctx, newProfile("uid-b", "bob", "BBBB2222", baseTime)))

	usernames, err := repo.FindUsernamesByUIDs(ctx, []string{"uid-a", "uid-b", "missing"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"uid-a": "alice", "uid-b": "bob"}, usernames)

	empty, err := repo.FindUsernamesByUIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProfileRepository_FindInconsistentPoints(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	require.NoError(t, repo.Create(ctx, newProfile("uid-a", "alice", "AAAA1111", baseTime)))
	require.NoError(t, repo.Create(ctx, newProfile("uid-b", "bob", "BBBB2222", baseTime)))

	require.NoError(t, db.Exec("UPDATE users SET points_total = 99 WHERE uid = ?", "uid-b").Error)

	drifted, err := repo.FindInconsistentPoints(ctx)
	require.NoError(t, err)
	require.Len(t, drifted, 1)
	assert.Equal(t, "uid-b", drifted[0].UID)
}

func TestReferralRepository_CreateIfAbsentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewReferralRepository(newTestDB(t))

	edge := entity.NewConfirmedReferralEdge("uid-a", "uid-b", "AAAA1111", baseTime)

	created, err := repo.CreateIfAbsent(ctx, edge)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, entity.NewConfirmedReferralEdge("uid-a", "uid-b", "AAAA1111", baseTime))
	require.NoError(t, err)
	assert.False(t, created)

	found, err := repo.FindByID(ctx, "uid-a_uid-b")
	require.NoError(t, err)
	assert.Equal(t, entity.ReferralStatusConfirmed, found.Status)
	assert.False(t, found.LoopBonusGiven)

	_, err = repo.FindByID(ctx, "uid-x_uid-y")
	assert.ErrorIs(t, err, repository.ErrReferralNotFound)
}

func TestReferralRepository_MarkLoopBonusGivenOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewReferralRepository(newTestDB(t))

	_, err := repo.CreateIfAbsent(ctx, entity.NewConfirmedReferralEdge("uid-a", "uid-b", "AAAA1111", baseTime))
	require.NoError(t, err)

	won, err := repo.MarkLoopBonusGiven(ctx, "uid-a_uid-b")
	require.NoError(t, err)
	assert.True(t, won)

	won, err = repo.MarkLoopBonusGiven(ctx, "uid-a_uid-b")
	require.NoError(t, err)
	assert.False(t, won)

	_, err = repo.MarkLoopBonusGiven(ctx, "uid-x_uid-y")
	assert.ErrorIs(t, err, repository.ErrReferralNotFound)
}

func TestReferralRepository_ListByReferrerNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewReferralRepository(newTestDB(t))

	for i, referred := range []string{"uid-b", "uid-c", "uid-d"} {
		edge := entity.NewConfirmedReferralEdge("uid-a", referred, "AAAA1111", baseTime.Add(time.Duration(i)*time.Minute))
		_, err := repo.CreateIfAbsent(ctx, edge)
		require.NoError(t, err)
	}
	_, err := repo.CreateIfAbsent(ctx, entity.NewConfirmedReferralEdge("uid-z", "uid-y", "ZZZZ9999", baseTime))
	require.NoError(t, err)

	edges, err := repo.ListByReferrer(ctx, "uid-a")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, "uid-d", edges[0].ReferredUID)
	assert.Equal(t, "uid-b", edges[2].ReferredUID)
}

func TestEventRepository_AppendIgnoresRedelivery(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEventRepository(db)

	event := entity.NewAuditEvent(entity.AuditEventSignup, "uid-a", map[string]string{"username": "alice"}, baseTime)

	require.NoError(t, repo.Append(ctx, event))
	require.NoError(t, repo.Append(ctx, event))

	var count int64
	require.NoError(t, db.Table("events").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	anonymous := entity.NewAuditEvent(entity.AuditEventError, "", map[string]string{"operation": "leaderboard"}, baseTime)
	anonymous.ID = uuid.New()
	require.NoError(t, repo.Append(ctx, anonymous))
}

func TestTransactionManager_CommitsAndRollsBack(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.ProfileRepo().Create(ctx, newProfile("uid-a", "alice", "AAAA1111", baseTime)); err != nil {
			return err
		}
		_, err := factory.ReferralRepo().CreateIfAbsent(ctx, entity.NewConfirmedReferralEdge("uid-a", "uid-b", "AAAA1111", baseTime))

		return err
	})
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.ProfileRepo().Create(ctx, newProfile("uid-b", "bob", "BBBB2222", baseTime)); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	profiles := NewProfileRepository(db)
	_, err = profiles.FindByUID(ctx, "uid-a")
	require.NoError(t, err)
	_, err = profiles.FindByUID(ctx, "uid-b")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
