package firestore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"waitlist/internal/domain/entity"
	"waitlist/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newEmulatorClient connects to the Firestore emulator under a project of its
// own, so tests never see each other's documents.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST is not set")
	}

	projectID := fmt.Sprintf("demo-waitlist-%d", time.Now().UnixNano())
	client, err := firestore.NewClient(context.Background(), projectID)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func newProfile(uid, username, code string) *entity.UserProfile {
	return entity.NewUserProfile(&entity.Identity{UID: uid, Email: uid + "@example.com"}, username, code, 5, baseTime)
}

func TestEmulator_ProfileCreateRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newEmulatorClient(t))

	require.NoError(t, repo.Create(ctx, newProfile("uid-a", "alice", "AAAA1111")))

	err := repo.Create(ctx, newProfile("uid-a", "alice_two", "AAAA2222"))
	assert.ErrorIs(t, err, repository.ErrProfileAlreadyExists)

	err = repo.Create(ctx, newProfile("uid-b", "alice", "BBBB1111"))
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)

	err = repo.Create(ctx, newProfile("uid-c", "carol", "AAAA1111"))
	assert.ErrorIs(t, err, repository.ErrReferralCodeTaken)

	// Failed creates leave no index documents behind
	taken, err := repo.ExistsUsername(ctx, "carol")
	require.NoError(t, err)
	assert.False(t, taken)
	taken, err = repo.ExistsReferralCode(ctx, "BBBB1111")
	require.NoError(t, err)
	assert.False(t, taken)

	found, err := repo.FindByReferralCode(ctx, "AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, "uid-a", found.UID)
	assert.Equal(t, entity.Points{Total: 5, FromSignup: 5}, found.Points)

	_, err = repo.FindByReferralCode(ctx, "STALE/CODE")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestEmulator_ProfileConcurrentCreateSameUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newEmulatorClient(t))

	const n = 4
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = repo.Create(ctx, newProfile(fmt.Sprintf("uid-%d", i), "alice", fmt.Sprintf("CODE%04d", i)))
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++

			continue
		}
		assert.ErrorIs(t, err, repository.ErrUsernameTaken)
	}
	assert.Equal(t, 1, winners)
}

func TestEmulator_IncrementPoints(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newEmulatorClient(t))
	require.NoError(t, repo.Create(ctx, newProfile("uid-a", "alice", "AAAA1111")))

	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = repo.IncrementPoints(ctx, "uid-a", entity.PointsFromReferrals, 5)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	found, err := repo.FindByUID(ctx, "uid-a")
	require.NoError(t, err)
	assert.Equal(t, entity.Points{Total: 5 + 5*n, FromSignup: 5, FromReferrals: 5 * n}, found.Points)

	err = repo.IncrementPoints(ctx, "missing", entity.PointsFromLoops, 1)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestEmulator_ReferralCreateIfAbsentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewReferralRepository(newEmulatorClient(t))

	created, err := repo.CreateIfAbsent(ctx, entity.NewConfirmedReferralEdge("uid-a", "uid-b", "AAAA1111", baseTime))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, entity.NewConfirmedReferralEdge("uid-a", "uid-b", "AAAA1111", baseTime.Add(time.Hour)))
	require.NoError(t, err)
	assert.False(t, created)

	edge, err := repo.FindByID(ctx, "uid-a_uid-b")
	require.NoError(t, err)
	assert.Equal(t, entity.ReferralStatusConfirmed, edge.Status)
	assert.False(t, edge.LoopBonusGiven)
}

func TestEmulator_MarkLoopBonusGivenOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewReferralRepository(newEmulatorClient(t))

	_, err := repo.CreateIfAbsent(ctx, entity.NewConfirmedReferralEdge("uid-a", "uid-b", "AAAA1111", baseTime))
	require.NoError(t, err)

	const n = 4
	var wg sync.WaitGroup
	won := make([]bool, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			won[i], errs[i] = repo.MarkLoopBonusGiven(ctx, "uid-a_uid-b")
		}()
	}
	wg.Wait()

	winners := 0
	for i, err := range errs {
		require.NoError(t, err)
		if won[i] {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	again, err := repo.MarkLoopBonusGiven(ctx, "uid-a_uid-b")
	require.NoError(t, err)
	assert.False(t, again)

	_, err = repo.MarkLoopBonusGiven(ctx, "uid-x_uid-y")
	assert.ErrorIs(t, err, repository.ErrReferralNotFound)
}

func TestEmulator_TransactionManagerRollsBack(t *testing.T) {
	ctx := context.Background()
	client := newEmulatorClient(t)
	txManager := NewTransactionManager(client)

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.ProfileRepo().Create(ctx, newProfile("uid-a", "alice", "AAAA1111")); err != nil {
			return err
		}

		return repository.ErrReferralNotFound
	})
	assert.ErrorIs(t, err, repository.ErrReferralNotFound)

	_, err = NewProfileRepository(client).FindByUID(ctx, "uid-a")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
