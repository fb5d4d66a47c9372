package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "waitlist/internal/domain/errors"
	mockRepo "waitlist/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_CandidateUsesAlphabet(t *testing.T) {
	gen := newCodeGenerator(8, 10)

	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		code, err := gen.candidate()
		require.NoError(t, err)
		require.Len(t, code, 8)

		for _, ch := range code {
			assert.True(t, strings.ContainsRune(referralCodeAlphabet, ch), "unexpected character %q", ch)
		}
		seen[code] = struct{}{}
	}

	// 36^8 possible codes; 500 draws colliding would point at a broken source.
	assert.Len(t, seen, 500)
}

func TestCodeGenerator_Generate_FirstCandidateFree(t *testing.T) {
	ctx := context.Background()
	profiles := mockRepo.NewMockProfileRepository(t)
	profiles.EXPECT().ExistsReferralCode(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

	code, err := newCodeGenerator(8, 10).Generate(ctx, profiles)

	require.NoError(t, err)
	assert.Len(t, code, 8)
}

func TestCodeGenerator_Generate_RetriesOnCollision(t *testing.T) {
	ctx := context.Background()
	profiles := mockRepo.NewMockProfileRepository(t)
	profiles.EXPECT().ExistsReferralCode(ctx, mock.AnythingOfType("string")).Return(true, nil).Twice()
	profiles.EXPECT().ExistsReferralCode(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

	code, err := newCodeGenerator(8, 10).Generate(ctx, profiles)

	require.NoError(t, err)
	assert.Len(t, code, 8)
}

func TestCodeGenerator_Generate_Exhausted(t *testing.T) {
	ctx := context.Background()
	profiles := mockRepo.NewMockProfileRepository(t)
	profiles.EXPECT().ExistsReferralCode(ctx, mock.AnythingOfType("string")).Return(true, nil).Times(10)

	code, err := newCodeGenerator(8, 10).Generate(ctx, profiles)

	assert.Empty(t, code)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeGenerationExhausted))
}

func TestCodeGenerator_Generate_StoreError(t *testing.T) {
	ctx := context.Background()
	profiles := mockRepo.NewMockProfileRepository(t)
	profiles.EXPECT().ExistsReferralCode(ctx, mock.AnythingOfType("string")).Return(false, errors.New("connection reset")).Once()

	_, err := newCodeGenerator(8, 10).Generate(ctx, profiles)

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrCodeGenerationExhausted))
}
