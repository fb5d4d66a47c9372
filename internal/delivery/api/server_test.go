package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"waitlist/config"
	apimiddleware "waitlist/internal/delivery/api/middleware"
	"waitlist/internal/delivery/api/router"
	"waitlist/internal/delivery/api/router/handler"
	"waitlist/internal/domain/entity"
	domainerrors "waitlist/internal/domain/errors"
	"waitlist/internal/domain/service"
	mockService "waitlist/internal/mocks/service"
	mockUsecase "waitlist/internal/mocks/usecase"
	"waitlist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo          *echo.Echo
	verifier      *mockService.MockIdentityVerifier
	humanVerifier *mockService.MockHumanVerifier
	signupUC      *mockUsecase.MockSignupUsecase
	profileUC     *mockUsecase.MockProfileUsecase
	leaderboardUC *mockUsecase.MockLeaderboardUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func newTestAPI(t *testing.T, cfg *config.Config) *apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixtures{
		verifier:      mockService.NewMockIdentityVerifier(t),
		humanVerifier: mockService.NewMockHumanVerifier(t),
		signupUC:      mockUsecase.NewMockSignupUsecase(t),
		profileUC:     mockUsecase.NewMockProfileUsecase(t),
		leaderboardUC: mockUsecase.NewMockLeaderboardUsecase(t),
	}

	f.echo = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		SignupHandler: handler.NewSignupHandler(handler.SignupHandlerParams{
			SignupUC:      f.signupUC,
			ProfileUC:     f.profileUC,
			HumanVerifier: f.humanVerifier,
			Logger:        logger,
		}),
		LeaderboardHandler: handler.NewLeaderboardHandler(handler.LeaderboardHandlerParams{
			LeaderboardUC: f.leaderboardUC,
			Logger:        logger,
		}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC: f.profileUC,
			Logger:    logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(f.verifier, logger),
		Config:         cfg,
	}).RegisterRoutes(f.echo)

	return f
}

func (f *apiFixtures) do(method, target, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f *apiFixtures) signedIn(uid string) {
	f.verifier.EXPECT().Verify(mock.Anything, "token-"+uid).
		Return(&entity.Identity{UID: uid, Email: uid + "@example.com"}, nil)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestAPI_Health(t *testing.T) {
	f := newTestAPI(t, testConfig())

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_Signup_Created(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	f.humanVerifier.EXPECT().Enabled().Return(false)
	f.signupUC.EXPECT().
		CompleteSignup(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, identity *entity.Identity, input *usecase.CompleteSignupInput) (*usecase.SignupResult, error) {
			assert.Equal(t, "alice", identity.UID)
			assert.Equal(t, "Alice_1", input.Username)
			require.NotNil(t, input.ReferrerCode)
			assert.Equal(t, "bob12345", *input.ReferrerCode)

			return &usecase.SignupResult{ReferralCode: "ALICE123"}, nil
		})

	rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{
		"username":     "Alice_1",
		"referrerCode": "bob12345",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"referralCode":"ALICE123"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAPI_Signup_RequiresToken(t *testing.T) {
	f := newTestAPI(t, testConfig())

	rec := f.do(http.MethodPost, "/api/v1/signup", "", map[string]any{"username": "alice"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAPI_Signup_InvalidToken(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.verifier.EXPECT().Verify(mock.Anything, "forged").Return(nil, service.ErrInvalidIdentityToken)

	rec := f.do(http.MethodPost, "/api/v1/signup", "forged", map[string]any{"username": "alice"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decode(t, rec).Error.Code)
}

func TestAPI_Signup_ValidationDetails(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")

	rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{
		"username":     "ab",
		"referrerCode": "not-a-code!",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	details, ok := env.Error.Details.(string)
	require.True(t, ok)
	assert.Equal(t, "username: username must be at least 3 characters", details)
}

func TestAPI_Signup_UnresolvableReferrerCodeIsAccepted(t *testing.T) {
	for _, code := range []string{"stale-code", "not a code!", "a/b", strings.Repeat("Z", 40)} {
		t.Run(code, func(t *testing.T) {
			f := newTestAPI(t, testConfig())
			f.signedIn("alice")
			f.humanVerifier.EXPECT().Enabled().Return(false)
			f.signupUC.EXPECT().
				CompleteSignup(mock.Anything, mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, _ *entity.Identity, input *usecase.CompleteSignupInput) (*usecase.SignupResult, error) {
					require.NotNil(t, input.ReferrerCode)
					assert.Equal(t, code, *input.ReferrerCode)

					return &usecase.SignupResult{ReferralCode: "ALICE123"}, nil
				})

			rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{
				"username":     "alice",
				"referrerCode": code,
			})

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.JSONEq(t, `{"referralCode":"ALICE123"}`, string(decode(t, rec).Data))
		})
	}
}

func TestAPI_Signup_OversizedReferrerCode(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")

	rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{
		"username":     "alice",
		"referrerCode": strings.Repeat("A", 129),
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAPI_Signup_AlreadyOnboardedReturnsExistingCode(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	f.humanVerifier.EXPECT().Enabled().Return(false)
	f.signupUC.EXPECT().
		CompleteSignup(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAlreadyOnboarded)
	f.profileUC.EXPECT().GetProfile(mock.Anything, "alice").Return(&usecase.ProfileView{
		Profile: &entity.UserProfile{UID: "alice", ReferralCode: "ALICE123"},
	}, nil)

	rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{"username": "alice"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"referralCode":"ALICE123"}`, string(decode(t, rec).Data))
}

func TestAPI_Signup_UsernameTaken(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	f.humanVerifier.EXPECT().Enabled().Return(false)
	f.signupUC.EXPECT().
		CompleteSignup(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUsernameTaken)

	rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{"username": "alice"})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USERNAME_TAKEN", decode(t, rec).Error.Code)
}

func TestAPI_Signup_HumanVerification(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	f.humanVerifier.EXPECT().Enabled().Return(true)
	f.profileUC.EXPECT().GetProfile(mock.Anything, "alice").Return(nil, domainerrors.ErrProfileNotFound)
	f.humanVerifier.EXPECT().Verify(mock.Anything, "challenge", mock.Anything).Return(false, nil)

	rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{
		"username":       "alice",
		"turnstileToken": "challenge",
	})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "HUMAN_VERIFICATION_FAILED", decode(t, rec).Error.Code)
}

func TestAPI_Signup_HumanVerifiedCreates(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	f.humanVerifier.EXPECT().Enabled().Return(true)
	f.profileUC.EXPECT().GetProfile(mock.Anything, "alice").Return(nil, domainerrors.ErrProfileNotFound)
	f.humanVerifier.EXPECT().Verify(mock.Anything, "challenge", mock.Anything).Return(true, nil)
	f.signupUC.EXPECT().
		CompleteSignup(mock.Anything, mock.Anything, mock.Anything).
		Return(&usecase.SignupResult{ReferralCode: "ALICE123"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{
		"username":       "alice",
		"turnstileToken": "challenge",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"referralCode":"ALICE123"}`, string(decode(t, rec).Data))
}

func TestAPI_Signup_RetryAfterOnboardingSkipsHumanCheck(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	f.humanVerifier.EXPECT().Enabled().Return(true)
	f.profileUC.EXPECT().GetProfile(mock.Anything, "alice").Return(&usecase.ProfileView{
		Profile: &entity.UserProfile{UID: "alice", ReferralCode: "ALICE123"},
	}, nil)

	rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{
		"username":       "alice",
		"turnstileToken": "already-spent",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"referralCode":"ALICE123"}`, string(decode(t, rec).Data))
	f.humanVerifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
	f.signupUC.AssertNotCalled(t, "CompleteSignup", mock.Anything, mock.Anything, mock.Anything)
}

func TestAPI_Signup_InternalErrorHidesCause(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	f.humanVerifier.EXPECT().Enabled().Return(false)
	f.signupUC.EXPECT().
		CompleteSignup(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to create profile"))

	rec := f.do(http.MethodPost, "/api/v1/signup", "token-alice", map[string]any{"username": "alice"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestAPI_Signup_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.RateLimit = &config.RateLimitConfig{Enabled: true, PerSecond: 0.001, Burst: 1}
	f := newTestAPI(t, cfg)

	first := f.do(http.MethodPost, "/api/v1/signup", "", map[string]any{"username": "alice"})
	second := f.do(http.MethodPost, "/api/v1/signup", "", map[string]any{"username": "alice"})

	assert.Equal(t, http.StatusUnauthorized, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestAPI_Leaderboard(t *testing.T) {
	rank := 3
	board := &entity.Leaderboard{
		TopUsers: []entity.UserSummary{
			{UID: "bob", Username: "bob", PointsTotal: 15, PointsFromSignup: 5, PointsFromReferrals: 10},
		},
		TotalUsers:      4,
		CurrentUserRank: &rank,
		CurrentUserData: &entity.UserSummary{UID: "alice", Username: "alice", PointsTotal: 5, PointsFromSignup: 5},
	}

	t.Run("signed in", func(t *testing.T) {
		f := newTestAPI(t, testConfig())
		f.signedIn("alice")
		f.leaderboardUC.EXPECT().GetLeaderboard(mock.Anything, "alice").Return(board, nil)

		rec := f.do(http.MethodGet, "/api/v1/leaderboard", "token-alice", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"topUsers":[{"uid":"bob","username":"bob","pointsTotal":15,"pointsFromSignup":5,"pointsFromReferrals":10,"pointsFromLoops":0}],
			"totalUsers":4,
			"currentUserRank":3,
			"currentUserData":{"uid":"alice","username":"alice","pointsTotal":5,"pointsFromSignup":5,"pointsFromReferrals":0,"pointsFromLoops":0}
		}`, string(decode(t, rec).Data))
	})

	t.Run("invalid token is anonymous", func(t *testing.T) {
		f := newTestAPI(t, testConfig())
		f.verifier.EXPECT().Verify(mock.Anything, "stale").Return(nil, service.ErrInvalidIdentityToken)
		f.leaderboardUC.EXPECT().GetLeaderboard(mock.Anything, "").Return(&entity.Leaderboard{}, nil)

		rec := f.do(http.MethodGet, "/api/v1/leaderboard", "stale", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"topUsers":[],"totalUsers":0,"currentUserRank":null,"currentUserData":null}`,
			string(decode(t, rec).Data))
	})

	t.Run("unavailable", func(t *testing.T) {
		f := newTestAPI(t, testConfig())
		f.leaderboardUC.EXPECT().GetLeaderboard(mock.Anything, "").Return(nil, domainerrors.ErrLeaderboardUnavailable)

		rec := f.do(http.MethodGet, "/api/v1/leaderboard", "", nil)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "LEADERBOARD_UNAVAILABLE", decode(t, rec).Error.Code)
	})
}

func TestAPI_ResolveInvite(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.profileUC.EXPECT().ResolveInvite(mock.Anything, "bob12345").
		Return(&usecase.Invite{Username: "bob", ReferralCode: "BOB12345"}, nil)
	f.profileUC.EXPECT().ResolveInvite(mock.Anything, "missing").
		Return(nil, domainerrors.ErrReferralCodeNotFound)

	rec := f.do(http.MethodGet, "/api/v1/invites/bob12345", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"bob","referralCode":"BOB12345"}`, string(decode(t, rec).Data))

	rec = f.do(http.MethodGet, "/api/v1/invites/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REFERRAL_CODE_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestAPI_Me(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	f.profileUC.EXPECT().GetProfile(mock.Anything, "alice").Return(&usecase.ProfileView{
		Profile: &entity.UserProfile{
			UID:          "alice",
			Username:     "alice",
			ReferralCode: "ALICE123",
			Points:       entity.Points{Total: 6, FromSignup: 5, FromLoops: 1},
			Status:       entity.ProfileStatusActive,
		},
		InviteURL: "https://example.com/invite/ALICE123",
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/me", "token-alice", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.ProfileResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, "ALICE123", body.ReferralCode)
	assert.Equal(t, int64(6), body.Points.Total)
	assert.Equal(t, int64(1), body.Points.FromLoops)
	assert.Equal(t, "https://example.com/invite/ALICE123", body.InviteURL)
}

func TestAPI_MeReferrals(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	f.profileUC.EXPECT().ListReferrals(mock.Anything, "alice").Return([]*entity.ReferredUser{
		{Username: "carol", Status: entity.ReferralStatusConfirmed},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/me/referrals", "token-alice", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []handler.ReferredUserResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	require.Len(t, body, 1)
	assert.Equal(t, "carol", body[0].Username)
	assert.Equal(t, "confirmed", body[0].Status)
}

func TestAPI_MeInviteQR(t *testing.T) {
	f := newTestAPI(t, testConfig())
	f.signedIn("alice")
	png := []byte{0x89, 'P', 'N', 'G'}
	f.profileUC.EXPECT().InviteQR(mock.Anything, "alice").Return(png, nil)

	rec := f.do(http.MethodGet, "/api/v1/me/invite/qr", "token-alice", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAPI_MeRequiresToken(t *testing.T) {
	f := newTestAPI(t, testConfig())

	for _, path := range []string{"/api/v1/me", "/api/v1/me/referrals", "/api/v1/me/invite/qr"} {
		rec := f.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}
