package handler

import (
	"log/slog"

	"waitlist/internal/delivery/api/response"
	deliverycontext "waitlist/internal/delivery/context"
	"waitlist/internal/domain/entity"
	"waitlist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeaderboardHandlerParams holds dependencies for LeaderboardHandler, injected by Fx.
type LeaderboardHandlerParams struct {
	fx.In

	LeaderboardUC usecase.LeaderboardUsecase
	Logger        *slog.Logger
}

// LeaderboardHandler serves the public ranking
type LeaderboardHandler struct {
	leaderboardUC usecase.LeaderboardUsecase
	logger        *slog.Logger
}

// NewLeaderboardHandler is the constructor for LeaderboardHandler
func NewLeaderboardHandler(params LeaderboardHandlerParams) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUC: params.LeaderboardUC,
		logger:        params.Logger,
	}
}

// UserSummaryResponse is a ranked member
type UserSummaryResponse struct {
	UID                 string `json:"uid"`
	Username            string `json:"username"`
	PointsTotal         int64  `json:"pointsTotal"`
	PointsFromSignup    int64  `json:"pointsFromSignup"`
	PointsFromReferrals int64  `json:"pointsFromReferrals"`
	PointsFromLoops     int64  `json:"pointsFromLoops"`
}

// LeaderboardResponse is the ranking snapshot
type LeaderboardResponse struct {
	TopUsers        []UserSummaryResponse `json:"topUsers"`
	TotalUsers      int                   `json:"totalUsers"`
	CurrentUserRank *int                  `json:"currentUserRank"`
	CurrentUserData *UserSummaryResponse  `json:"currentUserData"`
}

// GetLeaderboard returns the top members and, for a signed-in caller, their rank
func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	var callerUID string
	if identity := deliverycontext.GetIdentity(c); identity != nil {
		callerUID = identity.UID
	}

	board, err := h.leaderboardUC.GetLeaderboard(c.Request().Context(), callerUID)
	if err != nil {
		return err
	}

	return response.OK(c, toLeaderboardResponse(board))
}

func toLeaderboardResponse(board *entity.Leaderboard) *LeaderboardResponse {
	resp := &LeaderboardResponse{
		TopUsers:        make([]UserSummaryResponse, 0, len(board.TopUsers)),
		TotalUsers:      board.TotalUsers,
		CurrentUserRank: board.CurrentUserRank,
	}
	for _, user := range board.TopUsers {
		resp.TopUsers = append(resp.TopUsers, toUserSummaryResponse(user))
	}
	if board.CurrentUserData != nil {
		current := toUserSummaryResponse(*board.CurrentUserData)
		resp.CurrentUserData = &current
	}

	return resp
}

func toUserSummaryResponse(user entity.UserSummary) UserSummaryResponse {
	return UserSummaryResponse{
		UID:                 user.UID,
		Username:            user.Username,
		PointsTotal:         user.PointsTotal,
		PointsFromSignup:    user.PointsFromSignup,
		PointsFromReferrals: user.PointsFromReferrals,
		PointsFromLoops:     user.PointsFromLoops,
	}
}
