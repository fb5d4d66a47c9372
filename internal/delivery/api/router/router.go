// Package router contains routing for the public API.
package router

import (
	"waitlist/config"
	"waitlist/internal/delivery/api/middleware"
	"waitlist/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	SignupHandler      *handler.SignupHandler
	LeaderboardHandler *handler.LeaderboardHandler
	ProfileHandler     *handler.ProfileHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	signupHandler      *handler.SignupHandler
	leaderboardHandler *handler.LeaderboardHandler
	profileHandler     *handler.ProfileHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		signupHandler:      params.SignupHandler,
		leaderboardHandler: params.LeaderboardHandler,
		profileHandler:     params.ProfileHandler,
		authMiddleware:     params.AuthMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	signupMiddlewares := []echo.MiddlewareFunc{r.authMiddleware.Authenticate}
	if limiter := r.signupRateLimiter(); limiter != nil {
		// Throttle before token verification
		signupMiddlewares = append([]echo.MiddlewareFunc{limiter}, signupMiddlewares...)
	}
	apiV1.POST("/signup", r.signupHandler.CompleteSignup, signupMiddlewares...)

	apiV1.GET("/leaderboard", r.leaderboardHandler.GetLeaderboard, r.authMiddleware.OptionalAuthenticate)
	apiV1.GET("/invites/:code", r.profileHandler.ResolveInvite)

	meGroup := apiV1.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.profileHandler.GetMe)
		meGroup.GET("/referrals", r.profileHandler.ListReferrals)
		meGroup.GET("/invite/qr", r.profileHandler.GetInviteQR)
	}
}

func (r *router) signupRateLimiter() echo.MiddlewareFunc {
	cfg := r.config.HTTP.RateLimit
	if cfg == nil || !cfg.Enabled || cfg.PerSecond <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.PerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomiddleware.RateLimiter(store)
}
