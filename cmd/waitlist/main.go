package main

import (
	"context"
	"log/slog"
	"os"

	"waitlist/config"
	"waitlist/internal/delivery"
	"waitlist/internal/delivery/api"
	"waitlist/internal/delivery/api/middleware"
	"waitlist/internal/delivery/api/router/handler"
	"waitlist/internal/domain/service"
	"waitlist/internal/infra/auth"
	logs "waitlist/internal/infra/log"
	"waitlist/internal/infra/persistence"
	"waitlist/internal/infra/pubsub"
	"waitlist/internal/infra/qrcode"
	"waitlist/internal/infra/scheduler"
	"waitlist/internal/infra/turnstile"
	"waitlist/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startLedgerAudit,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			persistence.NewRepositories,
		),
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			turnstile.NewHumanVerifier,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReferralService,
			impl.NewSignupService,
			impl.NewLeaderboardService,
			impl.NewProfileService,
			impl.NewLedgerAuditService,
			scheduler.NewLedgerAudit,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSignupHandler,
			handler.NewLeaderboardHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startLedgerAudit forces construction of the scheduled sweep; its hooks do the rest.
func startLedgerAudit(*scheduler.LedgerAudit) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
