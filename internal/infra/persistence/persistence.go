// Package persistence selects the storage backend behind the repository interfaces.
package persistence

import (
	"context"
	"log/slog"

	"waitlist/config"
	"waitlist/internal/domain/repository"
	"waitlist/internal/errors"
	firebaseinfra "waitlist/internal/infra/firebase"
	"waitlist/internal/infra/persistence/firestore"
	"waitlist/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of stores the usecases depend on.
type Repositories struct {
	fx.Out

	TxManager    repository.TransactionManager
	ProfileRepo  repository.ProfileRepository
	ReferralRepo repository.ReferralRepository
	EventRepo    repository.EventRepository
}

// NewRepositories builds the repositories for the configured storage driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver
	params.Logger.Info("Initializing storage", slog.String("driver", driver))

	switch driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:    postgres.NewTransactionManager(db),
			ProfileRepo:  postgres.NewProfileRepository(db),
			ReferralRepo: postgres.NewReferralRepository(db),
			EventRepo:    postgres.NewEventRepository(db),
		}, nil

	case config.StorageDriverFirestore:
		app, err := firebaseinfra.NewApp(firebaseinfra.Params{
			Ctx:    params.Ctx,
			Config: params.Config,
			Logger: params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			Ctx:       params.Ctx,
			App:       app,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:    firestore.NewTransactionManager(client),
			ProfileRepo:  firestore.NewProfileRepository(client),
			ReferralRepo: firestore.NewReferralRepository(client),
			EventRepo:    firestore.NewEventRepository(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported storage driver: %s", driver)
	}
}
