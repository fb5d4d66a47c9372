// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"waitlist/config"
	"waitlist/internal/errors"
	"waitlist/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

const defaultLedgerAuditInterval = time.Hour

// LedgerAuditParams holds dependencies for the ledger audit job, injected by Fx
type LedgerAuditParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Usecase usecase.LedgerAuditUsecase
	Logger  *slog.Logger
}

// LedgerAudit periodically checks that every profile's total equals the sum of its sources.
type LedgerAudit struct {
	sched    gocron.Scheduler
	usecase  usecase.LedgerAuditUsecase
	interval time.Duration
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewLedgerAudit builds the job and ties it to the fx lifecycle. It returns nil when disabled.
func NewLedgerAudit(params LedgerAuditParams) (*LedgerAudit, error) {
	cfg := params.Config.LedgerAudit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Ledger audit disabled")

		return nil, nil
	}

	job, err := newLedgerAudit(params.Usecase, cfg.Interval, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return job.Start()
		},
		OnStop: func(context.Context) error {
			return job.Stop()
		},
	})

	return job, nil
}

func newLedgerAudit(uc usecase.LedgerAuditUsecase, interval time.Duration, logger *slog.Logger) (*LedgerAudit, error) {
	if interval <= 0 {
		interval = defaultLedgerAuditInterval
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &LedgerAudit{
		sched:    sched,
		usecase:  uc,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start registers the sweep and starts the scheduler. The first sweep runs immediately.
func (j *LedgerAudit) Start() error {
	_, err := j.sched.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(j.run),
		gocron.WithName("ledger-audit"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return errors.Wrap(err, "failed to schedule ledger audit")
	}

	j.sched.Start()
	j.logger.Info("Ledger audit scheduled", slog.Duration("interval", j.interval))

	return nil
}

// Stop cancels a running sweep and waits for the scheduler to shut down.
func (j *LedgerAudit) Stop() error {
	j.cancel()

	if err := j.sched.Shutdown(); err != nil {
		return errors.Wrap(err, "failed to stop ledger audit")
	}

	return nil
}

func (j *LedgerAudit) run() {
	start := time.Now()

	drifted, err := j.usecase.CheckPointsLedger(j.ctx)
	if err != nil {
		j.logger.Error("Ledger audit failed", slog.Any("error", err))

		return
	}

	if drifted > 0 {
		j.logger.Warn("Ledger audit found drifted profiles",
			slog.Int("count", drifted),
			slog.Duration("elapsed", time.Since(start)),
		)

		return
	}

	j.logger.Debug("Ledger audit clean", slog.Duration("elapsed", time.Since(start)))
}
