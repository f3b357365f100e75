// Package job contains background jobs that run alongside the HTTP servers.
package job

import (
	"context"
	"log/slog"
	"time"

	"inventory/config"
	"inventory/internal/delivery"
	"inventory/internal/usecase"
	"inventory/internal/util"

	"go.uber.org/fx"
)

type sessionCleanup struct {
	interval  time.Duration
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
	done      chan struct{}
}

// SessionCleanupParams holds dependencies for the session cleanup job, injected by Fx.
type SessionCleanupParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

// NewSessionCleanup creates the job that periodically deletes expired console sessions.
func NewSessionCleanup(params SessionCleanupParams) delivery.Delivery {
	job := newSessionCleanup(params.Cfg.Session.CleanupInterval, params.SessionUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(job.done)

			return nil
		},
	})

	return job
}

func newSessionCleanup(interval time.Duration, sessionUC usecase.SessionUsecase, logger *slog.Logger) *sessionCleanup {
	return &sessionCleanup{
		interval:  interval,
		sessionUC: sessionUC,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Serve runs a cleanup every interval until the job is stopped or ctx is done.
func (j *sessionCleanup) Serve(ctx context.Context) error {
	j.logger.Info("Starting session cleanup job", slog.String("interval", util.FormatDuration(j.interval)))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.done:
			j.logger.Info("Stopping session cleanup job")

			return nil
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *sessionCleanup) runOnce(ctx context.Context) {
	started := time.Now()
	removed, err := j.sessionUC.CleanupExpired(ctx)
	if err != nil {
		j.logger.Error("Failed to clean up expired sessions", slog.Any("error", err))

		return
	}

	if removed > 0 {
		j.logger.Info("Expired sessions cleaned up",
			slog.Int64("removed", removed),
			slog.String("took", util.FormatDuration(time.Since(started))),
		)
	}
}
