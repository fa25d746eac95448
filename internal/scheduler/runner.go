// Package scheduler runs the service's periodic jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/event-betting-service/internal/service"
)

// Runner schedules jobs with second-resolution cron specs
type Runner struct {
	cron    *cron.Cron
	baseCtx context.Context
	logger  zerolog.Logger
}

// New creates a runner whose jobs receive baseCtx
func New(baseCtx context.Context, logger zerolog.Logger) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	logger = logger.With().Str("component", "scheduler").Logger()
	cronLogger := cronLogger{logger: logger}

	return &Runner{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		baseCtx: baseCtx,
		logger:  logger,
	}
}

// Add schedules job under name. Job errors are logged.
func (r *Runner) Add(name, spec string, job func(context.Context) error) (cron.EntryID, error) {
	id, err := r.cron.AddFunc(spec, func() {
		start := time.Now()
		if err := job(r.baseCtx); err != nil {
			r.logger.Error().Err(err).Str("job", name).Msg("scheduled job failed")
			return
		}
		r.logger.Debug().Str("job", name).Dur("took", time.Since(start)).Msg("scheduled job finished")
	})
	if err != nil {
		return 0, fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	return id, nil
}

// AddSubscriptionSweep schedules the daily expiry of overdue gambler subscriptions
func (r *Runner) AddSubscriptionSweep(spec string, gamblers service.Gamblers, now func() time.Time) (cron.EntryID, error) {
	return r.Add("subscription_sweep", spec, subscriptionSweep(gamblers, now))
}

func subscriptionSweep(gamblers service.Gamblers, now func() time.Time) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := gamblers.ExpireOverdueSubscriptions(ctx, now())
		return err
	}
}

func (r *Runner) Start() {
	r.logger.Info().Int("jobs", len(r.cron.Entries())).Msg("cron started")
	r.cron.Start()
}

// Stop waits for running jobs to finish
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info().Msg("cron stopped")
}

// cronLogger adapts zerolog to cron.Logger
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
