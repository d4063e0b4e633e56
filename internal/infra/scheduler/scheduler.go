// Package scheduler runs the periodic rating sweep and targeted voucher distribution.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 10 * time.Minute

const (
	JobRatingSweep         = "rating_sweep"
	JobVoucherDistribution = "voucher_distribution"
)

type Scheduler struct {
	cron *cron.Cron
	jobs map[string]cron.EntryID
}

func New(cfg config.SchedulerConfig, ratings commands.RatingCommands, distribution commands.DistributionCommands) (*Scheduler, error) {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	s := &Scheduler{cron: c, jobs: map[string]cron.EntryID{}}

	if err := s.add(JobRatingSweep, cfg.RatingSweepSpec, func(ctx context.Context) error {
		n, err := ratings.RecalculateAll(ctx)
		if err == nil {
			slog.Info("scheduled rating sweep finished", "products", n)
		}
		return err
	}); err != nil {
		return nil, err
	}

	if err := s.add(JobVoucherDistribution, cfg.DistributionSpec, func(ctx context.Context) error {
		report, err := distribution.DistributeAll(ctx)
		if err == nil {
			slog.Info("scheduled voucher distribution finished", "vouchers", report.Vouchers, "granted", report.Granted)
		}
		return err
	}); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) add(name, spec string, run func(ctx context.Context) error) error {
	id, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := run(ctx); err != nil {
			slog.Error("scheduled job failed", "job", name, "error", err.Error())
			return
		}
		slog.Debug("scheduled job done", "job", name, "duration", time.Since(start))
	})
	if err != nil {
		return fmt.Errorf("invalid schedule for %s %q: %w", name, spec, err)
	}
	s.jobs[name] = id
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "jobs", len(s.jobs))
}

// Stop waits for running jobs or ctx, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow executes a registered job synchronously.
func (s *Scheduler) RunNow(name string) error {
	id, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job %q", name)
	}
	s.cron.Entry(id).WrappedJob.Run()
	return nil
}

func (s *Scheduler) Next(name string) (time.Time, bool) {
	id, ok := s.jobs[name]
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
