package bootstrap

import (
	"context"
	"log/slog"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/scheduler"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, ratings commands.RatingCommands, distribution commands.DistributionCommands) error {
	if !cfg.Scheduler.Enabled {
		slog.Info("scheduler disabled")
		return nil
	}
	s, err := scheduler.New(cfg.Scheduler, ratings, distribution)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
