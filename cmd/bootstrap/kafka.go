package bootstrap

import (
	"context"
	"log/slog"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/notify"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewVoucherNotifier,
	),
)

func NewVoucherNotifier(lc fx.Lifecycle, cfg config.Config) (commands.VoucherNotifier, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		slog.Info("kafka not configured, voucher grants will only be logged")
		return notify.LogNotifier{}, nil
	}

	n, err := notify.NewKafkaNotifier(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	slog.Info("kafka notifier ready", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return n, nil
}
