package components

import (
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/product"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/clock"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewVoucherPolicy,
		NewRatingPolicy,
		NewCodeGenerator,
		commands.NewVoucherUseCase,
		commands.NewDistributionUseCase,
		commands.NewRatingUseCase,
		queries.NewVoucherQueries,
		queries.NewRatingQueries,
		usecase.NewTokenValidator,
	),
)

func NewVoucherPolicy(cfg config.Config) commands.VoucherPolicy {
	return commands.VoucherPolicy{
		DefaultCodeLength: cfg.Voucher.DefaultCodeLength,
		MaxBulkQuantity:   cfg.Voucher.MaxBulkQuantity,
		CodeMaxAttempts:   cfg.Voucher.CodeMaxAttempts,
	}
}

func NewRatingPolicy(cfg config.Config) product.RatingPolicy {
	return product.RatingPolicy{
		ConfidenceWeight: cfg.Rating.ConfidenceWeight,
		DefaultMean:      cfg.Rating.DefaultMean,
	}
}

func NewCodeGenerator() voucher.CodeGenerator {
	return voucher.NewRandomCodeGenerator()
}
