package repository

import (
	"context"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/product"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/repository/converter"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	GetProductRatingStatsForUpdate(ctx context.Context, db query.DBTX, productID uuid.UUID) (query.ProductRatingStats, error)
	GetGlobalRatingTotals(ctx context.Context, db query.DBTX) (query.GetGlobalRatingTotalsRow, error)
	UpdateProductRatingStats(ctx context.Context, db query.DBTX, arg query.UpdateProductRatingStatsParams) (int64, error)
	ListRatedProductsForUpdate(ctx context.Context, db query.DBTX) ([]query.ProductRatingStats, error)
}

// RatingStatsRepository owns the rating columns of products.
type RatingStatsRepository struct {
	q RatingStatsQueries
}

func NewRatingStatsRepository(q RatingStatsQueries) *RatingStatsRepository {
	return &RatingStatsRepository{q: q}
}

func (r *RatingStatsRepository) LockProduct(ctx context.Context, tx query.DBTX, productID uuid.UUID) (product.RatingAggregate, error) {
	row, err := r.q.GetProductRatingStatsForUpdate(ctx, tx, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return product.RatingAggregate{}, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return product.RatingAggregate{}, infra.WrapRepoErr("failed to lock product rating stats", err)
	}
	return converter.AggregateFromStats(row), nil
}

func (r *RatingStatsRepository) GlobalTotals(ctx context.Context, tx query.DBTX) (product.GlobalTotals, error) {
	row, err := r.q.GetGlobalRatingTotals(ctx, tx)
	if err != nil {
		return product.GlobalTotals{}, infra.WrapRepoErr("failed to get global rating totals", err)
	}
	return product.GlobalTotals{WeightedSum: row.WeightedSum, Count: row.Count}, nil
}

func (r *RatingStatsRepository) Save(ctx context.Context, tx query.DBTX, productID uuid.UUID, agg product.RatingAggregate) error {
	n, err := r.q.UpdateProductRatingStats(ctx, tx, converter.AggregateToStatsParams(productID, agg))
	if err != nil {
		return infra.WrapRepoErr("failed to save product rating stats", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RatingStatsRepository) ListRatedForUpdate(ctx context.Context, tx query.DBTX) ([]shared.RatedProduct, error) {
	rows, err := r.q.ListRatedProductsForUpdate(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rated products", err)
	}
	out := make([]shared.RatedProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.RatedProduct{
			ProductID: row.ID,
			Aggregate: converter.AggregateFromStats(row),
		})
	}
	return out, nil
}
