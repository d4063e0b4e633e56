package readstore

import (
	"context"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatingReadQueries interface {
	GetProductRatingStats(ctx context.Context, db query.DBTX, productID uuid.UUID) (query.ProductRatingStats, error)
}

type RatingReadStore struct {
	queries RatingReadQueries
	db      query.DBTX
}

func NewRatingReadStore(queries RatingReadQueries, db query.DBTX) *RatingReadStore {
	return &RatingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RatingReadStore) GetSummary(ctx context.Context, productID uuid.UUID) (*queries.RatingSummary, error) {
	row, err := r.queries.GetProductRatingStats(ctx, r.db, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product rating stats", err)
	}
	return &queries.RatingSummary{
		ProductID:      row.ID,
		RatingCount:    int(row.RatingCount),
		AverageRating:  row.AverageRating,
		BayesianRating: row.BayesianRating,
	}, nil
}
