package converter

import (
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/product"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/rating"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func RatingToCreateParams(r *rating.ProductRating) query.CreateProductRatingParams {
	return query.CreateProductRatingParams{
		ID:               r.ID(),
		ProductID:        r.ProductID(),
		UserID:           r.UserID(),
		Rating:           int16(r.Score().Value()), // #nosec G115 -- score is 1..5
		Review:           pgconv.StringPtrToPgtype(r.Review().Ptr()),
		VerifiedPurchase: r.VerifiedPurchase(),
		CreatedAt:        pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RatingToUpdateParams(r *rating.ProductRating) query.UpdateProductRatingParams {
	return query.UpdateProductRatingParams{
		ID:               r.ID(),
		Rating:           int16(r.Score().Value()), // #nosec G115 -- score is 1..5
		Review:           pgconv.StringPtrToPgtype(r.Review().Ptr()),
		VerifiedPurchase: r.VerifiedPurchase(),
		UpdatedAt:        pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RatingFromRow(row query.ProductRating) *rating.ProductRating {
	return rating.Reconstruct(
		row.ID,
		row.ProductID,
		row.UserID,
		int(row.Rating),
		pgconv.StringPtrFromPgtype(row.Review),
		row.VerifiedPurchase,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func AggregateFromStats(row query.ProductRatingStats) product.RatingAggregate {
	return product.NewRatingAggregate(int(row.RatingCount), row.AverageRating, row.BayesianRating)
}

func AggregateToStatsParams(productID uuid.UUID, agg product.RatingAggregate) query.UpdateProductRatingStatsParams {
	return query.UpdateProductRatingStatsParams{
		ID:             productID,
		RatingCount:    int32(agg.Count()), // #nosec G115 -- bounded by rows in product_ratings
		AverageRating:  agg.Average(),
		BayesianRating: agg.Bayesian(),
	}
}
