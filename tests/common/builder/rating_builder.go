//go:build unit || e2e

package builder

import (
	"time"

	domrating "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/rating"
	reqdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/request"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatingBuilder struct {
	ProductID        uuid.UUID
	UserID           uuid.UUID
	Score            int
	Review           string
	VerifiedPurchase bool
	CreatedAt        time.Time
}

func NewRatingBuilder() *RatingBuilder {
	return &RatingBuilder{
		ProductID:        uuid.New(),
		UserID:           uuid.New(),
		Score:            5,
		Review:           "Fresh and well packed",
		VerifiedPurchase: true,
		CreatedAt:        time.Now(),
	}
}

func (r *RatingBuilder) With(mutate func(*RatingBuilder)) *RatingBuilder {
	mutate(r)
	return r
}

func (r *RatingBuilder) BuildDomain() (*domrating.ProductRating, error) {
	return domrating.NewProductRating(uuid.Nil, r.ProductID, r.UserID, r.Score, r.Review, r.VerifiedPurchase, r.CreatedAt)
}

func (r *RatingBuilder) BuildSubmitRequestDTO() reqdto.SubmitRatingRequest {
	return reqdto.SubmitRatingRequest{
		Rating: r.Score,
		Review: r.Review,
	}
}

func (r *RatingBuilder) BuildSummary(count int, average, bayesian float64) *queries.RatingSummary {
	return &queries.RatingSummary{
		ProductID:      r.ProductID,
		RatingCount:    count,
		AverageRating:  average,
		BayesianRating: bayesian,
	}
}

func (r *RatingBuilder) WithProductID(id uuid.UUID) *RatingBuilder {
	r.ProductID = id
	return r
}

func (r *RatingBuilder) WithUserID(id uuid.UUID) *RatingBuilder {
	r.UserID = id
	return r
}

func (r *RatingBuilder) WithScore(score int) *RatingBuilder {
	r.Score = score
	return r
}

func (r *RatingBuilder) WithReview(review string) *RatingBuilder {
	r.Review = review
	return r
}
