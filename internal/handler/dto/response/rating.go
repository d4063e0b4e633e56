package response

import (
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RatingResponse struct {
	RatingID         uuid.UUID `json:"rating_id"`
	ProductID        uuid.UUID `json:"product_id"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	RatingCount      int       `json:"rating_count"`
	AverageRating    float64   `json:"average_rating"`
	BayesianRating   float64   `json:"bayesian_rating"`
}

func FromRatingResult(r *commands.RatingResult) *RatingResponse {
	var res RatingResponse
	_ = copier.Copy(&res, r)
	return &res
}

type RatingSummaryResponse struct {
	ProductID      uuid.UUID `json:"product_id"`
	RatingCount    int       `json:"rating_count"`
	AverageRating  float64   `json:"average_rating"`
	BayesianRating float64   `json:"bayesian_rating"`
}

func FromRatingSummary(s *queries.RatingSummary) *RatingSummaryResponse {
	var res RatingSummaryResponse
	_ = copier.Copy(&res, s)
	return &res
}

type RecalculateResponse struct {
	Products int `json:"products"`
}
