package queries

import (
	"context"
	"errors"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

type RatingReadStore interface {
	GetSummary(ctx context.Context, productID uuid.UUID) (*RatingSummary, error)
}

type RatingQueries interface {
	GetSummary(ctx context.Context, productID uuid.UUID) (*RatingSummary, error)
}

type ratingQueriesImpl struct {
	store RatingReadStore
}

func NewRatingQueries(store RatingReadStore) RatingQueries {
	return &ratingQueriesImpl{store: store}
}

func (q *ratingQueriesImpl) GetSummary(ctx context.Context, productID uuid.UUID) (*RatingSummary, error) {
	s, err := q.store.GetSummary(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s, nil
}
