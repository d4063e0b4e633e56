package rating

import (
	"time"

	"github.com/google/uuid"
)

// ProductRating is one customer's rating of one product. At most one exists per (product, user).
type ProductRating struct {
	id               uuid.UUID
	productID        uuid.UUID
	userID           uuid.UUID
	score            Score
	review           Review
	verifiedPurchase bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewProductRating(id, productID, userID uuid.UUID, scoreValue int, reviewText string, verifiedPurchase bool, now time.Time) (*ProductRating, error) {
	score, err := NewScore(scoreValue)
	if err != nil {
		return nil, err
	}

	review, err := NewReview(reviewText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &ProductRating{
		id:               id,
		productID:        productID,
		userID:           userID,
		score:            score,
		review:           review,
		verifiedPurchase: verifiedPurchase,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// Reconstruct rebuilds a persisted rating without re-validating it.
func Reconstruct(id, productID, userID uuid.UUID, scoreValue int, reviewText *string, verifiedPurchase bool, createdAt, updatedAt time.Time) *ProductRating {
	r := &ProductRating{
		id:               id,
		productID:        productID,
		userID:           userID,
		score:            Score{value: scoreValue},
		verifiedPurchase: verifiedPurchase,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
	if reviewText != nil {
		r.review = Review{text: *reviewText}
	}
	return r
}

// Revise replaces score and review in place and returns the previous score.
func (r *ProductRating) Revise(scoreValue int, reviewText string, verifiedPurchase bool, now time.Time) (int, error) {
	score, err := NewScore(scoreValue)
	if err != nil {
		return 0, err
	}
	review, err := NewReview(reviewText)
	if err != nil {
		return 0, err
	}

	previous := r.score.Value()
	r.score = score
	r.review = review
	r.verifiedPurchase = r.verifiedPurchase || verifiedPurchase
	r.updatedAt = now
	return previous, nil
}

func (r *ProductRating) ID() uuid.UUID          { return r.id }
func (r *ProductRating) ProductID() uuid.UUID   { return r.productID }
func (r *ProductRating) UserID() uuid.UUID      { return r.userID }
func (r *ProductRating) Score() Score           { return r.score }
func (r *ProductRating) Review() Review         { return r.review }
func (r *ProductRating) VerifiedPurchase() bool { return r.verifiedPurchase }
func (r *ProductRating) CreatedAt() time.Time   { return r.createdAt }
func (r *ProductRating) UpdatedAt() time.Time   { return r.updatedAt }
