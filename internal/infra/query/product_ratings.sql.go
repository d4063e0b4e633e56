package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductUserKey struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
}

const getProductRatingByProductAndUser = `-- name: GetProductRatingByProductAndUser :one
SELECT id, product_id, user_id, rating, review, verified_purchase, created_at, updated_at
FROM product_ratings
WHERE product_id = $1 AND user_id = $2`

func (q *Queries) GetProductRatingByProductAndUser(ctx context.Context, db DBTX, arg ProductUserKey) (ProductRating, error) {
	row := db.QueryRow(ctx, getProductRatingByProductAndUser, arg.ProductID, arg.UserID)
	var i ProductRating
	err := row.Scan(
		&i.ID,
		&i.ProductID,
		&i.UserID,
		&i.Rating,
		&i.Review,
		&i.VerifiedPurchase,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

type CreateProductRatingParams struct {
	ID               uuid.UUID
	ProductID        uuid.UUID
	UserID           uuid.UUID
	Rating           int16
	Review           pgtype.Text
	VerifiedPurchase bool
	CreatedAt        pgtype.Timestamptz
}

const createProductRating = `-- name: CreateProductRating :one
INSERT INTO product_ratings (id, product_id, user_id, rating, review, verified_purchase, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING id`

func (q *Queries) CreateProductRating(ctx context.Context, db DBTX, arg CreateProductRatingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createProductRating,
		arg.ID,
		arg.ProductID,
		arg.UserID,
		arg.Rating,
		arg.Review,
		arg.VerifiedPurchase,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

type UpdateProductRatingParams struct {
	ID               uuid.UUID
	Rating           int16
	Review           pgtype.Text
	VerifiedPurchase bool
	UpdatedAt        pgtype.Timestamptz
}

const updateProductRating = `-- name: UpdateProductRating :execrows
UPDATE product_ratings
SET rating = $2, review = $3, verified_purchase = $4, updated_at = $5
WHERE id = $1`

func (q *Queries) UpdateProductRating(ctx context.Context, db DBTX, arg UpdateProductRatingParams) (int64, error) {
	result, err := db.Exec(ctx, updateProductRating, arg.ID, arg.Rating, arg.Review, arg.VerifiedPurchase, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteProductRating = `-- name: DeleteProductRating :execrows
DELETE FROM product_ratings WHERE id = $1`

func (q *Queries) DeleteProductRating(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteProductRating, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
