package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func scanRatingStats(row pgx.Row) (ProductRatingStats, error) {
	var i ProductRatingStats
	err := row.Scan(&i.ID, &i.RatingCount, &i.AverageRating, &i.BayesianRating)
	return i, err
}

const getProductRatingStats = `-- name: GetProductRatingStats :one
SELECT id, rating_count, average_rating, bayesian_rating FROM products WHERE id = $1`

func (q *Queries) GetProductRatingStats(ctx context.Context, db DBTX, productID uuid.UUID) (ProductRatingStats, error) {
	return scanRatingStats(db.QueryRow(ctx, getProductRatingStats, productID))
}

const getProductRatingStatsForUpdate = `-- name: GetProductRatingStatsForUpdate :one
SELECT id, rating_count, average_rating, bayesian_rating FROM products WHERE id = $1 FOR UPDATE`

// GetProductRatingStatsForUpdate serializes rating writers of one product.
func (q *Queries) GetProductRatingStatsForUpdate(ctx context.Context, db DBTX, productID uuid.UUID) (ProductRatingStats, error) {
	return scanRatingStats(db.QueryRow(ctx, getProductRatingStatsForUpdate, productID))
}

const listRatedProductsForUpdate = `-- name: ListRatedProductsForUpdate :many
SELECT id, rating_count, average_rating, bayesian_rating
FROM products
WHERE rating_count > 0
ORDER BY id
FOR UPDATE`

func (q *Queries) ListRatedProductsForUpdate(ctx context.Context, db DBTX) ([]ProductRatingStats, error) {
	rows, err := db.Query(ctx, listRatedProductsForUpdate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ProductRatingStats{}
	for rows.Next() {
		i, err := scanRatingStats(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type GetGlobalRatingTotalsRow struct {
	WeightedSum float64
	Count       int64
}

const getGlobalRatingTotals = `-- name: GetGlobalRatingTotals :one
SELECT COALESCE(SUM(average_rating * rating_count), 0)::float8, COALESCE(SUM(rating_count), 0)::bigint
FROM products
WHERE rating_count > 0`

func (q *Queries) GetGlobalRatingTotals(ctx context.Context, db DBTX) (GetGlobalRatingTotalsRow, error) {
	row := db.QueryRow(ctx, getGlobalRatingTotals)
	var i GetGlobalRatingTotalsRow
	err := row.Scan(&i.WeightedSum, &i.Count)
	return i, err
}

type UpdateProductRatingStatsParams struct {
	ID             uuid.UUID
	RatingCount    int32
	AverageRating  float64
	BayesianRating float64
}

const updateProductRatingStats = `-- name: UpdateProductRatingStats :execrows
UPDATE products
SET rating_count = $2, average_rating = $3, bayesian_rating = $4, updated_at = now()
WHERE id = $1`

func (q *Queries) UpdateProductRatingStats(ctx context.Context, db DBTX, arg UpdateProductRatingStatsParams) (int64, error) {
	result, err := db.Exec(ctx, updateProductRatingStats, arg.ID, arg.RatingCount, arg.AverageRating, arg.BayesianRating)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
