package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, user_id, status, total::float8, discount::float8, voucher_code, created_at`

func scanOrder(row pgx.Row) (Order, error) {
	var i Order
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Status,
		&i.Total,
		&i.Discount,
		&i.VoucherCode,
		&i.CreatedAt,
	)
	return i, err
}

const getOrderByID = `-- name: GetOrderByID :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

func (q *Queries) GetOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (Order, error) {
	return scanOrder(db.QueryRow(ctx, getOrderByID, id))
}

const getOrderForUpdate = `-- name: GetOrderForUpdate :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`

func (q *Queries) GetOrderForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Order, error) {
	return scanOrder(db.QueryRow(ctx, getOrderForUpdate, id))
}

type ApplyOrderDiscountParams struct {
	ID          uuid.UUID
	Total       float64
	Discount    float64
	VoucherCode pgtype.Text
}

const applyOrderDiscount = `-- name: ApplyOrderDiscount :execrows
UPDATE orders SET total = $2, discount = $3, voucher_code = $4, updated_at = now()
WHERE id = $1`

func (q *Queries) ApplyOrderDiscount(ctx context.Context, db DBTX, arg ApplyOrderDiscountParams) (int64, error) {
	result, err := db.Exec(ctx, applyOrderDiscount, arg.ID, arg.Total, arg.Discount, arg.VoucherCode)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type HasCompletedPurchaseParams struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

const hasCompletedPurchase = `-- name: HasCompletedPurchase :one
SELECT EXISTS (
    SELECT 1 FROM orders o
    JOIN order_items oi ON oi.order_id = o.id
    WHERE o.user_id = $1 AND oi.product_id = $2 AND o.status = 'completed'
)`

func (q *Queries) HasCompletedPurchase(ctx context.Context, db DBTX, arg HasCompletedPurchaseParams) (bool, error) {
	row := db.QueryRow(ctx, hasCompletedPurchase, arg.UserID, arg.ProductID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
