package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateVoucherUsageParams struct {
	ID        uuid.UUID
	VoucherID uuid.UUID
	UserID    uuid.UUID
	OrderID   uuid.UUID
	Amount    float64
	CreatedAt pgtype.Timestamptz
}

const createVoucherUsage = `-- name: CreateVoucherUsage :one
INSERT INTO voucher_usages (id, voucher_id, user_id, order_id, amount, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (q *Queries) CreateVoucherUsage(ctx context.Context, db DBTX, arg CreateVoucherUsageParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createVoucherUsage,
		arg.ID,
		arg.VoucherID,
		arg.UserID,
		arg.OrderID,
		arg.Amount,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

type CountVoucherUsageByUserParams struct {
	VoucherID uuid.UUID
	UserID    uuid.UUID
}

const countVoucherUsageByUser = `-- name: CountVoucherUsageByUser :one
SELECT count(*) FROM voucher_usages
WHERE voucher_id = $1 AND user_id = $2`

func (q *Queries) CountVoucherUsageByUser(ctx context.Context, db DBTX, arg CountVoucherUsageByUserParams) (int64, error) {
	row := db.QueryRow(ctx, countVoucherUsageByUser, arg.VoucherID, arg.UserID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
