package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherUserKey struct {
	VoucherID uuid.UUID
	UserID    uuid.UUID
}

const createVoucherGrant = `-- name: CreateVoucherGrant :execrows
INSERT INTO voucher_users (voucher_id, user_id)
VALUES ($1, $2)
ON CONFLICT (voucher_id, user_id) DO NOTHING`

// CreateVoucherGrant reports 0 rows when the user already holds the voucher.
func (q *Queries) CreateVoucherGrant(ctx context.Context, db DBTX, arg VoucherUserKey) (int64, error) {
	result, err := db.Exec(ctx, createVoucherGrant, arg.VoucherID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getVoucherGrant = `-- name: GetVoucherGrant :one
SELECT voucher_id, user_id, is_redeemed, redeemed_at, created_at
FROM voucher_users
WHERE voucher_id = $1 AND user_id = $2`

func (q *Queries) GetVoucherGrant(ctx context.Context, db DBTX, arg VoucherUserKey) (VoucherUser, error) {
	row := db.QueryRow(ctx, getVoucherGrant, arg.VoucherID, arg.UserID)
	var i VoucherUser
	err := row.Scan(
		&i.VoucherID,
		&i.UserID,
		&i.IsRedeemed,
		&i.RedeemedAt,
		&i.CreatedAt,
	)
	return i, err
}

type MarkVoucherGrantRedeemedParams struct {
	VoucherID  uuid.UUID
	UserID     uuid.UUID
	RedeemedAt pgtype.Timestamptz
}

const markVoucherGrantRedeemed = `-- name: MarkVoucherGrantRedeemed :execrows
UPDATE voucher_users SET is_redeemed = true, redeemed_at = $3
WHERE voucher_id = $1 AND user_id = $2`

func (q *Queries) MarkVoucherGrantRedeemed(ctx context.Context, db DBTX, arg MarkVoucherGrantRedeemedParams) (int64, error) {
	result, err := db.Exec(ctx, markVoucherGrantRedeemed, arg.VoucherID, arg.UserID, arg.RedeemedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type ListGrantedVouchersByUserRow struct {
	Voucher    Voucher
	IsRedeemed bool
	RedeemedAt pgtype.Timestamptz
	GrantedAt  pgtype.Timestamptz
}

const listGrantedVouchersByUser = `-- name: ListGrantedVouchersByUser :many
SELECT v.id, v.code, v.type, v.value::float8, v.min_spend::float8, v.expires_at, v.is_active,
       v.max_usage_per_user, v.max_total_usage, v.total_usage, v.qualification_type, v.criteria,
       v.created_at, v.updated_at, vu.is_redeemed, vu.redeemed_at, vu.created_at
FROM voucher_users vu
JOIN vouchers v ON v.id = vu.voucher_id
WHERE vu.user_id = $1
ORDER BY vu.created_at DESC, v.id DESC`

func (q *Queries) ListGrantedVouchersByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]ListGrantedVouchersByUserRow, error) {
	rows, err := db.Query(ctx, listGrantedVouchersByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListGrantedVouchersByUserRow{}
	for rows.Next() {
		var i ListGrantedVouchersByUserRow
		v := &i.Voucher
		if err := rows.Scan(
			&v.ID,
			&v.Code,
			&v.Type,
			&v.Value,
			&v.MinSpend,
			&v.ExpiresAt,
			&v.IsActive,
			&v.MaxUsagePerUser,
			&v.MaxTotalUsage,
			&v.TotalUsage,
			&v.QualificationType,
			&v.Criteria,
			&v.CreatedAt,
			&v.UpdatedAt,
			&i.IsRedeemed,
			&i.RedeemedAt,
			&i.GrantedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
