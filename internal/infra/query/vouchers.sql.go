package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const voucherColumns = `id, code, type, value::float8, min_spend::float8, expires_at, is_active,
	max_usage_per_user, max_total_usage, total_usage, qualification_type, criteria, created_at, updated_at`

func scanVoucher(row pgx.Row) (Voucher, error) {
	var i Voucher
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Type,
		&i.Value,
		&i.MinSpend,
		&i.ExpiresAt,
		&i.IsActive,
		&i.MaxUsagePerUser,
		&i.MaxTotalUsage,
		&i.TotalUsage,
		&i.QualificationType,
		&i.Criteria,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectVouchers(rows pgx.Rows, err error) ([]Voucher, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Voucher{}
	for rows.Next() {
		i, err := scanVoucher(rows)
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

type CreateVoucherParams struct {
	ID                uuid.UUID
	Code              string
	Type              string
	Value             float64
	MinSpend          float64
	ExpiresAt         pgtype.Timestamptz
	IsActive          bool
	MaxUsagePerUser   pgtype.Int4
	MaxTotalUsage     pgtype.Int4
	QualificationType string
	Criteria          []byte
	CreatedAt         pgtype.Timestamptz
}

const createVoucher = `-- name: CreateVoucher :one
INSERT INTO vouchers (
    id, code, type, value, min_spend, expires_at, is_active,
    max_usage_per_user, max_total_usage, qualification_type, criteria, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING ` + voucherColumns

func (q *Queries) CreateVoucher(ctx context.Context, db DBTX, arg CreateVoucherParams) (Voucher, error) {
	row := db.QueryRow(ctx, createVoucher,
		arg.ID,
		arg.Code,
		arg.Type,
		arg.Value,
		arg.MinSpend,
		arg.ExpiresAt,
		arg.IsActive,
		arg.MaxUsagePerUser,
		arg.MaxTotalUsage,
		arg.QualificationType,
		arg.Criteria,
		arg.CreatedAt,
	)
	return scanVoucher(row)
}

const insertVoucherIfCodeFree = `-- name: InsertVoucherIfCodeFree :one
INSERT INTO vouchers (
    id, code, type, value, min_spend, expires_at, is_active,
    max_usage_per_user, max_total_usage, qualification_type, criteria, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
ON CONFLICT (code) DO NOTHING
RETURNING id`

// InsertVoucherIfCodeFree returns pgx.ErrNoRows when the code is taken.
func (q *Queries) InsertVoucherIfCodeFree(ctx context.Context, db DBTX, arg CreateVoucherParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, insertVoucherIfCodeFree,
		arg.ID,
		arg.Code,
		arg.Type,
		arg.Value,
		arg.MinSpend,
		arg.ExpiresAt,
		arg.IsActive,
		arg.MaxUsagePerUser,
		arg.MaxTotalUsage,
		arg.QualificationType,
		arg.Criteria,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const addVoucherProducts = `-- name: AddVoucherProducts :exec
INSERT INTO voucher_products (voucher_id, product_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

func (q *Queries) AddVoucherProducts(ctx context.Context, db DBTX, voucherID uuid.UUID, productIDs []uuid.UUID) error {
	_, err := db.Exec(ctx, addVoucherProducts, voucherID, productIDs)
	return err
}

const addVoucherCategories = `-- name: AddVoucherCategories :exec
INSERT INTO voucher_categories (voucher_id, category_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

func (q *Queries) AddVoucherCategories(ctx context.Context, db DBTX, voucherID uuid.UUID, categoryIDs []uuid.UUID) error {
	_, err := db.Exec(ctx, addVoucherCategories, voucherID, categoryIDs)
	return err
}

const getVoucherByCode = `-- name: GetVoucherByCode :one
SELECT ` + voucherColumns + `
FROM vouchers
WHERE code = $1`

func (q *Queries) GetVoucherByCode(ctx context.Context, db DBTX, code string) (Voucher, error) {
	return scanVoucher(db.QueryRow(ctx, getVoucherByCode, code))
}

const getVoucherByCodeForUpdate = `-- name: GetVoucherByCodeForUpdate :one
SELECT ` + voucherColumns + `
FROM vouchers
WHERE code = $1
FOR UPDATE`

// GetVoucherByCodeForUpdate serializes redemptions of one voucher until the transaction ends.
func (q *Queries) GetVoucherByCodeForUpdate(ctx context.Context, db DBTX, code string) (Voucher, error) {
	return scanVoucher(db.QueryRow(ctx, getVoucherByCodeForUpdate, code))
}

const listVoucherProductIDs = `-- name: ListVoucherProductIDs :many
SELECT product_id FROM voucher_products WHERE voucher_id = $1 ORDER BY product_id`

func (q *Queries) ListVoucherProductIDs(ctx context.Context, db DBTX, voucherID uuid.UUID) ([]uuid.UUID, error) {
	return collectIDs(db.Query(ctx, listVoucherProductIDs, voucherID))
}

const listVoucherCategoryIDs = `-- name: ListVoucherCategoryIDs :many
SELECT category_id FROM voucher_categories WHERE voucher_id = $1 ORDER BY category_id`

func (q *Queries) ListVoucherCategoryIDs(ctx context.Context, db DBTX, voucherID uuid.UUID) ([]uuid.UUID, error) {
	return collectIDs(db.Query(ctx, listVoucherCategoryIDs, voucherID))
}

func collectIDs(rows pgx.Rows, err error) ([]uuid.UUID, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

const listVouchersFirstPage = `-- name: ListVouchersFirstPage :many
SELECT ` + voucherColumns + `
FROM vouchers
ORDER BY created_at DESC, id DESC
LIMIT $1`

func (q *Queries) ListVouchersFirstPage(ctx context.Context, db DBTX, limit int32) ([]Voucher, error) {
	return collectVouchers(db.Query(ctx, listVouchersFirstPage, limit))
}

type ListVouchersKeysetParams struct {
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

const listVouchersKeyset = `-- name: ListVouchersKeyset :many
SELECT ` + voucherColumns + `
FROM vouchers
WHERE (created_at, id) < ($1, $2)
ORDER BY created_at DESC, id DESC
LIMIT $3`

func (q *Queries) ListVouchersKeyset(ctx context.Context, db DBTX, arg ListVouchersKeysetParams) ([]Voucher, error) {
	return collectVouchers(db.Query(ctx, listVouchersKeyset, arg.CreatedAt, arg.ID, arg.Limit))
}

const listActiveTargetedVouchers = `-- name: ListActiveTargetedVouchers :many
SELECT ` + voucherColumns + `
FROM vouchers
WHERE qualification_type = 'targeted'
  AND is_active
  AND (expires_at IS NULL OR expires_at > $1)
  AND (max_total_usage IS NULL OR total_usage < max_total_usage)
ORDER BY created_at, id`

func (q *Queries) ListActiveTargetedVouchers(ctx context.Context, db DBTX, now time.Time) ([]Voucher, error) {
	return collectVouchers(db.Query(ctx, listActiveTargetedVouchers, now))
}

type DeactivateVoucherParams struct {
	Code      string
	UpdatedAt pgtype.Timestamptz
}

const deactivateVoucher = `-- name: DeactivateVoucher :execrows
UPDATE vouchers SET is_active = false, updated_at = $2
WHERE code = $1`

func (q *Queries) DeactivateVoucher(ctx context.Context, db DBTX, arg DeactivateVoucherParams) (int64, error) {
	result, err := db.Exec(ctx, deactivateVoucher, arg.Code, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const incrementVoucherUsage = `-- name: IncrementVoucherUsage :execrows
UPDATE vouchers SET total_usage = total_usage + 1, updated_at = now()
WHERE id = $1`

func (q *Queries) IncrementVoucherUsage(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, incrementVoucherUsage, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
