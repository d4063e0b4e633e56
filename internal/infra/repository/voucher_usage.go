package repository

import (
	"context"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherUsageWriteQueries interface {
	CreateVoucherUsage(ctx context.Context, db query.DBTX, arg query.CreateVoucherUsageParams) (uuid.UUID, error)
	CountVoucherUsageByUser(ctx context.Context, db query.DBTX, arg query.CountVoucherUsageByUserParams) (int64, error)
}

// VoucherUsageRepository writes the append-only redemption ledger.
type VoucherUsageRepository struct {
	queries VoucherUsageWriteQueries
}

func NewVoucherUsageRepository(queries VoucherUsageWriteQueries) *VoucherUsageRepository {
	return &VoucherUsageRepository{queries: queries}
}

func (r *VoucherUsageRepository) CountByUser(ctx context.Context, tx query.DBTX, voucherID, userID uuid.UUID) (int, error) {
	n, err := r.queries.CountVoucherUsageByUser(ctx, tx, query.CountVoucherUsageByUserParams{
		VoucherID: voucherID,
		UserID:    userID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count voucher usage", err)
	}
	return int(n), nil
}

func (r *VoucherUsageRepository) Record(ctx context.Context, tx query.DBTX, usage shared.VoucherUsage) error {
	_, err := r.queries.CreateVoucherUsage(ctx, tx, query.CreateVoucherUsageParams{
		ID:        uuid.New(),
		VoucherID: usage.VoucherID,
		UserID:    usage.UserID,
		OrderID:   usage.OrderID,
		Amount:    usage.Amount,
		CreatedAt: pgconv.TimeToPgtype(usage.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record voucher usage", err)
	}
	return nil
}
