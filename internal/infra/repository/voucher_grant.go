package repository

import (
	"context"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherGrantWriteQueries interface {
	CreateVoucherGrant(ctx context.Context, db query.DBTX, arg query.VoucherUserKey) (int64, error)
	GetVoucherGrant(ctx context.Context, db query.DBTX, arg query.VoucherUserKey) (query.VoucherUser, error)
	MarkVoucherGrantRedeemed(ctx context.Context, db query.DBTX, arg query.MarkVoucherGrantRedeemedParams) (int64, error)
}

type VoucherGrantRepository struct {
	queries VoucherGrantWriteQueries
}

func NewVoucherGrantRepository(queries VoucherGrantWriteQueries) *VoucherGrantRepository {
	return &VoucherGrantRepository{queries: queries}
}

func (r *VoucherGrantRepository) Grant(ctx context.Context, tx query.DBTX, voucherID, userID uuid.UUID) (bool, error) {
	n, err := r.queries.CreateVoucherGrant(ctx, tx, query.VoucherUserKey{VoucherID: voucherID, UserID: userID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to grant voucher", err)
	}
	return n > 0, nil
}

func (r *VoucherGrantRepository) Find(ctx context.Context, tx query.DBTX, voucherID, userID uuid.UUID) (*shared.GrantSnapshot, error) {
	row, err := r.queries.GetVoucherGrant(ctx, tx, query.VoucherUserKey{VoucherID: voucherID, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get voucher grant", err)
	}
	return GrantFromRow(row), nil
}

func (r *VoucherGrantRepository) MarkRedeemed(ctx context.Context, tx query.DBTX, voucherID, userID uuid.UUID, at time.Time) error {
	n, err := r.queries.MarkVoucherGrantRedeemed(ctx, tx, query.MarkVoucherGrantRedeemedParams{
		VoucherID:  voucherID,
		UserID:     userID,
		RedeemedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark voucher grant redeemed", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("voucher grant not found", nil, infra.KindNotFound)
	}
	return nil
}

func GrantFromRow(row query.VoucherUser) *shared.GrantSnapshot {
	return &shared.GrantSnapshot{
		VoucherID:  row.VoucherID,
		UserID:     row.UserID,
		IsRedeemed: row.IsRedeemed,
		RedeemedAt: pgconv.TimePtrFromPgtype(row.RedeemedAt),
	}
}
