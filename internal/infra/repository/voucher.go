package repository

import (
	"context"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/repository/converter"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VoucherWriteQueries interface {
	CreateVoucher(ctx context.Context, db query.DBTX, arg query.CreateVoucherParams) (query.Voucher, error)
	InsertVoucherIfCodeFree(ctx context.Context, db query.DBTX, arg query.CreateVoucherParams) (uuid.UUID, error)
	AddVoucherProducts(ctx context.Context, db query.DBTX, voucherID uuid.UUID, productIDs []uuid.UUID) error
	AddVoucherCategories(ctx context.Context, db query.DBTX, voucherID uuid.UUID, categoryIDs []uuid.UUID) error
	GetVoucherByCodeForUpdate(ctx context.Context, db query.DBTX, code string) (query.Voucher, error)
	ListVoucherProductIDs(ctx context.Context, db query.DBTX, voucherID uuid.UUID) ([]uuid.UUID, error)
	ListVoucherCategoryIDs(ctx context.Context, db query.DBTX, voucherID uuid.UUID) ([]uuid.UUID, error)
	IncrementVoucherUsage(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	DeactivateVoucher(ctx context.Context, db query.DBTX, arg query.DeactivateVoucherParams) (int64, error)
}

type VoucherRepository struct {
	queries VoucherWriteQueries
}

func NewVoucherRepository(queries VoucherWriteQueries) *VoucherRepository {
	return &VoucherRepository{queries: queries}
}

func (r *VoucherRepository) Create(ctx context.Context, tx query.DBTX, v *voucher.Voucher) error {
	params, err := converter.VoucherToCreateParams(v)
	if err != nil {
		return infra.WrapRepoErr("failed to encode voucher criteria", err)
	}
	if _, err := r.queries.CreateVoucher(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create voucher", err)
	}
	return r.addScope(ctx, tx, v)
}

func (r *VoucherRepository) CreateIfCodeFree(ctx context.Context, tx query.DBTX, v *voucher.Voucher) (bool, error) {
	params, err := converter.VoucherToCreateParams(v)
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode voucher criteria", err)
	}
	if _, err := r.queries.InsertVoucherIfCodeFree(ctx, tx, params); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert voucher", err)
	}
	if err := r.addScope(ctx, tx, v); err != nil {
		return false, err
	}
	return true, nil
}

func (r *VoucherRepository) addScope(ctx context.Context, tx query.DBTX, v *voucher.Voucher) error {
	if len(v.ProductIDs()) > 0 {
		if err := r.queries.AddVoucherProducts(ctx, tx, v.ID(), v.ProductIDs()); err != nil {
			return infra.WrapRepoErr("failed to attach voucher products", err)
		}
	}
	if len(v.CategoryIDs()) > 0 {
		if err := r.queries.AddVoucherCategories(ctx, tx, v.ID(), v.CategoryIDs()); err != nil {
			return infra.WrapRepoErr("failed to attach voucher categories", err)
		}
	}
	return nil
}

func (r *VoucherRepository) FindByCodeForUpdate(ctx context.Context, tx query.DBTX, code string) (*voucher.Voucher, error) {
	row, err := r.queries.GetVoucherByCodeForUpdate(ctx, tx, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock voucher", err)
	}

	productIDs, err := r.queries.ListVoucherProductIDs(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher products", err)
	}
	categoryIDs, err := r.queries.ListVoucherCategoryIDs(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher categories", err)
	}

	v, err := converter.VoucherFromRow(row, productIDs, categoryIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode voucher criteria", err)
	}
	return v, nil
}

func (r *VoucherRepository) IncrementUsage(ctx context.Context, tx query.DBTX, voucherID uuid.UUID) error {
	n, err := r.queries.IncrementVoucherUsage(ctx, tx, voucherID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment voucher usage", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VoucherRepository) Deactivate(ctx context.Context, tx query.DBTX, code string, now time.Time) error {
	n, err := r.queries.DeactivateVoucher(ctx, tx, query.DeactivateVoucherParams{
		Code:      code,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate voucher", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)
	}
	return nil
}
