package readstore

import (
	"context"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/repository/converter"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherReadQueries interface {
	GetVoucherByCode(ctx context.Context, db query.DBTX, code string) (query.Voucher, error)
	ListVoucherProductIDs(ctx context.Context, db query.DBTX, voucherID uuid.UUID) ([]uuid.UUID, error)
	ListVoucherCategoryIDs(ctx context.Context, db query.DBTX, voucherID uuid.UUID) ([]uuid.UUID, error)
	ListVouchersFirstPage(ctx context.Context, db query.DBTX, limit int32) ([]query.Voucher, error)
	ListVouchersKeyset(ctx context.Context, db query.DBTX, arg query.ListVouchersKeysetParams) ([]query.Voucher, error)
	ListGrantedVouchersByUser(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]query.ListGrantedVouchersByUserRow, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      query.DBTX
}

func NewVoucherReadStore(queries VoucherReadQueries, db query.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*queries.VoucherView, error) {
	row, err := r.queries.GetVoucherByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get voucher by code", err)
	}

	view, err := toVoucherView(row)
	if err != nil {
		return nil, err
	}
	if view.ProductIDs, err = r.queries.ListVoucherProductIDs(ctx, r.db, row.ID); err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher products", err)
	}
	if view.CategoryIDs, err = r.queries.ListVoucherCategoryIDs(ctx, r.db, row.ID); err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher categories", err)
	}
	return view, nil
}

func (r *VoucherReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListVouchersFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers first page", err)
	}
	return mapVoucherRows(rows)
}

func (r *VoucherReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListVouchersKeyset(ctx, r.db, query.ListVouchersKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers keyset", err)
	}
	return mapVoucherRows(rows)
}

func (r *VoucherReadStore) ListGrantedToUser(ctx context.Context, userID uuid.UUID) ([]*queries.GrantedVoucherView, error) {
	rows, err := r.queries.ListGrantedVouchersByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list granted vouchers", err)
	}
	result := make([]*queries.GrantedVoucherView, len(rows))
	for i, row := range rows {
		view, err := toVoucherView(row.Voucher)
		if err != nil {
			return nil, err
		}
		result[i] = &queries.GrantedVoucherView{
			VoucherView: *view,
			IsRedeemed:  row.IsRedeemed,
			RedeemedAt:  pgconv.TimePtrFromPgtype(row.RedeemedAt),
			GrantedAt:   pgconv.TimeFromPgtype(row.GrantedAt),
		}
	}
	return result, nil
}

func mapVoucherRows(rows []query.Voucher) ([]*queries.VoucherView, error) {
	result := make([]*queries.VoucherView, len(rows))
	for i, row := range rows {
		view, err := toVoucherView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func toVoucherView(row query.Voucher) (*queries.VoucherView, error) {
	criteria, err := converter.UnmarshalCriteria(row.Criteria)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode voucher criteria", err)
	}
	return &queries.VoucherView{
		ID:                row.ID,
		Code:              row.Code,
		Type:              row.Type,
		Value:             row.Value,
		MinSpend:          row.MinSpend,
		ExpiresAt:         pgconv.TimePtrFromPgtype(row.ExpiresAt),
		IsActive:          row.IsActive,
		MaxUsagePerUser:   pgconv.IntPtrFromPgtype(row.MaxUsagePerUser),
		MaxTotalUsage:     pgconv.IntPtrFromPgtype(row.MaxTotalUsage),
		TotalUsage:        int(row.TotalUsage),
		QualificationType: row.QualificationType,
		Criteria:          criteria,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
