package uow

import (
	"context"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/order"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/repository"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/repository/converter"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// commandReads serves lock-free lookups to command handlers, either on the
// pool or on the surrounding transaction.
type commandReads struct {
	q  *query.Queries
	db query.DBTX
}

func (r *commandReads) VoucherByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	row, err := r.q.GetVoucherByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get voucher by code", err)
	}
	productIDs, err := r.q.ListVoucherProductIDs(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher products", err)
	}
	categoryIDs, err := r.q.ListVoucherCategoryIDs(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher categories", err)
	}
	v, err := converter.VoucherFromRow(row, productIDs, categoryIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode voucher", err)
	}
	return v, nil
}

func (r *commandReads) OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.q.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	return converter.OrderFromRow(row), nil
}

func (r *commandReads) VoucherUsageCount(ctx context.Context, voucherID, userID uuid.UUID) (int, error) {
	n, err := r.q.CountVoucherUsageByUser(ctx, r.db, query.CountVoucherUsageByUserParams{
		VoucherID: voucherID,
		UserID:    userID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count voucher usage", err)
	}
	return int(n), nil
}

func (r *commandReads) VoucherGrant(ctx context.Context, voucherID, userID uuid.UUID) (*shared.GrantSnapshot, error) {
	row, err := r.q.GetVoucherGrant(ctx, r.db, query.VoucherUserKey{VoucherID: voucherID, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get voucher grant", err)
	}
	return repository.GrantFromRow(row), nil
}

func (r *commandReads) ActiveTargetedVouchers(ctx context.Context, now time.Time) ([]*voucher.Voucher, error) {
	rows, err := r.q.ListActiveTargetedVouchers(ctx, r.db, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list targeted vouchers", err)
	}
	out := make([]*voucher.Voucher, 0, len(rows))
	for _, row := range rows {
		v, err := converter.VoucherFromRow(row, nil, nil)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode voucher", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *commandReads) QualifiedUsers(ctx context.Context, voucherID uuid.UUID, criteria *voucher.Criteria, now time.Time) ([]shared.QualifiedUser, error) {
	rows, err := r.q.ListQualifiedUsers(ctx, r.db, QualificationFilter(voucherID, criteria, now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list qualified users", err)
	}
	out := make([]shared.QualifiedUser, len(rows))
	for i, row := range rows {
		out[i] = shared.QualifiedUser{ID: row.ID, Email: row.Email, Name: row.Name}
	}
	return out, nil
}

func (r *commandReads) HasCompletedPurchase(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	ok, err := r.q.HasCompletedPurchase(ctx, r.db, query.HasCompletedPurchaseParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check purchase history", err)
	}
	return ok, nil
}

// QualificationFilter resolves relative criteria (day windows) against now.
func QualificationFilter(voucherID uuid.UUID, c *voucher.Criteria, now time.Time) query.QualificationFilter {
	f := query.QualificationFilter{VoucherID: voucherID}
	if c == nil {
		return f
	}

	f.MinSpend = c.MinSpend
	if c.MinSpend != nil && c.TimePeriodDays != nil {
		since := now.Add(-time.Duration(*c.TimePeriodDays) * day)
		f.SpendSince = &since
	}
	f.MinOrders = c.MinOrders
	f.ProductIDs = c.ProductIDs
	f.CategoryIDs = c.CategoryIDs
	if c.RegistrationDays != nil {
		before := now.Add(-time.Duration(*c.RegistrationDays) * day)
		f.RegisteredBefore = &before
	}
	if c.UserType != nil {
		role := c.UserType.String()
		f.Role = &role
	}
	return f
}
