//go:build unit

package fakestore

import (
	"context"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/order"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type reads struct {
	s *Store
}

func (r *reads) VoucherByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.st.vouchers[code]
	if !ok {
		return nil, notFound("voucher not found")
	}
	return withUsage(v, v.TotalUsage()), nil
}

func (r *reads) OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.st.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	cp := *o
	return &cp, nil
}

func (r *reads) VoucherUsageCount(ctx context.Context, voucherID, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.countUsages(voucherID, userID), nil
}

func (r *reads) VoucherGrant(ctx context.Context, voucherID, userID uuid.UUID) (*shared.GrantSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.st.grants[pairKey{voucherID, userID}]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *reads) ActiveTargetedVouchers(ctx context.Context, now time.Time) ([]*voucher.Voucher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*voucher.Voucher
	for _, v := range r.s.st.vouchers {
		if v.QualificationType() == voucher.QualificationTargeted && v.IsValidAt(now) {
			out = append(out, v)
		}
	}
	return out, nil
}

// QualifiedUsers returns the configured candidates minus existing grant holders.
func (r *reads) QualifiedUsers(ctx context.Context, voucherID uuid.UUID, criteria *voucher.Criteria, now time.Time) ([]shared.QualifiedUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Reads.QualifiedUsers"); err != nil {
		return nil, infra.WrapRepoErr("failed to list qualified users", err)
	}
	var out []shared.QualifiedUser
	for _, u := range r.s.candidates {
		if _, held := r.s.st.grants[pairKey{voucherID, u.ID}]; !held {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *reads) HasCompletedPurchase(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.purchases[pairKey{userID, productID}], nil
}
