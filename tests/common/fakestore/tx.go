//go:build unit

package fakestore

import (
	"context"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/order"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/product"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/rating"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type fakeTx struct {
	s *Store
}

func (t *fakeTx) Vouchers() shared.VoucherRepository             { return (*voucherRepo)(t.s) }
func (t *fakeTx) VoucherUsages() shared.VoucherUsageRepository   { return (*usageRepo)(t.s) }
func (t *fakeTx) VoucherGrants() shared.VoucherGrantRepository   { return (*grantRepo)(t.s) }
func (t *fakeTx) Orders() shared.OrderRepository                 { return (*orderRepo)(t.s) }
func (t *fakeTx) ProductRatings() shared.ProductRatingRepository { return (*ratingRepo)(t.s) }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository      { return (*statsRepo)(t.s) }
func (t *fakeTx) Reads() shared.CommandReads                     { return &reads{s: t.s} }
func (t *fakeTx) DB() query.DBTX                                 { return nil }

// ----- vouchers -----

type voucherRepo Store

func (r *voucherRepo) Create(ctx context.Context, _ query.DBTX, v *voucher.Voucher) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Vouchers.Create"); err != nil {
		return infra.WrapRepoErr("failed to create voucher", err)
	}
	if _, taken := s.st.vouchers[v.Code().String()]; taken {
		return infra.WrapRepoErr("failed to create voucher", nil, infra.KindDuplicateKey)
	}
	s.st.vouchers[v.Code().String()] = v
	return nil
}

func (r *voucherRepo) CreateIfCodeFree(ctx context.Context, _ query.DBTX, v *voucher.Voucher) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Vouchers.CreateIfCodeFree"); err != nil {
		return false, infra.WrapRepoErr("failed to insert voucher", err)
	}
	if _, taken := s.st.vouchers[v.Code().String()]; taken {
		return false, nil
	}
	s.st.vouchers[v.Code().String()] = v
	return true, nil
}

func (r *voucherRepo) FindByCodeForUpdate(ctx context.Context, _ query.DBTX, code string) (*voucher.Voucher, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.st.vouchers[code]
	if !ok {
		return nil, notFound("voucher not found")
	}
	return withUsage(v, v.TotalUsage()), nil
}

func (r *voucherRepo) IncrementUsage(ctx context.Context, _ query.DBTX, voucherID uuid.UUID) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Vouchers.IncrementUsage"); err != nil {
		return infra.WrapRepoErr("failed to increment voucher usage", err)
	}
	for code, v := range s.st.vouchers {
		if v.ID() == voucherID {
			s.st.vouchers[code] = withUsage(v, v.TotalUsage()+1)
			return nil
		}
	}
	return notFound("voucher not found")
}

func (r *voucherRepo) Deactivate(ctx context.Context, _ query.DBTX, code string, now time.Time) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.st.vouchers[code]
	if !ok {
		return notFound("voucher not found")
	}
	cp := *v
	cp.Deactivate(now)
	s.st.vouchers[code] = &cp
	return nil
}

// ----- usage ledger -----

type usageRepo Store

func (r *usageRepo) CountByUser(ctx context.Context, _ query.DBTX, voucherID, userID uuid.UUID) (int, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countUsages(voucherID, userID), nil
}

func (r *usageRepo) Record(ctx context.Context, _ query.DBTX, usage shared.VoucherUsage) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("VoucherUsages.Record"); err != nil {
		return infra.WrapRepoErr("failed to record voucher usage", err)
	}
	s.st.usages = append(s.st.usages, usage)
	return nil
}

// ----- grants -----

type grantRepo Store

func (r *grantRepo) Grant(ctx context.Context, _ query.DBTX, voucherID, userID uuid.UUID) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.grantFail[userID]; err != nil {
		return false, infra.WrapRepoErr("failed to grant voucher", err)
	}
	k := pairKey{voucherID, userID}
	if _, ok := s.st.grants[k]; ok {
		return false, nil
	}
	s.st.grants[k] = shared.GrantSnapshot{VoucherID: voucherID, UserID: userID}
	return true, nil
}

func (r *grantRepo) Find(ctx context.Context, _ query.DBTX, voucherID, userID uuid.UUID) (*shared.GrantSnapshot, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.st.grants[pairKey{voucherID, userID}]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *grantRepo) MarkRedeemed(ctx context.Context, _ query.DBTX, voucherID, userID uuid.UUID, at time.Time) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	k := pairKey{voucherID, userID}
	g, ok := s.st.grants[k]
	if !ok {
		return notFound("voucher grant not found")
	}
	g.IsRedeemed = true
	g.RedeemedAt = &at
	s.st.grants[k] = g
	return nil
}

// ----- orders -----

type orderRepo Store

func (r *orderRepo) FindForUpdate(ctx context.Context, _ query.DBTX, id uuid.UUID) (*order.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.st.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	cp := *o
	return &cp, nil
}

func (r *orderRepo) SaveDiscount(ctx context.Context, _ query.DBTX, o *order.Order) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Orders.SaveDiscount"); err != nil {
		return infra.WrapRepoErr("failed to apply order discount", err)
	}
	cp := *o
	s.st.orders[o.ID()] = &cp
	return nil
}

// ----- ratings -----

type ratingRepo Store

func (r *ratingRepo) FindByProductAndUser(ctx context.Context, _ query.DBTX, productID, userID uuid.UUID) (*rating.ProductRating, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	pr, ok := s.st.ratings[pairKey{productID, userID}]
	if !ok {
		return nil, nil
	}
	cp := *pr
	return &cp, nil
}

func (r *ratingRepo) Create(ctx context.Context, _ query.DBTX, pr *rating.ProductRating) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	k := pairKey{pr.ProductID(), pr.UserID()}
	if _, ok := s.st.ratings[k]; ok {
		return infra.WrapRepoErr("failed to create product rating", nil, infra.KindDuplicateKey)
	}
	cp := *pr
	s.st.ratings[k] = &cp
	return nil
}

func (r *ratingRepo) Update(ctx context.Context, _ query.DBTX, pr *rating.ProductRating) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	k := pairKey{pr.ProductID(), pr.UserID()}
	if _, ok := s.st.ratings[k]; !ok {
		return notFound("product rating not found")
	}
	cp := *pr
	s.st.ratings[k] = &cp
	return nil
}

func (r *ratingRepo) Delete(ctx context.Context, _ query.DBTX, id uuid.UUID) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, pr := range s.st.ratings {
		if pr.ID() == id {
			delete(s.st.ratings, k)
			return nil
		}
	}
	return notFound("product rating not found")
}

type statsRepo Store

func (r *statsRepo) LockProduct(ctx context.Context, _ query.DBTX, productID uuid.UUID) (product.RatingAggregate, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	agg, ok := s.st.products[productID]
	if !ok {
		return product.RatingAggregate{}, notFound("product not found")
	}
	return agg, nil
}

func (r *statsRepo) GlobalTotals(ctx context.Context, _ query.DBTX) (product.GlobalTotals, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	aggs := make([]product.RatingAggregate, 0, len(s.st.products))
	for _, a := range s.st.products {
		aggs = append(aggs, a)
	}
	return product.TotalsOf(aggs...), nil
}

func (r *statsRepo) Save(ctx context.Context, _ query.DBTX, productID uuid.UUID, agg product.RatingAggregate) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("RatingStats.Save"); err != nil {
		return infra.WrapRepoErr("failed to save product rating stats", err)
	}
	if _, ok := s.st.products[productID]; !ok {
		return notFound("product not found")
	}
	s.st.products[productID] = agg
	return nil
}

func (r *statsRepo) ListRatedForUpdate(ctx context.Context, _ query.DBTX) ([]shared.RatedProduct, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.RatedProduct
	for id, agg := range s.st.products {
		if agg.IsRated() {
			out = append(out, shared.RatedProduct{ProductID: id, Aggregate: agg})
		}
	}
	return out, nil
}
