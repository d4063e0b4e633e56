//go:build unit

// Package fakestore is an in-memory shared.UnitOfWork. Transactions run one at
// a time and restore the previous state when fn fails, which is enough to
// observe locking and rollback behaviour from usecase tests.
package fakestore

import (
	"context"
	"errors"
	"sync"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/order"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/product"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/rating"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInjected = errors.New("injected failure")

type pairKey struct {
	a, b uuid.UUID
}

type state struct {
	vouchers map[string]*voucher.Voucher
	usages   []shared.VoucherUsage
	grants   map[pairKey]shared.GrantSnapshot
	orders   map[uuid.UUID]*order.Order
	ratings  map[pairKey]*rating.ProductRating
	products map[uuid.UUID]product.RatingAggregate
}

func (s state) clone() state {
	c := state{
		vouchers: make(map[string]*voucher.Voucher, len(s.vouchers)),
		usages:   append([]shared.VoucherUsage(nil), s.usages...),
		grants:   make(map[pairKey]shared.GrantSnapshot, len(s.grants)),
		orders:   make(map[uuid.UUID]*order.Order, len(s.orders)),
		ratings:  make(map[pairKey]*rating.ProductRating, len(s.ratings)),
		products: make(map[uuid.UUID]product.RatingAggregate, len(s.products)),
	}
	for k, v := range s.vouchers {
		c.vouchers[k] = v
	}
	for k, v := range s.grants {
		c.grants[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.ratings {
		c.ratings[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	return c
}

// Store never mutates a stored entity in place; writes replace the pointer.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   state

	failures   map[string]error
	purchases  map[pairKey]bool
	candidates []shared.QualifiedUser
	grantFail  map[uuid.UUID]error

	Commits   int
	Rollbacks int
}

func New() *Store {
	return &Store{
		st: state{
			vouchers: map[string]*voucher.Voucher{},
			grants:   map[pairKey]shared.GrantSnapshot{},
			orders:   map[uuid.UUID]*order.Order{},
			ratings:  map[pairKey]*rating.ProductRating{},
			products: map[uuid.UUID]product.RatingAggregate{},
		},
		failures:  map[string]error{},
		purchases: map[pairKey]bool{},
		grantFail: map[uuid.UUID]error{},
	}
}

// FailOn makes the named repository operation, e.g. "VoucherUsages.Record", return err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) fail(op string) error {
	return s.failures[op]
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	if err := fn(ctx, &fakeTx{s: s}); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.Rollbacks++
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.Commits++
	s.mu.Unlock()
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s}
}

// ----- seeding and inspection -----

func (s *Store) PutVoucher(v *voucher.Voucher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.vouchers[v.Code().String()] = v
}

func (s *Store) Voucher(code string) *voucher.Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.vouchers[code]
}

func (s *Store) VoucherCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.vouchers)
}

func (s *Store) PutOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.orders[o.ID()] = o
}

func (s *Store) Order(id uuid.UUID) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.orders[id]
}

func (s *Store) Usages(voucherID, userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countUsages(voucherID, userID)
}

func (s *Store) countUsages(voucherID, userID uuid.UUID) int {
	n := 0
	for _, u := range s.st.usages {
		if u.VoucherID == voucherID && u.UserID == userID {
			n++
		}
	}
	return n
}

func (s *Store) PutGrant(voucherID, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.grants[pairKey{voucherID, userID}] = shared.GrantSnapshot{VoucherID: voucherID, UserID: userID}
}

func (s *Store) Grant(voucherID, userID uuid.UUID) (shared.GrantSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.st.grants[pairKey{voucherID, userID}]
	return g, ok
}

func (s *Store) PutProduct(id uuid.UUID, agg product.RatingAggregate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.products[id] = agg
}

func (s *Store) Product(id uuid.UUID) product.RatingAggregate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.products[id]
}

func (s *Store) Rating(productID, userID uuid.UUID) *rating.ProductRating {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.ratings[pairKey{productID, userID}]
}

func (s *Store) PutPurchase(userID, productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases[pairKey{userID, productID}] = true
}

// SetCandidates fixes the users every qualification query matches.
func (s *Store) SetCandidates(users ...shared.QualifiedUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = users
}

func (s *Store) FailGrantFor(userID uuid.UUID, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grantFail[userID] = err
}

func withUsage(v *voucher.Voucher, total int) *voucher.Voucher {
	return voucher.Reconstruct(
		v.ID(), v.Code().String(), v.Discount().Type(), v.Discount().Value(), v.MinSpend(),
		v.ExpiresAt(), v.IsActive(), v.MaxUsagePerUser(), v.MaxTotalUsage(), total,
		v.QualificationType(), v.Criteria(), v.ProductIDs(), v.CategoryIDs(), v.CreatedAt(), v.UpdatedAt(),
	)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}
