//go:build unit

package commands_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/order"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/user"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/clock"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/errs"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/builder"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/fakestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

var testPolicy = commands.VoucherPolicy{
	DefaultCodeLength: 8,
	MaxBulkQuantity:   1000,
	CodeMaxAttempts:   5,
}

// scriptedCodes hands out codes in order and repeats the last one once exhausted.
type scriptedCodes struct {
	mu    sync.Mutex
	codes []string
	calls int
}

func (g *scriptedCodes) Generate(prefix string, length int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := g.calls
	if i >= len(g.codes) {
		i = len(g.codes) - 1
	}
	g.calls++
	return g.codes[i], nil
}

func voucherAt(now time.Time) *builder.VoucherBuilder {
	expires := now.Add(72 * time.Hour)
	return builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
		b.Now = now
		b.ExpiresAt = &expires
	})
}

func customer() commands.Caller {
	return commands.Caller{UserID: uuid.New(), Role: user.RoleCustomer}
}

func seedOrder(store *fakestore.Store, owner uuid.UUID, total float64) *order.Order {
	o := order.Reconstruct(uuid.New(), owner, order.StatusPending, total, 0, nil)
	store.PutOrder(o)
	return o
}

func recordUsage(ctx context.Context, tx shared.Tx, voucherID, userID, orderID uuid.UUID) error {
	return tx.VoucherUsages().Record(ctx, tx.DB(), shared.VoucherUsage{
		VoucherID: voucherID,
		UserID:    userID,
		OrderID:   orderID,
		CreatedAt: testNow,
	})
}

func newVoucherUC(store *fakestore.Store, codes voucher.CodeGenerator) commands.VoucherCommands {
	if codes == nil {
		codes = voucher.NewRandomCodeGenerator()
	}
	return commands.NewVoucherUseCase(store, clock.NewMockClock(testNow), codes, testPolicy)
}

func specOf(b *builder.VoucherBuilder) commands.VoucherSpec {
	return commands.VoucherSpec{
		Type:              b.Type.String(),
		Value:             b.Value,
		MinSpend:          b.MinSpend,
		ExpiresAt:         b.ExpiresAt,
		MaxUsagePerUser:   b.MaxUsagePerUser,
		MaxTotalUsage:     b.MaxTotalUsage,
		QualificationType: b.QualificationType.String(),
		Criteria:          b.Criteria,
	}
}

func TestVoucherUseCase_Create(t *testing.T) {
	t.Run("stores an upper-cased code", func(t *testing.T) {
		store := fakestore.New()
		uc := newVoucherUC(store, nil)

		res, err := uc.Create(context.Background(), commands.CreateVoucherInput{
			Code:        " spring25 ",
			VoucherSpec: specOf(voucherAt(testNow)),
		})

		require.NoError(t, err)
		assert.Equal(t, "SPRING25", res.Code)
		stored := store.Voucher("SPRING25")
		require.NotNil(t, stored)
		assert.Equal(t, res.ID, stored.ID())
		assert.True(t, stored.IsActive())
		assert.Equal(t, 0, stored.TotalUsage())
	})

	t.Run("duplicate code", func(t *testing.T) {
		store := fakestore.New()
		store.PutVoucher(voucherAt(testNow).WithCode("SPRING25").BuildStored(0, true))
		uc := newVoucherUC(store, nil)

		_, err := uc.Create(context.Background(), commands.CreateVoucherInput{
			Code:        "SPRING25",
			VoucherSpec: specOf(voucherAt(testNow)),
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrVoucherCodeTaken))
		assert.Equal(t, 1, store.Rollbacks)
	})

	tests := []struct {
		name   string
		mutate func(*builder.VoucherBuilder)
	}{
		{
			name:   "percentage above 100",
			mutate: func(b *builder.VoucherBuilder) { b.AsPercentage(120) },
		},
		{
			name:   "negative minimum spend",
			mutate: func(b *builder.VoucherBuilder) { b.WithMinSpend(-1) },
		},
		{
			name: "expiry in the past",
			mutate: func(b *builder.VoucherBuilder) {
				past := testNow.Add(-time.Hour)
				b.WithExpiresAt(&past)
			},
		},
		{
			name:   "targeted without criteria",
			mutate: func(b *builder.VoucherBuilder) { b.AsTargeted(nil) },
		},
		{
			name:   "zero total usage cap",
			mutate: func(b *builder.VoucherBuilder) { b.WithMaxTotalUsage(0) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := fakestore.New()
			uc := newVoucherUC(store, nil)
			b := voucherAt(testNow).With(tt.mutate)

			_, err := uc.Create(context.Background(), commands.CreateVoucherInput{Code: "BAD1", VoucherSpec: specOf(b)})

			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
			assert.Equal(t, 0, store.VoucherCount())
		})
	}

	t.Run("storage failure", func(t *testing.T) {
		store := fakestore.New()
		store.FailOn("Vouchers.Create", fakestore.ErrInjected)
		uc := newVoucherUC(store, nil)

		_, err := uc.Create(context.Background(), commands.CreateVoucherInput{Code: "OK10", VoucherSpec: specOf(voucherAt(testNow))})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestVoucherUseCase_BulkIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("issues distinct prefixed codes", func(t *testing.T) {
		store := fakestore.New()
		uc := newVoucherUC(store, nil)

		res, err := uc.BulkIssue(ctx, commands.BulkIssueInput{
			Prefix:      "xmas",
			Quantity:    200,
			VoucherSpec: specOf(voucherAt(testNow).AsFixed(15)),
		})

		require.NoError(t, err)
		require.Len(t, res.Codes, 200)
		seen := map[string]bool{}
		for _, c := range res.Codes {
			assert.True(t, strings.HasPrefix(c, "XMAS"), c)
			assert.Len(t, c, len("XMAS")+testPolicy.DefaultCodeLength)
			assert.False(t, seen[c], "duplicate code %s", c)
			seen[c] = true

			v := store.Voucher(c)
			require.NotNil(t, v)
			assert.Equal(t, voucher.TypeFixed, v.Discount().Type())
			assert.Equal(t, 15.0, v.Discount().Value())
		}
		assert.Equal(t, 200, store.VoucherCount())
		assert.Equal(t, 1, store.Commits)
	})

	t.Run("regenerates codes taken in storage or earlier in the batch", func(t *testing.T) {
		store := fakestore.New()
		store.PutVoucher(voucherAt(testNow).WithCode("BKTAKEN1").BuildStored(0, true))
		gen := &scriptedCodes{codes: []string{"BKSAMPLE", "BKTAKEN1", "BKFRESH1", "BKFRESH1", "BKFRESH2"}}
		uc := newVoucherUC(store, gen)

		res, err := uc.BulkIssue(ctx, commands.BulkIssueInput{
			Prefix:      "BK",
			Quantity:    2,
			CodeLength:  6,
			VoucherSpec: specOf(voucherAt(testNow)),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"BKFRESH1", "BKFRESH2"}, res.Codes)
		assert.Equal(t, 3, store.VoucherCount())
	})

	t.Run("rolls back the batch when the code space is exhausted", func(t *testing.T) {
		store := fakestore.New()
		gen := &scriptedCodes{codes: []string{"SAMEONE1"}}
		uc := newVoucherUC(store, gen)

		_, err := uc.BulkIssue(ctx, commands.BulkIssueInput{
			Prefix:      "SAME",
			Quantity:    3,
			VoucherSpec: specOf(voucherAt(testNow)),
		})

		require.ErrorIs(t, err, commands.ErrCodeSpaceExhausted)
		assert.Equal(t, 0, store.VoucherCount())
		assert.Equal(t, 1, store.Rollbacks)
	})

	invalid := []struct {
		name string
		in   commands.BulkIssueInput
		err  error
	}{
		{name: "zero quantity", in: commands.BulkIssueInput{Quantity: 0}, err: commands.ErrInvalidBulkQuantity},
		{name: "quantity over limit", in: commands.BulkIssueInput{Quantity: 1001}, err: commands.ErrInvalidBulkQuantity},
		{name: "bad prefix", in: commands.BulkIssueInput{Prefix: "no-dash", Quantity: 1}, err: voucher.ErrInvalidCodePrefix},
		{name: "code length too short", in: commands.BulkIssueInput{Quantity: 1, CodeLength: 2}, err: voucher.ErrInvalidCodeLength},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			store := fakestore.New()
			uc := newVoucherUC(store, nil)
			tt.in.VoucherSpec = specOf(voucherAt(testNow))

			_, err := uc.BulkIssue(ctx, tt.in)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.err))
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
			assert.Equal(t, 0, store.Commits+store.Rollbacks)
		})
	}
}

func TestVoucherUseCase_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("percentage discount", func(t *testing.T) {
		store := fakestore.New()
		v := voucherAt(testNow).AsPercentage(10).WithMinSpend(50).BuildStored(0, true)
		store.PutVoucher(v)
		caller := customer()
		o := seedOrder(store, caller.UserID, 200)
		uc := newVoucherUC(store, nil)

		res, err := uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: "save10", OrderID: o.ID()})

		require.NoError(t, err)
		assert.Equal(t, 20.0, res.DiscountAmount)
		assert.Equal(t, 180.0, res.NewTotal)
		assert.Equal(t, "SAVE10", res.Code)

		saved := store.Order(o.ID())
		assert.Equal(t, 180.0, saved.Total())
		assert.Equal(t, 20.0, saved.Discount())
		require.NotNil(t, saved.VoucherCode())
		assert.Equal(t, "SAVE10", *saved.VoucherCode())
		assert.Equal(t, 1, store.Voucher("SAVE10").TotalUsage())
		assert.Equal(t, 1, store.Usages(v.ID(), caller.UserID))
	})

	t.Run("fixed discount is capped at the order total", func(t *testing.T) {
		store := fakestore.New()
		store.PutVoucher(voucherAt(testNow).WithCode("BIG500").AsFixed(500).WithMinSpend(0).BuildStored(0, true))
		caller := customer()
		o := seedOrder(store, caller.UserID, 120)
		uc := newVoucherUC(store, nil)

		res, err := uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: "BIG500", OrderID: o.ID()})

		require.NoError(t, err)
		assert.Equal(t, 120.0, res.DiscountAmount)
		assert.Equal(t, 0.0, res.NewTotal)
	})

	rejections := []struct {
		name     string
		voucher  *voucher.Voucher
		total    float64
		priorUse int
		err      error
	}{
		{
			name:    "below minimum spend",
			voucher: voucherAt(testNow).WithMinSpend(100).BuildStored(0, true),
			total:   99.99,
			err:     voucher.ErrBelowMinimumSpend,
		},
		{
			name:    "inactive",
			voucher: voucherAt(testNow).BuildStored(0, false),
			total:   200,
			err:     voucher.ErrInvalidVoucher,
		},
		{
			name: "expired",
			voucher: voucherAt(testNow).With(func(b *builder.VoucherBuilder) {
				past := testNow.Add(-time.Minute)
				b.ExpiresAt = &past
			}).BuildStored(0, true),
			total: 200,
			err:   voucher.ErrInvalidVoucher,
		},
		{
			name:    "global cap reached",
			voucher: voucherAt(testNow).WithMaxTotalUsage(3).BuildStored(3, true),
			total:   200,
			err:     voucher.ErrVoucherExhausted,
		},
		{
			name:     "per-user cap reached",
			voucher:  voucherAt(testNow).WithMaxUsagePerUser(1).BuildStored(1, true),
			total:    200,
			priorUse: 1,
			err:      voucher.ErrUserLimitReached,
		},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			store := fakestore.New()
			store.PutVoucher(tt.voucher)
			caller := customer()
			if tt.priorUse > 0 {
				earlier := seedOrder(store, caller.UserID, 200)
				require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					return recordUsage(ctx, tx, tt.voucher.ID(), caller.UserID, earlier.ID())
				}))
			}
			o := seedOrder(store, caller.UserID, tt.total)
			uc := newVoucherUC(store, nil)

			_, err := uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: tt.voucher.Code().String(), OrderID: o.ID()})

			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.total, store.Order(o.ID()).Total())
			assert.Nil(t, store.Order(o.ID()).VoucherCode())
		})
	}

	t.Run("unknown or malformed code", func(t *testing.T) {
		store := fakestore.New()
		caller := customer()
		o := seedOrder(store, caller.UserID, 200)
		uc := newVoucherUC(store, nil)

		for _, code := range []string{"NOPE99", "", "!!"} {
			_, err := uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: code, OrderID: o.ID()})
			assert.ErrorIs(t, err, voucher.ErrInvalidVoucher, code)
		}
	})

	t.Run("order checks", func(t *testing.T) {
		store := fakestore.New()
		store.PutVoucher(voucherAt(testNow).BuildStored(0, true))
		caller := customer()
		foreign := seedOrder(store, uuid.New(), 200)
		uc := newVoucherUC(store, nil)

		_, err := uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: "SAVE10", OrderID: foreign.ID()})
		assert.ErrorIs(t, err, commands.ErrOrderNotOwned)

		_, err = uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: "SAVE10", OrderID: uuid.New()})
		assert.ErrorIs(t, err, commands.ErrOrderNotFound)

		assert.Equal(t, 0, store.Voucher("SAVE10").TotalUsage())
	})

	t.Run("targeted voucher needs a grant and marks it redeemed", func(t *testing.T) {
		minOrders := 1
		store := fakestore.New()
		v := voucherAt(testNow).WithCode("VIP20").AsTargeted(&voucher.Criteria{MinOrders: &minOrders}).BuildStored(0, true)
		store.PutVoucher(v)
		holder, stranger := customer(), customer()
		store.PutGrant(v.ID(), holder.UserID)
		uc := newVoucherUC(store, nil)

		_, err := uc.Apply(ctx, stranger, commands.ApplyVoucherInput{Code: "VIP20", OrderID: seedOrder(store, stranger.UserID, 200).ID()})
		require.ErrorIs(t, err, voucher.ErrInvalidVoucher)

		_, err = uc.Apply(ctx, holder, commands.ApplyVoucherInput{Code: "VIP20", OrderID: seedOrder(store, holder.UserID, 200).ID()})
		require.NoError(t, err)

		g, ok := store.Grant(v.ID(), holder.UserID)
		require.True(t, ok)
		assert.True(t, g.IsRedeemed)
		require.NotNil(t, g.RedeemedAt)
		assert.Equal(t, testNow, *g.RedeemedAt)
	})

	t.Run("second voucher on the same order replaces the first", func(t *testing.T) {
		store := fakestore.New()
		store.PutVoucher(voucherAt(testNow).WithCode("TEN").AsFixed(10).WithMinSpend(0).BuildStored(0, true))
		store.PutVoucher(voucherAt(testNow).WithCode("FIVE").AsFixed(5).WithMinSpend(0).BuildStored(0, true))
		caller := customer()
		o := seedOrder(store, caller.UserID, 100)
		uc := newVoucherUC(store, nil)

		_, err := uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: "TEN", OrderID: o.ID()})
		require.NoError(t, err)
		res, err := uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: "FIVE", OrderID: o.ID()})
		require.NoError(t, err)

		assert.Equal(t, 85.0, res.NewTotal)
		saved := store.Order(o.ID())
		assert.Equal(t, 5.0, saved.Discount())
		assert.Equal(t, "FIVE", *saved.VoucherCode())
	})
}

// Concurrent redemptions of a voucher with one slot left: exactly one succeeds.
func TestVoucherUseCase_Apply_LastSlotRace(t *testing.T) {
	const contenders = 16
	ctx := context.Background()
	store := fakestore.New()
	store.PutVoucher(voucherAt(testNow).WithCode("LAST1").WithMaxTotalUsage(5).BuildStored(4, true))
	uc := newVoucherUC(store, nil)

	type attempt struct {
		caller commands.Caller
		order  *order.Order
	}
	attempts := make([]attempt, contenders)
	for i := range attempts {
		c := customer()
		attempts[i] = attempt{caller: c, order: seedOrder(store, c.UserID, 200)}
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		exhausted int
	)
	start := make(chan struct{})
	for _, a := range attempts {
		wg.Add(1)
		go func(a attempt) {
			defer wg.Done()
			<-start
			_, err := uc.Apply(ctx, a.caller, commands.ApplyVoucherInput{Code: "LAST1", OrderID: a.order.ID()})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errs.Is(err, voucher.ErrVoucherExhausted):
				exhausted++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(a)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, contenders-1, exhausted)
	assert.Equal(t, 5, store.Voucher("LAST1").TotalUsage())

	discounted := 0
	for _, a := range attempts {
		if store.Order(a.order.ID()).VoucherCode() != nil {
			discounted++
		}
	}
	assert.Equal(t, 1, discounted)
}

// A failure at any write step leaves order, ledger and counter untouched.
func TestVoucherUseCase_Apply_Atomic(t *testing.T) {
	for _, op := range []string{"Orders.SaveDiscount", "VoucherUsages.Record", "Vouchers.IncrementUsage"} {
		t.Run(op, func(t *testing.T) {
			ctx := context.Background()
			store := fakestore.New()
			v := voucherAt(testNow).BuildStored(0, true)
			store.PutVoucher(v)
			caller := customer()
			o := seedOrder(store, caller.UserID, 200)
			store.FailOn(op, fakestore.ErrInjected)
			uc := newVoucherUC(store, nil)

			_, err := uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: "SAVE10", OrderID: o.ID()})

			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
			saved := store.Order(o.ID())
			assert.Equal(t, 200.0, saved.Total())
			assert.Equal(t, 0.0, saved.Discount())
			assert.Nil(t, saved.VoucherCode())
			assert.Equal(t, 0, store.Usages(v.ID(), caller.UserID))
			assert.Equal(t, 0, store.Voucher("SAVE10").TotalUsage())
			assert.Equal(t, 1, store.Rollbacks)
		})
	}
}

func TestVoucherUseCase_Preview(t *testing.T) {
	ctx := context.Background()
	store := fakestore.New()
	v := voucherAt(testNow).AsPercentage(25).WithMinSpend(0).BuildStored(0, true)
	store.PutVoucher(v)
	caller := customer()
	o := seedOrder(store, caller.UserID, 80)
	uc := newVoucherUC(store, nil)

	res, err := uc.Preview(ctx, caller, commands.ApplyVoucherInput{Code: "SAVE10", OrderID: o.ID()})

	require.NoError(t, err)
	assert.Equal(t, 20.0, res.DiscountAmount)
	assert.Equal(t, 60.0, res.NewTotal)
	assert.Equal(t, 80.0, store.Order(o.ID()).Total())
	assert.Equal(t, 0, store.Usages(v.ID(), caller.UserID))
	assert.Equal(t, 0, store.Commits+store.Rollbacks)

	_, err = uc.Preview(ctx, customer(), commands.ApplyVoucherInput{Code: "SAVE10", OrderID: o.ID()})
	assert.ErrorIs(t, err, commands.ErrOrderNotOwned)
}

func TestVoucherUseCase_Deactivate(t *testing.T) {
	ctx := context.Background()
	store := fakestore.New()
	store.PutVoucher(voucherAt(testNow).BuildStored(0, true))
	caller := customer()
	o := seedOrder(store, caller.UserID, 200)
	uc := newVoucherUC(store, nil)

	require.NoError(t, uc.Deactivate(ctx, "save10"))
	assert.False(t, store.Voucher("SAVE10").IsActive())

	_, err := uc.Apply(ctx, caller, commands.ApplyVoucherInput{Code: "SAVE10", OrderID: o.ID()})
	assert.ErrorIs(t, err, voucher.ErrInvalidVoucher)

	assert.ErrorIs(t, uc.Deactivate(ctx, "MISSING1"), commands.ErrVoucherNotFound)
}
