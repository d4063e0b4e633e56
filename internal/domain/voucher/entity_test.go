//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/user"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VoucherBuilder)
	errIs  error
}

func TestNewVoucher(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		v, err := builder.NewVoucherBuilder().WithCode(" save10 ").BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, v.ID())
		assert.Equal(t, voucher.Code("SAVE10"), v.Code())
		assert.True(t, v.IsActive())
		assert.Equal(t, 0, v.TotalUsage())
		assert.Equal(t, voucher.QualificationManual, v.QualificationType())
	})

	past := time.Now().Add(-time.Hour)
	minSpend := 100.0
	days := 30
	badRole := user.Role("vip")

	runCases(t, []testCase{
		{name: "code too short", mutate: func(b *builder.VoucherBuilder) { b.WithCode("AB") }, errIs: voucher.ErrInvalidCode},
		{name: "code with symbols", mutate: func(b *builder.VoucherBuilder) { b.WithCode("SAVE-10") }, errIs: voucher.ErrInvalidCode},
		{name: "negative fixed value", mutate: func(b *builder.VoucherBuilder) { b.AsFixed(-1) }, errIs: voucher.ErrNegativeDiscountValue},
		{name: "percentage above 100", mutate: func(b *builder.VoucherBuilder) { b.AsPercentage(101) }, errIs: voucher.ErrInvalidDiscountPercent},
		{name: "fixed above 100 is fine", mutate: func(b *builder.VoucherBuilder) { b.AsFixed(5000) }},
		{name: "unknown type", mutate: func(b *builder.VoucherBuilder) { b.Type = "bogus" }, errIs: voucher.ErrInvalidType},
		{name: "negative min spend", mutate: func(b *builder.VoucherBuilder) { b.WithMinSpend(-5) }, errIs: voucher.ErrNegativeMinSpend},
		{name: "expiry in the past", mutate: func(b *builder.VoucherBuilder) { b.WithExpiresAt(&past) }, errIs: voucher.ErrExpiryInPast},
		{name: "no expiry", mutate: func(b *builder.VoucherBuilder) { b.WithExpiresAt(nil) }},
		{name: "zero per user cap", mutate: func(b *builder.VoucherBuilder) { b.WithMaxUsagePerUser(0) }, errIs: voucher.ErrInvalidUsageLimit},
		{name: "zero total cap", mutate: func(b *builder.VoucherBuilder) { b.WithMaxTotalUsage(0) }, errIs: voucher.ErrInvalidUsageLimit},
		{
			name:   "targeted without criteria",
			mutate: func(b *builder.VoucherBuilder) { b.AsTargeted(nil) },
			errIs:  voucher.ErrCriteriaRequired,
		},
		{
			name:   "targeted with only send_email",
			mutate: func(b *builder.VoucherBuilder) { b.AsTargeted(&voucher.Criteria{SendEmail: true}) },
			errIs:  voucher.ErrCriteriaRequired,
		},
		{
			name:   "time period without spend",
			mutate: func(b *builder.VoucherBuilder) { b.AsTargeted(&voucher.Criteria{TimePeriodDays: &days, MinOrders: &days}) },
			errIs:  voucher.ErrTimePeriodWithoutSpend,
		},
		{
			name:   "unknown role",
			mutate: func(b *builder.VoucherBuilder) { b.AsTargeted(&voucher.Criteria{UserType: &badRole}) },
			errIs:  voucher.ErrInvalidCriteriaRole,
		},
		{
			name:   "targeted with spend window",
			mutate: func(b *builder.VoucherBuilder) { b.AsTargeted(&voucher.Criteria{MinSpend: &minSpend, TimePeriodDays: &days}) },
		},
		{
			name: "criteria on a manual voucher",
			mutate: func(b *builder.VoucherBuilder) {
				b.Criteria = &voucher.Criteria{MinSpend: &minSpend}
			},
			errIs: voucher.ErrCriteriaNotAllowed,
		},
	})
}

func TestVoucher_IsValidAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)

	t.Run("expired voucher is invalid even when active", func(t *testing.T) {
		v := builder.NewVoucherBuilder().WithExpiresAt(&past).BuildStored(0, true)
		assert.False(t, v.IsValidAt(now))
	})

	t.Run("inactive voucher is invalid", func(t *testing.T) {
		v := builder.NewVoucherBuilder().BuildStored(0, false)
		assert.False(t, v.IsValidAt(now))
	})

	t.Run("exhausted voucher is invalid", func(t *testing.T) {
		v := builder.NewVoucherBuilder().WithMaxTotalUsage(3).BuildStored(3, true)
		assert.False(t, v.IsValidAt(now))
	})

	t.Run("expiry equal to now counts as expired", func(t *testing.T) {
		v := builder.NewVoucherBuilder().WithExpiresAt(&now).BuildStored(0, true)
		assert.False(t, v.IsValidAt(now))
	})

	t.Run("open ended voucher is valid", func(t *testing.T) {
		v := builder.NewVoucherBuilder().WithExpiresAt(nil).BuildStored(100, true)
		assert.True(t, v.IsValidAt(now))
	})
}

func TestVoucher_Evaluate(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)

	testCases := []struct {
		name       string
		voucher    *voucher.Voucher
		used       int
		orderTotal float64
		want       float64
		errIs      error
	}{
		{
			name:       "percentage discount",
			voucher:    builder.NewVoucherBuilder().AsPercentage(10).WithMinSpend(50).BuildStored(0, true),
			orderTotal: 200,
			want:       20,
		},
		{
			name:       "fixed discount is clamped to the order total",
			voucher:    builder.NewVoucherBuilder().AsFixed(100).WithMinSpend(0).BuildStored(0, true),
			orderTotal: 40,
			want:       40,
		},
		{
			name:       "percentage is rounded to cents",
			voucher:    builder.NewVoucherBuilder().AsPercentage(15).WithMinSpend(0).BuildStored(0, true),
			orderTotal: 33.33,
			want:       5,
		},
		{
			name:       "expired",
			voucher:    builder.NewVoucherBuilder().WithExpiresAt(&past).BuildStored(0, true),
			orderTotal: 200,
			errIs:      voucher.ErrInvalidVoucher,
		},
		{
			name:       "inactive",
			voucher:    builder.NewVoucherBuilder().BuildStored(0, false),
			orderTotal: 200,
			errIs:      voucher.ErrInvalidVoucher,
		},
		{
			name:       "exhausted before per user cap",
			voucher:    builder.NewVoucherBuilder().WithMaxTotalUsage(1).WithMaxUsagePerUser(1).BuildStored(1, true),
			used:       1,
			orderTotal: 200,
			errIs:      voucher.ErrVoucherExhausted,
		},
		{
			name:       "per user cap",
			voucher:    builder.NewVoucherBuilder().WithMaxUsagePerUser(1).BuildStored(1, true),
			used:       1,
			orderTotal: 200,
			errIs:      voucher.ErrUserLimitReached,
		},
		{
			name:       "per user cap checked before min spend",
			voucher:    builder.NewVoucherBuilder().WithMaxUsagePerUser(2).WithMinSpend(500).BuildStored(2, true),
			used:       2,
			orderTotal: 10,
			errIs:      voucher.ErrUserLimitReached,
		},
		{
			name:       "below minimum spend",
			voucher:    builder.NewVoucherBuilder().WithMinSpend(50).BuildStored(0, true),
			orderTotal: 49.99,
			errIs:      voucher.ErrBelowMinimumSpend,
		},
		{
			name:       "exactly minimum spend",
			voucher:    builder.NewVoucherBuilder().AsPercentage(10).WithMinSpend(50).BuildStored(0, true),
			orderTotal: 50,
			want:       5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.voucher.Evaluate(now, tc.used, tc.orderTotal)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVoucher_CloneWithCode(t *testing.T) {
	base, err := builder.NewVoucherBuilder().WithMaxTotalUsage(5).BuildDomain()
	require.NoError(t, err)

	clone, err := base.CloneWithCode("bulkABCD1234", time.Now())
	require.NoError(t, err)

	assert.NotEqual(t, base.ID(), clone.ID())
	assert.Equal(t, voucher.Code("BULKABCD1234"), clone.Code())
	assert.Equal(t, base.Discount(), clone.Discount())
	assert.Equal(t, base.MaxTotalUsage(), clone.MaxTotalUsage())

	_, err = base.CloneWithCode("x", time.Now())
	assert.ErrorIs(t, err, voucher.ErrInvalidCode)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewVoucherBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}
