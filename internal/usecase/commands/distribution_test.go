//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/clock"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/builder"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/fakestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetedVoucher(code string, sendEmail bool) *voucher.Voucher {
	minOrders := 3
	return voucherAt(testNow).
		WithCode(code).
		AsTargeted(&voucher.Criteria{MinOrders: &minOrders, SendEmail: sendEmail}).
		BuildStored(0, true)
}

func qualifiedUsers(n int) []shared.QualifiedUser {
	users := make([]shared.QualifiedUser, n)
	for i := range users {
		id := uuid.New()
		users[i] = shared.QualifiedUser{ID: id, Email: id.String()[:8] + "@example.com", Name: "Shopper"}
	}
	return users
}

func TestDistributionUseCase_Distribute(t *testing.T) {
	ctx := context.Background()

	t.Run("grants new holders and notifies them", func(t *testing.T) {
		store := fakestore.New()
		v := targetedVoucher("LOYAL15", true)
		store.PutVoucher(v)
		users := qualifiedUsers(3)
		store.SetCandidates(users...)
		store.PutGrant(v.ID(), users[0].ID)
		notifier := &fakestore.RecordingNotifier{}
		uc := commands.NewDistributionUseCase(store, clock.NewMockClock(testNow), notifier)

		granted, err := uc.Distribute(ctx, "loyal15")

		require.NoError(t, err)
		assert.Equal(t, 2, granted)
		for _, u := range users {
			_, ok := store.Grant(v.ID(), u.ID)
			assert.True(t, ok)
		}

		events := notifier.Events()
		require.Len(t, events, 2)
		assert.Equal(t, commands.VoucherGrantedEvent{
			VoucherID: v.ID(),
			Code:      "LOYAL15",
			Type:      "percentage",
			Value:     10,
			ExpiresAt: v.ExpiresAt(),
			UserID:    users[1].ID,
			Email:     users[1].Email,
			Name:      "Shopper",
			GrantedAt: testNow,
		}, events[0])
	})

	t.Run("second run grants nothing", func(t *testing.T) {
		store := fakestore.New()
		store.PutVoucher(targetedVoucher("LOYAL15", false))
		store.SetCandidates(qualifiedUsers(4)...)
		uc := commands.NewDistributionUseCase(store, clock.NewMockClock(testNow), &fakestore.RecordingNotifier{})

		first, err := uc.Distribute(ctx, "LOYAL15")
		require.NoError(t, err)
		second, err := uc.Distribute(ctx, "LOYAL15")
		require.NoError(t, err)

		assert.Equal(t, 4, first)
		assert.Equal(t, 0, second)
	})

	t.Run("a failed grant skips only that user", func(t *testing.T) {
		store := fakestore.New()
		v := targetedVoucher("LOYAL15", true)
		store.PutVoucher(v)
		users := qualifiedUsers(3)
		store.SetCandidates(users...)
		store.FailGrantFor(users[1].ID, fakestore.ErrInjected)
		notifier := &fakestore.RecordingNotifier{}
		uc := commands.NewDistributionUseCase(store, clock.NewMockClock(testNow), notifier)

		granted, err := uc.Distribute(ctx, "LOYAL15")

		require.NoError(t, err)
		assert.Equal(t, 2, granted)
		_, ok := store.Grant(v.ID(), users[1].ID)
		assert.False(t, ok)
		assert.Len(t, notifier.Events(), 2)
		assert.Equal(t, 1, store.Rollbacks)
	})

	t.Run("notification failures do not undo grants", func(t *testing.T) {
		store := fakestore.New()
		store.PutVoucher(targetedVoucher("LOYAL15", true))
		store.SetCandidates(qualifiedUsers(2)...)
		notifier := &fakestore.RecordingNotifier{Err: errors.New("broker unavailable")}
		uc := commands.NewDistributionUseCase(store, clock.NewMockClock(testNow), notifier)

		granted, err := uc.Distribute(ctx, "LOYAL15")

		require.NoError(t, err)
		assert.Equal(t, 2, granted)
		assert.Len(t, notifier.Events(), 2)
	})

	t.Run("without send_email nothing is published", func(t *testing.T) {
		store := fakestore.New()
		store.PutVoucher(targetedVoucher("LOYAL15", false))
		store.SetCandidates(qualifiedUsers(2)...)
		notifier := &fakestore.RecordingNotifier{}
		uc := commands.NewDistributionUseCase(store, clock.NewMockClock(testNow), notifier)

		_, err := uc.Distribute(ctx, "LOYAL15")

		require.NoError(t, err)
		assert.Empty(t, notifier.Events())
	})

	t.Run("malformed addresses are granted but not notified", func(t *testing.T) {
		store := fakestore.New()
		v := targetedVoucher("LOYAL15", true)
		store.PutVoucher(v)
		users := qualifiedUsers(2)
		users[0].Email = "not-an-address"
		store.SetCandidates(users...)
		notifier := &fakestore.RecordingNotifier{}
		uc := commands.NewDistributionUseCase(store, clock.NewMockClock(testNow), notifier)

		granted, err := uc.Distribute(ctx, "LOYAL15")

		require.NoError(t, err)
		assert.Equal(t, 2, granted)
		events := notifier.Events()
		require.Len(t, events, 1)
		assert.Equal(t, users[1].ID, events[0].UserID)
	})

	rejections := []struct {
		name string
		seed func(*fakestore.Store)
		code string
		err  error
	}{
		{
			name: "unknown voucher",
			seed: func(*fakestore.Store) {},
			code: "MISSING1",
			err:  commands.ErrVoucherNotFound,
		},
		{
			name: "manual voucher",
			seed: func(s *fakestore.Store) { s.PutVoucher(voucherAt(testNow).BuildStored(0, true)) },
			code: "SAVE10",
			err:  commands.ErrVoucherNotTargeted,
		},
		{
			name: "expired targeted voucher",
			seed: func(s *fakestore.Store) {
				minOrders := 1
				past := testNow.Add(-time.Hour)
				s.PutVoucher(voucherAt(testNow).WithCode("OLD1").WithExpiresAt(&past).
					AsTargeted(&voucher.Criteria{MinOrders: &minOrders}).BuildStored(0, true))
			},
			code: "OLD1",
			err:  voucher.ErrInvalidVoucher,
		},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			store := fakestore.New()
			tt.seed(store)
			store.SetCandidates(qualifiedUsers(1)...)
			uc := commands.NewDistributionUseCase(store, clock.NewMockClock(testNow), &fakestore.RecordingNotifier{})

			granted, err := uc.Distribute(ctx, tt.code)

			require.ErrorIs(t, err, tt.err)
			assert.Zero(t, granted)
			assert.Zero(t, store.Commits)
		})
	}
}

func TestDistributionUseCase_DistributeAll(t *testing.T) {
	ctx := context.Background()
	store := fakestore.New()
	store.PutVoucher(targetedVoucher("VIPA", false))
	store.PutVoucher(targetedVoucher("VIPB", false))
	store.PutVoucher(voucherAt(testNow).BuildStored(0, true))
	store.PutVoucher(builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
		minOrders := 1
		b.Code = "VIPOFF"
		b.Now = testNow
		b.AsTargeted(&voucher.Criteria{MinOrders: &minOrders})
	}).BuildStored(0, false))
	store.SetCandidates(qualifiedUsers(3)...)
	uc := commands.NewDistributionUseCase(store, clock.NewMockClock(testNow), &fakestore.RecordingNotifier{})

	report, err := uc.DistributeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, &commands.DistributionReport{Vouchers: 2, Granted: 6}, report)

	report, err = uc.DistributeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, &commands.DistributionReport{Vouchers: 2, Granted: 0}, report)

	t.Run("a failing candidate query skips the voucher", func(t *testing.T) {
		store.FailOn("Reads.QualifiedUsers", fakestore.ErrInjected)

		report, err := uc.DistributeAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.DistributionReport{}, report)
	})
}
