package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/user"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/clock"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/errs"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"
)

var ErrVoucherNotTargeted = errs.New("only targeted vouchers can be distributed")

type DistributionReport struct {
	Vouchers int
	Granted  int
}

type DistributionCommands interface {
	// Distribute grants one targeted voucher to every qualifying user not yet holding it
	// and returns the number of new grants.
	Distribute(ctx context.Context, code string) (int, error)
	DistributeAll(ctx context.Context) (*DistributionReport, error)
}

type distributionUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier VoucherNotifier
}

func NewDistributionUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier VoucherNotifier) DistributionCommands {
	return &distributionUseCaseImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
	}
}

func (uc *distributionUseCaseImpl) Distribute(ctx context.Context, code string) (int, error) {
	c, err := voucher.NewCode(code)
	if err != nil {
		return 0, ErrVoucherNotFound
	}
	v, err := uc.uow.CommandReads().VoucherByCode(ctx, c.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrVoucherNotFound
		}
		return 0, storeError(err)
	}
	if !v.QualificationType().RequiresGrant() {
		return 0, ErrVoucherNotTargeted
	}
	if !v.IsValidAt(uc.clock.Now()) {
		return 0, voucher.ErrInvalidVoucher
	}
	return uc.distribute(ctx, v)
}

// DistributeAll sweeps every active targeted voucher. A voucher whose
// candidate query fails is logged and skipped.
func (uc *distributionUseCaseImpl) DistributeAll(ctx context.Context) (*DistributionReport, error) {
	vouchers, err := uc.uow.CommandReads().ActiveTargetedVouchers(ctx, uc.clock.Now())
	if err != nil {
		return nil, storeError(err)
	}

	report := &DistributionReport{}
	for _, v := range vouchers {
		n, err := uc.distribute(ctx, v)
		if err != nil {
			slog.Error("voucher distribution failed", "code", v.Code().String(), "error", err.Error())
			continue
		}
		report.Vouchers++
		report.Granted += n
	}
	return report, nil
}

func (uc *distributionUseCaseImpl) distribute(ctx context.Context, v *voucher.Voucher) (int, error) {
	now := uc.clock.Now()
	candidates, err := uc.uow.CommandReads().QualifiedUsers(ctx, v.ID(), v.Criteria(), now)
	if err != nil {
		return 0, storeError(err)
	}

	granted := 0
	for _, u := range candidates {
		var isNew bool
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var gerr error
			isNew, gerr = tx.VoucherGrants().Grant(ctx, tx.DB(), v.ID(), u.ID)
			return gerr
		})
		if err != nil {
			slog.Warn("voucher grant skipped", "code", v.Code().String(), "user_id", u.ID, "error", err.Error())
			continue
		}
		if !isNew {
			continue
		}
		granted++

		if v.Criteria().NotifiesOnGrant() {
			uc.notify(ctx, v, u, now)
		}
	}

	slog.Info("voucher distributed", "code", v.Code().String(), "candidates", len(candidates), "granted", granted)
	return granted, nil
}

func (uc *distributionUseCaseImpl) notify(ctx context.Context, v *voucher.Voucher, u shared.QualifiedUser, now time.Time) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		slog.Warn("voucher grant notification skipped", "code", v.Code().String(), "user_id", u.ID, "error", err.Error())
		return
	}
	event := VoucherGrantedEvent{
		VoucherID: v.ID(),
		Code:      v.Code().String(),
		Type:      v.Discount().Type().String(),
		Value:     v.Discount().Value(),
		ExpiresAt: v.ExpiresAt(),
		UserID:    u.ID,
		Email:     email.Value(),
		Name:      u.Name,
		GrantedAt: now,
	}
	if err := uc.notifier.NotifyVoucherGranted(ctx, event); err != nil {
		slog.Warn("voucher grant notification failed", "code", event.Code, "user_id", u.ID, "error", err.Error())
	}
}
