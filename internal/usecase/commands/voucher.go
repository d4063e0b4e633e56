package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/clock"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/errs"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVoucherCodeTaken    = errs.New("voucher code already exists")
	ErrVoucherNotFound     = errs.New("voucher not found")
	ErrUnknownVoucherScope = errs.New("voucher scope references unknown products or categories")
	ErrOrderNotFound       = errs.New("order not found")
	ErrOrderNotOwned       = errs.New("order does not belong to the caller")
	ErrInvalidBulkQuantity = errs.New("bulk quantity is out of range")
	ErrCodeSpaceExhausted  = errs.New("could not generate a unique voucher code")
)

// VoucherPolicy carries the operator-tunable limits of voucher issuance.
type VoucherPolicy struct {
	DefaultCodeLength int
	MaxBulkQuantity   int
	CodeMaxAttempts   int
}

// VoucherSpec is the discount configuration shared by single and bulk issuance.
type VoucherSpec struct {
	Type              string
	Value             float64
	MinSpend          float64
	ExpiresAt         *time.Time
	MaxUsagePerUser   *int
	MaxTotalUsage     *int
	QualificationType string
	Criteria          *voucher.Criteria
	ProductIDs        []uuid.UUID
	CategoryIDs       []uuid.UUID
}

type CreateVoucherInput struct {
	Code string
	VoucherSpec
}

type BulkIssueInput struct {
	Prefix     string
	Quantity   int
	CodeLength int
	VoucherSpec
}

type ApplyVoucherInput struct {
	Code    string
	OrderID uuid.UUID
}

type CreateVoucherResult struct {
	ID   uuid.UUID
	Code string
}

type BulkIssueResult struct {
	Codes []string
}

type DiscountResult struct {
	Code           string
	OrderID        uuid.UUID
	DiscountAmount float64
	NewTotal       float64
}

type VoucherCommands interface {
	Create(ctx context.Context, in CreateVoucherInput) (*CreateVoucherResult, error)
	BulkIssue(ctx context.Context, in BulkIssueInput) (*BulkIssueResult, error)
	Apply(ctx context.Context, caller Caller, in ApplyVoucherInput) (*DiscountResult, error)
	Preview(ctx context.Context, caller Caller, in ApplyVoucherInput) (*DiscountResult, error)
	Deactivate(ctx context.Context, code string) error
}

type voucherUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	codes  voucher.CodeGenerator
	policy VoucherPolicy
}

func NewVoucherUseCase(uow shared.UnitOfWork, clk clock.Clock, codes voucher.CodeGenerator, policy VoucherPolicy) VoucherCommands {
	return &voucherUseCaseImpl{
		uow:    uow,
		clock:  clk,
		codes:  codes,
		policy: policy,
	}
}

func (s VoucherSpec) params(code string) (voucher.Params, error) {
	typ, err := voucher.NewType(s.Type)
	if err != nil {
		return voucher.Params{}, err
	}
	qt, err := voucher.NewQualificationType(s.QualificationType)
	if err != nil {
		return voucher.Params{}, err
	}
	return voucher.Params{
		Code:              code,
		Type:              typ,
		Value:             s.Value,
		MinSpend:          s.MinSpend,
		ExpiresAt:         s.ExpiresAt,
		MaxUsagePerUser:   s.MaxUsagePerUser,
		MaxTotalUsage:     s.MaxTotalUsage,
		QualificationType: qt,
		Criteria:          s.Criteria,
		ProductIDs:        s.ProductIDs,
		CategoryIDs:       s.CategoryIDs,
	}, nil
}

func (uc *voucherUseCaseImpl) Create(ctx context.Context, in CreateVoucherInput) (*CreateVoucherResult, error) {
	p, err := in.params(in.Code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	v, err := voucher.NewVoucher(uuid.Nil, p, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Vouchers().Create(ctx, tx.DB(), v); err != nil {
			return createError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("voucher created", "voucher_id", v.ID(), "code", v.Code().String(), "qualification", v.QualificationType().String())
	return &CreateVoucherResult{ID: v.ID(), Code: v.Code().String()}, nil
}

// BulkIssue creates Quantity vouchers in one transaction. A code already taken,
// in storage or earlier in the batch, is regenerated up to CodeMaxAttempts
// times before the whole batch is rolled back.
func (uc *voucherUseCaseImpl) BulkIssue(ctx context.Context, in BulkIssueInput) (*BulkIssueResult, error) {
	if in.Quantity < 1 || in.Quantity > uc.policy.MaxBulkQuantity {
		return nil, errs.Mark(ErrInvalidBulkQuantity, errs.ErrDomainValidation)
	}
	prefix, err := voucher.NormalizePrefix(in.Prefix)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	length := in.CodeLength
	if length == 0 {
		length = uc.policy.DefaultCodeLength
	}
	if err := voucher.ValidateCodeLength(length); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	now := uc.clock.Now()
	sample, err := uc.codes.Generate(prefix, length)
	if err != nil {
		return nil, err
	}
	p, err := in.params(sample)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	template, err := voucher.NewVoucher(uuid.Nil, p, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var codes []string
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		codes = make([]string, 0, in.Quantity)
		seen := make(map[string]struct{}, in.Quantity)

		for range in.Quantity {
			code, err := uc.issueOne(ctx, tx, template, prefix, length, seen, now)
			if err != nil {
				return err
			}
			codes = append(codes, code)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("voucher batch issued", "prefix", prefix, "quantity", len(codes))
	return &BulkIssueResult{Codes: codes}, nil
}

func (uc *voucherUseCaseImpl) issueOne(ctx context.Context, tx shared.Tx, template *voucher.Voucher, prefix string, length int, seen map[string]struct{}, now time.Time) (string, error) {
	for attempt := 0; attempt < uc.policy.CodeMaxAttempts; attempt++ {
		code, err := uc.codes.Generate(prefix, length)
		if err != nil {
			return "", err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		v, err := template.CloneWithCode(code, now)
		if err != nil {
			return "", errs.Mark(err, errs.ErrDomainValidation)
		}
		created, err := tx.Vouchers().CreateIfCodeFree(ctx, tx.DB(), v)
		if err != nil {
			return "", createError(err)
		}
		if created {
			return code, nil
		}
		slog.Debug("voucher code collision, retrying", "attempt", attempt+1)
	}
	return "", ErrCodeSpaceExhausted
}

// Apply redeems a voucher against one of the caller's orders. The voucher and
// order rows stay locked from the first check to the counter increment, so
// concurrent redemptions of the last slot serialize and exactly one wins.
func (uc *voucherUseCaseImpl) Apply(ctx context.Context, caller Caller, in ApplyVoucherInput) (*DiscountResult, error) {
	code, err := voucher.NewCode(in.Code)
	if err != nil {
		return nil, voucher.ErrInvalidVoucher
	}

	var result *DiscountResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		v, err := tx.Vouchers().FindByCodeForUpdate(ctx, tx.DB(), code.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return voucher.ErrInvalidVoucher
			}
			return storeError(err)
		}

		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), in.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return storeError(err)
		}
		if !o.BelongsTo(caller.UserID) {
			return ErrOrderNotOwned
		}

		if v.QualificationType().RequiresGrant() {
			grant, err := tx.VoucherGrants().Find(ctx, tx.DB(), v.ID(), caller.UserID)
			if err != nil {
				return storeError(err)
			}
			if grant == nil {
				return voucher.ErrInvalidVoucher
			}
		}

		used, err := tx.VoucherUsages().CountByUser(ctx, tx.DB(), v.ID(), caller.UserID)
		if err != nil {
			return storeError(err)
		}

		amount, err := v.Evaluate(now, used, o.Total())
		if err != nil {
			return err
		}

		o.ApplyVoucher(v.Code().String(), amount)
		if err := tx.Orders().SaveDiscount(ctx, tx.DB(), o); err != nil {
			return storeError(err)
		}
		if err := tx.VoucherUsages().Record(ctx, tx.DB(), shared.VoucherUsage{
			VoucherID: v.ID(),
			UserID:    caller.UserID,
			OrderID:   o.ID(),
			Amount:    amount,
			CreatedAt: now,
		}); err != nil {
			return storeError(err)
		}
		if err := tx.Vouchers().IncrementUsage(ctx, tx.DB(), v.ID()); err != nil {
			return storeError(err)
		}
		if v.QualificationType().RequiresGrant() {
			if err := tx.VoucherGrants().MarkRedeemed(ctx, tx.DB(), v.ID(), caller.UserID, now); err != nil {
				return storeError(err)
			}
		}

		result = &DiscountResult{
			Code:           v.Code().String(),
			OrderID:        o.ID(),
			DiscountAmount: amount,
			NewTotal:       o.Total(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("voucher applied",
		"code", result.Code,
		"order_id", result.OrderID,
		"user_id", caller.UserID,
		"discount", result.DiscountAmount)
	return result, nil
}

// Preview runs the redemption checks without locking or writing anything.
func (uc *voucherUseCaseImpl) Preview(ctx context.Context, caller Caller, in ApplyVoucherInput) (*DiscountResult, error) {
	code, err := voucher.NewCode(in.Code)
	if err != nil {
		return nil, voucher.ErrInvalidVoucher
	}
	reads := uc.uow.CommandReads()

	v, err := reads.VoucherByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, voucher.ErrInvalidVoucher
		}
		return nil, storeError(err)
	}

	o, err := reads.OrderByID(ctx, in.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, storeError(err)
	}
	if !o.BelongsTo(caller.UserID) {
		return nil, ErrOrderNotOwned
	}

	if v.QualificationType().RequiresGrant() {
		grant, err := reads.VoucherGrant(ctx, v.ID(), caller.UserID)
		if err != nil {
			return nil, storeError(err)
		}
		if grant == nil {
			return nil, voucher.ErrInvalidVoucher
		}
	}

	used, err := reads.VoucherUsageCount(ctx, v.ID(), caller.UserID)
	if err != nil {
		return nil, storeError(err)
	}
	amount, err := v.Evaluate(uc.clock.Now(), used, o.Total())
	if err != nil {
		return nil, err
	}

	preview := *o
	preview.ApplyVoucher(v.Code().String(), amount)
	return &DiscountResult{
		Code:           v.Code().String(),
		OrderID:        o.ID(),
		DiscountAmount: amount,
		NewTotal:       preview.Total(),
	}, nil
}

func (uc *voucherUseCaseImpl) Deactivate(ctx context.Context, code string) error {
	c, err := voucher.NewCode(code)
	if err != nil {
		return ErrVoucherNotFound
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Vouchers().Deactivate(ctx, tx.DB(), c.String(), uc.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVoucherNotFound
			}
			return storeError(err)
		}
		return nil
	})
}

func createError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrVoucherCodeTaken)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrUnknownVoucherScope)
	default:
		return storeError(err)
	}
}

func storeError(err error) error {
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
