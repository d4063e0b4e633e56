package shared

import (
	"context"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/order"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/product"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/rating"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: lock-free reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Vouchers() VoucherRepository
	VoucherUsages() VoucherUsageRepository
	VoucherGrants() VoucherGrantRepository
	Orders() OrderRepository
	ProductRatings() ProductRatingRepository
	RatingStats() RatingStatsRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	VoucherByCode(ctx context.Context, code string) (*voucher.Voucher, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	VoucherUsageCount(ctx context.Context, voucherID, userID uuid.UUID) (int, error)
	VoucherGrant(ctx context.Context, voucherID, userID uuid.UUID) (*GrantSnapshot, error)
	ActiveTargetedVouchers(ctx context.Context, now time.Time) ([]*voucher.Voucher, error)
	QualifiedUsers(ctx context.Context, voucherID uuid.UUID, criteria *voucher.Criteria, now time.Time) ([]QualifiedUser, error)
	HasCompletedPurchase(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type VoucherRepository interface {
	Create(ctx context.Context, tx query.DBTX, v *voucher.Voucher) error
	// CreateIfCodeFree returns false without error when the code is taken.
	CreateIfCodeFree(ctx context.Context, tx query.DBTX, v *voucher.Voucher) (bool, error)
	FindByCodeForUpdate(ctx context.Context, tx query.DBTX, code string) (*voucher.Voucher, error)
	IncrementUsage(ctx context.Context, tx query.DBTX, voucherID uuid.UUID) error
	Deactivate(ctx context.Context, tx query.DBTX, code string, now time.Time) error
}

type VoucherUsageRepository interface {
	CountByUser(ctx context.Context, tx query.DBTX, voucherID, userID uuid.UUID) (int, error)
	Record(ctx context.Context, tx query.DBTX, usage VoucherUsage) error
}

type VoucherGrantRepository interface {
	// Grant returns false when the user already holds the voucher.
	Grant(ctx context.Context, tx query.DBTX, voucherID, userID uuid.UUID) (bool, error)
	// Find returns nil, nil when no grant exists.
	Find(ctx context.Context, tx query.DBTX, voucherID, userID uuid.UUID) (*GrantSnapshot, error)
	MarkRedeemed(ctx context.Context, tx query.DBTX, voucherID, userID uuid.UUID, at time.Time) error
}

type OrderRepository interface {
	FindForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*order.Order, error)
	SaveDiscount(ctx context.Context, tx query.DBTX, o *order.Order) error
}

type ProductRatingRepository interface {
	// FindByProductAndUser returns nil, nil when the user has not rated the product.
	FindByProductAndUser(ctx context.Context, tx query.DBTX, productID, userID uuid.UUID) (*rating.ProductRating, error)
	Create(ctx context.Context, tx query.DBTX, r *rating.ProductRating) error
	Update(ctx context.Context, tx query.DBTX, r *rating.ProductRating) error
	Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error
}

type RatingStatsRepository interface {
	// LockProduct row-locks the product and returns its rating aggregate.
	LockProduct(ctx context.Context, tx query.DBTX, productID uuid.UUID) (product.RatingAggregate, error)
	GlobalTotals(ctx context.Context, tx query.DBTX) (product.GlobalTotals, error)
	Save(ctx context.Context, tx query.DBTX, productID uuid.UUID, agg product.RatingAggregate) error
	ListRatedForUpdate(ctx context.Context, tx query.DBTX) ([]RatedProduct, error)
}
