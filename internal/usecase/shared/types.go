package shared

import (
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/product"

	"github.com/google/uuid"
)

type GrantSnapshot struct {
	VoucherID  uuid.UUID
	UserID     uuid.UUID
	IsRedeemed bool
	RedeemedAt *time.Time
}

type QualifiedUser struct {
	ID    uuid.UUID
	Email string
	Name  string
}

type RatedProduct struct {
	ProductID uuid.UUID
	Aggregate product.RatingAggregate
}

type VoucherUsage struct {
	VoucherID uuid.UUID
	UserID    uuid.UUID
	OrderID   uuid.UUID
	Amount    float64
	CreatedAt time.Time
}
