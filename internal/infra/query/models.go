package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Voucher struct {
	ID                uuid.UUID
	Code              string
	Type              string
	Value             float64
	MinSpend          float64
	ExpiresAt         pgtype.Timestamptz
	IsActive          bool
	MaxUsagePerUser   pgtype.Int4
	MaxTotalUsage     pgtype.Int4
	TotalUsage        int32
	QualificationType string
	Criteria          []byte
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

type VoucherUser struct {
	VoucherID  uuid.UUID
	UserID     uuid.UUID
	IsRedeemed bool
	RedeemedAt pgtype.Timestamptz
	CreatedAt  pgtype.Timestamptz
}

type VoucherUsage struct {
	ID        uuid.UUID
	VoucherID uuid.UUID
	UserID    uuid.UUID
	OrderID   uuid.UUID
	Amount    float64
	CreatedAt pgtype.Timestamptz
}

type Order struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Status      string
	Total       float64
	Discount    float64
	VoucherCode pgtype.Text
	CreatedAt   pgtype.Timestamptz
}

type ProductRating struct {
	ID               uuid.UUID
	ProductID        uuid.UUID
	UserID           uuid.UUID
	Rating           int16
	Review           pgtype.Text
	VerifiedPurchase bool
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type ProductRatingStats struct {
	ID             uuid.UUID
	RatingCount    int32
	AverageRating  float64
	BayesianRating float64
}

type QualifiedUser struct {
	ID    uuid.UUID
	Email string
	Name  string
}
