package queries

import (
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"

	"github.com/google/uuid"
)

// VoucherView is the admin-facing read model of a voucher.
type VoucherView struct {
	ID                uuid.UUID         `json:"id"`
	Code              string            `json:"code"`
	Type              string            `json:"type"`
	Value             float64           `json:"value"`
	MinSpend          float64           `json:"min_spend"`
	ExpiresAt         *time.Time        `json:"expires_at,omitempty"`
	IsActive          bool              `json:"is_active"`
	MaxUsagePerUser   *int              `json:"max_usage_per_user,omitempty"`
	MaxTotalUsage     *int              `json:"max_total_usage,omitempty"`
	TotalUsage        int               `json:"total_usage"`
	QualificationType string            `json:"qualification_type"`
	Criteria          *voucher.Criteria `json:"criteria,omitempty"`
	ProductIDs        []uuid.UUID       `json:"product_ids,omitempty"`
	CategoryIDs       []uuid.UUID       `json:"category_ids,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

// GrantedVoucherView is a targeted voucher as seen by the user holding it.
type GrantedVoucherView struct {
	VoucherView
	IsRedeemed bool       `json:"is_redeemed"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
	GrantedAt  time.Time  `json:"granted_at"`
}

type RatingSummary struct {
	ProductID      uuid.UUID `json:"product_id"`
	RatingCount    int       `json:"rating_count"`
	AverageRating  float64   `json:"average_rating"`
	BayesianRating float64   `json:"bayesian_rating"`
}
