package response

import (
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VoucherResponse struct {
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

func FromVoucherView(v *queries.VoucherView) *VoucherResponse {
	var res VoucherResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromVoucherList(items []*queries.VoucherView) []*VoucherResponse {
	res := make([]*VoucherResponse, len(items))
	for i, it := range items {
		res[i] = FromVoucherView(it)
	}
	return res
}

type GrantedVoucherResponse struct {
	VoucherResponse
	IsRedeemed bool       `json:"is_redeemed"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
	GrantedAt  time.Time  `json:"granted_at"`
}

func FromGrantedVouchers(items []*queries.GrantedVoucherView) []*GrantedVoucherResponse {
	res := make([]*GrantedVoucherResponse, len(items))
	for i, it := range items {
		res[i] = &GrantedVoucherResponse{
			VoucherResponse: *FromVoucherView(&it.VoucherView),
			IsRedeemed:      it.IsRedeemed,
			RedeemedAt:      it.RedeemedAt,
			GrantedAt:       it.GrantedAt,
		}
	}
	return res
}

type CreateVoucherResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}

type BulkIssueResponse struct {
	Count int      `json:"count"`
	Codes []string `json:"codes"`
}

func FromBulkIssueResult(r *commands.BulkIssueResult) *BulkIssueResponse {
	return &BulkIssueResponse{Count: len(r.Codes), Codes: r.Codes}
}

type DiscountResponse struct {
	Code           string    `json:"code"`
	OrderID        uuid.UUID `json:"order_id"`
	DiscountAmount float64   `json:"discount_amount"`
	NewTotal       float64   `json:"new_total"`
}

func FromDiscountResult(r *commands.DiscountResult) *DiscountResponse {
	var res DiscountResponse
	_ = copier.Copy(&res, r)
	return &res
}

type DistributionResponse struct {
	Code    string `json:"code"`
	Granted int    `json:"granted"`
}
