package request

import (
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// VoucherSpecRequest is the discount configuration shared by single and bulk creation.
type VoucherSpecRequest struct {
	Type              string            `json:"type" binding:"required,oneof=percentage fixed"`
	Value             float64           `json:"value" binding:"gte=0"`
	MinSpend          float64           `json:"min_spend" binding:"gte=0"`
	ExpiresAt         *time.Time        `json:"expires_at,omitempty"`
	MaxUsagePerUser   *int              `json:"max_usage_per_user,omitempty" binding:"omitempty,min=1"`
	MaxTotalUsage     *int              `json:"max_total_usage,omitempty" binding:"omitempty,min=1"`
	QualificationType string            `json:"qualification_type,omitempty" binding:"omitempty,oneof=manual automatic targeted"`
	Criteria          *voucher.Criteria `json:"criteria,omitempty"`
	ProductIDs        []uuid.UUID       `json:"product_ids,omitempty"`
	CategoryIDs       []uuid.UUID       `json:"category_ids,omitempty"`
}

func (r VoucherSpecRequest) ToSpec() (commands.VoucherSpec, error) {
	var spec commands.VoucherSpec
	if err := copier.Copy(&spec, &r); err != nil {
		return commands.VoucherSpec{}, err
	}
	return spec, nil
}

type CreateVoucherRequest struct {
	Code string `json:"code" binding:"required,vouchercode"`
	VoucherSpecRequest
}

func (r *CreateVoucherRequest) ToInput() (commands.CreateVoucherInput, error) {
	spec, err := r.ToSpec()
	if err != nil {
		return commands.CreateVoucherInput{}, err
	}
	return commands.CreateVoucherInput{Code: r.Code, VoucherSpec: spec}, nil
}

type BulkIssueRequest struct {
	Prefix     string `json:"prefix" binding:"omitempty,codeprefix"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	CodeLength int    `json:"code_length,omitempty" binding:"omitempty,min=4,max=16"`
	VoucherSpecRequest
}

func (r *BulkIssueRequest) ToInput() (commands.BulkIssueInput, error) {
	spec, err := r.ToSpec()
	if err != nil {
		return commands.BulkIssueInput{}, err
	}
	return commands.BulkIssueInput{
		Prefix:      r.Prefix,
		Quantity:    r.Quantity,
		CodeLength:  r.CodeLength,
		VoucherSpec: spec,
	}, nil
}

type ApplyVoucherRequest struct {
	Code    string    `json:"code" binding:"required,vouchercode"`
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}

func (r *ApplyVoucherRequest) ToInput() commands.ApplyVoucherInput {
	return commands.ApplyVoucherInput{Code: r.Code, OrderID: r.OrderID}
}
