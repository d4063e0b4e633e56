//go:build unit || e2e

package builder

import (
	"time"

	domvoucher "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	reqdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/request"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherBuilder struct {
	Code              string
	Type              domvoucher.Type
	Value             float64
	MinSpend          float64
	ExpiresAt         *time.Time
	MaxUsagePerUser   *int
	MaxTotalUsage     *int
	QualificationType domvoucher.QualificationType
	Criteria          *domvoucher.Criteria
	Now               time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	now := time.Now()
	expires := now.Add(30 * 24 * time.Hour)
	return &VoucherBuilder{
		Code:              "SAVE10",
		Type:              domvoucher.TypePercentage,
		Value:             10,
		MinSpend:          50,
		ExpiresAt:         &expires,
		QualificationType: domvoucher.QualificationManual,
		Now:               now,
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

func (b *VoucherBuilder) BuildParams() domvoucher.Params {
	return domvoucher.Params{
		Code:              b.Code,
		Type:              b.Type,
		Value:             b.Value,
		MinSpend:          b.MinSpend,
		ExpiresAt:         b.ExpiresAt,
		MaxUsagePerUser:   b.MaxUsagePerUser,
		MaxTotalUsage:     b.MaxTotalUsage,
		QualificationType: b.QualificationType,
		Criteria:          b.Criteria,
	}
}

func (b *VoucherBuilder) BuildDomain() (*domvoucher.Voucher, error) {
	return domvoucher.NewVoucher(uuid.Nil, b.BuildParams(), b.Now)
}

// BuildStored skips constructor validation so tests can model expired or used-up rows.
func (b *VoucherBuilder) BuildStored(totalUsage int, active bool) *domvoucher.Voucher {
	return domvoucher.Reconstruct(
		uuid.New(), b.Code, b.Type, b.Value, b.MinSpend, b.ExpiresAt, active,
		b.MaxUsagePerUser, b.MaxTotalUsage, totalUsage, b.QualificationType, b.Criteria,
		nil, nil, b.Now, b.Now,
	)
}

func (b *VoucherBuilder) BuildSpecRequestDTO() reqdto.VoucherSpecRequest {
	return reqdto.VoucherSpecRequest{
		Type:              b.Type.String(),
		Value:             b.Value,
		MinSpend:          b.MinSpend,
		ExpiresAt:         b.ExpiresAt,
		MaxUsagePerUser:   b.MaxUsagePerUser,
		MaxTotalUsage:     b.MaxTotalUsage,
		QualificationType: b.QualificationType.String(),
		Criteria:          b.Criteria,
	}
}

func (b *VoucherBuilder) BuildCreateRequestDTO() reqdto.CreateVoucherRequest {
	return reqdto.CreateVoucherRequest{
		Code:               b.Code,
		VoucherSpecRequest: b.BuildSpecRequestDTO(),
	}
}

func (b *VoucherBuilder) BuildBulkRequestDTO(prefix string, quantity int) reqdto.BulkIssueRequest {
	return reqdto.BulkIssueRequest{
		Prefix:             prefix,
		Quantity:           quantity,
		VoucherSpecRequest: b.BuildSpecRequestDTO(),
	}
}

func (b *VoucherBuilder) BuildView() *queries.VoucherView {
	return &queries.VoucherView{
		ID:                uuid.New(),
		Code:              b.Code,
		Type:              b.Type.String(),
		Value:             b.Value,
		MinSpend:          b.MinSpend,
		ExpiresAt:         b.ExpiresAt,
		IsActive:          true,
		MaxUsagePerUser:   b.MaxUsagePerUser,
		MaxTotalUsage:     b.MaxTotalUsage,
		QualificationType: b.QualificationType.String(),
		Criteria:          b.Criteria,
		CreatedAt:         b.Now,
	}
}

func (b *VoucherBuilder) WithCode(code string) *VoucherBuilder {
	b.Code = code
	return b
}

func (b *VoucherBuilder) AsPercentage(value float64) *VoucherBuilder {
	b.Type = domvoucher.TypePercentage
	b.Value = value
	return b
}

func (b *VoucherBuilder) AsFixed(value float64) *VoucherBuilder {
	b.Type = domvoucher.TypeFixed
	b.Value = value
	return b
}

func (b *VoucherBuilder) WithMinSpend(v float64) *VoucherBuilder {
	b.MinSpend = v
	return b
}

func (b *VoucherBuilder) WithExpiresAt(t *time.Time) *VoucherBuilder {
	b.ExpiresAt = t
	return b
}

func (b *VoucherBuilder) WithMaxUsagePerUser(n int) *VoucherBuilder {
	b.MaxUsagePerUser = &n
	return b
}

func (b *VoucherBuilder) WithMaxTotalUsage(n int) *VoucherBuilder {
	b.MaxTotalUsage = &n
	return b
}

func (b *VoucherBuilder) AsTargeted(c *domvoucher.Criteria) *VoucherBuilder {
	b.QualificationType = domvoucher.QualificationTargeted
	b.Criteria = c
	return b
}
