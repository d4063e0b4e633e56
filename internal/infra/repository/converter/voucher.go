package converter

import (
	"encoding/json"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func VoucherToCreateParams(v *voucher.Voucher) (query.CreateVoucherParams, error) {
	criteria, err := MarshalCriteria(v.Criteria())
	if err != nil {
		return query.CreateVoucherParams{}, err
	}
	return query.CreateVoucherParams{
		ID:                v.ID(),
		Code:              v.Code().String(),
		Type:              v.Discount().Type().String(),
		Value:             v.Discount().Value(),
		MinSpend:          v.MinSpend(),
		ExpiresAt:         pgconv.TimePtrToPgtype(v.ExpiresAt()),
		IsActive:          v.IsActive(),
		MaxUsagePerUser:   pgconv.IntPtrToPgtype(v.MaxUsagePerUser()),
		MaxTotalUsage:     pgconv.IntPtrToPgtype(v.MaxTotalUsage()),
		QualificationType: v.QualificationType().String(),
		Criteria:          criteria,
		CreatedAt:         pgconv.TimeToPgtype(v.CreatedAt()),
	}, nil
}

func VoucherFromRow(row query.Voucher, productIDs, categoryIDs []uuid.UUID) (*voucher.Voucher, error) {
	criteria, err := UnmarshalCriteria(row.Criteria)
	if err != nil {
		return nil, err
	}
	return voucher.Reconstruct(
		row.ID,
		row.Code,
		voucher.Type(row.Type),
		row.Value,
		row.MinSpend,
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		row.IsActive,
		pgconv.IntPtrFromPgtype(row.MaxUsagePerUser),
		pgconv.IntPtrFromPgtype(row.MaxTotalUsage),
		int(row.TotalUsage),
		voucher.QualificationType(row.QualificationType),
		criteria,
		productIDs,
		categoryIDs,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// MarshalCriteria maps nil criteria to SQL NULL.
func MarshalCriteria(c *voucher.Criteria) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func UnmarshalCriteria(raw []byte) (*voucher.Criteria, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var c voucher.Criteria
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
