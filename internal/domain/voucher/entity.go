package voucher

import (
	"time"

	"github.com/google/uuid"
)

type Voucher struct {
	id                uuid.UUID
	code              Code
	discount          Discount
	minSpend          float64
	expiresAt         *time.Time
	isActive          bool
	maxUsagePerUser   *int
	maxTotalUsage     *int
	totalUsage        int
	qualificationType QualificationType
	criteria          *Criteria
	productIDs        []uuid.UUID
	categoryIDs       []uuid.UUID
	createdAt         time.Time
	updatedAt         time.Time
}

type Params struct {
	Code              string
	Type              Type
	Value             float64
	MinSpend          float64
	ExpiresAt         *time.Time
	MaxUsagePerUser   *int
	MaxTotalUsage     *int
	QualificationType QualificationType
	Criteria          *Criteria
	ProductIDs        []uuid.UUID
	CategoryIDs       []uuid.UUID
}

func NewVoucher(id uuid.UUID, p Params, now time.Time) (*Voucher, error) {
	code, err := NewCode(p.Code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(p.Type, p.Value)
	if err != nil {
		return nil, err
	}

	if p.MinSpend < 0 {
		return nil, ErrNegativeMinSpend
	}
	if p.ExpiresAt != nil && !p.ExpiresAt.After(now) {
		return nil, ErrExpiryInPast
	}
	if (p.MaxUsagePerUser != nil && *p.MaxUsagePerUser < 1) || (p.MaxTotalUsage != nil && *p.MaxTotalUsage < 1) {
		return nil, ErrInvalidUsageLimit
	}

	qt := p.QualificationType
	if qt == "" {
		qt = QualificationManual
	}
	if !qt.IsValid() {
		return nil, ErrInvalidQualificationType
	}

	switch {
	case qt == QualificationTargeted:
		if p.Criteria == nil {
			return nil, ErrCriteriaRequired
		}
		if err := p.Criteria.Validate(); err != nil {
			return nil, err
		}
	case p.Criteria != nil:
		return nil, ErrCriteriaNotAllowed
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Voucher{
		id:                id,
		code:              code,
		discount:          discount,
		minSpend:          p.MinSpend,
		expiresAt:         p.ExpiresAt,
		isActive:          true,
		maxUsagePerUser:   p.MaxUsagePerUser,
		maxTotalUsage:     p.MaxTotalUsage,
		qualificationType: qt,
		criteria:          p.Criteria,
		productIDs:        p.ProductIDs,
		categoryIDs:       p.CategoryIDs,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// Reconstruct rebuilds a persisted voucher. Stored rows are trusted.
func Reconstruct(
	id uuid.UUID,
	code string,
	typ Type,
	value, minSpend float64,
	expiresAt *time.Time,
	isActive bool,
	maxUsagePerUser, maxTotalUsage *int,
	totalUsage int,
	qualificationType QualificationType,
	criteria *Criteria,
	productIDs, categoryIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Voucher {
	return &Voucher{
		id:                id,
		code:              Code(code),
		discount:          Discount{typ: typ, value: value},
		minSpend:          minSpend,
		expiresAt:         expiresAt,
		isActive:          isActive,
		maxUsagePerUser:   maxUsagePerUser,
		maxTotalUsage:     maxTotalUsage,
		totalUsage:        totalUsage,
		qualificationType: qualificationType,
		criteria:          criteria,
		productIDs:        productIDs,
		categoryIDs:       categoryIDs,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// CloneWithCode copies the discount configuration onto a fresh voucher with another code.
func (v *Voucher) CloneWithCode(code string, now time.Time) (*Voucher, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	clone := *v
	clone.id = uuid.New()
	clone.code = c
	clone.totalUsage = 0
	clone.isActive = true
	clone.createdAt = now
	clone.updatedAt = now
	return &clone, nil
}

func (v *Voucher) IsExpiredAt(now time.Time) bool {
	return v.expiresAt != nil && !v.expiresAt.After(now)
}

func (v *Voucher) IsExhausted() bool {
	return v.maxTotalUsage != nil && v.totalUsage >= *v.maxTotalUsage
}

// IsValidAt holds when the voucher is active, unexpired and under its global cap.
func (v *Voucher) IsValidAt(now time.Time) bool {
	return v.isActive && !v.IsExpiredAt(now) && !v.IsExhausted()
}

// Evaluate runs the redemption checks in order and returns the discount for orderTotal.
// usedByUser is the number of ledger rows this user already holds for the voucher.
func (v *Voucher) Evaluate(now time.Time, usedByUser int, orderTotal float64) (float64, error) {
	if !v.isActive || v.IsExpiredAt(now) {
		return 0, ErrInvalidVoucher
	}
	if v.IsExhausted() {
		return 0, ErrVoucherExhausted
	}
	if v.maxUsagePerUser != nil && usedByUser >= *v.maxUsagePerUser {
		return 0, ErrUserLimitReached
	}
	if orderTotal < v.minSpend {
		return 0, ErrBelowMinimumSpend
	}
	return v.discount.Amount(orderTotal), nil
}

func (v *Voucher) Deactivate(now time.Time) {
	v.isActive = false
	v.updatedAt = now
}

func (v *Voucher) ID() uuid.UUID                        { return v.id }
func (v *Voucher) Code() Code                           { return v.code }
func (v *Voucher) Discount() Discount                   { return v.discount }
func (v *Voucher) MinSpend() float64                    { return v.minSpend }
func (v *Voucher) ExpiresAt() *time.Time                { return v.expiresAt }
func (v *Voucher) IsActive() bool                       { return v.isActive }
func (v *Voucher) MaxUsagePerUser() *int                { return v.maxUsagePerUser }
func (v *Voucher) MaxTotalUsage() *int                  { return v.maxTotalUsage }
func (v *Voucher) TotalUsage() int                      { return v.totalUsage }
func (v *Voucher) QualificationType() QualificationType { return v.qualificationType }
func (v *Voucher) Criteria() *Criteria                  { return v.criteria }
func (v *Voucher) ProductIDs() []uuid.UUID              { return v.productIDs }
func (v *Voucher) CategoryIDs() []uuid.UUID             { return v.categoryIDs }
func (v *Voucher) CreatedAt() time.Time                 { return v.createdAt }
func (v *Voucher) UpdatedAt() time.Time                 { return v.updatedAt }
