package voucher

import (
	"errors"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrCriteriaRequired       = errors.New("targeted vouchers need at least one qualification criterion")
	ErrCriteriaNotAllowed     = errors.New("criteria only apply to targeted vouchers")
	ErrInvalidCriteriaValue   = errors.New("qualification criteria values must be positive")
	ErrTimePeriodWithoutSpend = errors.New("time_period requires min_spend")
	ErrInvalidCriteriaRole    = errors.New("user_type must be a known role")
)

// Criteria are the conjunctive predicates a user must satisfy to be granted
// a targeted voucher. Absent fields do not filter.
type Criteria struct {
	MinSpend         *float64    `json:"min_spend,omitempty"`
	TimePeriodDays   *int        `json:"time_period,omitempty"`
	MinOrders        *int        `json:"min_orders,omitempty"`
	ProductIDs       []uuid.UUID `json:"product_ids,omitempty"`
	CategoryIDs      []uuid.UUID `json:"category_ids,omitempty"`
	RegistrationDays *int        `json:"registration_days,omitempty"`
	UserType         *user.Role  `json:"user_type,omitempty"`
	SendEmail        bool        `json:"send_email,omitempty"`
}

// IsEmpty reports whether no predicate is set. SendEmail is not a predicate.
func (c *Criteria) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.MinSpend == nil &&
		c.MinOrders == nil &&
		len(c.ProductIDs) == 0 &&
		len(c.CategoryIDs) == 0 &&
		c.RegistrationDays == nil &&
		c.UserType == nil
}

func (c *Criteria) Validate() error {
	if c.IsEmpty() {
		return ErrCriteriaRequired
	}
	if c.MinSpend != nil && *c.MinSpend < 0 {
		return ErrInvalidCriteriaValue
	}
	if c.TimePeriodDays != nil {
		if c.MinSpend == nil {
			return ErrTimePeriodWithoutSpend
		}
		if *c.TimePeriodDays <= 0 {
			return ErrInvalidCriteriaValue
		}
	}
	if c.MinOrders != nil && *c.MinOrders <= 0 {
		return ErrInvalidCriteriaValue
	}
	if c.RegistrationDays != nil && *c.RegistrationDays < 0 {
		return ErrInvalidCriteriaValue
	}
	if c.UserType != nil && !c.UserType.IsValid() {
		return ErrInvalidCriteriaRole
	}
	return nil
}

func (c *Criteria) NotifiesOnGrant() bool {
	return c != nil && c.SendEmail
}
