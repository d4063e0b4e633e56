package voucher

import (
	"errors"
	"regexp"
	"strings"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/money"
)

const (
	MinCodeLength = 3
	MaxCodeLength = 32
	MaxPrefixLen  = 16
	MinRandomLen  = 4
	MaxRandomLen  = 16
)

var (
	ErrInvalidCode            = errors.New("invalid voucher code format")
	ErrInvalidCodePrefix      = errors.New("code prefix must be at most 16 uppercase letters or digits")
	ErrInvalidCodeLength      = errors.New("code length must be between 4 and 16")
	ErrNegativeDiscountValue  = errors.New("discount value cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var (
	codeRegex   = regexp.MustCompile(`^[A-Z0-9]{3,32}$`)
	prefixRegex = regexp.MustCompile(`^[A-Z0-9]{0,16}$`)
)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegex.MatchString(code) {
		return "", ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// NormalizePrefix uppercases prefix and checks it can start a code.
func NormalizePrefix(prefix string) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if !prefixRegex.MatchString(prefix) {
		return "", ErrInvalidCodePrefix
	}
	return prefix, nil
}

func ValidateCodeLength(n int) error {
	if n < MinRandomLen || n > MaxRandomLen {
		return ErrInvalidCodeLength
	}
	return nil
}

type Discount struct {
	typ   Type
	value float64
}

func NewDiscount(typ Type, value float64) (Discount, error) {
	if !typ.IsValid() {
		return Discount{}, ErrInvalidType
	}
	if value < 0 {
		return Discount{}, ErrNegativeDiscountValue
	}
	if typ == TypePercentage && value > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{typ: typ, value: value}, nil
}

func (d Discount) Type() Type         { return d.typ }
func (d Discount) Value() float64     { return d.value }
func (d Discount) IsPercentage() bool { return d.typ == TypePercentage }

// Amount is the discount for an order of the given total. It never exceeds the total.
func (d Discount) Amount(total float64) float64 {
	if total <= 0 {
		return 0
	}
	if d.IsPercentage() {
		return money.Min(money.Percent(total, d.value), total)
	}
	return money.Min(d.value, total)
}
