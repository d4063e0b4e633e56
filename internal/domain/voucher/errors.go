package voucher

import "errors"

// Redemption failures. Messages are shown to customers as is.
var (
	ErrInvalidVoucher    = errors.New("voucher code is invalid or has expired")
	ErrVoucherExhausted  = errors.New("voucher has reached its usage limit")
	ErrUserLimitReached  = errors.New("you have already used this voucher the maximum number of times")
	ErrBelowMinimumSpend = errors.New("order total does not meet the voucher's minimum spend")
)

var (
	ErrNegativeMinSpend  = errors.New("minimum spend cannot be negative")
	ErrInvalidUsageLimit = errors.New("usage limits must be at least 1")
	ErrExpiryInPast      = errors.New("expiry must be in the future")
)
