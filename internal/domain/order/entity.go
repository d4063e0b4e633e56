package order

import (
	"errors"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/money"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid order status")

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Order carries only what discount application reads and writes.
type Order struct {
	id          uuid.UUID
	userID      uuid.UUID
	status      Status
	total       float64
	discount    float64
	voucherCode *string
}

func Reconstruct(id, userID uuid.UUID, status Status, total, discount float64, voucherCode *string) *Order {
	return &Order{
		id:          id,
		userID:      userID,
		status:      status,
		total:       total,
		discount:    discount,
		voucherCode: voucherCode,
	}
}

func (o *Order) BelongsTo(userID uuid.UUID) bool {
	return o.userID == userID
}

// ApplyVoucher subtracts amount from the total and records the code.
// A second call overwrites the code and discount of the first.
func (o *Order) ApplyVoucher(code string, amount float64) {
	o.total = money.Sub(o.total, amount)
	o.discount = amount
	o.voucherCode = &code
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) UserID() uuid.UUID    { return o.userID }
func (o *Order) Status() Status       { return o.status }
func (o *Order) Total() float64       { return o.total }
func (o *Order) Discount() float64    { return o.discount }
func (o *Order) VoucherCode() *string { return o.voucherCode }
