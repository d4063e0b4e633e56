package commands

import (
	"context"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/user"

	"github.com/google/uuid"
)

// Caller is the already-authenticated identity a command runs on behalf of.
type Caller struct {
	UserID uuid.UUID
	Role   user.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role.IsAdmin()
}

type VoucherGrantedEvent struct {
	VoucherID uuid.UUID  `json:"voucher_id"`
	Code      string     `json:"code"`
	Type      string     `json:"type"`
	Value     float64    `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	UserID    uuid.UUID  `json:"user_id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	GrantedAt time.Time  `json:"granted_at"`
}

// VoucherNotifier delivers grant notifications. Delivery is best-effort:
// callers log a failure and carry on.
type VoucherNotifier interface {
	NotifyVoucherGranted(ctx context.Context, event VoucherGrantedEvent) error
}
