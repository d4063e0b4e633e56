package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"

	"github.com/google/uuid"
)

var (
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrInvalidCursor   = errors.New("invalid cursor")
)

type VoucherReadStore interface {
	FindByCode(ctx context.Context, code string) (*VoucherView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*VoucherView, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*VoucherView, error)
	ListGrantedToUser(ctx context.Context, userID uuid.UUID) ([]*GrantedVoucherView, error)
}

type VoucherQueries interface {
	GetByCode(ctx context.Context, code string) (*VoucherView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*VoucherView, *Cursor, error)
	ListGranted(ctx context.Context, userID uuid.UUID) ([]*GrantedVoucherView, error)
}

type voucherQueriesImpl struct {
	store VoucherReadStore
}

func NewVoucherQueries(store VoucherReadStore) VoucherQueries {
	return &voucherQueriesImpl{store: store}
}

func (q *voucherQueriesImpl) GetByCode(ctx context.Context, code string) (*VoucherView, error) {
	v, err := q.store.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *voucherQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*VoucherView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*VoucherView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *voucherQueriesImpl) ListGranted(ctx context.Context, userID uuid.UUID) ([]*GrantedVoucherView, error) {
	return q.store.ListGrantedToUser(ctx, userID)
}
