package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QualificationFilter is the resolved form of a targeted voucher's criteria.
// Nil and empty fields do not filter.
type QualificationFilter struct {
	VoucherID        uuid.UUID
	MinSpend         *float64
	SpendSince       *time.Time
	MinOrders        *int
	ProductIDs       []uuid.UUID
	CategoryIDs      []uuid.UUID
	RegisteredBefore *time.Time
	Role             *string
}

type qualificationBuilder struct {
	where []string
	args  []any
}

func (b *qualificationBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// BuildQualificationQuery renders the filter as one conjunctive query over users.
// Users already holding a grant for the voucher are always excluded.
func BuildQualificationQuery(f QualificationFilter) (string, []any) {
	b := &qualificationBuilder{}

	b.where = append(b.where, fmt.Sprintf(
		"NOT EXISTS (SELECT 1 FROM voucher_users vu WHERE vu.voucher_id = %s AND vu.user_id = u.id)",
		b.arg(f.VoucherID),
	))

	if f.MinSpend != nil {
		window := ""
		if f.SpendSince != nil {
			window = " AND o.created_at >= " + b.arg(*f.SpendSince)
		}
		b.where = append(b.where, fmt.Sprintf(
			"(SELECT COALESCE(SUM(o.total), 0) FROM orders o WHERE o.user_id = u.id AND o.status <> 'cancelled'%s) >= %s",
			window, b.arg(*f.MinSpend),
		))
	}

	if f.MinOrders != nil {
		b.where = append(b.where, fmt.Sprintf(
			"(SELECT COUNT(*) FROM orders o WHERE o.user_id = u.id AND o.status <> 'cancelled') >= %s",
			b.arg(*f.MinOrders),
		))
	}

	if len(f.ProductIDs) > 0 {
		b.where = append(b.where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM orders o JOIN order_items oi ON oi.order_id = o.id WHERE o.user_id = u.id AND oi.product_id = ANY(%s::uuid[]))",
			b.arg(f.ProductIDs),
		))
	}

	if len(f.CategoryIDs) > 0 {
		b.where = append(b.where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM orders o JOIN order_items oi ON oi.order_id = o.id JOIN products p ON p.id = oi.product_id WHERE o.user_id = u.id AND p.category_id = ANY(%s::uuid[]))",
			b.arg(f.CategoryIDs),
		))
	}

	if f.RegisteredBefore != nil {
		b.where = append(b.where, "u.created_at <= "+b.arg(*f.RegisteredBefore))
	}

	if f.Role != nil {
		b.where = append(b.where, "u.role = "+b.arg(*f.Role))
	}

	sql := "SELECT u.id, u.email, u.name FROM users u WHERE " +
		strings.Join(b.where, " AND ") +
		" ORDER BY u.created_at, u.id"
	return sql, b.args
}

func (q *Queries) ListQualifiedUsers(ctx context.Context, db DBTX, f QualificationFilter) ([]QualifiedUser, error) {
	sql, args := BuildQualificationQuery(f)
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []QualifiedUser{}
	for rows.Next() {
		var i QualifiedUser
		if err := rows.Scan(&i.ID, &i.Email, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
