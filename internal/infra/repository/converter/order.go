package converter

import (
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/order"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"
)

func OrderFromRow(row query.Order) *order.Order {
	return order.Reconstruct(
		row.ID,
		row.UserID,
		order.Status(row.Status),
		row.Total,
		row.Discount,
		pgconv.StringPtrFromPgtype(row.VoucherCode),
	)
}

func OrderToDiscountParams(o *order.Order) query.ApplyOrderDiscountParams {
	return query.ApplyOrderDiscountParams{
		ID:          o.ID(),
		Total:       o.Total(),
		Discount:    o.Discount(),
		VoucherCode: pgconv.StringPtrToPgtype(o.VoucherCode()),
	}
}
