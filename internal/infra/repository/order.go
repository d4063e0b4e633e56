package repository

import (
	"context"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/order"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/repository/converter"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	GetOrderForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Order, error)
	ApplyOrderDiscount(ctx context.Context, db query.DBTX, arg query.ApplyOrderDiscountParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return converter.OrderFromRow(row), nil
}

func (r *OrderRepository) SaveDiscount(ctx context.Context, tx query.DBTX, o *order.Order) error {
	n, err := r.queries.ApplyOrderDiscount(ctx, tx, converter.OrderToDiscountParams(o))
	if err != nil {
		return infra.WrapRepoErr("failed to apply order discount", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
