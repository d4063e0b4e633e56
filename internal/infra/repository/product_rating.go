package repository

import (
	"context"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/rating"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/repository/converter"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductRatingWriteQueries interface {
	GetProductRatingByProductAndUser(ctx context.Context, db query.DBTX, arg query.ProductUserKey) (query.ProductRating, error)
	CreateProductRating(ctx context.Context, db query.DBTX, arg query.CreateProductRatingParams) (uuid.UUID, error)
	UpdateProductRating(ctx context.Context, db query.DBTX, arg query.UpdateProductRatingParams) (int64, error)
	DeleteProductRating(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type ProductRatingRepository struct {
	queries ProductRatingWriteQueries
}

func NewProductRatingRepository(queries ProductRatingWriteQueries) *ProductRatingRepository {
	return &ProductRatingRepository{queries: queries}
}

func (r *ProductRatingRepository) FindByProductAndUser(ctx context.Context, tx query.DBTX, productID, userID uuid.UUID) (*rating.ProductRating, error) {
	row, err := r.queries.GetProductRatingByProductAndUser(ctx, tx, query.ProductUserKey{ProductID: productID, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get product rating", err)
	}
	return converter.RatingFromRow(row), nil
}

func (r *ProductRatingRepository) Create(ctx context.Context, tx query.DBTX, pr *rating.ProductRating) error {
	if _, err := r.queries.CreateProductRating(ctx, tx, converter.RatingToCreateParams(pr)); err != nil {
		return infra.WrapRepoErr("failed to create product rating", err)
	}
	return nil
}

func (r *ProductRatingRepository) Update(ctx context.Context, tx query.DBTX, pr *rating.ProductRating) error {
	n, err := r.queries.UpdateProductRating(ctx, tx, converter.RatingToUpdateParams(pr))
	if err != nil {
		return infra.WrapRepoErr("failed to update product rating", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product rating not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRatingRepository) Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteProductRating(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product rating", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product rating not found", nil, infra.KindNotFound)
	}
	return nil
}
