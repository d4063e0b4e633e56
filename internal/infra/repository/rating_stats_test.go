//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/product"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/repository"
	repositorymock "github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// LockProduct Tests
// =============================================================================

func TestRatingStatsRepository_LockProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockRatingStatsQueries, *mockDBTX)
		want       product.RatingAggregate
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: aggregate is read under lock",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, tx *mockDBTX) {
				mock.EXPECT().GetProductRatingStatsForUpdate(ctx, tx, productID).Return(query.ProductRatingStats{
					ID: productID, RatingCount: 4, AverageRating: 4.25, BayesianRating: 3.89,
				}, nil)
			},
			want: product.NewRatingAggregate(4, 4.25, 3.89),
		},
		{
			name: "error: product not found",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, tx *mockDBTX) {
				mock.EXPECT().GetProductRatingStatsForUpdate(ctx, tx, productID).Return(query.ProductRatingStats{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, tx *mockDBTX) {
				mock.EXPECT().GetProductRatingStatsForUpdate(ctx, tx, productID).Return(query.ProductRatingStats{}, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingStatsRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			agg, err := repo.LockProduct(ctx, mockDB, productID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, agg)
		})
	}
}

// =============================================================================
// Save / GlobalTotals / ListRatedForUpdate Tests
// =============================================================================

func TestRatingStatsRepository_Save(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRatingStatsRepository(mockQueries)

	agg := product.NewRatingAggregate(2, 4.5, 3.86)
	mockQueries.EXPECT().UpdateProductRatingStats(ctx, mockDB, query.UpdateProductRatingStatsParams{
		ID: productID, RatingCount: 2, AverageRating: 4.5, BayesianRating: 3.86,
	}).Return(int64(1), nil)

	require.NoError(t, repo.Save(ctx, mockDB, productID, agg))

	mockQueries.EXPECT().UpdateProductRatingStats(ctx, mockDB, gomock.Any()).Return(int64(0), nil)
	assert.True(t, infra.IsKind(repo.Save(ctx, mockDB, productID, agg), infra.KindNotFound))
}

func TestRatingStatsRepository_GlobalTotals(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRatingStatsRepository(mockQueries)

	mockQueries.EXPECT().GetGlobalRatingTotals(ctx, mockDB).Return(query.GetGlobalRatingTotalsRow{WeightedSum: 14, Count: 4}, nil)

	totals, err := repo.GlobalTotals(ctx, mockDB)
	require.NoError(t, err)
	assert.Equal(t, product.GlobalTotals{WeightedSum: 14, Count: 4}, totals)
}

func TestRatingStatsRepository_ListRatedForUpdate(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRatingStatsRepository(mockQueries)

	mockQueries.EXPECT().ListRatedProductsForUpdate(ctx, mockDB).Return([]query.ProductRatingStats{
		{ID: a, RatingCount: 1, AverageRating: 5, BayesianRating: 3.75},
		{ID: b, RatingCount: 3, AverageRating: 3, BayesianRating: 3.31},
	}, nil)

	rated, err := repo.ListRatedForUpdate(ctx, mockDB)
	require.NoError(t, err)
	require.Len(t, rated, 2)
	assert.Equal(t, a, rated[0].ProductID)
	assert.Equal(t, 3, rated[1].Aggregate.Count())
}
