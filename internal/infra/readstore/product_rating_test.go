//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/readstore"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"
	readstoremock "github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRatingReadStore_GetSummary(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	testCases := []struct {
		name       string
		row        query.ProductRatingStats
		err        error
		want       *queries.RatingSummary
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "rated product",
			row:  query.ProductRatingStats{ID: productID, RatingCount: 2, AverageRating: 4.5, BayesianRating: 3.86},
			want: &queries.RatingSummary{ProductID: productID, RatingCount: 2, AverageRating: 4.5, BayesianRating: 3.86},
		},
		{
			name: "unrated product reports zeros",
			row:  query.ProductRatingStats{ID: productID},
			want: &queries.RatingSummary{ProductID: productID},
		},
		{
			name:       "unknown product",
			err:        pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "database error",
			err:        errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockRatingReadQueries(ctrl)
			store := readstore.NewRatingReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetProductRatingStats(ctx, gomock.Any(), productID).Return(tc.row, tc.err)

			got, err := store.GetSummary(ctx, productID)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
