//go:build e2e

package rating_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	resdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/response"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/builder"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/dbtest"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/httptest"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/e2e"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	submitURL      = "/api/products/%s/ratings"
	deleteMineURL  = "/api/products/%s/ratings/me"
	summaryURL     = "/api/products/%s/rating"
	adminDeleteURL = "/api/admin/products/%s/ratings/%s"
	recalculateURL = "/api/admin/ratings/recalculate"
)

type RatingSuite struct {
	e2e.SharedSuite
	shoppers *helper.ShopperHelper
}

func (s *RatingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.shoppers = helper.NewShopperHelper(s.DB, s.Config.JWT)
}

func (s *RatingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRatingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RatingSuite))
}

// buyer creates a customer with a completed order containing productID.
func (s *RatingSuite) buyer(t *testing.T, email string, productID uuid.UUID) (uuid.UUID, string) {
	t.Helper()
	userID, token := s.shoppers.Customer(t, email)
	orderID := dbtest.CreateTestOrder(t, s.DB, userID, 12.5, "completed")
	dbtest.AddOrderItem(t, s.DB, orderID, productID, 1, 12.5)
	return userID, token
}

func (s *RatingSuite) submit(t *testing.T, token string, productID uuid.UUID, score int) resdto.RatingResponse {
	t.Helper()
	req := builder.NewRatingBuilder().WithScore(score).BuildSubmitRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, productID), req, token)
	require.Contains(t, []int{http.StatusCreated, http.StatusOK}, w.Code, w.Body.String())
	var res resdto.RatingResponse
	httptest.AssertSuccessResponse(t, w, w.Code, &res)
	return res
}

func (s *RatingSuite) summary(t *testing.T, productID uuid.UUID) resdto.RatingSummaryResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(summaryURL, productID), nil, "")
	var got resdto.RatingSummaryResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
	return got
}

func (s *RatingSuite) TestSubmit() {
	s.Run("first rating is smoothed toward the default mean", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Plantain chips", 12.5, uuid.Nil)
		_, token := s.buyer(t, "first@example.com", productID)

		res := s.submit(t, token, productID, 5)

		assert.True(t, res.VerifiedPurchase)
		assert.Equal(t, 1, res.RatingCount)
		assert.Equal(t, 5.0, res.AverageRating)
		assert.Equal(t, 3.75, res.BayesianRating)
		assert.Equal(t, resdto.RatingSummaryResponse{
			ProductID: productID, RatingCount: 1, AverageRating: 5, BayesianRating: 3.75,
		}, s.summary(t, productID))
	})

	s.Run("later ratings use the catalogue average from before the change", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Palm oil", 12.5, uuid.Nil)
		_, first := s.buyer(t, "a@example.com", productID)
		_, second := s.buyer(t, "b@example.com", productID)

		s.submit(t, first, productID, 5)
		res := s.submit(t, second, productID, 3)

		assert.Equal(t, 2, res.RatingCount)
		assert.Equal(t, 4.0, res.AverageRating)
		// (5*5 + 4*2) / 7
		assert.Equal(t, 4.71, res.BayesianRating)
	})

	s.Run("resubmitting revises the existing rating", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Garri", 12.5, uuid.Nil)
		_, token := s.buyer(t, "again@example.com", productID)
		first := s.submit(t, token, productID, 2)

		req := builder.NewRatingBuilder().WithScore(4).WithReview("better batch").BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, productID), req, token)

		var second resdto.RatingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		assert.Equal(t, first.RatingID, second.RatingID)
		assert.Equal(t, 1, second.RatingCount)
		assert.Equal(t, 4.0, second.AverageRating)

		var review string
		err := s.DB.QueryRow(context.Background(), "SELECT review FROM product_ratings WHERE id = $1", first.RatingID).Scan(&review)
		require.NoError(t, err)
		assert.Equal(t, "better batch", review)
	})

	s.Run("customers without a completed purchase are refused", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Yam", 12.5, uuid.Nil)
		userID, token := s.shoppers.Customer(t, "window@example.com")
		pending := dbtest.CreateTestOrder(t, s.DB, userID, 12.5, "pending")
		dbtest.AddOrderItem(t, s.DB, pending, productID, 1, 12.5)

		req := builder.NewRatingBuilder().BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, productID), req, token)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Only customers who purchased this product can rate it")
		assert.Zero(t, s.summary(t, productID).RatingCount)
	})

	s.Run("invalid submissions", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Rice", 12.5, uuid.Nil)
		_, token := s.buyer(t, "bad@example.com", productID)

		for _, body := range []map[string]any{
			{"rating": 0},
			{"rating": 6},
			{"rating": 4, "review": strings.Repeat("x", 1001)},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, productID), body, token)
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("unknown product", func() {
		t := s.T()
		_, token := s.shoppers.Create(t, "boss@example.com", "admin")

		req := builder.NewRatingBuilder().BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, uuid.New()), req, token)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Product not found")
	})

	s.Run("anonymous callers must authenticate", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Beans", 12.5, uuid.Nil)

		req := builder.NewRatingBuilder().BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(submitURL, productID), req, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *RatingSuite) TestDeleteAndRecalculate() {
	s.Run("owner and admin deletions keep the aggregate in step", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Suya spice", 12.5, uuid.Nil)
		_, first := s.buyer(t, "a@example.com", productID)
		secondID, second := s.buyer(t, "b@example.com", productID)
		s.submit(t, first, productID, 5)
		s.submit(t, second, productID, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(deleteMineURL, productID), nil, first)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		got := s.summary(t, productID)
		assert.Equal(t, 1, got.RatingCount)
		assert.Equal(t, 3.0, got.AverageRating)
		// global average before the delete is 4: (5*4 + 3*1) / 6
		assert.Equal(t, 3.83, got.BayesianRating)

		admin := s.shoppers.Admin(t)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(adminDeleteURL, productID, secondID), nil, admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		assert.Equal(t, resdto.RatingSummaryResponse{ProductID: productID}, s.summary(t, productID))
	})

	s.Run("deleting a missing rating", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Ogbono", 12.5, uuid.Nil)
		_, token := s.shoppers.Customer(t, "none@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(deleteMineURL, productID), nil, token)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Rating not found")
	})

	s.Run("customers cannot use the admin delete", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Egusi", 12.5, uuid.Nil)
		ownerID, owner := s.buyer(t, "owner@example.com", productID)
		s.submit(t, owner, productID, 4)
		_, other := s.shoppers.Customer(t, "other@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(adminDeleteURL, productID, ownerID), nil, other)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, 1, s.summary(t, productID).RatingCount)
	})

	s.Run("recalculation rescores against the current catalogue average", func() {
		t := s.T()
		liked := dbtest.CreateTestProduct(t, s.DB, "Zobo", 12.5, uuid.Nil)
		mixed := dbtest.CreateTestProduct(t, s.DB, "Kunu", 12.5, uuid.Nil)
		_, a := s.buyer(t, "a@example.com", liked)
		_, b := s.buyer(t, "b@example.com", mixed)
		_, c := s.buyer(t, "c@example.com", mixed)
		s.submit(t, a, liked, 5)
		s.submit(t, b, mixed, 4)
		s.submit(t, c, mixed, 2)

		admin := s.shoppers.Admin(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, recalculateURL, nil, admin)
		var got resdto.RecalculateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, 2, got.Products)

		// global average (5 + 4 + 2) / 3 = 11/3
		assert.Equal(t, 3.89, s.summary(t, liked).BayesianRating)
		assert.Equal(t, 3.48, s.summary(t, mixed).BayesianRating)
	})
}
