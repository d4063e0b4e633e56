//go:build e2e

package voucher_test

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"strings"
	"sync"
	"testing"
	"time"

	domvoucher "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	reqdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/request"
	resdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/response"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/builder"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/dbtest"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/httptest"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/e2e"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	vouchersURL   = "/api/vouchers"
	voucherURL    = "/api/vouchers/%s"
	bulkURL       = "/api/vouchers/bulk"
	distributeURL = "/api/vouchers/%s/distribute"
	applyURL      = "/api/vouchers/apply"
	previewURL    = "/api/vouchers/preview"
	myVouchersURL = "/api/me/vouchers"
)

type VoucherSuite struct {
	e2e.SharedSuite
	shoppers *helper.ShopperHelper
}

func (s *VoucherSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.shoppers = helper.NewShopperHelper(s.DB, s.Config.JWT)
}

func (s *VoucherSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestVoucherSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(VoucherSuite))
}

func (s *VoucherSuite) createVoucher(t *testing.T, adminToken string, b *builder.VoucherBuilder) {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, b.BuildCreateRequestDTO(), adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (s *VoucherSuite) voucherState(t *testing.T, code string) (totalUsage int, ledgerRows int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.DB.QueryRow(ctx, "SELECT total_usage FROM vouchers WHERE code = $1", code).Scan(&totalUsage))
	ledgerRows = dbtest.CountRows(t, s.DB,
		"SELECT COUNT(*) FROM voucher_usages u JOIN vouchers v ON v.id = u.voucher_id WHERE v.code = $1", code)
	return totalUsage, ledgerRows
}

func (s *VoucherSuite) orderState(t *testing.T, orderID uuid.UUID) (total, discount float64, code *string) {
	t.Helper()
	err := s.DB.QueryRow(context.Background(),
		"SELECT total::float8, discount::float8, voucher_code FROM orders WHERE id = $1", orderID).Scan(&total, &discount, &code)
	require.NoError(t, err)
	return total, discount, code
}

// =============================================================================
// Administration
// =============================================================================

func (s *VoucherSuite) TestCreateAndRead() {
	s.Run("created voucher is readable by its normalized code", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)

		s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode("spring25").AsPercentage(25).WithMaxTotalUsage(100))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(voucherURL, "spring25"), nil, admin)
		var got resdto.VoucherResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		maxTotal := 100
		want := resdto.VoucherResponse{
			Code:              "SPRING25",
			Type:              "percentage",
			Value:             25,
			MinSpend:          50,
			IsActive:          true,
			MaxTotalUsage:     &maxTotal,
			QualificationType: "manual",
		}
		diff := cmp.Diff(want, got, cmpopts.IgnoreFields(resdto.VoucherResponse{}, "ID", "ExpiresAt", "CreatedAt"))
		assert.Empty(t, diff)
	})

	s.Run("duplicate code conflicts", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)
		s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode("ONCE10"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL,
			builder.NewVoucherBuilder().WithCode("once10").BuildCreateRequestDTO(), admin)

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Voucher code already exists")
	})

	s.Run("customers cannot manage vouchers", func() {
		t := s.T()
		_, token := s.shoppers.Customer(t, "nosy@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL,
			builder.NewVoucherBuilder().BuildCreateRequestDTO(), token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("deactivated voucher can no longer be applied", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)
		s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode("PAUSE5").AsFixed(5).WithMinSpend(0))
		userID, token := s.shoppers.Customer(t, "paused@example.com")
		orderID := dbtest.CreateTestOrder(t, s.DB, userID, 40, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(voucherURL, "PAUSE5"), nil, admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
			reqdto.ApplyVoucherRequest{Code: "PAUSE5", OrderID: orderID}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, domvoucher.ErrInvalidVoucher.Error())
	})

	s.Run("listing pages through every voucher", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)
		for i := range 5 {
			s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode(fmt.Sprintf("PAGE%d", i)))
		}

		seen := map[string]bool{}
		cursor := ""
		for page := 0; page < 5; page++ {
			url := vouchersURL + "?limit=2"
			if cursor != "" {
				url += "&after=" + neturl.QueryEscape(cursor)
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, admin)
			var body struct {
				Vouchers   []resdto.VoucherResponse `json:"vouchers"`
				NextCursor string                   `json:"next_cursor"`
			}
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
			for _, v := range body.Vouchers {
				assert.False(t, seen[v.Code], "voucher %s listed twice", v.Code)
				seen[v.Code] = true
			}
			if body.NextCursor == "" {
				break
			}
			cursor = body.NextCursor
		}
		assert.Len(t, seen, 5)
	})
}

// =============================================================================
// Bulk issuance
// =============================================================================

func (s *VoucherSuite) TestBulkIssue() {
	s.Run("issues distinct prefixed codes sharing the template", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)

		req := builder.NewVoucherBuilder().AsFixed(500).WithMinSpend(2000).BuildBulkRequestDTO("xmas", 25)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bulkURL, req, admin)

		var got resdto.BulkIssueResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)
		require.Equal(t, 25, got.Count)
		require.Len(t, got.Codes, 25)

		unique := map[string]struct{}{}
		for _, c := range got.Codes {
			assert.True(t, strings.HasPrefix(c, "XMAS"), c)
			unique[c] = struct{}{}
		}
		assert.Len(t, unique, 25)

		rows := dbtest.CountRows(t, s.DB,
			"SELECT COUNT(*) FROM vouchers WHERE code LIKE 'XMAS%' AND type = 'fixed' AND value = 500 AND min_spend = 2000")
		assert.Equal(t, 25, rows)
	})

	s.Run("zero quantity is rejected", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)

		req := builder.NewVoucherBuilder().BuildBulkRequestDTO("XMAS", 0)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bulkURL, req, admin)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// Discount application
// =============================================================================

func (s *VoucherSuite) TestApply() {
	s.Run("percentage discount updates order, ledger and counter together", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)
		s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode("SAVE10").AsPercentage(10).WithMinSpend(50))
		userID, token := s.shoppers.Customer(t, "ada@example.com")
		orderID := dbtest.CreateTestOrder(t, s.DB, userID, 200, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
			reqdto.ApplyVoucherRequest{Code: "save10", OrderID: orderID}, token)

		var got resdto.DiscountResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, resdto.DiscountResponse{Code: "SAVE10", OrderID: orderID, DiscountAmount: 20, NewTotal: 180}, got)

		total, discount, code := s.orderState(t, orderID)
		assert.Equal(t, 180.0, total)
		assert.Equal(t, 20.0, discount)
		require.NotNil(t, code)
		assert.Equal(t, "SAVE10", *code)

		usage, ledger := s.voucherState(t, "SAVE10")
		assert.Equal(t, 1, usage)
		assert.Equal(t, 1, ledger)
	})

	s.Run("preview changes nothing", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)
		s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode("PEEK15").AsFixed(15).WithMinSpend(0))
		userID, token := s.shoppers.Customer(t, "peek@example.com")
		orderID := dbtest.CreateTestOrder(t, s.DB, userID, 100, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			reqdto.ApplyVoucherRequest{Code: "PEEK15", OrderID: orderID}, token)

		var got resdto.DiscountResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, 85.0, got.NewTotal)

		total, discount, code := s.orderState(t, orderID)
		assert.Equal(t, 100.0, total)
		assert.Zero(t, discount)
		assert.Nil(t, code)
		usage, ledger := s.voucherState(t, "PEEK15")
		assert.Zero(t, usage)
		assert.Zero(t, ledger)
	})

	rejections := []struct {
		name    string
		voucher *builder.VoucherBuilder
		total   float64
		before  int
		status  int
		message string
		reason  string
	}{
		{
			name:    "below minimum spend",
			voucher: builder.NewVoucherBuilder().WithCode("BIGSPEND").WithMinSpend(500),
			total:   100,
			status:  http.StatusUnprocessableEntity,
			message: domvoucher.ErrBelowMinimumSpend.Error(),
			reason:  "VOUCHER_MIN_SPEND",
		},
		{
			name:    "per-user limit reached",
			voucher: builder.NewVoucherBuilder().WithCode("ONEEACH").WithMinSpend(0).WithMaxUsagePerUser(1),
			total:   100,
			before:  1,
			status:  http.StatusUnprocessableEntity,
			message: domvoucher.ErrUserLimitReached.Error(),
			reason:  "VOUCHER_USER_LIMIT",
		},
		{
			name:    "unknown code",
			voucher: nil,
			total:   100,
			status:  http.StatusUnprocessableEntity,
			message: domvoucher.ErrInvalidVoucher.Error(),
			reason:  "VOUCHER_INVALID",
		},
	}
	for _, tc := range rejections {
		s.Run(tc.name, func() {
			t := s.T()
			admin := s.shoppers.Admin(t)
			code := "NOSUCH1"
			if tc.voucher != nil {
				code = tc.voucher.Code
				s.createVoucher(t, admin, tc.voucher)
			}
			userID, token := s.shoppers.Customer(t, "reject@example.com")
			for range tc.before {
				earlier := dbtest.CreateTestOrder(t, s.DB, userID, tc.total, "pending")
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
					reqdto.ApplyVoucherRequest{Code: code, OrderID: earlier}, token)
				require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			}
			orderID := dbtest.CreateTestOrder(t, s.DB, userID, tc.total, "pending")

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
				reqdto.ApplyVoucherRequest{Code: code, OrderID: orderID}, token)

			body := httptest.AssertErrorResponse(t, w, tc.status, tc.message)
			assert.Equal(t, tc.reason, body.Error.Code)
			total, discount, applied := s.orderState(t, orderID)
			assert.Equal(t, tc.total, total)
			assert.Zero(t, discount)
			assert.Nil(t, applied)
		})
	}

	s.Run("someone else's order is refused", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)
		s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode("MINE10").WithMinSpend(0))
		owner, _ := s.shoppers.Customer(t, "owner@example.com")
		_, intruder := s.shoppers.Customer(t, "intruder@example.com")
		orderID := dbtest.CreateTestOrder(t, s.DB, owner, 100, "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
			reqdto.ApplyVoucherRequest{Code: "MINE10", OrderID: orderID}, intruder)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Order does not belong to you")
	})

	s.Run("last slot goes to exactly one of many concurrent shoppers", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)
		s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode("LASTONE").WithMinSpend(0).WithMaxTotalUsage(1))

		const shoppers = 8
		type attempt struct {
			token   string
			orderID uuid.UUID
		}
		attempts := make([]attempt, shoppers)
		for i := range attempts {
			userID, token := s.shoppers.Customer(t, fmt.Sprintf("race%d@example.com", i))
			attempts[i] = attempt{token: token, orderID: dbtest.CreateTestOrder(t, s.DB, userID, 100, "pending")}
		}

		codes := make([]int, shoppers)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i, a := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
					reqdto.ApplyVoucherRequest{Code: "LASTONE", OrderID: a.orderID}, a.token)
				codes[i] = w.Code
			}()
		}
		close(start)
		wg.Wait()

		var ok, exhausted int
		for _, c := range codes {
			switch c {
			case http.StatusOK:
				ok++
			case http.StatusUnprocessableEntity:
				exhausted++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, shoppers-1, exhausted)

		usage, ledger := s.voucherState(t, "LASTONE")
		assert.Equal(t, 1, usage)
		assert.Equal(t, 1, ledger)
	})
}

// =============================================================================
// Targeted distribution
// =============================================================================

func (s *VoucherSuite) TestDistribute() {
	s.Run("grants qualifying shoppers who can then redeem", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)
		minOrders := 2
		s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode("LOYAL15").AsPercentage(15).WithMinSpend(0).
			AsTargeted(&domvoucher.Criteria{MinOrders: &minOrders}))

		loyalID, loyalToken := s.shoppers.Customer(t, "loyal@example.com")
		newID, newToken := s.shoppers.Customer(t, "new@example.com")
		dbtest.CreateTestOrder(t, s.DB, loyalID, 30, "completed")
		dbtest.CreateTestOrder(t, s.DB, loyalID, 45, "completed")
		dbtest.CreateTestOrder(t, s.DB, newID, 80, "cancelled")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(distributeURL, "LOYAL15"), nil, admin)
		var dist resdto.DistributionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &dist)
		assert.Equal(t, resdto.DistributionResponse{Code: "LOYAL15", Granted: 1}, dist)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(distributeURL, "LOYAL15"), nil, admin)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &dist)
		assert.Zero(t, dist.Granted)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myVouchersURL, nil, loyalToken)
		var mine struct {
			Vouchers []resdto.GrantedVoucherResponse `json:"vouchers"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine.Vouchers, 1)
		assert.Equal(t, "LOYAL15", mine.Vouchers[0].Code)
		assert.False(t, mine.Vouchers[0].IsRedeemed)

		outsiderOrder := dbtest.CreateTestOrder(t, s.DB, newID, 100, "pending")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
			reqdto.ApplyVoucherRequest{Code: "LOYAL15", OrderID: outsiderOrder}, newToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, domvoucher.ErrInvalidVoucher.Error())

		loyalOrder := dbtest.CreateTestOrder(t, s.DB, loyalID, 100, "pending")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL,
			reqdto.ApplyVoucherRequest{Code: "LOYAL15", OrderID: loyalOrder}, loyalToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myVouchersURL, nil, loyalToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine.Vouchers, 1)
		assert.True(t, mine.Vouchers[0].IsRedeemed)
		require.NotNil(t, mine.Vouchers[0].RedeemedAt)
		assert.WithinDuration(t, time.Now(), *mine.Vouchers[0].RedeemedAt, time.Minute)
	})

	s.Run("manual vouchers cannot be distributed", func() {
		t := s.T()
		admin := s.shoppers.Admin(t)
		s.createVoucher(t, admin, builder.NewVoucherBuilder().WithCode("OPEN10"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(distributeURL, "OPEN10"), nil, admin)

		httptest.AssertErrorCode(t, w, http.StatusConflict, "VOUCHER_NOT_TARGETED")
	})
}
