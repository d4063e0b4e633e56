package api

import (
	"net/http"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/httperr"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/middleware"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/errs"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// first match wins; voucher rejections carry the domain message verbatim
var errorTable = []errorMapping{
	{voucher.ErrInvalidVoucher, http.StatusUnprocessableEntity, "VOUCHER_INVALID", ""},
	{voucher.ErrVoucherExhausted, http.StatusUnprocessableEntity, "VOUCHER_EXHAUSTED", ""},
	{voucher.ErrUserLimitReached, http.StatusUnprocessableEntity, "VOUCHER_USER_LIMIT", ""},
	{voucher.ErrBelowMinimumSpend, http.StatusUnprocessableEntity, "VOUCHER_MIN_SPEND", ""},
	{commands.ErrVoucherCodeTaken, http.StatusConflict, "VOUCHER_CODE_TAKEN", "Voucher code already exists"},
	{commands.ErrCodeSpaceExhausted, http.StatusConflict, "VOUCHER_CODE_SPACE", "Could not generate unique voucher codes"},
	{commands.ErrVoucherNotTargeted, http.StatusConflict, "VOUCHER_NOT_TARGETED", "Only targeted vouchers can be distributed"},
	{commands.ErrUnknownVoucherScope, http.StatusBadRequest, "VOUCHER_SCOPE", "Voucher scope references unknown products or categories"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "VALIDATION", "Invalid request"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "INVALID_CURSOR", "Invalid cursor"},
	{commands.ErrVoucherNotFound, http.StatusNotFound, "VOUCHER_NOT_FOUND", "Voucher not found"},
	{queries.ErrVoucherNotFound, http.StatusNotFound, "VOUCHER_NOT_FOUND", "Voucher not found"},
	{commands.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found"},
	{commands.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found"},
	{queries.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found"},
	{commands.ErrRatingNotFound, http.StatusNotFound, "RATING_NOT_FOUND", "Rating not found"},
	{commands.ErrOrderNotOwned, http.StatusForbidden, "ORDER_NOT_OWNED", "Order does not belong to you"},
	{commands.ErrRatingNotOwned, http.StatusForbidden, "RATING_NOT_OWNED", "Rating does not belong to you"},
	{commands.ErrRatingNotAllowed, http.StatusForbidden, "RATING_NOT_ALLOWED", "Only customers who purchased this product can rate it"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorTable {
		if !errs.Is(err, m.target) {
			continue
		}
		msg := m.message
		if msg == "" {
			msg = m.target.Error()
		}
		var detail any
		if m.target == errs.ErrDomainValidation {
			detail = err.Error()
		}
		httperr.AbortWithCode(c, m.status, m.code, err, msg, detail)
		return
	}
	httperr.Internal(c, err)
}

func callerFrom(c *gin.Context) (commands.Caller, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return commands.Caller{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return commands.Caller{}, false
	}
	return commands.Caller{UserID: userID, Role: role}, true
}

func bindError(c *gin.Context, err error) {
	httperr.AbortWithCode(c, http.StatusBadRequest, "VALIDATION", err, "Invalid request", validationDetail(err))
}
