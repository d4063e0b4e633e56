package api

import (
	"context"
	"net/http"
	"strconv"

	reqdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/request"
	resdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/response"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/httperr"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	cmds commands.VoucherCommands
	dist commands.DistributionCommands
	q    queries.VoucherQueries
}

func NewVoucherHandler(cmds commands.VoucherCommands, dist commands.DistributionCommands, q queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{cmds: cmds, dist: dist, q: q}
}

// @Summary Create voucher
// @Description Create a single voucher with an explicit code
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVoucherRequest true "Create voucher request"
// @Success 201 {object} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vouchers [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	var req reqdto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByCode(c.Request.Context(), result.Code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load voucher", nil)
		return
	}
	c.Header("Location", "/api/vouchers/"+result.Code)
	c.JSON(http.StatusCreated, resdto.FromVoucherView(view))
}

// @Summary Bulk issue vouchers
// @Description Issue many vouchers sharing one configuration under generated codes
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkIssueRequest true "Bulk issue request"
// @Success 201 {object} resdto.BulkIssueResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vouchers/bulk [post]
func (h *VoucherHandler) BulkIssue(c *gin.Context) {
	var req reqdto.BulkIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	result, err := h.cmds.BulkIssue(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBulkIssueResult(result))
}

// @Summary List vouchers
// @Description Newest first, keyset paginated
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httperr.Response
// @Router /vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			httperr.AbortWithCode(c, http.StatusBadRequest, "VALIDATION", err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	var nextCursor string
	if next != nil {
		nextCursor = next.After
	}
	c.JSON(http.StatusOK, gin.H{
		"vouchers":    resdto.FromVoucherList(items),
		"next_cursor": nextCursor,
	})
}

// @Summary Get voucher
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 404 {object} httperr.Response
// @Router /vouchers/{code} [get]
func (h *VoucherHandler) Get(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

// @Summary Deactivate voucher
// @Description Stop a voucher from being redeemed. Past redemptions are kept.
// @Tags vouchers
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /vouchers/{code} [delete]
func (h *VoucherHandler) Deactivate(c *gin.Context) {
	if err := h.cmds.Deactivate(c.Request.Context(), c.Param("code")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Distribute targeted voucher
// @Description Grant a targeted voucher to every user currently matching its criteria
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 200 {object} resdto.DistributionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /vouchers/{code}/distribute [post]
func (h *VoucherHandler) Distribute(c *gin.Context) {
	code := c.Param("code")
	granted, err := h.dist.Distribute(c.Request.Context(), code)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DistributionResponse{Code: code, Granted: granted})
}

// @Summary Apply voucher
// @Description Redeem a voucher against one of the caller's orders
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyVoucherRequest true "Apply voucher request"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /vouchers/apply [post]
func (h *VoucherHandler) Apply(c *gin.Context) {
	h.redeem(c, h.cmds.Apply)
}

// @Summary Preview voucher
// @Description Compute the discount a voucher would give without redeeming it
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyVoucherRequest true "Apply voucher request"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /vouchers/preview [post]
func (h *VoucherHandler) Preview(c *gin.Context) {
	h.redeem(c, h.cmds.Preview)
}

type redeemFunc func(ctx context.Context, caller commands.Caller, in commands.ApplyVoucherInput) (*commands.DiscountResult, error)

func (h *VoucherHandler) redeem(c *gin.Context, run redeemFunc) {
	caller, ok := callerFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := run(c.Request.Context(), caller, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscountResult(result))
}

// @Summary My vouchers
// @Description Targeted vouchers granted to the caller
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /me/vouchers [get]
func (h *VoucherHandler) MyVouchers(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListGranted(c.Request.Context(), caller.UserID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vouchers": resdto.FromGrantedVouchers(items)})
}
