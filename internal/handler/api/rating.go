package api

import (
	"net/http"

	reqdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/request"
	resdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/response"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/httperr"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RatingHandler struct {
	cmds commands.RatingCommands
	q    queries.RatingQueries
}

func NewRatingHandler(cmds commands.RatingCommands, q queries.RatingQueries) *RatingHandler {
	return &RatingHandler{cmds: cmds, q: q}
}

func productIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Rate product
// @Description Create or revise the caller's rating of a product
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.SubmitRatingRequest true "Rating"
// @Success 201 {object} resdto.RatingResponse
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/ratings [post]
func (h *RatingHandler) Submit(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), caller, req.ToInput(productID))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromRatingResult(result))
}

// @Summary Delete my rating
// @Tags ratings
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/ratings/me [delete]
func (h *RatingHandler) DeleteMine(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), caller, productID, caller.UserID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a user's rating
// @Description Moderation endpoint
// @Tags ratings
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param user_id path string true "Author user ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/products/{id}/ratings/{user_id} [delete]
func (h *RatingHandler) Delete(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	authorID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	caller, ok := callerFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), caller, productID, authorID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Product rating summary
// @Tags ratings
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.RatingSummaryResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/rating [get]
func (h *RatingHandler) Summary(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	summary, err := h.q.GetSummary(c.Request.Context(), productID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingSummary(summary))
}

// @Summary Recalculate Bayesian ratings
// @Description Rescore every rated product against the current global average
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RecalculateResponse
// @Router /admin/ratings/recalculate [post]
func (h *RatingHandler) RecalculateAll(c *gin.Context) {
	n, err := h.cmds.RecalculateAll(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RecalculateResponse{Products: n})
}
