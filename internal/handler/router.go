package handler

import (
	"net/http"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/user"
	reqdto "github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/dto/request"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/api"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/middleware"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Voucher *api.VoucherHandler
	Rating  *api.RatingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, limiter)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products/:id/rating", Handler: h.Rating.Summary},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			redeemLimit := middleware.RateLimit(limiter, "voucher_redeem")
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "/vouchers/apply", Handler: h.Voucher.Apply, Mw: []gin.HandlerFunc{redeemLimit}},
				{Method: http.MethodPost, Path: "/vouchers/preview", Handler: h.Voucher.Preview, Mw: []gin.HandlerFunc{redeemLimit}},
				{Method: http.MethodGet, Path: "/me/vouchers", Handler: h.Voucher.MyVouchers},
				{Method: http.MethodPost, Path: "/products/:id/ratings", Handler: h.Rating.Submit},
				{Method: http.MethodDelete, Path: "/products/:id/ratings/me", Handler: h.Rating.DeleteMine},
			})
		}

		vouchers := apiGroup.Group("/vouchers")
		vouchers.Use(authMiddleware.RequireAuth(), adminOnly)
		{
			addRoutes(vouchers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Voucher.Create},
				{Method: http.MethodPost, Path: "/bulk", Handler: h.Voucher.BulkIssue},
				{Method: http.MethodGet, Path: "", Handler: h.Voucher.List},
				{Method: http.MethodGet, Path: "/:code", Handler: h.Voucher.Get},
				{Method: http.MethodDelete, Path: "/:code", Handler: h.Voucher.Deactivate},
				{Method: http.MethodPost, Path: "/:code/distribute", Handler: h.Voucher.Distribute},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), adminOnly)
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/ratings/recalculate", Handler: h.Rating.RecalculateAll},
				{Method: http.MethodDelete, Path: "/products/:id/ratings/:user_id", Handler: h.Rating.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
