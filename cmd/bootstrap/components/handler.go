package components

import (
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/api"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVoucherHandler,
		api.NewRatingHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(v *api.VoucherHandler, r *api.RatingHandler) handler.Handlers {
	return handler.Handlers{Voucher: v, Rating: r}
}
