package components

import (
	"leen-studio/internal/handler"
	"leen-studio/internal/handler/api"
	"leen-studio/internal/handler/middleware"
	"leen-studio/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewShopHandler,
		api.NewCartHandler,
		api.NewBookingHandler,
		api.NewMembershipHandler,
		api.NewSoulAlignHandler,
		api.NewAdminHandler,
		NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAdminMiddleware(cfg config.Config) *middleware.AdminMiddleware {
	return middleware.NewAdminMiddleware(cfg.Admin)
}
