package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"leen-studio/internal/handler/api"
	"leen-studio/internal/handler/middleware"
	"leen-studio/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	shopHandler *api.ShopHandler,
	cartHandler *api.CartHandler,
	bookingHandler *api.BookingHandler,
	membershipHandler *api.MembershipHandler,
	soulAlignHandler *api.SoulAlignHandler,
	adminHandler *api.AdminHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, shopHandler, cartHandler, bookingHandler, membershipHandler, soulAlignHandler, adminHandler, adminMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Method checks happen before routing so the relay endpoint answers
	// GET with 405 instead of 404.
	engine.HandleMethodNotAllowed = true

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.SessionMiddleware())
}

func setupRoutes(
	engine *gin.Engine,
	shopHandler *api.ShopHandler,
	cartHandler *api.CartHandler,
	bookingHandler *api.BookingHandler,
	membershipHandler *api.MembershipHandler,
	soulAlignHandler *api.SoulAlignHandler,
	adminHandler *api.AdminHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/products", Handler: shopHandler.Products},
				{Method: http.MethodGet, Path: "/services", Handler: shopHandler.Services},
				{Method: http.MethodGet, Path: "/tiers", Handler: shopHandler.Tiers},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/testimonials", Handler: shopHandler.Testimonials},
			{Method: http.MethodPost, Path: "/soul-alignment", Handler: soulAlignHandler.Align},
		})

		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.Get},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: cartHandler.RemoveItem},
				{Method: http.MethodPost, Path: "/items/:id/save", Handler: cartHandler.ToggleSaved},
				{Method: http.MethodPost, Path: "/saved/:id/move", Handler: cartHandler.MoveToCart},
				{Method: http.MethodPost, Path: "/clear", Handler: cartHandler.Clear},
				{Method: http.MethodPost, Path: "/promo", Handler: cartHandler.ApplyPromo},
				{Method: http.MethodDelete, Path: "/promo", Handler: cartHandler.RemovePromo},
				{Method: http.MethodPut, Path: "/drawer", Handler: cartHandler.SetDrawer},
			})
		}

		booking := apiGroup.Group("/booking")
		{
			addRoutes(booking, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.Get},
				{Method: http.MethodPost, Path: "/service", Handler: bookingHandler.SelectService},
				{Method: http.MethodPost, Path: "/soul-check", Handler: bookingHandler.SoulCheck},
				{Method: http.MethodPost, Path: "/schedule", Handler: bookingHandler.SelectSchedule},
				{Method: http.MethodPost, Path: "/contact", Handler: bookingHandler.SetContact},
				{Method: http.MethodPost, Path: "/promo", Handler: bookingHandler.ApplyPromo},
				{Method: http.MethodPut, Path: "/daycare", Handler: bookingHandler.SetDaycare},
				{Method: http.MethodPost, Path: "/confirm", Handler: bookingHandler.Confirm},
				{Method: http.MethodPost, Path: "/back", Handler: bookingHandler.Back},
				{Method: http.MethodPost, Path: "/reset", Handler: bookingHandler.Reset},
			})
		}

		membership := apiGroup.Group("/membership")
		{
			addRoutes(membership, []route{
				{Method: http.MethodGet, Path: "", Handler: membershipHandler.Get},
				{Method: http.MethodPost, Path: "/tier", Handler: membershipHandler.SelectTier},
				{Method: http.MethodPost, Path: "/auth", Handler: membershipHandler.Authenticate},
				{Method: http.MethodPut, Path: "/daycare", Handler: membershipHandler.SetDaycare},
				{Method: http.MethodPost, Path: "/seal", Handler: membershipHandler.SealCovenant},
				{Method: http.MethodPost, Path: "/back", Handler: membershipHandler.Back},
				{Method: http.MethodPost, Path: "/reset", Handler: membershipHandler.Reset},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(adminMiddleware.RequirePasskey())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/verify", Handler: adminHandler.Verify},
				{Method: http.MethodGet, Path: "/dashboard", Handler: adminHandler.Dashboard},
				{Method: http.MethodGet, Path: "/testimonials", Handler: adminHandler.ListTestimonials},
				{Method: http.MethodPost, Path: "/testimonials", Handler: adminHandler.CreateTestimonial},
				{Method: http.MethodPut, Path: "/testimonials/:id", Handler: adminHandler.UpdateTestimonial},
				{Method: http.MethodDelete, Path: "/testimonials/:id", Handler: adminHandler.DeleteTestimonial},
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
