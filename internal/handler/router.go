package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Apartment *api.ApartmentHandler
	Category  *api.CategoryHandler
	Booking   *api.BookingHandler
	Media     *api.MediaHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	responseCache *cache.Cache,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware, responseCache)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	responseCache *cache.Cache,
) {
	engine.GET("/health", healthCheck)
	engine.Static("/uploads", cfg.Uploads.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	cached := middleware.CacheResponse(responseCache, cfg.Cache.TTL)

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RateLimiter(cfg.Rate))
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.RefreshToken},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		apartments := apiGroup.Group("/apartments")
		{
			addRoutes(apartments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Apartment.ListApartments, Mw: []gin.HandlerFunc{cached}},
				{Method: http.MethodGet, Path: "/search", Handler: h.Apartment.SearchApartments, Mw: []gin.HandlerFunc{cached}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Apartment.GetApartment, Mw: []gin.HandlerFunc{cached}},
			})
		}

		categories := apiGroup.Group("/categories")
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Category.ListCategories, Mw: []gin.HandlerFunc{cached}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Category.GetCategory, Mw: []gin.HandlerFunc{cached}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListGuestBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/apartments", Handler: h.Apartment.CreateApartment},
				{Method: http.MethodPut, Path: "/apartments/:id", Handler: h.Apartment.UpdateApartment},
				{Method: http.MethodDelete, Path: "/apartments/:id", Handler: h.Apartment.DeleteApartment},
				{Method: http.MethodPost, Path: "/categories", Handler: h.Category.CreateCategory},
				{Method: http.MethodPut, Path: "/categories/:id", Handler: h.Category.UpdateCategory},
				{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.Category.DeleteCategory},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListAllBookings},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.UpdateBookingStatus},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.DeleteBooking},
				{Method: http.MethodPost, Path: "/uploads", Handler: h.Media.UploadImage},
				{Method: http.MethodPost, Path: "/uploads/multiple", Handler: h.Media.UploadImages},
				{Method: http.MethodGet, Path: "/uploads", Handler: h.Media.ListImages},
				{Method: http.MethodDelete, Path: "/uploads/:filename", Handler: h.Media.DeleteImage},
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
