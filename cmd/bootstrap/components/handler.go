package components

import (
	"github.com/patrickmn/go-cache"
	"go.uber.org/fx"

	"staybook/internal/handler"
	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewApartmentHandler,
		api.NewCategoryHandler,
		api.NewBookingHandler,
		NewMediaHandler,
		middleware.NewAuthMiddleware,
		NewResponseCache,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewMediaHandler(cfg config.Config) *api.MediaHandler {
	return api.NewMediaHandler(cfg.Uploads)
}

func NewResponseCache(cfg config.Config) *cache.Cache {
	return middleware.NewResponseCache(cfg.Cache)
}

func NewHandlers(
	auth *api.AuthHandler,
	apartment *api.ApartmentHandler,
	category *api.CategoryHandler,
	booking *api.BookingHandler,
	media *api.MediaHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Apartment: apartment,
		Category:  category,
		Booking:   booking,
		Media:     media,
	}
}
