package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/middleware"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
)

// RouterConfig carries everything the HTTP surface is built from
type RouterConfig struct {
	Store          *state.Store
	Catalog        *service.CatalogService
	Cart           *service.CartService
	Orders         *service.OrderService
	Auth           *service.AuthService
	StorageDriver  string
	AllowedOrigins []string
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// NewRouter builds the chi router with middleware and every route
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	healthHandler := NewHealthHandler(cfg.Store, cfg.StorageDriver, log)
	menuHandler := NewMenuHandler(cfg.Catalog, log)
	cartHandler := NewCartHandler(cfg.Cart, log)
	orderHandler := NewOrderHandler(cfg.Orders, log)
	adminHandler := NewAdminHandler(cfg.Auth, cfg.Orders, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", menuHandler.ListMenu)
		r.Get("/menu/featured", menuHandler.Featured)
		r.Get("/menu/{itemId}", menuHandler.GetMenuItem)
		r.Get("/categories", menuHandler.ListCategories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/", cartHandler.AddItem)
			r.Delete("/", cartHandler.Clear)
			r.Put("/{itemId}", cartHandler.UpdateItem)
			r.Delete("/{itemId}", cartHandler.RemoveItem)
		})

		r.Post("/order", orderHandler.PlaceOrder)
		r.Get("/order/{orderId}", orderHandler.GetOrder)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", adminHandler.Login)
			r.Post("/logout", adminHandler.Logout)
			r.Get("/session", adminHandler.Session)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(cfg.Auth, log))

				r.Get("/dashboard", adminHandler.Dashboard)
				r.Get("/orders", adminHandler.ListOrders)
				r.Put("/orders/{orderId}/status", adminHandler.UpdateOrderStatus)
				r.Post("/orders/{orderId}/advance", adminHandler.AdvanceOrder)

				r.Get("/menu", menuHandler.AllMenuItems)
				r.Post("/menu", menuHandler.CreateMenuItem)
				r.Put("/menu/{itemId}", menuHandler.UpdateMenuItem)
				r.Delete("/menu/{itemId}", menuHandler.DeleteMenuItem)

				r.Post("/categories", menuHandler.CreateCategory)
				r.Put("/categories/{categoryId}", menuHandler.UpdateCategory)
				r.Delete("/categories/{categoryId}", menuHandler.DeleteCategory)
			})
		})
	})

	return r
}
