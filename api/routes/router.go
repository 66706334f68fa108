package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sweetdelights/cakekart-backend/api/controllers"
	"github.com/sweetdelights/cakekart-backend/api/middleware"
	adminsvc "github.com/sweetdelights/cakekart-backend/internal/admin"
	cartsvc "github.com/sweetdelights/cakekart-backend/internal/cart"
	"github.com/sweetdelights/cakekart-backend/internal/catalog"
	checkoutsvc "github.com/sweetdelights/cakekart-backend/internal/checkout"
	"github.com/sweetdelights/cakekart-backend/internal/notifications"
	"github.com/sweetdelights/cakekart-backend/internal/orders"
	"github.com/sweetdelights/cakekart-backend/internal/profiles"
	"github.com/sweetdelights/cakekart-backend/internal/reviews"
	"github.com/sweetdelights/cakekart-backend/pkg/config"
	"github.com/sweetdelights/cakekart-backend/pkg/db"
	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/metrics"
	"github.com/sweetdelights/cakekart-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	DB      db.Pinger
	Redis   redis.Pinger
	Metrics *metrics.HTTPMetrics
	// Gatherer serves /metrics. Usually the same registry the metrics were
	// registered on.
	Gatherer prometheus.Gatherer

	Catalog       catalog.Service
	Cart          cartsvc.Service
	Checkout      checkoutsvc.Service
	Orders        orders.Service
	Reviews       reviews.Service
	Notifications notifications.Service
	Profiles      profiles.Service
	Admin         adminsvc.Service
}

func NewRouter(d Deps) http.Handler {
	cfg, logg := d.Config, d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, d.Metrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DB, d.Redis))
	})

	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	// Public storefront: browsing and inquiries need no account.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cakes", func(r chi.Router) {
			r.Get("/", controllers.ListCakes(d.Catalog, logg))
			r.Get("/search", controllers.SearchCakes(d.Catalog, logg))
			r.Get("/{cakeID}", controllers.CakeByID(d.Catalog, logg))
			r.Get("/{cakeID}/reviews", controllers.ListCakeReviews(d.Reviews, logg))
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(d.Catalog, logg))
			r.Get("/{categoryID}/cakes", controllers.CakesByCategory(d.Catalog, logg))
		})
		r.Get("/catalog/status", controllers.CatalogStatus(d.Catalog))
		r.Post("/inquiry", controllers.CakeInquiry(cfg.Bakery, logg))
		r.Post("/reviews/{reviewID}/helpful", controllers.MarkReviewHelpful(d.Reviews, logg))
	})

	// Signed-in customers.
	r.Route("/api/v1/me", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/", controllers.Me(d.Profiles, logg))
		r.Put("/", controllers.UpdateProfile(d.Profiles, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(d.Cart, logg))
			r.Post("/items", controllers.AddCartItem(d.Cart, logg))
			r.Put("/items", controllers.SetCartQuantity(d.Cart, logg))
			r.Delete("/items", controllers.RemoveCartItem(d.Cart, logg))
			r.Delete("/", controllers.ClearCart(d.Cart, logg))
		})

		r.Get("/checkout/quote", controllers.CheckoutQuote(d.Checkout, logg))
		r.Post("/checkout", controllers.PlaceOrder(d.Checkout, d.Metrics, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.MyOrders(d.Orders, logg))
			r.Get("/{orderID}", controllers.OrderByID(d.Orders, logg))
			r.Get("/{orderID}/reorder", controllers.ReorderLink(d.Orders, cfg.Bakery, logg))
		})

		r.Post("/cakes/{cakeID}/reviews", controllers.AddReview(d.Reviews, logg))

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(d.Notifications, logg))
			r.Get("/unread-count", controllers.UnreadNotificationCount(d.Notifications, logg))
			r.Post("/{notificationID}/read", controllers.MarkNotificationRead(d.Notifications, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(d.Notifications, logg))
		})
	})

	// Back office.
	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))

		r.Get("/dashboard", controllers.AdminDashboard(d.Admin, logg))
		r.Post("/catalog/refresh", controllers.RefreshCatalog(d.Catalog, logg))

		r.Route("/cakes", func(r chi.Router) {
			r.Get("/", controllers.AdminListCakes(d.Admin, logg))
			r.Post("/", controllers.AdminCreateCake(d.Admin, logg))
			r.Put("/{cakeID}", controllers.AdminUpdateCake(d.Admin, logg))
			r.Delete("/{cakeID}", controllers.AdminDeleteCake(d.Admin, logg))
		})
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateCategory(d.Admin, logg))
			r.Put("/{categoryID}", controllers.AdminUpdateCategory(d.Admin, logg))
			r.Delete("/{categoryID}", controllers.AdminDeleteCategory(d.Admin, logg))
		})
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(d.Orders, logg))
			r.Put("/{orderID}/status", controllers.AdminUpdateOrderStatus(d.Orders, logg))
		})
		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.AdminListProfiles(d.Profiles, logg))
			r.Put("/{userID}/role", controllers.AdminSetRole(d.Profiles, logg))
		})
	})

	return r
}
