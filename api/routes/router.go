package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arjunkhanna/craftkart-backend/api/controllers"
	"github.com/arjunkhanna/craftkart-backend/api/middleware"
	authsvc "github.com/arjunkhanna/craftkart-backend/internal/auth"
	cartsvc "github.com/arjunkhanna/craftkart-backend/internal/cart"
	checkoutsvc "github.com/arjunkhanna/craftkart-backend/internal/checkout"
	ordersvc "github.com/arjunkhanna/craftkart-backend/internal/orders"
	productsvc "github.com/arjunkhanna/craftkart-backend/internal/products"
	"github.com/arjunkhanna/craftkart-backend/pkg/auth/session"
	"github.com/arjunkhanna/craftkart-backend/pkg/config"
	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	"github.com/arjunkhanna/craftkart-backend/pkg/logger"
	"github.com/arjunkhanna/craftkart-backend/pkg/metrics"
	"github.com/arjunkhanna/craftkart-backend/pkg/redis"
)

// RouterParams carries everything the HTTP surface needs. Every field is
// required unless noted.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              controllers.Pinger
	Redis           *redis.Client
	SessionVerifier session.AccessSessionChecker

	AuthService     authsvc.Service
	ProductService  productsvc.Service
	CartService     cartsvc.Service
	CheckoutService checkoutsvc.Service
	OrderService    ordersvc.Service

	HTTPMetrics *metrics.HTTPMetrics
	Registry    *prometheus.Registry
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)
	if p.HTTPMetrics != nil {
		r.Use(middleware.Metrics(p.HTTPMetrics))
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	readiness := map[string]controllers.Pinger{
		"database": p.DB,
		"redis":    p.Redis,
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(p.Registry))
	}

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(p.ProductService, logg))
		r.Get("/featured", controllers.FeaturedProducts(p.ProductService, logg))
		r.Get("/categories", controllers.ProductCategories(p.ProductService, logg))
		r.Get("/{productId}", controllers.GetProduct(p.ProductService, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(middleware.CartSession(cfg.Cart.SessionTTL, logg))
		r.Get("/", controllers.GetCart(p.CartService, logg))
		r.Delete("/", controllers.ClearCart(p.CartService, logg))
		r.Post("/items", controllers.AddCartItem(p.CartService, logg))
		r.Patch("/items/{productId}", controllers.UpdateCartItem(p.CartService, logg))
		r.Delete("/items/{productId}", controllers.RemoveCartItem(p.CartService, logg))
	})

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Use(middleware.CartSession(cfg.Cart.SessionTTL, logg))
		r.Get("/", controllers.GetCheckout(p.CheckoutService, logg))
		r.Post("/start", controllers.StartCheckout(p.CheckoutService, logg))
		r.Post("/contact", controllers.SubmitCheckoutContact(p.CheckoutService, logg))
		r.Post("/back", controllers.CheckoutBack(p.CheckoutService, logg))
		r.Post("/confirm", controllers.ConfirmCheckout(p.CheckoutService, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).Post("/register", controllers.Register(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.Login(p.AuthService, logg))
		r.Post("/refresh", controllers.Refresh(p.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, p.SessionVerifier, logg)).Post("/logout", controllers.Logout(p.AuthService, logg))
	})

	r.Get("/api/v1/orders", controllers.ListOrdersByEmail(p.OrderService, logg))

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionVerifier, logg))
		r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(p.ProductService, logg))
			r.Get("/stats", controllers.AdminProductStats(p.ProductService, logg))
			r.Patch("/{productId}", controllers.AdminUpdateProduct(p.ProductService, logg))
			r.Delete("/{productId}", controllers.AdminDeleteProduct(p.ProductService, logg))
			r.Post("/{productId}/restock", controllers.AdminRestockProduct(p.ProductService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(p.OrderService, logg))
			r.Get("/stats", controllers.AdminOrderStats(p.OrderService, logg))
			r.Get("/{orderId}", controllers.AdminGetOrder(p.OrderService, logg))
			r.Patch("/{orderId}/status", controllers.AdminUpdateOrderStatus(p.OrderService, logg))
		})
	})

	return r
}
