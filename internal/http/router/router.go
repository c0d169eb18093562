package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shipping-service/internal/domain"
	"shipping-service/internal/http/handlers"
	mw "shipping-service/internal/http/middleware"
	"shipping-service/internal/logx"
)

// Deps carries everything the router mounts.
type Deps struct {
	Base      *handlers.Handlers
	Addresses *handlers.AddressHandler
	Packages  *handlers.PackageHandler
	Orders    *handlers.OrderHandler
	Tracking  *handlers.TrackingHandler
	Shipments *handlers.ShipmentHandler
	Pricing   *handlers.PricingHandler
	Users     *handlers.UserHandler
	Admin     *handlers.AdminHandler

	Logger logx.Logger

	// RateLimit wraps the write routes; nil disables limiting.
	RateLimit func(http.Handler) http.Handler
	// Auth wraps the admin routes; nil leaves them open (tests only).
	Auth func(http.Handler) http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	if d.Logger != nil {
		r.Use(mw.Observability(d.Logger))
	}

	if d.RateLimit == nil {
		d.RateLimit = passthrough
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	r.Group(func(r chi.Router) {
		r.Use(d.RateLimit)

		r.Post("/auth/register", d.Users.Register)
		r.Post("/auth/login", d.Users.Login)

		r.Post("/addresses", d.Addresses.Create)
		r.Post("/packages", d.Packages.Create)
		r.Post("/orders", d.Orders.Create)
		r.Post("/shipments", d.Shipments.Create)
		r.Post("/tracking", d.Tracking.Create)
		r.Post("/pricing/estimate", d.Pricing.Estimate)
	})

	r.Get("/addresses/{id}", d.Addresses.GetByID)
	r.Get("/packages/{id}", d.Packages.GetByID)
	r.Get("/orders", d.Orders.List)
	r.Get("/orders/{id}", d.Orders.GetByID)
	r.Get("/orders/{id}/tracking", d.Tracking.History)
	r.Get("/orders/number/{number}", d.Orders.GetByNumber)

	r.Route("/admin", func(r chi.Router) {
		if d.Auth != nil {
			r.Use(d.Auth)
			r.Use(mw.RequireRole(domain.RoleAdmin))
		}

		r.Post("/schema", d.Admin.Bootstrap)
		r.Post("/seed", d.Admin.Seed)
		r.Post("/reset", d.Admin.Reset)
	})

	return r
}

func passthrough(next http.Handler) http.Handler { return next }
