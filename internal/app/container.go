package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"shipping-service/internal/config"
	"shipping-service/internal/http/handlers"
	"shipping-service/internal/http/middleware"
	"shipping-service/internal/http/middleware/ratelimit"
	"shipping-service/internal/http/pprofserver"
	"shipping-service/internal/http/router"
	"shipping-service/internal/logx"
	"shipping-service/internal/repository"
	"shipping-service/internal/service/maintenance"
	"shipping-service/internal/service/pricing"
	"shipping-service/internal/service/shipment"
	"shipping-service/internal/service/tracking"
	"shipping-service/internal/service/user"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewAddressRepo,
		repository.NewPackageRepo,
		repository.NewOrderRepo,
		repository.NewTrackingRepo,
		repository.NewPricingRepo,
		repository.NewUserRepo,
		repository.NewSchemaRepo,
		repository.NewSeedRepo,
		func() time.Duration { return 3 * time.Second },
		newRoutingGateway,
		func(
			a *repository.AddressRepo,
			p *repository.PackageRepo,
			o *repository.OrderRepo,
			timeout time.Duration,
			logger logx.Logger,
		) *shipment.Service {
			return shipment.NewService(a, p, o, timeout, logger)
		},
		func(
			o *repository.OrderRepo,
			t *repository.TrackingRepo,
			timeout time.Duration,
			logger logx.Logger,
		) *tracking.Service {
			return tracking.NewService(o, t, timeout, logger)
		},
		func(in pricingIn) *pricing.Service {
			if in.Router == nil {
				// avoid a typed-nil gateway behind the interface
				return pricing.NewService(in.Addresses, in.Rules, nil, in.Timeout, in.Logger)
			}
			return pricing.NewService(in.Addresses, in.Rules, in.Router, in.Timeout, in.Logger)
		},
		func(
			r *repository.UserRepo,
			cfg *config.Config,
			timeout time.Duration,
			logger logx.Logger,
		) *user.Service {
			return user.NewService(r, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, timeout, logger)
		},
		func(
			schema *repository.SchemaRepo,
			seed *repository.SeedRepo,
			logger logx.Logger,
		) *maintenance.Service {
			return maintenance.NewService(schema, seed, 30*time.Second, logger)
		},
	)
}

type routerIn struct {
	dig.In

	Base      *handlers.Handlers
	Addresses *handlers.AddressHandler
	Packages  *handlers.PackageHandler
	Orders    *handlers.OrderHandler
	Tracking  *handlers.TrackingHandler
	Shipments *handlers.ShipmentHandler
	Pricing   *handlers.PricingHandler
	Users     *handlers.UserHandler
	Admin     *handlers.AdminHandler

	Logger    logx.Logger
	RateLimit *ratelimit.Middleware
	AuthSvc   *user.Service
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	routerProvider := func(in routerIn) http.Handler {
		return router.New(router.Deps{
			Base:      in.Base,
			Addresses: in.Addresses,
			Packages:  in.Packages,
			Orders:    in.Orders,
			Tracking:  in.Tracking,
			Shipments: in.Shipments,
			Pricing:   in.Pricing,
			Users:     in.Users,
			Admin:     in.Admin,
			Logger:    in.Logger,
			RateLimit: in.RateLimit.Handler(),
			Auth:      middleware.Auth(in.Logger, in.AuthSvc),
		})
	}
	return provideAll(container,
		handlers.New,
		handlers.NewPricingUsecase,
		handlers.NewUserUsecase,
		handlers.NewMaintenanceUsecase,
		newAddressHandler,
		newPackageHandler,
		newOrderHandler,
		newTrackingHandler,
		newShipmentHandler,
		handlers.NewPricingHandler,
		handlers.NewUserHandler,
		handlers.NewAdminHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
		newPprofServer,
	)
}

type pprofServerOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

// newPprofServer provides the pprof listener, nil when disabled.
func newPprofServer(cfg *config.Config) pprofServerOut {
	if cfg.PprofPort <= 0 {
		return pprofServerOut{}
	}
	return pprofServerOut{Server: &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.PprofPort),
		Handler:           pprofserver.Handler(pprofserver.Config{}),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}
