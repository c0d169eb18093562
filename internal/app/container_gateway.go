package app

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shipping-service/internal/config"
	"shipping-service/internal/gateway/routing"
	"shipping-service/internal/logx"
	"shipping-service/internal/repository"
)

type routingGatewayIn struct {
	dig.In

	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

// newRoutingGateway provides the distance gateway, nil when no routing
// service is configured. Price estimates then fall back to straight-line
// distance.
func newRoutingGateway(in routingGatewayIn) *routing.RetryingGateway {
	base := in.Cfg.Routing.BaseURL
	if base == "" {
		return nil
	}
	gw := routing.NewHTTPGateway(base, &http.Client{Timeout: 5 * time.Second})
	return routing.NewRetryingGateway(gw, in.Logger, in.Retries, routing.RetryConfig{
		MaxAttempts: in.Cfg.Routing.MaxAttempts,
		BaseDelay:   in.Cfg.Routing.BaseDelay,
		MaxDelay:    in.Cfg.Routing.MaxDelay,
	})
}

type pricingIn struct {
	dig.In

	Addresses *repository.AddressRepo
	Rules     *repository.PricingRepo
	Router    *routing.RetryingGateway
	Timeout   time.Duration
	Logger    logx.Logger
}
