package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shipping-service/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal    prometheus.Counter `name:"gateway_retries_total"`
	OrdersCreatedTotal     prometheus.Counter `name:"orders_created_total"`
	TrackingEventsTotal    prometheus.Counter `name:"tracking_events_total"`
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

// provideMetrics registers the service counters in the default registry.
// Re-registration (tests rebuilding the container) reuses the existing
// collector instead of failing.
func provideMetrics() (metricsOut, error) {
	out := metricsOut{}

	rl, err := registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return out, err
	}
	gr, err := registerCounter("gateway_retries_total", metrics.NewGatewayRetriesTotal())
	if err != nil {
		return out, err
	}
	oc, err := registerCounter("orders_created_total", metrics.NewOrdersCreatedTotal())
	if err != nil {
		return out, err
	}
	te, err := registerCounter("tracking_events_total", metrics.NewTrackingEventsTotal())
	if err != nil {
		return out, err
	}

	out.RateLimitExceededTotal = rl
	out.GatewayRetriesTotal = gr
	out.OrdersCreatedTotal = oc
	out.TrackingEventsTotal = te
	return out, nil
}

func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
