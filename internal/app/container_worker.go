package app

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"shipping-service/internal/config"
	"shipping-service/internal/logx"
	"shipping-service/internal/service/courierevents"
	"shipping-service/internal/service/tracking"
	"shipping-service/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the container for the courier feed worker.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	b := NewContainerBuilder()
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
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
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(svc *tracking.Service, logger logx.Logger) *courierevents.Processor {
			return courierevents.NewProcessor(svc, logger)
		},
		makeCourierKafka,
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
		},
	)
}

func makeCourierKafka(p *courierevents.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event courierevents.Event) error {
		return p.Handle(ctx, event)
	}
}
