package maintenance

import (
	"context"
	"time"

	"shipping-service/internal/logx"
)

type schemaRepository interface {
	EnsureSchema(ctx context.Context) error
	Reset(ctx context.Context) error
}

type seedRepository interface {
	Seed(ctx context.Context) error
}

// Service drives schema bootstrap, fixture seeding and database reset.
// All three operations are idempotent, so rerunning any of them is safe.
type Service struct {
	schema           schemaRepository
	seed             seedRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a maintenance Service.
func NewService(schema schemaRepository, seed seedRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{schema: schema, seed: seed, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Bootstrap creates the schema objects that do not yet exist.
func (s *Service) Bootstrap(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.schema.EnsureSchema(ctx); err != nil {
		return err
	}
	s.logger.Info("schema ensured", logx.String("event", "schema_ensured"))
	return nil
}

// Seed loads the development fixtures.
func (s *Service) Seed(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.seed.Seed(ctx); err != nil {
		return err
	}
	s.logger.Info("fixtures seeded", logx.String("event", "fixtures_seeded"))
	return nil
}

// Reset empties every table.
func (s *Service) Reset(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.schema.Reset(ctx); err != nil {
		return err
	}
	s.logger.Warn("database reset", logx.String("event", "database_reset"))
	return nil
}
