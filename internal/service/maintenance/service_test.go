package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shipping-service/internal/logx"
)

type mockSchemaRepo struct {
	ensureErr   error
	resetErr    error
	ensureCalls int
	resetCalls  int
	lastCtx     context.Context
}

func (m *mockSchemaRepo) EnsureSchema(ctx context.Context) error {
	m.ensureCalls++
	m.lastCtx = ctx
	return m.ensureErr
}

func (m *mockSchemaRepo) Reset(ctx context.Context) error {
	m.resetCalls++
	m.lastCtx = ctx
	return m.resetErr
}

type mockSeedRepo struct {
	seedErr   error
	seedCalls int
}

func (m *mockSeedRepo) Seed(ctx context.Context) error {
	m.seedCalls++
	return m.seedErr
}

func TestService_Bootstrap(t *testing.T) {
	t.Parallel()

	schema := &mockSchemaRepo{}
	svc := NewService(schema, &mockSeedRepo{}, time.Second, logx.Nop())

	require.NoError(t, svc.Bootstrap(context.Background()))
	require.Equal(t, 1, schema.ensureCalls)

	_, hasDeadline := schema.lastCtx.Deadline()
	require.True(t, hasDeadline, "operations run under a timeout")
}

func TestService_Bootstrap_Error(t *testing.T) {
	t.Parallel()

	schema := &mockSchemaRepo{ensureErr: errors.New("ddl failed")}
	svc := NewService(schema, &mockSeedRepo{}, time.Second, logx.Nop())

	require.Error(t, svc.Bootstrap(context.Background()))
}

func TestService_Seed(t *testing.T) {
	t.Parallel()

	seed := &mockSeedRepo{}
	svc := NewService(&mockSchemaRepo{}, seed, time.Second, logx.Nop())

	require.NoError(t, svc.Seed(context.Background()))
	require.Equal(t, 1, seed.seedCalls)
}

func TestService_Seed_Error(t *testing.T) {
	t.Parallel()

	seed := &mockSeedRepo{seedErr: errors.New("insert failed")}
	svc := NewService(&mockSchemaRepo{}, seed, time.Second, logx.Nop())

	require.Error(t, svc.Seed(context.Background()))
}

func TestService_Reset(t *testing.T) {
	t.Parallel()

	schema := &mockSchemaRepo{}
	svc := NewService(schema, &mockSeedRepo{}, time.Second, logx.Nop())

	require.NoError(t, svc.Reset(context.Background()))
	require.Equal(t, 1, schema.resetCalls)
}

func TestService_Reset_Error(t *testing.T) {
	t.Parallel()

	schema := &mockSchemaRepo{resetErr: errors.New("truncate failed")}
	svc := NewService(schema, &mockSeedRepo{}, time.Second, logx.Nop())

	require.Error(t, svc.Reset(context.Background()))
}

func TestNewService_DefaultTimeout(t *testing.T) {
	t.Parallel()

	svc := NewService(&mockSchemaRepo{}, &mockSeedRepo{}, 0, logx.Nop())
	require.Equal(t, 30*time.Second, svc.operationTimeout)
}
