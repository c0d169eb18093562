package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/logx"
	"shipping-service/internal/ports/shipmenttx"
)

type mockTx struct {
	order          *domain.Order
	getErr         error
	updatedTo      *domain.OrderStatus
	insertedEvents []*domain.TrackingEvent
	insertErr      error
	updateErr      error
}

func (m *mockTx) InsertAddress(ctx context.Context, a *domain.Address) error { return nil }
func (m *mockTx) InsertPackage(ctx context.Context, p *domain.Package) error { return nil }
func (m *mockTx) InsertOrder(ctx context.Context, o *domain.Order) error     { return nil }

func (m *mockTx) GetOrderForUpdate(ctx context.Context, orderID string) (*domain.Order, error) {
	return m.order, m.getErr
}

func (m *mockTx) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedTo = &status
	return nil
}

func (m *mockTx) InsertTrackingEvent(ctx context.Context, e *domain.TrackingEvent) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedEvents = append(m.insertedEvents, e)
	return nil
}

type mockRunner struct {
	tx        *mockTx
	committed bool
}

func (m *mockRunner) WithTx(ctx context.Context, fn func(tx shipmenttx.Repository) error) error {
	if err := fn(m.tx); err != nil {
		return err
	}
	m.committed = true
	return nil
}

type mockEventsRepo struct {
	listFn func(ctx context.Context, orderID string) ([]domain.TrackingEvent, error)
}

func (m *mockEventsRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.TrackingEvent, error) {
	return m.listFn(ctx, orderID)
}

const (
	testOrderID   = "0d9f3a22-6c5b-4e8d-9a1f-4b3c2d1e0f11"
	testCourierID = "7c6b5a44-3d2e-4f1a-8b9c-0d1e2f3a4b12"
)

func event(status domain.OrderStatus) *domain.TrackingEvent {
	return &domain.TrackingEvent{
		OrderID:   testOrderID,
		Status:    status,
		UpdatedBy: testCourierID,
	}
}

func TestService_Record_AdvancesStatus(t *testing.T) {
	t.Parallel()

	tx := &mockTx{order: &domain.Order{ID: testOrderID, Status: domain.StatusPending}}
	runner := &mockRunner{tx: tx}

	service := NewService(runner, nil, time.Second, logx.Nop())

	if err := service.Record(context.Background(), event(domain.StatusAccepted)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !runner.committed {
		t.Fatal("expected tx to commit")
	}
	if tx.updatedTo == nil || *tx.updatedTo != domain.StatusAccepted {
		t.Fatalf("expected order advanced to ACCEPTED, got %v", tx.updatedTo)
	}
	if len(tx.insertedEvents) != 1 {
		t.Fatalf("expected 1 event inserted, got %d", len(tx.insertedEvents))
	}
}

func TestService_Record_SameStatusDoesNotUpdateOrder(t *testing.T) {
	t.Parallel()

	tx := &mockTx{order: &domain.Order{ID: testOrderID, Status: domain.StatusInTransit}}
	runner := &mockRunner{tx: tx}

	service := NewService(runner, nil, time.Second, logx.Nop())

	if err := service.Record(context.Background(), event(domain.StatusInTransit)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.updatedTo != nil {
		t.Fatalf("order status must not change on a repeat event, got %v", *tx.updatedTo)
	}
	if len(tx.insertedEvents) != 1 {
		t.Fatalf("expected progress event inserted, got %d", len(tx.insertedEvents))
	}
}

func TestService_Record_IllegalTransitionRejected(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		from domain.OrderStatus
		to   domain.OrderStatus
	}{
		{"skipping ahead", domain.StatusPending, domain.StatusDelivered},
		{"moving backwards", domain.StatusInTransit, domain.StatusAccepted},
		{"after delivered", domain.StatusDelivered, domain.StatusInTransit},
		{"after cancelled", domain.StatusCancelled, domain.StatusAccepted},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := &mockTx{order: &domain.Order{ID: testOrderID, Status: tc.from}}
			runner := &mockRunner{tx: tx}

			service := NewService(runner, nil, time.Second, logx.Nop())

			err := service.Record(context.Background(), event(tc.to))
			if !errors.Is(err, apperr.ErrConflict) {
				t.Fatalf("expected ErrConflict, got %v", err)
			}
			if runner.committed {
				t.Fatal("tx must not commit on an illegal transition")
			}
			if len(tx.insertedEvents) != 0 {
				t.Fatal("no event may be recorded on an illegal transition")
			}
		})
	}
}

func TestService_Record_CancelFromAnyActiveStatus(t *testing.T) {
	t.Parallel()

	for _, from := range []domain.OrderStatus{
		domain.StatusPending, domain.StatusAccepted, domain.StatusPickedUp,
		domain.StatusInTransit, domain.StatusOutForDelivery,
	} {
		tx := &mockTx{order: &domain.Order{ID: testOrderID, Status: from}}
		runner := &mockRunner{tx: tx}

		service := NewService(runner, nil, time.Second, logx.Nop())

		if err := service.Record(context.Background(), event(domain.StatusCancelled)); err != nil {
			t.Fatalf("cancel from %s: unexpected error: %v", from, err)
		}
		if tx.updatedTo == nil || *tx.updatedTo != domain.StatusCancelled {
			t.Fatalf("cancel from %s: order not updated", from)
		}
	}
}

func TestService_Record_OrderNotFound(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{tx: &mockTx{order: nil}}
	service := NewService(runner, nil, time.Second, logx.Nop())

	err := service.Record(context.Background(), event(domain.StatusAccepted))
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Record_InvalidEvent(t *testing.T) {
	t.Parallel()

	service := NewService(&mockRunner{tx: &mockTx{}}, nil, time.Second, logx.Nop())

	cases := map[string]*domain.TrackingEvent{
		"nil event":       nil,
		"missing order":   {Status: domain.StatusAccepted, UpdatedBy: testCourierID},
		"missing updater": {OrderID: testOrderID, Status: domain.StatusAccepted},
		"bad status":      {OrderID: testOrderID, Status: "LOST", UpdatedBy: testCourierID},
	}

	for name, e := range cases {
		e := e
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if err := service.Record(context.Background(), e); !errors.Is(err, apperr.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestService_Record_InsertFailureAbortsTx(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("insert failed")
	tx := &mockTx{
		order:     &domain.Order{ID: testOrderID, Status: domain.StatusPending},
		insertErr: wantErr,
	}
	runner := &mockRunner{tx: tx}

	service := NewService(runner, nil, time.Second, logx.Nop())

	err := service.Record(context.Background(), event(domain.StatusAccepted))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected insert error, got %v", err)
	}
	if runner.committed {
		t.Fatal("tx must not commit when the event insert fails")
	}
}

func TestService_History_Success(t *testing.T) {
	t.Parallel()

	expected := []domain.TrackingEvent{
		{ID: "1", OrderID: testOrderID, Status: domain.StatusPending},
		{ID: "2", OrderID: testOrderID, Status: domain.StatusAccepted},
	}

	events := &mockEventsRepo{
		listFn: func(ctx context.Context, orderID string) ([]domain.TrackingEvent, error) {
			if orderID != testOrderID {
				t.Fatalf("expected order %s, got %s", testOrderID, orderID)
			}
			return expected, nil
		},
	}

	service := NewService(&mockRunner{tx: &mockTx{}}, events, time.Second, logx.Nop())

	got, err := service.History(context.Background(), testOrderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("expected %d events, got %d", len(expected), len(got))
	}
}

func TestService_History_EmptyOrderID(t *testing.T) {
	t.Parallel()

	service := NewService(&mockRunner{tx: &mockTx{}}, &mockEventsRepo{}, time.Second, logx.Nop())

	if _, err := service.History(context.Background(), ""); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
