package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/service/shipment"
)

const (
	uuidCustomer = "11111111-1111-4111-8111-111111111111"
	uuidPickup   = "22222222-2222-4222-8222-222222222222"
	uuidDelivery = "33333333-3333-4333-8333-333333333333"
	uuidPackage  = "44444444-4444-4444-8444-444444444444"
	uuidOrder    = "55555555-5555-4555-8555-555555555555"
)

type stubShipmentUsecase struct {
	createAddressFn    func(ctx context.Context, a *domain.Address) (string, error)
	getAddressFn       func(ctx context.Context, id string) (*domain.Address, error)
	createPackageFn    func(ctx context.Context, p *domain.Package) (string, error)
	getPackageFn       func(ctx context.Context, id string) (*domain.Package, error)
	createOrderFn      func(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
	createShipmentFn   func(ctx context.Context, in shipment.ShipmentInput) (*domain.Order, error)
	getOrderFn         func(ctx context.Context, id string) (*domain.Order, error)
	getOrderByNumberFn func(ctx context.Context, number string) (*domain.Order, error)
	listOrdersFn       func(ctx context.Context, customerID string, limit, offset *int) ([]domain.Order, error)
}

func (s *stubShipmentUsecase) CreateAddress(ctx context.Context, a *domain.Address) (string, error) {
	if s.createAddressFn == nil {
		panic("CreateAddress not expected in this test")
	}
	return s.createAddressFn(ctx, a)
}

func (s *stubShipmentUsecase) GetAddress(ctx context.Context, id string) (*domain.Address, error) {
	if s.getAddressFn == nil {
		panic("GetAddress not expected in this test")
	}
	return s.getAddressFn(ctx, id)
}

func (s *stubShipmentUsecase) CreatePackage(ctx context.Context, p *domain.Package) (string, error) {
	if s.createPackageFn == nil {
		panic("CreatePackage not expected in this test")
	}
	return s.createPackageFn(ctx, p)
}

func (s *stubShipmentUsecase) GetPackage(ctx context.Context, id string) (*domain.Package, error) {
	if s.getPackageFn == nil {
		panic("GetPackage not expected in this test")
	}
	return s.getPackageFn(ctx, id)
}

func (s *stubShipmentUsecase) CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	if s.createOrderFn == nil {
		panic("CreateOrder not expected in this test")
	}
	return s.createOrderFn(ctx, in)
}

func (s *stubShipmentUsecase) CreateShipment(ctx context.Context, in shipment.ShipmentInput) (*domain.Order, error) {
	if s.createShipmentFn == nil {
		panic("CreateShipment not expected in this test")
	}
	return s.createShipmentFn(ctx, in)
}

func (s *stubShipmentUsecase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if s.getOrderFn == nil {
		panic("GetOrder not expected in this test")
	}
	return s.getOrderFn(ctx, id)
}

func (s *stubShipmentUsecase) GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	if s.getOrderByNumberFn == nil {
		panic("GetOrderByNumber not expected in this test")
	}
	return s.getOrderByNumberFn(ctx, number)
}

func (s *stubShipmentUsecase) ListOrders(ctx context.Context, customerID string, limit, offset *int) ([]domain.Order, error) {
	if s.listOrdersFn == nil {
		panic("ListOrders not expected in this test")
	}
	return s.listOrdersFn(ctx, customerID, limit, offset)
}

// countingStub records handler-side metric increments.
type countingStub struct{ n int }

func (c *countingStub) Inc() { c.n++ }

func formRequest(target string, vals url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withURLParam(req *http.Request, name, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func validOrderForm() url.Values {
	return url.Values{
		"pickupAddressId":   {uuidPickup},
		"deliveryAddressId": {uuidDelivery},
		"packageId":         {uuidPackage},
		"customerId":        {uuidCustomer},
		"priority":          {"EXPRESS"},
		"estimatedPrice":    {"42.50"},
	}
}

func TestOrderHandler_Create_OK(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		createOrderFn: func(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
			require.Equal(t, uuidCustomer, in.CustomerID)
			require.Equal(t, uuidPackage, in.PackageID)
			require.Equal(t, domain.PriorityExpress, in.Priority)
			require.InDelta(t, 42.50, in.EstimatedPrice, 0.001)
			return &domain.Order{
				ID:                uuidOrder,
				OrderNumber:       "ORD-20260831-0000AAAA",
				Status:            domain.StatusPending,
				Priority:          in.Priority,
				CustomerID:        in.CustomerID,
				PickupAddressID:   in.PickupAddressID,
				DeliveryAddressID: in.DeliveryAddressID,
				PackageID:         in.PackageID,
				EstimatedPrice:    in.EstimatedPrice,
			}, nil
		},
	}

	created := &countingStub{}
	h := NewOrderHandler(uc, created)

	rr := httptest.NewRecorder()
	h.Create(rr, formRequest("/orders", validOrderForm()))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/orders/"+uuidOrder, rr.Header().Get("Location"))
	assert.Equal(t, 1, created.n)

	var resp orderResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, uuidOrder, resp.ID)
	assert.Equal(t, "ORD-20260831-0000AAAA", resp.OrderNumber)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestOrderHandler_Create_ValidationErrors(t *testing.T) {
	t.Parallel()

	vals := validOrderForm()
	vals.Set("pickupAddressId", "not-a-uuid")
	vals.Del("estimatedPrice")

	h := NewOrderHandler(&stubShipmentUsecase{}, &countingStub{})

	rr := httptest.NewRecorder()
	h.Create(rr, formRequest("/orders", vals))

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp fieldErrResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Contains(t, resp.Fields, "pickupAddressId")
	assert.Contains(t, resp.Fields, "estimatedPrice")
}

func TestOrderHandler_Create_Conflict(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		createOrderFn: func(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
			return nil, apperr.ErrConflict
		},
	}

	created := &countingStub{}
	h := NewOrderHandler(uc, created)

	rr := httptest.NewRecorder()
	h.Create(rr, formRequest("/orders", validOrderForm()))

	require.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error": "package already has an order or a reference is missing"}`, rr.Body.String())
	assert.Zero(t, created.n, "counter must not move on failure")
}

func TestOrderHandler_Create_InternalError(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		createOrderFn: func(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
			return nil, errors.New("boom")
		},
	}

	h := NewOrderHandler(uc, &countingStub{})

	rr := httptest.NewRecorder()
	h.Create(rr, formRequest("/orders", validOrderForm()))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "internal error"}`, rr.Body.String())
}

func TestOrderHandler_GetByID_OK(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		getOrderFn: func(ctx context.Context, id string) (*domain.Order, error) {
			require.Equal(t, uuidOrder, id)
			return &domain.Order{ID: id, OrderNumber: "ORD-20260831-0000BBBB", Status: domain.StatusInTransit}, nil
		},
	}

	h := NewOrderHandler(uc, &countingStub{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/orders/"+uuidOrder, nil), "id", uuidOrder)
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp orderResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "IN_TRANSIT", resp.Status)
}

func TestOrderHandler_GetByID_InvalidID(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(&stubShipmentUsecase{}, &countingStub{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/orders/abc", nil), "id", "abc")
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid id"}`, rr.Body.String())
}

func TestOrderHandler_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		getOrderFn: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, apperr.ErrNotFound
		},
	}

	h := NewOrderHandler(uc, &countingStub{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/orders/"+uuidOrder, nil), "id", uuidOrder)
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "not found"}`, rr.Body.String())
}

func TestOrderHandler_GetByNumber_OK(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		getOrderByNumberFn: func(ctx context.Context, number string) (*domain.Order, error) {
			require.Equal(t, "ORD-20260831-0000CCCC", number)
			return &domain.Order{ID: uuidOrder, OrderNumber: number}, nil
		},
	}

	h := NewOrderHandler(uc, &countingStub{})

	req := withURLParam(
		httptest.NewRequest(http.MethodGet, "/orders/number/ORD-20260831-0000CCCC", nil),
		"number", "ORD-20260831-0000CCCC")
	rr := httptest.NewRecorder()
	h.GetByNumber(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp orderResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ORD-20260831-0000CCCC", resp.OrderNumber)
}

func TestOrderHandler_GetByNumber_Missing(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(&stubShipmentUsecase{}, &countingStub{})

	rr := httptest.NewRecorder()
	h.GetByNumber(rr, httptest.NewRequest(http.MethodGet, "/orders/number/", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid order number"}`, rr.Body.String())
}

func TestOrderHandler_List_OK(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		listOrdersFn: func(ctx context.Context, customerID string, limit, offset *int) ([]domain.Order, error) {
			require.Equal(t, uuidCustomer, customerID)
			require.NotNil(t, limit)
			require.Equal(t, 2, *limit)
			require.NotNil(t, offset)
			require.Equal(t, 1, *offset)
			return []domain.Order{
				{ID: uuidOrder, CustomerID: customerID},
				{ID: uuidPackage, CustomerID: customerID},
			}, nil
		},
	}

	h := NewOrderHandler(uc, &countingStub{})

	target := "/orders?customerId=" + uuidCustomer + "&limit=2&offset=1"
	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []orderResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, uuidOrder, resp[0].ID)
}

func TestOrderHandler_List_MissingCustomer(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(&stubShipmentUsecase{}, &countingStub{})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "customerId is required"}`, rr.Body.String())
}

func TestOrderHandler_List_InvalidLimit(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(&stubShipmentUsecase{}, &countingStub{})

	target := "/orders?customerId=" + uuidCustomer + "&limit=-1"
	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid limit"}`, rr.Body.String())
}
