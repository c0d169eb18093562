package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/service/shipment"
)

func validShipmentForm() url.Values {
	return url.Values{
		"pickup.street":    {"1 First St"},
		"pickup.city":      {"Springfield"},
		"pickup.state":     {"IL"},
		"pickup.zipCode":   {"62701"},
		"delivery.street":  {"2 Second St"},
		"delivery.city":    {"Chicago"},
		"delivery.state":   {"IL"},
		"delivery.zipCode": {"60601"},
		"package.type":     {"SMALL_PACKAGE"},
		"package.weightKg": {"1.5"},
		"customerId":       {uuidCustomer},
		"priority":         {"STANDARD"},
		"estimatedPrice":   {"18.90"},
	}
}

func TestShipmentHandler_Create_OK(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		createShipmentFn: func(ctx context.Context, in shipment.ShipmentInput) (*domain.Order, error) {
			require.Equal(t, "1 First St", in.Pickup.Street)
			require.Equal(t, "Chicago", in.Delivery.City)
			require.Equal(t, domain.PackageSmall, in.Package.Type)
			require.Equal(t, uuidCustomer, in.CustomerID)
			require.Equal(t, domain.PriorityStandard, in.Priority)
			require.InDelta(t, 18.90, in.EstimatedPrice, 0.001)
			return &domain.Order{
				ID:             uuidOrder,
				OrderNumber:    "ORD-20260831-0000DDDD",
				Status:         domain.StatusPending,
				Priority:       in.Priority,
				CustomerID:     in.CustomerID,
				EstimatedPrice: in.EstimatedPrice,
			}, nil
		},
	}

	created := &countingStub{}
	h := NewShipmentHandler(uc, created)

	rr := httptest.NewRecorder()
	h.Create(rr, formRequest("/shipments", validShipmentForm()))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/orders/"+uuidOrder, rr.Header().Get("Location"))
	assert.Equal(t, 1, created.n)

	var resp orderResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ORD-20260831-0000DDDD", resp.OrderNumber)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestShipmentHandler_Create_NestedFieldErrors(t *testing.T) {
	t.Parallel()

	vals := validShipmentForm()
	vals.Del("pickup.street")
	vals.Set("package.weightKg", "0")

	h := NewShipmentHandler(&stubShipmentUsecase{}, &countingStub{})

	rr := httptest.NewRecorder()
	h.Create(rr, formRequest("/shipments", vals))

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp fieldErrResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Contains(t, resp.Fields, "pickup.street", "nested errors keep their section prefix")
	assert.Contains(t, resp.Fields, "package.weightKg")
}

func TestShipmentHandler_Create_MissingOrderFields(t *testing.T) {
	t.Parallel()

	vals := validShipmentForm()
	vals.Del("customerId")
	vals.Del("estimatedPrice")

	h := NewShipmentHandler(&stubShipmentUsecase{}, &countingStub{})

	rr := httptest.NewRecorder()
	h.Create(rr, formRequest("/shipments", vals))

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp fieldErrResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Contains(t, resp.Fields, "customerId")
	assert.Contains(t, resp.Fields, "estimatedPrice")
}

func TestShipmentHandler_Create_Conflict(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		createShipmentFn: func(ctx context.Context, in shipment.ShipmentInput) (*domain.Order, error) {
			return nil, apperr.ErrConflict
		},
	}

	created := &countingStub{}
	h := NewShipmentHandler(uc, created)

	rr := httptest.NewRecorder()
	h.Create(rr, formRequest("/shipments", validShipmentForm()))

	require.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error": "conflicting references"}`, rr.Body.String())
	assert.Zero(t, created.n)
}
