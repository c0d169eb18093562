package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPGateway_Distance_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("from_lat") != "39.7817" || q.Get("to_long") != "-87.6298" {
			t.Fatalf("coordinates not passed through: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"distance_km": 287.5, "duration_seconds": 11400}`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, srv.Client())

	route, err := g.Distance(context.Background(), 39.7817, -89.6501, 41.8781, -87.6298)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.DistanceKm != 287.5 {
		t.Fatalf("expected 287.5 km, got %v", route.DistanceKm)
	}
	if route.Duration != 11400*time.Second {
		t.Fatalf("expected 11400s, got %v", route.Duration)
	}
}

func TestHTTPGateway_Distance_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, srv.Client())

	_, err := g.Distance(context.Background(), 0, 0, 1, 1)
	statusErr, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", statusErr.Code)
	}
}

func TestHTTPGateway_Distance_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, srv.Client())

	if _, err := g.Distance(context.Background(), 0, 0, 1, 1); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewHTTPGateway_EmptyBaseURL(t *testing.T) {
	t.Parallel()

	if g := NewHTTPGateway("", nil); g != nil {
		t.Fatal("expected nil gateway for empty base URL")
	}
}
