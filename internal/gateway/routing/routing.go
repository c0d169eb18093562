package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Route is a computed route between two coordinates.
type Route struct {
	DistanceKm float64
	Duration   time.Duration
}

// HTTPGateway is a routing gateway backed by an external routing service.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway creates a routing gateway backed by HTTP.
func NewHTTPGateway(baseURL string, client *http.Client) *HTTPGateway {
	if baseURL == "" {
		return nil
	}
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &HTTPGateway{baseURL: baseURL, client: client}
}

type routeResponse struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Distance fetches the driving route between two coordinate pairs.
func (g *HTTPGateway) Distance(ctx context.Context, fromLat, fromLong, toLat, toLong float64) (*Route, error) {
	q := url.Values{}
	q.Set("from_lat", strconv.FormatFloat(fromLat, 'f', -1, 64))
	q.Set("from_long", strconv.FormatFloat(fromLong, 'f', -1, 64))
	q.Set("to_lat", strconv.FormatFloat(toLat, 'f', -1, 64))
	q.Set("to_long", strconv.FormatFloat(toLong, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/route?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("routing gateway: build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("routing gateway: decode response: %w", err)
	}

	return &Route{
		DistanceKm: body.DistanceKm,
		Duration:   time.Duration(body.DurationSeconds * float64(time.Second)),
	}, nil
}

// StatusError is a non-200 response from the routing service.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("routing gateway: unexpected status %d", e.Code)
}
