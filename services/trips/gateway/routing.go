package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
	nrpkg "github.com/trailyn/transport/internal/pkg/newrelic"
	"github.com/trailyn/transport/services/trips"
)

// RoutingGW calls the external routing engine over HTTP. The engine is slow
// (seconds) and opaque; one attempt per call, retry policy belongs to the
// caller.
type RoutingGW struct {
	baseURL string
	client  *http.Client
}

// NewRoutingGW creates a new routing engine gateway
func NewRoutingGW(baseURL string) trips.RouteGW {
	return &RoutingGW{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type routeRequest struct {
	TripID  string               `json:"trip_id"`
	Seed    models.Location      `json:"seed"`
	Pickups []models.RoutePickup `json:"pickups"`
}

type routeResponse struct {
	Polyline         string  `json:"polyline"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Stops            []struct {
		SequenceIndex   int        `json:"sequence_index"`
		Latitude        float64    `json:"latitude"`
		Longitude       float64    `json:"longitude"`
		Address         string     `json:"address"`
		ExpectedArrival *time.Time `json:"expected_arrival,omitempty"`
		ConfirmationID  string     `json:"confirmation_id"`
	} `json:"stops"`
}

// GenerateRoute asks the routing engine to order the confirmed pickups from
// the seed point and returns the resulting route artifact.
func (g *RoutingGW) GenerateRoute(ctx context.Context, tripID uuid.UUID, seed models.Location, pickups []models.RoutePickup) (*models.Route, error) {
	body, err := json.Marshal(routeRequest{
		TripID:  tripID.String(),
		Seed:    seed,
		Pickups: pickups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal route request: %w", err)
	}

	url := g.baseURL + "/v1/routes"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build route request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return g.client.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("routing engine request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("routing engine returned %d: %s", resp.StatusCode, string(payload))
	}

	var out routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode route response: %w", err)
	}

	route := &models.Route{
		TripID:           tripID,
		EncodedPolyline:  out.Polyline,
		TotalDistanceKm:  out.TotalDistanceKm,
		EstimatedMinutes: out.EstimatedMinutes,
	}
	for _, s := range out.Stops {
		confirmationID, err := uuid.Parse(s.ConfirmationID)
		if err != nil {
			return nil, fmt.Errorf("routing engine returned invalid confirmation id %q: %w", s.ConfirmationID, err)
		}
		route.Stops = append(route.Stops, models.Stop{
			SequenceIndex:   s.SequenceIndex,
			Latitude:        s.Latitude,
			Longitude:       s.Longitude,
			Address:         s.Address,
			ExpectedArrival: s.ExpectedArrival,
			ConfirmationID:  confirmationID,
			State:           models.StopStatePending,
		})
	}
	return route, nil
}
