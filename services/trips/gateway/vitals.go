package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	nrpkg "github.com/trailyn/transport/internal/pkg/newrelic"
	"github.com/trailyn/transport/services/trips"
)

// VitalsBridgeGW asks the wearable companion bridge whether a driver's device
// is currently connected. Only consulted when the vitals policy gates are
// enabled.
type VitalsBridgeGW struct {
	baseURL string
	client  *http.Client
}

// NewVitalsBridgeGW creates a new vitals bridge gateway
func NewVitalsBridgeGW(baseURL string) trips.VitalsGW {
	return &VitalsBridgeGW{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// IsConnected reports wearable connectivity for a driver
func (g *VitalsBridgeGW) IsConnected(ctx context.Context, driverID uuid.UUID) (bool, error) {
	url := fmt.Sprintf("%s/v1/drivers/%s/connectivity", g.baseURL, driverID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build connectivity request: %w", err)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return g.client.Do(req)
	})
	if err != nil {
		return false, fmt.Errorf("vitals bridge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("vitals bridge returned %d", resp.StatusCode)
	}

	var out struct {
		Connected bool `json:"connected"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("failed to decode connectivity response: %w", err)
	}
	return out.Connected, nil
}
