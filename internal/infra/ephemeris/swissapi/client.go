package swissapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client fetches Sun/Moon ecliptic longitudes from a Swiss-Ephemeris-backed
// HTTP service. The service is expected to apply the sidereal (Lahiri)
// correction itself and serve longitudes in degrees.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Positions retrieves the longitudes for an instant and observer position.
func (c *Client) Positions(ctx context.Context, at time.Time, lat, lon float64) (sun, moon float64, err error) {
	query := url.Values{}
	query.Set("at", at.UTC().Format(time.RFC3339))
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	endpoint := fmt.Sprintf("%s/positions?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("build positions request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("positions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return 0, 0, fmt.Errorf("positions request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("read positions response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, 0, fmt.Errorf("decode positions response: %w", err)
	}
	if raw.Error != "" {
		return 0, 0, fmt.Errorf("ephemeris api error: %s", raw.Error)
	}
	if raw.SunLongitude == nil || raw.MoonLongitude == nil {
		return 0, 0, fmt.Errorf("positions response missing longitudes")
	}
	return *raw.SunLongitude, *raw.MoonLongitude, nil
}

type apiResponse struct {
	SunLongitude  *float64 `json:"sunLongitude"`
	MoonLongitude *float64 `json:"moonLongitude"`
	Obliquity     *float64 `json:"obliquity"`
	Error         string   `json:"error"`
}
