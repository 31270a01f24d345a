// internal/geocode/client.go
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Defaults for the Nominatim client.
const (
	DefaultEndpoint  = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "photorename/1.0"
	DefaultZoom      = 8 // city/region level, not street level
	DefaultTimeout   = 10 * time.Second
)

// Config configures the reverse geocoding client.
type Config struct {
	Endpoint  string
	UserAgent string
	Zoom      int
	Timeout   time.Duration
}

// Client resolves coordinates to place names through the Nominatim
// reverse geocoding API.
type Client struct {
	endpoint   string
	userAgent  string
	zoom       int
	httpClient *http.Client
}

// New creates a reverse geocoding client.
func New(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Zoom == 0 {
		cfg.Zoom = DefaultZoom
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		userAgent: cfg.UserAgent,
		zoom:      cfg.Zoom,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Reverse returns a short place label for the coordinates: the first
// comma-delimited segment of the resolved address, or the whole address
// when it has a single segment.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))
	params.Set("zoom", strconv.Itoa(c.zoom))
	params.Set("accept-language", "en")

	reqURL := c.endpoint + "/reverse?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	// Nominatim usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var rr reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if rr.DisplayName == "" {
		return "", fmt.Errorf("no address found for %.6f, %.6f", lat, lon)
	}

	segment, _, _ := strings.Cut(rr.DisplayName, ",")
	return strings.TrimSpace(segment), nil
}
