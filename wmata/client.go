package wmata

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.wmata.com"

const maxAttempts = 3

// Client is a simple HTTP client for the WMATA bus API.
type Client struct {
	// BaseURL may be overridden for tests; defaults to the public API.
	BaseURL string

	apiKey     string
	httpClient *http.Client
	backoff    time.Duration
}

// NewClient creates a WMATA API client authenticated with apiKey.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		backoff:    time.Second,
	}
}

// SetTimeout overrides the default 30 second request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// get performs an authenticated GET with retries and exponential backoff,
// decoding the JSON body into v.
func (c *Client) get(path string, v any) error {
	url := c.BaseURL + path
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(c.backoff << (attempt - 1))
		}
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("api_key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.Printf("wmata: attempt %d failed for %s: %v", attempt+1, path, err)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			log.Printf("wmata: attempt %d failed for %s: %v", attempt+1, path, err)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, path)
			log.Printf("wmata: attempt %d failed: %v", attempt+1, lastErr)
			continue
		}
		return json.Unmarshal(body, v)
	}
	return fmt.Errorf("wmata %s: %w", path, lastErr)
}

// BusPositions fetches all current bus positions with deviation data.
func (c *Client) BusPositions() ([]BusPosition, error) {
	var out busPositionsResponse
	if err := c.get("/Bus.svc/json/jBusPositions", &out); err != nil {
		return nil, err
	}
	return out.BusPositions, nil
}

// Stops fetches all bus stops.
func (c *Client) Stops() ([]Stop, error) {
	var out stopsResponse
	if err := c.get("/Bus.svc/json/jStops", &out); err != nil {
		return nil, err
	}
	return out.Stops, nil
}

// Routes fetches all bus routes.
func (c *Client) Routes() ([]Route, error) {
	var out routesResponse
	if err := c.get("/Bus.svc/json/jRoutes", &out); err != nil {
		return nil, err
	}
	return out.Routes, nil
}
