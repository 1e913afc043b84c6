package data

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// RemoteClient fetches demand forecasts from a remote grid-operator
// forecast feed, adapted from the teacher's GridStatusClient
// (internal/data/gridstatus.go) for the unit-commitment domain: instead
// of LMP price intervals it returns demand-forecast intervals that can
// stand in for (or extend) a local demand.csv.
type RemoteClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewRemoteClient creates a new forecast-feed client. If baseURL is
// empty it defaults to the AEMO-style NEM demand forecast endpoint.
func NewRemoteClient(apiKey string, baseURL string) *RemoteClient {
	if baseURL == "" {
		baseURL = "https://api.nemweb.example/v1"
	}
	return &RemoteClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// QueryDemandForecastParams defines parameters for querying a demand
// forecast for a region over a time range.
type QueryDemandForecastParams struct {
	Region    string // e.g. "NSW1", "VIC1"
	StartTime time.Time
	EndTime   time.Time
	Resolution string // e.g. "30min" (default)
}

// DemandForecastInterval is one interval row of a forecast response.
type DemandForecastInterval struct {
	IntervalStartUTC time.Time `json:"interval_start_utc"`
	IntervalEndUTC   time.Time `json:"interval_end_utc"`
	Region           string    `json:"region"`
	DemandMW         float64   `json:"demand_mw"`
}

// DemandForecastResponse matches the JSON shape returned by the forecast
// feed, mirroring the teacher's GridStatusLMPResponse envelope.
type DemandForecastResponse struct {
	StatusCode int                       `json:"status_code"`
	Data       []DemandForecastInterval  `json:"data"`
}

// RemoteError represents an error returned by the forecast feed.
type RemoteError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string
}

func (e *RemoteError) Error() string { return e.Message }

// QueryDemandForecast fetches a demand forecast for a region and time
// range. Responses are cached (see cache.go) under the same development-
// only gating as the teacher's Grid Status cache.
func (c *RemoteClient) QueryDemandForecast(params QueryDemandForecastParams) (*DemandForecastResponse, error) {
	if err := c.validateAPIKey(); err != nil {
		return nil, err
	}

	cache := GetRemoteCache()
	if cache != nil {
		key := GenerateRemoteCacheKey(params)
		if cached, found := cache.Get(key); found {
			log.Printf("[remote] cache hit: %d intervals (region=%s, start=%s, end=%s)",
				len(cached.Data), params.Region,
				params.StartTime.Format("2006-01-02"), params.EndTime.Format("2006-01-02"))
			return cached, nil
		}
	}

	if params.Region == "" {
		return nil, fmt.Errorf("region is required")
	}
	if params.StartTime.IsZero() || params.EndTime.IsZero() {
		return nil, fmt.Errorf("start_time and end_time are required")
	}
	if params.StartTime.After(params.EndTime) {
		return nil, fmt.Errorf("start_time must be before end_time")
	}

	u, err := url.Parse(c.BaseURL + "/demand-forecast/" + params.Region)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("start_time", params.StartTime.Format(time.RFC3339))
	q.Set("end_time", params.EndTime.Format(time.RFC3339))
	if params.Resolution != "" {
		q.Set("resolution", params.Resolution)
	} else {
		q.Set("resolution", "30min")
	}
	u.RawQuery = q.Encode()

	log.Printf("[remote] request: GET %s (region=%s, start=%s, end=%s)",
		u.Path, params.Region,
		params.StartTime.Format("2006-01-02"), params.EndTime.Format("2006-01-02"))

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[remote] request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[remote] response: %d %s (duration: %v, region=%s)", resp.StatusCode, resp.Status, duration, params.Region)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, &RemoteError{StatusCode: resp.StatusCode, Code: "UNAUTHORIZED", Message: "unauthorized: invalid API key"}
	case http.StatusForbidden:
		return nil, &RemoteError{StatusCode: resp.StatusCode, Code: "INVALID_API_KEY", Message: "invalid API key or insufficient permissions"}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return nil, &RemoteError{StatusCode: resp.StatusCode, Code: "RATE_LIMIT_EXCEEDED", Message: fmt.Sprintf("rate limit exceeded, retry after %s", retryAfter), RetryAfter: retryAfter}
	default:
		return nil, &RemoteError{StatusCode: resp.StatusCode, Code: "API_ERROR", Message: fmt.Sprintf("forecast feed returned status %d: %s", resp.StatusCode, resp.Status)}
	}

	var result DemandForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if cache := GetRemoteCache(); cache != nil {
		cache.Set(GenerateRemoteCacheKey(params), &result)
	}

	return &result, nil
}

func (c *RemoteClient) validateAPIKey() error {
	if c.APIKey == "" {
		return &RemoteError{Code: "MISSING_API_KEY", Message: "API key is required"}
	}
	if len(c.APIKey) < 10 {
		return &RemoteError{Code: "INVALID_API_KEY_FORMAT", Message: "API key appears to be invalid (too short)"}
	}
	return nil
}

// ToDemandMap converts a response to the interval->MW map consumed by
// uc.Traces.Demand, indexing 0, 1, 2, ... in response order -- a
// remote-sourced trace stands in for demand.csv under the same shape.
func (r *DemandForecastResponse) ToDemandMap() map[int]float64 {
	out := make(map[int]float64, len(r.Data))
	for i, row := range r.Data {
		out[i] = row.DemandMW
	}
	return out
}
