// Package gcal is a thin HTTP wrapper for the Google Calendar v3 REST API.
// It only covers the read operations the gateway needs: listing events in a
// window and fetching a single event by ID.
package gcal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
)

const (
	// DefaultBaseURL is the production Google Calendar endpoint.
	DefaultBaseURL = "https://www.googleapis.com/calendar/v3"

	// DefaultTimeout bounds every upstream request.
	DefaultTimeout = 15 * time.Second

	// MaxPageSize is the provider's maximum events page size.
	MaxPageSize = 2500

	rfc3339UTC = "2006-01-02T15:04:05Z"
)

// Client talks to the Google Calendar API with an API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client, e.g. with an
// OAuth2-authenticated one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(perSec float64) Option {
	return func(c *Client) {
		if perSec > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
		}
	}
}

// NewClient creates a Calendar API client. An empty apiKey is allowed when
// the HTTP client itself authenticates (service account transport).
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListEvents lists the events of a calendar between TimeMin and TimeMax.
// Recurring events are expanded into single instances, ordered by start
// time, bounded to the provider's maximum page size.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	params := url.Values{}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	params.Set("timeMin", req.TimeMin.UTC().Format(rfc3339UTC))
	params.Set("timeMax", req.TimeMax.UTC().Format(rfc3339UTC))
	params.Set("singleEvents", "true")
	params.Set("orderBy", "startTime")
	params.Set("maxResults", strconv.Itoa(MaxPageSize))

	u := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(req.CalendarID), params.Encode())

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	// Items must be distinguishable from a legitimately empty list, so it
	// is decoded through a pointer.
	var listResp struct {
		Items *[]Event `json:"items"`
	}
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, &MalformedResponseError{Reason: "undecodable events list body"}
	}
	if listResp.Items == nil {
		return nil, &MalformedResponseError{Reason: "missing items field"}
	}
	return *listResp.Items, nil
}

// GetEvent fetches a single event by its ID, typically a recurring series
// master.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*Event, error) {
	params := url.Values{}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	u := fmt.Sprintf("%s/calendars/%s/events/%s?%s",
		c.baseURL, url.PathEscape(calendarID), url.PathEscape(eventID), params.Encode())

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, &MalformedResponseError{Reason: "undecodable event body"}
	}
	return &event, nil
}

// get performs a rate-limited GET and classifies failures into the package
// error types.
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	// googleapi parses Google's structured error body on non-2xx statuses.
	if err := googleapi.CheckResponse(resp); err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, &UpstreamError{StatusCode: gerr.Code, Message: gerr.Message}
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return body, nil
}
