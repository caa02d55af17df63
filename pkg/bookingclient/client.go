// Package bookingclient is a client for the space booking service's
// lookup endpoints.
//
// Lookups are typically re-issued every time the user edits a form
// field, so responses can arrive out of order: a slow response for an
// old input must not overwrite the state rendered for a newer one.
// The client tags every request with a per-lookup ticket and returns
// latest.ErrStale for any response that has been superseded.
package bookingclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/latest"
)

// Client calls the booking service lookup endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client

	recommendGuard latest.Guard
	datesGuard     latest.Guard
	slotsGuard     latest.Guard
	spacesGuard    latest.Guard
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Spaces fetches the space catalog.
func (c *Client) Spaces(ctx context.Context) (*SpaceList, error) {
	ticket := c.spacesGuard.Next()

	var out SpaceList
	if err := c.get(ctx, "/api/v1/spaces", nil, &out); err != nil {
		return nil, err
	}

	if err := c.spacesGuard.Check(ticket); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommendation evaluates the best-fit space for the raw headcount
// input. The input is sent as typed: blank or non-numeric values are
// valid and yield an "empty" outcome.
func (c *Client) Recommendation(ctx context.Context, countRaw string) (*Recommendation, error) {
	ticket := c.recommendGuard.Next()

	query := url.Values{"count": {countRaw}}
	var out Recommendation
	if err := c.get(ctx, "/api/v1/spaces/recommendation", query, &out); err != nil {
		return nil, err
	}

	if err := c.recommendGuard.Check(ticket); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnavailableDates fetches the dates a space cannot be booked.
func (c *Client) UnavailableDates(ctx context.Context, spaceID int64) (*UnavailableDates, error) {
	ticket := c.datesGuard.Next()

	path := fmt.Sprintf("/api/v1/spaces/%d/unavailable-dates", spaceID)
	var out UnavailableDates
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}

	if err := c.datesGuard.Check(ticket); err != nil {
		return nil, err
	}
	return &out, nil
}

// DaySlots fetches one space's schedule on one date (YYYY-MM-DD).
func (c *Client) DaySlots(ctx context.Context, spaceID int64, date string) (*DaySlots, error) {
	ticket := c.slotsGuard.Next()

	path := fmt.Sprintf("/api/v1/spaces/%d/day-slots", spaceID)
	query := url.Values{"date": {date}}
	var out DaySlots
	if err := c.get(ctx, path, query, &out); err != nil {
		return nil, err
	}

	if err := c.slotsGuard.Check(ticket); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: do request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return fmt.Errorf("%w: GET %s", ErrBadRequest, path)
	case http.StatusNotFound:
		return fmt.Errorf("%w: GET %s", ErrNotFound, path)
	default:
		return fmt.Errorf("%w: GET %s: unexpected status %d", ErrInternal, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrInternal, err)
	}
	return nil
}
