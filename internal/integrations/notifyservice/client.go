package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging contract of the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the campus notification gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a notification gateway client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyUser sends a notification to one user.
func (c *Client) NotifyUser(ctx context.Context, userID int64, message string) error {
	return c.post(ctx, "/internal/notifications", Notification{UserID: &userID, Message: message})
}

// NotifyStaff broadcasts a notification to all staff accounts.
func (c *Client) NotifyStaff(ctx context.Context, message string) error {
	return c.post(ctx, "/internal/notifications/staff", Notification{Message: message})
}

func (c *Client) post(ctx context.Context, path string, payload Notification) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// NotifyUserBestEffort delivers like NotifyUser but never fails the
// caller: delivery problems are logged and swallowed, since no booking
// operation should be rolled back over a missed notification.
func (c *Client) NotifyUserBestEffort(ctx context.Context, userID int64, message string) {
	if err := c.NotifyUser(ctx, userID, message); err != nil {
		c.log.Error("NotifyUser: delivery failed for user_id=%d: %v", userID, err)
	}
}

// NotifyStaffBestEffort delivers like NotifyStaff but never fails the
// caller.
func (c *Client) NotifyStaffBestEffort(ctx context.Context, message string) {
	if err := c.NotifyStaff(ctx, message); err != nil {
		c.log.Error("NotifyStaff: delivery failed: %v", err)
	}
}
