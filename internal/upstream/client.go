// Package upstream is the client for the remote booking API. The API
// itself is a collaborator: this package only consumes it, maps its
// payloads into domain types and its failures into sentinel errors.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"eventdesk/internal/config"
	"eventdesk/internal/domain"
)

type Client struct {
	httpc    *http.Client
	baseURL  string
	strategy retry.Strategy
	log      logger.Logger
}

func New(cfg config.UpstreamConfig, log logger.Logger) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		strategy: retry.Strategy{
			Attempts: cfg.RetryAttempts,
			Delay:    cfg.RetryDelay,
			Backoff:  cfg.RetryBackoff,
		},
		log: log,
	}
}

// Login exchanges credentials for a token. The API keys the id field by
// role (userId for users, facilitatorId for facilitators).
func (c *Client) Login(ctx context.Context, username, password string, role domain.Role) (domain.Credentials, error) {
	body := map[string]string{
		"username": username,
		"password": password,
		"role":     string(role),
	}

	var resp struct {
		Token         string      `json:"token"`
		UserID        json.Number `json:"userId"`
		FacilitatorID json.Number `json:"facilitatorId"`
	}
	status, msg, err := c.do(ctx, http.MethodPost, "/api/login", "", body, &resp)
	if err != nil {
		return domain.Credentials{}, err
	}

	switch {
	case status == http.StatusOK:
		userID := resp.UserID.String()
		if role == domain.RoleFacilitator && resp.FacilitatorID != "" {
			userID = resp.FacilitatorID.String()
		}
		return domain.Credentials{Token: resp.Token, UserID: userID, Role: role}, nil
	case status == http.StatusUnauthorized:
		return domain.Credentials{}, wrapMessage(domain.ErrInvalidCredentials, msg)
	case status == http.StatusBadRequest:
		return domain.Credentials{}, wrapMessage(domain.ErrValidation, msg)
	default:
		return domain.Credentials{}, apiStatusError(status, msg)
	}
}

func (c *Client) Register(ctx context.Context, input domain.RegisterInput) error {
	body := map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"username": input.Username,
		"phone":    input.Phone,
		"password": input.Password,
		"role":     string(input.Role),
	}

	status, msg, err := c.do(ctx, http.MethodPost, "/api/register", "", body, nil)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusCreated, http.StatusOK:
		return nil
	case http.StatusConflict:
		return wrapMessage(domain.ErrEmailTaken, msg)
	case http.StatusBadRequest:
		return wrapMessage(domain.ErrValidation, msg)
	default:
		return apiStatusError(status, msg)
	}
}

// Events fetches the full catalog. Idempotent, so it is retried.
func (c *Client) Events(ctx context.Context, token string) ([]domain.Event, error) {
	var payload []eventPayload
	if err := c.getWithRetry(ctx, "/api/events", token, &payload); err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(payload))
	for _, p := range payload {
		events = append(events, p.toDomain())
	}
	return events, nil
}

// Bookings fetches the current user's booking list. Idempotent, retried.
func (c *Client) Bookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var payload []bookingPayload
	if err := c.getWithRetry(ctx, "/api/bookings", token, &payload); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(payload))
	for _, p := range payload {
		bookings = append(bookings, p.toDomain())
	}
	return bookings, nil
}

// Book submits a reservation. Not retried: a duplicate submit is the
// API's to reject, not ours to provoke.
func (c *Client) Book(ctx context.Context, token string, userID int64, sessionID, eventID int64) (domain.Booking, error) {
	body := map[string]int64{
		"userId":    userID,
		"sessionId": sessionID,
		"eventId":   eventID,
	}

	var resp struct {
		Booking *bookingPayload `json:"booking"`
	}
	status, msg, err := c.do(ctx, http.MethodPost, "/api/events/book", token, body, &resp)
	if err != nil {
		return domain.Booking{}, err
	}

	switch status {
	case http.StatusOK, http.StatusCreated:
		if resp.Booking != nil {
			return resp.Booking.toDomain(), nil
		}
		// Older API builds answer with a bare message; synthesize the
		// reconciliation keys from what we sent.
		return domain.Booking{
			SessionID: sessionID,
			EventID:   eventID,
			UserID:    userID,
			Status:    domain.BookingStatusConfirmed,
		}, nil
	case http.StatusNotFound:
		return domain.Booking{}, wrapMessage(domain.ErrSessionNotFound, msg)
	case http.StatusConflict:
		return domain.Booking{}, wrapMessage(domain.ErrAlreadyBooked, msg)
	case http.StatusBadRequest:
		return domain.Booking{}, wrapMessage(domain.ErrValidation, msg)
	default:
		return domain.Booking{}, apiStatusError(status, msg)
	}
}

// Sessions fetches the facilitator view: sessions with registrants.
func (c *Client) Sessions(ctx context.Context, token string) ([]domain.ManagedSession, error) {
	var payload []managedSessionPayload
	if err := c.getWithRetry(ctx, "/api/sessions", token, &payload); err != nil {
		return nil, err
	}

	sessions := make([]domain.ManagedSession, 0, len(payload))
	for _, p := range payload {
		sessions = append(sessions, p.toDomain())
	}
	return sessions, nil
}

func (c *Client) UpdateSession(ctx context.Context, token string, id int64, input domain.UpdateSessionInput) error {
	// The API overwrites every key present in the body, so a partial
	// update must omit the unset ones: an empty "client" key would blank
	// the stored name.
	body := map[string]string{}
	if input.Client != "" {
		body["client"] = input.Client
	}
	if input.Date != "" {
		body["date"] = input.Date
	}
	if input.Time != "" {
		body["time"] = input.Time
	}
	if input.Status != "" {
		body["status"] = string(input.Status)
	}

	path := fmt.Sprintf("/api/sessions/%d", id)
	status, msg, err := c.do(ctx, http.MethodPut, path, token, body, nil)
	if err != nil {
		return err
	}
	return mapSessionStatus(status, msg)
}

func (c *Client) CancelSession(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/sessions/%d/cancel", id)
	status, msg, err := c.do(ctx, http.MethodPut, path, token, nil, nil)
	if err != nil {
		return err
	}
	return mapSessionStatus(status, msg)
}

func mapSessionStatus(status int, msg string) error {
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return wrapMessage(domain.ErrSessionNotFound, msg)
	case http.StatusBadRequest:
		return wrapMessage(domain.ErrValidation, msg)
	default:
		return apiStatusError(status, msg)
	}
}

func (c *Client) getWithRetry(ctx context.Context, path, token string, out any) error {
	fn := func() error {
		status, msg, err := c.do(ctx, http.MethodGet, path, token, nil, out)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return apiStatusError(status, msg)
		}
		return nil
	}

	if err := retry.Do(fn, c.strategy); err != nil {
		return err
	}
	return nil
}

// do issues one request and decodes a 2xx body into out. Non-2xx
// responses are not an error at this level; the status and the API's
// error message travel back so each endpoint can map them.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) (int, string, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, "", fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", fmt.Errorf("%w: read response: %v", domain.ErrUpstream, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, out); err != nil {
				return 0, "", fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
			}
		}
		return resp.StatusCode, "", nil
	}

	return resp.StatusCode, errorMessage(raw), nil
}

// errorMessage digs the human message out of an API error payload. The
// API is inconsistent about the key, so both are tried.
func errorMessage(raw []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

func wrapMessage(sentinel error, msg string) error {
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

func apiStatusError(status int, msg string) error {
	if msg == "" {
		return fmt.Errorf("%w: status %d", domain.ErrUpstream, status)
	}
	return fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, status, msg)
}
