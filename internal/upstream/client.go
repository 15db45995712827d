// Package upstream is the HTTP client for the remote event-management API.
// Everything the console shows or mutates goes through here; the backend
// stays the source of truth.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"eventConsole/internal/models"
)

// TokenSource supplies the bearer token attached to authorized calls.
// An empty token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// Login exchanges admin credentials for a session. It is the only call that
// never carries a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (models.Session, error) {
	body := map[string]string{"username": username, "password": password}

	var sess models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/admin/login", body, &sess, false); err != nil {
		return models.Session{}, fmt.Errorf("login failed: %w", err)
	}

	return sess, nil
}

// AdminDraft is the payload for creating another administrator account.
type AdminDraft struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) CreateAdmin(ctx context.Context, draft AdminDraft) error {
	if err := c.do(ctx, http.MethodPost, "/auth/admins", draft, nil, true); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// ListEvents fetches one page of events. The token is optional for this
// endpoint; it is attached when present.
func (c *Client) ListEvents(ctx context.Context, page, size int) (models.EventPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var pageResp models.EventPage
	if err := c.do(ctx, http.MethodGet, "/api/events?"+q.Encode(), nil, &pageResp, true); err != nil {
		return models.EventPage{}, fmt.Errorf("failed to list events: %w", err)
	}

	if pageResp.TotalPages == 0 {
		pageResp.TotalPages = 1
	}

	return pageResp, nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d", id), nil, &event, true); err != nil {
		return models.Event{}, fmt.Errorf("failed to get event %d: %w", id, err)
	}

	return event, nil
}

func (c *Client) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	var created models.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", event, &created, true); err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, event models.Event) (models.Event, error) {
	var updated models.Event
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/events/%d", id), event, &updated, true); err != nil {
		return models.Event{}, fmt.Errorf("failed to update event %d: %w", id, err)
	}

	return updated, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d", id), nil, nil, true); err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}

	return nil
}

// wireRegistration keeps attended nullable so a missing flag can be
// normalized to false instead of silently defaulting.
type wireRegistration struct {
	RegistrationID int64          `json:"registrationId"`
	Attended       *bool          `json:"attended"`
	Student        models.Student `json:"student"`
}

// ListRegistrations fetches the full roster for one event. No pagination:
// the backend returns the whole set.
func (c *Client) ListRegistrations(ctx context.Context, eventID int64) ([]models.Registration, error) {
	var wire []wireRegistration
	path := fmt.Sprintf("/api/events/%d/registrations", eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, &wire, true); err != nil {
		return nil, fmt.Errorf("failed to list registrations for event %d: %w", eventID, err)
	}

	regs := make([]models.Registration, 0, len(wire))
	for _, w := range wire {
		reg := models.Registration{
			RegistrationID: w.RegistrationID,
			Student:        w.Student,
		}
		if w.Attended != nil {
			reg.Attended = *w.Attended
		}
		regs = append(regs, reg)
	}

	return regs, nil
}

// ToggleAttendance flips a registration's attendance on the backend and
// returns the authoritative flag.
func (c *Client) ToggleAttendance(ctx context.Context, registrationID int64) (bool, error) {
	var result struct {
		Attended *bool `json:"attended"`
	}

	path := fmt.Sprintf("/api/registrations/%d/toggle-attendance", registrationID)
	if err := c.do(ctx, http.MethodPut, path, struct{}{}, &result, true); err != nil {
		return false, fmt.Errorf("failed to toggle attendance for registration %d: %w", registrationID, err)
	}

	if result.Attended == nil {
		return false, nil
	}

	return *result.Attended, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, withToken bool) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withToken {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// decodeError maps a non-2xx response onto the error taxonomy. Error bodies
// optionally carry {message}, {error} or {errors:[{field,defaultMessage}]}.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusUnsupportedMediaType:
		return ErrUnsupportedMedia
	}

	var body struct {
		Message string       `json:"message"`
		Err     string       `json:"error"`
		Errors  []FieldError `json:"errors"`
	}
	_ = json.Unmarshal(data, &body)

	if len(body.Errors) > 0 {
		return FieldErrors(body.Errors)
	}

	msg := body.Message
	if msg == "" {
		msg = body.Err
	}

	return &Error{Status: resp.StatusCode, Message: msg}
}
