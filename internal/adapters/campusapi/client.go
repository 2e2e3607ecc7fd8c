package campusapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"timetableportal/internal/domain"
)

// APIError is an upstream HTTP failure. Message carries the body's "message"
// field verbatim when present, else a generic status description.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream api returned status %d: %s", e.StatusCode, e.Message)
}

type client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a CampusAPI backed by the college REST API at baseURL.
func NewClient(baseURL string, httpClient *http.Client) domain.CampusAPI {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// messageBody is the envelope most upstream endpoints answer with.
type messageBody struct {
	Message string `json:"message"`
}

// loginBody is the upstream login response: a token plus the user profile.
type loginBody struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (c *client) do(ctx context.Context, method, path, token string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		// The upstream accepts either header depending on its revision;
		// sending both covers all deployed variants.
		req.Header.Set("x-auth-token", token)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach upstream api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var mb messageBody
		if err := json.Unmarshal(raw, &mb); err == nil && mb.Message != "" {
			apiErr.Message = mb.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

func (c *client) LookupDay(ctx context.Context, token, day string, params url.Values) (domain.DayResponse, error) {
	var out domain.DayResponse
	path := "/timetable/day/" + url.PathEscape(day)
	if err := c.do(ctx, http.MethodGet, path, token, params, nil, &out); err != nil {
		return domain.DayResponse{}, err
	}
	return out, nil
}

func (c *client) CreateDaily(ctx context.Context, token string, t domain.DailyTimetable) (string, error) {
	var out messageBody
	if err := c.do(ctx, http.MethodPost, "/timetable/daily", token, nil, t, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *client) UpdateSlot(ctx context.Context, token, dailyID, slotID string, edit domain.SlotEdit) (string, error) {
	var out messageBody
	path := "/timetable/" + url.PathEscape(dailyID) + "/slot/" + url.PathEscape(slotID)
	if err := c.do(ctx, http.MethodPut, path, token, nil, edit, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *client) DeleteSlot(ctx context.Context, token, dailyID, slotID string) (string, error) {
	var out messageBody
	path := "/timetable/" + url.PathEscape(dailyID) + "/slot/" + url.PathEscape(slotID)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *client) DeleteDaily(ctx context.Context, token, dailyID string) (string, error) {
	var out messageBody
	path := "/timetable/" + url.PathEscape(dailyID)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *client) Login(ctx context.Context, in domain.LoginInput) (string, *domain.User, error) {
	var out loginBody
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, in, &out); err != nil {
		return "", nil, err
	}
	if out.Token == "" || out.User == nil {
		return "", nil, fmt.Errorf("upstream login returned no token or user")
	}
	return out.Token, out.User, nil
}

func (c *client) Register(ctx context.Context, in domain.RegisterInput) (string, error) {
	var out messageBody
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
