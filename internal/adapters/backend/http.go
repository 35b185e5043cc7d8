package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"naiyuan-admin/internal/ports"
	"net/http"
	"strings"
)

// StatusError is a non-2xx backend response other than 401/403.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	path string,
	in any,
) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// request performs one call. A nil result with a nil error means the
// backend answered 204.
func (c *Client) request(ctx context.Context, method, path string, in any) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return nil, err
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if err := c.tokens.ClearToken(ctx); err != nil {
			return nil, errors.Join(ports.ErrUnauthorized, fmt.Errorf("clear token: %w", err))
		}
		return nil, ports.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return nil, ports.ErrAdminRequired
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, statusError(resp)
	case resp.StatusCode == http.StatusNoContent:
		return nil, nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return json.RawMessage(b), nil
}

func statusError(resp *http.Response) *StatusError {
	var body struct {
		Message any `json:"message"`
	}
	b, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(b, &body)

	msg := messageText(body.Message)
	if msg == "" {
		msg = fmt.Sprintf("Request failed: %d", resp.StatusCode)
	}
	return &StatusError{Code: resp.StatusCode, Message: msg}
}

// messageText accepts the backend's string message or its list of
// validation messages.
func messageText(v any) string {
	switch m := v.(type) {
	case string:
		return m
	case []any:
		parts := make([]string, 0, len(m))
		for _, p := range m {
			if s, ok := p.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// call runs a request and decodes the result into out when there is one.
func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	raw, err := c.request(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil || raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
