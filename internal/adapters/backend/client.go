package backend

import (
	"context"
	"encoding/json"
	"errors"
	"naiyuan-admin/internal/platform/obs"
	"naiyuan-admin/internal/ports"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client implements ports.AdminAPI over the backend's REST API.
//
// It attaches the bearer token from its TokenStore to every call, clears it
// on 401 and never retries. The client is safe for concurrent use as long
// as its TokenStore is.
type Client struct {
	session *http.Client
	baseURL string
	tokens  ports.TokenStore
}

var _ ports.AdminAPI = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (15s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.session = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.session = &http.Client{Timeout: d} }
}

func New(baseURL string, tokens ports.TokenStore, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("backend base url is empty")
	}
	if tokens == nil {
		return nil, errors.New("backend token store is nil")
	}

	c := &Client{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Raw performs an arbitrary call. It returns nil for 204 responses.
func (c *Client) Raw(ctx context.Context, method, path string, in any) (_ json.RawMessage, err error) {
	defer obs.Time(ctx, "backend."+method+" "+path)(&err)
	return c.request(ctx, method, path, in)
}

// query builds "?k=v&..." from the non-empty pairs, or "".
func query(kv ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func escape(id string) string {
	return url.PathEscape(id)
}
