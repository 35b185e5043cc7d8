package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"naiyuan-admin/internal/adapters/tokens"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/ports"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, token string) (*Client, *tokens.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	store := tokens.NewMemoryStore(token)
	c, err := New(srv.URL+"/api", store, WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c, store
}

func TestRequestSendsHeaders(t *testing.T) {
	var got *http.Request
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = w.Write([]byte(`{"totalUsers":3}`))
	}, "tok")

	d, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, d.TotalUsers)

	assert.Equal(t, "/api/admin/dashboard", got.URL.Path)
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
}

func TestRequestWithoutTokenOmitsAuthorization(t *testing.T) {
	var auth []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Values("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}, "")

	require.NoError(t, c.Login(context.Background(), "ops@naiyuan.test"))
	assert.Empty(t, auth)
}

func TestUnauthorizedClearsToken(t *testing.T) {
	paths := []func(c *Client) error{
		func(c *Client) error { _, err := c.Bills(context.Background(), "", ""); return err },
		func(c *Client) error { return c.DeletePickupSlot(context.Background(), "s1") },
		func(c *Client) error { _, err := c.ReferralConfig(context.Background()); return err },
	}
	for _, call := range paths {
		c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}, "stale")

		err := call(c)
		assert.ErrorIs(t, err, ports.ErrUnauthorized)
		assert.Equal(t, "Unauthorized", err.Error())

		tok, _ := store.Token(context.Background())
		assert.Empty(t, tok)
	}
}

func TestForbiddenIsAdminRequired(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Forbidden resource"}`))
	}, "tok")

	_, err := c.Users(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "Admin access required", err.Error())
	assert.ErrorIs(t, err, ports.ErrAdminRequired)

	tok, _ := store.Token(context.Background())
	assert.Equal(t, "tok", tok)
}

func TestNoContentResolvesToNull(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, "tok")

	raw, err := c.Raw(context.Background(), http.MethodDelete, "/admin/rates/r1", nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	d, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Dashboard{}, *d)
}

func TestErrorMessageFromBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Shipment already billed"}`))
	}, "tok")

	_, err := c.CreateBill(context.Background(), domain.NewBill{ShipmentID: "s1"})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Equal(t, "Shipment already billed", se.Error())
}

func TestErrorMessageList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":["rate must be positive","fromCurrency is required"]}`))
	}, "tok")

	err := c.CreateExchangeRate(context.Background(), domain.NewExchangeRate{})
	assert.EqualError(t, err, "rate must be positive, fromCurrency is required")
}

func TestErrorMessageFallback(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}, "tok")

	_, err := c.Packages(context.Background(), "", "")
	assert.EqualError(t, err, "Request failed: 502")
}

func TestNoRetryOnServerError(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}, "tok")

	_, err := c.Shipments(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestQueryParameters(t *testing.T) {
	var got []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.RequestURI())
		_, _ = w.Write([]byte(`[]`))
	}, "tok")
	ctx := context.Background()

	_, _ = c.Packages(ctx, "ARRIVED", "ab c")
	_, _ = c.Packages(ctx, "", "")
	_, _ = c.PickupRequests(ctx, "", "2026-10-18")
	_, _ = c.MasterShipments(ctx, "IN_TRANSIT")

	assert.Equal(t, []string{
		"/api/admin/packages?search=ab+c&status=ARRIVED",
		"/api/admin/packages",
		"/api/admin/pickups?date=2026-10-18",
		"/api/admin/master-shipments?status=IN_TRANSIT",
	}, got)
}

func TestVerifyPaymentRequest(t *testing.T) {
	var method, path string
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &body)
		_, _ = w.Write([]byte(`{"id":"p1","status":"COMPLETED"}`))
	}, "tok")

	err := c.VerifyPayment(context.Background(), "p1", domain.PaymentVerification{Status: domain.PaymentApproved})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/admin/bills/payments/p1/verify", path)
	assert.Equal(t, map[string]any{"status": "APPROVED"}, body)
}

func TestVerifyOTPStoresToken(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"fresh","user":{"role":"ADMIN"}}`))
	}, "")

	tok, err := c.VerifyOTP(context.Background(), "ops@naiyuan.test", "123456")
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)

	stored, _ := store.Token(context.Background())
	assert.Equal(t, "fresh", stored)
}

func TestVerifyOTPWithoutToken(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{}}`))
	}, "")

	_, err := c.VerifyOTP(context.Background(), "ops@naiyuan.test", "123456")
	assert.ErrorIs(t, err, domain.ErrNoToken)
	assert.Equal(t, "Login failed — no token received", err.Error())

	stored, _ := store.Token(context.Background())
	assert.Empty(t, stored)
}

func TestRejectShipmentRequestBody(t *testing.T) {
	var body string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusNoContent)
	}, "tok")

	require.NoError(t, c.RejectShipmentRequest(context.Background(), "s1", "Missing invoice"))
	assert.JSONEq(t, `{"reason":"Missing invoice"}`, body)
}

func TestNewValidatesArguments(t *testing.T) {
	_, err := New("", tokens.NewMemoryStore(""))
	assert.Error(t, err)
	_, err = New("http://localhost/api", nil)
	assert.Error(t, err)
}
