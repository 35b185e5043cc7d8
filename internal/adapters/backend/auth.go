package backend

import (
	"context"
	"fmt"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) Login(ctx context.Context, email string) (err error) {
	defer obs.Time(ctx, "backend.Login")(&err)

	body := map[string]string{"email": email}
	return c.call(ctx, http.MethodPost, "/auth/login", body, nil)
}

// VerifyOTP exchanges the emailed code for a token and stores it. A
// response without accessToken is an error and stores nothing.
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (_ string, err error) {
	defer obs.Time(ctx, "backend.VerifyOTP")(&err)

	var out struct {
		AccessToken string `json:"accessToken"`
	}
	body := map[string]string{"email": email, "code": code}
	if err := c.call(ctx, http.MethodPost, "/auth/verify-otp", body, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", domain.ErrNoToken
	}

	if err := c.tokens.SetToken(ctx, out.AccessToken); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return out.AccessToken, nil
}

// Logout forgets the token locally. The backend has no logout endpoint.
func (c *Client) Logout(ctx context.Context) error {
	return c.tokens.ClearToken(ctx)
}
