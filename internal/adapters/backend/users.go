package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) Users(ctx context.Context, search string) (_ []domain.User, err error) {
	defer obs.Time(ctx, "backend.Users")(&err)

	var out []domain.User
	err = c.call(ctx, http.MethodGet, "/admin/users"+query("search", search), nil, &out)
	return out, err
}

func (c *Client) User(ctx context.Context, id string) (_ *domain.User, err error) {
	defer obs.Time(ctx, "backend.User")(&err)

	var out domain.User
	if err := c.call(ctx, http.MethodGet, "/admin/users/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
