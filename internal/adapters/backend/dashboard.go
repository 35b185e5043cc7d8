package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) Dashboard(ctx context.Context) (_ *domain.Dashboard, err error) {
	defer obs.Time(ctx, "backend.Dashboard")(&err)

	var out domain.Dashboard
	if err := c.call(ctx, http.MethodGet, "/admin/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
