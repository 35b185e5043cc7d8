package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) Packages(ctx context.Context, status, search string) (_ []domain.Package, err error) {
	defer obs.Time(ctx, "backend.Packages")(&err)

	var out []domain.Package
	path := "/admin/packages" + query("status", status, "search", search)
	err = c.call(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) Package(ctx context.Context, id string) (_ *domain.Package, err error) {
	defer obs.Time(ctx, "backend.Package")(&err)

	var out domain.Package
	if err := c.call(ctx, http.MethodGet, "/admin/packages/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePackage(ctx context.Context, id string, upd domain.PackageUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdatePackage")(&err)
	return c.call(ctx, http.MethodPut, "/admin/packages/"+escape(id), upd, nil)
}

func (c *Client) BulkUpdatePackageStatus(ctx context.Context, ids []string, status string) (err error) {
	defer obs.Time(ctx, "backend.BulkUpdatePackageStatus")(&err)

	body := struct {
		PackageIDs []string `json:"packageIds"`
		Status     string   `json:"status"`
	}{ids, status}
	return c.call(ctx, http.MethodPut, "/admin/packages/bulk-status", body, nil)
}
