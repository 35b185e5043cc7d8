package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) PickupRequests(ctx context.Context, status, date string) (_ []domain.PickupRequest, err error) {
	defer obs.Time(ctx, "backend.PickupRequests")(&err)

	var out []domain.PickupRequest
	path := "/admin/pickups" + query("status", status, "date", date)
	err = c.call(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) UpdatePickupStatus(ctx context.Context, id string, upd domain.PickupStatusUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdatePickupStatus")(&err)
	return c.call(ctx, http.MethodPut, "/admin/pickups/"+escape(id)+"/status", upd, nil)
}

func (c *Client) PickupSlots(ctx context.Context, date string) (_ []domain.PickupSlot, err error) {
	defer obs.Time(ctx, "backend.PickupSlots")(&err)

	var out []domain.PickupSlot
	err = c.call(ctx, http.MethodGet, "/admin/pickup-slots"+query("date", date), nil, &out)
	return out, err
}

func (c *Client) CreatePickupSlot(ctx context.Context, in domain.NewPickupSlot) (err error) {
	defer obs.Time(ctx, "backend.CreatePickupSlot")(&err)
	return c.call(ctx, http.MethodPost, "/admin/pickup-slots", in, nil)
}

func (c *Client) BulkCreatePickupSlots(ctx context.Context, in domain.BulkPickupSlots) (err error) {
	defer obs.Time(ctx, "backend.BulkCreatePickupSlots")(&err)
	return c.call(ctx, http.MethodPost, "/admin/pickup-slots/bulk", in, nil)
}

func (c *Client) UpdatePickupSlot(ctx context.Context, id string, upd domain.PickupSlotUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdatePickupSlot")(&err)
	return c.call(ctx, http.MethodPut, "/admin/pickup-slots/"+escape(id), upd, nil)
}

func (c *Client) DeletePickupSlot(ctx context.Context, id string) (err error) {
	defer obs.Time(ctx, "backend.DeletePickupSlot")(&err)
	return c.call(ctx, http.MethodDelete, "/admin/pickup-slots/"+escape(id), nil, nil)
}
