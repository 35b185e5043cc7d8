package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) TrackingStatuses(ctx context.Context) (_ []domain.TrackingStatus, err error) {
	defer obs.Time(ctx, "backend.TrackingStatuses")(&err)

	var out []domain.TrackingStatus
	err = c.call(ctx, http.MethodGet, "/admin/tracking-statuses", nil, &out)
	return out, err
}

func (c *Client) CreateTrackingStatus(ctx context.Context, in domain.NewTrackingStatus) (err error) {
	defer obs.Time(ctx, "backend.CreateTrackingStatus")(&err)
	return c.call(ctx, http.MethodPost, "/admin/tracking-statuses", in, nil)
}

func (c *Client) UpdateTrackingStatus(ctx context.Context, id string, upd domain.LookupUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdateTrackingStatus")(&err)
	return c.call(ctx, http.MethodPut, "/admin/tracking-statuses/"+escape(id), upd, nil)
}

func (c *Client) DeleteTrackingStatus(ctx context.Context, id string) (err error) {
	defer obs.Time(ctx, "backend.DeleteTrackingStatus")(&err)
	return c.call(ctx, http.MethodDelete, "/admin/tracking-statuses/"+escape(id), nil, nil)
}

func (c *Client) TrackingLocations(ctx context.Context) (_ []domain.TrackingLocation, err error) {
	defer obs.Time(ctx, "backend.TrackingLocations")(&err)

	var out []domain.TrackingLocation
	err = c.call(ctx, http.MethodGet, "/admin/tracking-locations", nil, &out)
	return out, err
}

func (c *Client) CreateTrackingLocation(ctx context.Context, in domain.NewTrackingLocation) (err error) {
	defer obs.Time(ctx, "backend.CreateTrackingLocation")(&err)
	return c.call(ctx, http.MethodPost, "/admin/tracking-locations", in, nil)
}

func (c *Client) UpdateTrackingLocation(ctx context.Context, id string, upd domain.LookupUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdateTrackingLocation")(&err)
	return c.call(ctx, http.MethodPut, "/admin/tracking-locations/"+escape(id), upd, nil)
}

func (c *Client) DeleteTrackingLocation(ctx context.Context, id string) (err error) {
	defer obs.Time(ctx, "backend.DeleteTrackingLocation")(&err)
	return c.call(ctx, http.MethodDelete, "/admin/tracking-locations/"+escape(id), nil, nil)
}
