package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) MasterShipments(ctx context.Context, status string) (_ []domain.MasterShipment, err error) {
	defer obs.Time(ctx, "backend.MasterShipments")(&err)

	var out []domain.MasterShipment
	err = c.call(ctx, http.MethodGet, "/admin/master-shipments"+query("status", status), nil, &out)
	return out, err
}

func (c *Client) MasterShipment(ctx context.Context, id string) (_ *domain.MasterShipment, err error) {
	defer obs.Time(ctx, "backend.MasterShipment")(&err)

	var out domain.MasterShipment
	if err := c.call(ctx, http.MethodGet, "/admin/master-shipments/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMasterShipment(ctx context.Context, in domain.NewMasterShipment) (_ *domain.MasterShipment, err error) {
	defer obs.Time(ctx, "backend.CreateMasterShipment")(&err)

	var out domain.MasterShipment
	if err := c.call(ctx, http.MethodPost, "/admin/master-shipments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMasterShipmentStatus(ctx context.Context, id string, upd domain.MasterStatusUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdateMasterShipmentStatus")(&err)
	return c.call(ctx, http.MethodPut, "/admin/master-shipments/"+escape(id)+"/status", upd, nil)
}
