package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) Shipments(ctx context.Context, status, search string) (_ []domain.Shipment, err error) {
	defer obs.Time(ctx, "backend.Shipments")(&err)

	var out []domain.Shipment
	path := "/admin/shipments" + query("status", status, "search", search)
	err = c.call(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) Shipment(ctx context.Context, id string) (_ *domain.Shipment, err error) {
	defer obs.Time(ctx, "backend.Shipment")(&err)

	var out domain.Shipment
	if err := c.call(ctx, http.MethodGet, "/admin/shipments/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateShipment(ctx context.Context, id string, fields map[string]any) (err error) {
	defer obs.Time(ctx, "backend.UpdateShipment")(&err)
	return c.call(ctx, http.MethodPut, "/admin/shipments/"+escape(id), fields, nil)
}

func (c *Client) UpdateShipmentStatus(ctx context.Context, id string, upd domain.ShipmentStatusUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdateShipmentStatus")(&err)
	return c.call(ctx, http.MethodPut, "/admin/shipments/"+escape(id)+"/status", upd, nil)
}

// AddShipmentDetailsAndGenerateBill records weight/volume/fees and returns
// the bill the backend computed.
func (c *Client) AddShipmentDetailsAndGenerateBill(ctx context.Context, id string, d domain.ShipmentDetails) (_ *domain.BillGeneration, err error) {
	defer obs.Time(ctx, "backend.AddShipmentDetailsAndGenerateBill")(&err)

	var out domain.BillGeneration
	if err := c.call(ctx, http.MethodPut, "/admin/shipments/"+escape(id)+"/details-and-bill", d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
