package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

// ShipmentRequests lists customer shipments still in REQUESTED status.
func (c *Client) ShipmentRequests(ctx context.Context) (_ []domain.Shipment, err error) {
	defer obs.Time(ctx, "backend.ShipmentRequests")(&err)

	var out []domain.Shipment
	err = c.call(ctx, http.MethodGet, "/admin/shipment-requests", nil, &out)
	return out, err
}

func (c *Client) ApproveShipmentRequest(ctx context.Context, id string) (err error) {
	defer obs.Time(ctx, "backend.ApproveShipmentRequest")(&err)
	return c.call(ctx, http.MethodPut, "/admin/shipment-requests/"+escape(id)+"/approve", nil, nil)
}

func (c *Client) RejectShipmentRequest(ctx context.Context, id, reason string) (err error) {
	defer obs.Time(ctx, "backend.RejectShipmentRequest")(&err)

	body := struct {
		Reason string `json:"reason,omitempty"`
	}{reason}
	return c.call(ctx, http.MethodPut, "/admin/shipment-requests/"+escape(id)+"/reject", body, nil)
}
