package handlers

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/ports"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"
)

type MasterShipmentsHandler struct {
	*Base
}

type masterListData struct {
	Status   string
	Statuses []string
	Masters  []domain.MasterShipment
}

func (h *MasterShipmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	data := masterListData{
		Status:   r.URL.Query().Get("status"),
		Statuses: domain.MasterShipmentStatuses,
	}

	var alert string
	masters, err := h.client(r).MasterShipments(r.Context(), data.Status)
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
	}
	data.Masters = masters
	h.render(w, r, "master_shipments", "Master Shipments", alert, data)
}

func (h *MasterShipmentsHandler) Show(w http.ResponseWriter, r *http.Request) {
	ms, err := h.client(r).MasterShipment(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err, "/master-shipments")
		return
	}
	h.render(w, r, "master_detail", ms.MasterTrackingNo, "", ms)
}

type masterNewData struct {
	Shipments    []domain.Shipment
	Routes       []domain.Route
	Destinations []domain.Option
}

// New offers PROCESSING shipments that are not yet consolidated.
func (h *MasterShipmentsHandler) New(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.client(r).Shipments(r.Context(), "PROCESSING", "")
	if err != nil {
		h.fail(w, r, err, "/master-shipments")
		return
	}
	h.render(w, r, "master_new", "Create Master Shipment", "", masterNewData{
		Shipments:    domain.AssignableShipments(shipments),
		Routes:       domain.Routes,
		Destinations: domain.Destinations[1:],
	})
}

func (h *MasterShipmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, err, "/master-shipments/new")
		return
	}

	in := domain.NewMasterShipment{
		Method:           r.PostFormValue("method"),
		Route:            r.PostFormValue("route"),
		Destination:      r.PostFormValue("destination"),
		EstimatedArrival: r.PostFormValue("estimated_arrival"),
		ShipmentIDs:      r.PostForm["shipment_ids"],
	}
	if in.Method == "" {
		in.Method = domain.MethodAir
	}
	if err := in.Validate(); err != nil {
		h.fail(w, r, err, "/master-shipments/new")
		return
	}

	ms, err := h.client(r).CreateMasterShipment(ctx, in)
	if err != nil {
		h.fail(w, r, err, "/master-shipments/new")
		return
	}
	h.Audit.Record(ctx, "master_shipment.create", "master_shipment", ms.ID, strings.Join(in.ShipmentIDs, ","))
	done(w, r, "/master-shipments")
}

type masterStatusData struct {
	Master    *domain.MasterShipment
	Statuses  []domain.TrackingStatus
	Locations []domain.TrackingLocation
}

// StatusForm offers the tracking steps not yet applied to the master shipment.
func (h *MasterShipmentsHandler) StatusForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	api := h.client(r)
	id := r.PathValue("id")

	ms, err := api.MasterShipment(ctx, id)
	if err != nil {
		h.fail(w, r, err, "/master-shipments")
		return
	}
	statuses, locations, err := trackingLookups(ctx, api)
	if err != nil {
		h.fail(w, r, err, "/master-shipments/"+id)
		return
	}

	h.render(w, r, "master_status", "Update Tracking", "", masterStatusData{
		Master:    ms,
		Statuses:  domain.AvailableTrackingStatuses(statuses, ms),
		Locations: locations,
	})
}

func (h *MasterShipmentsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	api := h.client(r)
	id := r.PathValue("id")
	formURL := "/master-shipments/" + id + "/status"

	code := r.FormValue("tracking_code")
	location := r.FormValue("location_code")
	if code == "" {
		h.fail(w, r, domain.ErrNoTrackingStatus, formURL)
		return
	}
	if location == "" {
		h.fail(w, r, domain.ErrNoLocation, formURL)
		return
	}

	statuses, locations, err := trackingLookups(ctx, api)
	if err != nil {
		h.fail(w, r, err, formURL)
		return
	}
	upd, err := domain.BuildMasterStatusUpdate(statuses, locations, code, location, r.FormValue("notes"))
	if err != nil {
		h.fail(w, r, err, formURL)
		return
	}

	if err := api.UpdateMasterShipmentStatus(ctx, id, upd); err != nil {
		h.fail(w, r, err, formURL)
		return
	}
	h.Audit.Record(ctx, "master_shipment.status", "master_shipment", id, upd.TrackingCode)
	done(w, r, "/master-shipments/"+id)
}

// trackingLookups fetches active tracking statuses and locations concurrently.
func trackingLookups(ctx context.Context, api ports.TrackingAPI) ([]domain.TrackingStatus, []domain.TrackingLocation, error) {
	var (
		statuses  []domain.TrackingStatus
		locations []domain.TrackingLocation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := api.TrackingStatuses(gctx)
		statuses = s
		return err
	})
	g.Go(func() error {
		l, err := api.TrackingLocations(gctx)
		locations = l
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return domain.ActiveStatuses(statuses), domain.ActiveLocations(locations), nil
}
