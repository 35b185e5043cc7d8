package handlers

import (
	"errors"
	"naiyuan-admin/internal/domain"
	"net/http"
	"strings"
)

// PackageHandler lists packages and applies admin edits.
type PackageHandler struct {
	*Base
}

type packagesData struct {
	Status   string
	Search   string
	Back     string
	Statuses []string
	Packages []domain.Package
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := packagesData{
		Status:   q.Get("status"),
		Search:   strings.TrimSpace(q.Get("search")),
		Back:     r.URL.RequestURI(),
		Statuses: domain.PackageStatuses,
	}

	var alert string
	pkgs, err := h.client(r).Packages(r.Context(), data.Status, data.Search)
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
	}
	data.Packages = pkgs
	h.render(w, r, "packages", "Packages", alert, data)
}

// Update sends only the fields that differ from the values the edit form
// was rendered with (orig_* fields).
func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/packages")
	id := r.PathValue("id")

	desc := r.FormValue("orig_description")
	notes := r.FormValue("orig_warehouse_notes")
	orig := domain.Package{
		Status:         r.FormValue("orig_status"),
		Description:    &desc,
		WarehouseNotes: &notes,
	}
	for _, l := range lines(r.FormValue("orig_photo_urls")) {
		if l = strings.TrimSpace(l); l != "" {
			orig.PhotoURLs = append(orig.PhotoURLs, l)
		}
	}

	upd := orig.Diff(
		r.FormValue("status"),
		strings.TrimSpace(r.FormValue("description")),
		strings.TrimSpace(r.FormValue("warehouse_notes")),
		lines(r.FormValue("photo_urls")),
	)
	if upd.Empty() {
		done(w, r, back)
		return
	}

	if err := h.client(r).UpdatePackage(ctx, id, upd); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "package.update", "package", id, "")
	done(w, r, back)
}

func (h *PackageHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/packages")

	if err := r.ParseForm(); err != nil {
		h.fail(w, r, err, back)
		return
	}
	ids := r.PostForm["package_ids"]
	status := r.PostFormValue("status")
	if len(ids) == 0 {
		h.fail(w, r, errors.New("Select at least one package"), back)
		return
	}
	if !domain.Contains(domain.PackageStatuses, status) {
		h.fail(w, r, errors.New("Select a status"), back)
		return
	}

	if err := h.client(r).BulkUpdatePackageStatus(ctx, ids, status); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "package.bulk_status", "package", strings.Join(ids, ","), status)
	done(w, r, back)
}
