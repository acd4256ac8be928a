package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/unitytechnetwork/Afifi-sub000/internal/utils"
	"github.com/unitytechnetwork/Afifi-sub000/internal/validators"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

func (h *Handler) listOverrides(w http.ResponseWriter, r *http.Request) {
	registry, err := h.services.DefectRegistryService.Overrides(r.Context(), inspectionID(r))
	if err != nil {
		fail(w, r, "*Handler.listOverrides", err)
		return
	}
	_, _ = utils.WriteJSON(w, registry, http.StatusOK)
}

func (h *Handler) setOverride(w http.ResponseWriter, r *http.Request) {
	id, err := defectID(r)
	if err != nil {
		fail(w, r, "*Handler.setOverride", err)
		return
	}
	var req models.DefectOverride
	if !decodeJSON(w, r, "*Handler.setOverride", &req) {
		return
	}
	// the server owns the timestamp
	req.UpdatedAt = nil

	saved, err := h.services.DefectRegistryService.SetOverride(r.Context(), inspectionID(r), id, req)
	if err != nil {
		fail(w, r, "*Handler.setOverride", err)
		return
	}
	_, _ = utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) clearOverride(w http.ResponseWriter, r *http.Request) {
	id, err := defectID(r)
	if err != nil {
		fail(w, r, "*Handler.clearOverride", err)
		return
	}
	if err := h.services.DefectRegistryService.ClearOverride(r.Context(), inspectionID(r), id); err != nil {
		fail(w, r, "*Handler.clearOverride", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// defectID returns the unescaped {defectID} parameter. Clients escape the
// ':' separator, which chi leaves encoded in the raw path.
func defectID(r *http.Request) (string, error) {
	id, err := url.PathUnescape(chi.URLParam(r, "defectID"))
	if err != nil {
		return "", validators.ErrInvalidDefectID
	}
	return id, nil
}
