package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unitytechnetwork/Afifi-sub000/internal/validators"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

// maxRecordBody matches the largest record the validator accepts plus room
// for surrounding whitespace.
const maxRecordBody = 32<<20 + 1024

func (h *Handler) getSystemRecord(w http.ResponseWriter, r *http.Request) {
	rec, found, err := h.services.SystemRecordService.Get(r.Context(), inspectionID(r), systemID(r))
	if err != nil {
		fail(w, r, "*Handler.getSystemRecord", err)
		return
	}
	if !found {
		fail(w, r, "*Handler.getSystemRecord", errRecordNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rec.Raw)
}

// saveSystemRecord stores the request body verbatim. The record is opaque
// JSON; it is only checked for well-formedness and shape.
func (h *Handler) saveSystemRecord(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRecordBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = validators.ErrRecordTooLarge
		}
		fail(w, r, "*Handler.saveSystemRecord", err)
		return
	}

	if err := h.services.SystemRecordService.Save(r.Context(), inspectionID(r), systemID(r), raw); err != nil {
		fail(w, r, "*Handler.saveSystemRecord", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markNA(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SystemRecordService.MarkNA(r.Context(), inspectionID(r), systemID(r)); err != nil {
		fail(w, r, "*Handler.markNA", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearNA(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SystemRecordService.ClearNA(r.Context(), inspectionID(r), systemID(r)); err != nil {
		fail(w, r, "*Handler.clearNA", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func systemID(r *http.Request) models.SystemID {
	return models.SystemID(chi.URLParam(r, "systemID"))
}
