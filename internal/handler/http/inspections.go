// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unitytechnetwork/Afifi-sub000/internal/app"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/utils"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const maxJSONBody = 1 << 20

type statusRequest struct {
	Status models.InspectionStatus `json:"status"`
}

type certifyRequest struct {
	Supervisor string `json:"supervisor"`
	PIN        string `json:"pin"`
}

func (h *Handler) listInspections(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.InspectionService.List(r.Context())
	if err != nil {
		fail(w, r, "*Handler.listInspections", err)
		return
	}
	_, _ = utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) createInspection(w http.ResponseWriter, r *http.Request) {
	var details models.InspectionDetails
	if !decodeJSON(w, r, "*Handler.createInspection", &details) {
		return
	}

	rec, err := h.services.InspectionService.Create(r.Context(), details)
	if err != nil {
		fail(w, r, "*Handler.createInspection", err)
		return
	}
	w.Header().Set("Location", "/api/inspections/"+rec.ID)
	_, _ = utils.WriteJSON(w, rec, http.StatusCreated)
}

func (h *Handler) getInspection(w http.ResponseWriter, r *http.Request) {
	rec, err := h.services.InspectionService.Get(r.Context(), inspectionID(r))
	if err != nil {
		fail(w, r, "*Handler.getInspection", err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) updateInspection(w http.ResponseWriter, r *http.Request) {
	var details models.InspectionDetails
	if !decodeJSON(w, r, "*Handler.updateInspection", &details) {
		return
	}

	rec, err := h.services.InspectionService.UpdateDetails(r.Context(), inspectionID(r), details)
	if err != nil {
		fail(w, r, "*Handler.updateInspection", err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) deleteInspection(w http.ResponseWriter, r *http.Request) {
	if err := h.services.InspectionService.Delete(r.Context(), inspectionID(r)); err != nil {
		fail(w, r, "*Handler.deleteInspection", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) transitionInspection(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, "*Handler.transitionInspection", &req) {
		return
	}

	rec, err := h.services.InspectionService.Transition(r.Context(), inspectionID(r), req.Status)
	if err != nil {
		fail(w, r, "*Handler.transitionInspection", err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) markForSync(w http.ResponseWriter, r *http.Request) {
	rec, err := h.services.InspectionService.MarkForSync(r.Context(), inspectionID(r))
	if err != nil {
		fail(w, r, "*Handler.markForSync", err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) certifyInspection(w http.ResponseWriter, r *http.Request) {
	var req certifyRequest
	if !decodeJSON(w, r, "*Handler.certifyInspection", &req) {
		return
	}

	rec, err := h.services.InspectionService.Certify(r.Context(), inspectionID(r), req.Supervisor, req.PIN)
	if err != nil {
		fail(w, r, "*Handler.certifyInspection", err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func inspectionID(r *http.Request) string {
	return chi.URLParam(r, "inspectionID")
}

// decodeJSON reads a bounded JSON body into dst. It answers 400 itself and
// returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, fn string, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("Invalid JSON was passed")
		utils.WriteError(w, r, fmt.Sprintf("%s: %v", app.MsgInvalidDataProvided, err), http.StatusBadRequest)
		return false
	}
	return true
}
