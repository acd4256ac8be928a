package http

import (
	"bytes"
	"net/http"

	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

// getSummary answers the report summary as JSON, or in any export format
// named by ?format.
func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	format := export.FormatJSON
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := export.ParseFormat(q)
		if err != nil {
			fail(w, r, "*Handler.getSummary", err)
			return
		}
		format = f
	}
	h.render(w, r, "*Handler.getSummary", format)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "*Handler.getReport", export.FormatHTML)
}

func (h *Handler) getShareText(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "*Handler.getShareText", export.FormatText)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, fn string, format export.Format) {
	summary, ok := h.summary(w, r, fn)
	if !ok {
		return
	}

	buf := bytes.NewBuffer(nil)
	if err := h.renderer.Render(buf, format, summary); err != nil {
		fail(w, r, fn, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request, fn string) (models.Summary, bool) {
	summary, err := h.services.ReportService.BuildSummary(r.Context(), inspectionID(r))
	if err != nil {
		fail(w, r, fn, err)
		return models.Summary{}, false
	}
	return summary, true
}
