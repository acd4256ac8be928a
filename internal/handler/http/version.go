package http

import (
	"net/http"

	"github.com/unitytechnetwork/Afifi-sub000/internal/utils"
)

type versionResponse struct {
	Version    string `json:"version"`
	Date       string `json:"date"`
	Commit     string `json:"commit"`
	Vocabulary string `json:"vocabulary"`
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	build := h.buildInfo.Response()
	_, _ = utils.WriteJSON(w, versionResponse{
		Version:    h.services.AppInfoService.GetAppVersion(r.Context()),
		Date:       build.Date,
		Commit:     build.Commit,
		Vocabulary: h.services.Vocabulary.Name(),
	}, http.StatusOK)
}
