// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/unitytechnetwork/Afifi-sub000/internal/app"
	"github.com/unitytechnetwork/Afifi-sub000/internal/utils"
)

const operationName = "fireaudit.http"

// Init builds the router. The returned handler is instrumented for tracing.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if len(h.cfg.CORSOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}))
	}
	if h.cfg.RateLimit > 0 {
		router.Use(httprate.Limit(h.cfg.RateLimit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				utils.WriteError(w, r, app.MsgTooManyRequests, http.StatusTooManyRequests)
			}),
		))
	}
	router.Use(middleware.Timeout(h.cfg.RequestTimeoutOrDefault()))
	router.Use(withGZip)

	if exposer, ok := h.metrics.(interface{ Handler() http.Handler }); ok {
		router.Method(http.MethodGet, "/metrics", exposer.Handler())
	}
	router.Get("/api/version", h.getVersion)

	router.Route("/api/inspections", func(r chi.Router) {
		r.Get("/", h.listInspections)
		r.Post("/", h.createInspection)

		r.Route("/{inspectionID}", func(r chi.Router) {
			r.Get("/", h.getInspection)
			r.Patch("/", h.updateInspection)
			r.Delete("/", h.deleteInspection)
			r.Post("/status", h.transitionInspection)
			r.Post("/sync", h.markForSync)
			r.Post("/certify", h.certifyInspection)

			r.Get("/summary", h.getSummary)
			r.Get("/report", h.getReport)
			r.Get("/share", h.getShareText)

			r.Get("/systems/{systemID}", h.getSystemRecord)
			r.Put("/systems/{systemID}", h.saveSystemRecord)
			r.Put("/systems/{systemID}/na", h.markNA)
			r.Delete("/systems/{systemID}/na", h.clearNA)

			r.Get("/defects/overrides", h.listOverrides)
			r.Put("/defects/{defectID}/override", h.setOverride)
			r.Delete("/defects/{defectID}/override", h.clearOverride)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, r, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, r, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return otelhttp.NewHandler(router, operationName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
