package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/unitytechnetwork/Afifi-sub000/internal/app"
	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/crypto"
	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/metrics"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/internal/utils"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const testPIN = "4321"

type routeRecorder struct {
	metrics.Recorder

	mu     sync.Mutex
	routes []string
}

func (r *routeRecorder) HTTPRequest(method, route string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, method+" "+route)
}

func (r *routeRecorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}

func newTestRouter(t *testing.T, serverCfg config.Server, recorder metrics.Recorder) http.Handler {
	t.Helper()

	hash, err := crypto.NewPINServiceWithCost(bcrypt.MinCost).Hash(testPIN)
	require.NoError(t, err)

	services, err := service.NewServices(store.NewMemoryStore(), config.App{
		Vocabulary:        "standard",
		Version:           "test",
		SupervisorPINHash: hash,
	}, recorder, logger.Nop())
	require.NoError(t, err)

	renderer, err := export.New()
	require.NoError(t, err)

	h := NewHandler(services, renderer, recorder, models.NewAppBuildInfo("1.2.3", "2026-03-14", "abc123"), serverCfg, logger.Nop())
	return h.Init()
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createInspection(t *testing.T, router http.Handler) models.InspectionRecord {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/api/inspections/",
		`{"clientName":"Menara Alpha","location":"Level 3","date":"2026-03-14","technicianName":"Aiman"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.InspectionRecord](t, rec)
}

func TestHandler_InspectionCRUD(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)

	created := createInspection(t, router)
	assert.True(t, strings.HasPrefix(created.ID, "AUDIT-"))
	assert.Equal(t, models.InspectionDraft, created.Status)

	rec := do(t, router, http.MethodGet, "/api/inspections/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[models.InspectionRecord](t, rec))

	rec = do(t, router, http.MethodPatch, "/api/inspections/"+created.ID, `{"location":"Level 4"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.InspectionRecord](t, rec)
	assert.Equal(t, "Level 4", updated.Location)
	assert.Equal(t, "Menara Alpha", updated.ClientName)

	rec = do(t, router, http.MethodGet, "/api/inspections/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.InspectionRecord](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	rec = do(t, router, http.MethodDelete, "/api/inspections/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/inspections/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[utils.ErrorResponse](t, rec)
	assert.Equal(t, app.MsgInspectionNotFound, body.Error)
	assert.NotEmpty(t, body.TraceID)
}

func TestHandler_CreateInspectionRejects(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"clientName":`},
		{name: "unknown field", body: `{"clientName":"A","colour":"red"}`},
		{name: "missing client", body: `{"location":"Level 3"}`},
		{name: "bad date", body: `{"clientName":"A","date":"14/03/2026"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/inspections/", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_RecordsAndSummary(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)
	id := createInspection(t, router).ID
	base := "/api/inspections/" + id

	const hoseReels = `[{"location":"Lobby","hoseStatus":"Leaking","remarks":"drips at nozzle"},{"location":"Car park","hoseStatus":"Good"}]`
	rec := do(t, router, http.MethodPut, base+"/systems/hosereel", hoseReels)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, base+"/systems/hosereel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, hoseReels, rec.Body.String())

	rec = do(t, router, http.MethodGet, base+"/systems/hydrant", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgRecordNotFound, decode[utils.ErrorResponse](t, rec).Error)

	rec = do(t, router, http.MethodGet, base+"/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[models.Summary](t, rec)
	assert.Equal(t, models.StatusFault, summary.Overall)
	assert.Equal(t, models.StatusFault, summary.StatusOf(models.SystemHoseReel))
	assert.Equal(t, models.StatusPending, summary.StatusOf(models.SystemHydrant))
	require.Len(t, summary.Defects, 1)
	assert.Equal(t, "hosereel:0.hoseStatus", summary.Defects[0].ID)
	assert.Equal(t, models.DefectOpen, summary.Defects[0].State)

	rec = do(t, router, http.MethodPut, base+"/systems/hosereel/na", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	summary = decode[models.Summary](t, do(t, router, http.MethodGet, base+"/summary", ""))
	assert.Equal(t, models.StatusNA, summary.StatusOf(models.SystemHoseReel))
	assert.Empty(t, summary.Defects)

	rec = do(t, router, http.MethodDelete, base+"/systems/hosereel/na", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	summary = decode[models.Summary](t, do(t, router, http.MethodGet, base+"/summary", ""))
	assert.Equal(t, models.StatusFault, summary.StatusOf(models.SystemHoseReel))
}

func TestHandler_SaveRecordRejects(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)
	id := createInspection(t, router).ID

	tests := []struct {
		name   string
		target string
		body   string
		want   int
	}{
		{name: "unknown system", target: "/api/inspections/" + id + "/systems/sprinkler-head", body: `[]`, want: http.StatusNotFound},
		{name: "malformed", target: "/api/inspections/" + id + "/systems/hydrant", body: `[{"location":`, want: http.StatusBadRequest},
		{name: "empty", target: "/api/inspections/" + id + "/systems/hydrant", body: ``, want: http.StatusBadRequest},
		{name: "unknown inspection", target: "/api/inspections/AUDIT-1/systems/hydrant", body: `[]`, want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPut, tt.target, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_DefectOverrides(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)
	id := createInspection(t, router).ID
	base := "/api/inspections/" + id

	rec := do(t, router, http.MethodPut, base+"/systems/hydrant", `[{"location":"Gate A","valveStatus":"Damaged"}]`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPut, base+"/defects/hydrant%3A0.valveStatus/override",
		`{"severity":"critical","status":"acknowledged","remarks":"parts ordered","updatedBy":"Aiman"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	saved := decode[models.DefectOverride](t, rec)
	assert.Equal(t, models.SeverityCritical, saved.Severity)
	assert.NotNil(t, saved.UpdatedAt)

	rec = do(t, router, http.MethodGet, base+"/defects/overrides", "")
	require.Equal(t, http.StatusOK, rec.Code)
	registry := decode[models.DefectRegistry](t, rec)
	assert.Contains(t, registry, "hydrant:0.valveStatus")

	summary := decode[models.Summary](t, do(t, router, http.MethodGet, base+"/summary", ""))
	require.Len(t, summary.Defects, 1)
	assert.Equal(t, models.SeverityCritical, summary.Defects[0].Severity)
	assert.Equal(t, models.DefectAcknowledged, summary.Defects[0].State)
	assert.True(t, summary.Defects[0].Overridden)

	rec = do(t, router, http.MethodPut, base+"/defects/hydrant:0.valveStatus/override", `{"severity":"urgent"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodDelete, base+"/defects/hydrant:0.valveStatus/override", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, router, http.MethodDelete, base+"/defects/hydrant:0.valveStatus/override", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgOverrideNotFound, decode[utils.ErrorResponse](t, rec).Error)
}

func TestHandler_Lifecycle(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)
	id := createInspection(t, router).ID
	base := "/api/inspections/" + id

	rec := do(t, router, http.MethodPost, base+"/status", `{"status":"APPROVED"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPost, base+"/sync", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.InspectionPendingSync, decode[models.InspectionRecord](t, rec).Status)

	rec = do(t, router, http.MethodPost, base+"/status", `{"status":"SUBMITTED"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, base+"/certify", `{"supervisor":"Ng","pin":"9999"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgWrongPIN, decode[utils.ErrorResponse](t, rec).Error)

	rec = do(t, router, http.MethodPost, base+"/certify", `{"supervisor":"Ng","pin":"`+testPIN+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	approved := decode[models.InspectionRecord](t, rec)
	assert.Equal(t, models.InspectionApproved, approved.Status)
	assert.Equal(t, "Ng", approved.CertifiedBy)

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "save record", method: http.MethodPut, target: base + "/systems/hydrant", body: `[]`},
		{name: "mark na", method: http.MethodPut, target: base + "/systems/hydrant/na"},
		{name: "override", method: http.MethodPut, target: base + "/defects/hydrant:0.valveStatus/override", body: `{"status":"open"}`},
		{name: "update", method: http.MethodPatch, target: base, body: `{"location":"Roof"}`},
		{name: "delete", method: http.MethodDelete, target: base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
			assert.Equal(t, app.MsgInspectionLocked, decode[utils.ErrorResponse](t, rec).Error)
		})
	}
}

func TestHandler_Exports(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)
	id := createInspection(t, router).ID
	base := "/api/inspections/" + id

	rec := do(t, router, http.MethodPut, base+"/systems/extinguisher", `[{"location":"Kitchen","pressure":"Low"}]`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	tests := []struct {
		name        string
		target      string
		contentType string
		contains    []string
	}{
		{
			name:        "html report",
			target:      base + "/report",
			contentType: "text/html; charset=utf-8",
			contains:    []string{"<html", id, "Menara Alpha", "Kitchen"},
		},
		{
			name:        "share text",
			target:      base + "/share",
			contentType: "text/plain; charset=utf-8",
			contains:    []string{"*FIRE PROTECTION INSPECTION*", "[!!] Fire Extinguisher: FAULT (1)"},
		},
		{
			name:        "yaml summary",
			target:      base + "/summary?format=yml",
			contentType: "application/yaml",
			contains:    []string{"overall: FAULT", "inspectionId: " + id},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}

	rec = do(t, router, http.MethodGet, base+"/summary?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgUnknownFormat, decode[utils.ErrorResponse](t, rec).Error)
}

func TestHandler_SummaryOfUnknownInspection(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)

	rec := do(t, router, http.MethodGet, "/api/inspections/AUDIT-42/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[models.Summary](t, rec)
	assert.Nil(t, summary.Inspection)
	assert.Equal(t, models.StatusPending, summary.Overall)
	assert.Equal(t, len(models.Catalog), summary.Counts[models.StatusPending])
}

func TestHandler_Version(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)

	rec := do(t, router, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[versionResponse](t, rec)
	assert.Equal(t, versionResponse{Version: "test", Date: "2026-03-14", Commit: "abc123", Vocabulary: "standard"}, got)
}

func TestHandler_NotFoundAndMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)

	rec := do(t, router, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = do(t, router, http.MethodPut, "/api/version", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_TraceID(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/inspections/AUDIT-1", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "trace-123", decode[utils.ErrorResponse](t, rec).TraceID)

	rec = do(t, router, http.MethodGet, "/api/version", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestHandler_GZip(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)
	id := createInspection(t, router).ID

	var body bytes.Buffer
	gz := gzip.NewWriter(&body)
	_, err := gz.Write([]byte(`[{"location":"Stair 1","lampStatus":"Blown"}]`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/inspections/"+id+"/systems/emergency-light", &body)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Encoding"))

	req = httptest.NewRequest(http.MethodGet, "/api/inspections/"+id+"/systems/emergency-light", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"location":"Stair 1","lampStatus":"Blown"}]`, string(plain))
}

func TestHandler_InvalidGZipBody(t *testing.T) {
	router := newTestRouter(t, config.Server{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/inspections/AUDIT-1/systems/hydrant", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_RateLimit(t *testing.T) {
	router := newTestRouter(t, config.Server{RateLimit: 2}, nil)

	for range 2 {
		assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/version", "").Code)
	}
	rec := do(t, router, http.MethodGet, "/api/version", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, app.MsgTooManyRequests, decode[utils.ErrorResponse](t, rec).Error)
}

func TestHandler_CORS(t *testing.T) {
	const office = "https://office.example.com"

	tests := []struct {
		name      string
		origins   []string
		origin    string
		wantAllow string
	}{
		{name: "configured origin", origins: []string{office}, origin: office, wantAllow: office},
		{name: "foreign origin", origins: []string{office}, origin: "https://evil.example.com"},
		{name: "cors disabled", origin: office},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, config.Server{CORSOrigins: tt.origins}, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	const office = "https://office.example.com"
	router := newTestRouter(t, config.Server{CORSOrigins: []string{office}}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/inspections/AUDIT-1/systems/hydrant", nil)
	req.Header.Set("Origin", office)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, office, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestHandler_MetricsByRoutePattern(t *testing.T) {
	recorder := &routeRecorder{Recorder: metrics.Nop()}
	router := newTestRouter(t, config.Server{}, recorder)

	do(t, router, http.MethodGet, "/api/inspections/AUDIT-7/summary", "")
	do(t, router, http.MethodGet, "/api/inspections/AUDIT-8/summary", "")

	seen := recorder.seen()
	require.Len(t, seen, 2)
	for _, route := range seen {
		assert.Equal(t, "GET /api/inspections/{inspectionID}/summary", route)
	}
}

func TestHandler_PrometheusEndpoint(t *testing.T) {
	router := newTestRouter(t, config.Server{}, metrics.NewPrometheusRecorder())

	do(t, router, http.MethodGet, "/api/inspections/AUDIT-7/summary", "")

	rec := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fireaudit_")
}
