package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

func newTestModel(t *testing.T) (mainLoopModel, *service.Services) {
	t.Helper()
	services, err := service.NewServices(store.NewMemoryStore(), config.App{Vocabulary: "standard", Version: "test"}, nil, logger.Nop())
	require.NoError(t, err)
	renderer, err := export.New()
	require.NoError(t, err)

	m := newMainLoopModel(context.Background(), services, renderer, models.NewAppBuildInfo("1.0.0", "", ""))
	m.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	return m, services
}

// run executes cmd and feeds every message produced by this package back
// into the model. Messages of bubbles components, such as cursor blinks,
// are dropped so the loop never waits on timers.
func run(t *testing.T, m mainLoopModel, cmd tea.Cmd) mainLoopModel {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 50, "command loop did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case inspectionsLoadedMsg, summaryLoadedMsg, inspectionCreatedMsg, actionDoneMsg:
			updated, c := m.Update(msg)
			m = updated.(mainLoopModel)
			queue = append(queue, c)
		}
	}
	return m
}

func press(t *testing.T, m mainLoopModel, keys ...string) mainLoopModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, cmd := m.Update(msg)
		m = run(t, updated.(mainLoopModel), cmd)
	}
	return m
}

func typeText(t *testing.T, m mainLoopModel, s string) mainLoopModel {
	t.Helper()
	for _, r := range s {
		m = press(t, m, string(r))
	}
	return m
}

func TestMainLoop_CreateInspection(t *testing.T) {
	m, services := newTestModel(t)
	m = run(t, m, m.Init())
	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "No inspections yet")

	m = press(t, m, "n")
	require.Equal(t, screenCreate, m.screen)
	m = typeText(t, m, "Menara Alpha")
	m = press(t, m, "tab")
	m = typeText(t, m, "Level 3")
	m = press(t, m, "enter")

	require.Equal(t, screenSummary, m.screen, m.View())
	require.Len(t, m.inspections, 1)
	assert.Equal(t, "Menara Alpha", m.inspections[0].ClientName)
	assert.Equal(t, m.inspections[0].ID, m.summary.InspectionID)
	assert.Len(t, m.summary.Systems, len(models.Catalog))

	stored, err := services.InspectionService.Get(context.Background(), m.summary.InspectionID)
	require.NoError(t, err)
	assert.Equal(t, "Level 3", stored.Location)
}

func TestMainLoop_CreateRejectedShowsError(t *testing.T) {
	m, _ := newTestModel(t)
	m = run(t, m, m.Init())

	m = press(t, m, "n", "enter")
	assert.True(t, m.showError)
	assert.Equal(t, screenCreate, m.screen)

	m = press(t, m, "esc")
	assert.False(t, m.showError)
}

func seedInspection(t *testing.T, services *service.Services) models.InspectionRecord {
	t.Helper()
	ctx := context.Background()
	rec, err := services.InspectionService.Create(ctx, models.InspectionDetails{ClientName: "Menara Alpha", TechnicianName: "Aiman"})
	require.NoError(t, err)
	require.NoError(t, services.SystemRecordService.Save(ctx, rec.ID, models.SystemHydrant,
		[]byte(`[{"location":"Gate A","valveStatus":"Damaged","remarks":"seized"}]`)))
	return rec
}

func TestMainLoop_SummaryToggleNA(t *testing.T) {
	m, services := newTestModel(t)
	seedInspection(t, services)
	m = run(t, m, m.Init())

	m = press(t, m, "enter")
	require.Equal(t, screenSummary, m.screen)
	assert.Equal(t, models.StatusFault, m.summary.Overall)

	// move the cursor to the hydrant row
	for m.summary.Systems[m.sysIdx].SystemID != models.SystemHydrant {
		m = press(t, m, "down")
	}
	m = press(t, m, "a")
	assert.Equal(t, models.StatusNA, m.summary.StatusOf(models.SystemHydrant))
	assert.Equal(t, "Hydrant marked N/A", m.status)

	m = press(t, m, "a")
	assert.Equal(t, models.StatusFault, m.summary.StatusOf(models.SystemHydrant))
}

func TestMainLoop_OverrideDefect(t *testing.T) {
	m, services := newTestModel(t)
	rec := seedInspection(t, services)
	m = run(t, m, m.Init())

	m = press(t, m, "enter", "x")
	require.Equal(t, screenDefects, m.screen)
	require.Len(t, m.summary.Defects, 1)
	assert.Equal(t, models.SeverityMajor, m.summary.Defects[0].Severity)

	m = press(t, m, "enter")
	require.Equal(t, screenOverride, m.screen)
	// major -> minor, then open -> acknowledged
	m = press(t, m, "right", "tab", "right", "tab")
	m = typeText(t, m, "parts ordered")
	m = press(t, m, "enter")

	require.Equal(t, screenDefects, m.screen)
	d := m.summary.Defects[0]
	assert.Equal(t, models.SeverityMinor, d.Severity)
	assert.Equal(t, models.DefectAcknowledged, d.State)
	assert.Equal(t, "parts ordered", d.Remarks)
	assert.True(t, d.Overridden)

	registry, err := services.DefectRegistryService.Overrides(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aiman", registry[d.ID].UpdatedBy)

	m = press(t, m, "z")
	assert.False(t, m.summary.Defects[0].Overridden)
	assert.Equal(t, models.SeverityMajor, m.summary.Defects[0].Severity)
}

func TestMainLoop_CopyShareText(t *testing.T) {
	m, services := newTestModel(t)
	seedInspection(t, services)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	m = run(t, m, m.Init())

	m = press(t, m, "enter", "c")
	assert.Contains(t, copied, "*FIRE PROTECTION INSPECTION*")
	assert.Contains(t, copied, "Gate A")
	assert.Equal(t, "Share text copied to clipboard", m.status)

	m.copy = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, "c")
	assert.True(t, m.showError)
	assert.Contains(t, m.overlay.message, "no clipboard")
}

func TestMainLoop_LifecycleAndLock(t *testing.T) {
	m, services := newTestModel(t)
	rec := seedInspection(t, services)
	m = run(t, m, m.Init())

	m = press(t, m, "enter", "s")
	assert.Equal(t, models.InspectionPendingSync, m.summary.Inspection.Status)

	m = press(t, m, "u")
	assert.Equal(t, models.InspectionSubmitted, m.summary.Inspection.Status)

	// certification is disabled without a configured PIN hash
	m = press(t, m, "p")
	require.Equal(t, screenCertify, m.screen)
	m = typeText(t, m, "Ng")
	m = press(t, m, "tab")
	m = typeText(t, m, "4321")
	m = press(t, m, "enter")
	assert.True(t, m.showError)
	assert.Equal(t, screenSummary, m.screen)

	m = press(t, m, "esc", "b")
	assert.Equal(t, models.InspectionDraft, m.summary.Inspection.Status)

	stored, err := services.InspectionService.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InspectionDraft, stored.Status)
}

func TestMainLoop_DeleteWithConfirmation(t *testing.T) {
	m, services := newTestModel(t)
	seedInspection(t, services)
	m = run(t, m, m.Init())
	require.Len(t, m.inspections, 1)

	m = press(t, m, "d")
	assert.True(t, m.showConfirm)
	m = press(t, m, "n")
	assert.False(t, m.showConfirm)
	assert.Len(t, m.inspections, 1)

	m = press(t, m, "d", "y")
	assert.Empty(t, m.inspections)
}

func TestMainLoop_BuildInfo(t *testing.T) {
	m, _ := newTestModel(t)
	m = run(t, m, m.Init())

	m = press(t, m, "v")
	require.Equal(t, screenBuildInfo, m.screen)
	view := m.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "standard")

	m = press(t, m, "esc")
	assert.Equal(t, screenList, m.screen)
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "", humanizeError(nil))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
	assert.NotEqual(t, service.ErrInspectionLocked.Error(), humanizeError(service.ErrInspectionLocked))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Menara ...", fitText("Menara Alpha Tower", 10))
	assert.Equal(t, "Me", fitText("Menara", 2))
}
