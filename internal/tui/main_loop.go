// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

type screen int

const (
	screenList screen = iota
	screenSummary
	screenDefects
	screenCreate
	screenOverride
	screenCertify
	screenBuildInfo
)

var errNothingToCopy = errors.New("nothing to copy")

type mainLoopModel struct {
	ctx       context.Context
	services  *service.Services
	renderer  *export.Renderer
	buildInfo models.AppBuildInfo
	copy      func(string) error
	now       func() time.Time

	screen      screen
	inspections []models.InspectionRecord
	idx         int
	loading     bool

	summary   models.Summary
	sysIdx    int
	defectIdx int

	create   inspectionForm
	override overrideForm
	certify  certifyForm

	showConfirm bool
	confirm     confirmModel
	showError   bool
	overlay     errorOverlayModel

	status string
}

func newMainLoopModel(ctx context.Context, services *service.Services, renderer *export.Renderer, buildInfo models.AppBuildInfo) mainLoopModel {
	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		renderer:  renderer,
		buildInfo: buildInfo,
		copy:      func(string) error { return errNothingToCopy },
		now:       time.Now,
		loading:   true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadInspections()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inspectionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.inspections = msg.items
		m.idx = clamp(m.idx, len(m.inspections))
		return m, nil
	case summaryLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.summary = msg.summary
		m.sysIdx = clamp(m.sysIdx, len(m.summary.Systems))
		m.defectIdx = clamp(m.defectIdx, len(m.summary.Defects))
		return m, nil
	case inspectionCreatedMsg:
		m.create.submitting = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = "Inspection " + msg.record.ID + " created"
		m.screen = screenSummary
		m.sysIdx, m.defectIdx = 0, 0
		return m, tea.Batch(m.cmdLoadInspections(), m.cmdLoadSummary(msg.record.ID))
	case actionDoneMsg:
		if msg.err != nil {
			return m.fail(msg.err), m.cmdReload()
		}
		m.status = msg.status
		return m, m.cmdReload()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.showError = false
		}
		return m, nil
	}
	if m.showConfirm {
		return m.updateConfirm(keyMsg)
	}

	switch m.screen {
	case screenCreate:
		return m.updateCreate(keyMsg)
	case screenOverride:
		return m.updateOverride(keyMsg)
	case screenCertify:
		return m.updateCertify(keyMsg)
	case screenBuildInfo:
		if key.Matches(keyMsg, keys.esc, keys.version) {
			m.screen = screenList
		}
		return m, nil
	case screenSummary:
		return m.updateSummary(keyMsg)
	case screenDefects:
		return m.updateDefects(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.inspections)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoadInspections()
	case key.Matches(msg, keys.newItem):
		m.create = newInspectionForm(m.now())
		m.screen = screenCreate
	case key.Matches(msg, keys.version):
		m.screen = screenBuildInfo
	case key.Matches(msg, keys.delete):
		if rec, ok := m.current(); ok {
			m.showConfirm = true
			m.confirm = confirmModel{message: rec.ID + " " + rec.ClientName}
		}
	case key.Matches(msg, keys.enter):
		if rec, ok := m.current(); ok {
			m.screen = screenSummary
			m.summary = models.Summary{InspectionID: rec.ID}
			m.sysIdx, m.defectIdx = 0, 0
			return m, m.cmdLoadSummary(rec.ID)
		}
	}
	return m, nil
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		rec, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdAction("Inspection "+rec.ID+" deleted", func(ctx context.Context) error {
			return m.services.InspectionService.Delete(ctx, rec.ID)
		})
	case key.Matches(msg, keys.no):
		m.showConfirm = false
	}
	return m, nil
}

func (m mainLoopModel) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	id := m.summary.InspectionID
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return m, m.cmdLoadInspections()
	case key.Matches(msg, keys.up):
		if m.sysIdx > 0 {
			m.sysIdx--
		}
	case key.Matches(msg, keys.down):
		if m.sysIdx < len(m.summary.Systems)-1 {
			m.sysIdx++
		}
	case key.Matches(msg, keys.reload):
		return m, m.cmdLoadSummary(id)
	case key.Matches(msg, keys.defects):
		m.screen = screenDefects
		m.defectIdx = 0
	case key.Matches(msg, keys.toggleNA):
		row, ok := m.currentSystem()
		if !ok {
			return m, nil
		}
		if row.Status == models.StatusNA {
			return m, m.cmdAction(row.Title+" is applicable again", func(ctx context.Context) error {
				return m.services.SystemRecordService.ClearNA(ctx, id, row.SystemID)
			})
		}
		return m, m.cmdAction(row.Title+" marked N/A", func(ctx context.Context) error {
			return m.services.SystemRecordService.MarkNA(ctx, id, row.SystemID)
		})
	case key.Matches(msg, keys.copy):
		text, err := m.renderer.ShareText(m.summary)
		if err == nil {
			err = m.copy(text)
		}
		if err != nil {
			return m.fail(err), nil
		}
		m.status = "Share text copied to clipboard"
	case key.Matches(msg, keys.sync):
		return m, m.cmdTransition("Queued for sync", func(ctx context.Context) (models.InspectionRecord, error) {
			return m.services.InspectionService.MarkForSync(ctx, id)
		})
	case key.Matches(msg, keys.submit):
		return m, m.cmdTransition("Submitted for review", func(ctx context.Context) (models.InspectionRecord, error) {
			return m.services.InspectionService.Transition(ctx, id, models.InspectionSubmitted)
		})
	case key.Matches(msg, keys.reopen):
		return m, m.cmdTransition("Returned to draft", func(ctx context.Context) (models.InspectionRecord, error) {
			return m.services.InspectionService.Transition(ctx, id, models.InspectionDraft)
		})
	case key.Matches(msg, keys.certify):
		m.certify = newCertifyForm(id)
		m.screen = screenCertify
	}
	return m, nil
}

func (m mainLoopModel) updateDefects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	id := m.summary.InspectionID
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenSummary
	case key.Matches(msg, keys.up):
		if m.defectIdx > 0 {
			m.defectIdx--
		}
	case key.Matches(msg, keys.down):
		if m.defectIdx < len(m.summary.Defects)-1 {
			m.defectIdx++
		}
	case key.Matches(msg, keys.enter):
		if d, ok := m.currentDefect(); ok {
			m.override = newOverrideForm(d)
			m.screen = screenOverride
		}
	case key.Matches(msg, keys.clear):
		d, ok := m.currentDefect()
		if !ok || !d.Overridden {
			return m, nil
		}
		return m, m.cmdAction("Override removed", func(ctx context.Context) error {
			return m.services.DefectRegistryService.ClearOverride(ctx, id, d.ID)
		})
	}
	return m, nil
}

func (m mainLoopModel) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.create = m.create.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.create = m.create.move(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.create.submitting {
			return m, nil
		}
		m.create.submitting = true
		details := m.create.details()
		ctx, svc := m.ctx, m.services.InspectionService
		return m, func() tea.Msg {
			rec, err := svc.Create(ctx, details)
			return inspectionCreatedMsg{record: rec, err: err}
		}
	}
	var cmd tea.Cmd
	m.create, cmd = m.create.update(msg)
	return m, cmd
}

func (m mainLoopModel) updateOverride(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenDefects
		return m, nil
	case key.Matches(msg, keys.tab):
		m.override = m.override.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.override = m.override.move(-1)
		return m, nil
	case m.override.focus != overrideRemarks && key.Matches(msg, keys.left):
		m.override = m.override.cycle(-1)
		return m, nil
	case m.override.focus != overrideRemarks && key.Matches(msg, keys.right):
		m.override = m.override.cycle(1)
		return m, nil
	case key.Matches(msg, keys.enter):
		m.screen = screenDefects
		id, defectID := m.summary.InspectionID, m.override.defect.ID
		override := m.override.override(m.technician())
		return m, m.cmdAction("Defect "+defectID+" updated", func(ctx context.Context) error {
			_, err := m.services.DefectRegistryService.SetOverride(ctx, id, defectID, override)
			return err
		})
	}
	var cmd tea.Cmd
	m.override, cmd = m.override.update(msg)
	return m, cmd
}

func (m mainLoopModel) updateCertify(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenSummary
		return m, nil
	case key.Matches(msg, keys.tab, keys.backtab):
		m.certify = m.certify.move()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.screen = screenSummary
		id := m.certify.inspectionID
		supervisor, pin := m.certify.values()
		return m, m.cmdTransition("Certified by "+supervisor, func(ctx context.Context) (models.InspectionRecord, error) {
			return m.services.InspectionService.Certify(ctx, id, supervisor, pin)
		})
	}
	var cmd tea.Cmd
	m.certify, cmd = m.certify.update(msg)
	return m, cmd
}

// updateInputs forwards non-key messages, such as cursor blinks, to the
// focused form.
func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenCreate:
		m.create, cmd = m.create.update(msg)
	case screenOverride:
		m.override, cmd = m.override.update(msg)
	case screenCertify:
		m.certify, cmd = m.certify.update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) fail(err error) mainLoopModel {
	m.showError = true
	m.overlay = errorOverlayModel{message: humanizeError(err)}
	return m
}

func (m mainLoopModel) current() (models.InspectionRecord, bool) {
	if m.idx < 0 || m.idx >= len(m.inspections) {
		return models.InspectionRecord{}, false
	}
	return m.inspections[m.idx], true
}

func (m mainLoopModel) currentSystem() (models.SystemStatus, bool) {
	if m.sysIdx < 0 || m.sysIdx >= len(m.summary.Systems) {
		return models.SystemStatus{}, false
	}
	return m.summary.Systems[m.sysIdx], true
}

func (m mainLoopModel) currentDefect() (models.DefectEntry, bool) {
	if m.defectIdx < 0 || m.defectIdx >= len(m.summary.Defects) {
		return models.DefectEntry{}, false
	}
	return m.summary.Defects[m.defectIdx], true
}

// technician names the author of overrides made from this terminal.
func (m mainLoopModel) technician() string {
	if in := m.summary.Inspection; in != nil {
		if in.TechnicianName != "" {
			return in.TechnicianName
		}
		return in.TechnicianID
	}
	return ""
}

func (m mainLoopModel) cmdLoadInspections() tea.Cmd {
	ctx, svc := m.ctx, m.services.InspectionService
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return inspectionsLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdLoadSummary(id string) tea.Cmd {
	ctx, svc := m.ctx, m.services.ReportService
	return func() tea.Msg {
		summary, err := svc.BuildSummary(ctx, id)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

func (m mainLoopModel) cmdAction(status string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{status: status, err: fn(ctx)}
	}
}

func (m mainLoopModel) cmdTransition(status string, fn func(ctx context.Context) (models.InspectionRecord, error)) tea.Cmd {
	return m.cmdAction(status, func(ctx context.Context) error {
		_, err := fn(ctx)
		return err
	})
}

// cmdReload refreshes whatever the current screen shows.
func (m mainLoopModel) cmdReload() tea.Cmd {
	if m.screen == screenList || m.summary.InspectionID == "" {
		return m.cmdLoadInspections()
	}
	return m.cmdLoadSummary(m.summary.InspectionID)
}

func (m mainLoopModel) View() string {
	var view string
	switch m.screen {
	case screenCreate:
		view = m.create.View()
	case screenOverride:
		view = m.override.View()
	case screenCertify:
		view = m.certify.View()
	case screenBuildInfo:
		view = renderBuildInfoWindow(m.buildInfo, m.services.Vocabulary.Name())
	case screenSummary:
		view = m.viewSummary()
	case screenDefects:
		view = m.viewDefects()
	default:
		view = m.viewList()
	}

	switch {
	case m.showError:
		view += "\n" + m.overlay.View()
	case m.showConfirm:
		view += "\n" + m.confirm.View()
	case m.status != "":
		view += "\n  " + m.status
	}
	return view
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.inspections) == 0:
		b.WriteString("No inspections yet. Press n to start one.")
	default:
		for i, rec := range m.inspections {
			line := fmt.Sprintf("%s  %-10s  %-12s  %s", rec.ID, valueOrDash(rec.Date), rec.Status, fitText(rec.ClientName, 30))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor(i == m.idx))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return renderPage("FIRE PROTECTION INSPECTIONS", b.String(),
		"enter: open  n: new  d: delete  r: reload  v: about  q: quit")
}

func (m mainLoopModel) viewSummary() string {
	var b strings.Builder
	if in := m.summary.Inspection; in != nil {
		fmt.Fprintf(&b, "Client: %s   Location: %s   Date: %s\n", valueOrDash(in.ClientName), valueOrDash(in.Location), valueOrDash(in.Date))
		fmt.Fprintf(&b, "Report status: %s", in.Status)
		if in.CertifiedBy != "" {
			fmt.Fprintf(&b, "   Certified by: %s", in.CertifiedBy)
		}
		b.WriteString("\n\n")
	}
	for i, row := range m.summary.Systems {
		line := fmt.Sprintf("%-20s %s", row.Title, renderStatus(row.Status))
		if row.DefectCount > 0 {
			line += fmt.Sprintf(" (%d)", row.DefectCount)
		}
		b.WriteString(cursor(i == m.sysIdx))
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nOverall: %s   Defects: %d", renderStatus(m.summary.Overall), len(m.summary.Defects))

	return renderPage("REPORT "+m.summary.InspectionID, b.String(),
		"a: toggle N/A  x: defects  c: copy share text  s: sync  u: submit  b: back to draft  p: certify  esc: back")
}

func (m mainLoopModel) viewDefects() string {
	var b strings.Builder
	if len(m.summary.Defects) == 0 {
		b.WriteString("No defects recorded.")
	}
	for i, d := range m.summary.Defects {
		mark := ""
		if d.Overridden {
			mark = " *"
		}
		fmt.Fprintf(&b, "%s%d. %s / %s: %s - %s [%s, %s]%s\n", cursor(i == m.defectIdx), i+1,
			d.Category, d.Location, d.Label, d.Finding, renderSeverity(d.Severity), d.State, mark)
		if i == m.defectIdx && d.Remarks != "" {
			b.WriteString("     ")
			b.WriteString(helpStyle.Render(d.Remarks))
			b.WriteString("\n")
		}
	}
	return renderPage("DEFECTS "+m.summary.InspectionID, b.String(),
		"enter: assess  z: clear override  esc: back")
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
