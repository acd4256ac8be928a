// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

var (
	severityOptions = []models.Severity{models.SeverityCritical, models.SeverityMajor, models.SeverityMinor}
	stateOptions    = []models.DefectState{models.DefectOpen, models.DefectAcknowledged, models.DefectDeferred, models.DefectRectified}
)

const (
	overrideSeverity = iota
	overrideState
	overrideRemarks
	overrideFields
)

// overrideForm edits the technician assessment of one defect. Severity and
// state are picked with left/right, remarks are typed.
type overrideForm struct {
	defect      models.DefectEntry
	severityIdx int
	stateIdx    int
	remarks     textinput.Model
	focus       int
}

func newOverrideForm(d models.DefectEntry) overrideForm {
	remarks := textinput.New()
	remarks.Width = 50
	remarks.CharLimit = 1000
	remarks.Placeholder = d.Remarks

	return overrideForm{
		defect:      d,
		severityIdx: max(slices.Index(severityOptions, d.Severity), 0),
		stateIdx:    max(slices.Index(stateOptions, d.State), 0),
		remarks:     remarks,
	}
}

func (f overrideForm) override(updatedBy string) models.DefectOverride {
	return models.DefectOverride{
		Severity:  severityOptions[f.severityIdx],
		State:     stateOptions[f.stateIdx],
		Remarks:   strings.TrimSpace(f.remarks.Value()),
		UpdatedBy: updatedBy,
	}
}

func (f overrideForm) move(delta int) overrideForm {
	f.focus = (f.focus + delta + overrideFields) % overrideFields
	if f.focus == overrideRemarks {
		f.remarks.Focus()
	} else {
		f.remarks.Blur()
	}
	return f
}

func (f overrideForm) cycle(delta int) overrideForm {
	switch f.focus {
	case overrideSeverity:
		f.severityIdx = (f.severityIdx + delta + len(severityOptions)) % len(severityOptions)
	case overrideState:
		f.stateIdx = (f.stateIdx + delta + len(stateOptions)) % len(stateOptions)
	}
	return f
}

func (f overrideForm) update(msg tea.Msg) (overrideForm, tea.Cmd) {
	if f.focus != overrideRemarks {
		return f, nil
	}
	var cmd tea.Cmd
	f.remarks, cmd = f.remarks.Update(msg)
	return f, cmd
}

func (f overrideForm) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s / %s\n%s: %s\n\n", f.defect.Category, f.defect.Location, f.defect.Label, f.defect.Finding)
	fmt.Fprintf(&b, "%sSeverity: < %s >\n", cursor(f.focus == overrideSeverity), renderSeverity(severityOptions[f.severityIdx]))
	fmt.Fprintf(&b, "%sState:    < %s >\n", cursor(f.focus == overrideState), stateOptions[f.stateIdx])
	fmt.Fprintf(&b, "%sRemarks:  [%s]\n", cursor(f.focus == overrideRemarks), f.remarks.View())
	return renderPage("DEFECT "+f.defect.ID, b.String(), "tab: next field  left/right: change  enter: save  esc: cancel")
}
