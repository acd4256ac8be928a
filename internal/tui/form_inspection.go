// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const (
	fieldClient = iota
	fieldLocation
	fieldDate
	fieldTechnician
	fieldTechnicianID
)

var inspectionFormLabels = []string{
	fieldClient:       "Client:        ",
	fieldLocation:     "Location:      ",
	fieldDate:         "Date:          ",
	fieldTechnician:   "Technician:    ",
	fieldTechnicianID: "Technician ID: ",
}

type inspectionForm struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newInspectionForm(today time.Time) inspectionForm {
	inputs := make([]textinput.Model, len(inspectionFormLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 200
	}
	inputs[fieldDate].Placeholder = today.Format(time.DateOnly)
	inputs[fieldClient].Focus()
	return inspectionForm{inputs: inputs}
}

func (f inspectionForm) details() models.InspectionDetails {
	value := func(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }
	return models.InspectionDetails{
		ClientName:     value(fieldClient),
		Location:       value(fieldLocation),
		Date:           value(fieldDate),
		TechnicianName: value(fieldTechnician),
		TechnicianID:   value(fieldTechnicianID),
	}
}

func (f inspectionForm) move(delta int) inspectionForm {
	n := len(f.inputs)
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + n) % n
	f.inputs[f.focus].Focus()
	return f
}

func (f inspectionForm) update(msg tea.Msg) (inspectionForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f inspectionForm) View() string {
	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(cursor(i == f.focus))
		b.WriteString(inspectionFormLabels[i])
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	if f.submitting {
		b.WriteString("\nSaving...")
	}
	return renderPage("NEW INSPECTION", b.String(), "tab: next field  enter: save  esc: cancel")
}
