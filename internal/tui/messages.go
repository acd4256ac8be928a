package tui

import (
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

type inspectionsLoadedMsg struct {
	items []models.InspectionRecord
	err   error
}

type summaryLoadedMsg struct {
	summary models.Summary
	err     error
}

type inspectionCreatedMsg struct {
	record models.InspectionRecord
	err    error
}

// actionDoneMsg reports the result of a write. On success the list and, if
// one is open, the summary are reloaded.
type actionDoneMsg struct {
	status string
	err    error
}
