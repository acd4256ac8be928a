package defect

import "github.com/unitytechnetwork/Afifi-sub000/models"

var severityByFinding = map[string]models.Severity{
	"Failed":   models.SeverityCritical,
	"Blown":    models.SeverityCritical,
	"Blocked":  models.SeverityCritical,
	"Low":      models.SeverityMinor,
	"Loose":    models.SeverityMinor,
	"Corroded": models.SeverityMinor,
	"Expired":  models.SeverityMinor,
	"High":     models.SeverityMinor,
}

// DefaultSeverity returns the severity assigned to a finding before any
// technician override. Unlisted findings are major.
func DefaultSeverity(finding string) models.Severity {
	if s, ok := severityByFinding[finding]; ok {
		return s
	}
	return models.SeverityMajor
}

// ApplyOverrides replaces computed severity, state and remarks with the
// values stored in the registry. Entries are updated in place and returned.
// Registry entries without a matching defect are ignored.
func ApplyOverrides(entries []models.DefectEntry, registry models.DefectRegistry) []models.DefectEntry {
	if len(registry) == 0 {
		return entries
	}
	for i := range entries {
		o, ok := registry[entries[i].ID]
		if !ok {
			continue
		}
		if o.Severity.IsValid() {
			entries[i].Severity = o.Severity
			entries[i].Overridden = true
		}
		if o.State.IsValid() {
			entries[i].State = o.State
			entries[i].Overridden = true
		}
		if o.Remarks != "" {
			entries[i].Remarks = o.Remarks
			entries[i].Overridden = true
		}
	}
	return entries
}
