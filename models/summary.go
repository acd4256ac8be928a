package models

// Status is the classification of one category in a report.
type Status string

const (
	StatusNormal  Status = "NORMAL"
	StatusFault   Status = "FAULT"
	StatusNA      Status = "N/A"
	StatusPending Status = "PENDING"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// SystemStatus is one row of the report status table.
type SystemStatus struct {
	SystemID    SystemID `json:"systemId" yaml:"systemId"`
	Title       string   `json:"title" yaml:"title"`
	Status      Status   `json:"status" yaml:"status"`
	DefectCount int      `json:"defectCount" yaml:"defectCount"`
}

// Summary is the aggregated result for one inspection. It carries no
// timestamps so that two builds over unchanged storage are equal.
type Summary struct {
	InspectionID string            `json:"inspectionId" yaml:"inspectionId"`
	Inspection   *InspectionRecord `json:"inspection,omitempty" yaml:"inspection,omitempty"`
	Systems      []SystemStatus    `json:"systems" yaml:"systems"`
	Defects      []DefectEntry     `json:"defects" yaml:"defects"`
	Overall      Status            `json:"overall" yaml:"overall"`
	Counts       map[Status]int    `json:"counts" yaml:"counts"`
}

// StatusOf returns the status of one category, or PENDING when the category
// is not part of the summary.
func (s Summary) StatusOf(id SystemID) Status {
	for _, row := range s.Systems {
		if row.SystemID == id {
			return row.Status
		}
	}
	return StatusPending
}

// DefectsOf returns the defects belonging to one category, in report order.
func (s Summary) DefectsOf(id SystemID) []DefectEntry {
	var out []DefectEntry
	for _, d := range s.Defects {
		if d.SystemID == id {
			out = append(out, d)
		}
	}
	return out
}
