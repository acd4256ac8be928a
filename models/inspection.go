package models

import "time"

// InspectionStatus is the lifecycle state of an inspection.
type InspectionStatus string

const (
	// InspectionDraft is an inspection the technician is still filling in.
	InspectionDraft InspectionStatus = "DRAFT"

	// InspectionPendingSync is an inspection queued for upload. Upload is
	// simulated locally; nothing leaves the device.
	InspectionPendingSync InspectionStatus = "PENDING_SYNC"

	// InspectionSubmitted is an inspection handed over for supervisor review.
	InspectionSubmitted InspectionStatus = "SUBMITTED"

	// InspectionApproved is an inspection certified by a supervisor. Terminal.
	InspectionApproved InspectionStatus = "APPROVED"
)

// String returns the wire value of the status.
func (s InspectionStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known lifecycle states.
func (s InspectionStatus) IsValid() bool {
	switch s {
	case InspectionDraft, InspectionPendingSync, InspectionSubmitted, InspectionApproved:
		return true
	}
	return false
}

// CanTransitionTo reports whether an inspection in state s may move to target.
func (s InspectionStatus) CanTransitionTo(target InspectionStatus) bool {
	switch s {
	case InspectionDraft:
		return target == InspectionPendingSync || target == InspectionSubmitted
	case InspectionPendingSync:
		return target == InspectionSubmitted || target == InspectionDraft
	case InspectionSubmitted:
		return target == InspectionApproved || target == InspectionDraft
	default:
		return false
	}
}

// InspectionRecord is the header of one site inspection, stored under
// setup_<id>.
type InspectionRecord struct {
	ID             string           `json:"id" yaml:"id"`
	ClientName     string           `json:"clientName" yaml:"clientName"`
	Location       string           `json:"location" yaml:"location"`
	Date           string           `json:"date" yaml:"date"`
	TechnicianID   string           `json:"technicianId,omitempty" yaml:"technicianId,omitempty"`
	TechnicianName string           `json:"technicianName,omitempty" yaml:"technicianName,omitempty"`
	Status         InspectionStatus `json:"status" yaml:"status"`
	CertifiedBy    string           `json:"certifiedBy,omitempty" yaml:"certifiedBy,omitempty"`
	CertifiedAt    *time.Time       `json:"certifiedAt,omitempty" yaml:"certifiedAt,omitempty"`
}

// InspectionDetails holds the editable header fields of an inspection.
// Empty fields are left unchanged on update.
type InspectionDetails struct {
	ClientName     string `json:"clientName"`
	Location       string `json:"location"`
	Date           string `json:"date"`
	TechnicianID   string `json:"technicianId"`
	TechnicianName string `json:"technicianName"`
}
