// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Severity ranks how urgently a defect must be rectified.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// IsValid returns true if the severity is a recognized value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor:
		return true
	}
	return false
}

// DefectState is the follow-up state a technician assigns to a defect.
type DefectState string

const (
	DefectOpen         DefectState = "open"
	DefectAcknowledged DefectState = "acknowledged"
	DefectDeferred     DefectState = "deferred"
	DefectRectified    DefectState = "rectified"
)

// String returns the string representation of the state.
func (s DefectState) String() string {
	return string(s)
}

// IsValid returns true if the state is a recognized value.
func (s DefectState) IsValid() bool {
	switch s {
	case DefectOpen, DefectAcknowledged, DefectDeferred, DefectRectified:
		return true
	}
	return false
}

// DefectEntry is one fault found in a category record. Entries are derived
// on every read and are never stored themselves.
type DefectEntry struct {
	// ID is stable across recomputation: "<system>:<path>", e.g.
	// "fire-alarm:panelSpecs.batteryStatus" or "hosereel:0.hoseStatus".
	ID       string   `json:"id" yaml:"id"`
	SystemID SystemID `json:"systemId" yaml:"systemId"`
	Category string   `json:"category" yaml:"category"`
	Location string   `json:"location" yaml:"location"`
	Label    string   `json:"label" yaml:"label"`

	// Finding is the vocabulary term that flagged the field, e.g. "Leaking".
	Finding  string      `json:"finding" yaml:"finding"`
	Remarks  string      `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	Photo    string      `json:"photo,omitempty" yaml:"-"`
	Severity Severity    `json:"severity" yaml:"severity"`
	State    DefectState `json:"state" yaml:"state"`

	// Overridden is set when a registry override replaced any default.
	Overridden bool `json:"overridden,omitempty" yaml:"overridden,omitempty"`
}

// HasPhoto reports whether the entry carries photo evidence.
func (d DefectEntry) HasPhoto() bool {
	return d.Photo != ""
}

// DefectOverride is a technician's manual assessment of a defect, stored in
// the defect registry under defect_registry_<id>. Empty fields keep the
// computed default.
type DefectOverride struct {
	Severity  Severity    `json:"severity,omitempty"`
	State     DefectState `json:"status,omitempty"`
	Remarks   string      `json:"remarks,omitempty"`
	UpdatedBy string      `json:"updatedBy,omitempty"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty"`
}

// DefectRegistry maps defect IDs to overrides.
type DefectRegistry map[string]DefectOverride
