// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

// Field names accepted by [InspectionValidator.Validate].
const (
	FieldID         = "id"
	FieldClientName = "client_name"
	FieldLocation   = "location"
	FieldDate       = "date"
	FieldStatus     = "status"
	FieldTechnician = "technician"
	FieldSystemID   = "system_id"
	FieldRecord     = "record"
	FieldSeverity   = "severity"
	FieldState      = "state"
	FieldRemarks    = "remarks"
	FieldChange     = "change"
)

const (
	maxTextLength   = 200
	maxRemarksLen   = 2000
	maxRecordLength = 32 << 20 // photos are embedded as data URLs
	dateLayout      = "2006-01-02"
)

var inspectionIDPattern = regexp.MustCompile(`^AUDIT-[0-9]+$`)

// InspectionValidator checks inspection headers, category records and defect
// overrides before they are written to storage.
type InspectionValidator struct{}

// NewInspectionValidator returns the validator used by the services.
func NewInspectionValidator() Validator {
	return &InspectionValidator{}
}

func (v *InspectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InspectionRecord:
		return v.validateInspection(value, fields...)
	case *models.InspectionRecord:
		return v.validateInspection(*value, fields...)

	case models.InspectionDetails:
		return v.validateDetails(value, fields...)
	case *models.InspectionDetails:
		return v.validateDetails(*value, fields...)

	case models.SystemRecord:
		return v.validateSystemRecord(value, fields...)
	case *models.SystemRecord:
		return v.validateSystemRecord(*value, fields...)

	case models.DefectOverride:
		return v.validateOverride(value, fields...)
	case *models.DefectOverride:
		return v.validateOverride(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ValidInspectionID reports whether id has the AUDIT-<millis> form.
func ValidInspectionID(id string) bool {
	return inspectionIDPattern.MatchString(id)
}

func (v *InspectionValidator) validateInspection(rec models.InspectionRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldClientName, FieldLocation, FieldDate, FieldStatus, FieldTechnician}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !ValidInspectionID(rec.ID) {
				return ErrInvalidInspectionID
			}
		case FieldStatus:
			if !rec.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldClientName, FieldLocation, FieldDate, FieldTechnician:
			if err := v.validateDetailField(f, detailsOf(rec)); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *InspectionValidator) validateDetails(d models.InspectionDetails, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientName, FieldLocation, FieldDate, FieldTechnician}
	}
	for _, f := range fields {
		if err := v.validateDetailField(f, d); err != nil {
			return err
		}
	}
	return nil
}

func (v *InspectionValidator) validateDetailField(field string, d models.InspectionDetails) error {
	switch field {
	case FieldClientName:
		if strings.TrimSpace(d.ClientName) == "" {
			return ErrEmptyClientName
		}
		return checkLength(FieldClientName, d.ClientName, maxTextLength)
	case FieldLocation:
		return checkLength(FieldLocation, d.Location, maxTextLength)
	case FieldDate:
		if d.Date == "" {
			return nil
		}
		if _, err := time.Parse(dateLayout, d.Date); err != nil {
			return ErrInvalidDate
		}
		return nil
	case FieldTechnician:
		if err := checkLength(FieldTechnician, d.TechnicianName, maxTextLength); err != nil {
			return err
		}
		return checkLength(FieldTechnician, d.TechnicianID, maxTextLength)
	default:
		return ErrUnknownField
	}
}

func (v *InspectionValidator) validateSystemRecord(rec models.SystemRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldSystemID, FieldRecord}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !ValidInspectionID(rec.InspectionID) {
				return ErrInvalidInspectionID
			}
		case FieldSystemID:
			if _, ok := models.LookupSystem(rec.SystemID); !ok {
				return fmt.Errorf("%w: %q", ErrUnknownSystem, rec.SystemID)
			}
		case FieldRecord:
			raw := strings.TrimSpace(string(rec.Raw))
			if raw == "" {
				return ErrEmptyRecord
			}
			if len(raw) > maxRecordLength {
				return ErrRecordTooLarge
			}
			if !gjson.Valid(raw) {
				return ErrMalformedRecord
			}
			if r := gjson.Parse(raw); !r.IsObject() && !r.IsArray() {
				return ErrRecordShape
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *InspectionValidator) validateOverride(o models.DefectOverride, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSeverity, FieldState, FieldRemarks, FieldChange}
	}

	for _, f := range fields {
		switch f {
		case FieldSeverity:
			if o.Severity != "" && !o.Severity.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidSeverity, o.Severity)
			}
		case FieldState:
			if o.State != "" && !o.State.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidState, o.State)
			}
		case FieldRemarks:
			if err := checkLength(FieldRemarks, o.Remarks, maxRemarksLen); err != nil {
				return err
			}
		case FieldChange:
			if o.Severity == "" && o.State == "" && o.Remarks == "" {
				return ErrEmptyOverride
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func detailsOf(rec models.InspectionRecord) models.InspectionDetails {
	return models.InspectionDetails{
		ClientName:     rec.ClientName,
		Location:       rec.Location,
		Date:           rec.Date,
		TechnicianID:   rec.TechnicianID,
		TechnicianName: rec.TechnicianName,
	}
}

func checkLength(field, value string, max int) error {
	if len([]rune(value)) > max {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, field, max)
	}
	return nil
}

// ValidateDefectID checks that id has the "<system>:<path>" form and names
// a known category.
func ValidateDefectID(id string) error {
	system, path, ok := strings.Cut(id, ":")
	if !ok || path == "" {
		return fmt.Errorf("%w: %q", ErrInvalidDefectID, id)
	}
	if _, known := models.LookupSystem(models.SystemID(system)); !known {
		return fmt.Errorf("%w: %q", ErrInvalidDefectID, id)
	}
	return nil
}
