// Package app contains the user-facing message strings shared by the HTTP
// handlers, the CLI and the TUI, so the same failure reads the same on every
// surface.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for failures the caller cannot
	// resolve, such as a storage outage.
	MsgInternalServerError = "internal server error"

	// MsgInspectionNotFound is returned when no setup record exists for the
	// requested inspection.
	MsgInspectionNotFound = "inspection not found"

	// MsgInspectionLocked is returned when a change targets an approved
	// inspection.
	MsgInspectionLocked = "inspection is approved and locked"

	// MsgInvalidTransition is returned when the requested status change is
	// not allowed from the current status.
	MsgInvalidTransition = "status change not allowed"

	// MsgCertificationRequired is returned when a plain status change asks
	// for APPROVED.
	MsgCertificationRequired = "approval requires supervisor certification"

	// MsgWrongPIN is returned when the supervisor PIN does not match.
	MsgWrongPIN = "wrong supervisor pin"

	// MsgCertificationDisabled is returned when no supervisor PIN hash is
	// configured.
	MsgCertificationDisabled = "certification is not configured"

	// MsgUnknownSystem is returned for an equipment category that is not in
	// the catalog.
	MsgUnknownSystem = "unknown equipment category"

	// MsgMalformedRecord is returned when a submitted checklist record is
	// not a JSON object or array.
	MsgMalformedRecord = "record must be a json object or array"

	// MsgRecordNotFound is returned when a category has no stored record.
	MsgRecordNotFound = "no record stored for this category"

	// MsgInvalidDefectID is returned for defect ids not of the form
	// <system>:<path>.
	MsgInvalidDefectID = "invalid defect id"

	// MsgOverrideNotFound is returned when clearing an override that does not
	// exist.
	MsgOverrideNotFound = "no override stored for this defect"

	// MsgCorruptedData is returned when a stored document cannot be decoded.
	MsgCorruptedData = "stored data is corrupted"

	// MsgUnknownFormat is returned for an unsupported export format.
	MsgUnknownFormat = "unknown export format"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"
)
