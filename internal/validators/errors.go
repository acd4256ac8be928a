package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidInspectionID = errors.New("invalid inspection id")
	ErrEmptyClientName     = errors.New("client name is required")
	ErrInvalidDate         = errors.New("date must be YYYY-MM-DD")
	ErrInvalidStatus       = errors.New("invalid inspection status")
	ErrFieldTooLong        = errors.New("field is too long")

	ErrUnknownSystem     = errors.New("unknown equipment category")
	ErrEmptyRecord       = errors.New("record is empty")
	ErrMalformedRecord   = errors.New("record is not valid json")
	ErrRecordShape       = errors.New("record must be a json object or array")
	ErrRecordTooLarge    = errors.New("record is too large")
	ErrInvalidSeverity   = errors.New("invalid severity")
	ErrInvalidState      = errors.New("invalid defect state")
	ErrEmptyOverride     = errors.New("override changes nothing")
	ErrInvalidDefectID   = errors.New("invalid defect id")
	ErrSupervisorMissing = errors.New("supervisor name is required")
)
