package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyInspectionID     = errors.New("inspection id is empty")
	ErrInspectionNotFound    = errors.New("inspection not found")
	ErrInspectionLocked      = errors.New("inspection is approved and can no longer be changed")
	ErrInvalidTransition     = errors.New("status transition is not allowed")
	ErrCertificationRequired = errors.New("approval requires supervisor certification")
	ErrCertificationDisabled = errors.New("supervisor pin is not configured")
	ErrWrongPIN              = errors.New("wrong supervisor pin")
	ErrCorruptedInspection   = errors.New("stored inspection record is corrupted")
	ErrCorruptedRegistry     = errors.New("stored defect registry is corrupted")
	ErrOverrideNotFound      = errors.New("no override stored for defect")
	ErrIDAllocation          = errors.New("could not allocate inspection id")
)
