package tui

import (
	"errors"

	"github.com/unitytechnetwork/Afifi-sub000/internal/app"
	"github.com/unitytechnetwork/Afifi-sub000/internal/crypto"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
)

var errMissingDependency = errors.New("tui requires services and a renderer")

var friendlyErrors = []struct {
	target error
	text   string
}{
	{service.ErrInspectionLocked, app.MsgInspectionLocked},
	{service.ErrInspectionNotFound, app.MsgInspectionNotFound},
	{service.ErrInvalidTransition, app.MsgInvalidTransition},
	{service.ErrCertificationRequired, app.MsgCertificationRequired},
	{service.ErrCertificationDisabled, app.MsgCertificationDisabled},
	{service.ErrWrongPIN, app.MsgWrongPIN},
	{service.ErrOverrideNotFound, app.MsgOverrideNotFound},
	{service.ErrCorruptedRegistry, app.MsgCorruptedData},
	{service.ErrCorruptedInspection, app.MsgCorruptedData},
	{crypto.ErrInvalidPIN, crypto.ErrInvalidPIN.Error()},
}

// humanizeError turns service errors into the short messages shown in the
// status line. Unknown errors are shown as is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	for _, f := range friendlyErrors {
		if errors.Is(err, f.target) {
			return f.text
		}
	}
	return err.Error()
}
