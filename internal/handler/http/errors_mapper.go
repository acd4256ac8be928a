// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/unitytechnetwork/Afifi-sub000/internal/app"
	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/internal/utils"
	"github.com/unitytechnetwork/Afifi-sub000/internal/validators"
)

var errRecordNotFound = errors.New("record not found")

var errorStatusMap = map[error]int{
	errRecordNotFound: http.StatusNotFound,

	service.ErrEmptyInspectionID:     http.StatusBadRequest,
	service.ErrInspectionNotFound:    http.StatusNotFound,
	service.ErrInspectionLocked:      http.StatusConflict,
	service.ErrInvalidTransition:     http.StatusConflict,
	service.ErrCertificationRequired: http.StatusConflict,
	service.ErrCertificationDisabled: http.StatusPreconditionFailed,
	service.ErrWrongPIN:              http.StatusForbidden,
	service.ErrOverrideNotFound:      http.StatusNotFound,
	service.ErrCorruptedInspection:   http.StatusInternalServerError,
	service.ErrCorruptedRegistry:     http.StatusInternalServerError,
	service.ErrIDAllocation:          http.StatusServiceUnavailable,

	validators.ErrInvalidInspectionID: http.StatusBadRequest,
	validators.ErrEmptyClientName:     http.StatusBadRequest,
	validators.ErrInvalidDate:         http.StatusBadRequest,
	validators.ErrInvalidStatus:       http.StatusBadRequest,
	validators.ErrFieldTooLong:        http.StatusBadRequest,
	validators.ErrUnknownSystem:       http.StatusNotFound,
	validators.ErrEmptyRecord:         http.StatusBadRequest,
	validators.ErrMalformedRecord:     http.StatusBadRequest,
	validators.ErrRecordShape:         http.StatusBadRequest,
	validators.ErrRecordTooLarge:      http.StatusRequestEntityTooLarge,
	validators.ErrInvalidSeverity:     http.StatusBadRequest,
	validators.ErrInvalidState:        http.StatusBadRequest,
	validators.ErrEmptyOverride:       http.StatusBadRequest,
	validators.ErrInvalidDefectID:     http.StatusBadRequest,
	validators.ErrSupervisorMissing:   http.StatusBadRequest,

	export.ErrUnknownFormat: http.StatusBadRequest,

	store.ErrEmptyKey:           http.StatusBadRequest,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	errRecordNotFound:                app.MsgRecordNotFound,
	service.ErrInspectionNotFound:    app.MsgInspectionNotFound,
	service.ErrInspectionLocked:      app.MsgInspectionLocked,
	service.ErrInvalidTransition:     app.MsgInvalidTransition,
	service.ErrCertificationRequired: app.MsgCertificationRequired,
	service.ErrCertificationDisabled: app.MsgCertificationDisabled,
	service.ErrWrongPIN:              app.MsgWrongPIN,
	service.ErrOverrideNotFound:      app.MsgOverrideNotFound,
	validators.ErrUnknownSystem:      app.MsgUnknownSystem,
	validators.ErrInvalidDefectID:    app.MsgInvalidDefectID,
	export.ErrUnknownFormat:          app.MsgUnknownFormat,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text shown to the caller. Server-side
// failures are never described beyond a generic message.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// fail logs err and writes the matching JSON error response.
func fail(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	ev := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		ev = logger.FromRequest(r).Error()
	}
	ev.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	utils.WriteError(w, r, messageFromError(err, status), status)
}
