// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/internal/validators"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const naField = "isNA"

type systemRecordService struct {
	kv        store.KVStore
	validator validators.Validator

	logger *logger.Logger
}

func NewSystemRecordService(kv store.KVStore, logger *logger.Logger) SystemRecordService {
	return &systemRecordService{
		kv:        kv,
		validator: validators.NewInspectionValidator(),
		logger:    logger,
	}
}

func (s *systemRecordService) Save(ctx context.Context, inspectionID string, system models.SystemID, raw []byte) error {
	rec := models.SystemRecord{InspectionID: inspectionID, SystemID: system, Raw: bytes.TrimSpace(raw)}
	if err := s.validator.Validate(ctx, rec, validators.FieldSystemID, validators.FieldRecord); err != nil {
		return fmt.Errorf("error during record validation before saving: %w", err)
	}
	sys, _ := models.LookupSystem(system)

	if err := ensureWritable(ctx, s.kv, inspectionID); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, store.KeySystem(sys, inspectionID), string(rec.Raw)); err != nil {
		return fmt.Errorf("error saving %s record of %s: %w", system, inspectionID, err)
	}
	logger.FromContext(ctx).Debug().
		Str("func", "systemRecordService.Save").
		Str("inspection_id", inspectionID).
		Str("system", string(system)).
		Int("bytes", len(rec.Raw)).
		Msg("record saved")
	return nil
}

func (s *systemRecordService) Get(ctx context.Context, inspectionID string, system models.SystemID) (models.SystemRecord, bool, error) {
	sys, err := s.lookup(inspectionID, system)
	if err != nil {
		return models.SystemRecord{}, false, err
	}
	raw, found, err := s.kv.Get(ctx, store.KeySystem(sys, inspectionID))
	if err != nil {
		return models.SystemRecord{}, false, fmt.Errorf("error reading %s record of %s: %w", system, inspectionID, err)
	}
	if !found {
		return models.SystemRecord{}, false, nil
	}
	return models.SystemRecord{InspectionID: inspectionID, SystemID: system, Raw: []byte(raw)}, true, nil
}

func (s *systemRecordService) MarkNA(ctx context.Context, inspectionID string, system models.SystemID) error {
	return s.setNA(ctx, inspectionID, system, true)
}

func (s *systemRecordService) ClearNA(ctx context.Context, inspectionID string, system models.SystemID) error {
	return s.setNA(ctx, inspectionID, system, false)
}

func (s *systemRecordService) setNA(ctx context.Context, inspectionID string, system models.SystemID, na bool) error {
	sys, err := s.lookup(inspectionID, system)
	if err != nil {
		return err
	}
	if err = ensureWritable(ctx, s.kv, inspectionID); err != nil {
		return err
	}

	key := store.KeySystem(sys, inspectionID)
	current, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("error reading %s record of %s: %w", system, inspectionID, err)
	}
	if !found && !na {
		return nil
	}
	if found && !gjson.Valid(current) {
		s.logger.Warn().
			Str("func", "systemRecordService.setNA").
			Str("inspection_id", inspectionID).
			Str("system", string(system)).
			Msg("discarding malformed record")
	}

	updated, empty := rewriteNA([]byte(current), na)
	if empty {
		if err = s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("error clearing %s record of %s: %w", system, inspectionID, err)
		}
		return nil
	}
	if err = s.kv.Set(ctx, key, string(updated)); err != nil {
		return fmt.Errorf("error saving %s record of %s: %w", system, inspectionID, err)
	}
	return nil
}

func (s *systemRecordService) lookup(inspectionID string, system models.SystemID) (models.System, error) {
	if inspectionID == "" {
		return models.System{}, ErrEmptyInspectionID
	}
	sys, ok := models.LookupSystem(system)
	if !ok {
		return models.System{}, fmt.Errorf("%w: %q", validators.ErrUnknownSystem, system)
	}
	return sys, nil
}

// rewriteNA returns raw with its top-level isNA flag set, or removed when na
// is false. Other members keep their order. A bare array is moved under
// "items" so it survives the wrapping object. empty reports that nothing but
// the flag would remain.
func rewriteNA(raw []byte, na bool) (out []byte, empty bool) {
	var buf bytes.Buffer
	members := 0

	buf.WriteByte('{')
	if na {
		buf.WriteString(strconv.Quote(naField) + ":true")
	}
	write := func(key, value string) {
		if na || members > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(key)
		buf.WriteByte(':')
		buf.WriteString(value)
		members++
	}

	trimmed := bytes.TrimSpace(raw)
	if gjson.ValidBytes(trimmed) {
		root := gjson.ParseBytes(trimmed)
		switch {
		case root.IsObject():
			root.ForEach(func(key, value gjson.Result) bool {
				if key.Str != naField {
					write(key.Raw, value.Raw)
				}
				return true
			})
		case root.IsArray() && len(root.Array()) > 0:
			write(`"items"`, root.Raw)
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), members == 0 && !na
}

// ensureWritable fails unless the inspection exists and is not approved.
func ensureWritable(ctx context.Context, kv store.KVStore, inspectionID string) error {
	if inspectionID == "" {
		return ErrEmptyInspectionID
	}
	raw, found, err := kv.Get(ctx, store.KeySetup(inspectionID))
	if err != nil {
		return fmt.Errorf("error reading inspection %s: %w", inspectionID, err)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrInspectionNotFound, inspectionID)
	}
	rec, err := decodeInspection(inspectionID, raw)
	if err != nil {
		return err
	}
	if rec.Status == models.InspectionApproved {
		return ErrInspectionLocked
	}
	return nil
}
