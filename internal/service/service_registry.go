// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/internal/validators"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

type defectRegistryService struct {
	kv        store.KVStore
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewDefectRegistryService(kv store.KVStore, logger *logger.Logger) DefectRegistryService {
	return &defectRegistryService{
		kv:        kv,
		validator: validators.NewInspectionValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// SetOverride merges the non-empty fields of override into the stored entry
// for defectID. The defect does not need to be present in the current
// records: overrides outlive the rows they describe.
func (s *defectRegistryService) SetOverride(ctx context.Context, inspectionID, defectID string, override models.DefectOverride) (models.DefectOverride, error) {
	if err := validators.ValidateDefectID(defectID); err != nil {
		return models.DefectOverride{}, err
	}
	if err := s.validator.Validate(ctx, override); err != nil {
		return models.DefectOverride{}, fmt.Errorf("error during override validation before saving: %w", err)
	}
	if err := ensureWritable(ctx, s.kv, inspectionID); err != nil {
		return models.DefectOverride{}, err
	}

	registry, err := loadRegistry(ctx, s.kv, inspectionID)
	if err != nil {
		return models.DefectOverride{}, err
	}

	entry := registry[defectID]
	if override.Severity != "" {
		entry.Severity = override.Severity
	}
	if override.State != "" {
		entry.State = override.State
	}
	if remarks := strings.TrimSpace(override.Remarks); remarks != "" {
		entry.Remarks = remarks
	}
	if override.UpdatedBy != "" {
		entry.UpdatedBy = override.UpdatedBy
	}
	at := s.now().UTC()
	entry.UpdatedAt = &at
	registry[defectID] = entry

	if err = saveRegistry(ctx, s.kv, inspectionID, registry); err != nil {
		return models.DefectOverride{}, err
	}
	s.logger.Info().
		Str("func", "defectRegistryService.SetOverride").
		Str("inspection_id", inspectionID).
		Str("defect_id", defectID).
		Msg("defect override saved")
	return entry, nil
}

func (s *defectRegistryService) ClearOverride(ctx context.Context, inspectionID, defectID string) error {
	if err := ensureWritable(ctx, s.kv, inspectionID); err != nil {
		return err
	}
	registry, err := loadRegistry(ctx, s.kv, inspectionID)
	if err != nil {
		return err
	}
	if _, ok := registry[defectID]; !ok {
		return fmt.Errorf("%w: %s", ErrOverrideNotFound, defectID)
	}
	delete(registry, defectID)

	if len(registry) == 0 {
		if err = s.kv.Delete(ctx, store.KeyDefectRegistry(inspectionID)); err != nil {
			return fmt.Errorf("error deleting defect registry of %s: %w", inspectionID, err)
		}
		return nil
	}
	return saveRegistry(ctx, s.kv, inspectionID, registry)
}

func (s *defectRegistryService) Overrides(ctx context.Context, inspectionID string) (models.DefectRegistry, error) {
	if inspectionID == "" {
		return nil, ErrEmptyInspectionID
	}
	return loadRegistry(ctx, s.kv, inspectionID)
}

// loadRegistry returns the stored registry, or an empty one when none has
// been written yet.
func loadRegistry(ctx context.Context, kv store.KVStore, inspectionID string) (models.DefectRegistry, error) {
	raw, found, err := kv.Get(ctx, store.KeyDefectRegistry(inspectionID))
	if err != nil {
		return nil, fmt.Errorf("error reading defect registry of %s: %w", inspectionID, err)
	}
	registry := models.DefectRegistry{}
	if !found || strings.TrimSpace(raw) == "" {
		return registry, nil
	}
	if err = json.Unmarshal([]byte(raw), &registry); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptedRegistry, inspectionID, err)
	}
	if registry == nil {
		registry = models.DefectRegistry{}
	}
	return registry, nil
}

func saveRegistry(ctx context.Context, kv store.KVStore, inspectionID string, registry models.DefectRegistry) error {
	data, err := json.Marshal(registry)
	if err != nil {
		return fmt.Errorf("error encoding defect registry of %s: %w", inspectionID, err)
	}
	if err = kv.Set(ctx, store.KeyDefectRegistry(inspectionID), string(data)); err != nil {
		return fmt.Errorf("error saving defect registry of %s: %w", inspectionID, err)
	}
	return nil
}
