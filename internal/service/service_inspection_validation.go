// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/unitytechnetwork/Afifi-sub000/internal/validators"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

// InspectionValidationService checks input before it reaches the wrapped
// [InspectionService].
type InspectionValidationService struct {
	inner     InspectionService
	validator validators.Validator
}

func NewInspectionValidationService() InspectionServiceWrapper {
	return &InspectionValidationService{
		validator: validators.NewInspectionValidator(),
	}
}

func (v *InspectionValidationService) Create(ctx context.Context, details models.InspectionDetails) (models.InspectionRecord, error) {
	if err := v.validator.Validate(ctx, details); err != nil {
		return models.InspectionRecord{}, fmt.Errorf("error during inspection validation before saving: %w", err)
	}
	return v.inner.Create(ctx, details)
}

func (v *InspectionValidationService) Get(ctx context.Context, inspectionID string) (models.InspectionRecord, error) {
	return v.inner.Get(ctx, inspectionID)
}

func (v *InspectionValidationService) List(ctx context.Context) ([]models.InspectionRecord, error) {
	return v.inner.List(ctx)
}

func (v *InspectionValidationService) UpdateDetails(ctx context.Context, inspectionID string, details models.InspectionDetails) (models.InspectionRecord, error) {
	// empty fields are left unchanged, so the client name is only checked
	// when a new one is given
	fields := []string{validators.FieldLocation, validators.FieldDate, validators.FieldTechnician}
	if details.ClientName != "" {
		fields = append(fields, validators.FieldClientName)
	}
	if err := v.validator.Validate(ctx, details, fields...); err != nil {
		return models.InspectionRecord{}, fmt.Errorf("error during inspection validation before update: %w", err)
	}
	return v.inner.UpdateDetails(ctx, inspectionID, details)
}

func (v *InspectionValidationService) Transition(ctx context.Context, inspectionID string, target models.InspectionStatus) (models.InspectionRecord, error) {
	candidate := models.InspectionRecord{Status: target}
	if err := v.validator.Validate(ctx, candidate, validators.FieldStatus); err != nil {
		return models.InspectionRecord{}, fmt.Errorf("%w: %q", err, target)
	}
	return v.inner.Transition(ctx, inspectionID, target)
}

func (v *InspectionValidationService) MarkForSync(ctx context.Context, inspectionID string) (models.InspectionRecord, error) {
	return v.inner.MarkForSync(ctx, inspectionID)
}

func (v *InspectionValidationService) Certify(ctx context.Context, inspectionID, supervisor, pin string) (models.InspectionRecord, error) {
	if strings.TrimSpace(supervisor) == "" {
		return models.InspectionRecord{}, validators.ErrSupervisorMissing
	}
	return v.inner.Certify(ctx, inspectionID, supervisor, pin)
}

func (v *InspectionValidationService) Delete(ctx context.Context, inspectionID string) error {
	return v.inner.Delete(ctx, inspectionID)
}

func (v *InspectionValidationService) Wrap(wrapped InspectionService) InspectionService {
	v.inner = wrapped
	return v
}
