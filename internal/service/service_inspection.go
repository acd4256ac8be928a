// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/unitytechnetwork/Afifi-sub000/internal/crypto"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const (
	inspectionIDPrefix = "AUDIT-"
	maxIDAttempts      = 1000
)

type inspectionService struct {
	kv      store.KVStore
	pins    crypto.PINService
	pinHash string
	now     func() time.Time

	logger *logger.Logger
}

// NewInspectionService returns an [InspectionService] over kv. pinHash is the
// configured bcrypt hash of the supervisor PIN; certification is refused when
// it is empty.
func NewInspectionService(kv store.KVStore, pins crypto.PINService, pinHash string, logger *logger.Logger) InspectionService {
	return &inspectionService{
		kv:      kv,
		pins:    pins,
		pinHash: pinHash,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *inspectionService) Create(ctx context.Context, details models.InspectionDetails) (models.InspectionRecord, error) {
	id, err := s.allocateID(ctx)
	if err != nil {
		return models.InspectionRecord{}, err
	}

	rec := models.InspectionRecord{
		ID:             id,
		ClientName:     strings.TrimSpace(details.ClientName),
		Location:       strings.TrimSpace(details.Location),
		Date:           details.Date,
		TechnicianID:   details.TechnicianID,
		TechnicianName: details.TechnicianName,
		Status:         models.InspectionDraft,
	}
	if rec.Date == "" {
		rec.Date = s.now().Format(time.DateOnly)
	}

	if err = s.put(ctx, rec); err != nil {
		return models.InspectionRecord{}, err
	}
	s.logger.Info().Str("func", "inspectionService.Create").Str("inspection_id", id).Msg("inspection created")
	return rec, nil
}

// allocateID derives the id from the current time and steps forward one
// millisecond at a time until an unused id is found.
func (s *inspectionService) allocateID(ctx context.Context) (string, error) {
	millis := s.now().UnixMilli()
	for range maxIDAttempts {
		id := inspectionIDPrefix + strconv.FormatInt(millis, 10)
		_, found, err := s.kv.Get(ctx, store.KeySetup(id))
		if err != nil {
			return "", fmt.Errorf("error checking inspection id: %w", err)
		}
		if !found {
			return id, nil
		}
		millis++
	}
	return "", ErrIDAllocation
}

func (s *inspectionService) Get(ctx context.Context, inspectionID string) (models.InspectionRecord, error) {
	if strings.TrimSpace(inspectionID) == "" {
		return models.InspectionRecord{}, ErrEmptyInspectionID
	}
	raw, found, err := s.kv.Get(ctx, store.KeySetup(inspectionID))
	if err != nil {
		return models.InspectionRecord{}, fmt.Errorf("error reading inspection %s: %w", inspectionID, err)
	}
	if !found {
		return models.InspectionRecord{}, fmt.Errorf("%w: %s", ErrInspectionNotFound, inspectionID)
	}
	return decodeInspection(inspectionID, raw)
}

func (s *inspectionService) List(ctx context.Context) ([]models.InspectionRecord, error) {
	log := logger.FromContext(ctx)

	keys, err := s.kv.List(ctx, store.PrefixSetup)
	if err != nil {
		return nil, fmt.Errorf("error listing inspections: %w", err)
	}

	out := make([]models.InspectionRecord, 0, len(keys))
	for _, key := range keys {
		id, ok := store.InspectionIDFromSetupKey(key)
		if !ok {
			continue
		}
		raw, found, err := s.kv.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("error reading inspection %s: %w", id, err)
		}
		if !found {
			continue
		}
		rec, err := decodeInspection(id, raw)
		if err != nil {
			log.Warn().Err(err).Str("func", "inspectionService.List").Str("inspection_id", id).Msg("skipping unreadable inspection")
			continue
		}
		out = append(out, rec)
	}

	slices.SortFunc(out, func(a, b models.InspectionRecord) int {
		if c := cmp.Compare(createdMillis(b.ID), createdMillis(a.ID)); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (s *inspectionService) UpdateDetails(ctx context.Context, inspectionID string, details models.InspectionDetails) (models.InspectionRecord, error) {
	rec, err := s.Get(ctx, inspectionID)
	if err != nil {
		return models.InspectionRecord{}, err
	}
	if rec.Status == models.InspectionApproved {
		return models.InspectionRecord{}, ErrInspectionLocked
	}

	if v := strings.TrimSpace(details.ClientName); v != "" {
		rec.ClientName = v
	}
	if v := strings.TrimSpace(details.Location); v != "" {
		rec.Location = v
	}
	if details.Date != "" {
		rec.Date = details.Date
	}
	if details.TechnicianID != "" {
		rec.TechnicianID = details.TechnicianID
	}
	if details.TechnicianName != "" {
		rec.TechnicianName = details.TechnicianName
	}

	if err = s.put(ctx, rec); err != nil {
		return models.InspectionRecord{}, err
	}
	return rec, nil
}

func (s *inspectionService) Transition(ctx context.Context, inspectionID string, target models.InspectionStatus) (models.InspectionRecord, error) {
	if target == models.InspectionApproved {
		return models.InspectionRecord{}, ErrCertificationRequired
	}
	rec, err := s.Get(ctx, inspectionID)
	if err != nil {
		return models.InspectionRecord{}, err
	}
	return s.move(ctx, rec, target)
}

func (s *inspectionService) MarkForSync(ctx context.Context, inspectionID string) (models.InspectionRecord, error) {
	return s.Transition(ctx, inspectionID, models.InspectionPendingSync)
}

func (s *inspectionService) Certify(ctx context.Context, inspectionID, supervisor, pin string) (models.InspectionRecord, error) {
	rec, err := s.Get(ctx, inspectionID)
	if err != nil {
		return models.InspectionRecord{}, err
	}
	if !rec.Status.CanTransitionTo(models.InspectionApproved) {
		return models.InspectionRecord{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.Status, models.InspectionApproved)
	}

	if err = s.pins.Verify(s.pinHash, pin); err != nil {
		s.logger.Warn().Str("func", "inspectionService.Certify").Str("inspection_id", inspectionID).Msg("certification refused")
		switch {
		case errors.Is(err, crypto.ErrPINNotConfigured):
			return models.InspectionRecord{}, ErrCertificationDisabled
		case errors.Is(err, crypto.ErrPINMismatch):
			return models.InspectionRecord{}, ErrWrongPIN
		default:
			return models.InspectionRecord{}, err
		}
	}

	at := s.now().UTC()
	rec.CertifiedBy = strings.TrimSpace(supervisor)
	rec.CertifiedAt = &at
	return s.move(ctx, rec, models.InspectionApproved)
}

func (s *inspectionService) move(ctx context.Context, rec models.InspectionRecord, target models.InspectionStatus) (models.InspectionRecord, error) {
	if !rec.Status.CanTransitionTo(target) {
		return models.InspectionRecord{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.Status, target)
	}
	from := rec.Status
	rec.Status = target
	if err := s.put(ctx, rec); err != nil {
		return models.InspectionRecord{}, err
	}
	s.logger.Info().
		Str("func", "inspectionService.move").
		Str("inspection_id", rec.ID).
		Str("from", from.String()).
		Str("to", target.String()).
		Msg("inspection status changed")
	return rec, nil
}

func (s *inspectionService) Delete(ctx context.Context, inspectionID string) error {
	rec, err := s.Get(ctx, inspectionID)
	if err != nil {
		return err
	}
	if rec.Status == models.InspectionApproved {
		return ErrInspectionLocked
	}
	for _, key := range store.InspectionKeys(inspectionID) {
		if err = s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("error deleting %s: %w", key, err)
		}
	}
	s.logger.Info().Str("func", "inspectionService.Delete").Str("inspection_id", inspectionID).Msg("inspection deleted")
	return nil
}

func (s *inspectionService) put(ctx context.Context, rec models.InspectionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("error encoding inspection %s: %w", rec.ID, err)
	}
	if err = s.kv.Set(ctx, store.KeySetup(rec.ID), string(data)); err != nil {
		return fmt.Errorf("error saving inspection %s: %w", rec.ID, err)
	}
	return nil
}

func decodeInspection(id, raw string) (models.InspectionRecord, error) {
	var rec models.InspectionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return models.InspectionRecord{}, fmt.Errorf("%w: %s: %w", ErrCorruptedInspection, id, err)
	}
	if rec.ID == "" {
		rec.ID = id
	}
	if rec.Status == "" {
		rec.Status = models.InspectionDraft
	}
	return rec, nil
}

// createdMillis returns the creation time encoded in an AUDIT-<millis> id,
// or zero for ids of any other form.
func createdMillis(id string) int64 {
	n, err := strconv.ParseInt(strings.TrimPrefix(id, inspectionIDPrefix), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
