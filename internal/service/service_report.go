// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/unitytechnetwork/Afifi-sub000/internal/defect"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/metrics"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/internal/telemetry"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

type reportService struct {
	kv      store.KVStore
	vocab   defect.Vocabulary
	metrics metrics.Recorder

	logger *logger.Logger
}

func NewReportService(kv store.KVStore, vocab defect.Vocabulary, recorder metrics.Recorder, logger *logger.Logger) ReportService {
	if recorder == nil {
		recorder = metrics.Nop()
	}
	return &reportService{
		kv:      kv,
		vocab:   vocab,
		metrics: recorder,
		logger:  logger,
	}
}

func (s *reportService) BuildSummary(ctx context.Context, inspectionID string) (models.Summary, error) {
	if strings.TrimSpace(inspectionID) == "" {
		return models.Summary{}, ErrEmptyInspectionID
	}

	ctx, span := telemetry.Tracer().Start(ctx, "ReportService.BuildSummary",
		trace.WithAttributes(attribute.String("inspection.id", inspectionID)))
	defer span.End()

	summary := models.Summary{
		InspectionID: inspectionID,
		Inspection:   s.inspection(ctx, inspectionID),
		Systems:      make([]models.SystemStatus, 0, len(models.Catalog)),
		Defects:      []models.DefectEntry{},
		Counts: map[models.Status]int{
			models.StatusNormal:  0,
			models.StatusFault:   0,
			models.StatusNA:      0,
			models.StatusPending: 0,
		},
	}
	registry := s.registry(ctx, inspectionID)

	for _, sys := range models.Catalog {
		status, entries := s.classify(ctx, sys, inspectionID)
		entries = defect.ApplyOverrides(entries, registry)

		summary.Systems = append(summary.Systems, models.SystemStatus{
			SystemID:    sys.ID,
			Title:       sys.Title,
			Status:      status,
			DefectCount: len(entries),
		})
		summary.Defects = append(summary.Defects, entries...)
		summary.Counts[status]++
		s.metrics.DefectsDetected(sys.ID, len(entries))
	}
	summary.Overall = overallStatus(summary.Counts)

	span.SetAttributes(
		attribute.String("summary.overall", summary.Overall.String()),
		attribute.Int("summary.defects", len(summary.Defects)),
	)
	span.SetStatus(codes.Ok, "")
	s.metrics.SummaryBuilt()
	return summary, nil
}

// classify reads one category record and derives its status. Nothing here
// fails the summary: unreadable data is reported as PENDING.
func (s *reportService) classify(ctx context.Context, sys models.System, inspectionID string) (models.Status, []models.DefectEntry) {
	log := logger.FromContext(ctx)

	raw, found, err := s.kv.Get(ctx, store.KeySystem(sys, inspectionID))
	if err != nil {
		log.Warn().Err(err).
			Str("func", "reportService.classify").
			Str("inspection_id", inspectionID).
			Str("system", string(sys.ID)).
			Msg("record could not be read, reporting as pending")
		s.metrics.MalformedRecord(sys.ID)
		return models.StatusPending, nil
	}

	data := []byte(raw)
	if !found || defect.IsBlank(data) {
		return models.StatusPending, nil
	}
	if !gjson.ValidBytes(data) {
		log.Warn().
			Str("func", "reportService.classify").
			Str("inspection_id", inspectionID).
			Str("system", string(sys.ID)).
			Msg("record is not valid json, reporting as pending")
		s.metrics.MalformedRecord(sys.ID)
		return models.StatusPending, nil
	}
	if defect.IsNA(data) {
		return models.StatusNA, nil
	}
	if !defect.Scan(data, s.vocab) {
		return models.StatusNormal, nil
	}
	return models.StatusFault, defect.Extract(sys, data, s.vocab)
}

func (s *reportService) inspection(ctx context.Context, inspectionID string) *models.InspectionRecord {
	raw, found, err := s.kv.Get(ctx, store.KeySetup(inspectionID))
	if err != nil || !found {
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "reportService.inspection").Msg("inspection header could not be read")
		}
		return nil
	}
	rec, err := decodeInspection(inspectionID, raw)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "reportService.inspection").Msg("inspection header is corrupted")
		return nil
	}
	return &rec
}

// registry returns the stored overrides. A registry that cannot be read
// leaves every defect at its computed defaults.
func (s *reportService) registry(ctx context.Context, inspectionID string) models.DefectRegistry {
	registry, err := loadRegistry(ctx, s.kv, inspectionID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "reportService.registry").Msg("ignoring defect overrides")
		return nil
	}
	return registry
}

// overallStatus folds category counts into one report status: any fault
// wins, then any pending category, then NORMAL unless every category is N/A.
func overallStatus(counts map[models.Status]int) models.Status {
	switch {
	case counts[models.StatusFault] > 0:
		return models.StatusFault
	case counts[models.StatusPending] > 0:
		return models.StatusPending
	case counts[models.StatusNormal] == 0:
		return models.StatusNA
	default:
		return models.StatusNormal
	}
}
