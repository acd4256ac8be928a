package service

import (
	"fmt"

	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/crypto"
	"github.com/unitytechnetwork/Afifi-sub000/internal/defect"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/metrics"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
)

type Services struct {
	InspectionService     InspectionService
	SystemRecordService   SystemRecordService
	DefectRegistryService DefectRegistryService
	ReportService         ReportService
	AppInfoService        AppInfoService

	// Vocabulary is the fault vocabulary every component was built with.
	Vocabulary defect.Vocabulary
}

// NewServices wires every service over one key-value store. The vocabulary
// named in cfg is resolved once here and shared by all consumers.
func NewServices(kv store.KVStore, cfg config.App, recorder metrics.Recorder, logger *logger.Logger) (*Services, error) {
	vocab, err := defect.VocabularyByName(cfg.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("error selecting fault vocabulary: %w", err)
	}
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	inspections := NewInspectionValidationService().
		Wrap(NewInspectionService(kv, crypto.NewPINService(), cfg.SupervisorPINHash, logger))

	return &Services{
		InspectionService:     inspections,
		SystemRecordService:   NewSystemRecordService(kv, logger),
		DefectRegistryService: NewDefectRegistryService(kv, logger),
		ReportService:         NewReportService(kv, vocab, recorder, logger),
		AppInfoService:        appInfo,
		Vocabulary:            vocab,
	}, nil
}
