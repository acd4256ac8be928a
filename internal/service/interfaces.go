package service

import (
	"context"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

// InspectionService manages inspection headers and their lifecycle.
type InspectionService interface {
	Create(ctx context.Context, details models.InspectionDetails) (models.InspectionRecord, error)
	Get(ctx context.Context, inspectionID string) (models.InspectionRecord, error)
	// List returns every stored inspection, newest first.
	List(ctx context.Context) ([]models.InspectionRecord, error)
	UpdateDetails(ctx context.Context, inspectionID string, details models.InspectionDetails) (models.InspectionRecord, error)
	Transition(ctx context.Context, inspectionID string, target models.InspectionStatus) (models.InspectionRecord, error)
	// MarkForSync queues a draft for upload. Upload itself is simulated, so
	// this only changes the local status.
	MarkForSync(ctx context.Context, inspectionID string) (models.InspectionRecord, error)
	// Certify approves a submitted inspection after checking the supervisor PIN.
	Certify(ctx context.Context, inspectionID, supervisor, pin string) (models.InspectionRecord, error)
	// Delete removes the inspection and every category record of it.
	Delete(ctx context.Context, inspectionID string) error
}

// SystemRecordService reads and writes the per-category checklist records.
type SystemRecordService interface {
	Save(ctx context.Context, inspectionID string, system models.SystemID, raw []byte) error
	Get(ctx context.Context, inspectionID string, system models.SystemID) (models.SystemRecord, bool, error)
	// MarkNA flags a category as not applicable while keeping whatever was
	// recorded for it.
	MarkNA(ctx context.Context, inspectionID string, system models.SystemID) error
	ClearNA(ctx context.Context, inspectionID string, system models.SystemID) error
}

// DefectRegistryService stores technician overrides of computed defects.
type DefectRegistryService interface {
	SetOverride(ctx context.Context, inspectionID, defectID string, override models.DefectOverride) (models.DefectOverride, error)
	ClearOverride(ctx context.Context, inspectionID, defectID string) error
	Overrides(ctx context.Context, inspectionID string) (models.DefectRegistry, error)
}

// ReportService aggregates category records into a report summary.
type ReportService interface {
	// BuildSummary classifies every catalog category of an inspection and
	// lists its defects. Unreadable categories are reported as PENDING; only
	// an empty inspection id is an error.
	BuildSummary(ctx context.Context, inspectionID string) (models.Summary, error)
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// InspectionServiceWrapper defines middleware composition for InspectionService.
// Implementations wrap an existing InspectionService to add behavior such as
// validating.
type InspectionServiceWrapper interface {
	Wrap(InspectionService) InspectionService
}
