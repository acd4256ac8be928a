package store

import (
	"strings"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

// Storage key prefixes. The layout is shared with existing installations and
// must not change.
const (
	PrefixSetup          = "setup_"
	PrefixDefectRegistry = "defect_registry_"
)

// KeySetup returns the key of an inspection header record.
func KeySetup(inspectionID string) string {
	return PrefixSetup + inspectionID
}

// KeySystem returns the key of one category record of an inspection, e.g.
// "pump_hosereel_AUDIT-1700000000000".
func KeySystem(sys models.System, inspectionID string) string {
	return sys.KeyPrefix + inspectionID
}

// KeyDefectRegistry returns the key of the defect override registry.
func KeyDefectRegistry(inspectionID string) string {
	return PrefixDefectRegistry + inspectionID
}

// InspectionIDFromSetupKey extracts the inspection id from a setup key.
func InspectionIDFromSetupKey(key string) (string, bool) {
	id, ok := strings.CutPrefix(key, PrefixSetup)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// InspectionKeys returns every key that may hold data of an inspection.
func InspectionKeys(inspectionID string) []string {
	keys := make([]string, 0, len(models.Catalog)+2)
	keys = append(keys, KeySetup(inspectionID))
	for _, sys := range models.Catalog {
		keys = append(keys, KeySystem(sys, inspectionID))
	}
	return append(keys, KeyDefectRegistry(inspectionID))
}
