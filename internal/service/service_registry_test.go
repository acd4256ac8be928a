package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/internal/validators"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

func newRegistryFixture(t *testing.T) (*store.MemoryStore, *defectRegistryService) {
	t.Helper()
	kv := store.NewMemoryStore()
	seedInspection(t, kv, models.InspectionRecord{ID: testInspectionID, ClientName: "A", Status: models.InspectionSubmitted})
	svc := NewDefectRegistryService(kv, logger.Nop()).(*defectRegistryService)
	svc.now = fixedClock
	return kv, svc
}

func TestDefectRegistryService_SetOverrideMerges(t *testing.T) {
	_, svc := newRegistryFixture(t)
	ctx := context.Background()
	const id = "hosereel:0.hoseStatus"

	_, err := svc.SetOverride(ctx, testInspectionID, id, models.DefectOverride{Severity: models.SeverityCritical, UpdatedBy: "tech-1"})
	require.NoError(t, err)
	got, err := svc.SetOverride(ctx, testInspectionID, id, models.DefectOverride{State: models.DefectRectified, Remarks: " replaced hose "})
	require.NoError(t, err)

	assert.Equal(t, models.SeverityCritical, got.Severity)
	assert.Equal(t, models.DefectRectified, got.State)
	assert.Equal(t, "replaced hose", got.Remarks)
	assert.Equal(t, "tech-1", got.UpdatedBy)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(testNow))

	registry, err := svc.Overrides(ctx, testInspectionID)
	require.NoError(t, err)
	require.Contains(t, registry, id)
	assert.Equal(t, got.Severity, registry[id].Severity)
	assert.Equal(t, got.State, registry[id].State)
	assert.Equal(t, got.Remarks, registry[id].Remarks)
}

func TestDefectRegistryService_StoredFormat(t *testing.T) {
	kv, svc := newRegistryFixture(t)

	_, err := svc.SetOverride(context.Background(), testInspectionID, "fire-alarm:zones.2", models.DefectOverride{State: models.DefectDeferred})
	require.NoError(t, err)

	raw, found, err := kv.Get(context.Background(), store.KeyDefectRegistry(testInspectionID))
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"fire-alarm:zones.2":{"status":"deferred","updatedAt":"2026-03-14T09:30:00Z"}}`, raw)
}

func TestDefectRegistryService_SetOverrideRejects(t *testing.T) {
	_, svc := newRegistryFixture(t)
	ctx := context.Background()

	_, err := svc.SetOverride(ctx, testInspectionID, "nonsense", models.DefectOverride{State: models.DefectOpen})
	assert.ErrorIs(t, err, validators.ErrInvalidDefectID)

	_, err = svc.SetOverride(ctx, testInspectionID, "hydrant:0.valve", models.DefectOverride{Severity: "urgent"})
	assert.ErrorIs(t, err, validators.ErrInvalidSeverity)

	_, err = svc.SetOverride(ctx, testInspectionID, "hydrant:0.valve", models.DefectOverride{})
	assert.ErrorIs(t, err, validators.ErrEmptyOverride)

	_, err = svc.SetOverride(ctx, "AUDIT-1", "hydrant:0.valve", models.DefectOverride{State: models.DefectOpen})
	assert.ErrorIs(t, err, ErrInspectionNotFound)
}

func TestDefectRegistryService_CorruptedRegistryNotOverwritten(t *testing.T) {
	kv, svc := newRegistryFixture(t)
	seed(t, kv, map[string]string{store.KeyDefectRegistry(testInspectionID): `[1,2`})

	_, err := svc.SetOverride(context.Background(), testInspectionID, "hydrant:0.valve", models.DefectOverride{State: models.DefectOpen})
	assert.ErrorIs(t, err, ErrCorruptedRegistry)

	raw, _, err := kv.Get(context.Background(), store.KeyDefectRegistry(testInspectionID))
	require.NoError(t, err)
	assert.Equal(t, `[1,2`, raw)
}

func TestDefectRegistryService_ClearOverride(t *testing.T) {
	kv, svc := newRegistryFixture(t)
	ctx := context.Background()

	_, err := svc.SetOverride(ctx, testInspectionID, "hydrant:0.valve", models.DefectOverride{State: models.DefectAcknowledged})
	require.NoError(t, err)
	_, err = svc.SetOverride(ctx, testInspectionID, "hydrant:1.valve", models.DefectOverride{State: models.DefectDeferred})
	require.NoError(t, err)

	require.NoError(t, svc.ClearOverride(ctx, testInspectionID, "hydrant:0.valve"))
	registry, err := svc.Overrides(ctx, testInspectionID)
	require.NoError(t, err)
	assert.Len(t, registry, 1)
	assert.Contains(t, registry, "hydrant:1.valve")

	require.NoError(t, svc.ClearOverride(ctx, testInspectionID, "hydrant:1.valve"))
	_, found, err := kv.Get(ctx, store.KeyDefectRegistry(testInspectionID))
	require.NoError(t, err)
	assert.False(t, found)

	assert.ErrorIs(t, svc.ClearOverride(ctx, testInspectionID, "hydrant:1.valve"), ErrOverrideNotFound)
}

func TestDefectRegistryService_OverridesEmpty(t *testing.T) {
	_, svc := newRegistryFixture(t)

	registry, err := svc.Overrides(context.Background(), testInspectionID)
	require.NoError(t, err)
	assert.NotNil(t, registry)
	assert.Empty(t, registry)

	_, err = svc.Overrides(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyInspectionID)
}
