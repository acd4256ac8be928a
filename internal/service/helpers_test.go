package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/crypto"
	"github.com/unitytechnetwork/Afifi-sub000/internal/defect"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/metrics"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const (
	testInspectionID = "AUDIT-1700000000000"
	testPIN          = "4321"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// seed writes raw values straight into the store, bypassing the services.
func seed(t *testing.T, kv store.KVStore, values map[string]string) {
	t.Helper()
	for k, v := range values {
		require.NoError(t, kv.Set(context.Background(), k, v))
	}
}

func seedInspection(t *testing.T, kv store.KVStore, rec models.InspectionRecord) {
	t.Helper()
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	seed(t, kv, map[string]string{store.KeySetup(rec.ID): string(data)})
}

func systemKey(t *testing.T, id models.SystemID) string {
	t.Helper()
	sys, ok := models.LookupSystem(id)
	require.True(t, ok, "unknown system %s", id)
	return store.KeySystem(sys, testInspectionID)
}

func newTestReportService(kv store.KVStore) *reportService {
	return NewReportService(kv, defect.Standard(), metrics.Nop(), logger.Nop()).(*reportService)
}

func newTestInspectionService(t *testing.T, kv store.KVStore) *inspectionService {
	t.Helper()
	pins := crypto.NewPINServiceWithCost(bcrypt.MinCost)
	hash, err := pins.Hash(testPIN)
	require.NoError(t, err)

	svc := NewInspectionService(kv, pins, hash, logger.Nop()).(*inspectionService)
	svc.now = fixedClock
	return svc
}

func configApp(vocabulary string) config.App {
	return config.App{Vocabulary: vocabulary, Version: "test"}
}
