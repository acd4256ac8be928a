package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/crypto"
	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const hydrantRecord = `[{"location":"Gate A","valveStatus":"Damaged","remarks":"seized"}]`

type testCLI struct {
	*cli
	services *service.Services
	opened   int
	closed   int
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	hash, err := crypto.NewPINServiceWithCost(bcrypt.MinCost).Hash("4321")
	require.NoError(t, err)
	services, err := service.NewServices(store.NewMemoryStore(), config.App{
		Vocabulary:        "standard",
		SupervisorPINHash: hash,
		Version:           "test",
	}, nil, logger.Nop())
	require.NoError(t, err)
	renderer, err := export.New()
	require.NoError(t, err)

	tc := &testCLI{services: services}
	rt := &runtime{
		services: services,
		renderer: renderer,
		close: func() error {
			tc.closed++
			return nil
		},
	}
	tc.cli = &cli{
		buildInfo: models.NewAppBuildInfo("1.2.3", "2026-03-14", ""),
		open: func(context.Context, string, bool) (*runtime, error) {
			tc.opened++
			return rt, nil
		},
	}
	return tc
}

func (tc *testCLI) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := tc.rootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func (tc *testCLI) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := tc.run(t, "", args...)
	require.NoError(t, err, strings.Join(args, " "))
	return out
}

func (tc *testCLI) seed(t *testing.T) string {
	t.Helper()
	id := strings.TrimSpace(tc.mustRun(t, "new", "--client", "Menara Alpha", "--location", "Level 3", "--technician", "Aiman"))
	_, _, err := tc.run(t, hydrantRecord, "import", id, "hydrant", "-")
	require.NoError(t, err)
	return id
}

func stubPINs(t *testing.T, pins ...string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) {
		if len(pins) == 0 {
			return nil, errors.New("no terminal")
		}
		pin := pins[0]
		pins = pins[1:]
		return []byte(pin), nil
	}
}

func TestNewListShow(t *testing.T) {
	tc := newTestCLI(t)

	id := strings.TrimSpace(tc.mustRun(t, "new", "--client", "Menara Alpha", "--date", "2026-03-14"))
	assert.True(t, strings.HasPrefix(id, "AUDIT-"), id)

	list := tc.mustRun(t, "list")
	assert.Contains(t, list, "ID")
	assert.Contains(t, list, id)
	assert.Contains(t, list, "DRAFT")
	assert.Contains(t, list, "Menara Alpha")

	show := tc.mustRun(t, "show", id)
	assert.Contains(t, show, "id: "+id)
	assert.Contains(t, show, "clientName: Menara Alpha")
	assert.Contains(t, show, "2026-03-14")

	_, _, err := tc.run(t, "", "show", "AUDIT-1")
	assert.ErrorIs(t, err, service.ErrInspectionNotFound)
}

func TestNewRequiresClient(t *testing.T) {
	tc := newTestCLI(t)

	_, _, err := tc.run(t, "", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client")
	assert.Zero(t, tc.opened)
}

func TestImportAndSummary(t *testing.T) {
	tc := newTestCLI(t)
	id := tc.seed(t)

	out := tc.mustRun(t, "summary", id)
	assert.Contains(t, out, "Overall: FAULT")
	assert.Contains(t, out, "Hydrant")
	assert.Contains(t, out, "hydrant:0.valveStatus")
	assert.Contains(t, out, "Gate A")

	out = tc.mustRun(t, "summary", id, "--format", "json")
	assert.Contains(t, out, `"overall": "FAULT"`)

	_, _, err := tc.run(t, "", "summary", id, "--format", "pdf")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestImportFromFile(t *testing.T) {
	tc := newTestCLI(t)
	id := strings.TrimSpace(tc.mustRun(t, "new", "--client", "Menara Alpha"))

	path := filepath.Join(t.TempDir(), "hosereel.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"location":"L1","hoseStatus":"Leaking"}]`), 0o600))
	out := tc.mustRun(t, "import", id, "hosereel", path)
	assert.Equal(t, id+" hosereel saved\n", out)

	_, _, err := tc.run(t, "", "import", id, "hosereel", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, _, err = tc.run(t, "{not json", "import", id, "hosereel", "-")
	assert.Error(t, err)
}

func TestNotApplicable(t *testing.T) {
	tc := newTestCLI(t)
	id := tc.seed(t)
	ctx := context.Background()

	tc.mustRun(t, "na", id, "hydrant")
	s, err := tc.services.ReportService.BuildSummary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNA, s.StatusOf(models.SystemHydrant))

	tc.mustRun(t, "na", id, "hydrant", "--clear")
	s, err = tc.services.ReportService.BuildSummary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFault, s.StatusOf(models.SystemHydrant))
}

func TestOverride(t *testing.T) {
	tc := newTestCLI(t)
	id := tc.seed(t)
	defectID := "hydrant:0.valveStatus"

	out := tc.mustRun(t, "override", id, defectID, "--severity", "minor", "--state", "deferred", "--by", "Aiman")
	assert.Equal(t, defectID+" minor deferred\n", out)

	s, err := tc.services.ReportService.BuildSummary(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, s.Defects, 1)
	assert.Equal(t, models.SeverityMinor, s.Defects[0].Severity)
	assert.True(t, s.Defects[0].Overridden)

	tc.mustRun(t, "override", id, defectID, "--clear")
	s, err = tc.services.ReportService.BuildSummary(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, s.Defects[0].Overridden)

	_, _, err = tc.run(t, "", "override", id, defectID, "--clear", "--severity", "major")
	assert.Error(t, err)
}

func TestShare(t *testing.T) {
	tc := newTestCLI(t)
	id := tc.seed(t)

	out := tc.mustRun(t, "share", id)
	assert.Contains(t, out, "*FIRE PROTECTION INSPECTION*")
	assert.Contains(t, out, "Gate A")

	var copied string
	orig := copyToClipboard
	t.Cleanup(func() { copyToClipboard = orig })
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	out, stderr, err := tc.run(t, "", "share", id, "--copy")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "copied")
	assert.Contains(t, copied, "Gate A")
}

func TestReport(t *testing.T) {
	tc := newTestCLI(t)
	id := tc.seed(t)

	out := tc.mustRun(t, "report", id)
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Menara Alpha")

	path := filepath.Join(t.TempDir(), "report.html")
	out = tc.mustRun(t, "report", id, "--out", path)
	assert.Equal(t, path+"\n", out)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Gate A")
}

func TestStatusAndCertify(t *testing.T) {
	tc := newTestCLI(t)
	id := tc.seed(t)

	assert.Equal(t, id+" PENDING_SYNC\n", tc.mustRun(t, "status", id, "sync"))
	assert.Equal(t, id+" SUBMITTED\n", tc.mustRun(t, "status", id, "submitted"))

	_, _, err := tc.run(t, "", "status", id, "approved")
	assert.ErrorIs(t, err, service.ErrCertificationRequired)
	_, _, err = tc.run(t, "", "status", id, "archived")
	assert.Error(t, err)

	stubPINs(t, "9999")
	_, _, err = tc.run(t, "", "certify", id, "--supervisor", "Ng")
	assert.ErrorIs(t, err, service.ErrWrongPIN)

	stubPINs(t, "4321")
	out, stderr, err := tc.run(t, "", "certify", id, "--supervisor", "Ng")
	require.NoError(t, err)
	assert.Equal(t, id+" APPROVED by Ng\n", out)
	assert.Contains(t, stderr, "Supervisor PIN")

	_, _, err = tc.run(t, "", "na", id, "hydrant")
	assert.ErrorIs(t, err, service.ErrInspectionLocked)
	_, _, err = tc.run(t, "", "status", id, "draft")
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestPINHash(t *testing.T) {
	tc := newTestCLI(t)

	stubPINs(t, "2468", "2468")
	out := tc.mustRun(t, "pin-hash")
	hash := strings.TrimSpace(out)
	assert.NoError(t, crypto.NewPINService().Verify(hash, "2468"))
	assert.Zero(t, tc.opened)

	stubPINs(t, "2468", "1357")
	_, _, err := tc.run(t, "", "pin-hash")
	assert.ErrorIs(t, err, errPINConfirmation)

	stubPINs(t, "12", "12")
	_, _, err = tc.run(t, "", "pin-hash")
	assert.ErrorIs(t, err, crypto.ErrInvalidPIN)

	stubPINs(t)
	_, _, err = tc.run(t, "", "pin-hash")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.mustRun(t, "version")
	assert.Contains(t, out, "Build version: 1.2.3")
	assert.Contains(t, out, "Build date: 2026-03-14")
	assert.Contains(t, out, "Build commit: N/A")
	assert.Zero(t, tc.opened)
}

func TestRuntimeOpenedOnceAndClosed(t *testing.T) {
	tc := newTestCLI(t)
	tc.seed(t)
	tc.mustRun(t, "list")
	assert.Equal(t, 1, tc.opened)

	tc.close()
	assert.Equal(t, 1, tc.closed)
	tc.close()
	assert.Equal(t, 1, tc.closed)
}

func TestOpenErrorIsReturned(t *testing.T) {
	c := &cli{open: func(context.Context, string, bool) (*runtime, error) {
		return nil, store.ErrUnsupportedDSN
	}}
	cmd := c.rootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"list"})
	assert.ErrorIs(t, cmd.Execute(), store.ErrUnsupportedDSN)
}

func TestOpenRuntimeInMemory(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", store.DSNMemory)
	t.Setenv("APP_VOCABULARY", "extended")
	t.Setenv("APP_VERSION", "")

	rt, err := openRuntime(models.NewAppBuildInfo("9.9.9", "", ""))(context.Background(), "", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.close() })

	assert.Equal(t, "9.9.9", rt.services.AppInfoService.GetAppVersion(context.Background()))
	assert.NotNil(t, rt.renderer)
}
