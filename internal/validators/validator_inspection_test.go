package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

func validInspection() models.InspectionRecord {
	return models.InspectionRecord{
		ID:         "AUDIT-1700000000000",
		ClientName: "Menara Timur",
		Location:   "Jalan Ampang",
		Date:       "2026-03-01",
		Status:     models.InspectionDraft,
	}
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewInspectionValidator()
	ctx := context.Background()

	rec := validInspection()
	assert.NoError(t, v.Validate(ctx, rec))
	assert.NoError(t, v.Validate(ctx, &rec))
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, rec, "nope"), ErrUnknownField)
}

func TestValidate_Inspection(t *testing.T) {
	v := NewInspectionValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.InspectionRecord)
		want   error
	}{
		{name: "bad id", mutate: func(r *models.InspectionRecord) { r.ID = "AUDIT-x" }, want: ErrInvalidInspectionID},
		{name: "empty client", mutate: func(r *models.InspectionRecord) { r.ClientName = "  " }, want: ErrEmptyClientName},
		{name: "bad date", mutate: func(r *models.InspectionRecord) { r.Date = "01/03/2026" }, want: ErrInvalidDate},
		{name: "bad status", mutate: func(r *models.InspectionRecord) { r.Status = "DONE" }, want: ErrInvalidStatus},
		{name: "long location", mutate: func(r *models.InspectionRecord) { r.Location = strings.Repeat("x", 201) }, want: ErrFieldTooLong},
		{name: "empty date allowed", mutate: func(r *models.InspectionRecord) { r.Date = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validInspection()
			tt.mutate(&rec)
			err := v.Validate(ctx, rec)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_InspectionSelectedFields(t *testing.T) {
	v := NewInspectionValidator()
	rec := validInspection()
	rec.ClientName = ""

	assert.NoError(t, v.Validate(context.Background(), rec, FieldID, FieldStatus))
	assert.ErrorIs(t, v.Validate(context.Background(), rec, FieldClientName), ErrEmptyClientName)
}

func TestValidate_Details(t *testing.T) {
	v := NewInspectionValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.InspectionDetails{ClientName: "A"}))
	assert.ErrorIs(t, v.Validate(ctx, models.InspectionDetails{}), ErrEmptyClientName)
	assert.NoError(t, v.Validate(ctx, models.InspectionDetails{Date: "2026-01-31"}, FieldDate))
	assert.ErrorIs(t, v.Validate(ctx, &models.InspectionDetails{Date: "2026-02-31"}, FieldDate), ErrInvalidDate)
}

func TestValidate_SystemRecord(t *testing.T) {
	v := NewInspectionValidator()
	ctx := context.Background()
	base := models.SystemRecord{InspectionID: "AUDIT-1", SystemID: models.SystemHydrant}

	tests := []struct {
		name string
		raw  string
		sys  models.SystemID
		want error
	}{
		{name: "object", raw: `{"items":[]}`},
		{name: "array", raw: `[{"location":"L1"}]`},
		{name: "empty", raw: "  ", want: ErrEmptyRecord},
		{name: "malformed", raw: `{"a":`, want: ErrMalformedRecord},
		{name: "scalar", raw: `"Fault"`, want: ErrRecordShape},
		{name: "unknown system", raw: `{}`, sys: "sprinkler-head", want: ErrUnknownSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := base
			rec.Raw = []byte(tt.raw)
			if tt.sys != "" {
				rec.SystemID = tt.sys
			}
			err := v.Validate(ctx, rec)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_Override(t *testing.T) {
	v := NewInspectionValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DefectOverride{Severity: models.SeverityMinor}))
	assert.NoError(t, v.Validate(ctx, models.DefectOverride{State: models.DefectRectified, Remarks: "fixed"}))
	assert.ErrorIs(t, v.Validate(ctx, models.DefectOverride{}), ErrEmptyOverride)
	assert.ErrorIs(t, v.Validate(ctx, models.DefectOverride{Severity: "urgent"}), ErrInvalidSeverity)
	assert.ErrorIs(t, v.Validate(ctx, models.DefectOverride{State: "closed"}), ErrInvalidState)
	assert.ErrorIs(t, v.Validate(ctx, models.DefectOverride{Remarks: strings.Repeat("r", 2001)}), ErrFieldTooLong)
}

func TestValidInspectionID(t *testing.T) {
	assert.True(t, ValidInspectionID("AUDIT-1700000000000"))
	assert.False(t, ValidInspectionID("audit-1"))
	assert.False(t, ValidInspectionID("AUDIT-"))
	assert.False(t, ValidInspectionID(""))
}

func TestValidateDefectID(t *testing.T) {
	require.NoError(t, ValidateDefectID("hosereel:0.hoseStatus"))
	require.NoError(t, ValidateDefectID("fire-alarm:panelSpecs.batteryStatus"))
	assert.ErrorIs(t, ValidateDefectID("hosereel"), ErrInvalidDefectID)
	assert.ErrorIs(t, ValidateDefectID("hosereel:"), ErrInvalidDefectID)
	assert.ErrorIs(t, ValidateDefectID("sprinkler-head:0.x"), ErrInvalidDefectID)
}
