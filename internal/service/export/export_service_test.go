package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/report"
)

const batchJSON = `[
  {"airport": {"id": 1, "name": "Heathrow", "fullname": "London Heathrow Airport", "country": "United Kingdom",
     "continent": "Europe", "iata": "LHR", "icao": "EGLL", "lat": 51.47, "lng": -0.46, "rwy": 12799,
     "market": 90, "hub_cost": 48000, "rwy_codes": "09L|27R"},
   "ac_route": {"route": {"pax_demand": {"y": 1200, "j": 300, "f": 80}, "cargo_demand": {"l": 45000, "h": 12000}, "direct_distance": 5570.25},
     "warnings": [], "valid": true, "max_tpd": null, "needs_stopover": false,
     "stopover": {"airport": {"id": 12, "name": "Dubai", "fullname": "Dubai International", "country": "United Arab Emirates",
       "continent": "Asia", "iata": "DXB", "icao": "OMDB", "lat": 25.25, "lng": 55.36, "rwy": 13124,
       "market": 85, "hub_cost": 46000, "rwy_codes": "12L|30R"}, "exists": true},
     "flight_time": 6.75, "trips_per_day_per_ac": 2, "num_ac": 3,
     "config": {"y": 250, "j": 40, "f": 10, "algorithm": "FJY"}, "ticket": {"y": 1100, "j": 3400, "f": 6900},
     "max_income": 512345.5, "income": 498000.25, "fuel": 42000, "co2": 18000.5,
     "acheck_cost": 1250, "repair_cost": 830.75, "profit": 380000, "ci": 200, "contribution": 42.0}},
  {"airport": {"id": 2, "name": "Changi", "fullname": "Singapore Changi Airport", "country": "Singapore",
     "continent": "Asia", "iata": "SIN", "icao": "WSSS", "lat": 1.36, "lng": 103.99, "rwy": 13123,
     "market": 88, "hub_cost": 47000, "rwy_codes": "02L|20R"},
   "ac_route": {"route": {"pax_demand": {"y": 900, "j": 200, "f": 60}, "cargo_demand": {"l": 30000, "h": 9000}, "direct_distance": 10880},
     "warnings": ["STOPOVER_REQUIRED"], "valid": true, "needs_stopover": true, "stopover": null,
     "flight_time": 13.1, "trips_per_day_per_ac": 1, "num_ac": 2,
     "config": {"y": 280, "j": 30, "f": 8, "algorithm": "FJY"}, "ticket": {"y": 1500, "j": 4200, "f": 8800},
     "max_income": 401000, "income": 399500, "fuel": 88000, "co2": 36000,
     "acheck_cost": 1400, "repair_cost": 910, "profit": 270000, "ci": 180, "contribution": 30.0}}
]`

type fakeMirror struct {
	sheetRange string
	rows       [][]interface{}
	err        error
}

func (m *fakeMirror) ReplaceRange(_ context.Context, sheetRange string, rows [][]interface{}) error {
	m.sheetRange = sheetRange
	m.rows = rows
	return m.err
}

type fakeHistory struct {
	records []models.ExportRecord
	err     error
}

func (h *fakeHistory) SaveExport(_ context.Context, record models.ExportRecord) error {
	h.records = append(h.records, record)
	return h.err
}

type fakeNotifier struct {
	sent []models.ExportResponse
	err  error
}

func (n *fakeNotifier) NotifyExport(_ context.Context, resp models.ExportResponse) error {
	n.sent = append(n.sent, resp)
	return n.err
}

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestExportJSONWritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(nil, nil, nil, nil)

	resp, err := svc.ExportJSON(context.Background(), []byte(batchJSON), filepath.Join(dir, "routes.json"), "cargo")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "routes_cargo.xlsx"), resp.Path)
	assert.Equal(t, report.ModeCargo, resp.Mode)
	assert.Equal(t, 2, resp.Rows)
	assert.Equal(t, 1, resp.MissingStopovers)

	f, err := excelize.OpenFile(resp.Path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, report.Resolve("cargo").Headers(), rows[0])
	assert.Equal(t, "Heathrow", rows[1][1])
	assert.Equal(t, "45000", rows[1][5])
	assert.Equal(t, report.NotApplicable, rows[1][9])
	assert.Equal(t, report.NoStopoverData, rows[2][9])
}

func TestExportJSONUnknownModeUsesFullSchema(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(nil, nil, nil, nil)

	resp, err := svc.ExportJSON(context.Background(), []byte(batchJSON), filepath.Join(dir, "routes.json"), "summary")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "routes_summary.xlsx"), resp.Path)
	assert.Equal(t, report.ModeFull, resp.Mode)

	f, err := excelize.OpenFile(resp.Path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows[0], 41)
	assert.Equal(t, "0.42", rows[1][40])
}

func TestExportJSONMissingAirportWritesNothing(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(nil, nil, nil, nil)

	payload := []byte(`[{"airport": {"id": 1}, "ac_route": {}}, {"ac_route": {"valid": true}}]`)
	_, err := svc.ExportJSON(context.Background(), payload, filepath.Join(dir, "routes.json"), "pax")
	require.ErrorIs(t, err, ErrInvalidInput)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportJSONNullBatchWritesNothing(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(nil, nil, nil, nil)

	_, err := svc.ExportJSON(context.Background(), []byte(`null`), filepath.Join(dir, "routes.json"), "full")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, models.ErrNullBatch)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportInvalidReference(t *testing.T) {
	svc := NewService(nil, nil, nil, nil)

	_, err := svc.ExportJSON(context.Background(), []byte(batchJSON), "", "pax")
	require.ErrorIs(t, err, report.ErrInvalidReference)
}

func TestExportUnwritableDirectory(t *testing.T) {
	svc := NewService(nil, nil, nil, nil)
	reference := filepath.Join(t.TempDir(), "missing", "routes.json")

	_, err := svc.ExportJSON(context.Background(), []byte(batchJSON), reference, "pax")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestExportIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "routes.json")
	svc := NewService(nil, nil, nil, nil)

	read := func() [][]string {
		resp, err := svc.ExportJSON(context.Background(), []byte(batchJSON), ref, "pax")
		require.NoError(t, err)
		f, err := excelize.OpenFile(resp.Path)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(report.SheetName)
		require.NoError(t, err)
		return rows
	}

	assert.Equal(t, read(), read())
}

func TestExportPublishesSideEffects(t *testing.T) {
	dir := t.TempDir()
	mirror := &fakeMirror{}
	history := &fakeHistory{}
	notifier := &fakeNotifier{}
	svc := NewService(mirror, history, notifier, nil)
	svc.now = fixedClock()

	resp, err := svc.ExportJSON(context.Background(), []byte(batchJSON), filepath.Join(dir, "routes.json"), "pax")
	require.NoError(t, err)

	assert.Equal(t, "pax!A1", mirror.sheetRange)
	require.Len(t, mirror.rows, 3)
	assert.Equal(t, "Airport ID", mirror.rows[0][0])
	assert.Equal(t, "250-40-10", mirror.rows[1][5])
	assert.Equal(t, report.NotApplicable, mirror.rows[1][10])

	require.Len(t, history.records, 1)
	assert.Equal(t, models.ExportRecord{
		Path:             resp.Path,
		ReferencePath:    filepath.Join(dir, "routes.json"),
		Mode:             report.ModePax,
		Rows:             2,
		MissingStopovers: 1,
		Duration:         "0s",
		CreatedAt:        fixedClock()(),
	}, history.records[0])

	assert.Equal(t, []models.ExportResponse{resp}, notifier.sent)
}

func TestExportSideEffectFailuresDoNotFailExport(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")
	svc := NewService(&fakeMirror{err: boom}, &fakeHistory{err: boom}, &fakeNotifier{err: boom}, nil)

	resp, err := svc.ExportJSON(context.Background(), []byte(batchJSON), filepath.Join(dir, "routes.json"), "full")
	require.NoError(t, err)

	_, statErr := os.Stat(resp.Path)
	assert.NoError(t, statErr)
}

func TestExportSkipsSideEffectsOnFailure(t *testing.T) {
	mirror := &fakeMirror{}
	history := &fakeHistory{}
	notifier := &fakeNotifier{}
	svc := NewService(mirror, history, notifier, nil)

	_, err := svc.ExportJSON(context.Background(), []byte(`[{}]`), filepath.Join(t.TempDir(), "routes.json"), "pax")
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Nil(t, mirror.rows)
	assert.Empty(t, history.records)
	assert.Empty(t, notifier.sent)
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "batch.json")
	require.NoError(t, os.WriteFile(source, []byte(batchJSON), 0o600))

	svc := NewService(nil, nil, nil, nil)
	resp, err := svc.ExportFile(context.Background(), source, "pax")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "batch_pax.xlsx"), resp.Path)

	_, err = svc.ExportFile(context.Background(), filepath.Join(dir, "absent.json"), "pax")
	require.Error(t, err)
}
