package app

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"jecli/internal/config"
	"jecli/internal/report"
)

func testConfig() *config.Config {
	return &config.Config{
		Logging:  config.LoggingConfig{Level: "info", Format: "json", Output: "console"},
		Analysis: config.AnalysisConfig{DateRatio: 0.5},
	}
}

// writeSampleWorkbook creates a one-sheet workbook with a date column
// (10 values, 8 parseable as dates) and an amount column (10 numeric values).
func writeSampleWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Journal"))

	rows := [][]interface{}{
		{"date", "amount"},
		{"2024-01-02", 120.0},
		{"2024-01-03", 250.0},
		{"2024-01-04", 310.0},
		{"2024-01-05", 470.0},
		{"2024-01-08", 560.0},
		{"2024-01-09", 610.0},
		{"2024-01-10", 720.0},
		{"2024-01-11", 830.0},
		{"pending", 940.0},
		{"n/a", 150.0},
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Journal", cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
}

func TestApp_Run_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "je_samples.xlsx")
	output := filepath.Join(dir, "outputs")
	writeSampleWorkbook(t, input)

	a := New(testConfig(), nil)
	require.NoError(t, a.Run(context.Background(), input, output))

	paths := config.NewPaths(output)

	// summary.json: one sheet entry, date_ranges.date.non_null == 8,
	// numeric_summaries.amount populated
	data, err := os.ReadFile(paths.SummaryJSON())
	require.NoError(t, err)
	var summary report.Summary
	require.NoError(t, json.Unmarshal(data, &summary))

	assert.Equal(t, "je_samples.xlsx", summary.Workbook)
	assert.Equal(t, 1, summary.SheetCount)
	require.Len(t, summary.Sheets, 1)

	sheet := summary.Sheets[0]
	assert.Equal(t, "Journal", sheet.Sheet)
	assert.Equal(t, 10, sheet.RowCount)
	require.Contains(t, sheet.DateRanges, "date")
	assert.Equal(t, 8, sheet.DateRanges["date"].NonNull)
	require.Contains(t, sheet.NumericSummaries, "amount")
	assert.Equal(t, 10, sheet.NumericSummaries["amount"].NonNull)
	assert.InDelta(t, 4960.0, sheet.NumericSummaries["amount"].Sum, 1e-9)

	// benford_summary.csv: exactly one data row, for amount
	f, err := os.Open(paths.BenfordCSV())
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Journal", rows[1][0])
	assert.Equal(t, "amount", rows[1][1])

	// Remaining artifacts exist
	for _, path := range []string{
		paths.SummaryMarkdown(),
		paths.ColumnStatsCSV(),
		paths.IndexMarkdown(),
		paths.DescribeCSV("Journal"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestApp_Run_MissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "outputs")

	a := New(testConfig(), nil)
	err := a.Run(context.Background(), filepath.Join(dir, "absent.xlsx"), output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	// No output side effects before the existence check
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestApp_Run_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "je_samples.xlsx")
	output := filepath.Join(dir, "outputs")
	writeSampleWorkbook(t, input)

	a := New(testConfig(), nil)
	require.NoError(t, a.Run(context.Background(), input, output))
	first := snapshotDir(t, output)

	require.NoError(t, a.Run(context.Background(), input, output))
	second := snapshotDir(t, output)

	assert.Equal(t, first, second)
}

func snapshotDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	snapshot := make(map[string]string, len(entries))
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)
		snapshot[entry.Name()] = string(data)
	}
	return snapshot
}
