package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"jecli/internal/analysis"
	"jecli/internal/config"
	"jecli/internal/errors"
)

// Serializer writes the assembled report to the output directory. It is a
// pure formatting stage; no new statistics are computed here.
type Serializer struct {
	logger *slog.Logger
	paths  *config.Paths
	csv    *CSVWriter
}

// NewSerializer creates a serializer writing into the given paths
func NewSerializer(logger *slog.Logger, paths *config.Paths) *Serializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Serializer{
		logger: logger,
		paths:  paths,
		csv:    NewCSVWriter(logger),
	}
}

// WriteAll writes every artifact of the run. The Benford CSV is only
// written when at least one column qualified.
func (s *Serializer) WriteAll(ctx context.Context, report *Report) error {
	if err := s.paths.EnsureOutputDir(); err != nil {
		return errors.NewStorageError("failed to prepare output directory", err)
	}

	if err := s.writeSummaryJSON(report.Summary); err != nil {
		return err
	}
	if err := s.writeColumnStatsCSV(report); err != nil {
		return err
	}
	for _, table := range report.Describes {
		if err := s.writeDescribeCSV(table); err != nil {
			return err
		}
	}
	if len(report.BenfordRows) > 0 {
		if err := s.writeBenfordCSV(report); err != nil {
			return err
		}
	}
	if err := s.writeSummaryMarkdown(report); err != nil {
		return err
	}
	if err := s.writeIndex(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "all report artifacts written",
		slog.String("output_dir", s.paths.OutputDir),
		slog.Int("sheet_count", report.Summary.SheetCount),
		slog.Bool("benford_written", len(report.BenfordRows) > 0))

	return nil
}

// writeSummaryJSON writes the nested workbook summary as indented JSON
func (s *Serializer) writeSummaryJSON(summary *Summary) error {
	file, err := os.Create(s.paths.SummaryJSON())
	if err != nil {
		return errors.NewStorageError("failed to create summary JSON file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return errors.NewStorageError("failed to encode summary to JSON", err)
	}
	return nil
}

// writeColumnStatsCSV writes the flat per-column statistics table
func (s *Serializer) writeColumnStatsCSV(report *Report) error {
	headers := []string{"sheet", "column", "dtype", "non_null", "nulls", "unique"}
	records := make([][]string, 0, len(report.ColumnStats))
	for _, stat := range report.ColumnStats {
		records = append(records, []string{
			stat.Sheet,
			stat.Column,
			stat.Dtype,
			formatInt(stat.NonNull),
			formatInt(stat.Nulls),
			formatInt(stat.Unique),
		})
	}
	return s.csv.WriteSimpleCSV(s.paths.ColumnStatsCSV(), headers, records)
}

// writeDescribeCSV writes one sheet's descriptive-statistics table. The
// first column carries the statistic name, mirroring a describe-style
// index column.
func (s *Serializer) writeDescribeCSV(table *analysis.DescribeTable) error {
	headers := append([]string{""}, table.Columns...)
	records := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, append([]string{row.Stat}, row.Values...))
	}
	return s.csv.WriteSimpleCSV(s.paths.DescribeCSV(table.Sheet), headers, records)
}

// writeBenfordCSV writes one row per qualifying (sheet, column) pair
func (s *Serializer) writeBenfordCSV(report *Report) error {
	headers := []string{"sheet", "column", "total_values", "chi_square"}
	for d := 1; d <= 9; d++ {
		headers = append(headers, fmt.Sprintf("digit_%d_pct", d))
	}

	records := make([][]string, 0, len(report.BenfordRows))
	for _, row := range report.BenfordRows {
		record := []string{
			row.Sheet,
			row.Column,
			formatInt(row.Result.Total),
			formatExact(row.Result.ChiSquare),
		}
		for _, pct := range row.Result.Percentages {
			record = append(record, formatExact(pct))
		}
		records = append(records, record)
	}
	return s.csv.WriteSimpleCSV(s.paths.BenfordCSV(), headers, records)
}

// writeSummaryMarkdown writes the human-readable narrative
func (s *Serializer) writeSummaryMarkdown(report *Report) error {
	lines := []string{
		fmt.Sprintf("# Journal Entry Summary for `%s`", report.Summary.Workbook),
		"",
		fmt.Sprintf("Total sheets: **%d**", report.Summary.SheetCount),
		"",
	}

	for _, sheet := range report.Summary.Sheets {
		lines = append(lines,
			fmt.Sprintf("## Sheet: %s", sheet.Sheet),
			fmt.Sprintf("- Rows: **%d**", sheet.RowCount),
			fmt.Sprintf("- Columns: **%d**", sheet.ColumnCount),
		)
		if len(sheet.DateRanges) > 0 {
			lines = append(lines, "- Date ranges:")
			for _, col := range sheet.Columns {
				if info, ok := sheet.DateRanges[col]; ok {
					lines = append(lines, fmt.Sprintf("  - %s: %s → %s (non-null %d)",
						col, info.Min, info.Max, info.NonNull))
				}
			}
		}
		if len(sheet.NumericSummaries) > 0 {
			lines = append(lines, "- Numeric summaries:")
			for _, col := range sheet.Columns {
				if summary, ok := sheet.NumericSummaries[col]; ok {
					lines = append(lines, fmt.Sprintf("  - %s: mean %s, min %s, max %s, sum %s",
						col,
						formatFloat(summary.Mean),
						formatFloat(summary.Min),
						formatFloat(summary.Max),
						formatFloat(summary.Sum)))
				}
			}
		}
		lines = append(lines, "")
	}

	if len(report.BenfordRows) > 0 {
		lines = append(lines,
			"## Benford's Law Results",
			"",
			"Benford analysis is computed on numeric columns using leading digits.",
			fmt.Sprintf("See `%s` for per-column distributions and chi-square scores.", config.BenfordName),
			"",
		)
	}

	content := strings.Join(lines, "\n")
	if err := os.WriteFile(s.paths.SummaryMarkdown(), []byte(content), 0644); err != nil {
		return errors.NewStorageError("failed to write summary Markdown", err)
	}
	return nil
}

// writeIndex writes the static description of generated artifacts
func (s *Serializer) writeIndex() error {
	lines := []string{
		"# Output Files",
		"",
		"This folder is generated by the journal entry analysis workflow.",
		"",
		fmt.Sprintf("- `%s`: machine-readable summary", config.SummaryJSONName),
		fmt.Sprintf("- `%s`: human-readable summary", config.SummaryMDName),
		fmt.Sprintf("- `%s`: per-column statistics", config.ColumnStatsName),
		"- `describe_<sheet>.csv`: descriptive statistics per sheet",
		fmt.Sprintf("- `%s`: Benford's Law leading digit distribution per column", config.BenfordName),
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(s.paths.IndexMarkdown(), []byte(content), 0644); err != nil {
		return errors.NewStorageError("failed to write index Markdown", err)
	}
	return nil
}
