package report

import (
	"context"
	"log/slog"

	"jecli/internal/analysis"
	"jecli/internal/workbook"
)

// Assembler runs the per-column analyses over a workbook and combines the
// results into a Report. All computation happens here; the serializer is a
// pure formatting stage.
type Assembler struct {
	logger   *slog.Logger
	analyzer *analysis.Analyzer
}

// NewAssembler creates a report assembler
func NewAssembler(logger *slog.Logger, analyzer *analysis.Analyzer) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{logger: logger, analyzer: analyzer}
}

// Assemble walks every sheet and column of the workbook in declared order
func (asm *Assembler) Assemble(ctx context.Context, wb *workbook.Workbook) *Report {
	report := &Report{
		Summary: &Summary{
			Workbook:   wb.Name,
			SheetCount: len(wb.Sheets),
			Sheets:     make([]*SheetRecord, 0, len(wb.Sheets)),
		},
	}

	for si := range wb.Sheets {
		sheet := &wb.Sheets[si]
		record := &SheetRecord{
			Sheet:            sheet.Name,
			RowCount:         sheet.RowCount,
			ColumnCount:      len(sheet.Columns),
			Columns:          sheet.ColumnNames(),
			DateRanges:       make(map[string]*analysis.DateRangeInfo),
			NumericSummaries: make(map[string]*analysis.NumericSummary),
		}

		for ci := range sheet.Columns {
			col := &sheet.Columns[ci]

			report.ColumnStats = append(report.ColumnStats, analysis.NewColumnStat(sheet.Name, col))

			if info := asm.analyzer.DetectDateRange(col); info != nil {
				record.DateRanges[col.Name] = info
			}
			if summary := asm.analyzer.SummarizeNumeric(col); summary != nil {
				record.NumericSummaries[col.Name] = summary
			}
			if benford := asm.analyzer.AnalyzeBenford(col); benford != nil {
				report.BenfordRows = append(report.BenfordRows, BenfordRow{
					Sheet:  sheet.Name,
					Column: col.Name,
					Result: benford,
				})
			}
		}

		report.Summary.Sheets = append(report.Summary.Sheets, record)
		report.Describes = append(report.Describes, asm.analyzer.Describe(sheet))

		asm.logger.InfoContext(ctx, "assembled sheet record",
			slog.String("sheet", sheet.Name),
			slog.Int("date_ranges", len(record.DateRanges)),
			slog.Int("numeric_summaries", len(record.NumericSummaries)))
	}

	asm.logger.InfoContext(ctx, "report assembled",
		slog.String("workbook", wb.Name),
		slog.Int("column_stats", len(report.ColumnStats)),
		slog.Int("benford_rows", len(report.BenfordRows)))

	return report
}
