package report

import (
	"jecli/internal/analysis"
)

// SheetRecord is the per-sheet entry of the workbook summary. The nested
// maps are keyed by column name and hold only the columns that qualified.
type SheetRecord struct {
	Sheet            string                              `json:"sheet"`
	RowCount         int                                 `json:"row_count"`
	ColumnCount      int                                 `json:"column_count"`
	Columns          []string                            `json:"columns"`
	DateRanges       map[string]*analysis.DateRangeInfo  `json:"date_ranges"`
	NumericSummaries map[string]*analysis.NumericSummary `json:"numeric_summaries"`
}

// Summary is the nested workbook summary serialized to summary.json
type Summary struct {
	Workbook   string         `json:"workbook"`
	SheetCount int            `json:"sheet_count"`
	Sheets     []*SheetRecord `json:"sheets"`
}

// BenfordRow is one qualifying (sheet, column) pair of the flat Benford table
type BenfordRow struct {
	Sheet  string
	Column string
	Result *analysis.BenfordResult
}

// Report aggregates everything one run computes, ready for serialization
type Report struct {
	Summary     *Summary
	ColumnStats []analysis.ColumnStat
	BenfordRows []BenfordRow
	Describes   []*analysis.DescribeTable
}
