package analysis

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"jecli/internal/workbook"
)

// describeStats is the fixed row order of the describe table
var describeStats = []string{
	"count", "unique", "top", "freq",
	"mean", "std", "min", "25%", "50%", "75%", "max",
}

// DescribeTable is the full descriptive-statistics table of one sheet,
// covering all columns of all types. Cells hold formatted values; a blank
// cell means the statistic does not apply to that column.
type DescribeTable struct {
	Sheet   string
	Columns []string
	Rows    []DescribeRow
}

// DescribeRow is one statistic across every column of the sheet
type DescribeRow struct {
	Stat   string
	Values []string
}

// Describe computes the descriptive-statistics table for a sheet. Numeric
// columns fill the moment and quantile rows; every other column fills the
// unique/top/freq rows instead.
func (a *Analyzer) Describe(sheet *workbook.Sheet) *DescribeTable {
	table := &DescribeTable{
		Sheet:   sheet.Name,
		Columns: sheet.ColumnNames(),
	}

	cells := make(map[string][]string, len(describeStats))
	for _, name := range describeStats {
		cells[name] = make([]string, len(sheet.Columns))
	}

	for i := range sheet.Columns {
		col := &sheet.Columns[i]
		cells["count"][i] = strconv.Itoa(col.NonNull())

		if col.Kind == workbook.ColumnNumeric {
			describeNumeric(col, i, cells)
		} else {
			describeCategorical(col, i, cells)
		}
	}

	for _, name := range describeStats {
		table.Rows = append(table.Rows, DescribeRow{Stat: name, Values: cells[name]})
	}

	return table
}

// describeNumeric fills mean/std/min/quantiles/max for a numeric column
func describeNumeric(col *workbook.Column, i int, cells map[string][]string) {
	values := col.Numbers()
	if len(values) == 0 {
		return
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	cells["mean"][i] = formatStat(stat.Mean(values, nil))
	if len(values) > 1 {
		cells["std"][i] = formatStat(stat.StdDev(values, nil))
	}
	cells["min"][i] = formatStat(sorted[0])
	cells["25%"][i] = formatStat(stat.Quantile(0.25, stat.LinInterp, sorted, nil))
	cells["50%"][i] = formatStat(stat.Quantile(0.5, stat.LinInterp, sorted, nil))
	cells["75%"][i] = formatStat(stat.Quantile(0.75, stat.LinInterp, sorted, nil))
	cells["max"][i] = formatStat(sorted[len(sorted)-1])
}

// describeCategorical fills unique/top/freq for a non-numeric column
func describeCategorical(col *workbook.Column, i int, cells map[string][]string) {
	counts := make(map[string]int)
	for _, cell := range col.Cells {
		if cell.Kind != workbook.CellEmpty {
			counts[cell.Raw]++
		}
	}
	if len(counts) == 0 {
		return
	}

	cells["unique"][i] = strconv.Itoa(len(counts))

	top, freq := "", 0
	for value, count := range counts {
		// Ties resolve to the lexicographically smallest value so the
		// table is stable across runs.
		if count > freq || (count == freq && value < top) {
			top, freq = value, count
		}
	}
	cells["top"][i] = top
	cells["freq"][i] = strconv.Itoa(freq)
}

// formatStat renders a float with the shortest exact representation
func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
