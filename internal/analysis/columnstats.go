package analysis

import (
	"jecli/internal/workbook"
)

// ColumnStat is one row of the flat per-column statistics table. The format
// is sheet-agnostic; the Sheet field tags which table the column came from.
type ColumnStat struct {
	Sheet   string
	Column  string
	Dtype   string
	NonNull int
	Nulls   int
	Unique  int
}

// NewColumnStat computes the ColumnStat row for a column
func NewColumnStat(sheet string, col *workbook.Column) ColumnStat {
	return ColumnStat{
		Sheet:   sheet,
		Column:  col.Name,
		Dtype:   col.Kind.String(),
		NonNull: col.NonNull(),
		Nulls:   col.Nulls(),
		Unique:  col.Unique(),
	}
}
