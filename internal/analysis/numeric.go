package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"jecli/internal/workbook"
)

// NumericSummary holds the basic aggregates of a numeric column
type NumericSummary struct {
	NonNull int     `json:"non_null"`
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Sum     float64 `json:"sum"`
}

// SummarizeNumeric computes the numeric summary of a column, or nil when
// the column is not numeric or has no non-null values. There is no
// string-to-number coercion here; the column kind decided at load time is
// final.
func (a *Analyzer) SummarizeNumeric(col *workbook.Column) *NumericSummary {
	if col.Kind != workbook.ColumnNumeric {
		return nil
	}

	values := col.Numbers()
	if len(values) == 0 {
		return nil
	}

	return &NumericSummary{
		NonNull: len(values),
		Mean:    stat.Mean(values, nil),
		Min:     floats.Min(values),
		Max:     floats.Max(values),
		Sum:     floats.Sum(values),
	}
}
