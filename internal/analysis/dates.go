package analysis

import (
	"time"

	"jecli/internal/workbook"
)

// DateRangeInfo describes the timestamp span of a date-like column
type DateRangeInfo struct {
	NonNull int    `json:"non_null"`
	Min     string `json:"min"`
	Max     string `json:"max"`
}

// DetectDateRange reports the date range of a column, or nil when the
// column does not qualify. Temporal columns use their load-time timestamps;
// for every other column the permissively parsed cells count, with
// unparseable values treated as missing. The qualifying ratio is measured
// against all values, originally-missing ones included.
func (a *Analyzer) DetectDateRange(col *workbook.Column) *DateRangeInfo {
	total := len(col.Cells)
	if total == 0 {
		return nil
	}

	times := col.Times()
	if len(times) == 0 {
		return nil
	}
	if float64(len(times))/float64(total) < a.dateRatio {
		return nil
	}

	minTime, maxTime := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(minTime) {
			minTime = t
		}
		if t.After(maxTime) {
			maxTime = t
		}
	}

	return &DateRangeInfo{
		NonNull: len(times),
		Min:     minTime.Format(time.RFC3339),
		Max:     maxTime.Format(time.RFC3339),
	}
}
