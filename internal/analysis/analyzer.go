package analysis

import (
	"log/slog"
)

// Analyzer computes the per-column statistics for a workbook run.
// Date-range detection, numeric summaries, and Benford analysis are each
// independently optional per column; a method returns nil when its guard
// does not hold.
type Analyzer struct {
	logger    *slog.Logger
	dateRatio float64
}

// AnalyzerConfig holds configuration options for the Analyzer
type AnalyzerConfig struct {
	// DateRatio is the minimum fraction of a column's values (missing
	// included) that must parse as dates before a date range is reported.
	DateRatio float64
}

// DefaultAnalyzerConfig returns the standard configuration
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{DateRatio: 0.5}
}

// NewAnalyzer creates a new analyzer with the given configuration
func NewAnalyzer(logger *slog.Logger, config AnalyzerConfig) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if config.DateRatio <= 0 {
		config.DateRatio = 0.5
	}
	return &Analyzer{
		logger:    logger,
		dateRatio: config.DateRatio,
	}
}
