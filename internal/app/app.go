// Package app wires the analyzer pipeline: load workbook, run per-column
// analyses, assemble the report, serialize artifacts. One forward pass,
// no retries.
package app

import (
	"context"
	"log/slog"

	"jecli/internal/analysis"
	"jecli/internal/config"
	"jecli/internal/report"
	"jecli/internal/validation"
	"jecli/internal/workbook"
)

// App is the application container for one analyzer run
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates the application with its configuration and logger
func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, logger: logger}
}

// Run executes the full pipeline for one workbook. The input existence
// check precedes any side effect, so a missing input leaves the output
// directory untouched.
func (a *App) Run(ctx context.Context, inputPath, outputDir string) error {
	if err := validation.NewFileValidator(a.logger).ValidateInputFile(inputPath); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "starting workbook analysis",
		slog.String("input", inputPath),
		slog.String("output_dir", outputDir))

	loader := workbook.NewLoader(a.logger)
	wb, err := loader.Load(ctx, inputPath)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(a.logger, analysis.AnalyzerConfig{
		DateRatio: a.cfg.Analysis.DateRatio,
	})
	rep := report.NewAssembler(a.logger, analyzer).Assemble(ctx, wb)

	paths := config.NewPaths(outputDir)
	if err := report.NewSerializer(a.logger, paths).WriteAll(ctx, rep); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "workbook analysis complete",
		slog.String("workbook", wb.Name),
		slog.Int("sheet_count", len(wb.Sheets)))

	return nil
}
