// Package main provides the CLI entry point for the journal entry analyzer.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"jecli/internal/app"
	"jecli/internal/config"
	"jecli/internal/infrastructure"
)

var (
	inputPath string
	outputDir string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	rootCmd := &cobra.Command{
		Use:   "jeanalyzer",
		Short: "Analyze journal entry Excel workbooks",
		Long: `jeanalyzer ingests a multi-sheet Excel workbook of accounting journal
entries and writes descriptive statistics, date-range detection, and a
Benford's-Law leading-digit analysis as JSON, CSV, and Markdown reports.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := infrastructure.ContextWithTraceID(cmd.Context())

			logger.InfoContext(ctx, "starting analyzer run",
				slog.String("input", inputPath),
				slog.String("output", outputDir))

			return app.New(cfg, logger).Run(ctx, inputPath, outputDir)
		},
	}

	rootCmd.Flags().StringVar(&inputPath, "input", cfg.Analysis.InputFile, "Path to the Excel workbook")
	rootCmd.Flags().StringVar(&outputDir, "output", cfg.Analysis.OutputDir, "Directory to write outputs")

	return rootCmd.Execute()
}
