package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifact file names written into the output directory.
const (
	SummaryJSONName   = "summary.json"
	SummaryMDName     = "summary.md"
	ColumnStatsName   = "column_stats.csv"
	BenfordName       = "benford_summary.csv"
	IndexName         = "index.md"
	describePrefix    = "describe_"
	describeExtension = ".csv"
)

// Paths is the single source of truth for report file locations.
// Every artifact lives directly under the output directory.
type Paths struct {
	OutputDir string
}

// NewPaths creates a Paths rooted at the given output directory
func NewPaths(outputDir string) *Paths {
	return &Paths{OutputDir: outputDir}
}

// EnsureOutputDir creates the output directory tree if absent
func (p *Paths) EnsureOutputDir() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", p.OutputDir, err)
	}
	return nil
}

// SummaryJSON returns the path of the machine-readable summary
func (p *Paths) SummaryJSON() string {
	return filepath.Join(p.OutputDir, SummaryJSONName)
}

// SummaryMarkdown returns the path of the human-readable summary
func (p *Paths) SummaryMarkdown() string {
	return filepath.Join(p.OutputDir, SummaryMDName)
}

// ColumnStatsCSV returns the path of the flat per-column statistics table
func (p *Paths) ColumnStatsCSV() string {
	return filepath.Join(p.OutputDir, ColumnStatsName)
}

// BenfordCSV returns the path of the Benford leading-digit table
func (p *Paths) BenfordCSV() string {
	return filepath.Join(p.OutputDir, BenfordName)
}

// IndexMarkdown returns the path of the artifact index
func (p *Paths) IndexMarkdown() string {
	return filepath.Join(p.OutputDir, IndexName)
}

// DescribeCSV returns the path of the describe table for a sheet
func (p *Paths) DescribeCSV(sheet string) string {
	return filepath.Join(p.OutputDir, describePrefix+sanitizeSheetName(sheet)+describeExtension)
}

// sanitizeSheetName makes a sheet name safe to embed in a file name.
// Excel forbids most problem characters already, but path separators
// in particular must never leak into artifact paths.
func sanitizeSheetName(name string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}
