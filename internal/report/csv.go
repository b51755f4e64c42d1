package report

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"jecli/internal/errors"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteSimpleCSV writes a CSV file with headers and records, truncating any
// previous content so repeated runs produce identical artifacts.
func (w *CSVWriter) WriteSimpleCSV(path string, headers []string, records [][]string) error {
	w.logger.Info("writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for CSV output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create CSV file", err).
			WithContext("path", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(headers) > 0 {
		if err := writer.Write(headers); err != nil {
			return errors.NewStorageError("failed to write CSV header row", err)
		}
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV output", err)
	}
	return nil
}
