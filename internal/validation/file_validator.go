package validation

import (
	"fmt"
	"log/slog"
	"os"

	"jecli/internal/errors"
)

// FileValidator guards the analyzer's single explicit error condition:
// the input workbook must exist before any output side effect happens.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateInputFile checks that path exists and is a regular file
func (v *FileValidator) ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("input file does not exist",
			slog.String("path", path))
		return errors.NewNotFoundError(fmt.Sprintf("input file %s", path))
	}
	if err != nil {
		v.logger.Error("failed to stat input file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return errors.NewValidationError(fmt.Sprintf("cannot access input file %s: %v", path, err))
	}
	if info.IsDir() {
		v.logger.Error("input path is a directory",
			slog.String("path", path))
		return errors.NewValidationError(fmt.Sprintf("%s is a directory, not a workbook", path))
	}
	return nil
}
