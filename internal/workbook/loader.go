package workbook

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"

	"jecli/internal/errors"
)

// Loader reads an Excel workbook into the typed column model
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a workbook loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load opens the workbook at path and builds typed sheets in workbook order.
// The first row of each sheet is treated as the header row.
func (l *Loader) Load(ctx context.Context, path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError("failed to open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	wb := &Workbook{Name: filepath.Base(path)}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, errors.NewParsingError("failed to read sheet", err).
				WithContext("sheet", sheetName)
		}

		sheet := buildSheet(sheetName, rows)
		wb.Sheets = append(wb.Sheets, sheet)

		l.logger.InfoContext(ctx, "loaded sheet",
			slog.String("sheet", sheetName),
			slog.Int("rows", sheet.RowCount),
			slog.Int("columns", len(sheet.Columns)))
	}

	l.logger.InfoContext(ctx, "workbook loaded",
		slog.String("workbook", wb.Name),
		slog.Int("sheet_count", len(wb.Sheets)))

	return wb, nil
}

// buildSheet converts raw rows into a typed sheet. The header row supplies
// column names; unnamed positions become column_<n> and duplicates get a
// numeric suffix so report maps stay unambiguous.
func buildSheet(name string, rows [][]string) Sheet {
	if len(rows) == 0 {
		return Sheet{Name: name}
	}

	header := rows[0]
	dataRows := rows[1:]

	width := len(header)
	for _, row := range dataRows {
		if len(row) > width {
			width = len(row)
		}
	}

	names := columnNames(header, width)

	sheet := Sheet{
		Name:     name,
		RowCount: len(dataRows),
		Columns:  make([]Column, width),
	}

	for i := 0; i < width; i++ {
		cells := make([]Cell, len(dataRows))
		for r, row := range dataRows {
			raw := ""
			if i < len(row) {
				raw = row[i]
			}
			cells[r] = classifyCell(raw)
		}
		sheet.Columns[i] = Column{
			Name:  names[i],
			Kind:  inferColumnKind(cells),
			Cells: cells,
		}
	}

	return sheet
}

// columnNames derives unique column names for a sheet of the given width
func columnNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)

	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[name] = 1
		names[i] = name
	}

	return names
}

// classifyCell parses one raw cell into its kind. Compact yyyymmdd strings
// are checked before numbers; every other digit-only value stays numeric so
// amount columns never degrade into dates.
func classifyCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Raw: raw, Kind: CellEmpty}
	}

	if isDigits(trimmed) && len(trimmed) == 8 {
		if t, ok := ParseTimestamp(trimmed); ok {
			return Cell{Raw: trimmed, Kind: CellTime, Time: t}
		}
	}

	if v, ok := parseNumber(trimmed); ok {
		return Cell{Raw: trimmed, Kind: CellNumber, Number: v}
	}

	if t, ok := ParseTimestamp(trimmed); ok {
		return Cell{Raw: trimmed, Kind: CellTime, Time: t}
	}

	return Cell{Raw: trimmed, Kind: CellText}
}

// inferColumnKind folds cell kinds into the column's tagged variant
func inferColumnKind(cells []Cell) ColumnKind {
	var numbers, times, texts int
	for _, cell := range cells {
		switch cell.Kind {
		case CellNumber:
			numbers++
		case CellTime:
			times++
		case CellText:
			texts++
		}
	}

	nonNull := numbers + times + texts
	switch {
	case nonNull == 0:
		return ColumnText
	case numbers == nonNull:
		return ColumnNumeric
	case times == nonNull:
		return ColumnTemporal
	case texts == nonNull:
		return ColumnText
	default:
		return ColumnMixed
	}
}

// parseNumber parses a cell as a float, tolerating thousands separators
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseTimestamp attempts a permissive parse of s as a timestamp.
// Pure-digit strings are only accepted in yyyymmdd form; other bare numbers
// never qualify as dates, so identifiers and amounts stay out of date
// detection.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if isDigits(s) {
		if len(s) != 8 {
			return time.Time{}, false
		}
		t, err := time.Parse("20060102", s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
