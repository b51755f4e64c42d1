package workbook

import (
	"time"
)

// CellKind classifies a single cell value
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellTime
	CellText
)

// ColumnKind is the inferred element type of a column, determined once at
// load time from the cells it contains.
type ColumnKind int

const (
	// ColumnText is the fallback kind; all-empty columns are also text.
	ColumnText ColumnKind = iota
	// ColumnNumeric means every non-empty cell parsed as a number.
	ColumnNumeric
	// ColumnTemporal means every non-empty cell parsed as a timestamp.
	ColumnTemporal
	// ColumnMixed means non-empty cells of more than one kind.
	ColumnMixed
)

// String returns the dtype label used in reports
func (k ColumnKind) String() string {
	switch k {
	case ColumnNumeric:
		return "numeric"
	case ColumnTemporal:
		return "datetime"
	case ColumnMixed:
		return "mixed"
	default:
		return "text"
	}
}

// Cell holds one parsed cell. Number and Time are only meaningful for the
// corresponding kind.
type Cell struct {
	Raw    string
	Kind   CellKind
	Number float64
	Time   time.Time
}

// Column is a named, typed column of cells
type Column struct {
	Name  string
	Kind  ColumnKind
	Cells []Cell
}

// NonNull returns the count of non-empty cells
func (c *Column) NonNull() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.Kind != CellEmpty {
			n++
		}
	}
	return n
}

// Nulls returns the count of empty cells
func (c *Column) Nulls() int {
	return len(c.Cells) - c.NonNull()
}

// Unique returns the count of distinct non-empty raw values
func (c *Column) Unique() int {
	seen := make(map[string]struct{})
	for _, cell := range c.Cells {
		if cell.Kind != CellEmpty {
			seen[cell.Raw] = struct{}{}
		}
	}
	return len(seen)
}

// Numbers returns the numeric values of all number cells in row order
func (c *Column) Numbers() []float64 {
	values := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Kind == CellNumber {
			values = append(values, cell.Number)
		}
	}
	return values
}

// Times returns the timestamps of all time cells in row order
func (c *Column) Times() []time.Time {
	values := make([]time.Time, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Kind == CellTime {
			values = append(values, cell.Time)
		}
	}
	return values
}

// Sheet is one named table of the workbook. RowCount excludes the header row.
type Sheet struct {
	Name     string
	RowCount int
	Columns  []Column
}

// ColumnNames returns the column names in declared order
func (s *Sheet) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// Workbook is an ordered collection of sheets loaded from one file
type Workbook struct {
	Name   string
	Sheets []Sheet
}
