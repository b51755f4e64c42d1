package report

import (
	"fmt"
	"strconv"
)

// formatFloat formats a float64 for Markdown output with exactly 2 decimal
// places, so values like 13.4 appear as 13.40.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatExact renders a float with its shortest exact representation,
// used for CSV cells where rounding would lose information.
func formatExact(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatInt formats an int for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}
