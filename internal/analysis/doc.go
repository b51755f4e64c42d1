// Package analysis computes the per-column statistics of a journal entry
// workbook: date-range detection, numeric summaries, Benford's-Law
// leading-digit analysis, per-column stat rows, and the describe table.
//
// Each analysis is independently optional per column. The Analyzer methods
// return nil when a column does not qualify, and the report assembler only
// attaches results that exist, so a column may carry zero, one, or several
// analyses at once.
//
// Benford expected frequencies follow P(d) = log10(1 + 1/d) for digits
// 1 through 9; the chi-square statistic against that distribution is the
// anomaly heuristic surfaced in benford_summary.csv.
package analysis
