package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"jecli/internal/workbook"
)

// BenfordResult holds the leading-digit distribution of a numeric column.
// Index i of Counts and Percentages corresponds to digit i+1.
type BenfordResult struct {
	Total       int
	ChiSquare   float64
	Counts      [9]int
	Percentages [9]float64
}

// BenfordExpected returns the theoretical Benford probability of each
// leading digit, P(d) = log10(1 + 1/d), indexed d-1.
func BenfordExpected() [9]float64 {
	var expected [9]float64
	for d := 1; d <= 9; d++ {
		expected[d-1] = math.Log10(1 + 1/float64(d))
	}
	return expected
}

// AnalyzeBenford computes the Benford leading-digit analysis of a column,
// or nil when the column is not numeric or has no usable values. Missing
// values are dropped, magnitudes folded via absolute value, and zeros
// discarded before tallying.
func (a *Analyzer) AnalyzeBenford(col *workbook.Column) *BenfordResult {
	if col.Kind != workbook.ColumnNumeric {
		return nil
	}

	var result BenfordResult
	for _, v := range col.Numbers() {
		d := leadingDigit(v)
		if d == 0 {
			continue
		}
		result.Counts[d-1]++
		result.Total++
	}

	if result.Total == 0 {
		return nil
	}

	expected := BenfordExpected()
	obs := make([]float64, 9)
	exp := make([]float64, 9)
	for i := 0; i < 9; i++ {
		obs[i] = float64(result.Counts[i])
		exp[i] = expected[i] * float64(result.Total)
		result.Percentages[i] = float64(result.Counts[i]) / float64(result.Total)
	}
	result.ChiSquare = stat.ChiSquare(obs, exp)

	return &result
}

// leadingDigit extracts the first significant decimal digit of v by base-10
// normalization rather than string rendering, so exponent-notation artifacts
// cannot shift which digit is leading. Returns 0 for values with no
// significant digit (zero, NaN, infinities).
func leadingDigit(v float64) int {
	v = math.Abs(v)
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	for v >= 10 {
		v /= 10
	}
	for v < 1 {
		v *= 10
	}

	d := int(v)
	if d < 1 {
		return 1
	}
	if d > 9 {
		return 9
	}
	return d
}
