package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/meenmo/vixcal/frame"
)

// AddPercentiles returns a copy of f with one column per requested level
// holding the expanding-window percentile of the named numeric column: the
// value at row i is the level-quantile of rows 1..i only. The quantile
// interpolates linearly between the two nearest order statistics
// (h = p*(n-1)), the convention spreadsheets and pandas default to.
// Columns are named "<col>_pct_<level>". Levels outside [0, 1] and NaN
// inputs are errors.
func AddPercentiles(f *frame.Frame, col string, levels []float64) (*frame.Frame, error) {
	vals, err := f.Floats(col)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("dataset: column %q row %d is not numeric", col, i)
		}
	}

	out := f.Clone()
	for _, p := range levels {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("dataset: percentile level %v outside [0, 1]", p)
		}

		res := make([]float64, len(vals))
		sorted := make([]float64, 0, len(vals))
		for i, v := range vals {
			sorted = append(sorted, v)
			sort.Float64s(sorted)
			res[i] = quantileLinear(p, sorted)
		}

		name := fmt.Sprintf("%s_pct_%s", col, strconv.FormatFloat(p, 'g', -1, 64))
		if err := out.AddFloats(name, res); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// quantileLinear returns the p-quantile of sorted values by linear
// interpolation between adjacent order statistics at h = p*(n-1).
// Callers guarantee a non-empty slice and p in [0, 1].
func quantileLinear(p float64, sorted []float64) float64 {
	n := len(sorted)
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
