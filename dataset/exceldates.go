package dataset

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/vixcal/frame"
)

// excelEpoch is the spreadsheet serial-date origin: day 1 is 1899-12-31.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// CleanExcelDates returns a copy of f with the named integer day-count
// column decoded into calendar dates against the 1899-12-30 epoch. With
// setIndex the decoded dates become the frame's row key and the column is
// dropped; otherwise the column is converted in place. Serial values are
// truncated to whole days; NaN is an error.
func CleanExcelDates(f *frame.Frame, col string, setIndex bool) (*frame.Frame, error) {
	vals, err := f.Floats(col)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("dataset: column %q row %d is not a valid day count", col, i)
		}
		dates[i] = excelEpoch.AddDate(0, 0, int(v))
	}

	out := f.Clone()
	if setIndex {
		if err := out.SetIndex(dates); err != nil {
			return nil, err
		}
		out.Drop(col)
		return out, nil
	}
	if err := out.ReplaceWithDates(col, dates); err != nil {
		return nil, err
	}
	return out, nil
}
