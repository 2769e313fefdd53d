// Package frame provides an ordered, date-indexed table with named
// numeric and date columns, plus the settlement-annotation operations
// that stamp VIX calendar columns onto it.
package frame

import (
	"fmt"
	"time"
)

// Frame is an ordered table of named columns over a shared row count.
// Numeric columns hold []float64, date columns hold []time.Time. Rows are
// optionally keyed by a date index; annotation operations require one.
//
// Frames are value-like: the annotation operations return a new Frame and
// never mutate their receiver's data.
type Frame struct {
	index        []time.Time
	columns      map[string]interface{}
	orderedNames []string
}

// New returns an empty, unindexed frame.
func New() *Frame {
	return &Frame{columns: make(map[string]interface{})}
}

// NewIndexed returns a frame keyed by the given dates. The slice is copied.
func NewIndexed(index []time.Time) *Frame {
	f := New()
	f.index = append([]time.Time(nil), index...)
	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f.index != nil {
		return len(f.index)
	}
	if len(f.orderedNames) == 0 {
		return 0
	}
	switch col := f.columns[f.orderedNames[0]].(type) {
	case []float64:
		return len(col)
	case []time.Time:
		return len(col)
	}
	return 0
}

// HasIndex reports whether the frame carries a date index.
func (f *Frame) HasIndex() bool {
	return f.index != nil
}

// Index returns a copy of the date index, or nil when the frame has none.
func (f *Frame) Index() []time.Time {
	if f.index == nil {
		return nil
	}
	return append([]time.Time(nil), f.index...)
}

// SetIndex keys the frame by the given dates. The length must match the
// existing row count when the frame already holds columns.
func (f *Frame) SetIndex(index []time.Time) error {
	if len(f.orderedNames) > 0 && len(index) != f.Len() {
		return fmt.Errorf("frame: index length %d does not match %d rows", len(index), f.Len())
	}
	f.index = append([]time.Time(nil), index...)
	return nil
}

// ColumnNames returns the column names in insertion order.
func (f *Frame) ColumnNames() []string {
	return append([]string(nil), f.orderedNames...)
}

// NumColumns returns the number of columns.
func (f *Frame) NumColumns() int {
	return len(f.orderedNames)
}

func (f *Frame) checkAdd(name string, n int) error {
	if _, ok := f.columns[name]; ok {
		return fmt.Errorf("frame: column %q already exists", name)
	}
	if len(f.orderedNames) > 0 || f.index != nil {
		if n != f.Len() {
			return fmt.Errorf("frame: column %q length %d does not match %d rows", name, n, f.Len())
		}
	}
	return nil
}

// AddFloats appends a numeric column. Duplicate names and length
// mismatches are errors.
func (f *Frame) AddFloats(name string, vals []float64) error {
	if err := f.checkAdd(name, len(vals)); err != nil {
		return err
	}
	f.orderedNames = append(f.orderedNames, name)
	f.columns[name] = append([]float64(nil), vals...)
	return nil
}

// AddDates appends a date column. Duplicate names and length mismatches
// are errors.
func (f *Frame) AddDates(name string, vals []time.Time) error {
	if err := f.checkAdd(name, len(vals)); err != nil {
		return err
	}
	f.orderedNames = append(f.orderedNames, name)
	f.columns[name] = append([]time.Time(nil), vals...)
	return nil
}

// putFloats replaces the column if present (keeping its position) or
// appends it. Used by the annotation operations so re-annotating a frame
// overwrites its own columns instead of failing.
func (f *Frame) putFloats(name string, vals []float64) {
	if _, ok := f.columns[name]; !ok {
		f.orderedNames = append(f.orderedNames, name)
	}
	f.columns[name] = append([]float64(nil), vals...)
}

func (f *Frame) putDates(name string, vals []time.Time) {
	if _, ok := f.columns[name]; !ok {
		f.orderedNames = append(f.orderedNames, name)
	}
	f.columns[name] = append([]time.Time(nil), vals...)
}

// Floats returns the numeric column with the given name.
func (f *Frame) Floats(name string) ([]float64, error) {
	col, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("frame: no column %q", name)
	}
	vals, ok := col.([]float64)
	if !ok {
		return nil, fmt.Errorf("frame: column %q is not numeric", name)
	}
	return append([]float64(nil), vals...), nil
}

// Dates returns the date column with the given name.
func (f *Frame) Dates(name string) ([]time.Time, error) {
	col, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("frame: no column %q", name)
	}
	vals, ok := col.([]time.Time)
	if !ok {
		return nil, fmt.Errorf("frame: column %q is not a date column", name)
	}
	return append([]time.Time(nil), vals...), nil
}

// ReplaceWithDates swaps an existing column for a date column with the
// same name, preserving its position.
func (f *Frame) ReplaceWithDates(name string, vals []time.Time) error {
	if _, ok := f.columns[name]; !ok {
		return fmt.Errorf("frame: no column %q", name)
	}
	if len(vals) != f.Len() {
		return fmt.Errorf("frame: column %q length %d does not match %d rows", name, len(vals), f.Len())
	}
	f.columns[name] = append([]time.Time(nil), vals...)
	return nil
}

// Drop removes the named columns. Unknown names are ignored.
func (f *Frame) Drop(names ...string) {
	for _, name := range names {
		if _, ok := f.columns[name]; !ok {
			continue
		}
		delete(f.columns, name)
		for i, n := range f.orderedNames {
			if n == name {
				f.orderedNames = append(f.orderedNames[:i], f.orderedNames[i+1:]...)
				break
			}
		}
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := New()
	if f.index != nil {
		out.index = append([]time.Time(nil), f.index...)
	}
	out.orderedNames = append([]string(nil), f.orderedNames...)
	for name, col := range f.columns {
		switch vals := col.(type) {
		case []float64:
			out.columns[name] = append([]float64(nil), vals...)
		case []time.Time:
			out.columns[name] = append([]time.Time(nil), vals...)
		}
	}
	return out
}
