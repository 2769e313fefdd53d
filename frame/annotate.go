package frame

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/vixcal/calendar"
	"github.com/meenmo/vixcal/utils"
)

// Column names written by the annotation operations.
const (
	ColDaysToNext     = "days_to_next_vix_exp"
	ColDaysToNextCeil = "days_to_next_vix_exp_ceil"
	ColNextDate       = "next_vix_exp"
	ColSecondDate     = "second_vix_exp"
	ColDaysToFirst    = "days_to_first_exp"
	ColDaysToSecond   = "days_to_second_exp"
	ColDurationSecond = "duration_second_fut"
)

// DefaultNextDateColumn names the next-settlement date column when the
// caller passes an empty name to AnnotateNextSettlement.
const DefaultNextDateColumn = "next_vix_expiration_date"

// checkIndex rejects frames the annotation operations cannot key. A zero
// date anywhere in the index aborts the whole operation: both annotation
// variants share this policy, since a skipped row would misalign every
// derived column against the untouched ones.
func checkIndex(f *Frame) error {
	if !f.HasIndex() {
		return fmt.Errorf("frame: annotation requires a date index")
	}
	for i, d := range f.index {
		if d.IsZero() {
			return fmt.Errorf("frame: row %d has no valid date key", i)
		}
	}
	return nil
}

// AnnotateNextSettlement returns a copy of f with three columns added per
// row date d: the next VIX settlement date (under dateColumn, or
// DefaultNextDateColumn when empty), the floored whole-day count until it
// (same day means 0), and the ceiling day count that rounds any intraday
// remainder in d up to the next whole day. For midnight-keyed rows the two
// counts coincide.
//
// Re-annotating an already annotated frame overwrites the same columns,
// so the operation is idempotent.
func AnnotateNextSettlement(f *Frame, dateColumn string) (*Frame, error) {
	if err := checkIndex(f); err != nil {
		return nil, err
	}
	if dateColumn == "" {
		dateColumn = DefaultNextDateColumn
	}

	n := f.Len()
	settles := make([]time.Time, n)
	floorDays := make([]float64, n)
	ceilDays := make([]float64, n)
	for i, d := range f.index {
		s := calendar.NextSettlement(d)
		settles[i] = s
		floorDays[i] = utils.Days(calendar.Normalize(d), s)
		ceilDays[i] = math.Ceil(utils.Days(d, s))
	}

	out := f.Clone()
	out.putFloats(ColDaysToNext, floorDays)
	out.putFloats(ColDaysToNextCeil, ceilDays)
	out.putDates(dateColumn, settles)
	return out, nil
}

// AnnotateNextTwoSettlements returns a copy of f with day counts to the
// next two VIX settlements and the span between them. When keepDates is
// true the two raw settlement-date columns are retained as well;
// otherwise only the three day-count columns are added.
//
// Shares the roll-forward decision with AnnotateNextSettlement through
// calendar.NextTwoSettlements, so the two operations never disagree on
// which month's settlement comes first.
func AnnotateNextTwoSettlements(f *Frame, keepDates bool) (*Frame, error) {
	if err := checkIndex(f); err != nil {
		return nil, err
	}

	n := f.Len()
	firsts := make([]time.Time, n)
	seconds := make([]time.Time, n)
	daysFirst := make([]float64, n)
	daysSecond := make([]float64, n)
	duration := make([]float64, n)
	for i, d := range f.index {
		first, second := calendar.NextTwoSettlements(d)
		firsts[i] = first
		seconds[i] = second
		daysFirst[i] = math.Floor(utils.Days(d, first))
		daysSecond[i] = math.Floor(utils.Days(d, second))
		duration[i] = daysSecond[i] - daysFirst[i]
	}

	out := f.Clone()
	if keepDates {
		out.putDates(ColNextDate, firsts)
		out.putDates(ColSecondDate, seconds)
	} else {
		out.Drop(ColNextDate, ColSecondDate)
	}
	out.putFloats(ColDaysToFirst, daysFirst)
	out.putFloats(ColDaysToSecond, daysSecond)
	out.putFloats(ColDurationSecond, duration)
	return out, nil
}
