// Package calendar computes US equity-derivative calendar dates: Western
// Easter and Good Friday, the third-Friday monthly expiration (with the
// Good Friday adjustment), and the monthly VIX futures settlement schedule.
//
// All functions operate at day granularity on time.Time values in UTC.
// Inputs carrying a time-of-day component are normalized before any
// comparison. The computus is valid for Gregorian years >= 1583; behavior
// for earlier years is unspecified.
package calendar

import (
	"fmt"
	"time"
)

// Normalize truncates t to midnight UTC, keeping the calendar date as
// observed in t's location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EasterSunday returns Western Easter Sunday for the given year using the
// anonymous Gregorian computus. Integer arithmetic throughout; the result
// always falls between March 22 and April 25.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// GoodFriday returns the Friday two days before Easter Sunday.
func GoodFriday(year int) time.Time {
	return EasterSunday(year).AddDate(0, 0, -2)
}

// checkMonth panics on a month outside 1..12. A bad month is a caller bug,
// not a runtime condition.
func checkMonth(month int) {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("calendar: month %d out of range 1..12", month))
	}
}

// NextMonth advances a (year, month) pair by one calendar month, wrapping
// December into January of the following year.
func NextMonth(year, month int) (int, int) {
	checkMonth(month)
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// ThirdFriday returns the third Friday of the given month. No holiday
// awareness.
func ThirdFriday(year, month int) time.Time {
	checkMonth(month)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Monday=0..Sunday=6, Friday=4.
	wd := (int(first.Weekday()) + 6) % 7
	offset := (4 - wd + 7) % 7
	return first.AddDate(0, 0, offset+14)
}

// MonthlyExpiration returns the standard SPX-style monthly expiration:
// the third Friday, or the preceding Thursday when that Friday is
// Good Friday. Other exchange closures are not handled.
func MonthlyExpiration(year, month int) time.Time {
	tf := ThirdFriday(year, month)
	if tf.Equal(GoodFriday(year)) {
		return tf.AddDate(0, 0, -1)
	}
	return tf
}

// VIXSettlementForMonth returns the VIX monthly final settlement date that
// falls in the given (year, month): 30 calendar days before the following
// month's standard expiration.
func VIXSettlementForMonth(year, month int) time.Time {
	y2, m2 := NextMonth(year, month)
	return MonthlyExpiration(y2, m2).AddDate(0, 0, -30)
}

// NextSettlement returns the first VIX monthly settlement on or after t at
// day granularity. A reference date falling exactly on a settlement date
// returns that same date.
func NextSettlement(t time.Time) time.Time {
	d := Normalize(t)
	cand := VIXSettlementForMonth(d.Year(), int(d.Month()))
	if cand.Before(d) {
		y, m := NextMonth(d.Year(), int(d.Month()))
		cand = VIXSettlementForMonth(y, m)
	}
	return cand
}

// NextTwoSettlements returns the next two VIX monthly settlements on or
// after t, one calendar month apart in their (year, month) basis. The
// first value always equals NextSettlement(t).
func NextTwoSettlements(t time.Time) (time.Time, time.Time) {
	d := Normalize(t)
	y, m := d.Year(), int(d.Month())
	first := VIXSettlementForMonth(y, m)
	if first.Before(d) {
		y, m = NextMonth(y, m)
		first = VIXSettlementForMonth(y, m)
	}
	y2, m2 := NextMonth(y, m)
	return first, VIXSettlementForMonth(y2, m2)
}
