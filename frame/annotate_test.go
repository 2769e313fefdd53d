package frame_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/vixcal/frame"
)

// 2024 VIX settlements used below: Mar 20 (Apr 19 expiration - 30d),
// Apr 17 (May 17 - 30d), May 22 (Jun 21 - 30d).

func newTestFrame(t *testing.T, index []time.Time) *frame.Frame {
	t.Helper()
	f := frame.NewIndexed(index)
	vals := make([]float64, len(index))
	for i := range vals {
		vals[i] = float64(i + 1)
	}
	require.NoError(t, f.AddFloats("close", vals))
	return f
}

func TestAnnotateNextSettlement(t *testing.T) {
	t.Parallel()

	f := newTestFrame(t, []time.Time{
		day(2024, time.March, 1),  // 19 days to Mar 20
		day(2024, time.March, 20), // settlement day itself
		day(2024, time.March, 21), // rolls to Apr 17
	})

	out, err := frame.AnnotateNextSettlement(f, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"close"}, f.ColumnNames(), "input frame is untouched")
	assert.Equal(t,
		[]string{"close", frame.ColDaysToNext, frame.ColDaysToNextCeil, frame.DefaultNextDateColumn},
		out.ColumnNames())

	days, err := out.Floats(frame.ColDaysToNext)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 0, 27}, days)

	ceil, err := out.Floats(frame.ColDaysToNextCeil)
	require.NoError(t, err)
	assert.Equal(t, days, ceil, "midnight-keyed rows: ceil equals floor")

	settles, err := out.Dates(frame.DefaultNextDateColumn)
	require.NoError(t, err)
	assert.True(t, settles[0].Equal(day(2024, time.March, 20)))
	assert.True(t, settles[1].Equal(day(2024, time.March, 20)), "on-settlement row keeps the same day")
	assert.True(t, settles[2].Equal(day(2024, time.April, 17)))
}

func TestAnnotateNextSettlement_IntradayKeys(t *testing.T) {
	t.Parallel()

	f := newTestFrame(t, []time.Time{
		time.Date(2024, time.March, 19, 15, 30, 0, 0, time.UTC),
	})

	out, err := frame.AnnotateNextSettlement(f, "next_settle")
	require.NoError(t, err)

	days, err := out.Floats(frame.ColDaysToNext)
	require.NoError(t, err)
	ceil, err := out.Floats(frame.ColDaysToNextCeil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, days, "floor counts calendar days")
	assert.Equal(t, []float64{1}, ceil, "partial day rounds up to the same whole day")

	settles, err := out.Dates("next_settle")
	require.NoError(t, err)
	assert.True(t, settles[0].Equal(day(2024, time.March, 20)))
}

func TestAnnotateNextSettlement_Idempotent(t *testing.T) {
	t.Parallel()

	f := newTestFrame(t, []time.Time{day(2024, time.March, 1), day(2024, time.April, 2)})

	once, err := frame.AnnotateNextSettlement(f, "")
	require.NoError(t, err)
	twice, err := frame.AnnotateNextSettlement(once, "")
	require.NoError(t, err)

	assert.Equal(t, once.ColumnNames(), twice.ColumnNames())
	for _, name := range []string{frame.ColDaysToNext, frame.ColDaysToNextCeil} {
		a, err := once.Floats(name)
		require.NoError(t, err)
		b, err := twice.Floats(name)
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
}

func TestAnnotateNextTwoSettlements_Idempotent(t *testing.T) {
	t.Parallel()

	f := newTestFrame(t, []time.Time{day(2024, time.March, 1), day(2024, time.December, 19)})

	once, err := frame.AnnotateNextTwoSettlements(f, true)
	require.NoError(t, err)
	twice, err := frame.AnnotateNextTwoSettlements(once, true)
	require.NoError(t, err)

	assert.Equal(t, once.ColumnNames(), twice.ColumnNames())
	for _, name := range []string{frame.ColDaysToFirst, frame.ColDaysToSecond, frame.ColDurationSecond} {
		a, err := once.Floats(name)
		require.NoError(t, err)
		b, err := twice.Floats(name)
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
	for _, name := range []string{frame.ColNextDate, frame.ColSecondDate} {
		a, err := once.Dates(name)
		require.NoError(t, err)
		b, err := twice.Dates(name)
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
}

func TestAnnotateNextTwoSettlements(t *testing.T) {
	t.Parallel()

	f := newTestFrame(t, []time.Time{
		day(2024, time.March, 1),  // Mar 20 / Apr 17
		day(2024, time.March, 21), // rolled: Apr 17 / May 22
	})

	out, err := frame.AnnotateNextTwoSettlements(f, true)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"close", frame.ColNextDate, frame.ColSecondDate,
			frame.ColDaysToFirst, frame.ColDaysToSecond, frame.ColDurationSecond},
		out.ColumnNames())

	firsts, err := out.Dates(frame.ColNextDate)
	require.NoError(t, err)
	seconds, err := out.Dates(frame.ColSecondDate)
	require.NoError(t, err)
	assert.True(t, firsts[0].Equal(day(2024, time.March, 20)))
	assert.True(t, seconds[0].Equal(day(2024, time.April, 17)))
	assert.True(t, firsts[1].Equal(day(2024, time.April, 17)))
	assert.True(t, seconds[1].Equal(day(2024, time.May, 22)))

	daysFirst, err := out.Floats(frame.ColDaysToFirst)
	require.NoError(t, err)
	daysSecond, err := out.Floats(frame.ColDaysToSecond)
	require.NoError(t, err)
	duration, err := out.Floats(frame.ColDurationSecond)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 27}, daysFirst)
	assert.Equal(t, []float64{47, 62}, daysSecond)
	assert.Equal(t, []float64{28, 35}, duration)

	// Without keepDates only the day counts are added.
	bare, err := frame.AnnotateNextTwoSettlements(f, false)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"close", frame.ColDaysToFirst, frame.ColDaysToSecond, frame.ColDurationSecond},
		bare.ColumnNames())
}

func TestAnnotate_Errors(t *testing.T) {
	t.Parallel()

	noIndex := frame.New()
	require.NoError(t, noIndex.AddFloats("close", []float64{1}))
	_, err := frame.AnnotateNextSettlement(noIndex, "")
	assert.Error(t, err)
	_, err = frame.AnnotateNextTwoSettlements(noIndex, false)
	assert.Error(t, err)

	// A zero date anywhere aborts the whole operation for both variants.
	bad := newTestFrame(t, []time.Time{day(2024, time.March, 1), {}})
	_, err = frame.AnnotateNextSettlement(bad, "")
	assert.ErrorContains(t, err, "row 1")
	_, err = frame.AnnotateNextTwoSettlements(bad, true)
	assert.ErrorContains(t, err, "row 1")
}
