package dataset_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/vixcal/dataset"
	"github.com/meenmo/vixcal/frame"
)

func TestCleanExcelDates_SetIndex(t *testing.T) {
	t.Parallel()

	f := frame.New()
	require.NoError(t, f.AddFloats("serial", []float64{45292, 45293, 1}))
	require.NoError(t, f.AddFloats("close", []float64{10, 11, 12}))

	out, err := dataset.CleanExcelDates(f, "serial", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"close"}, out.ColumnNames())
	require.True(t, out.HasIndex())
	index := out.Index()
	assert.True(t, index[0].Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, index[1].Equal(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, index[2].Equal(time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, []string{"serial", "close"}, f.ColumnNames(), "input frame is untouched")
}

func TestCleanExcelDates_InPlaceColumn(t *testing.T) {
	t.Parallel()

	f := frame.New()
	require.NoError(t, f.AddFloats("serial", []float64{45292}))
	require.NoError(t, f.AddFloats("close", []float64{10}))

	out, err := dataset.CleanExcelDates(f, "serial", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"serial", "close"}, out.ColumnNames())
	assert.False(t, out.HasIndex())
	dates, err := out.Dates("serial")
	require.NoError(t, err)
	assert.True(t, dates[0].Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCleanExcelDates_Errors(t *testing.T) {
	t.Parallel()

	f := frame.New()
	require.NoError(t, f.AddFloats("serial", []float64{math.NaN()}))

	_, err := dataset.CleanExcelDates(f, "serial", true)
	assert.Error(t, err)
	_, err = dataset.CleanExcelDates(f, "missing", true)
	assert.Error(t, err)
}
