package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCumulativeSum(t *testing.T) {
	series := AlignedSeries{
		Labels: []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04"},
		Values: []float64{1000, 0, 1500, 800},
	}

	cumulative := CumulativeSum(series)

	assert.Equal(t, series.Labels, cumulative.Labels)
	assert.Equal(t, []float64{1000, 1000, 2500, 3300}, cumulative.Values)

	// Monotonically non-decreasing for non-negative inputs, last element
	// equals the total.
	for i := 1; i < len(cumulative.Values); i++ {
		assert.GreaterOrEqual(t, cumulative.Values[i], cumulative.Values[i-1])
	}
	assert.Equal(t, series.Total(), cumulative.Values[len(cumulative.Values)-1])
}

func TestCumulativeSumEmpty(t *testing.T) {
	cumulative := CumulativeSum(AlignedSeries{})
	assert.Empty(t, cumulative.Values)
}

func TestGroupByWeekday(t *testing.T) {
	// 2025-06-01 is a Sunday. One sample per weekday: the average per
	// weekday must equal that single sample's value.
	var samples []MetricSample
	for i := 0; i < 7; i++ {
		samples = append(samples, MetricSample{
			Date:  day(2025, time.June, 1+i),
			Value: float64((i + 1) * 100),
		})
	}

	averages := GroupByWeekday(samples)
	for i := 0; i < 7; i++ {
		assert.Equal(t, float64((i+1)*100), averages[i])
	}
}

func TestGroupByWeekdayAveragesAcrossWeeks(t *testing.T) {
	// Two Sundays: 1000 and 2000, average 1500.
	samples := []MetricSample{
		{Date: day(2025, time.June, 1), Value: 1000},
		{Date: day(2025, time.June, 8), Value: 2000},
	}
	averages := GroupByWeekday(samples)
	assert.Equal(t, 1500.0, averages[time.Sunday])
}

func TestGroupByWeekdayUnobservedIsZeroNotNaN(t *testing.T) {
	samples := []MetricSample{
		{Date: day(2025, time.June, 2), Value: 500}, // Monday only
	}
	averages := GroupByWeekday(samples)
	for wd, avg := range averages {
		assert.False(t, avg != avg, "weekday %d average is NaN", wd)
		if wd == int(time.Monday) {
			assert.Equal(t, 500.0, avg)
		} else {
			assert.Zero(t, avg)
		}
	}
}

func TestGroupByMonth(t *testing.T) {
	months := []time.Time{
		day(2025, time.April, 1),
		day(2025, time.May, 1),
		day(2025, time.June, 1),
	}
	samples := []MetricSample{
		{Date: day(2025, time.April, 10), Value: 100},
		{Date: day(2025, time.April, 30), Value: 200},
		{Date: day(2025, time.June, 1), Value: 50},
		{Date: day(2025, time.March, 31), Value: 999}, // outside all buckets
	}

	sums := GroupByMonth(samples, months)
	assert.Equal(t, []float64{300, 0, 50}, sums)
}

func TestGroupByMonthEndOfMonthBoundary(t *testing.T) {
	months := []time.Time{day(2024, time.February, 1)}
	samples := []MetricSample{
		{Date: day(2024, time.February, 29), Value: 75}, // leap day is in-bucket
		{Date: day(2024, time.March, 1), Value: 25},
	}
	sums := GroupByMonth(samples, months)
	assert.Equal(t, []float64{75}, sums)
}

func TestAverage(t *testing.T) {
	avg, err := Average([]float64{2, 4, 6})
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)

	_, err = Average(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = Average([]float64{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAlternatingSeriesEndToEnd(t *testing.T) {
	// 14 consecutive daily samples alternating 1000 and 0, starting on a
	// Sunday: alignment fills nothing, the cumulative total is the plain
	// sum, and weekday grouping separates the alternating pattern cleanly
	// because 14 days covers each weekday exactly twice.
	start := day(2025, time.June, 1) // Sunday
	var samples []MetricSample
	for i := 0; i < 14; i++ {
		value := 0.0
		if i%2 == 0 {
			value = 1000
		}
		samples = append(samples, MetricSample{Date: start.AddDate(0, 0, i), Value: value})
	}

	series, err := Align(samples, start, start.AddDate(0, 0, 13))
	require.NoError(t, err)
	require.Equal(t, 14, series.Len())

	cumulative := CumulativeSum(series)
	assert.Equal(t, 7000.0, cumulative.Values[13])

	averages := GroupByWeekday(samples)
	// The alternation flips phase across the two weeks (day 7 is a Sunday
	// at index 7, which is odd), so every weekday sees one 1000 and one 0.
	for wd := 0; wd < 7; wd++ {
		assert.Equal(t, 500.0, averages[wd], "weekday %d", wd)
	}
}
