package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlcpharma/dashboard-backend/internal/dateutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAlignDenseRange(t *testing.T) {
	samples := []MetricSample{
		{Date: day(2025, time.June, 1), Value: 1000},
		{Date: day(2025, time.June, 3), Value: 1500},
		{Date: day(2025, time.June, 5), Value: 800},
	}

	series, err := Align(samples, day(2025, time.June, 1), day(2025, time.June, 5))
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05"}, series.Labels)
	assert.Equal(t, []float64{1000, 0, 1500, 0, 800}, series.Values)
}

func TestAlignLabelValueLengthsMatch(t *testing.T) {
	// Property: labels and values always have the same length, equal to
	// the day count of the range, regardless of sample sparsity.
	ranges := []struct {
		start, end time.Time
		wantDays   int
	}{
		{day(2025, time.June, 1), day(2025, time.June, 1), 1},
		{day(2025, time.June, 1), day(2025, time.June, 14), 14},
		{day(2024, time.February, 27), day(2024, time.March, 2), 5}, // leap Feb
		{day(2024, time.December, 28), day(2025, time.January, 3), 7},
	}
	for _, r := range ranges {
		series, err := Align(nil, r.start, r.end)
		require.NoError(t, err)
		assert.Len(t, series.Labels, r.wantDays)
		assert.Len(t, series.Values, r.wantDays)
		for _, v := range series.Values {
			assert.Zero(t, v)
		}
		// Labels strictly sequential by one calendar day.
		for i := 1; i < len(series.Labels); i++ {
			prev, err := dateutil.ParseDate(series.Labels[i-1])
			require.NoError(t, err)
			cur, err := dateutil.ParseDate(series.Labels[i])
			require.NoError(t, err)
			assert.Equal(t, prev.AddDate(0, 0, 1), cur)
		}
	}
}

func TestAlignIgnoresOutOfRangeSamples(t *testing.T) {
	samples := []MetricSample{
		{Date: day(2025, time.May, 31), Value: 999},
		{Date: day(2025, time.June, 2), Value: 500},
		{Date: day(2025, time.June, 6), Value: 999},
	}
	series, err := Align(samples, day(2025, time.June, 1), day(2025, time.June, 5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 500, 0, 0, 0}, series.Values)
}

func TestAlignEmptyRange(t *testing.T) {
	_, err := Align(nil, day(2025, time.June, 5), day(2025, time.June, 1))
	assert.ErrorIs(t, err, ErrEmptyRange)
}

func TestAlignInvalidDate(t *testing.T) {
	_, err := Align(nil, time.Time{}, day(2025, time.June, 1))
	assert.ErrorIs(t, err, dateutil.ErrInvalidDate)
	_, err = Align(nil, day(2025, time.June, 1), time.Time{})
	assert.ErrorIs(t, err, dateutil.ErrInvalidDate)
}

func TestAlignDuplicateDatesSum(t *testing.T) {
	// Two samples on the same day collapse into one bucket.
	samples := []MetricSample{
		{Date: day(2025, time.June, 2), Value: 300},
		{Date: day(2025, time.June, 2), Value: 200},
	}
	series, err := Align(samples, day(2025, time.June, 1), day(2025, time.June, 3))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 500, 0}, series.Values)
}
