package analytics

import (
	"time"
)

// CumulativeSum returns the running total of s: element i holds the sum of
// s.Values[0..i]. Labels are shared with the input series.
func CumulativeSum(s AlignedSeries) AlignedSeries {
	out := AlignedSeries{
		Labels: s.Labels,
		Values: make([]float64, len(s.Values)),
	}
	var running float64
	for i, v := range s.Values {
		running += v
		out.Values[i] = running
	}
	return out
}

// GroupByWeekday averages samples per day of the week, indexed
// Sunday=0 through Saturday=6. A weekday with no observed samples
// averages to 0, never NaN; the dashboard plots these directly.
func GroupByWeekday(samples []MetricSample) [7]float64 {
	var sums, counts [7]float64
	for _, sample := range samples {
		wd := sample.Date.Weekday()
		sums[wd] += sample.Value
		counts[wd]++
	}
	var averages [7]float64
	for i := range averages {
		if counts[i] > 0 {
			averages[i] = sums[i] / counts[i]
		}
	}
	return averages
}

// GroupByMonth sums samples into the given month buckets, one sum per
// requested month start, in order. Samples outside every bucket are
// dropped; months with no samples sum to 0.
func GroupByMonth(samples []MetricSample, months []time.Time) []float64 {
	sums := make([]float64, len(months))
	for i, monthStart := range months {
		nextMonth := time.Date(monthStart.Year(), monthStart.Month()+1, 1, 0, 0, 0, 0, monthStart.Location())
		for _, sample := range samples {
			if !sample.Date.Before(monthStart) && sample.Date.Before(nextMonth) {
				sums[i] += sample.Value
			}
		}
	}
	return sums
}

// Average returns the arithmetic mean of values. A zero-length input is a
// caller error, not a zero: zero-day windows must be handled explicitly.
func Average(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}
