// Package analytics implements the rollup and alerting engine behind the
// daily, monthly and yearly dashboard views: calendar alignment of sparse
// metric samples, cumulative and grouped aggregation, weekday-matched
// year-over-year comparison, and threshold-rule alert evaluation.
//
// Everything in this package is pure computation over values handed in by
// the metrics provider. Fetching, caching and rendering live elsewhere.
package analytics

import (
	"fmt"
	"time"

	"github.com/tlcpharma/dashboard-backend/internal/dateutil"
)

// MetricSample is one day's value for one metric as returned by the
// metrics provider.
type MetricSample struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// AlignedSeries is a dense calendar-day series: one label and one value
// per day, index-aligned, no gaps. Days with no recorded sample hold 0.
type AlignedSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Len returns the number of days in the series.
func (s AlignedSeries) Len() int { return len(s.Values) }

// Total returns the sum of all values in the series.
func (s AlignedSeries) Total() float64 {
	var total float64
	for _, v := range s.Values {
		total += v
	}
	return total
}

// Align merges sparse samples onto the dense calendar range from start to
// end inclusive. A day with no matching sample gets a hard zero: missing
// data means "no recorded activity", not "unknown", so it is never
// interpolated or carried forward.
func Align(samples []MetricSample, start, end time.Time) (AlignedSeries, error) {
	if start.IsZero() || end.IsZero() {
		return AlignedSeries{}, dateutil.ErrInvalidDate
	}
	startDay := dateutil.Day(start)
	endDay := dateutil.Day(end)
	if endDay.Before(startDay) {
		return AlignedSeries{}, fmt.Errorf("%w: %s to %s", ErrEmptyRange,
			dateutil.FormatDate(startDay), dateutil.FormatDate(endDay))
	}

	byDate := make(map[string]float64, len(samples))
	for _, sample := range samples {
		byDate[dateutil.FormatDate(sample.Date)] += sample.Value
	}

	days := int(endDay.Sub(startDay).Hours()/24) + 1
	out := AlignedSeries{
		Labels: make([]string, 0, days),
		Values: make([]float64, 0, days),
	}
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		label := dateutil.FormatDate(d)
		out.Labels = append(out.Labels, label)
		out.Values = append(out.Values, byDate[label])
	}
	return out, nil
}
