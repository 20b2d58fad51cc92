package analytics

import "math"

// Direction classifies a period-over-period movement.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
	DirectionFlat     Direction = "flat"
)

// ComparisonResult is the delta between a current and a prior-period value.
type ComparisonResult struct {
	Current       float64   `json:"current"`
	Previous      float64   `json:"previous"`
	AbsoluteDelta float64   `json:"absoluteDelta"`
	PercentDelta  float64   `json:"percentDelta"`
	Direction     Direction `json:"direction"`
}

// CompareTotals computes the delta between two pre-aggregated totals.
// Growth from a zero base is reported as +100% rather than an unbounded
// ratio; zero against zero is flat. That keeps Infinity and NaN out of
// the pipeline while still registering "something from nothing" movement.
func CompareTotals(current, previous float64) ComparisonResult {
	result := ComparisonResult{
		Current:       current,
		Previous:      previous,
		AbsoluteDelta: current - previous,
	}
	switch {
	case previous == 0 && current > 0:
		result.PercentDelta = 100
	case previous == 0:
		result.PercentDelta = 0
	default:
		result.PercentDelta = (current - previous) / previous * 100
	}
	switch {
	case result.PercentDelta > 0:
		result.Direction = DirectionIncrease
	case result.PercentDelta < 0:
		result.Direction = DirectionDecrease
	default:
		result.Direction = DirectionFlat
	}
	return result
}

// Compare computes one ComparisonResult per aligned index. The prior
// series must have been built over a weekday-matched range (see
// dateutil.PreviousYearSameWeekday); the comparator itself only does the
// delta arithmetic. If the series lengths differ, the overlap is compared.
func Compare(current, prior AlignedSeries) []ComparisonResult {
	n := len(current.Values)
	if len(prior.Values) < n {
		n = len(prior.Values)
	}
	results := make([]ComparisonResult, n)
	for i := 0; i < n; i++ {
		results[i] = CompareTotals(current.Values[i], prior.Values[i])
	}
	return results
}

// round1 rounds to one decimal place. Percentages shown in alert text are
// rounded here so the text is stable and testable.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
