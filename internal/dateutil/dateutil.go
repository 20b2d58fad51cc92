// Package dateutil provides the calendar arithmetic used by the dashboard
// rollups. All functions are pure and operate on whole calendar days; times
// of day are discarded on the way in.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar days throughout the system.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a zero or otherwise unusable date is
// passed to any of the range helpers. Callers get the error immediately
// rather than a silently shifted range.
var ErrInvalidDate = errors.New("invalid date")

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func validate(t time.Time) error {
	if t.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// MonthStart returns the first calendar day of t's month.
func MonthStart(t time.Time) (time.Time, error) {
	if err := validate(t); err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()), nil
}

// MonthEnd returns the last calendar day of t's month. Day zero of the
// following month, so variable month lengths and leap years fall out of
// the standard library's normalization.
func MonthEnd(t time.Time) (time.Time, error) {
	if err := validate(t); err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()), nil
}

// DaysBack returns the start of the inclusive n-day window ending at t.
// n must be at least 1.
func DaysBack(t time.Time, n int) (time.Time, error) {
	if err := validate(t); err != nil {
		return time.Time{}, err
	}
	if n < 1 {
		return time.Time{}, fmt.Errorf("%w: window of %d days", ErrInvalidDate, n)
	}
	return Day(t).AddDate(0, 0, -(n - 1)), nil
}

// PreviousYearSameWeekday returns the date one year earlier adjusted to
// fall on the same day of the week as t. Retail turnover is strongly
// weekday-correlated, so year-over-year comparisons must line Saturdays
// up with Saturdays rather than with whatever the calendar date happens
// to hit. The search covers a ±3 day window around the naive
// year-subtracted date, nearest candidate first; if none matches, the
// result is exactly 364 days (52 weeks) earlier, which is always the
// same weekday.
func PreviousYearSameWeekday(t time.Time) (time.Time, error) {
	if err := validate(t); err != nil {
		return time.Time{}, err
	}
	day := Day(t)
	naive := day.AddDate(-1, 0, 0)
	for _, offset := range []int{0, -1, 1, -2, 2, -3, 3} {
		candidate := naive.AddDate(0, 0, offset)
		if candidate.Weekday() == day.Weekday() {
			return candidate, nil
		}
	}
	return day.AddDate(0, 0, -364), nil
}

// YearToDateRange returns (Jan 1 of t's year, t).
func YearToDateRange(t time.Time) (time.Time, time.Time, error) {
	if err := validate(t); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location()), Day(t), nil
}

// MonthToDateRange returns (first day of t's month, t).
func MonthToDateRange(t time.Time) (time.Time, time.Time, error) {
	if err := validate(t); err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, _ := MonthStart(t)
	return start, Day(t), nil
}

// LastTwelveMonths returns the twelve month-start dates ending with t's
// month, oldest first.
func LastTwelveMonths(t time.Time) ([]time.Time, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	months := make([]time.Time, 0, 12)
	for i := 11; i >= 0; i-- {
		months = append(months, time.Date(t.Year(), t.Month()-time.Month(i), 1, 0, 0, 0, 0, t.Location()))
	}
	return months, nil
}

// DateLabels returns one YYYY-MM-DD label per calendar day from start to
// end inclusive.
func DateLabels(start, end time.Time) ([]string, error) {
	if err := validate(start); err != nil {
		return nil, err
	}
	if err := validate(end); err != nil {
		return nil, err
	}
	var labels []string
	for d := Day(start); !d.After(Day(end)); d = d.AddDate(0, 0, 1) {
		labels = append(labels, FormatDate(d))
	}
	return labels, nil
}
