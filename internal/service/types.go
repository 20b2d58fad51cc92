package service

import (
	"github.com/tlcpharma/dashboard-backend/internal/analytics"
)

// MonthSeries is a per-month labeled series ("Jan 2025" style labels).
type MonthSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// WeekdaySeries carries one averaged value per day of the week,
// Sunday first.
type WeekdaySeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// DailyOverview is everything the daily dashboard page renders for one
// pharmacy and one selected date.
type DailyOverview struct {
	PharmacyID       string `json:"pharmacyId"`
	Date             string `json:"date"`
	PreviousYearDate string `json:"previousYearDate"`

	Snapshot     analytics.Snapshot `json:"snapshot"`
	PreviousYear analytics.Snapshot `json:"previousYear"`

	TurnoverComparison    analytics.ComparisonResult `json:"turnoverComparison"`
	GrossProfitComparison analytics.ComparisonResult `json:"grossProfitComparison"`
	BasketComparison      analytics.ComparisonResult `json:"basketComparison"`
	ScriptsComparison     analytics.ComparisonResult `json:"scriptsComparison"`

	Turnover14Days           analytics.AlignedSeries `json:"turnover14Days"`
	CumulativeTurnover14Days analytics.AlignedSeries `json:"cumulativeTurnover14Days"`
	WeekdayAverages          WeekdaySeries           `json:"weekdayAverages"`

	Alerts []analytics.Alert `json:"alerts"`
}

// MonthlyOverview is the month-to-date dashboard payload.
type MonthlyOverview struct {
	PharmacyID string `json:"pharmacyId"`
	Date       string `json:"date"`
	MonthStart string `json:"monthStart"`

	MTD             analytics.Snapshot `json:"mtd"`
	PreviousYearMTD analytics.Snapshot `json:"previousYearMtd"`

	TurnoverComparison    analytics.ComparisonResult `json:"turnoverComparison"`
	GrossProfitComparison analytics.ComparisonResult `json:"grossProfitComparison"`
	BasketComparison      analytics.ComparisonResult `json:"basketComparison"`

	CumulativeTurnover             analytics.AlignedSeries      `json:"cumulativeTurnover"`
	PreviousYearCumulativeTurnover analytics.AlignedSeries      `json:"previousYearCumulativeTurnover"`
	DailyComparisons               []analytics.ComparisonResult `json:"dailyComparisons"`

	MonthlyTurnover12 MonthSeries `json:"monthlyTurnover12"`
	MonthlyBasket12   MonthSeries `json:"monthlyBasket12"`

	DailyTurnover30Days           analytics.AlignedSeries `json:"dailyTurnover30Days"`
	DailyDispensaryTurnover30Days analytics.AlignedSeries `json:"dailyDispensaryTurnover30Days"`
	WeekdayAverages               WeekdaySeries           `json:"weekdayAverages"`

	Alerts []analytics.Alert `json:"alerts"`
}

// YearlyOverview is the year-to-date dashboard payload.
type YearlyOverview struct {
	PharmacyID string `json:"pharmacyId"`
	Date       string `json:"date"`
	Year       int    `json:"year"`

	YTD             analytics.Snapshot `json:"ytd"`
	PreviousYearYTD analytics.Snapshot `json:"previousYearYtd"`

	TurnoverComparison     analytics.ComparisonResult `json:"turnoverComparison"`
	GrossProfitComparison  analytics.ComparisonResult `json:"grossProfitComparison"`
	TransactionsComparison analytics.ComparisonResult `json:"transactionsComparison"`

	MonthlyTurnover    MonthSeries `json:"monthlyTurnover"`
	BestMonth          string      `json:"bestMonth"`
	BestMonthValue     float64     `json:"bestMonthValue"`
	WorstMonth         string      `json:"worstMonth"`
	WorstMonthValue    float64     `json:"worstMonthValue"`
	AvgMonthlyTurnover float64     `json:"avgMonthlyTurnover"`

	CumulativeTurnover analytics.AlignedSeries `json:"cumulativeTurnover"`

	Alerts []analytics.Alert `json:"alerts"`
}
