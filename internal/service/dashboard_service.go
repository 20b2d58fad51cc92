// Package service assembles dashboard overviews: it orchestrates metric
// fetches through the provider boundary and hands the numbers to the
// analytics engine. All derived arithmetic lives in internal/analytics;
// this layer only decides which windows to fetch and tolerates partial
// upstream data.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tlcpharma/dashboard-backend/internal/analytics"
	"github.com/tlcpharma/dashboard-backend/internal/dateutil"
	"github.com/tlcpharma/dashboard-backend/internal/provider"
)

// snapshotFanOutLimit bounds concurrent upstream calls per snapshot.
const snapshotFanOutLimit = 8

// DashboardService computes the daily, monthly and yearly dashboard
// payloads for a pharmacy.
type DashboardService struct {
	provider provider.Provider
	log      *zap.Logger
}

// NewDashboardService creates a service on top of the given metrics
// provider.
func NewDashboardService(p provider.Provider, log *zap.Logger) *DashboardService {
	return &DashboardService{provider: p, log: log}
}

// LatestDate returns the most recent day with imported data, used to
// default the dashboard's selected date.
func (s *DashboardService) LatestDate(ctx context.Context, pharmacyID string) (time.Time, error) {
	return s.provider.LatestDateWithData(ctx, pharmacyID)
}

// DailyOverview computes the daily dashboard for the selected date.
func (s *DashboardService) DailyOverview(ctx context.Context, pharmacyID string, date time.Time) (*DailyOverview, error) {
	day := dateutil.Day(date)
	prevDay, err := dateutil.PreviousYearSameWeekday(day)
	if err != nil {
		return nil, err
	}

	snapshot := s.fetchSnapshot(ctx, pharmacyID, day, day)
	previous := s.fetchSnapshot(ctx, pharmacyID, prevDay, prevDay)

	start14, err := dateutil.DaysBack(day, 14)
	if err != nil {
		return nil, err
	}
	turnover14, err := analytics.Align(s.fetchSeries(ctx, pharmacyID, provider.MetricTurnover, start14, day), start14, day)
	if err != nil {
		return nil, err
	}

	start30, err := dateutil.DaysBack(day, 30)
	if err != nil {
		return nil, err
	}
	turnover30 := s.fetchSeries(ctx, pharmacyID, provider.MetricTurnover, start30, day)

	return &DailyOverview{
		PharmacyID:       pharmacyID,
		Date:             dateutil.FormatDate(day),
		PreviousYearDate: dateutil.FormatDate(prevDay),

		Snapshot:     snapshot,
		PreviousYear: previous,

		TurnoverComparison:    analytics.CompareTotals(snapshot.Turnover, previous.Turnover),
		GrossProfitComparison: analytics.CompareTotals(snapshot.GrossProfit, previous.GrossProfit),
		BasketComparison:      analytics.CompareTotals(snapshot.AvgBasket, previous.AvgBasket),
		ScriptsComparison:     analytics.CompareTotals(snapshot.ScriptsDispensed, previous.ScriptsDispensed),

		Turnover14Days:           turnover14,
		CumulativeTurnover14Days: analytics.CumulativeSum(turnover14),
		WeekdayAverages:          weekdaySeries(analytics.GroupByWeekday(turnover30)),

		Alerts: analytics.EvaluateAlerts(snapshot, previous),
	}, nil
}

// MonthlyOverview computes the month-to-date dashboard for the selected
// date.
func (s *DashboardService) MonthlyOverview(ctx context.Context, pharmacyID string, date time.Time) (*MonthlyOverview, error) {
	mtdStart, day, err := dateutil.MonthToDateRange(date)
	if err != nil {
		return nil, err
	}
	// Prior-year window anchored on matching weekdays at both ends, so
	// the cumulative trendlines line Saturdays up with Saturdays.
	prevStart, err := dateutil.PreviousYearSameWeekday(mtdStart)
	if err != nil {
		return nil, err
	}
	prevEnd, err := dateutil.PreviousYearSameWeekday(day)
	if err != nil {
		return nil, err
	}

	mtd := s.fetchSnapshot(ctx, pharmacyID, mtdStart, day)
	previousMTD := s.fetchSnapshot(ctx, pharmacyID, prevStart, prevEnd)

	mtdTurnover, err := analytics.Align(s.fetchSeries(ctx, pharmacyID, provider.MetricTurnover, mtdStart, day), mtdStart, day)
	if err != nil {
		return nil, err
	}
	prevTurnover, err := analytics.Align(s.fetchSeries(ctx, pharmacyID, provider.MetricTurnover, prevStart, prevEnd), prevStart, prevEnd)
	if err != nil {
		return nil, err
	}
	cumulative := analytics.CumulativeSum(mtdTurnover)
	prevCumulative := analytics.CumulativeSum(prevTurnover)

	months, err := dateutil.LastTwelveMonths(day)
	if err != nil {
		return nil, err
	}
	monthEnd, err := dateutil.MonthEnd(day)
	if err != nil {
		return nil, err
	}
	yearTurnover := s.fetchSeries(ctx, pharmacyID, provider.MetricTurnover, months[0], monthEnd)
	turnover12 := MonthSeries{
		Labels: monthLabels(months, "Jan 2006"),
		Values: analytics.GroupByMonth(yearTurnover, months),
	}
	basket12 := MonthSeries{
		Labels: monthLabels(months, "Jan 2006"),
		Values: s.monthlyAverages(ctx, pharmacyID, provider.MetricAvgBasket, months),
	}

	start30, err := dateutil.DaysBack(day, 30)
	if err != nil {
		return nil, err
	}
	turnover30Samples := s.fetchSeries(ctx, pharmacyID, provider.MetricTurnover, start30, day)
	turnover30, err := analytics.Align(turnover30Samples, start30, day)
	if err != nil {
		return nil, err
	}
	dispensary30, err := analytics.Align(
		s.fetchSeries(ctx, pharmacyID, provider.MetricDispensaryTurnover, start30, day), start30, day)
	if err != nil {
		return nil, err
	}

	return &MonthlyOverview{
		PharmacyID: pharmacyID,
		Date:       dateutil.FormatDate(day),
		MonthStart: dateutil.FormatDate(mtdStart),

		MTD:             mtd,
		PreviousYearMTD: previousMTD,

		TurnoverComparison:    analytics.CompareTotals(mtd.Turnover, previousMTD.Turnover),
		GrossProfitComparison: analytics.CompareTotals(mtd.GrossProfit, previousMTD.GrossProfit),
		BasketComparison:      analytics.CompareTotals(mtd.AvgBasket, previousMTD.AvgBasket),

		CumulativeTurnover:             cumulative,
		PreviousYearCumulativeTurnover: prevCumulative,
		DailyComparisons:               analytics.Compare(mtdTurnover, prevTurnover),

		MonthlyTurnover12: turnover12,
		MonthlyBasket12:   basket12,

		DailyTurnover30Days:           turnover30,
		DailyDispensaryTurnover30Days: dispensary30,
		WeekdayAverages:               weekdaySeries(analytics.GroupByWeekday(turnover30Samples)),

		Alerts: analytics.EvaluateAlerts(mtd, previousMTD),
	}, nil
}

// YearlyOverview computes the year-to-date dashboard for the selected
// date.
func (s *DashboardService) YearlyOverview(ctx context.Context, pharmacyID string, date time.Time) (*YearlyOverview, error) {
	ytdStart, day, err := dateutil.YearToDateRange(date)
	if err != nil {
		return nil, err
	}
	prevEnd, err := dateutil.PreviousYearSameWeekday(day)
	if err != nil {
		return nil, err
	}
	prevStart := time.Date(prevEnd.Year(), time.January, 1, 0, 0, 0, 0, prevEnd.Location())

	ytd := s.fetchSnapshot(ctx, pharmacyID, ytdStart, day)
	previousYTD := s.fetchSnapshot(ctx, pharmacyID, prevStart, prevEnd)

	ytdSamples := s.fetchSeries(ctx, pharmacyID, provider.MetricTurnover, ytdStart, day)
	ytdTurnover, err := analytics.Align(ytdSamples, ytdStart, day)
	if err != nil {
		return nil, err
	}

	// One bucket per elapsed month of the year.
	var months []time.Time
	for m := time.January; m <= day.Month(); m++ {
		months = append(months, time.Date(day.Year(), m, 1, 0, 0, 0, 0, day.Location()))
	}
	monthlySums := analytics.GroupByMonth(ytdSamples, months)
	monthly := MonthSeries{
		Labels: monthLabels(months, "Jan"),
		Values: monthlySums,
	}

	bestIdx, worstIdx := 0, 0
	for i, v := range monthlySums {
		if v > monthlySums[bestIdx] {
			bestIdx = i
		}
		if v < monthlySums[worstIdx] {
			worstIdx = i
		}
	}
	avgMonthly, err := analytics.Average(monthlySums)
	if err != nil {
		return nil, err
	}

	return &YearlyOverview{
		PharmacyID: pharmacyID,
		Date:       dateutil.FormatDate(day),
		Year:       day.Year(),

		YTD:             ytd,
		PreviousYearYTD: previousYTD,

		TurnoverComparison:     analytics.CompareTotals(ytd.Turnover, previousYTD.Turnover),
		GrossProfitComparison:  analytics.CompareTotals(ytd.GrossProfit, previousYTD.GrossProfit),
		TransactionsComparison: analytics.CompareTotals(ytd.Transactions, previousYTD.Transactions),

		MonthlyTurnover:    monthly,
		BestMonth:          monthly.Labels[bestIdx],
		BestMonthValue:     monthlySums[bestIdx],
		WorstMonth:         monthly.Labels[worstIdx],
		WorstMonthValue:    monthlySums[worstIdx],
		AvgMonthlyTurnover: avgMonthly,

		CumulativeTurnover: analytics.CumulativeSum(ytdTurnover),

		Alerts: analytics.EvaluateAlerts(ytd, previousYTD),
	}, nil
}

// fetchSnapshot fans out one total fetch per metric and assembles a
// Snapshot. A failed metric is logged and left at zero: the engine's
// zero-filling semantics make a partial snapshot renderable, and a
// flaky upstream must never blank the whole dashboard.
func (s *DashboardService) fetchSnapshot(ctx context.Context, pharmacyID string, start, end time.Time) analytics.Snapshot {
	var snapshot analytics.Snapshot
	targets := []struct {
		metric provider.Metric
		dst    *float64
	}{
		{provider.MetricTurnover, &snapshot.Turnover},
		{provider.MetricGrossProfit, &snapshot.GrossProfit},
		{provider.MetricGrossProfitPercent, &snapshot.GrossProfitPercent},
		{provider.MetricCostOfSales, &snapshot.CostOfSales},
		{provider.MetricPurchases, &snapshot.Purchases},
		{provider.MetricTransactions, &snapshot.Transactions},
		{provider.MetricAvgBasket, &snapshot.AvgBasket},
		{provider.MetricAvgBasketSize, &snapshot.AvgBasketSize},
		{provider.MetricScriptsDispensed, &snapshot.ScriptsDispensed},
		{provider.MetricDispensaryTurnover, &snapshot.DispensaryTurnover},
		{provider.MetricCashSales, &snapshot.CashSales},
		{provider.MetricAccountSales, &snapshot.AccountSales},
		{provider.MetricCODSales, &snapshot.CODSales},
		{provider.MetricCashTenders, &snapshot.CashTenders},
		{provider.MetricCreditCardTenders, &snapshot.CreditCardTenders},
		{provider.MetricOpeningStock, &snapshot.OpeningStock},
		{provider.MetricClosingStock, &snapshot.ClosingStock},
		{provider.MetricStockAdjustments, &snapshot.StockAdjustments},
		{provider.MetricTurnoverRatio, &snapshot.TurnoverRatio},
	}

	g := new(errgroup.Group)
	g.SetLimit(snapshotFanOutLimit)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			value, err := s.provider.FetchTotal(ctx, pharmacyID, target.metric, start, end)
			if err != nil {
				s.log.Warn("metric unavailable, treating as zero",
					zap.String("pharmacy", pharmacyID),
					zap.String("metric", string(target.metric)),
					zap.Error(err))
				return nil
			}
			*target.dst = value
			return nil
		})
	}
	_ = g.Wait()

	if snapshot.Turnover > 0 {
		snapshot.DispensaryPercent = snapshot.DispensaryTurnover / snapshot.Turnover * 100
	}
	days := int(dateutil.Day(end).Sub(dateutil.Day(start)).Hours()/24) + 1
	if snapshot.CostOfSales > 0 && days > 0 {
		snapshot.DaysOfInventory = snapshot.ClosingStock / (snapshot.CostOfSales / float64(days))
	}
	return snapshot
}

// fetchSeries fetches a metric series with the same degrade-to-empty
// tolerance as fetchSnapshot.
func (s *DashboardService) fetchSeries(ctx context.Context, pharmacyID string, metric provider.Metric, start, end time.Time) []analytics.MetricSample {
	samples, err := s.provider.FetchSeries(ctx, pharmacyID, metric, start, end)
	if err != nil {
		s.log.Warn("series unavailable, treating as empty",
			zap.String("pharmacy", pharmacyID),
			zap.String("metric", string(metric)),
			zap.Error(err))
		return nil
	}
	return samples
}

// monthlyAverages fetches the per-month average of a rate metric, one
// bucket per month start.
func (s *DashboardService) monthlyAverages(ctx context.Context, pharmacyID string, metric provider.Metric, months []time.Time) []float64 {
	values := make([]float64, len(months))
	for i, monthStart := range months {
		monthEnd, err := dateutil.MonthEnd(monthStart)
		if err != nil {
			continue
		}
		value, err := s.provider.FetchTotal(ctx, pharmacyID, metric, monthStart, monthEnd)
		if err != nil {
			s.log.Warn("metric unavailable, treating as zero",
				zap.String("pharmacy", pharmacyID),
				zap.String("metric", string(metric)),
				zap.Error(err))
			continue
		}
		values[i] = value
	}
	return values
}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func weekdaySeries(averages [7]float64) WeekdaySeries {
	return WeekdaySeries{
		Labels: weekdayNames,
		Values: averages[:],
	}
}

func monthLabels(months []time.Time, layout string) []string {
	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = m.Format(layout)
	}
	return labels
}
