// Package provider defines the metrics-provider boundary: the capability
// to fetch raw per-day numeric series and range totals for a named metric
// from the pharmacy data service, plus the in-memory implementation used
// for local development and tests.
package provider

import (
	"context"
	"time"

	"github.com/tlcpharma/dashboard-backend/internal/analytics"
)

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=provider

// Metric names a per-day numeric series exposed by the data service.
type Metric string

const (
	MetricTurnover           Metric = "turnover"
	MetricGrossProfit        Metric = "gross_profit"
	MetricGrossProfitPercent Metric = "gp_percent"
	MetricCostOfSales        Metric = "cost_of_sales"
	MetricPurchases          Metric = "purchases"
	MetricTransactions       Metric = "transactions"
	MetricAvgBasket          Metric = "avg_basket"
	MetricAvgBasketSize      Metric = "avg_basket_size"
	MetricScriptsDispensed   Metric = "scripts_dispensed"
	MetricDispensaryTurnover Metric = "dispensary_turnover"
	MetricCashSales          Metric = "cash_sales"
	MetricAccountSales       Metric = "account_sales"
	MetricCODSales           Metric = "cod_sales"
	MetricCashTenders        Metric = "cash_tenders"
	MetricCreditCardTenders  Metric = "credit_card_tenders"
	MetricOpeningStock       Metric = "opening_stock"
	MetricClosingStock       Metric = "closing_stock"
	MetricStockAdjustments   Metric = "stock_adjustments"
	MetricTurnoverRatio      Metric = "turnover_ratio"
)

// Provider supplies raw metric data for one pharmacy over a date range.
// Implementations must return samples in ascending date order; gaps are
// permitted, the caller zero-fills. Errors mean "this metric is
// unavailable for this window": callers degrade to an empty series and
// keep rendering, they never propagate a provider failure as fatal.
type Provider interface {
	// FetchSeries returns one sample per day with recorded activity in
	// [start, end] inclusive.
	FetchSeries(ctx context.Context, pharmacyID string, metric Metric, start, end time.Time) ([]analytics.MetricSample, error)

	// FetchTotal returns the metric aggregated over [start, end]: a sum
	// for flow metrics, an average for rate metrics such as gp_percent
	// and avg_basket. The data service owns the aggregation rule.
	FetchTotal(ctx context.Context, pharmacyID string, metric Metric, start, end time.Time) (float64, error)

	// LatestDateWithData returns the most recent day for which the
	// pharmacy has any imported data. Used to default the dashboard's
	// selected date.
	LatestDateWithData(ctx context.Context, pharmacyID string) (time.Time, error)
}
