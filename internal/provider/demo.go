package provider

import (
	"math/rand"
	"time"

	"github.com/tlcpharma/dashboard-backend/internal/dateutil"
)

// SeedDemoData populates a MemoryProvider with a deterministic, plausible
// trading history ending at end: weekday-shaped turnover with Saturdays
// strongest and Sundays closed-ish, GP around 26%, purchases tracking
// cost of sales, and stock levels around 45 days of cover. The same seed
// always produces the same numbers, so local dashboards and e2e tests
// are reproducible.
func SeedDemoData(p *MemoryProvider, pharmacyID string, end time.Time, days int) {
	rng := rand.New(rand.NewSource(42))
	end = dateutil.Day(end)
	start := end.AddDate(0, 0, -(days - 1))

	// Relative trade weight per weekday, Sunday first.
	weekdayWeight := [7]float64{0.25, 0.9, 0.95, 1.0, 1.05, 1.2, 1.4}

	stock := 950000.0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		weight := weekdayWeight[d.Weekday()]
		noise := 0.85 + rng.Float64()*0.3

		turnover := 52000 * weight * noise
		gpPercent := 24 + rng.Float64()*5
		grossProfit := turnover * gpPercent / 100
		costOfSales := turnover - grossProfit
		purchases := costOfSales * (0.9 + rng.Float64()*0.25)
		transactions := 260 * weight * noise
		avgBasket := 0.0
		if transactions > 0 {
			avgBasket = turnover / transactions
		}
		scripts := 330 * weight * noise
		dispensary := turnover * (0.42 + rng.Float64()*0.12)
		cashSales := turnover * 0.35
		accountSales := turnover * 0.4
		codSales := turnover * 0.05

		openingStock := stock
		stock += purchases - costOfSales
		closingStock := stock

		p.Put(pharmacyID, MetricTurnover, d, round2(turnover))
		p.Put(pharmacyID, MetricGrossProfit, d, round2(grossProfit))
		p.Put(pharmacyID, MetricGrossProfitPercent, d, round2(gpPercent))
		p.Put(pharmacyID, MetricCostOfSales, d, round2(costOfSales))
		p.Put(pharmacyID, MetricPurchases, d, round2(purchases))
		p.Put(pharmacyID, MetricTransactions, d, float64(int(transactions)))
		p.Put(pharmacyID, MetricAvgBasket, d, round2(avgBasket))
		p.Put(pharmacyID, MetricAvgBasketSize, d, round2(2.5+rng.Float64()))
		p.Put(pharmacyID, MetricScriptsDispensed, d, float64(int(scripts)))
		p.Put(pharmacyID, MetricDispensaryTurnover, d, round2(dispensary))
		p.Put(pharmacyID, MetricCashSales, d, round2(cashSales))
		p.Put(pharmacyID, MetricAccountSales, d, round2(accountSales))
		p.Put(pharmacyID, MetricCODSales, d, round2(codSales))
		p.Put(pharmacyID, MetricCashTenders, d, round2(cashSales*0.97))
		p.Put(pharmacyID, MetricCreditCardTenders, d, round2(turnover*0.2))
		p.Put(pharmacyID, MetricOpeningStock, d, round2(openingStock))
		p.Put(pharmacyID, MetricClosingStock, d, round2(closingStock))
		p.Put(pharmacyID, MetricStockAdjustments, d, round2((rng.Float64()-0.5)*2000))
		p.Put(pharmacyID, MetricTurnoverRatio, d, round2(costOfSales/stock*365))
	}
}

func round2(v float64) float64 {
	return float64(int(v*100)) / 100
}
