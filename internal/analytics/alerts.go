package analytics

import (
	"fmt"

	"github.com/google/uuid"
)

// Severity tags an alert for display. Display ordering is
// critical > warning > positive; the evaluation output itself is in rule
// order and the presentation layer re-sorts as it pleases.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityPositive Severity = "positive"
)

// Rank returns the display priority of s, highest first.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityPositive:
		return 1
	}
	return 0
}

// Alert is one business advisory produced by rule evaluation. Alerts are
// created fresh per evaluation and never persisted.
type Alert struct {
	ID          string   `json:"id"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Gross profit margin bands (percent).
const (
	gpCriticalBelow = 20
	gpLowBelow      = 25
	gpStrongAbove   = 30
)

// Dispensary share of turnover target band (percent).
const (
	dispensaryHighAbove = 65
	dispensaryLowBelow  = 40
)

// Average basket value bands.
const (
	basketCriticalBelow = 100
	basketLowBelow      = 150
	basketStrongAbove   = 200
)

// Purchases vs cost-of-sales drift thresholds (percent over parity).
const (
	purchasesHighAbove     = 25
	purchasesElevatedAbove = 10
)

// Days-of-inventory overhang thresholds.
const (
	inventoryCriticalAboveDays = 120
	inventoryWarningAboveDays  = 90
)

// Year-over-year turnover growth worth celebrating.
const turnoverGrowthFactor = 1.1

// Stock drawdown fraction that flags a variance check.
const stockDrawdownFactor = 0.9

// EvaluateAlerts runs the fixed rule set against a period snapshot and
// the matching prior-year snapshot. Rules are independent: each fires or
// not regardless of others, and a rule whose inputs are absent (zero) is
// skipped rather than fired on garbage. Alerts are best-effort
// advisories and must never take the dashboard down.
//
// Percentages interpolated into descriptions are rounded to one decimal;
// currency figures are left raw for the presentation layer's formatter.
func EvaluateAlerts(current, previousYear Snapshot) []Alert {
	var alerts []Alert
	add := func(severity Severity, title, description string) {
		alerts = append(alerts, Alert{
			ID:          uuid.New().String(),
			Severity:    severity,
			Title:       title,
			Description: description,
		})
	}

	// Turnover vs the same period last year. Needs a prior-year base to
	// compare against; the two branches are mutually exclusive by
	// construction (below vs strictly more than 10% above).
	if previousYear.Turnover > 0 {
		if current.Turnover < previousYear.Turnover {
			drop := round1((previousYear.Turnover - current.Turnover) / previousYear.Turnover * 100)
			add(SeverityWarning, "Turnover below last year",
				fmt.Sprintf("Turnover is %.1f%% below the same period last year (%.2f vs %.2f).",
					drop, current.Turnover, previousYear.Turnover))
		} else if current.Turnover > previousYear.Turnover*turnoverGrowthFactor {
			growth := round1((current.Turnover - previousYear.Turnover) / previousYear.Turnover * 100)
			add(SeverityPositive, "Strong turnover growth",
				fmt.Sprintf("Turnover is up %.1f%% on the same period last year (%.2f vs %.2f).",
					growth, current.Turnover, previousYear.Turnover))
		}
	}

	// Gross profit margin bands. The 25-30 band is the healthy target and
	// produces no alert.
	if gp := round1(current.GrossProfitPercent); current.GrossProfitPercent > 0 {
		switch {
		case current.GrossProfitPercent < gpCriticalBelow:
			add(SeverityCritical, "Gross profit margin critical",
				fmt.Sprintf("GP is %.1f%%, below the %d%% floor. Review pricing and supplier costs.", gp, gpCriticalBelow))
		case current.GrossProfitPercent < gpLowBelow:
			add(SeverityWarning, "Gross profit margin low",
				fmt.Sprintf("GP is %.1f%%, under the %d%% target.", gp, gpLowBelow))
		case current.GrossProfitPercent > gpStrongAbove:
			add(SeverityPositive, "Strong gross profit margin",
				fmt.Sprintf("GP is %.1f%%, above the %d%% benchmark.", gp, gpStrongAbove))
		}
	}

	// Dispensary share of turnover, target band 40 to 65.
	if current.Turnover > 0 && current.DispensaryTurnover > 0 {
		share := current.DispensaryTurnover / current.Turnover * 100
		if share > dispensaryHighAbove {
			add(SeverityWarning, "Dispensary mix high",
				fmt.Sprintf("Dispensary is %.1f%% of turnover; front shop sales may be underperforming.", round1(share)))
		} else if share < dispensaryLowBelow {
			add(SeverityWarning, "Dispensary mix low",
				fmt.Sprintf("Dispensary is only %.1f%% of turnover; check script volumes and dispensary pricing.", round1(share)))
		}
	}

	// Zero scripts on a trading period almost always means the data
	// import failed, not that nothing was dispensed.
	if current.ScriptsDispensed == 0 {
		add(SeverityCritical, "No scripts recorded",
			"No dispensed scripts were recorded for this period. This usually indicates a data import failure.")
	}

	// Average basket value bands.
	if current.AvgBasket > 0 {
		switch {
		case current.AvgBasket < basketCriticalBelow:
			add(SeverityCritical, "Average basket critical",
				fmt.Sprintf("Average basket of %.2f is critically low. Review front shop merchandising.", current.AvgBasket))
		case current.AvgBasket < basketLowBelow:
			add(SeverityWarning, "Average basket low",
				fmt.Sprintf("Average basket of %.2f is below target.", current.AvgBasket))
		case current.AvgBasket > basketStrongAbove:
			add(SeverityPositive, "Strong average basket",
				fmt.Sprintf("Average basket of %.2f is well above target.", current.AvgBasket))
		}
	}

	// Purchases running ahead of cost of sales builds stock the pharmacy
	// has not sold. Guarded on cost of sales so an empty period cannot
	// divide by zero.
	if current.CostOfSales > 0 {
		drift := (current.Purchases/current.CostOfSales - 1) * 100
		if drift > purchasesHighAbove {
			add(SeverityCritical, "Purchases far ahead of sales",
				fmt.Sprintf("Purchases exceed cost of sales by %.1f%%. Stock is building faster than it sells.", round1(drift)))
		} else if drift > purchasesElevatedAbove {
			add(SeverityWarning, "Purchases ahead of sales",
				fmt.Sprintf("Purchases exceed cost of sales by %.1f%%.", round1(drift)))
		}
	}

	// Stock overhang expressed as days of sales coverage.
	if current.DaysOfInventory > inventoryCriticalAboveDays {
		add(SeverityCritical, "Excessive stock holding",
			fmt.Sprintf("Stock on hand covers %.1f days of sales. Capital is tied up in slow stock.", round1(current.DaysOfInventory)))
	} else if current.DaysOfInventory > inventoryWarningAboveDays {
		add(SeverityWarning, "High stock holding",
			fmt.Sprintf("Stock on hand covers %.1f days of sales.", round1(current.DaysOfInventory)))
	}

	// Sharp drawdown between opening and closing stock.
	if current.OpeningStock > 0 && current.ClosingStock < current.OpeningStock*stockDrawdownFactor {
		drop := round1((current.OpeningStock - current.ClosingStock) / current.OpeningStock * 100)
		add(SeverityWarning, "Stock level drawdown",
			fmt.Sprintf("Closing stock is %.1f%% below opening stock. Verify adjustments and shrinkage.", drop))
	}

	return alerts
}
