package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// healthySnapshot returns a snapshot that fires no alerts: GP in the
// 25–30 quiet band, dispensary mix inside 40–65, basket in 150–200,
// purchases tracking cost of sales, sane stock levels.
func healthySnapshot() Snapshot {
	return Snapshot{
		Turnover:           50000,
		GrossProfit:        13500,
		GrossProfitPercent: 27,
		CostOfSales:        36500,
		Purchases:          37000,
		AvgBasket:          175,
		ScriptsDispensed:   420,
		DispensaryTurnover: 25000,
		OpeningStock:       900000,
		ClosingStock:       880000,
		DaysOfInventory:    45,
	}
}

func healthyPrevious() Snapshot {
	return Snapshot{Turnover: 48000}
}

func findBySeverity(alerts []Alert, severity Severity) []Alert {
	var out []Alert
	for _, a := range alerts {
		if a.Severity == severity {
			out = append(out, a)
		}
	}
	return out
}

func findByTitle(alerts []Alert, fragment string) *Alert {
	for i := range alerts {
		if strings.Contains(alerts[i].Title, fragment) {
			return &alerts[i]
		}
	}
	return nil
}

func TestEvaluateAlertsHealthySnapshotIsQuiet(t *testing.T) {
	alerts := EvaluateAlerts(healthySnapshot(), healthyPrevious())
	assert.Empty(t, alerts)
}

func TestEvaluateAlertsGPBands(t *testing.T) {
	tests := []struct {
		gp           float64
		wantGPAlerts int
		wantSeverity Severity
	}{
		{19.9, 1, SeverityCritical},
		{20.0, 1, SeverityWarning},
		{24.9, 1, SeverityWarning},
		{25.1, 0, ""},
		{30.0, 0, ""},
		{30.1, 1, SeverityPositive},
	}
	for _, tt := range tests {
		snapshot := healthySnapshot()
		snapshot.GrossProfitPercent = tt.gp
		alerts := EvaluateAlerts(snapshot, healthyPrevious())

		gpAlerts := 0
		for _, a := range alerts {
			if strings.Contains(strings.ToLower(a.Title), "gross profit") {
				gpAlerts++
				assert.Equal(t, tt.wantSeverity, a.Severity, "gp=%v", tt.gp)
			}
		}
		assert.Equal(t, tt.wantGPAlerts, gpAlerts, "gp=%v", tt.gp)
	}
}

func TestEvaluateAlertsTurnoverVsPriorYear(t *testing.T) {
	snapshot := healthySnapshot()

	// Below last year: warning.
	alerts := EvaluateAlerts(snapshot, Snapshot{Turnover: 60000})
	warn := findByTitle(alerts, "Turnover below last year")
	require.NotNil(t, warn)
	assert.Equal(t, SeverityWarning, warn.Severity)
	// 50000 vs 60000 is a 16.7% drop, rounded to one decimal in the text.
	assert.Contains(t, warn.Description, "16.7%")

	// More than 10% above last year: positive.
	alerts = EvaluateAlerts(snapshot, Snapshot{Turnover: 40000})
	pos := findByTitle(alerts, "Strong turnover growth")
	require.NotNil(t, pos)
	assert.Equal(t, SeverityPositive, pos.Severity)
	assert.Contains(t, pos.Description, "25.0%")

	// Up, but not past the 10% threshold: neither rule fires.
	alerts = EvaluateAlerts(snapshot, Snapshot{Turnover: 46000})
	assert.Nil(t, findByTitle(alerts, "Turnover"))

	// Exactly 10% above is not strictly greater: no alert.
	alerts = EvaluateAlerts(Snapshot{Turnover: 110, GrossProfitPercent: 27, AvgBasket: 175, ScriptsDispensed: 1, CostOfSales: 0}, Snapshot{Turnover: 100})
	assert.Nil(t, findByTitle(alerts, "Turnover"))

	// No prior-year base: both rules skipped.
	alerts = EvaluateAlerts(snapshot, Snapshot{})
	assert.Nil(t, findByTitle(alerts, "Turnover"))
}

func TestEvaluateAlertsDispensaryMix(t *testing.T) {
	snapshot := healthySnapshot()

	snapshot.DispensaryTurnover = 35000 // 70%
	alerts := EvaluateAlerts(snapshot, healthyPrevious())
	high := findByTitle(alerts, "Dispensary mix high")
	require.NotNil(t, high)
	assert.Contains(t, high.Description, "70.0%")

	snapshot.DispensaryTurnover = 15000 // 30%
	alerts = EvaluateAlerts(snapshot, healthyPrevious())
	low := findByTitle(alerts, "Dispensary mix low")
	require.NotNil(t, low)
	assert.Contains(t, low.Description, "30.0%")

	// No turnover at all: ratio rules are skipped, not divided by zero.
	alerts = EvaluateAlerts(Snapshot{DispensaryTurnover: 15000, GrossProfitPercent: 27, AvgBasket: 175, ScriptsDispensed: 1}, Snapshot{})
	assert.Nil(t, findByTitle(alerts, "Dispensary"))
}

func TestEvaluateAlertsNoScripts(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.ScriptsDispensed = 0

	alerts := EvaluateAlerts(snapshot, healthyPrevious())
	noScripts := findByTitle(alerts, "No scripts")
	require.NotNil(t, noScripts)
	assert.Equal(t, SeverityCritical, noScripts.Severity)
}

func TestEvaluateAlertsBasketBands(t *testing.T) {
	tests := []struct {
		basket       float64
		wantTitle    string
		wantSeverity Severity
	}{
		{99.9, "Average basket critical", SeverityCritical},
		{100, "Average basket low", SeverityWarning},
		{149.9, "Average basket low", SeverityWarning},
		{150, "", ""},
		{200, "", ""},
		{200.1, "Strong average basket", SeverityPositive},
	}
	for _, tt := range tests {
		snapshot := healthySnapshot()
		snapshot.AvgBasket = tt.basket
		alerts := EvaluateAlerts(snapshot, healthyPrevious())
		got := findByTitle(alerts, "basket")
		if tt.wantTitle == "" {
			assert.Nil(t, got, "basket=%v", tt.basket)
			continue
		}
		require.NotNil(t, got, "basket=%v", tt.basket)
		assert.Equal(t, tt.wantTitle, got.Title)
		assert.Equal(t, tt.wantSeverity, got.Severity)
	}
}

func TestEvaluateAlertsPurchasesRatio(t *testing.T) {
	snapshot := healthySnapshot()

	// 30% over cost of sales: critical.
	snapshot.CostOfSales = 10000
	snapshot.Purchases = 13000
	alerts := EvaluateAlerts(snapshot, healthyPrevious())
	crit := findByTitle(alerts, "Purchases far ahead")
	require.NotNil(t, crit)
	assert.Equal(t, SeverityCritical, crit.Severity)
	assert.Contains(t, crit.Description, "30.0%")

	// 15% over: warning.
	snapshot.Purchases = 11500
	alerts = EvaluateAlerts(snapshot, healthyPrevious())
	warn := findByTitle(alerts, "Purchases ahead")
	require.NotNil(t, warn)
	assert.Equal(t, SeverityWarning, warn.Severity)

	// Exactly 25% over stays a warning, not critical.
	snapshot.Purchases = 12500
	alerts = EvaluateAlerts(snapshot, healthyPrevious())
	assert.Nil(t, findByTitle(alerts, "Purchases far ahead"))
	assert.NotNil(t, findByTitle(alerts, "Purchases ahead"))

	// Division guard: zero cost of sales never fires either rule, no
	// matter how large purchases are.
	snapshot.CostOfSales = 0
	snapshot.Purchases = 1e9
	alerts = EvaluateAlerts(snapshot, healthyPrevious())
	assert.Nil(t, findByTitle(alerts, "Purchases"))
}

func TestEvaluateAlertsStockRules(t *testing.T) {
	snapshot := healthySnapshot()

	snapshot.DaysOfInventory = 130
	alerts := EvaluateAlerts(snapshot, healthyPrevious())
	crit := findByTitle(alerts, "Excessive stock")
	require.NotNil(t, crit)
	assert.Equal(t, SeverityCritical, crit.Severity)

	snapshot.DaysOfInventory = 100
	alerts = EvaluateAlerts(snapshot, healthyPrevious())
	warn := findByTitle(alerts, "High stock")
	require.NotNil(t, warn)
	assert.Equal(t, SeverityWarning, warn.Severity)

	snapshot.DaysOfInventory = 45
	snapshot.ClosingStock = 700000 // >10% below opening 900000
	alerts = EvaluateAlerts(snapshot, healthyPrevious())
	drawdown := findByTitle(alerts, "Stock level drawdown")
	require.NotNil(t, drawdown)
	assert.Contains(t, drawdown.Description, "22.2%")
}

func TestEvaluateAlertsEmptySnapshotsNeverPanic(t *testing.T) {
	alerts := EvaluateAlerts(Snapshot{}, Snapshot{})
	// Only the no-scripts advisory fires on a fully empty snapshot; every
	// ratio rule is skipped rather than evaluated against zeros.
	require.Len(t, alerts, 1)
	assert.Equal(t, "No scripts recorded", alerts[0].Title)
}

func TestEvaluateAlertsHaveIDsAndRuleOrder(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.GrossProfitPercent = 18 // critical
	snapshot.AvgBasket = 90          // critical
	alerts := EvaluateAlerts(snapshot, Snapshot{Turnover: 60000})

	require.Len(t, alerts, 3)
	// Evaluation order, not severity order: turnover warning first.
	assert.Equal(t, "Turnover below last year", alerts[0].Title)
	assert.Equal(t, "Gross profit margin critical", alerts[1].Title)
	assert.Equal(t, "Average basket critical", alerts[2].Title)

	seen := map[string]bool{}
	for _, a := range alerts {
		assert.NotEmpty(t, a.ID)
		assert.False(t, seen[a.ID], "duplicate alert id")
		seen[a.ID] = true
	}
}

func TestSeverityRank(t *testing.T) {
	assert.Greater(t, SeverityCritical.Rank(), SeverityWarning.Rank())
	assert.Greater(t, SeverityWarning.Rank(), SeverityPositive.Rank())
}
