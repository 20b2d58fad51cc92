package analytics

// Snapshot holds one period's headline metrics: a single day, a
// month-to-date window, or a year-to-date window. The provider boundary
// normalizes upstream responses into this shape; a zero field means the
// metric recorded no activity (or was unavailable) for the period, and
// every consumer treats it that way.
type Snapshot struct {
	Turnover           float64 `json:"turnover"`
	GrossProfit        float64 `json:"grossProfit"`
	GrossProfitPercent float64 `json:"grossProfitPercent"`
	CostOfSales        float64 `json:"costOfSales"`
	Purchases          float64 `json:"purchases"`
	Transactions       float64 `json:"transactions"`
	AvgBasket          float64 `json:"avgBasket"`
	AvgBasketSize      float64 `json:"avgBasketSize"`
	ScriptsDispensed   float64 `json:"scriptsDispensed"`
	DispensaryTurnover float64 `json:"dispensaryTurnover"`
	DispensaryPercent  float64 `json:"dispensaryPercent"`
	CashSales          float64 `json:"cashSales"`
	AccountSales       float64 `json:"accountSales"`
	CODSales           float64 `json:"codSales"`
	CashTenders        float64 `json:"cashTenders"`
	CreditCardTenders  float64 `json:"creditCardTenders"`
	OpeningStock       float64 `json:"openingStock"`
	ClosingStock       float64 `json:"closingStock"`
	StockAdjustments   float64 `json:"stockAdjustments"`
	TurnoverRatio      float64 `json:"turnoverRatio"`
	DaysOfInventory    float64 `json:"daysOfInventory"`
}
