package services

import (
	"club-tracker/models"
)

// PortfolioSummary aggregates the whole portfolio at current prices.
type PortfolioSummary struct {
	TotalInvestment  float64 `json:"totalInvestment"`
	CurrentValue     float64 `json:"currentValue"`
	TotalProfit      float64 `json:"totalProfit"`
	ProfitPercentage float64 `json:"profitPercentage"`
}

// GetPortfolioSummary computes investment, current value and profit across
// all positions. An empty portfolio (zero total investment) reports a
// profit percentage of 0 rather than NaN.
func GetPortfolioSummary(stocks []models.Stock) PortfolioSummary {
	var summary PortfolioSummary
	for _, stock := range stocks {
		summary.TotalInvestment += float64(stock.Quantity) * stock.PurchasePrice
		summary.CurrentValue += float64(stock.Quantity) * stock.CurrentPrice
	}
	summary.TotalProfit = summary.CurrentValue - summary.TotalInvestment
	if summary.TotalInvestment != 0 {
		summary.ProfitPercentage = summary.TotalProfit / summary.TotalInvestment * 100
	}
	return summary
}

// StockPerformance is one position's profit relative to its purchase price.
type StockPerformance struct {
	Stock      models.Stock `json:"stock"`
	ProfitLoss float64      `json:"profitLoss"`
	Percentage float64      `json:"percentage"`
}

// CalculateProfitLoss computes a single position's profit at current price.
// A zero purchase price reports a percentage of 0.
func CalculateProfitLoss(stock models.Stock) StockPerformance {
	investment := float64(stock.Quantity) * stock.PurchasePrice
	current := float64(stock.Quantity) * stock.CurrentPrice
	perf := StockPerformance{
		Stock:      stock,
		ProfitLoss: current - investment,
	}
	if investment != 0 {
		perf.Percentage = perf.ProfitLoss / investment * 100
	}
	return perf
}

// TopPerformer returns the stock with the highest percent gain over its
// purchase price, and false when the list is empty.
func TopPerformer(stocks []models.Stock) (models.Stock, bool) {
	return pickPerformer(stocks, func(best, candidate float64) bool {
		return candidate > best
	})
}

// WorstPerformer returns the stock with the lowest percent gain over its
// purchase price, and false when the list is empty.
func WorstPerformer(stocks []models.Stock) (models.Stock, bool) {
	return pickPerformer(stocks, func(best, candidate float64) bool {
		return candidate < best
	})
}

func pickPerformer(stocks []models.Stock, better func(best, candidate float64) bool) (models.Stock, bool) {
	if len(stocks) == 0 {
		return models.Stock{}, false
	}
	best := stocks[0]
	bestPerf := performance(stocks[0])
	for _, stock := range stocks[1:] {
		if p := performance(stock); better(bestPerf, p) {
			best = stock
			bestPerf = p
		}
	}
	return best, true
}

func performance(stock models.Stock) float64 {
	if stock.PurchasePrice == 0 {
		return 0
	}
	return (stock.CurrentPrice - stock.PurchasePrice) / stock.PurchasePrice * 100
}
