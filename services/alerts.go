package services

import (
	"fmt"
	"math"
	"time"

	"club-tracker/models"
)

// Default alert thresholds, in absolute percent change between two
// observations of the same ticker.
const (
	DefaultAlertThreshold        = 5.0
	DefaultHighPriorityThreshold = 8.0
)

// PriceChange is a significant move detected between two refreshes.
type PriceChange struct {
	Ticker        string
	PercentChange float64
}

// CheckPriceAlerts compares each stock's current price against the prior
// snapshot and returns those that moved by at least threshold percent in
// either direction. Tickers without a prior price are skipped.
func CheckPriceAlerts(stocks []models.Stock, previousPrices map[string]float64, threshold float64) []PriceChange {
	var changes []PriceChange
	for _, stock := range stocks {
		previous, ok := previousPrices[stock.Ticker]
		if !ok || previous == 0 {
			continue
		}
		percentChange := (stock.CurrentPrice - previous) / previous * 100
		if math.Abs(percentChange) >= threshold {
			changes = append(changes, PriceChange{
				Ticker:        stock.Ticker,
				PercentChange: percentChange,
			})
		}
	}
	return changes
}

// BuildPriceAlerts turns detected price changes into unread alert records
// timestamped at now. Moves beyond highThreshold percent are high
// priority, the rest medium.
func BuildPriceAlerts(changes []PriceChange, highThreshold float64, now time.Time) []models.Alert {
	var alerts []models.Alert
	for _, change := range changes {
		direction := "increased"
		if change.PercentChange < 0 {
			direction = "decreased"
		}
		priority := models.PriorityMedium
		if math.Abs(change.PercentChange) > highThreshold {
			priority = models.PriorityHigh
		}
		alerts = append(alerts, models.Alert{
			Ticker:   change.Ticker,
			Type:     models.AlertPriceChange,
			Message:  fmt.Sprintf("%s price %s by %.2f%% in the last check", change.Ticker, direction, math.Abs(change.PercentChange)),
			Date:     now,
			Read:     false,
			Priority: priority,
		})
	}
	return alerts
}

// BuildSuggestionAlerts turns catalog suggestions into unread low-priority
// alert records timestamped at now.
func BuildSuggestionAlerts(suggestions []Suggestion, now time.Time) []models.Alert {
	var alerts []models.Alert
	for _, suggestion := range suggestions {
		alerts = append(alerts, models.Alert{
			Ticker:   suggestion.Ticker,
			Type:     models.AlertSuggestion,
			Message:  suggestion.Reason,
			Date:     now,
			Read:     false,
			Priority: models.PriorityLow,
		})
	}
	return alerts
}
