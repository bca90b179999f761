package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"club-tracker/models"
	"club-tracker/prices"
)

// ErrRefreshInProgress is returned when a refresh is requested while a
// previous one is still running.
var ErrRefreshInProgress = errors.New("a price refresh is already in progress")

// RefreshResult summarizes one refresh run.
type RefreshResult struct {
	Updated   int            `json:"updated"`
	Skipped   int            `json:"skipped"`
	NewAlerts []models.Alert `json:"newAlerts"`
}

// PriceCache receives freshly persisted prices so cached lookups stay in
// step with the database after a refresh.
type PriceCache interface {
	Store(ctx context.Context, ticker string, price float64)
}

// Refresher drives the price refresh pipeline: snapshot prior prices,
// fetch fresh ones, persist the updates, generate alerts and push the
// urgent ones out. One refresh runs at a time; concurrent requests are
// rejected rather than queued.
type Refresher struct {
	DB        *gorm.DB
	Source    prices.Source
	Cache     PriceCache
	Suggester Suggester
	Notifier  interface {
		AlertTriggered(alert models.Alert) error
	}
	Log *logrus.Logger

	// AlertThreshold and HighPriorityThreshold are absolute percent
	// changes. Zero values fall back to the package defaults.
	AlertThreshold        float64
	HighPriorityThreshold float64

	mu sync.Mutex
}

// Refresh runs one pass of the pipeline. Tickers the source cannot
// resolve keep their previous price. A source failure aborts the run with
// stored prices untouched.
func (r *Refresher) Refresh(ctx context.Context) (*RefreshResult, error) {
	if !r.mu.TryLock() {
		return nil, ErrRefreshInProgress
	}
	defer r.mu.Unlock()

	var stocks []models.Stock
	if err := r.DB.Order("created_at desc").Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to load stocks: %w", err)
	}
	if len(stocks) == 0 {
		return &RefreshResult{}, nil
	}

	previousPrices := make(map[string]float64, len(stocks))
	tickers := make([]string, 0, len(stocks))
	for _, stock := range stocks {
		previousPrices[stock.Ticker] = stock.CurrentPrice
		tickers = append(tickers, stock.Ticker)
	}

	priceData, err := r.Source.FetchPrices(ctx, tickers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}

	now := time.Now()
	result := &RefreshResult{}
	for i := range stocks {
		price, ok := priceData[stocks[i].Ticker]
		if !ok {
			result.Skipped++
			continue
		}
		updates := map[string]interface{}{
			"current_price": price,
			"last_updated":  now,
		}
		if err := r.DB.Model(&models.Stock{}).Where("id = ?", stocks[i].ID).Updates(updates).Error; err != nil {
			r.Log.Errorf("Failed to update price for %s: %v", stocks[i].Ticker, err)
			result.Skipped++
			continue
		}
		stocks[i].CurrentPrice = price
		stocks[i].LastUpdated = now
		if r.Cache != nil {
			r.Cache.Store(ctx, stocks[i].Ticker, price)
		}
		result.Updated++
	}

	alerts := r.generateAlerts(stocks, previousPrices, now)
	for i := range alerts {
		if err := r.DB.Create(&alerts[i]).Error; err != nil {
			r.Log.Errorf("Failed to store alert for %s: %v", alerts[i].Ticker, err)
			continue
		}
		result.NewAlerts = append(result.NewAlerts, alerts[i])
		if alerts[i].Priority == models.PriorityHigh && r.Notifier != nil {
			if err := r.Notifier.AlertTriggered(alerts[i]); err != nil {
				r.Log.Warnf("Failed to notify for %s alert: %v", alerts[i].Ticker, err)
			}
		}
	}

	r.Log.WithFields(logrus.Fields{
		"updated": result.Updated,
		"skipped": result.Skipped,
		"alerts":  len(result.NewAlerts),
	}).Info("Price refresh complete")
	return result, nil
}

func (r *Refresher) generateAlerts(stocks []models.Stock, previousPrices map[string]float64, now time.Time) []models.Alert {
	threshold := r.AlertThreshold
	if threshold == 0 {
		threshold = DefaultAlertThreshold
	}
	highThreshold := r.HighPriorityThreshold
	if highThreshold == 0 {
		highThreshold = DefaultHighPriorityThreshold
	}

	changes := CheckPriceAlerts(stocks, previousPrices, threshold)
	alerts := BuildPriceAlerts(changes, highThreshold, now)
	if r.Suggester != nil {
		alerts = append(alerts, BuildSuggestionAlerts(r.Suggester.Suggest(), now)...)
	}
	return alerts
}
