package models

import (
	"time"

	"gorm.io/gorm"
)

// Stock is one position in the club's shared portfolio. CurrentPrice and
// LastUpdated are written only by the price refresh.
type Stock struct {
	gorm.Model
	Ticker        string    `json:"ticker" gorm:"index"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	PurchasePrice float64   `json:"purchasePrice"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	CurrentPrice  float64   `json:"currentPrice"`
	LastUpdated   time.Time `json:"lastUpdated"`
}
