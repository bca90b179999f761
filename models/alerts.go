package models

import (
	"time"

	"gorm.io/gorm"
)

// AlertType distinguishes price-triggered alerts from catalog suggestions.
type AlertType string

const (
	AlertPriceChange AlertType = "price-change"
	AlertSuggestion  AlertType = "suggestion"
)

// Valid reports whether t is a known alert type.
func (t AlertType) Valid() bool {
	return t == AlertPriceChange || t == AlertSuggestion
}

// AlertPriority ranks alerts for display.
type AlertPriority string

const (
	PriorityLow    AlertPriority = "low"
	PriorityMedium AlertPriority = "medium"
	PriorityHigh   AlertPriority = "high"
)

// Valid reports whether p is a known priority.
func (p AlertPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Alert is a generated notification. Alerts are never edited after
// creation; Read flips false to true exactly once, and deletion is the
// only other lifecycle event.
type Alert struct {
	gorm.Model
	Ticker   string        `json:"ticker" gorm:"index"`
	Type     AlertType     `json:"type" gorm:"type:varchar(20)"`
	Message  string        `json:"message"`
	Date     time.Time     `json:"date"`
	Read     bool          `json:"read"`
	Priority AlertPriority `json:"priority" gorm:"type:varchar(10)"`
}
