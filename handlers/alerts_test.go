package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"club-tracker/config"
	"club-tracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func alertRouter() *gin.Engine {
	router := gin.New()
	router.GET("/alerts", GetAlerts)
	router.PUT("/alerts/:id/read", MarkAlertRead)
	router.PUT("/alerts/read-all", MarkAllAlertsRead)
	router.DELETE("/alerts/:id", DeleteAlert)
	router.DELETE("/alerts/read", ClearReadAlerts)
	return router
}

func TestMarkAlertReadOneWay(t *testing.T) {
	setupTestDB(t, &models.Alert{})
	router := alertRouter()

	alert := models.Alert{Ticker: "TUPRS", Type: models.AlertPriceChange, Message: "TUPRS price increased by 6.00% in the last check", Date: time.Now(), Priority: models.PriorityMedium}
	if err := config.DB.Create(&alert).Error; err != nil {
		t.Fatalf("failed to create alert: %v", err)
	}

	target := fmt.Sprintf("/alerts/%d/read", alert.ID)
	w := perform(router, http.MethodPut, target, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first mark: status = %d, want %d", w.Code, http.StatusOK)
	}

	var stored models.Alert
	if err := config.DB.First(&stored, alert.ID).Error; err != nil {
		t.Fatalf("failed to reload alert: %v", err)
	}
	if !stored.Read {
		t.Fatal("alert not marked read")
	}

	// Marking again must keep the alert read; the transition never
	// reverses.
	w = perform(router, http.MethodPut, target, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second mark: status = %d, want %d", w.Code, http.StatusOK)
	}
	if err := config.DB.First(&stored, alert.ID).Error; err != nil {
		t.Fatalf("failed to reload alert: %v", err)
	}
	if !stored.Read {
		t.Fatal("alert flipped back to unread")
	}
}

func TestGetAlertsNewestFirst(t *testing.T) {
	setupTestDB(t, &models.Alert{})
	router := alertRouter()

	now := time.Now()
	older := models.Alert{Model: gorm.Model{CreatedAt: now.Add(-time.Hour)}, Ticker: "OLD", Type: models.AlertSuggestion, Priority: models.PriorityLow}
	newer := models.Alert{Model: gorm.Model{CreatedAt: now}, Ticker: "NEW", Type: models.AlertSuggestion, Priority: models.PriorityLow}
	// Insert the older record first so creation order and ID order both
	// run opposite to the expected listing.
	for _, alert := range []*models.Alert{&older, &newer} {
		if err := config.DB.Create(alert).Error; err != nil {
			t.Fatalf("failed to create alert: %v", err)
		}
	}

	w := perform(router, http.MethodGet, "/alerts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var alerts []models.Alert
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2", len(alerts))
	}
	if alerts[0].Ticker != "NEW" || alerts[1].Ticker != "OLD" {
		t.Errorf("order = [%s, %s], want newest first", alerts[0].Ticker, alerts[1].Ticker)
	}
}

func TestMarkAllAlertsRead(t *testing.T) {
	setupTestDB(t, &models.Alert{})
	router := alertRouter()

	alerts := []models.Alert{
		{Ticker: "TUPRS", Type: models.AlertPriceChange, Priority: models.PriorityHigh},
		{Ticker: "THYAO", Type: models.AlertPriceChange, Priority: models.PriorityMedium},
		{Ticker: "SISE", Type: models.AlertSuggestion, Priority: models.PriorityLow, Read: true},
	}
	if err := config.DB.Create(&alerts).Error; err != nil {
		t.Fatalf("failed to create alerts: %v", err)
	}

	w := perform(router, http.MethodPut, "/alerts/read-all", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Updated int64 `json:"updated"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Updated != 2 {
		t.Errorf("updated = %d, want 2", body.Updated)
	}

	var unread int64
	if err := config.DB.Model(&models.Alert{}).Where("read = ?", false).Count(&unread).Error; err != nil {
		t.Fatalf("failed to count alerts: %v", err)
	}
	if unread != 0 {
		t.Errorf("got %d unread alerts after marking all, want 0", unread)
	}
}

func TestClearReadAlerts(t *testing.T) {
	setupTestDB(t, &models.Alert{})
	router := alertRouter()

	alerts := []models.Alert{
		{Ticker: "TUPRS", Type: models.AlertPriceChange, Priority: models.PriorityHigh, Read: true},
		{Ticker: "THYAO", Type: models.AlertSuggestion, Priority: models.PriorityLow, Read: true},
		{Ticker: "GARAN", Type: models.AlertPriceChange, Priority: models.PriorityMedium},
	}
	if err := config.DB.Create(&alerts).Error; err != nil {
		t.Fatalf("failed to create alerts: %v", err)
	}

	w := perform(router, http.MethodDelete, "/alerts/read", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Deleted != 2 {
		t.Errorf("deleted = %d, want 2", body.Deleted)
	}

	var remaining []models.Alert
	if err := config.DB.Find(&remaining).Error; err != nil {
		t.Fatalf("failed to list alerts: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Ticker != "GARAN" {
		t.Errorf("remaining = %+v, want only the unread GARAN alert", remaining)
	}
}
