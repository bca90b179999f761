package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"club-tracker/config"
	"club-tracker/models"

	"github.com/gin-gonic/gin"
)

func paymentRouter() *gin.Engine {
	router := gin.New()
	router.POST("/payments", AddPayment)
	router.PUT("/payments/:id", UpdatePayment)
	return router
}

func TestUpdatePaymentPartialPatch(t *testing.T) {
	setupTestDB(t, &models.Payment{})
	router := paymentRouter()

	paid := time.Date(2026, 8, 5, 0, 0, 0, 0, time.Local)
	payment := models.Payment{MemberID: 1, Date: &paid, Amount: 7000, Status: models.StatusPending}
	if err := config.DB.Create(&payment).Error; err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}
	target := fmt.Sprintf("/payments/%d", payment.ID)

	// Only the status changes; amount and date survive the patch.
	w := perform(router, http.MethodPut, target, strings.NewReader(`{"status":"paid"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status patch: status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var stored models.Payment
	if err := config.DB.First(&stored, payment.ID).Error; err != nil {
		t.Fatalf("failed to reload payment: %v", err)
	}
	if stored.Status != models.StatusPaid {
		t.Errorf("status = %q, want %q", stored.Status, models.StatusPaid)
	}
	if stored.Amount != 7000 {
		t.Errorf("amount = %v, want 7000", stored.Amount)
	}
	if stored.Date == nil || !stored.Date.Equal(paid) {
		t.Errorf("date = %v, want %v", stored.Date, paid)
	}
}

func TestUpdatePaymentClearDate(t *testing.T) {
	setupTestDB(t, &models.Payment{})
	router := paymentRouter()

	paid := time.Date(2026, 8, 5, 0, 0, 0, 0, time.Local)
	payment := models.Payment{MemberID: 2, Date: &paid, Amount: 7000, Status: models.StatusPaid}
	if err := config.DB.Create(&payment).Error; err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}

	w := perform(router, http.MethodPut, fmt.Sprintf("/payments/%d", payment.ID), strings.NewReader(`{"date":"","status":"pending"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var stored models.Payment
	if err := config.DB.First(&stored, payment.ID).Error; err != nil {
		t.Fatalf("failed to reload payment: %v", err)
	}
	if stored.Date != nil {
		t.Errorf("date = %v, want cleared", stored.Date)
	}
	if stored.Status != models.StatusPending {
		t.Errorf("status = %q, want %q", stored.Status, models.StatusPending)
	}
}

func TestUpdatePaymentRejectsBadInput(t *testing.T) {
	setupTestDB(t, &models.Payment{})
	router := paymentRouter()

	payment := models.Payment{MemberID: 3, Amount: 7000, Status: models.StatusPending}
	if err := config.DB.Create(&payment).Error; err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}
	target := fmt.Sprintf("/payments/%d", payment.ID)

	cases := []struct {
		name string
		body string
	}{
		{"invalid status", `{"status":"refunded"}`},
		{"zero amount", `{"amount":0}`},
		{"bad date", `{"date":"05/08/2026"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(router, http.MethodPut, target, strings.NewReader(tc.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}

	// The rejected patches must leave the record untouched.
	var stored models.Payment
	if err := config.DB.First(&stored, payment.ID).Error; err != nil {
		t.Fatalf("failed to reload payment: %v", err)
	}
	if stored.Status != models.StatusPending || stored.Amount != 7000 {
		t.Errorf("payment changed after rejected patches: %+v", stored)
	}
}
