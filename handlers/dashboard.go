package handlers

import (
	"net/http"
	"time"

	"club-tracker/config"
	"club-tracker/models"
	"club-tracker/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns everything the landing page shows in one call:
// portfolio totals, the current month's dues summary, the best and worst
// positions and the most recent unread alerts.
func GetDashboard(c *gin.Context) {
	var stocks []models.Stock
	if err := config.DB.Order("created_at desc").Find(&stocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}
	var payments []models.Payment
	if err := config.DB.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	var members []models.Member
	if err := config.DB.Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}
	var unreadAlerts []models.Alert
	if err := config.DB.Where("read = ?", false).Order("created_at desc").Limit(3).Find(&unreadAlerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	now := time.Now()
	paymentSummary := services.GetMonthlyPaymentSummary(payments, members, now.Month(), now.Year(), monthlyDue)

	response := gin.H{
		"portfolio":       services.GetPortfolioSummary(stocks),
		"payments":        paymentSummary,
		"paidMemberCount": services.PaidMemberCount(paymentSummary),
		"memberCount":     len(members),
		"investmentPool":  services.InvestmentPool(payments),
		"unreadAlerts":    unreadAlerts,
	}
	if top, ok := services.TopPerformer(stocks); ok {
		response["topPerformer"] = services.CalculateProfitLoss(top)
	}
	if worst, ok := services.WorstPerformer(stocks); ok {
		response["worstPerformer"] = services.CalculateProfitLoss(worst)
	}

	c.JSON(http.StatusOK, response)
}
