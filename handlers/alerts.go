package handlers

import (
	"net/http"

	"club-tracker/config"
	"club-tracker/models"

	"github.com/gin-gonic/gin"
)

// GetAlerts lists alerts newest first, optionally filtered by
// ?type=price-change|suggestion and ?read=true|false.
func GetAlerts(c *gin.Context) {
	query := config.DB.Order("created_at desc")

	if t := c.Query("type"); t != "" {
		alertType := models.AlertType(t)
		if !alertType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alert type"})
			return
		}
		query = query.Where("type = ?", alertType)
	}
	if r := c.Query("read"); r != "" {
		switch r {
		case "true":
			query = query.Where("read = ?", true)
		case "false":
			query = query.Where("read = ?", false)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid read filter"})
			return
		}
	}

	var alerts []models.Alert
	if err := query.Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// MarkAlertRead flips an alert to read. The transition only goes one way;
// marking an already-read alert again is a no-op.
func MarkAlertRead(c *gin.Context) {
	alertID := c.Param("id")

	var alert models.Alert
	if err := config.DB.First(&alert, alertID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}

	if !alert.Read {
		if err := config.DB.Model(&alert).Update("read", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alert"})
			return
		}
	}
	c.JSON(http.StatusOK, alert)
}

// MarkAllAlertsRead marks every unread alert as read in one pass.
func MarkAllAlertsRead(c *gin.Context) {
	result := config.DB.Model(&models.Alert{}).Where("read = ?", false).Update("read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alerts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": result.RowsAffected})
}

// ClearReadAlerts deletes every alert already marked read, leaving the
// unread ones in place.
func ClearReadAlerts(c *gin.Context) {
	result := config.DB.Where("read = ?", true).Delete(&models.Alert{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear alerts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": result.RowsAffected})
}

func DeleteAlert(c *gin.Context) {
	alertID := c.Param("id")

	var alert models.Alert
	if err := config.DB.First(&alert, alertID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}

	if err := config.DB.Delete(&alert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete alert"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert deleted successfully"})
}
