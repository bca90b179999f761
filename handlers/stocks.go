package handlers

import (
	"net/http"
	"time"

	"club-tracker/config"
	"club-tracker/models"
	"club-tracker/prices"
	"club-tracker/services"

	"github.com/gin-gonic/gin"
)

type StockInput struct {
	Ticker        string  `json:"ticker" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	PurchasePrice float64 `json:"purchasePrice" binding:"required,min=0.01"`
	PurchaseDate  string  `json:"purchaseDate" binding:"required"`
}

func GetStocks(c *gin.Context) {
	var stocks []models.Stock
	if err := config.DB.Order("created_at desc").Find(&stocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}
	c.JSON(http.StatusOK, stocks)
}

// AddStock creates a position, resolving an initial current price through
// the given source. When the lookup comes back empty the purchase price
// stands in until the next refresh.
func AddStock(source prices.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input StockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		purchaseDate, err := time.Parse("2006-01-02", input.PurchaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate.Error()})
			return
		}

		currentPrice := input.PurchasePrice
		if priceData, err := source.FetchPrices(c.Request.Context(), []string{input.Ticker}); err == nil {
			if price, ok := priceData[input.Ticker]; ok {
				currentPrice = price
			}
		}

		stock := models.Stock{
			Ticker:        input.Ticker,
			Name:          input.Name,
			Quantity:      input.Quantity,
			PurchasePrice: input.PurchasePrice,
			PurchaseDate:  purchaseDate,
			CurrentPrice:  currentPrice,
			LastUpdated:   time.Now(),
		}
		if err := config.DB.Create(&stock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stock"})
			return
		}
		c.JSON(http.StatusCreated, stock)
	}
}

type UpdateStockInput struct {
	Name          *string  `json:"name"`
	Quantity      *int     `json:"quantity"`
	PurchasePrice *float64 `json:"purchasePrice"`
	PurchaseDate  *string  `json:"purchaseDate"`
}

func UpdateStock(c *gin.Context) {
	stockID := c.Param("id")

	var input UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Stock
	if err := config.DB.First(&existing, stockID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
		return
	}

	updateData := make(map[string]interface{})
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}
		updateData["quantity"] = *input.Quantity
	}
	if input.PurchasePrice != nil {
		updateData["purchase_price"] = *input.PurchasePrice
	}
	if input.PurchaseDate != nil {
		parsed, err := time.Parse("2006-01-02", *input.PurchaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate.Error()})
			return
		}
		updateData["purchase_date"] = parsed
	}

	if err := config.DB.Model(&existing).Updates(updateData).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

func DeleteStock(c *gin.Context) {
	stockID := c.Param("id")

	var stock models.Stock
	if err := config.DB.First(&stock, stockID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
		return
	}

	if err := config.DB.Delete(&stock).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock deleted successfully"})
}

// GetPortfolioSummary returns whole-portfolio totals at current prices.
func GetPortfolioSummary(c *gin.Context) {
	var stocks []models.Stock
	if err := config.DB.Find(&stocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}
	c.JSON(http.StatusOK, services.GetPortfolioSummary(stocks))
}
