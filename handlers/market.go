package handlers

import (
	"errors"
	"net/http"

	"club-tracker/prices"
	"club-tracker/services"

	"github.com/gin-gonic/gin"
)

// GetStockPrice looks up one ticker's current price through the given
// source. With a cached source in front, repeat lookups within the TTL
// never hit the upstream.
func GetStockPrice(source prices.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticker := c.Param("ticker")

		priceData, err := source.FetchPrices(c.Request.Context(), []string{ticker})
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch stock price"})
			return
		}

		price, ok := priceData[ticker]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Price not available"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ticker": ticker, "price": price})
	}
}

// RefreshPrices runs one refresh pass. A refresh already in flight gets a
// 409 instead of a second concurrent run.
func RefreshPrices(refresher *services.Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := refresher.Refresh(c.Request.Context())
		if err != nil {
			if errors.Is(err, services.ErrRefreshInProgress) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh prices"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
