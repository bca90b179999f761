package handlers

import (
	"net/http"
	"strconv"
	"time"

	"club-tracker/config"
	"club-tracker/models"
	"club-tracker/services"

	"github.com/gin-gonic/gin"
)

type PaymentInput struct {
	MemberID uint    `json:"memberId" binding:"required"`
	Date     string  `json:"date"`
	Amount   float64 `json:"amount" binding:"required,min=0.01"`
	Status   string  `json:"status" binding:"required"`
	Note     string  `json:"note"`
}

// monthlyDue is the fixed per-member dues amount used for expected totals.
// Set from config at startup.
var monthlyDue = 7000.0

// SetMonthlyDue configures the dues amount used by payment summaries.
func SetMonthlyDue(due float64) {
	monthlyDue = due
}

func GetPayments(c *gin.Context) {
	var payments []models.Payment
	if err := config.DB.Order("created_at desc").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func AddPayment(c *gin.Context) {
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := paymentFromInput(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

type UpdatePaymentInput struct {
	MemberID *uint    `json:"memberId"`
	Date     *string  `json:"date"`
	Amount   *float64 `json:"amount"`
	Status   *string  `json:"status"`
	Note     *string  `json:"note"`
}

// UpdatePayment applies a partial update. Only fields present in the body
// change; an empty date clears the recorded date.
func UpdatePayment(c *gin.Context) {
	paymentID := c.Param("id")

	var input UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, paymentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.MemberID != nil {
		updates["member_id"] = *input.MemberID
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
			return
		}
		updates["amount"] = *input.Amount
	}
	if input.Status != nil {
		status := models.PaymentStatus(*input.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidStatus.Error()})
			return
		}
		updates["status"] = status
	}
	if input.Date != nil {
		if *input.Date == "" {
			updates["date"] = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *input.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate.Error()})
				return
			}
			updates["date"] = parsed
		}
	}
	if input.Note != nil {
		updates["note"] = *input.Note
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&payment).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
			return
		}
	}
	c.JSON(http.StatusOK, payment)
}

func DeletePayment(c *gin.Context) {
	paymentID := c.Param("id")

	var payment models.Payment
	if err := config.DB.First(&payment, paymentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	if err := config.DB.Delete(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

// GetPaymentSummary returns the monthly dues summary. Defaults to the
// current month when month/year query params are absent.
func GetPaymentSummary(c *gin.Context) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
			return
		}
		month = parsed
	}
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = parsed
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

	summary := services.GetMonthlyPaymentSummary(payments, members, time.Month(month), year, monthlyDue)
	c.JSON(http.StatusOK, summary)
}

// GetInvestmentPool returns the all-time sum of paid dues.
func GetInvestmentPool(c *gin.Context) {
	var payments []models.Payment
	if err := config.DB.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pool": services.InvestmentPool(payments)})
}

func paymentFromInput(input PaymentInput) (models.Payment, error) {
	status := models.PaymentStatus(input.Status)
	if !status.Valid() {
		return models.Payment{}, errInvalidStatus
	}

	payment := models.Payment{
		MemberID: input.MemberID,
		Amount:   input.Amount,
		Status:   status,
		Note:     input.Note,
	}
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return models.Payment{}, errInvalidDate
		}
		payment.Date = &parsed
	}
	return payment, nil
}
