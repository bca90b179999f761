package database

import (
	"fmt"
	"time"

	"club-tracker/config"
	"club-tracker/models"
)

// Seed loads the club's starter fixture data into an empty database:
// the five founding members, their dues for the current and previous
// month, the tracked BIST positions and a few example alerts and notes.
// A database that already has members is left alone.
func Seed() error {
	var count int64
	if err := config.DB.Model(&models.Member{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if count > 0 {
		return nil
	}

	members := []models.Member{
		{Name: "Ahmet Yılmaz"},
		{Name: "Mehmet Öz"},
		{Name: "Ayşe Demir"},
		{Name: "Fatma Çelik"},
		{Name: "Ali Kaya"},
	}
	if err := config.DB.CreateInBatches(&members, 100).Error; err != nil {
		return fmt.Errorf("failed to seed members: %w", err)
	}

	now := time.Now()
	payments := seedPayments(members, now)
	if err := config.DB.CreateInBatches(&payments, 100).Error; err != nil {
		return fmt.Errorf("failed to seed payments: %w", err)
	}

	stocks := []models.Stock{
		{Ticker: "TUPRS", Name: "Tüpraş", Quantity: 1206, PurchasePrice: 139.36, PurchaseDate: date(2023, 6, 15), CurrentPrice: 142.7, LastUpdated: now},
		{Ticker: "THYAO", Name: "Türk Hava Yolları", Quantity: 2500, PurchasePrice: 54.65, PurchaseDate: date(2023, 7, 20), CurrentPrice: 57.85, LastUpdated: now},
		{Ticker: "KCHOL", Name: "Koç Holding", Quantity: 1850, PurchasePrice: 82.4, PurchaseDate: date(2023, 8, 10), CurrentPrice: 80.15, LastUpdated: now},
		{Ticker: "GARAN", Name: "Garanti Bankası", Quantity: 3200, PurchasePrice: 29.68, PurchaseDate: date(2023, 9, 5), CurrentPrice: 32.45, LastUpdated: now},
		{Ticker: "SAHOL", Name: "Sabancı Holding", Quantity: 2700, PurchasePrice: 44.12, PurchaseDate: date(2023, 10, 12), CurrentPrice: 46.3, LastUpdated: now},
	}
	if err := config.DB.CreateInBatches(&stocks, 100).Error; err != nil {
		return fmt.Errorf("failed to seed stocks: %w", err)
	}

	alerts := []models.Alert{
		{Ticker: "GARAN", Type: models.AlertPriceChange, Message: "GARAN price increased by 5.2% in the last 24 hours", Date: now.Add(-2 * time.Hour), Read: false, Priority: models.PriorityMedium},
		{Ticker: "KCHOL", Type: models.AlertPriceChange, Message: "KCHOL price decreased by 3.8% in the last 24 hours", Date: now.Add(-8 * time.Hour), Read: true, Priority: models.PriorityMedium},
		{Ticker: "TUPRS", Type: models.AlertSuggestion, Message: "Consider adding to TUPRS position - trading near support level", Date: now.Add(-24 * time.Hour), Read: false, Priority: models.PriorityLow},
		{Ticker: "THYAO", Type: models.AlertSuggestion, Message: "THYAO showing strong momentum - potential breakout candidate", Date: now.Add(-72 * time.Hour), Read: true, Priority: models.PriorityLow},
	}
	if err := config.DB.CreateInBatches(&alerts, 100).Error; err != nil {
		return fmt.Errorf("failed to seed alerts: %w", err)
	}

	notes := []models.Note{
		{
			Title:   "Investment Strategy for Q4",
			Content: "We should consider increasing our banking sector exposure given the positive interest rate environment. Potential candidates: AKBNK, ISCTR, VAKBN.",
			Date:    now.Add(-5 * 24 * time.Hour),
			Tags:    []string{"strategy", "banking"},
		},
		{
			Title:   "End of Year Dividend Discussion",
			Content: "Group agreed to reinvest all dividends rather than distributing to members. Will reassess in January.",
			Date:    now.Add(-15 * 24 * time.Hour),
			Tags:    []string{"dividends", "policy"},
		},
	}
	if err := config.DB.CreateInBatches(&notes, 100).Error; err != nil {
		return fmt.Errorf("failed to seed notes: %w", err)
	}

	return nil
}

// seedPayments builds dues records: everyone paid last month, everyone
// except the last member paid this month.
func seedPayments(members []models.Member, now time.Time) []models.Payment {
	const due = 7000

	var payments []models.Payment
	currentDays := []int{5, 7, 6, 10}
	for i, day := range currentDays {
		d := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.Local)
		payments = append(payments, models.Payment{
			MemberID: members[i].ID,
			Date:     &d,
			Amount:   due,
			Status:   models.StatusPaid,
		})
	}
	payments = append(payments, models.Payment{
		MemberID: members[4].ID,
		Amount:   due,
		Status:   models.StatusPending,
	})

	previous := now.AddDate(0, -1, 0)
	previousDays := []int{5, 7, 12, 8, 6}
	for i, day := range previousDays {
		d := time.Date(previous.Year(), previous.Month(), day, 0, 0, 0, 0, time.Local)
		payments = append(payments, models.Payment{
			MemberID: members[i].ID,
			Date:     &d,
			Amount:   due,
			Status:   models.StatusPaid,
		})
	}
	return payments
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
