package services

import (
	"fmt"
	"time"

	"club-tracker/models"
)

// MemberPayment is one member's dues status for a given month.
type MemberPayment struct {
	MemberID uint                 `json:"memberId"`
	Status   models.PaymentStatus `json:"status"`
	Amount   float64              `json:"amount"`
}

// MonthlyPaymentSummary aggregates dues for one month across the roster.
type MonthlyPaymentSummary struct {
	Month          string          `json:"month"`
	TotalExpected  float64         `json:"totalExpected"`
	TotalReceived  float64         `json:"totalReceived"`
	MemberPayments []MemberPayment `json:"memberPayments"`
}

// GetMonthlyPaymentSummary builds the dues summary for the given month.
// Payments without a date are excluded from the month filter. Members with
// no payment record that month default to pending with amount 0. When a
// member somehow has several payments in one month, the one with the
// lowest ID wins, so the result is deterministic regardless of input
// order. TotalReceived sums paid amounts without clamping, so overpayment
// shows through.
func GetMonthlyPaymentSummary(payments []models.Payment, members []models.Member, month time.Month, year int, monthlyDue float64) MonthlyPaymentSummary {
	byMember := make(map[uint]models.Payment)
	var totalReceived float64
	for _, payment := range payments {
		if payment.Date == nil {
			continue
		}
		if payment.Date.Month() != month || payment.Date.Year() != year {
			continue
		}
		if payment.Status == models.StatusPaid {
			totalReceived += payment.Amount
		}
		if existing, ok := byMember[payment.MemberID]; !ok || payment.ID < existing.ID {
			byMember[payment.MemberID] = payment
		}
	}

	summary := MonthlyPaymentSummary{
		Month:         fmt.Sprintf("%d-%02d", year, int(month)),
		TotalExpected: float64(len(members)) * monthlyDue,
		TotalReceived: totalReceived,
	}
	for _, member := range members {
		mp := MemberPayment{MemberID: member.ID, Status: models.StatusPending}
		if payment, ok := byMember[member.ID]; ok {
			mp.Status = payment.Status
			mp.Amount = payment.Amount
		}
		summary.MemberPayments = append(summary.MemberPayments, mp)
	}
	return summary
}

// InvestmentPool is the cumulative sum of all paid dues across all time.
func InvestmentPool(payments []models.Payment) float64 {
	var pool float64
	for _, payment := range payments {
		if payment.Status == models.StatusPaid {
			pool += payment.Amount
		}
	}
	return pool
}

// PaidMemberCount counts members marked paid in a monthly summary.
func PaidMemberCount(summary MonthlyPaymentSummary) int {
	count := 0
	for _, mp := range summary.MemberPayments {
		if mp.Status == models.StatusPaid {
			count++
		}
	}
	return count
}
