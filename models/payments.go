package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus is the lifecycle state of a monthly dues payment.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPending PaymentStatus = "pending"
	StatusLate    PaymentStatus = "late"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusLate:
		return true
	}
	return false
}

// Payment is one member's dues record. Date is nil while the payment is
// still expected; such records are excluded from month filtering.
type Payment struct {
	gorm.Model
	MemberID uint          `json:"memberId" gorm:"index"`
	Date     *time.Time    `json:"date"`
	Amount   float64       `json:"amount"`
	Status   PaymentStatus `json:"status" gorm:"type:varchar(10)"`
	Note     string        `json:"note,omitempty"`
}
