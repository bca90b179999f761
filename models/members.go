package models

import (
	"gorm.io/gorm"
)

// Member is a club member. Membership carries no login; the club is small
// enough that everyone shares the dashboard.
type Member struct {
	gorm.Model
	Name string `json:"name" gorm:"not null"`
}
