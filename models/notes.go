package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Note is a free-form club note. Tags keep their submitted order and are
// not deduplicated.
type Note struct {
	gorm.Model
	Title   string         `json:"title" gorm:"not null"`
	Content string         `json:"content" gorm:"not null"`
	Date    time.Time      `json:"date"`
	Tags    pq.StringArray `json:"tags,omitempty" gorm:"type:text[]"`
}
