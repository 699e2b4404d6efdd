package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a Most Important Task (MIT) scoped to a single calendar date.
// Date is a local YYYY-MM-DD string; because the format is zero-padded,
// lexicographic comparison matches chronological order.
type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	Order       int       `gorm:"column:order;not null" json:"order"`
	Date        string    `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
