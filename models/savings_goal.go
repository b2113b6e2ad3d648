package models

import (
	"time"

	"gorm.io/gorm"
)

// SavingsGoal 储蓄目标
type SavingsGoal struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"size:50;not null"`
	TargetAmount  float64        `json:"target_amount" gorm:"type:decimal(12,2);not null"`
	CurrentAmount float64        `json:"current_amount" gorm:"type:decimal(12,2);not null;default:0"`
	Description   string         `json:"description,omitempty" gorm:"size:255"`
	TargetDate    *time.Time     `json:"target_date,omitempty"`
	Color         string         `json:"color" gorm:"size:20;default:#10b981"`
	Icon          string         `json:"icon,omitempty" gorm:"size:20"`
	IsCompleted   bool           `json:"is_completed" gorm:"not null"`
	IsActive      bool           `json:"is_active" gorm:"not null"`
	Order         int            `json:"order" gorm:"column:sort_order;default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

func (SavingsGoal) TableName() string {
	return "savings_goals"
}
