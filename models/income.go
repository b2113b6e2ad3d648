package models

import (
	"time"

	"gorm.io/gorm"
)

// 收入频率
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Income 收入模型
type Income struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Amount    float64        `json:"amount" gorm:"type:decimal(12,2);not null"`
	Frequency string         `json:"frequency" gorm:"size:20;not null"`
	IsActive  bool           `json:"is_active" gorm:"not null"`
	StartDate time.Time      `json:"start_date" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Income) TableName() string {
	return "incomes"
}

// ValidFrequency 校验收入频率
func ValidFrequency(f string) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}
