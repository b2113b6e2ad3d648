package models

import (
	"time"

	"gorm.io/gorm"
)

// Debt 债务记录
type Debt struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name" gorm:"size:50;not null"`
	PrincipalAmount    float64        `json:"principal_amount" gorm:"type:decimal(12,2);not null"`
	CurrentBalance     float64        `json:"current_balance" gorm:"type:decimal(12,2);not null"`
	InterestRate       float64        `json:"interest_rate" gorm:"type:decimal(6,3);default:0"`
	RepaymentAmount    float64        `json:"repayment_amount" gorm:"type:decimal(12,2);default:0"`
	RepaymentFrequency string         `json:"repayment_frequency" gorm:"size:20;default:monthly"`
	StartDate          time.Time      `json:"start_date" gorm:"not null"`
	DueDate            *time.Time     `json:"due_date,omitempty"`
	IsPaid             bool           `json:"is_paid" gorm:"not null"`
	IsActive           bool           `json:"is_active" gorm:"not null"`
	Creditor           string         `json:"creditor,omitempty" gorm:"size:100"`
	Description        string         `json:"description,omitempty" gorm:"size:255"`
	Color              string         `json:"color" gorm:"size:20;default:#ef4444"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Debt) TableName() string {
	return "debts"
}
