package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// BudgetCategory 预算类别，percentage 为占收入的百分比
type BudgetCategory struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	Name            string           `json:"name" gorm:"size:50;not null"`
	Slug            string           `json:"slug" gorm:"size:64;not null;uniqueIndex"`
	Percentage      float64          `json:"percentage" gorm:"type:decimal(5,2);not null;default:0"`
	Color           string           `json:"color" gorm:"size:20;default:#3b82f6"`
	Icon            string           `json:"icon,omitempty" gorm:"size:20"`
	Order           int              `json:"order" gorm:"column:sort_order;default:0;index"`
	IsActive        bool             `json:"is_active" gorm:"not null"`
	IsPredetermined bool             `json:"is_predetermined" gorm:"not null"`
	ParentID        *uint            `json:"parent_id" gorm:"index"`
	Subcategories   []BudgetCategory `json:"subcategories,omitempty" gorm:"-"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `json:"-" gorm:"index"`
}

// TableName 设置表名
func (BudgetCategory) TableName() string {
	return "budget_categories"
}

// IsTopLevel 是否为一级类别
func (c BudgetCategory) IsTopLevel() bool {
	return c.ParentID == nil
}

// 预设类别标识
const (
	SlugDebts      = "debts"
	SlugSavings    = "savings"
	SlugEssentials = "essentials"
	SlugLifestyle  = "lifestyle"
	SlugFun        = "fun"
)

// DefaultCategoryColor 新建类别的默认颜色
const DefaultCategoryColor = "#3b82f6"

// PredeterminedCategories 系统预设类别，首次读取时补齐
func PredeterminedCategories() []BudgetCategory {
	return []BudgetCategory{
		{Name: "Debts", Slug: SlugDebts, Color: "#ef4444", Icon: "💳", Order: 1},
		{Name: "Savings", Slug: SlugSavings, Color: "#10b981", Icon: "💰", Order: 2},
		{Name: "Essentials", Slug: SlugEssentials, Color: "#3b82f6", Icon: "🏠", Order: 3},
		{Name: "Lifestyle", Slug: SlugLifestyle, Color: "#8b5cf6", Icon: "🎯", Order: 4},
		{Name: "Fun", Slug: SlugFun, Color: "#f59e0b", Icon: "🎉", Order: 5},
	}
}

// IsReservedSlug 是否为预设类别保留的标识（不区分大小写）
func IsReservedSlug(slug string) bool {
	for _, p := range PredeterminedCategories() {
		if strings.EqualFold(p.Slug, slug) {
			return true
		}
	}
	return false
}
