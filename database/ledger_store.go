package database

import (
	"context"
	"errors"

	"budget/models"
	"budget/service"

	"gorm.io/gorm"
)

// LedgerStore 收入、储蓄目标、债务查询
type LedgerStore struct {
	db *gorm.DB
}

// NewLedgerStore 创建查询存储
func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

var _ service.LedgerStore = (*LedgerStore)(nil)

// ActiveIncome 最近开始的一条有效收入
func (s *LedgerStore) ActiveIncome(ctx context.Context) (*models.Income, error) {
	var in models.Income
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("start_date DESC, id DESC").
		First(&in).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *LedgerStore) ActiveSavingsGoals(ctx context.Context) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&goals).Error
	return goals, err
}

func (s *LedgerStore) ActiveDebts(ctx context.Context) ([]models.Debt, error) {
	var debts []models.Debt
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&debts).Error
	return debts, err
}
