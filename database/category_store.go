package database

import (
	"context"
	"errors"

	"budget/models"
	"budget/service"

	"gorm.io/gorm"
)

// CategoryStore 基于 gorm 的预算类别存储
type CategoryStore struct {
	db *gorm.DB
}

// NewCategoryStore 创建类别存储
func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

var _ service.CategoryStore = (*CategoryStore)(nil)

func (s *CategoryStore) Create(ctx context.Context, category *models.BudgetCategory) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *CategoryStore) Get(ctx context.Context, id uint) (*models.BudgetCategory, error) {
	var cat models.BudgetCategory
	if err := s.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrCategoryNotFound
		}
		return nil, err
	}
	return &cat, nil
}

func (s *CategoryStore) List(ctx context.Context, filter service.CategoryFilter) ([]models.BudgetCategory, error) {
	query := s.db.WithContext(ctx).Model(&models.BudgetCategory{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}

	var list []models.BudgetCategory
	if err := query.Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Update 值未变化时 MySQL 返回的影响行数为 0，因此不据此判断是否存在
func (s *CategoryStore) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.BudgetCategory{}).Where("id = ?", id).Updates(fields).Error
}

func (s *CategoryStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.BudgetCategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryStore) CountChildren(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.BudgetCategory{}).Where("parent_id = ?", id).Count(&n).Error
	return n, err
}

// SlugExists 检查标识是否被占用，已软删除的记录仍占用唯一索引
func (s *CategoryStore) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Unscoped().Model(&models.BudgetCategory{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&n).Error
	return n > 0, err
}

// EnsurePredetermined 按 slug 补齐预设类别，已存在的（包括被停用的）保持不变
func (s *CategoryStore) EnsurePredetermined(ctx context.Context, presets []models.BudgetCategory) error {
	for _, p := range presets {
		cat := models.BudgetCategory{}
		err := s.db.WithContext(ctx).
			Where(models.BudgetCategory{Slug: p.Slug}).
			Attrs(models.BudgetCategory{
				Name:            p.Name,
				Color:           p.Color,
				Icon:            p.Icon,
				Order:           p.Order,
				IsActive:        true,
				IsPredetermined: true,
			}).
			FirstOrCreate(&cat).Error
		if err != nil {
			return err
		}
	}
	return nil
}
