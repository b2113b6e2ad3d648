package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"budget/cache"
	"budget/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// CreateCategoryInput 创建类别参数
type CreateCategoryInput struct {
	Name       string
	Percentage float64
	Color      string
	Icon       string
	Order      int
	ParentID   *uint
}

// UpdateCategoryInput 更新类别参数，nil 字段不修改
// ParentID 为 0 表示移到一级
type UpdateCategoryInput struct {
	Name       *string
	Slug       *string
	Percentage *float64
	Color      *string
	Icon       *string
	Order      *int
	IsActive   *bool
	ParentID   *uint
}

// ListCategories 返回所有有效类别（扁平列表，按 order 排序）
// 首次读取时补齐预设类别
func (s *BudgetService) ListCategories(ctx context.Context) ([]models.BudgetCategory, error) {
	var cached []models.BudgetCategory
	if s.cache.Get(ctx, cache.KeyCategories, &cached) {
		return cached, nil
	}

	if err := s.store.EnsurePredetermined(ctx, models.PredeterminedCategories()); err != nil {
		return nil, fmt.Errorf("初始化预设类别失败: %w", err)
	}
	list, err := s.store.List(ctx, CategoryFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("查询类别失败: %w", err)
	}

	s.cache.Set(ctx, cache.KeyCategories, list, cache.TTLMedium)
	return list, nil
}

// CategoryTree 当前有效类别构成的树
func (s *BudgetService) CategoryTree(ctx context.Context) (*CategoryTree, error) {
	list, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return NewCategoryTree(list), nil
}

// GetCategory 获取单个类别
func (s *BudgetService) GetCategory(ctx context.Context, id uint) (*models.BudgetCategory, error) {
	return s.store.Get(ctx, id)
}

// CreateCategory 创建自定义类别
func (s *BudgetService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.BudgetCategory, error) {
	name, err := validateName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := validatePercentage(in.Percentage); err != nil {
		return nil, err
	}
	if in.ParentID != nil && *in.ParentID != 0 {
		if err := s.checkParent(ctx, *in.ParentID, 0); err != nil {
			return nil, err
		}
	} else {
		in.ParentID = nil
	}

	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = models.DefaultCategoryColor
	}

	cat := &models.BudgetCategory{
		Name:       name,
		Slug:       newSlug(name),
		Percentage: round2(in.Percentage),
		Color:      color,
		Icon:       in.Icon,
		Order:      in.Order,
		IsActive:   true,
		ParentID:   in.ParentID,
	}
	if err := s.store.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("创建类别失败: %w", err)
	}

	s.Invalidate(ctx)
	return cat, nil
}

// UpdateCategory 部分更新类别
// 预设类别的名称、标识和上级不可修改
func (s *BudgetService) UpdateCategory(ctx context.Context, id uint, in UpdateCategoryInput) (*models.BudgetCategory, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if in.Name != nil && strings.TrimSpace(*in.Name) != existing.Name {
		if existing.IsPredetermined {
			return nil, ErrPredeterminedRename
		}
		name, err := validateName(*in.Name)
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}

	if in.Slug != nil && strings.TrimSpace(*in.Slug) != existing.Slug {
		if existing.IsPredetermined {
			return nil, ErrPredeterminedRename
		}
		value := strings.TrimSpace(*in.Slug)
		if value == "" || utf8.RuneCountInString(value) > 64 {
			return nil, fmt.Errorf("%w: 标识长度应为 1-64 个字符", ErrValidation)
		}
		if models.IsReservedSlug(value) {
			return nil, fmt.Errorf("%w: %s 为预设类别保留", ErrSlugTaken, value)
		}
		taken, err := s.store.SlugExists(ctx, value, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
		fields["slug"] = value
	}

	if in.Percentage != nil {
		if err := validatePercentage(*in.Percentage); err != nil {
			return nil, err
		}
		fields["percentage"] = round2(*in.Percentage)
	}
	if in.Color != nil {
		color := strings.TrimSpace(*in.Color)
		if color == "" {
			color = models.DefaultCategoryColor
		}
		fields["color"] = color
	}
	if in.Icon != nil {
		fields["icon"] = *in.Icon
	}
	if in.Order != nil {
		fields["sort_order"] = *in.Order
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if in.ParentID != nil {
		var current uint
		if existing.ParentID != nil {
			current = *existing.ParentID
		}
		if *in.ParentID != current {
			if existing.IsPredetermined {
				return nil, ErrPredeterminedReparent
			}
			if *in.ParentID == 0 {
				fields["parent_id"] = nil
			} else {
				if err := s.checkParent(ctx, *in.ParentID, id); err != nil {
					return nil, err
				}
				n, err := s.store.CountChildren(ctx, id)
				if err != nil {
					return nil, err
				}
				if n > 0 {
					return nil, fmt.Errorf("%w: 已有子类别的类别不能再设为子类别", ErrInvalidParent)
				}
				fields["parent_id"] = *in.ParentID
			}
		}
	}

	if len(fields) == 0 {
		return existing, nil
	}
	if err := s.store.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("更新类别失败: %w", err)
	}
	s.Invalidate(ctx)

	return s.store.Get(ctx, id)
}

// DeleteCategory 删除类别
// 预设类别一律拒绝；有子类别时需先删除子类别
func (s *BudgetService) DeleteCategory(ctx context.Context, id uint) error {
	cat, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if cat.IsPredetermined {
		return ErrPredeterminedDelete
	}
	n, err := s.store.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrHasSubcategories
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除类别失败: %w", err)
	}
	s.Invalidate(ctx)
	return nil
}

// checkParent 校验上级类别存在且为一级类别
func (s *BudgetService) checkParent(ctx context.Context, parentID, selfID uint) error {
	if parentID == selfID {
		return fmt.Errorf("%w: 不能将自身设为上级", ErrInvalidParent)
	}
	parent, err := s.store.Get(ctx, parentID)
	if err != nil {
		return fmt.Errorf("%w: 上级类别不存在", ErrInvalidParent)
	}
	if !parent.IsTopLevel() {
		return fmt.Errorf("%w: 只支持一级子类别", ErrInvalidParent)
	}
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: 名称不能为空", ErrValidation)
	}
	if utf8.RuneCountInString(name) > 50 {
		return "", fmt.Errorf("%w: 名称不能超过 50 个字符", ErrValidation)
	}
	return name, nil
}

func validatePercentage(p float64) error {
	if p < 0 || p > 100 {
		return fmt.Errorf("%w: 百分比必须在 0 到 100 之间", ErrValidation)
	}
	return nil
}

// newSlug 由名称生成唯一标识，如 "Travel Fund" -> "travel-fund-1a2b3c4d"
// 非 ASCII 名称先音译，如 "旅行基金" -> "lu-xing-ji-jin-1a2b3c4d"
func newSlug(name string) string {
	base := slug.Make(name)
	if len(base) > 50 {
		base = strings.TrimSuffix(base[:50], "-")
	}
	if base == "" {
		base = "category"
	}
	return base + "-" + uuid.NewString()[:8]
}
