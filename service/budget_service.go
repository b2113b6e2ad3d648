package service

import (
	"context"
	"errors"

	"budget/cache"
	"budget/config"
	"budget/models"
)

// 业务错误，Error() 文本直接返回给前端
var (
	ErrValidation            = errors.New("参数错误")
	ErrCategoryNotFound      = errors.New("类别不存在")
	ErrPredeterminedRename   = errors.New("预设类别的名称和标识不可修改")
	ErrPredeterminedReparent = errors.New("预设类别不能设为子类别")
	ErrPredeterminedDelete   = errors.New("预设类别不可删除")
	ErrHasSubcategories      = errors.New("该类别下还有子类别，请先删除子类别")
	ErrInvalidParent         = errors.New("上级类别无效")
	ErrSlugTaken             = errors.New("类别标识已存在")
)

// CategoryFilter 类别查询条件
type CategoryFilter struct {
	ActiveOnly bool
	ParentID   *uint
}

// CategoryStore 类别持久化接口
type CategoryStore interface {
	Create(ctx context.Context, category *models.BudgetCategory) error
	// Get 不存在时返回 ErrCategoryNotFound
	Get(ctx context.Context, id uint) (*models.BudgetCategory, error)
	// List 按 order、id 升序返回
	List(ctx context.Context, filter CategoryFilter) ([]models.BudgetCategory, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	CountChildren(ctx context.Context, id uint) (int64, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	// EnsurePredetermined 按 slug 补齐缺失的预设类别，已存在的不做修改
	EnsurePredetermined(ctx context.Context, presets []models.BudgetCategory) error
}

// LedgerStore 收入、储蓄目标、债务的只读接口
type LedgerStore interface {
	// ActiveIncome 最近一条有效收入，没有时返回 nil
	ActiveIncome(ctx context.Context) (*models.Income, error)
	ActiveSavingsGoals(ctx context.Context) ([]models.SavingsGoal, error)
	ActiveDebts(ctx context.Context) ([]models.Debt, error)
}

// Notifier 分配失败通知
type Notifier interface {
	NotifyAllocationFailure(result *ApplyResult) error
}

// BudgetService 预算类别与分配服务
type BudgetService struct {
	store       CategoryStore
	ledger      LedgerStore
	cache       cache.Cache
	notifier    Notifier
	concurrency int
}

// NewBudgetService 创建预算服务
func NewBudgetService(store CategoryStore, ledger LedgerStore, c cache.Cache, cfg *config.Config) *BudgetService {
	s := &BudgetService{
		store:       store,
		ledger:      ledger,
		cache:       c,
		concurrency: cfg.Budget.ApplyConcurrency,
	}
	if s.concurrency <= 0 {
		s.concurrency = 5
	}
	if cfg.Email.Enabled && cfg.Email.NotifyTo != "" {
		s.notifier = NewEmailService(&cfg.Email)
	}
	return s
}

// SetNotifier 替换失败通知实现
func (s *BudgetService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Invalidate 清除类别和看板缓存
func (s *BudgetService) Invalidate(ctx context.Context) {
	s.cache.Clear(ctx, cache.KeyCategories)
	s.cache.Clear(ctx, cache.KeyDashboard)
}
