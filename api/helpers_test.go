package api

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"budget/cache"
	"budget/config"
	"budget/database"
	"budget/models"
	"budget/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

// fakeStore 内存版类别存储
type fakeStore struct {
	mu         sync.Mutex
	nextID     uint
	items      map[uint]*models.BudgetCategory
	failUpdate map[uint]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[uint]*models.BudgetCategory{}, failUpdate: map[uint]bool{}}
}

func (f *fakeStore) Create(_ context.Context, c *models.BudgetCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeStore) Get(_ context.Context, id uint) (*models.BudgetCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return nil, service.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) List(_ context.Context, filter service.CategoryFilter) ([]models.BudgetCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BudgetCategory
	for _, c := range f.items {
		if filter.ActiveOnly && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, id uint, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate[id] {
		return errors.New("connection reset")
	}
	c, ok := f.items[id]
	if !ok {
		return service.ErrCategoryNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "percentage":
			c.Percentage = v.(float64)
		case "color":
			c.Color = v.(string)
		case "is_active":
			c.IsActive = v.(bool)
		}
	}
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return service.ErrCategoryNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeStore) CountChildren(_ context.Context, id uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, c := range f.items {
		if c.ParentID != nil && *c.ParentID == id {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) SlugExists(_ context.Context, slug string, excludeID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) EnsurePredetermined(_ context.Context, presets []models.BudgetCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
next:
	for _, p := range presets {
		for _, c := range f.items {
			if c.Slug == p.Slug {
				continue next
			}
		}
		f.nextID++
		p.ID = f.nextID
		p.IsActive = true
		p.IsPredetermined = true
		f.items[p.ID] = &p
	}
	return nil
}

func (f *fakeStore) bySlug(slug string) *models.BudgetCategory {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.Slug == slug {
			return c
		}
	}
	return nil
}

// fakeLedger 固定的收入、储蓄目标和债务
type fakeLedger struct {
	income *models.Income
	goals  []models.SavingsGoal
	debts  []models.Debt
}

func (l *fakeLedger) ActiveIncome(context.Context) (*models.Income, error) { return l.income, nil }

func (l *fakeLedger) ActiveSavingsGoals(context.Context) ([]models.SavingsGoal, error) {
	return l.goals, nil
}

func (l *fakeLedger) ActiveDebts(context.Context) ([]models.Debt, error) { return l.debts, nil }

func newTestService(store *fakeStore, ledger *fakeLedger) *service.BudgetService {
	if ledger == nil {
		ledger = &fakeLedger{}
	}
	c := cache.NewMemoryCache("test_", "1.0", 64)
	return service.NewBudgetService(store, ledger, c, &config.Config{})
}

func newTestCache() cache.Cache {
	return cache.NewMemoryCache("test_", "1.0", 64)
}
