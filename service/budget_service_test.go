package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"budget/cache"
	"budget/config"
	"budget/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore 内存版 CategoryStore
type memStore struct {
	mu          sync.Mutex
	nextID      uint
	items       map[uint]*models.BudgetCategory
	failUpdate  map[uint]bool
	noSeed      bool
	listCalls   int
	updateCalls int
}

func newMemStore() *memStore {
	return &memStore{items: map[uint]*models.BudgetCategory{}, failUpdate: map[uint]bool{}}
}

func (m *memStore) add(c models.BudgetCategory) *models.BudgetCategory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.items[c.ID] = &c
	return &c
}

func (m *memStore) Create(_ context.Context, c *models.BudgetCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memStore) Get(_ context.Context, id uint) (*models.BudgetCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memStore) List(_ context.Context, f CategoryFilter) ([]models.BudgetCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	var out []models.BudgetCategory
	for _, c := range m.items {
		if f.ActiveOnly && !c.IsActive {
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

func (m *memStore) Update(_ context.Context, id uint, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if m.failUpdate[id] {
		return errors.New("connection reset")
	}
	c, ok := m.items[id]
	if !ok {
		return ErrCategoryNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "slug":
			c.Slug = v.(string)
		case "percentage":
			c.Percentage = v.(float64)
		case "color":
			c.Color = v.(string)
		case "icon":
			c.Icon = v.(string)
		case "sort_order":
			c.Order = v.(int)
		case "is_active":
			c.IsActive = v.(bool)
		case "parent_id":
			if v == nil {
				c.ParentID = nil
			} else {
				p := v.(uint)
				c.ParentID = &p
			}
		}
	}
	return nil
}

func (m *memStore) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memStore) CountChildren(_ context.Context, id uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, c := range m.items {
		if c.ParentID != nil && *c.ParentID == id {
			n++
		}
	}
	return n, nil
}

func (m *memStore) SlugExists(_ context.Context, slug string, excludeID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.items {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) EnsurePredetermined(ctx context.Context, presets []models.BudgetCategory) error {
	if m.noSeed {
		return nil
	}
	for _, p := range presets {
		exists, _ := m.SlugExists(ctx, p.Slug, 0)
		if exists {
			continue
		}
		p.IsPredetermined = true
		p.IsActive = true
		m.add(p)
	}
	return nil
}

func (m *memStore) bySlug(slug string) *models.BudgetCategory {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.items {
		if c.Slug == slug {
			cp := *c
			return &cp
		}
	}
	return nil
}

// memLedger 内存版 LedgerStore
type memLedger struct {
	income *models.Income
	goals  []models.SavingsGoal
	debts  []models.Debt
}

func (l *memLedger) ActiveIncome(context.Context) (*models.Income, error) { return l.income, nil }
func (l *memLedger) ActiveSavingsGoals(context.Context) ([]models.SavingsGoal, error) {
	return l.goals, nil
}
func (l *memLedger) ActiveDebts(context.Context) ([]models.Debt, error) { return l.debts, nil }

// recordingNotifier 记录通知；release 非空时阻塞到其关闭
type recordingNotifier struct {
	sent    chan *ApplyResult
	release chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan *ApplyResult, 1)}
}

func (n *recordingNotifier) NotifyAllocationFailure(r *ApplyResult) error {
	if n.release != nil {
		<-n.release
	}
	n.sent <- r
	return nil
}

func newTestService(store *memStore, ledger *memLedger) *BudgetService {
	cfg := &config.Config{Budget: config.BudgetConfig{ApplyConcurrency: 3}}
	return NewBudgetService(store, ledger, cache.NewMemoryCache("test_", "1.0", 16), cfg)
}

func TestListCategories_SeedsPredeterminedAndCaches(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store, &memLedger{})

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "debts", list[0].Slug)
	assert.Equal(t, "fun", list[4].Slug)
	for _, c := range list {
		assert.True(t, c.IsPredetermined)
	}

	// 第二次读取命中缓存
	_, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)

	// 重复补齐不会产生重复类别
	svc.Invalidate(ctx)
	list, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store, &memLedger{})

	parent, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: " Travel Fund ", Percentage: 12.345})
	require.NoError(t, err)
	assert.Equal(t, "Travel Fund", parent.Name)
	assert.True(t, strings.HasPrefix(parent.Slug, "travel-fund-"))
	assert.Equal(t, 12.35, parent.Percentage)
	assert.Equal(t, models.DefaultCategoryColor, parent.Color)
	assert.True(t, parent.IsActive)
	assert.False(t, parent.IsPredetermined)

	child, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Flights", Percentage: 3, ParentID: &parent.ID})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)

	// 子类别不能再作为上级
	_, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: "Seats", ParentID: &child.ID})
	assert.ErrorIs(t, err, ErrInvalidParent)

	missing := uint(999)
	_, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: "Ghost", ParentID: &missing})
	assert.ErrorIs(t, err, ErrInvalidParent)
}

func TestCreateCategory_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), &memLedger{})

	_, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: "Too much", Percentage: 100.5})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: "Negative", Percentage: -1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: strings.Repeat("长", 51)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateCategory_PredeterminedRules(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store, &memLedger{})
	_, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	savings := store.bySlug("savings")
	essentials := store.bySlug("essentials")

	rename := "Rainy Day"
	_, err = svc.UpdateCategory(ctx, savings.ID, UpdateCategoryInput{Name: &rename})
	assert.ErrorIs(t, err, ErrPredeterminedRename)

	slug := "rainy-day"
	_, err = svc.UpdateCategory(ctx, savings.ID, UpdateCategoryInput{Slug: &slug})
	assert.ErrorIs(t, err, ErrPredeterminedRename)

	_, err = svc.UpdateCategory(ctx, savings.ID, UpdateCategoryInput{ParentID: &essentials.ID})
	assert.ErrorIs(t, err, ErrPredeterminedReparent)

	// 名称不变、修改其他字段是允许的
	same := "Savings"
	pct := 22.5
	color := "#000000"
	updated, err := svc.UpdateCategory(ctx, savings.ID, UpdateCategoryInput{Name: &same, Percentage: &pct, Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "Savings", updated.Name)
	assert.Equal(t, "savings", updated.Slug)
	assert.Equal(t, 22.5, updated.Percentage)
	assert.Equal(t, "#000000", updated.Color)
}

func TestUpdateCategory_CustomCategory(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store, &memLedger{})

	a, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Hobbies"})
	require.NoError(t, err)
	b, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Pets"})
	require.NoError(t, err)

	name := "Crafts"
	moved, err := svc.UpdateCategory(ctx, a.ID, UpdateCategoryInput{Name: &name, ParentID: &b.ID})
	require.NoError(t, err)
	assert.Equal(t, "Crafts", moved.Name)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, b.ID, *moved.ParentID)

	// b 已有子类别，不能再成为子类别
	other, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Other"})
	require.NoError(t, err)
	_, err = svc.UpdateCategory(ctx, b.ID, UpdateCategoryInput{ParentID: &other.ID})
	assert.ErrorIs(t, err, ErrInvalidParent)

	// 自身不能作为上级
	_, err = svc.UpdateCategory(ctx, other.ID, UpdateCategoryInput{ParentID: &other.ID})
	assert.ErrorIs(t, err, ErrInvalidParent)

	// 0 表示移回一级
	top := uint(0)
	moved, err = svc.UpdateCategory(ctx, a.ID, UpdateCategoryInput{ParentID: &top})
	require.NoError(t, err)
	assert.Nil(t, moved.ParentID)

	// 标识冲突
	_, err = svc.UpdateCategory(ctx, a.ID, UpdateCategoryInput{Slug: &b.Slug})
	assert.ErrorIs(t, err, ErrSlugTaken)

	bad := 101.0
	_, err = svc.UpdateCategory(ctx, a.ID, UpdateCategoryInput{Percentage: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateCategory(ctx, 999, UpdateCategoryInput{Percentage: &bad})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUpdateCategory_NoChanges(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store, &memLedger{})
	a, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Hobbies"})
	require.NoError(t, err)

	got, err := svc.UpdateCategory(ctx, a.ID, UpdateCategoryInput{})
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, 0, store.updateCalls)
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store, &memLedger{})
	_, err := svc.ListCategories(ctx)
	require.NoError(t, err)

	// 预设类别一律不可删除，不论是否有子类别
	fun := store.bySlug("fun")
	assert.ErrorIs(t, svc.DeleteCategory(ctx, fun.ID), ErrPredeterminedDelete)
	sub, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Concerts", ParentID: &fun.ID})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteCategory(ctx, fun.ID), ErrPredeterminedDelete)

	parent, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Hobbies"})
	require.NoError(t, err)
	child, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Painting", ParentID: &parent.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, parent.ID), ErrHasSubcategories)
	require.NoError(t, svc.DeleteCategory(ctx, child.ID))
	require.NoError(t, svc.DeleteCategory(ctx, parent.ID))
	require.NoError(t, svc.DeleteCategory(ctx, sub.ID))

	assert.ErrorIs(t, svc.DeleteCategory(ctx, parent.ID), ErrCategoryNotFound)
}

func TestMutationsInvalidateCache(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store, &memLedger{})

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)

	_, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: "Gifts"})
	require.NoError(t, err)

	list, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 6)
	assert.Equal(t, 2, store.listCalls)
}

// scenarioStore 三个一级类别：essentials 50、savings 20、fun 10
func scenarioStore() *memStore {
	store := newMemStore()
	store.noSeed = true
	store.add(models.BudgetCategory{Name: "Essentials", Slug: "essentials", Percentage: 50, Order: 1, IsActive: true, IsPredetermined: true})
	store.add(models.BudgetCategory{Name: "Savings", Slug: "savings", Percentage: 20, Order: 2, IsActive: true, IsPredetermined: true})
	store.add(models.BudgetCategory{Name: "Fun", Slug: "fun", Percentage: 10, Order: 3, IsActive: true, IsPredetermined: true})
	return store
}

func dailyLedger() *memLedger {
	// 月收入 36500，折合每日 1200
	return &memLedger{income: &models.Income{Amount: 36500, Frequency: models.FrequencyMonthly, IsActive: true}}
}

func TestPreviewAllocation_Equal(t *testing.T) {
	ctx := context.Background()
	store := scenarioStore()
	svc := newTestService(store, dailyLedger())

	preview, err := svc.PreviewAllocation(ctx, AllocationRequest{Strategy: StrategyEqual})
	require.NoError(t, err)

	assert.Equal(t, 1200.0, preview.DailyIncome)
	assert.Equal(t, 80.0, preview.CurrentTotal)
	require.Len(t, preview.Changes, 3)
	assert.Equal(t, 56.67, preview.Changes[0].After)
	assert.Equal(t, 26.67, preview.Changes[1].After)
	assert.Equal(t, 16.67, preview.Changes[2].After)
	assert.Equal(t, 6.67, preview.Changes[0].Delta)
	assert.Equal(t, 600.0, preview.Changes[0].DailyBefore)
	assert.Equal(t, 680.04, preview.Changes[0].DailyAfter)
	assert.InDelta(t, 100.01, preview.ProposedTotal, 1e-9)
	assert.True(t, preview.OverBudget)

	// 预览不写入
	assert.Equal(t, 0, store.updateCalls)
}

func TestPreviewAllocation_CustomOverflowRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(scenarioStore(), dailyLedger())

	// 两个有限的大值相加会溢出为 +Inf
	_, err := svc.PreviewAllocation(ctx, AllocationRequest{
		Strategy: StrategyCustom,
		Custom:   map[uint]float64{1: 1.7e308, 2: 1.7e308},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPreviewAllocation_Empty(t *testing.T) {
	store := newMemStore()
	store.noSeed = true
	svc := newTestService(store, &memLedger{})

	_, err := svc.PreviewAllocation(context.Background(), AllocationRequest{Strategy: StrategyEqual})
	assert.ErrorIs(t, err, ErrNoCategories)
}

func TestApplyAllocation_Success(t *testing.T) {
	ctx := context.Background()
	store := scenarioStore()
	svc := newTestService(store, dailyLedger())

	// 先读入缓存，确认写入后缓存被清除
	_, err := svc.ListCategories(ctx)
	require.NoError(t, err)

	result, err := svc.ApplyAllocation(ctx, AllocationRequest{Strategy: StrategyRecommended})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, result.Applied)
	assert.Empty(t, result.Failed)

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, list[0].Percentage)
	assert.Equal(t, 20.0, list[1].Percentage)
	assert.Equal(t, 10.0, list[2].Percentage)
	assert.Equal(t, 2, store.listCalls)
}

func TestApplyAllocation_PartialFailure(t *testing.T) {
	ctx := context.Background()
	store := scenarioStore()
	store.failUpdate[2] = true
	svc := newTestService(store, dailyLedger())
	notifier := newRecordingNotifier()
	svc.SetNotifier(notifier)

	result, err := svc.ApplyAllocation(ctx, AllocationRequest{Strategy: StrategyEqual})
	require.Error(t, err)

	var applyErr *ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, []uint{2}, applyErr.Failed)
	assert.Contains(t, err.Error(), "类别 2")

	require.NotNil(t, result)
	assert.Equal(t, []uint{1, 3}, result.Applied)
	assert.Equal(t, "connection reset", result.Failed[2])

	// 已成功的更新不回滚
	c1, _ := store.Get(ctx, 1)
	c2, _ := store.Get(ctx, 2)
	assert.Equal(t, 56.67, c1.Percentage)
	assert.Equal(t, 20.0, c2.Percentage)

	select {
	case got := <-notifier.sent:
		assert.Same(t, result, got)
	case <-time.After(time.Second):
		t.Fatal("未发送分配失败通知")
	}
}

func TestApplyAllocation_SlowNotifierDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	store := scenarioStore()
	store.failUpdate[2] = true
	svc := newTestService(store, dailyLedger())
	notifier := newRecordingNotifier()
	notifier.release = make(chan struct{})
	svc.SetNotifier(notifier)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := svc.ApplyAllocation(ctx, AllocationRequest{Strategy: StrategyEqual})
		assert.Error(t, err)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("通知阻塞了分配请求")
	}

	close(notifier.release)
	select {
	case <-notifier.sent:
	case <-time.After(time.Second):
		t.Fatal("未发送分配失败通知")
	}
}

func TestApplyAllocation_CustomOutOfRangeRejectedOnWrite(t *testing.T) {
	ctx := context.Background()
	store := scenarioStore()
	svc := newTestService(store, dailyLedger())

	// 预览阶段不拦截越界值
	preview, err := svc.PreviewAllocation(ctx, AllocationRequest{
		Strategy: StrategyCustom,
		Custom:   map[uint]float64{1: 120, 3: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 120.0, preview.Changes[0].After)

	result, err := svc.ApplyAllocation(ctx, AllocationRequest{
		Strategy: StrategyCustom,
		Custom:   map[uint]float64{1: 120, 3: 5},
	})
	var applyErr *ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, []uint{1}, applyErr.Failed)
	assert.Equal(t, []uint{2, 3}, result.Applied)

	c3, _ := store.Get(ctx, 3)
	assert.Equal(t, 5.0, c3.Percentage)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	store := scenarioStore()
	ledger := dailyLedger()
	ledger.goals = []models.SavingsGoal{{Name: "Car", TargetAmount: 1000, CurrentAmount: 250}}
	ledger.debts = []models.Debt{{Name: "Card", CurrentBalance: 300}}
	svc := newTestService(store, ledger)

	sum, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, sum.DailyIncome)
	assert.Equal(t, 80.0, sum.TotalPercentage)
	assert.Equal(t, 960.0, sum.AllocatedDaily)
	assert.Equal(t, 240.0, sum.AvailableDaily)
	assert.Equal(t, 25.0, sum.SavingsProgress)
	assert.Equal(t, 300.0, sum.TotalDebt)
	require.Len(t, sum.Categories, 3)

	// 第二次读取命中看板缓存
	listCalls := store.listCalls
	_, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, listCalls, store.listCalls)
}

func TestNewSlug(t *testing.T) {
	s := newSlug("Travel & Leisure!")
	assert.True(t, strings.HasPrefix(s, "travel-and-leisure-"), s)
	assert.Len(t, s, len("travel-and-leisure-")+8)

	// 中文名称音译，不再退化为 category
	s = newSlug("旅行基金")
	assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*-[0-9a-f]{8}$`, s)
	assert.False(t, strings.HasPrefix(s, "category-"), s)

	s = newSlug("!!!")
	assert.True(t, strings.HasPrefix(s, "category-"), s)

	s = newSlug(strings.Repeat("budget ", 20))
	assert.LessOrEqual(t, len(s), 50+1+8)
	assert.NotContains(t, s, "--")

	assert.NotEqual(t, newSlug("Gifts"), newSlug("Gifts"))
}

func TestUpdateCategory_ReservedSlugRejected(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.noSeed = true
	svc := newTestService(store, &memLedger{})

	c, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Rent"})
	require.NoError(t, err)

	// 预设类别尚未补齐时也不能占用保留标识
	for _, reserved := range []string{"essentials", "Savings", " fun "} {
		_, err = svc.UpdateCategory(ctx, c.ID, UpdateCategoryInput{Slug: &reserved})
		assert.ErrorIs(t, err, ErrSlugTaken, reserved)
	}

	got, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, models.IsReservedSlug(got.Slug))
	assert.False(t, got.IsPredetermined)
}
