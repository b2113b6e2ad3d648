package service

import (
	"context"
	"fmt"

	"budget/cache"
	"budget/models"

	"github.com/shopspring/decimal"
)

// CategorySummary 看板中单个类别的金额
type CategorySummary struct {
	ID               uint              `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Color            string            `json:"color"`
	Icon             string            `json:"icon,omitempty"`
	Percentage       float64           `json:"percentage"`
	DailyAmount      float64           `json:"daily_amount"`
	TotalPercentage  float64           `json:"total_percentage"`
	TotalDailyAmount float64           `json:"total_daily_amount"`
	Subcategories    []CategorySummary `json:"subcategories,omitempty"`
}

// DashboardSummary 看板汇总
type DashboardSummary struct {
	Income              *models.Income       `json:"income"`
	DailyIncome         float64              `json:"daily_income"`
	TotalPercentage     float64              `json:"total_percentage"`
	RemainingPercentage float64              `json:"remaining_percentage"`
	OverBudget          bool                 `json:"over_budget"`
	AllocatedDaily      float64              `json:"allocated_daily"`
	AvailableDaily      float64              `json:"available_daily"`
	Categories          []CategorySummary    `json:"categories"`
	SavingsGoals        []models.SavingsGoal `json:"savings_goals"`
	TotalSavings        float64              `json:"total_savings"`
	TotalSavingsTarget  float64              `json:"total_savings_target"`
	SavingsProgress     float64              `json:"savings_progress"`
	Debts               []models.Debt        `json:"debts"`
	TotalDebt           float64              `json:"total_debt"`
	ActiveGoals         int                  `json:"active_goals"`
	CompletedGoals      int                  `json:"completed_goals"`
	ActiveDebts         int                  `json:"active_debts"`
}

// DailyIncomeOf 将收入折算为每日金额
// weekly 按 7 天，monthly 按 12/365
func DailyIncomeOf(in *models.Income) float64 {
	if in == nil || !in.IsActive {
		return 0
	}
	amount := decimal.NewFromFloat(in.Amount)
	var daily decimal.Decimal
	switch in.Frequency {
	case models.FrequencyDaily:
		daily = amount
	case models.FrequencyWeekly:
		daily = amount.Div(decimal.NewFromInt(7))
	case models.FrequencyMonthly:
		daily = amount.Mul(decimal.NewFromInt(12)).Div(decimal.NewFromInt(365))
	default:
		return 0
	}
	f, _ := daily.Float64()
	return f
}

// DailyIncome 当前有效收入折算的每日金额
func (s *BudgetService) DailyIncome(ctx context.Context) (float64, error) {
	in, err := s.ledger.ActiveIncome(ctx)
	if err != nil {
		return 0, fmt.Errorf("查询收入失败: %w", err)
	}
	return DailyIncomeOf(in), nil
}

// BuildSummary 计算看板数据
func BuildSummary(income *models.Income, categories []models.BudgetCategory, goals []models.SavingsGoal, debts []models.Debt) *DashboardSummary {
	daily := DailyIncomeOf(income)
	tree := NewCategoryTree(categories)
	total := tree.TotalPercentage()

	sum := &DashboardSummary{
		Income:              income,
		DailyIncome:         round2(daily),
		TotalPercentage:     round2(total),
		RemainingPercentage: round2(100 - total),
		OverBudget:          round2(total) > 100,
		AllocatedDaily:      amountOf(daily, total),
		AvailableDaily:      amountOf(daily, max(0, 100-total)),
		Categories:          []CategorySummary{},
		SavingsGoals:        goals,
		Debts:               debts,
	}
	if sum.SavingsGoals == nil {
		sum.SavingsGoals = []models.SavingsGoal{}
	}
	if sum.Debts == nil {
		sum.Debts = []models.Debt{}
	}

	for _, c := range tree.TopLevel() {
		row := categorySummaryOf(c, daily)
		for _, sub := range tree.Children(c.ID) {
			row.Subcategories = append(row.Subcategories, categorySummaryOf(sub, daily))
		}
		branch := tree.BranchPercentage(c.ID)
		row.TotalPercentage = round2(branch)
		row.TotalDailyAmount = amountOf(daily, branch)
		sum.Categories = append(sum.Categories, row)
	}

	saved, target := decimal.Zero, decimal.Zero
	for _, g := range goals {
		saved = saved.Add(decimal.NewFromFloat(g.CurrentAmount))
		target = target.Add(decimal.NewFromFloat(g.TargetAmount))
		if g.IsCompleted {
			sum.CompletedGoals++
		} else {
			sum.ActiveGoals++
		}
	}
	sum.TotalSavings, _ = saved.Round(2).Float64()
	sum.TotalSavingsTarget, _ = target.Round(2).Float64()
	if target.IsPositive() {
		sum.SavingsProgress, _ = saved.Div(target).Mul(hundred).Round(2).Float64()
	}

	owed := decimal.Zero
	for _, d := range debts {
		if d.IsPaid {
			continue
		}
		owed = owed.Add(decimal.NewFromFloat(d.CurrentBalance))
		sum.ActiveDebts++
	}
	sum.TotalDebt, _ = owed.Round(2).Float64()

	return sum
}

func categorySummaryOf(c models.BudgetCategory, daily float64) CategorySummary {
	return CategorySummary{
		ID:               c.ID,
		Name:             c.Name,
		Slug:             c.Slug,
		Color:            c.Color,
		Icon:             c.Icon,
		Percentage:       c.Percentage,
		DailyAmount:      amountOf(daily, c.Percentage),
		TotalPercentage:  c.Percentage,
		TotalDailyAmount: amountOf(daily, c.Percentage),
	}
}

// Dashboard 看板数据，带缓存
func (s *BudgetService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	var cached DashboardSummary
	if s.cache.Get(ctx, cache.KeyDashboard, &cached) {
		return &cached, nil
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	income, err := s.ledger.ActiveIncome(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询收入失败: %w", err)
	}
	goals, err := s.ledger.ActiveSavingsGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询储蓄目标失败: %w", err)
	}
	debts, err := s.ledger.ActiveDebts(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询债务失败: %w", err)
	}

	sum := BuildSummary(income, categories, goals, debts)
	s.cache.Set(ctx, cache.KeyDashboard, sum, cache.TTLMedium)
	return sum, nil
}
