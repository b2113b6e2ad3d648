package service

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// AllocationRequest 分配请求
type AllocationRequest struct {
	Strategy Strategy
	Custom   map[uint]float64
}

// AllocationChange 单个一级类别分配前后的对比
type AllocationChange struct {
	CategoryID  uint    `json:"category_id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Color       string  `json:"color"`
	Before      float64 `json:"before"`
	After       float64 `json:"after"`
	Delta       float64 `json:"delta"`
	DailyBefore float64 `json:"daily_before"`
	DailyAfter  float64 `json:"daily_after"`
}

// AllocationPreview 分配预览，确认后才写入
type AllocationPreview struct {
	Strategy      Strategy           `json:"strategy"`
	DailyIncome   float64            `json:"daily_income"`
	CurrentTotal  float64            `json:"current_total"`
	ProposedTotal float64            `json:"proposed_total"`
	Remaining     float64            `json:"remaining"`
	OverBudget    bool               `json:"over_budget"`
	Changes       []AllocationChange `json:"changes"`
}

// ApplyResult 分配写入结果
type ApplyResult struct {
	Preview *AllocationPreview `json:"preview"`
	Applied []uint             `json:"applied"`
	Failed  map[uint]string    `json:"failed,omitempty"`
}

// ApplyError 部分类别更新失败，已成功的更新不回滚
type ApplyError struct {
	Failed []uint
}

func (e *ApplyError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for _, id := range e.Failed {
		ids = append(ids, fmt.Sprintf("%d", id))
	}
	return fmt.Sprintf("预算分配失败: 类别 %s 更新失败，请重试", strings.Join(ids, ", "))
}

// PreviewAllocation 计算分配预览，不写入
func (s *BudgetService) PreviewAllocation(ctx context.Context, req AllocationRequest) (*AllocationPreview, error) {
	tree, err := s.CategoryTree(ctx)
	if err != nil {
		return nil, err
	}
	daily, err := s.DailyIncome(ctx)
	if err != nil {
		return nil, err
	}

	currentTotal := tree.TotalPercentage()
	input := tree.AllocationInput()
	alloc, err := Allocate(input, currentTotal, req.Strategy, req.Custom)
	if err != nil {
		return nil, err
	}

	preview := &AllocationPreview{
		Strategy:     req.Strategy,
		DailyIncome:  round2(daily),
		CurrentTotal: round2(currentTotal),
	}
	proposed := currentTotal
	for _, c := range tree.TopLevel() {
		after := round2(alloc[c.ID])
		proposed += after - c.Percentage
		preview.Changes = append(preview.Changes, AllocationChange{
			CategoryID:  c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Color:       c.Color,
			Before:      c.Percentage,
			After:       after,
			Delta:       round2(after - c.Percentage),
			DailyBefore: amountOf(daily, c.Percentage),
			DailyAfter:  amountOf(daily, after),
		})
	}
	preview.ProposedTotal = round2(proposed)
	preview.Remaining = round2(100 - proposed)
	preview.OverBudget = preview.ProposedTotal > 100
	return preview, nil
}

// ApplyAllocation 计算并写入分配结果
// 每个类别独立更新，并发执行，不保证原子性；部分失败时返回 *ApplyError
func (s *BudgetService) ApplyAllocation(ctx context.Context, req AllocationRequest) (*ApplyResult, error) {
	preview, err := s.PreviewAllocation(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &ApplyResult{Preview: preview}
	var mu sync.Mutex
	failed := map[uint]string{}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, ch := range preview.Changes {
		g.Go(func() error {
			err := s.applyOne(ctx, ch)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[ch.CategoryID] = err.Error()
				return err
			}
			result.Applied = append(result.Applied, ch.CategoryID)
			return nil
		})
	}
	// 失败明细已记录在 failed 中
	_ = g.Wait()

	s.Invalidate(ctx)
	slices.Sort(result.Applied)

	if len(failed) == 0 {
		return result, nil
	}

	result.Failed = failed
	applyErr := &ApplyError{}
	for id := range failed {
		applyErr.Failed = append(applyErr.Failed, id)
	}
	slices.Sort(applyErr.Failed)
	log.Printf("预算分配部分失败: 成功 %d 个，失败 %v", len(result.Applied), applyErr.Failed)

	// 通知异步发送，不阻塞请求
	if n := s.notifier; n != nil {
		go func() {
			if err := n.NotifyAllocationFailure(result); err != nil {
				log.Printf("警告: 发送分配失败通知失败: %v", err)
			}
		}()
	}
	return result, applyErr
}

func (s *BudgetService) applyOne(ctx context.Context, ch AllocationChange) error {
	if err := validatePercentage(ch.After); err != nil {
		return err
	}
	return s.store.Update(ctx, ch.CategoryID, map[string]interface{}{"percentage": ch.After})
}
