package service

import "budget/models"

// CategoryTree 以 ID 索引的类别集合，附带父子索引
// 父类别不在集合内的类别既不是一级类别也不是子类别，但仍计入总占比
type CategoryTree struct {
	nodes    map[uint]models.BudgetCategory
	children map[uint][]uint
	roots    []uint
	order    []uint
}

// NewCategoryTree 构建类别树，保持入参顺序
func NewCategoryTree(categories []models.BudgetCategory) *CategoryTree {
	t := &CategoryTree{
		nodes:    make(map[uint]models.BudgetCategory, len(categories)),
		children: make(map[uint][]uint),
	}
	for _, c := range categories {
		c.Subcategories = nil
		if _, dup := t.nodes[c.ID]; !dup {
			t.order = append(t.order, c.ID)
		}
		t.nodes[c.ID] = c
	}
	for _, id := range t.order {
		c := t.nodes[id]
		if c.ParentID == nil {
			t.roots = append(t.roots, id)
			continue
		}
		if _, ok := t.nodes[*c.ParentID]; ok && *c.ParentID != id {
			t.children[*c.ParentID] = append(t.children[*c.ParentID], id)
		}
	}
	return t
}

// Len 类别总数
func (t *CategoryTree) Len() int {
	return len(t.order)
}

// Get 按 ID 获取类别
func (t *CategoryTree) Get(id uint) (models.BudgetCategory, bool) {
	c, ok := t.nodes[id]
	return c, ok
}

// TopLevel 一级类别
func (t *CategoryTree) TopLevel() []models.BudgetCategory {
	out := make([]models.BudgetCategory, 0, len(t.roots))
	for _, id := range t.roots {
		out = append(out, t.nodes[id])
	}
	return out
}

// Children 子类别
func (t *CategoryTree) Children(id uint) []models.BudgetCategory {
	ids := t.children[id]
	out := make([]models.BudgetCategory, 0, len(ids))
	for _, cid := range ids {
		out = append(out, t.nodes[cid])
	}
	return out
}

// TotalPercentage 所有类别占比之和
func (t *CategoryTree) TotalPercentage() float64 {
	total := 0.0
	for _, id := range t.order {
		total += t.nodes[id].Percentage
	}
	return total
}

// BranchPercentage 一级类别及其子类别的占比之和
func (t *CategoryTree) BranchPercentage(id uint) float64 {
	total := t.nodes[id].Percentage
	for _, cid := range t.children[id] {
		total += t.nodes[cid].Percentage
	}
	return total
}

// Nested 返回一级类别，并填充 Subcategories
func (t *CategoryTree) Nested() []models.BudgetCategory {
	out := t.TopLevel()
	for i := range out {
		if subs := t.Children(out[i].ID); len(subs) > 0 {
			out[i].Subcategories = subs
		}
	}
	return out
}

// AllocationInput 一级类别转换为分配引擎的输入
func (t *CategoryTree) AllocationInput() []AllocationCategory {
	out := make([]AllocationCategory, 0, len(t.roots))
	for _, id := range t.roots {
		c := t.nodes[id]
		out = append(out, AllocationCategory{ID: c.ID, Percentage: c.Percentage, Slug: c.Slug})
	}
	return out
}
