package service

import (
	"testing"

	"budget/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func treeFixture() []models.BudgetCategory {
	return []models.BudgetCategory{
		{ID: 1, Name: "Debts", Slug: "debts", Percentage: 5},
		{ID: 2, Name: "Essentials", Slug: "essentials", Percentage: 40},
		{ID: 3, Name: "Rent", Slug: "rent-aaaa", Percentage: 10, ParentID: uintPtr(2)},
		{ID: 4, Name: "Groceries", Slug: "groceries-bbbb", Percentage: 5, ParentID: uintPtr(2)},
		{ID: 5, Name: "Orphan", Slug: "orphan-cccc", Percentage: 3, ParentID: uintPtr(42)},
	}
}

func TestCategoryTree_Structure(t *testing.T) {
	tree := NewCategoryTree(treeFixture())

	top := tree.TopLevel()
	require.Len(t, top, 2)
	assert.Equal(t, uint(1), top[0].ID)
	assert.Equal(t, uint(2), top[1].ID)

	subs := tree.Children(2)
	require.Len(t, subs, 2)
	assert.Equal(t, "Rent", subs[0].Name)
	assert.Equal(t, "Groceries", subs[1].Name)
	assert.Empty(t, tree.Children(1))

	c, ok := tree.Get(5)
	assert.True(t, ok)
	assert.Equal(t, "Orphan", c.Name)
	assert.Equal(t, 5, tree.Len())
}

func TestCategoryTree_Percentages(t *testing.T) {
	tree := NewCategoryTree(treeFixture())

	// 孤立的子类别仍计入总占比
	assert.InDelta(t, 63, tree.TotalPercentage(), 1e-9)
	assert.InDelta(t, 55, tree.BranchPercentage(2), 1e-9)
	assert.InDelta(t, 5, tree.BranchPercentage(1), 1e-9)
}

func TestCategoryTree_Nested(t *testing.T) {
	tree := NewCategoryTree(treeFixture())
	nested := tree.Nested()

	require.Len(t, nested, 2)
	assert.Nil(t, nested[0].Subcategories)
	require.Len(t, nested[1].Subcategories, 2)
	assert.Equal(t, uint(3), nested[1].Subcategories[0].ID)

	// 不影响树内节点
	top := tree.TopLevel()
	assert.Nil(t, top[1].Subcategories)
}

func TestCategoryTree_AllocationInput(t *testing.T) {
	in := NewCategoryTree(treeFixture()).AllocationInput()
	assert.Equal(t, []AllocationCategory{
		{ID: 1, Percentage: 5, Slug: "debts"},
		{ID: 2, Percentage: 40, Slug: "essentials"},
	}, in)
}

func TestCategoryTree_SelfParentIgnored(t *testing.T) {
	tree := NewCategoryTree([]models.BudgetCategory{
		{ID: 7, Name: "Loop", ParentID: uintPtr(7), Percentage: 1},
	})
	assert.Empty(t, tree.TopLevel())
	assert.Empty(t, tree.Children(7))
	assert.InDelta(t, 1, tree.TotalPercentage(), 1e-9)
}
