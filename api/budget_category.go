package api

import (
	"math"
	"strconv"

	"budget/models"
	"budget/service"

	"github.com/gin-gonic/gin"
)

// BudgetCategoryHandler 预算类别处理器
type BudgetCategoryHandler struct {
	svc *service.BudgetService
}

func NewBudgetCategoryHandler(svc *service.BudgetService) *BudgetCategoryHandler {
	return &BudgetCategoryHandler{svc: svc}
}

type CreateCategoryRequest struct {
	Name       string  `json:"name" binding:"required" example:"旅行基金"`
	Percentage float64 `json:"percentage" example:"5"`
	Color      string  `json:"color" example:"#3b82f6"`
	Icon       string  `json:"icon" example:"✈️"`
	Order      int     `json:"order" example:"6"`
	ParentID   *uint   `json:"parent_id" example:"2"`
}

// UpdateCategoryRequest 未传的字段不修改，parent_id 传 0 表示移到一级
type UpdateCategoryRequest struct {
	Name       *string  `json:"name"`
	Slug       *string  `json:"slug"`
	Percentage *float64 `json:"percentage"`
	Color      *string  `json:"color"`
	Icon       *string  `json:"icon"`
	Order      *int     `json:"order"`
	IsActive   *bool    `json:"is_active"`
	ParentID   *uint    `json:"parent_id"`
}

// CategoryListResponse 类别树及占比汇总
type CategoryListResponse struct {
	Categories          []models.BudgetCategory `json:"categories"`
	TotalPercentage     float64                 `json:"total_percentage"`
	RemainingPercentage float64                 `json:"remaining_percentage"`
	OverBudget          bool                    `json:"over_budget"`
	Warning             string                  `json:"warning,omitempty"`
}

// List 获取类别树
// @Summary 获取预算类别
// @Description 返回有效类别组成的树，首次访问时自动创建预设类别
// @Tags 预算类别
// @Produce json
// @Success 200 {object} Response{data=CategoryListResponse} "获取成功"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/budget-categories [get]
func (h *BudgetCategoryHandler) List(c *gin.Context) {
	tree, err := h.svc.CategoryTree(c.Request.Context())
	if err != nil {
		serviceError(c, err, "获取类别失败")
		return
	}

	total := tree.TotalPercentage()
	resp := CategoryListResponse{
		Categories:          tree.Nested(),
		TotalPercentage:     math.Round(total*100) / 100,
		RemainingPercentage: math.Round((100-total)*100) / 100,
		OverBudget:          total > 100,
	}
	if resp.OverBudget {
		resp.Warning = "类别占比合计超过 100%"
	}
	Success(c, resp)
}

// Get 获取单个类别
// @Summary 获取单个类别
// @Tags 预算类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} Response{data=models.BudgetCategory} "获取成功"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/budget-categories/{id} [get]
func (h *BudgetCategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, err := h.svc.GetCategory(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err, "获取类别失败")
		return
	}
	Success(c, cat)
}

// Create 创建类别
// @Summary 创建预算类别
// @Description 创建自定义类别，指定 parent_id 时为子类别
// @Tags 预算类别
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "类别信息"
// @Success 200 {object} Response{data=models.BudgetCategory} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/budget-categories [post]
func (h *BudgetCategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	cat, err := h.svc.CreateCategory(c.Request.Context(), service.CreateCategoryInput{
		Name:       req.Name,
		Percentage: req.Percentage,
		Color:      req.Color,
		Icon:       req.Icon,
		Order:      req.Order,
		ParentID:   req.ParentID,
	})
	if err != nil {
		serviceError(c, err, "创建类别失败")
		return
	}
	SuccessWithMessage(c, "创建成功", cat)
}

// Update 更新类别
// @Summary 更新预算类别
// @Description 预设类别不可修改名称、标识和上级类别
// @Tags 预算类别
// @Accept json
// @Produce json
// @Param id path int true "类别ID"
// @Param request body UpdateCategoryRequest true "类别信息"
// @Success 200 {object} Response{data=models.BudgetCategory} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/budget-categories/{id} [put]
func (h *BudgetCategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	cat, err := h.svc.UpdateCategory(c.Request.Context(), id, service.UpdateCategoryInput{
		Name:       req.Name,
		Slug:       req.Slug,
		Percentage: req.Percentage,
		Color:      req.Color,
		Icon:       req.Icon,
		Order:      req.Order,
		IsActive:   req.IsActive,
		ParentID:   req.ParentID,
	})
	if err != nil {
		serviceError(c, err, "更新类别失败")
		return
	}
	SuccessWithMessage(c, "更新成功", cat)
}

// Delete 删除类别
// @Summary 删除预算类别
// @Description 预设类别和仍有子类别的类别不可删除
// @Tags 预算类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "不可删除"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/budget-categories/{id} [delete]
func (h *BudgetCategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		serviceError(c, err, "删除类别失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// parseID 解析路径中的 id，失败时已写入 400 响应
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}
