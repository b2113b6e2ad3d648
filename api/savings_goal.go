package api

import (
	"budget/cache"
	"budget/database"
	"budget/models"

	"github.com/gin-gonic/gin"
)

// SavingsGoalHandler 储蓄目标处理器
type SavingsGoalHandler struct {
	cache cache.Cache
}

func NewSavingsGoalHandler(c cache.Cache) *SavingsGoalHandler {
	return &SavingsGoalHandler{cache: c}
}

type CreateSavingsGoalRequest struct {
	Name          string  `json:"name" binding:"required,max=50" example:"应急基金"`
	TargetAmount  float64 `json:"target_amount" binding:"required,gt=0" example:"50000"`
	CurrentAmount float64 `json:"current_amount" binding:"gte=0" example:"12000"`
	Description   string  `json:"description" binding:"max=255"`
	TargetDate    string  `json:"target_date" example:"2025-12-31"`
	Color         string  `json:"color" example:"#10b981"`
	Icon          string  `json:"icon"`
	Order         int     `json:"order"`
}

type UpdateSavingsGoalRequest struct {
	Name          *string  `json:"name" binding:"omitempty,max=50"`
	TargetAmount  *float64 `json:"target_amount" binding:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"current_amount" binding:"omitempty,gte=0"`
	Description   *string  `json:"description" binding:"omitempty,max=255"`
	TargetDate    *string  `json:"target_date"`
	Color         *string  `json:"color"`
	Icon          *string  `json:"icon"`
	Order         *int     `json:"order"`
	IsActive      *bool    `json:"is_active"`
}

// List 获取储蓄目标
// @Summary 获取储蓄目标
// @Tags 储蓄目标
// @Produce json
// @Success 200 {object} Response{data=[]models.SavingsGoal} "获取成功"
// @Router /api/v1/savings-goals [get]
func (h *SavingsGoalHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	var list []models.SavingsGoal
	if h.cache.Get(ctx, cache.KeySavings, &list) {
		Success(c, list)
		return
	}
	if err := database.DB.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	h.cache.Set(ctx, cache.KeySavings, list, cache.TTLMedium)
	Success(c, list)
}

// Create 创建储蓄目标
// @Summary 创建储蓄目标
// @Description 当前金额达到目标金额时自动标记为已完成
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param request body CreateSavingsGoalRequest true "储蓄目标"
// @Success 200 {object} Response{data=models.SavingsGoal} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/savings-goals [post]
func (h *SavingsGoalHandler) Create(c *gin.Context) {
	var req CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	goal := models.SavingsGoal{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Description:   req.Description,
		Color:         req.Color,
		Icon:          req.Icon,
		Order:         req.Order,
		IsActive:      true,
		IsCompleted:   req.CurrentAmount >= req.TargetAmount,
	}
	if goal.Color == "" {
		goal.Color = "#10b981"
	}
	if req.TargetDate != "" {
		t, err := parseDate(req.TargetDate)
		if err != nil {
			BadRequest(c, "目标日期格式错误，应为: 2006-01-02")
			return
		}
		goal.TargetDate = &t
	}
	if err := database.DB.WithContext(c.Request.Context()).Create(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建储蓄目标失败"))
		return
	}
	h.invalidate(c)
	SuccessWithMessage(c, "创建成功", goal)
}

// Update 更新储蓄目标
// @Summary 更新储蓄目标
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param id path int true "储蓄目标ID"
// @Param request body UpdateSavingsGoalRequest true "储蓄目标"
// @Success 200 {object} Response{data=models.SavingsGoal} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/savings-goals/{id} [put]
func (h *SavingsGoalHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var goal models.SavingsGoal
	if !loadRecord(c, &goal, id, "查询储蓄目标失败") {
		return
	}
	var req UpdateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Order != nil {
		updates["sort_order"] = *req.Order
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.TargetDate != nil {
		if *req.TargetDate == "" {
			updates["target_date"] = nil
		} else {
			t, err := parseDate(*req.TargetDate)
			if err != nil {
				BadRequest(c, "目标日期格式错误，应为: 2006-01-02")
				return
			}
			updates["target_date"] = t
		}
	}
	target, current := goal.TargetAmount, goal.CurrentAmount
	if req.TargetAmount != nil {
		target = *req.TargetAmount
		updates["target_amount"] = target
	}
	if req.CurrentAmount != nil {
		current = *req.CurrentAmount
		updates["current_amount"] = current
	}
	if len(updates) == 0 {
		Success(c, goal)
		return
	}
	updates["is_completed"] = current >= target

	if err := database.DB.WithContext(c.Request.Context()).Model(&goal).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新储蓄目标失败"))
		return
	}
	h.invalidate(c)
	SuccessWithMessage(c, "更新成功", goal)
}

// Delete 删除储蓄目标
// @Summary 删除储蓄目标
// @Tags 储蓄目标
// @Produce json
// @Param id path int true "储蓄目标ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/savings-goals/{id} [delete]
func (h *SavingsGoalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := database.DB.WithContext(c.Request.Context()).Delete(&models.SavingsGoal{}, id)
	if res.Error != nil {
		InternalError(c, SafeErrorMessage(res.Error, "删除储蓄目标失败"))
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "记录不存在")
		return
	}
	h.invalidate(c)
	SuccessWithMessage(c, "删除成功", nil)
}

func (h *SavingsGoalHandler) invalidate(c *gin.Context) {
	h.cache.Clear(c.Request.Context(), cache.KeySavings)
	h.cache.Clear(c.Request.Context(), cache.KeyDashboard)
}

