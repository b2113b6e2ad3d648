package api

import (
	"time"

	"budget/cache"
	"budget/database"
	"budget/models"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入处理器
type IncomeHandler struct {
	cache cache.Cache
}

func NewIncomeHandler(c cache.Cache) *IncomeHandler {
	return &IncomeHandler{cache: c}
}

type CreateIncomeRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0" example:"36500"`
	Frequency string  `json:"frequency" binding:"required,oneof=daily weekly monthly" example:"monthly"`
	StartDate string  `json:"start_date" example:"2025-01-01"`
	IsActive  *bool   `json:"is_active"`
}

type UpdateIncomeRequest struct {
	Amount    *float64 `json:"amount" binding:"omitempty,gt=0"`
	Frequency string   `json:"frequency" binding:"omitempty,oneof=daily weekly monthly"`
	StartDate string   `json:"start_date"`
	IsActive  *bool    `json:"is_active"`
}

// List 获取收入列表
// @Summary 获取收入列表
// @Description 按开始日期倒序返回所有收入，看板使用最近一条有效收入
// @Tags 收入
// @Produce json
// @Success 200 {object} Response{data=[]models.Income} "获取成功"
// @Router /api/v1/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	var list []models.Income
	if h.cache.Get(ctx, cache.KeyIncome, &list) {
		Success(c, list)
		return
	}
	if err := database.DB.WithContext(ctx).Order("start_date DESC, id DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	h.cache.Set(ctx, cache.KeyIncome, list, cache.TTLLong)
	Success(c, list)
}

// Create 创建收入
// @Summary 创建收入
// @Tags 收入
// @Accept json
// @Produce json
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 200 {object} Response{data=models.Income} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	start := time.Now()
	if req.StartDate != "" {
		t, err := parseDate(req.StartDate)
		if err != nil {
			BadRequest(c, "开始日期格式错误，应为: 2006-01-02")
			return
		}
		start = t
	}
	in := models.Income{
		Amount:    req.Amount,
		Frequency: req.Frequency,
		IsActive:  req.IsActive == nil || *req.IsActive,
		StartDate: start,
	}
	if err := database.DB.WithContext(c.Request.Context()).Create(&in).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收入失败"))
		return
	}
	h.invalidate(c)
	SuccessWithMessage(c, "创建成功", in)
}

// Update 更新收入
// @Summary 更新收入
// @Tags 收入
// @Accept json
// @Produce json
// @Param id path int true "收入ID"
// @Param request body UpdateIncomeRequest true "收入信息"
// @Success 200 {object} Response{data=models.Income} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/incomes/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in models.Income
	if !loadRecord(c, &in, id, "查询收入失败") {
		return
	}
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Frequency != "" {
		updates["frequency"] = req.Frequency
	}
	if req.StartDate != "" {
		t, err := parseDate(req.StartDate)
		if err != nil {
			BadRequest(c, "开始日期格式错误，应为: 2006-01-02")
			return
		}
		updates["start_date"] = t
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		Success(c, in)
		return
	}
	if err := database.DB.WithContext(c.Request.Context()).Model(&in).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新收入失败"))
		return
	}
	h.invalidate(c)
	SuccessWithMessage(c, "更新成功", in)
}

// Delete 删除收入
// @Summary 删除收入
// @Tags 收入
// @Produce json
// @Param id path int true "收入ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := database.DB.WithContext(c.Request.Context()).Delete(&models.Income{}, id)
	if res.Error != nil {
		InternalError(c, SafeErrorMessage(res.Error, "删除收入失败"))
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "记录不存在")
		return
	}
	h.invalidate(c)
	SuccessWithMessage(c, "删除成功", nil)
}

// 收入变化影响看板的每日金额
func (h *IncomeHandler) invalidate(c *gin.Context) {
	h.cache.Clear(c.Request.Context(), cache.KeyIncome)
	h.cache.Clear(c.Request.Context(), cache.KeyDashboard)
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
