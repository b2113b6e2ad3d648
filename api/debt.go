package api

import (
	"time"

	"budget/cache"
	"budget/database"
	"budget/models"

	"github.com/gin-gonic/gin"
)

// DebtHandler 债务处理器
type DebtHandler struct {
	cache cache.Cache
}

func NewDebtHandler(c cache.Cache) *DebtHandler {
	return &DebtHandler{cache: c}
}

type CreateDebtRequest struct {
	Name               string   `json:"name" binding:"required,max=50" example:"信用卡"`
	PrincipalAmount    float64  `json:"principal_amount" binding:"required,gt=0" example:"20000"`
	CurrentBalance     *float64 `json:"current_balance" binding:"omitempty,gte=0" example:"15000"`
	InterestRate       float64  `json:"interest_rate" binding:"gte=0" example:"3.5"`
	RepaymentAmount    float64  `json:"repayment_amount" binding:"gte=0" example:"2000"`
	RepaymentFrequency string   `json:"repayment_frequency" binding:"omitempty,oneof=daily weekly monthly" example:"monthly"`
	StartDate          string   `json:"start_date" example:"2025-01-01"`
	DueDate            string   `json:"due_date" example:"2025-12-31"`
	Creditor           string   `json:"creditor" binding:"max=100"`
	Description        string   `json:"description" binding:"max=255"`
	Color              string   `json:"color" example:"#ef4444"`
}

type UpdateDebtRequest struct {
	Name               *string  `json:"name" binding:"omitempty,max=50"`
	CurrentBalance     *float64 `json:"current_balance" binding:"omitempty,gte=0"`
	InterestRate       *float64 `json:"interest_rate" binding:"omitempty,gte=0"`
	RepaymentAmount    *float64 `json:"repayment_amount" binding:"omitempty,gte=0"`
	RepaymentFrequency *string  `json:"repayment_frequency" binding:"omitempty,oneof=daily weekly monthly"`
	DueDate            *string  `json:"due_date"`
	Creditor           *string  `json:"creditor" binding:"omitempty,max=100"`
	Description        *string  `json:"description" binding:"omitempty,max=255"`
	Color              *string  `json:"color"`
	IsActive           *bool    `json:"is_active"`
}

// List 获取债务
// @Summary 获取债务列表
// @Tags 债务
// @Produce json
// @Success 200 {object} Response{data=[]models.Debt} "获取成功"
// @Router /api/v1/debts [get]
func (h *DebtHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	var list []models.Debt
	if h.cache.Get(ctx, cache.KeyDebts, &list) {
		Success(c, list)
		return
	}
	if err := database.DB.WithContext(ctx).Order("is_paid ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	h.cache.Set(ctx, cache.KeyDebts, list, cache.TTLMedium)
	Success(c, list)
}

// Create 创建债务
// @Summary 创建债务
// @Description 未传 current_balance 时等于本金，余额为 0 时标记为已还清
// @Tags 债务
// @Accept json
// @Produce json
// @Param request body CreateDebtRequest true "债务信息"
// @Success 200 {object} Response{data=models.Debt} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/debts [post]
func (h *DebtHandler) Create(c *gin.Context) {
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	debt := models.Debt{
		Name:               req.Name,
		PrincipalAmount:    req.PrincipalAmount,
		CurrentBalance:     req.PrincipalAmount,
		InterestRate:       req.InterestRate,
		RepaymentAmount:    req.RepaymentAmount,
		RepaymentFrequency: req.RepaymentFrequency,
		StartDate:          time.Now(),
		Creditor:           req.Creditor,
		Description:        req.Description,
		Color:              req.Color,
		IsActive:           true,
	}
	if req.CurrentBalance != nil {
		debt.CurrentBalance = *req.CurrentBalance
	}
	debt.IsPaid = debt.CurrentBalance <= 0
	if debt.RepaymentFrequency == "" {
		debt.RepaymentFrequency = models.FrequencyMonthly
	}
	if debt.Color == "" {
		debt.Color = "#ef4444"
	}
	if req.StartDate != "" {
		t, err := parseDate(req.StartDate)
		if err != nil {
			BadRequest(c, "开始日期格式错误，应为: 2006-01-02")
			return
		}
		debt.StartDate = t
	}
	if req.DueDate != "" {
		t, err := parseDate(req.DueDate)
		if err != nil {
			BadRequest(c, "到期日期格式错误，应为: 2006-01-02")
			return
		}
		debt.DueDate = &t
	}

	if err := database.DB.WithContext(c.Request.Context()).Create(&debt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建债务失败"))
		return
	}
	h.invalidate(c)
	SuccessWithMessage(c, "创建成功", debt)
}

// Update 更新债务
// @Summary 更新债务
// @Description 更新余额时同步已还清状态
// @Tags 债务
// @Accept json
// @Produce json
// @Param id path int true "债务ID"
// @Param request body UpdateDebtRequest true "债务信息"
// @Success 200 {object} Response{data=models.Debt} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/debts/{id} [put]
func (h *DebtHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var debt models.Debt
	if !loadRecord(c, &debt, id, "查询债务失败") {
		return
	}
	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CurrentBalance != nil {
		updates["current_balance"] = *req.CurrentBalance
		updates["is_paid"] = *req.CurrentBalance <= 0
	}
	if req.InterestRate != nil {
		updates["interest_rate"] = *req.InterestRate
	}
	if req.RepaymentAmount != nil {
		updates["repayment_amount"] = *req.RepaymentAmount
	}
	if req.RepaymentFrequency != nil {
		updates["repayment_frequency"] = *req.RepaymentFrequency
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			updates["due_date"] = nil
		} else {
			t, err := parseDate(*req.DueDate)
			if err != nil {
				BadRequest(c, "到期日期格式错误，应为: 2006-01-02")
				return
			}
			updates["due_date"] = t
		}
	}
	if req.Creditor != nil {
		updates["creditor"] = *req.Creditor
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		Success(c, debt)
		return
	}

	if err := database.DB.WithContext(c.Request.Context()).Model(&debt).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新债务失败"))
		return
	}
	h.invalidate(c)
	SuccessWithMessage(c, "更新成功", debt)
}

// Delete 删除债务
// @Summary 删除债务
// @Tags 债务
// @Produce json
// @Param id path int true "债务ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/debts/{id} [delete]
func (h *DebtHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := database.DB.WithContext(c.Request.Context()).Delete(&models.Debt{}, id)
	if res.Error != nil {
		InternalError(c, SafeErrorMessage(res.Error, "删除债务失败"))
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "记录不存在")
		return
	}
	h.invalidate(c)
	SuccessWithMessage(c, "删除成功", nil)
}

func (h *DebtHandler) invalidate(c *gin.Context) {
	h.cache.Clear(c.Request.Context(), cache.KeyDebts)
	h.cache.Clear(c.Request.Context(), cache.KeyDashboard)
}
