package api

import (
	"budget/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 看板处理器
type DashboardHandler struct {
	svc *service.BudgetService
}

func NewDashboardHandler(svc *service.BudgetService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get 获取看板
// @Summary 获取预算看板
// @Description 每日收入、各类别每日金额、储蓄目标进度和债务汇总
// @Tags 看板
// @Produce json
// @Success 200 {object} Response{data=service.DashboardSummary} "获取成功"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	sum, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		serviceError(c, err, "获取看板失败")
		return
	}
	Success(c, sum)
}
