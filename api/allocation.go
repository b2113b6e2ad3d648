package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"budget/service"

	"github.com/gin-gonic/gin"
)

// AllocationHandler 预算分配处理器
type AllocationHandler struct {
	svc *service.BudgetService
}

func NewAllocationHandler(svc *service.BudgetService) *AllocationHandler {
	return &AllocationHandler{svc: svc}
}

// AllocationRequest custom 的键为类别ID
type AllocationRequest struct {
	Strategy string             `json:"strategy" binding:"required" example:"equal"`
	Custom   map[string]float64 `json:"custom,omitempty"`
}

func (r AllocationRequest) toService() (service.AllocationRequest, error) {
	st, err := service.ParseStrategy(r.Strategy)
	if err != nil {
		return service.AllocationRequest{}, err
	}
	req := service.AllocationRequest{Strategy: st}
	if len(r.Custom) > 0 {
		req.Custom = make(map[uint]float64, len(r.Custom))
		for k, v := range r.Custom {
			id, err := strconv.ParseUint(k, 10, 32)
			if err != nil {
				return service.AllocationRequest{}, fmt.Errorf("%w: 无效的类别ID %q", service.ErrValidation, k)
			}
			if err := service.ValidateCustomValue(uint(id), v); err != nil {
				return service.AllocationRequest{}, err
			}
			req.Custom[uint(id)] = v
		}
	}
	return req, nil
}

// Preview 预览分配结果
// @Summary 预览预算分配
// @Description 按策略（equal/proportional/recommended/custom）计算一级类别的新占比，不写入
// @Tags 预算分配
// @Accept json
// @Produce json
// @Param request body AllocationRequest true "分配策略"
// @Success 200 {object} Response{data=service.AllocationPreview} "计算成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/budget-categories/allocate/preview [post]
func (h *AllocationHandler) Preview(c *gin.Context) {
	req, ok := bindAllocation(c)
	if !ok {
		return
	}
	preview, err := h.svc.PreviewAllocation(c.Request.Context(), req)
	if err != nil {
		serviceError(c, err, "计算分配失败")
		return
	}
	Success(c, preview)
}

// Apply 写入分配结果
// @Summary 执行预算分配
// @Description 计算并写入一级类别占比，部分失败时已成功的更新不回滚
// @Tags 预算分配
// @Accept json
// @Produce json
// @Param request body AllocationRequest true "分配策略"
// @Success 200 {object} Response{data=service.ApplyResult} "分配成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 429 {object} Response "请求过于频繁"
// @Failure 500 {object} Response{data=service.ApplyResult} "部分类别更新失败"
// @Router /api/v1/budget-categories/allocate [post]
func (h *AllocationHandler) Apply(c *gin.Context) {
	req, ok := bindAllocation(c)
	if !ok {
		return
	}
	result, err := h.svc.ApplyAllocation(c.Request.Context(), req)
	if err != nil {
		var applyErr *service.ApplyError
		if errors.As(err, &applyErr) {
			ErrorWithData(c, http.StatusInternalServerError, applyErr.Error(), result)
			return
		}
		serviceError(c, err, "预算分配失败")
		return
	}
	SuccessWithMessage(c, "分配成功", result)
}

func bindAllocation(c *gin.Context) (service.AllocationRequest, bool) {
	var body AllocationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return service.AllocationRequest{}, false
	}
	req, err := body.toService()
	if err != nil {
		BadRequest(c, err.Error())
		return service.AllocationRequest{}, false
	}
	return req, true
}
