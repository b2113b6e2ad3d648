package api

import (
	"errors"
	"net/http"

	"budget/config"
	"budget/database"
	"budget/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// statusOf 业务错误对应的 HTTP 状态码，未知错误返回 500
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrPredeterminedRename),
		errors.Is(err, service.ErrPredeterminedReparent),
		errors.Is(err, service.ErrPredeterminedDelete),
		errors.Is(err, service.ErrHasSubcategories),
		errors.Is(err, service.ErrInvalidParent),
		errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrNoCategories),
		errors.Is(err, service.ErrUnknownStrategy):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// serviceError 按错误类型写响应，业务错误原样返回，内部错误脱敏
func serviceError(c *gin.Context, err error, fallback string) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		InternalError(c, SafeErrorMessage(err, fallback))
		return
	}
	Error(c, code, err.Error())
}

// loadRecord 按 ID 读取记录，不存在返回 404，数据库错误返回 500
func loadRecord(c *gin.Context, dest interface{}, id uint, fallback string) bool {
	err := database.DB.WithContext(c.Request.Context()).First(dest, id).Error
	if err == nil {
		return true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "记录不存在")
	} else {
		InternalError(c, SafeErrorMessage(err, fallback))
	}
	return false
}
