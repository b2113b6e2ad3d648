package router

import (
	"time"

	"budget/api"
	"budget/cache"
	"budget/config"
	_ "budget/docs"
	"budget/middleware"
	"budget/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, svc *service.BudgetService, c cache.Cache) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition"},
		MaxAge:          12 * time.Hour,
	}))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 预算类别
		categoryHandler := api.NewBudgetCategoryHandler(svc)
		allocationHandler := api.NewAllocationHandler(svc)
		categories := v1.Group("/budget-categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.GET("/:id", categoryHandler.Get)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)

			categories.POST("/allocate/preview", allocationHandler.Preview)
			categories.POST("/allocate",
				middleware.RateLimit(cfg.Budget.ApplyRateLimit, cfg.Budget.ApplyRateWindow, "分配操作过于频繁，请稍后再试"),
				allocationHandler.Apply)
		}

		// 收入
		incomeHandler := api.NewIncomeHandler(c)
		incomes := v1.Group("/incomes")
		{
			incomes.GET("", incomeHandler.List)
			incomes.POST("", incomeHandler.Create)
			incomes.PUT("/:id", incomeHandler.Update)
			incomes.DELETE("/:id", incomeHandler.Delete)
		}

		// 储蓄目标
		goalHandler := api.NewSavingsGoalHandler(c)
		goals := v1.Group("/savings-goals")
		{
			goals.GET("", goalHandler.List)
			goals.POST("", goalHandler.Create)
			goals.PUT("/:id", goalHandler.Update)
			goals.DELETE("/:id", goalHandler.Delete)
		}

		// 债务
		debtHandler := api.NewDebtHandler(c)
		debts := v1.Group("/debts")
		{
			debts.GET("", debtHandler.List)
			debts.POST("", debtHandler.Create)
			debts.PUT("/:id", debtHandler.Update)
			debts.DELETE("/:id", debtHandler.Delete)
		}

		v1.GET("/dashboard", api.NewDashboardHandler(svc).Get)

		// 导出
		exportHandler := api.NewExportHandler(svc)
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
