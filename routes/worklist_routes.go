package routes

import (
	"github.com/BerniceZTT/intimacy_crm/controllers"
	"github.com/BerniceZTT/intimacy_crm/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterWorklistRoutes 注册工作清单相关路由
func RegisterWorklistRoutes(router *gin.Engine) {
	worklistRoutes := router.Group("/api/worklist")
	worklistRoutes.Use(middleware.AuthMiddleware())

	// 今日跟进清单
	worklistRoutes.GET("/", controllers.GetWorklist)

	// 本周跟进清单纯文本导出
	worklistRoutes.GET("/weekly-pack", controllers.GetWeeklyPack)
}
