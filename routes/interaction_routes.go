package routes

import (
	"github.com/BerniceZTT/intimacy_crm/controllers"
	"github.com/BerniceZTT/intimacy_crm/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterInteractionRoutes 注册互动记录相关路由
func RegisterInteractionRoutes(router *gin.Engine) {
	interactionRoutes := router.Group("/api/interactions")
	interactionRoutes.Use(middleware.AuthMiddleware())

	// 获取某个客户的互动记录列表
	interactionRoutes.GET("/account/:accountId", controllers.GetAccountInteractions)

	// 创建互动记录（互动记录不可修改，没有更新路由）
	interactionRoutes.POST("/", controllers.CreateInteraction)

	// 删除互动记录
	interactionRoutes.DELETE("/:id", controllers.DeleteInteraction)
}
