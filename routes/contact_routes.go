package routes

import (
	"github.com/BerniceZTT/intimacy_crm/controllers"
	"github.com/BerniceZTT/intimacy_crm/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterContactRoutes 注册联系人相关路由
func RegisterContactRoutes(router *gin.Engine) {
	contactRoutes := router.Group("/api/contacts")
	contactRoutes.Use(middleware.AuthMiddleware())

	// 获取某个客户的联系人列表
	contactRoutes.GET("/account/:accountId", controllers.GetAccountContacts)

	// 创建联系人
	contactRoutes.POST("/", controllers.CreateContact)

	// 更新联系人
	contactRoutes.PUT("/:id", controllers.UpdateContact)

	// 删除联系人
	contactRoutes.DELETE("/:id", controllers.DeleteContact)
}
