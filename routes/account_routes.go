package routes

import (
	"github.com/BerniceZTT/intimacy_crm/controllers"
	"github.com/BerniceZTT/intimacy_crm/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes 注册客户相关路由
func RegisterAccountRoutes(router *gin.Engine) {
	accountRoutes := router.Group("/api/accounts")
	accountRoutes.Use(middleware.AuthMiddleware())

	accountRoutes.GET("/", controllers.GetAccountList)
	accountRoutes.POST("/", controllers.CreateAccount)
	accountRoutes.GET("/:id", controllers.GetAccountDetail)
	accountRoutes.PUT("/:id", controllers.UpdateAccount)
	accountRoutes.DELETE("/:id", controllers.DeleteAccount)
}
