package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/controllers"
)

// RegisterUserRoutes 注册用户相关路由
func RegisterUserRoutes(router *gin.Engine, ctl *controllers.UserController) {
	userRoutes := router.Group("/api/users")

	userRoutes.GET("/", ctl.GetUserList)
	userRoutes.GET("/current", ctl.GetCurrentUser)
	userRoutes.GET("/:id", ctl.GetUserDetail)
}
