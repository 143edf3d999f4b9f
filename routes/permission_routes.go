package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/controllers"
)

// RegisterPermissionRoutes 注册权限相关路由
func RegisterPermissionRoutes(router *gin.Engine, ctl *controllers.PermissionController) {
	permissionRoutes := router.Group("/api/permissions")

	permissionRoutes.GET("/", ctl.GetPermissions)
	permissionRoutes.PUT("/", ctl.UpdatePermissions)
	permissionRoutes.GET("/fields/:role", ctl.GetFieldConfigs)
	permissionRoutes.PUT("/fields/:role", ctl.UpdateFieldConfigs)
}
