package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/controllers"
)

// RegisterReminderRoutes 注册提醒规则相关路由
func RegisterReminderRoutes(router *gin.Engine, ctl *controllers.ReminderController) {
	reminderRoutes := router.Group("/api/reminder-rules")

	reminderRoutes.GET("/", ctl.GetReminderRules)
	reminderRoutes.POST("/", ctl.CreateReminderRule)
	reminderRoutes.GET("/:id", ctl.GetReminderRule)
	reminderRoutes.PUT("/:id", ctl.UpdateReminderRule)
	reminderRoutes.DELETE("/:id", ctl.DeleteReminderRule)
	reminderRoutes.POST("/:id/trigger", ctl.TriggerReminderRule)
}
