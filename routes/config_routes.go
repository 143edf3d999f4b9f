package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/controllers"
)

// RegisterConfigRoutes 注册配置相关路由
func RegisterConfigRoutes(router *gin.Engine, optionCtl *controllers.OptionConfigController, kaCtl *controllers.KAFilterController) {
	configRoutes := router.Group("/api/config")

	configRoutes.GET("/options", optionCtl.GetOptionConfig)
	configRoutes.POST("/options", optionCtl.SaveOptionConfig)

	configRoutes.GET("/ka-filter", kaCtl.GetKAFilterConfig)
	configRoutes.POST("/ka-filter", kaCtl.SaveKAFilterConfig)
	configRoutes.POST("/ka-filter/reset", kaCtl.ResetKAFilterConfig)
}
