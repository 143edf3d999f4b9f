package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/controllers"
)

// RegisterBoardRoutes 注册看板相关路由
func RegisterBoardRoutes(router *gin.Engine, ctl *controllers.BoardController) {
	boardRoutes := router.Group("/api/boards")

	boardRoutes.GET("/ka", ctl.GetKABoard)
	boardRoutes.GET("/last-week", ctl.GetLastWeekBoard)
}
