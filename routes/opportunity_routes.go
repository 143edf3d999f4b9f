package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/controllers"
)

// RegisterOpportunityRoutes 注册商机相关路由
func RegisterOpportunityRoutes(router *gin.Engine, ctl *controllers.OpportunityController) {
	opportunityRoutes := router.Group("/api/opportunities")

	opportunityRoutes.GET("/", ctl.GetOpportunityList)
	opportunityRoutes.GET("/export", ctl.ExportOpportunities)
	opportunityRoutes.POST("/", ctl.CreateOpportunity)
	opportunityRoutes.GET("/:id", ctl.GetOpportunityDetail)
	opportunityRoutes.PUT("/:id", ctl.UpdateOpportunity)
	opportunityRoutes.DELETE("/:id", ctl.DeleteOpportunity)
	opportunityRoutes.GET("/:id/progress", ctl.GetProgressRecords)
	opportunityRoutes.POST("/:id/progress", ctl.AddProgressRecord)
}
