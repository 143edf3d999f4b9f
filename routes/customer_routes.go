package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/controllers"
)

// RegisterCustomerRoutes 注册客户相关路由
func RegisterCustomerRoutes(router *gin.Engine, ctl *controllers.CustomerController) {
	customerRoutes := router.Group("/api/customers")

	customerRoutes.GET("/", ctl.GetCustomerList)
	customerRoutes.GET("/check-duplicate", ctl.CheckDuplicateCustomer)
	customerRoutes.POST("/", ctl.CreateCustomer)
	customerRoutes.GET("/:id", ctl.GetCustomerDetail)
	customerRoutes.PUT("/:id", ctl.UpdateCustomer)
	customerRoutes.DELETE("/:id", ctl.DeleteCustomer)
	customerRoutes.POST("/:id/link-pms", ctl.LinkPMSCustomer)
	customerRoutes.POST("/:id/contacts", ctl.AddContact)
	customerRoutes.PUT("/:id/contacts/:contactId", ctl.UpdateContact)
	customerRoutes.DELETE("/:id/contacts/:contactId", ctl.DeleteContact)
}
