package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/controllers"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/service"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, store *repository.Store, blobs *repository.BlobStore, scheduler *service.Scheduler) {
	RegisterCustomerRoutes(router, controllers.NewCustomerController(store))
	RegisterOpportunityRoutes(router, controllers.NewOpportunityController(store, blobs))
	RegisterBoardRoutes(router, controllers.NewBoardController(store, blobs))
	RegisterUserRoutes(router, controllers.NewUserController(store))
	RegisterConfigRoutes(router,
		controllers.NewOptionConfigController(blobs),
		controllers.NewKAFilterController(blobs),
	)
	RegisterPermissionRoutes(router, controllers.NewPermissionController(store))
	RegisterReminderRoutes(router, controllers.NewReminderController(store, scheduler))

	// 健康检查路由
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
