package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/utils"
)

// PermissionController 角色权限与字段配置接口
type PermissionController struct {
	store *repository.Store
}

// NewPermissionController 创建权限接口
func NewPermissionController(store *repository.Store) *PermissionController {
	return &PermissionController{store: store}
}

// GetPermissions 获取全部角色权限配置
func (ctl *PermissionController) GetPermissions(c *gin.Context) {
	utils.SuccessResponse(c, ctl.store.ListPermissions(), "")
}

// UpdatePermissions 整体替换角色权限配置
func (ctl *PermissionController) UpdatePermissions(c *gin.Context) {
	var perms []models.Permission
	if err := c.ShouldBindJSON(&perms); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}
	ctl.store.ReplacePermissions(perms)
	utils.SuccessResponse(c, perms, "更新权限配置成功")
}

// GetFieldConfigs 获取指定角色的字段配置
func (ctl *PermissionController) GetFieldConfigs(c *gin.Context) {
	role := models.UserRole(c.Param("role"))
	configs := ctl.store.GetFieldConfigs(role)
	if configs == nil {
		configs = []models.FieldConfig{}
	}
	utils.SuccessResponse(c, configs, "")
}

// UpdateFieldConfigs 更新指定角色的字段配置
func (ctl *PermissionController) UpdateFieldConfigs(c *gin.Context) {
	var configs []models.FieldConfig
	if err := c.ShouldBindJSON(&configs); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}
	if err := ctl.store.UpdateFieldConfigs(models.UserRole(c.Param("role")), configs); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, configs, "更新字段配置成功")
}
