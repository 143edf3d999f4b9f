package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/service"
	"github.com/SuperCup/pms-bd-process/utils"
)

// OptionConfigController 商机选项配置接口
type OptionConfigController struct {
	blobs *repository.BlobStore
}

// NewOptionConfigController 创建选项配置接口
func NewOptionConfigController(blobs *repository.BlobStore) *OptionConfigController {
	return &OptionConfigController{blobs: blobs}
}

// GetOptionConfig 读取生效的选项配置，缺失字段回退内置默认
func (ctl *OptionConfigController) GetOptionConfig(c *gin.Context) {
	utils.SuccessResponse(c, service.EffectiveOptionConfig(ctl.blobs), "")
}

// SaveOptionConfig 保存选项配置
func (ctl *OptionConfigController) SaveOptionConfig(c *gin.Context) {
	var cfg models.OptionConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}
	if err := service.SaveOptionConfig(ctl.blobs, cfg); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, cfg, "保存选项配置成功")
}
