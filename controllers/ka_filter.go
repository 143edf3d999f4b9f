package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/service"
	"github.com/SuperCup/pms-bd-process/utils"
)

// KAFilterController KA看板可见性配置接口
type KAFilterController struct {
	blobs *repository.BlobStore
}

// NewKAFilterController 创建KA筛选配置接口
func NewKAFilterController(blobs *repository.BlobStore) *KAFilterController {
	return &KAFilterController{blobs: blobs}
}

// GetKAFilterConfig 读取KA筛选配置，未配置时返回null（等价展示全部）
func (ctl *KAFilterController) GetKAFilterConfig(c *gin.Context) {
	utils.SuccessResponse(c, service.LoadKAFilterConfig(ctl.blobs), "")
}

// SaveKAFilterConfig 保存KA筛选配置
func (ctl *KAFilterController) SaveKAFilterConfig(c *gin.Context) {
	var cfg models.KAFilterConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}
	if err := service.SaveKAFilterConfig(ctl.blobs, cfg); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, cfg, "保存KA筛选配置成功")
}

// ResetKAFilterConfig 重置为展示全部
func (ctl *KAFilterController) ResetKAFilterConfig(c *gin.Context) {
	if err := service.ResetKAFilterConfig(ctl.blobs); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, nil, "已重置KA筛选配置")
}
