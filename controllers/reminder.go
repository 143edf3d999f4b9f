package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/service"
	"github.com/SuperCup/pms-bd-process/utils"
)

// ReminderController 提醒规则接口
type ReminderController struct {
	store     *repository.Store
	scheduler *service.Scheduler
}

// NewReminderController 创建提醒规则接口
func NewReminderController(store *repository.Store, scheduler *service.Scheduler) *ReminderController {
	return &ReminderController{store: store, scheduler: scheduler}
}

// GetReminderRules 获取提醒规则列表
func (ctl *ReminderController) GetReminderRules(c *gin.Context) {
	utils.SuccessResponse(c, ctl.store.ListReminderRules(), "")
}

// GetReminderRule 获取提醒规则详情
func (ctl *ReminderController) GetReminderRule(c *gin.Context) {
	rule, err := ctl.store.GetReminderRule(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, rule, "")
}

// CreateReminderRule 创建提醒规则
func (ctl *ReminderController) CreateReminderRule(c *gin.Context) {
	var req models.ReminderRuleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}
	rule := ctl.store.CreateReminderRule(req)
	utils.SuccessResponse(c, rule, "创建提醒规则成功", http.StatusCreated)
}

// UpdateReminderRule 更新提醒规则
func (ctl *ReminderController) UpdateReminderRule(c *gin.Context) {
	var req models.ReminderRuleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}
	rule, err := ctl.store.UpdateReminderRule(c.Param("id"), req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, rule, "更新提醒规则成功")
}

// DeleteReminderRule 删除提醒规则，不存在时也返回成功
func (ctl *ReminderController) DeleteReminderRule(c *gin.Context) {
	ctl.store.DeleteReminderRule(c.Param("id"))
	utils.SuccessResponse(c, nil, "删除提醒规则成功")
}

// TriggerReminderRule 手动触发一条提醒规则，忽略周几限制
func (ctl *ReminderController) TriggerReminderRule(c *gin.Context) {
	count, err := ctl.scheduler.TriggerRule(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"reminders": count}, "提醒规则已触发")
}
