package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/utils"
)

// UserController 用户接口
type UserController struct {
	store *repository.Store
}

// NewUserController 创建用户接口
func NewUserController(store *repository.Store) *UserController {
	return &UserController{store: store}
}

// GetUserList 获取用户列表，支持按BU和角色筛选
func (ctl *UserController) GetUserList(c *gin.Context) {
	bu := c.Query("bu")
	role := c.Query("role")

	users := make([]models.User, 0)
	for _, u := range ctl.store.ListUsers() {
		if bu != "" && u.BU != bu {
			continue
		}
		if role != "" && string(u.Role) != role {
			continue
		}
		users = append(users, u)
	}
	utils.SuccessResponse(c, users, "")
}

// GetUserDetail 获取用户详情
func (ctl *UserController) GetUserDetail(c *gin.Context) {
	user, err := ctl.store.GetUser(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, user, "")
}

// GetCurrentUser 获取当前用户
func (ctl *UserController) GetCurrentUser(c *gin.Context) {
	user, err := ctl.store.CurrentUser()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, user, "")
}
