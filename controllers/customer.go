package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/service"
	"github.com/SuperCup/pms-bd-process/utils"
)

// CustomerController 客户接口
type CustomerController struct {
	store *repository.Store
}

// NewCustomerController 创建客户接口
func NewCustomerController(store *repository.Store) *CustomerController {
	return &CustomerController{store: store}
}

// GetCustomerList 获取客户列表
func (ctl *CustomerController) GetCustomerList(c *gin.Context) {
	filter := models.CustomerFilter{
		Keyword:      c.Query("keyword"),
		MainVP:       c.Query("mainVP"),
		CustomerType: c.Query("customerType"),
	}
	if isKA := c.Query("isKA"); isKA != "" {
		v := isKA == "true"
		filter.IsKA = &v
	}

	page := parsePage(c).Normalize()
	result, err := service.QueryCustomers(
		ctl.store.ListCustomers(), filter,
		c.Query("sortField"), c.Query("sortOrder"), page,
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Items, result.Total, page.Page, page.PageSize)
}

// GetCustomerDetail 获取客户详情
func (ctl *CustomerController) GetCustomerDetail(c *gin.Context) {
	customer, err := ctl.store.GetCustomer(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, customer, "")
}

// CreateCustomer 创建客户
// 名称重复只提示不阻断：重复时照常创建，响应中附带提示
func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var req models.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}

	var warning string
	if ctl.store.CustomerNameExists(req.Name, "") {
		warning = "已存在同名客户: " + req.Name
		utils.LogInfo(map[string]interface{}{"name": req.Name}, "客户名称重复，继续创建")
	}

	customer, err := ctl.store.CreateCustomer(req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	response := gin.H{"success": true, "data": customer}
	if warning != "" {
		response["duplicateWarning"] = warning
	}
	c.JSON(http.StatusCreated, response)
}

// UpdateCustomer 更新客户
func (ctl *CustomerController) UpdateCustomer(c *gin.Context) {
	var req models.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}

	customer, err := ctl.store.UpdateCustomer(c.Param("id"), req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, customer, "更新客户成功")
}

// DeleteCustomer 删除客户，不存在时也返回成功
func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	ctl.store.DeleteCustomer(c.Param("id"))
	utils.SuccessResponse(c, nil, "删除客户成功")
}

// CheckDuplicateCustomer 客户名称去重检查
func (ctl *CustomerController) CheckDuplicateCustomer(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.HandleError(c, utils.CreateBadRequestError("缺少客户名称参数"))
		return
	}
	exists := ctl.store.CustomerNameExists(name, c.Query("excludeId"))
	utils.SuccessResponse(c, gin.H{"exists": exists}, "")
}

// LinkPMSCustomer 关联PMS客户
func (ctl *CustomerController) LinkPMSCustomer(c *gin.Context) {
	var req models.LinkPMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}

	customer, err := ctl.store.LinkPMSCustomer(c.Param("id"), req.PMSCustomer)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, customer, "关联PMS客户成功")
}

// AddContact 新增联系人
func (ctl *CustomerController) AddContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}

	customer, err := ctl.store.AddCustomerContact(c.Param("id"), req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, customer, "新增联系人成功", http.StatusCreated)
}

// UpdateContact 编辑联系人
func (ctl *CustomerController) UpdateContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}

	customer, err := ctl.store.UpdateCustomerContact(c.Param("id"), c.Param("contactId"), req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, customer, "更新联系人成功")
}

// DeleteContact 删除联系人
func (ctl *CustomerController) DeleteContact(c *gin.Context) {
	if err := ctl.store.DeleteCustomerContact(c.Param("id"), c.Param("contactId")); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, nil, "删除联系人成功")
}

// parsePage 解析分页参数，非法值由引擎回退到默认
func parsePage(c *gin.Context) service.PageRequest {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	return service.PageRequest{Page: page, PageSize: pageSize}
}
