package models

// PMSCustomer PMS客户（关联引用）
type PMSCustomer struct {
	ID        string `json:"id"`
	ShortName string `json:"shortName"` // 简称
	FullName  string `json:"fullName"`  // 全称
}

// CustomerContact 客户联系人
// 同一客户下 departmentBrand 不允许重复（去除首尾空格后精确比较）
type CustomerContact struct {
	ID              string   `json:"id"`
	DepartmentBrand string   `json:"departmentBrand,omitempty"` // 部门/品牌
	Industry        string   `json:"industry,omitempty"`        // 行业
	DirectorManager string   `json:"directorManager,omitempty"` // 跟进客户总监/经理
	MainBusiness    []string `json:"mainBusiness,omitempty"`    // 主要业务（支持多选）
}

// Customer 客户
type Customer struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"` // 客户名称
	Code         string            `json:"code,omitempty"`
	IsKA         bool              `json:"isKA"` // 是否为KA客户
	PMSCustomer  *PMSCustomer      `json:"pmsCustomer,omitempty"`
	Contacts     []CustomerContact `json:"contacts,omitempty"` // 联系人列表，随客户删除
	Address      string            `json:"address,omitempty"`
	Follower     *User             `json:"follower,omitempty"`
	CustomerType CustomerType      `json:"customerType,omitempty"` // 重点/沉默/新客户
	MainVP       string            `json:"mainVP,omitempty"`       // 主要负责人（VP），弱引用用户ID
	CreateTime   string            `json:"createTime"`
	UpdateTime   string            `json:"updateTime"`
}

// CustomerFilter 客户列表筛选条件
type CustomerFilter struct {
	Keyword      string // 客户名称关键词，区分大小写的子串匹配
	IsKA         *bool
	MainVP       string
	CustomerType string
}

// CustomerCreateRequest 创建客户请求
type CustomerCreateRequest struct {
	Name         string            `json:"name" binding:"required"`
	Code         string            `json:"code"`
	IsKA         bool              `json:"isKA"`
	PMSCustomer  *PMSCustomer      `json:"pmsCustomer"`
	Contacts     []CustomerContact `json:"contacts"`
	Address      string            `json:"address"`
	Follower     *User             `json:"follower"`
	CustomerType CustomerType      `json:"customerType"`
	MainVP       string            `json:"mainVP"`
}

// CustomerUpdateRequest 更新客户请求，浅合并：nil字段表示保持不变
type CustomerUpdateRequest struct {
	Name         *string            `json:"name"`
	Code         *string            `json:"code"`
	IsKA         *bool              `json:"isKA"`
	PMSCustomer  *PMSCustomer       `json:"pmsCustomer"`
	Contacts     *[]CustomerContact `json:"contacts"`
	Address      *string            `json:"address"`
	Follower     *User              `json:"follower"`
	CustomerType *CustomerType      `json:"customerType"`
	MainVP       *string            `json:"mainVP"`
}

// ContactRequest 新增/编辑联系人请求
type ContactRequest struct {
	DepartmentBrand string   `json:"departmentBrand"`
	Industry        string   `json:"industry"`
	DirectorManager string   `json:"directorManager"`
	MainBusiness    []string `json:"mainBusiness"`
}

// LinkPMSRequest 关联PMS客户请求
type LinkPMSRequest struct {
	PMSCustomer *PMSCustomer `json:"pmsCustomer" binding:"required"`
}
