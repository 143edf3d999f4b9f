package models

// UserRole 用户角色枚举
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"    // 管理员
	UserRoleManager  UserRole = "manager"  // 管理层
	UserRoleBusiness UserRole = "business" // 业务人员
	UserRoleViewer   UserRole = "viewer"   // 查看者
)

// User 用户类型
type User struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	BU   string   `json:"bu"` // 所属BU
	Role UserRole `json:"role"`
}

// Importance 事项重要程度枚举
type Importance string

const (
	ImportanceImportant     Importance = "important"      // 重要
	ImportanceVeryImportant Importance = "very-important" // 20万+非常重要
)

// OpportunityType 商机类型枚举
type OpportunityType string

const (
	TypeInvitation OpportunityType = "invitation" // 客户邀标
	TypeLead       OpportunityType = "lead"       // 线索获取
	TypePurchase   OpportunityType = "purchase"   // 采购入库
	TypeService    OpportunityType = "service"    // 服务介绍
)

// OpportunityStatus 商机状态枚举
type OpportunityStatus string

const (
	StatusLost           OpportunityStatus = "lost"            // 流失
	StatusWon            OpportunityStatus = "won"             // 中标
	StatusNotParticipate OpportunityStatus = "not-participate" // 不参标
	StatusInProgress     OpportunityStatus = "in-progress"     // 进行中
	StatusCompletedVisit OpportunityStatus = "completed-visit" // 完成拜访
)

// CustomerType 客户类型枚举
type CustomerType string

const (
	CustomerTypeKey    CustomerType = "key"    // 重点客户
	CustomerTypeSilent CustomerType = "silent" // 沉默客户
	CustomerTypeNew    CustomerType = "new"    // 新客户
)

// OptionItem 配置选项
type OptionItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OptionConfig 商机下拉选项配置，三个列表各自独立可编辑
type OptionConfig struct {
	Importance []OptionItem `json:"importance"` // 重要程度选项
	Status     []OptionItem `json:"status"`     // 状态选项
	Type       []OptionItem `json:"type"`       // 类型选项
}

// DefaultOptionConfig 内置默认选项配置
func DefaultOptionConfig() OptionConfig {
	return OptionConfig{
		Importance: []OptionItem{
			{Label: "重要", Value: "important"},
			{Label: "20万+非常重要", Value: "very-important"},
		},
		Status: []OptionItem{
			{Label: "流失", Value: "lost"},
			{Label: "中标", Value: "won"},
			{Label: "不参标", Value: "not-participate"},
			{Label: "进行中", Value: "in-progress"},
			{Label: "完成拜访", Value: "completed-visit"},
		},
		Type: []OptionItem{
			{Label: "客户邀标", Value: "invitation"},
			{Label: "线索获取", Value: "lead"},
			{Label: "采购入库", Value: "purchase"},
			{Label: "服务介绍", Value: "service"},
		},
	}
}

// LabelOf 按值查找选项文案，找不到时原样返回值
func (c OptionConfig) LabelOf(list []OptionItem, value string) string {
	for _, item := range list {
		if item.Value == value {
			return item.Label
		}
	}
	return value
}
