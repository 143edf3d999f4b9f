package models

// FieldConfig 字段级权限配置
type FieldConfig struct {
	FieldName   string   `json:"fieldName"`
	DisplayName string   `json:"displayName"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"` // 预选项
	Visible     bool     `json:"visible"`
	Editable    bool     `json:"editable"`
}

// Permission 角色权限配置
type Permission struct {
	Role         UserRole      `json:"role"`
	Permissions  []string      `json:"permissions"`
	FieldConfigs []FieldConfig `json:"fieldConfigs"`
}
