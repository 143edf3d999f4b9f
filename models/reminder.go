package models

// ReminderRule 提醒规则
// triggerDays 为周几触发（0=周日 ... 6=周六），beforeDays 为提前提醒天数
type ReminderRule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TriggerDays []int  `json:"triggerDays"`
	BeforeDays  int    `json:"beforeDays"`
	Message     string `json:"message"` // 提醒内容
	Enabled     bool   `json:"enabled"`
}

// ReminderRuleCreateRequest 创建提醒规则请求
type ReminderRuleCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	TriggerDays []int  `json:"triggerDays"`
	BeforeDays  int    `json:"beforeDays"`
	Message     string `json:"message" binding:"required"`
	Enabled     *bool  `json:"enabled"`
}

// ReminderRuleUpdateRequest 更新提醒规则请求，浅合并
type ReminderRuleUpdateRequest struct {
	Name        *string `json:"name"`
	TriggerDays *[]int  `json:"triggerDays"`
	BeforeDays  *int    `json:"beforeDays"`
	Message     *string `json:"message"`
	Enabled     *bool   `json:"enabled"`
}
