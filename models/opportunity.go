package models

// ProgressRecord 跟进记录，只追加，不编辑不删除
type ProgressRecord struct {
	ID            string `json:"id"`
	OpportunityID string `json:"opportunityId"`
	Content       string `json:"content"`
	CreateTime    string `json:"createTime"`
	Creator       User   `json:"creator"`
}

// Opportunity 商机
// customer 为创建时的快照引用，progress 恒等于最新一条跟进记录的内容
type Opportunity struct {
	ID               string            `json:"id"`
	Item             string            `json:"item"` // 事项
	CreateTime       string            `json:"createTime"`
	CreateYear       int               `json:"createYear"`  // 创建年度，创建时固化
	CreateMonth      int               `json:"createMonth"` // 创建月份，创建时固化
	Customer         Customer          `json:"customer"`
	Importance       Importance        `json:"importance"`
	Type             OpportunityType   `json:"type"`
	Follower         User              `json:"follower"` // 跟进人
	PlanCompleteTime string            `json:"planCompleteTime"`
	Status           OpportunityStatus `json:"status"`
	Progress         string            `json:"progress"` // 最新进展
	ProgressHistory  []ProgressRecord  `json:"progressHistory"`
	LastUpdateTime   string            `json:"lastUpdateTime"`
	RelatedDocs      []string          `json:"relatedDocs"` // 相关文档（链接/附件）
}

// OpportunityFilter 商机筛选条件，所有条件按AND组合，空条件跳过
type OpportunityFilter struct {
	Keyword         string   // 事项关键词，区分大小写的子串匹配
	Year            int      // 创建年度
	CreateTimeStart string   // 创建时间范围，按自然日闭区间
	CreateTimeEnd   string
	CustomerIDs     []string // 客户ID集合
	FollowerIDs     []string // 跟进人ID集合
	Status          string
	Importance      string
	Type            string
}

// OpportunityCreateRequest 创建商机请求
type OpportunityCreateRequest struct {
	Item             string            `json:"item" binding:"required"`
	CustomerID       string            `json:"customerId" binding:"required"`
	Importance       Importance        `json:"importance"`
	Type             OpportunityType   `json:"type"`
	FollowerID       string            `json:"followerId"`
	PlanCompleteTime string            `json:"planCompleteTime" binding:"required"`
	Status           OpportunityStatus `json:"status"`
	Progress         string            `json:"progress"`
	RelatedDocs      []string          `json:"relatedDocs"`
}

// OpportunityUpdateRequest 更新商机请求，浅合并
type OpportunityUpdateRequest struct {
	Item             *string            `json:"item"`
	CustomerID       *string            `json:"customerId"`
	Importance       *Importance        `json:"importance"`
	Type             *OpportunityType   `json:"type"`
	FollowerID       *string            `json:"followerId"`
	PlanCompleteTime *string            `json:"planCompleteTime"`
	Status           *OpportunityStatus `json:"status"`
	RelatedDocs      *[]string          `json:"relatedDocs"`
}

// AddProgressRequest 新增跟进记录请求
type AddProgressRequest struct {
	Content string `json:"content" binding:"required"`
}

// OpportunityReminder 商机提醒状态，由提醒调度器维护
type OpportunityReminder struct {
	OpportunityID  string `json:"opportunityId"`
	IsActive       bool   `json:"isActive"`
	LastRemindTime string `json:"lastRemindTime,omitempty"`
	RemindCount    int    `json:"remindCount"`
}
