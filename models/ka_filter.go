package models

import (
	"encoding/json"
	"fmt"
)

// DateRange 闭区间日期范围，两端都包含
// 持久化格式与前端一致：["2024-01-01", "2024-12-31"]
type DateRange struct {
	Start string
	End   string
}

// MarshalJSON 序列化为二元数组
func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{r.Start, r.End})
}

// UnmarshalJSON 从二元数组反序列化
func (r *DateRange) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 2 {
		return fmt.Errorf("日期范围必须包含两个元素, 实际 %d 个", len(arr))
	}
	r.Start, r.End = arr[0], arr[1]
	return nil
}

// KAFilterConfig KA看板筛选配置
// visibleCustomers 为空表示全部客户可见，而不是全部隐藏
// status 为空表示不限制状态
type KAFilterConfig struct {
	VisibleCustomers      []string   `json:"visibleCustomers"` // 显示的客户ID列表
	CreateTimeRange       *DateRange `json:"createTimeRange,omitempty"`
	Status                []string   `json:"status,omitempty"`
	PlanCompleteTimeRange *DateRange `json:"planCompleteTimeRange,omitempty"`
}

// IsShowAll 判断配置是否等价于"展示全部"
func (c *KAFilterConfig) IsShowAll() bool {
	if c == nil {
		return true
	}
	return len(c.VisibleCustomers) == 0 && len(c.Status) == 0 &&
		c.CreateTimeRange == nil && c.PlanCompleteTimeRange == nil
}
