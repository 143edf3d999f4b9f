package service

import (
	"math"
	"sort"

	"github.com/SuperCup/pms-bd-process/models"
)

// Group 分组结果
type Group[T any] struct {
	Key   string `json:"key"`
	Items []T    `json:"items"`
}

// GroupBy 按键函数分组
// 分组的迭代顺序是分组键的字典序，而不是插入顺序——
// 这是对外可观察的契约，同样的数据两次分组得到同样的展示顺序
func GroupBy[T any](items []T, keyFn func(T) string) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]
	for _, item := range items {
		key := keyFn(item)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group[T]{Key: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// SortWithinGroups 每个分组内独立按比较器稳定排序，不做全局排序
func SortWithinGroups[T any](groups []Group[T], cmp Comparator[T]) {
	if cmp == nil {
		return
	}
	for g := range groups {
		items := groups[g].Items
		sort.SliceStable(items, func(i, j int) bool {
			return cmp(items[i], items[j]) < 0
		})
	}
}

// GlobalRowNumber 计算折叠展示下的全局行号（从1开始）
// 折叠的分组对后续行号的偏移贡献为0，展开/折叠状态变化后需要重新计算
func GlobalRowNumber[T any](groups []Group[T], expanded map[string]bool, key string, localIndex int) int {
	rowNum := localIndex + 1
	for _, g := range groups {
		if g.Key == key {
			break
		}
		if expanded[g.Key] {
			rowNum += len(g.Items)
		}
	}
	return rowNum
}

// GroupStats 分组聚合指标，按当前排序实时推导，不落库
type GroupStats struct {
	Count        int     `json:"count"`
	WonRatio     float64 `json:"wonRatio"`     // 中标率百分比，保留一位小数
	MainFollower string  `json:"mainFollower"` // 当前排序下第一条记录的跟进人
}

// OpportunityGroupStats 计算商机分组的聚合指标
func OpportunityGroupStats(items []models.Opportunity) GroupStats {
	stats := GroupStats{Count: len(items)}
	if len(items) == 0 {
		return stats
	}

	won := 0
	for _, o := range items {
		if o.Status == models.StatusWon {
			won++
		}
	}
	stats.WonRatio = math.Round(float64(won)/float64(len(items))*1000) / 10
	stats.MainFollower = items[0].Follower.Name
	return stats
}

// ByCreateTimeDesc 创建时间降序比较器
func ByCreateTimeDesc(a, b models.Opportunity) int {
	return -compareStrings(a.CreateTime, b.CreateTime)
}

// 看板展示的状态优先级：进行中优先，流失垫底
var boardStatusOrder = map[models.OpportunityStatus]int{
	models.StatusInProgress:     0,
	models.StatusCompletedVisit: 1,
	models.StatusWon:            2,
	models.StatusNotParticipate: 3,
	models.StatusLost:           4,
}

// ByStatusThenCreateTimeDesc 先按状态优先级，再按创建时间降序
func ByStatusThenCreateTimeDesc(a, b models.Opportunity) int {
	oa, ok := boardStatusOrder[a.Status]
	if !ok {
		oa = 99
	}
	ob, ok := boardStatusOrder[b.Status]
	if !ok {
		ob = 99
	}
	if oa != ob {
		if oa < ob {
			return -1
		}
		return 1
	}
	return -compareStrings(a.CreateTime, b.CreateTime)
}
