package service

import (
	"strings"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/utils"
)

// opportunitySortFields 商机可排序字段及其取值函数
// 不在此表中的字段一律拒绝，不做动态字段访问
var opportunitySortFields = map[string]func(models.Opportunity) string{
	"createTime":       func(o models.Opportunity) string { return o.CreateTime },
	"planCompleteTime": func(o models.Opportunity) string { return o.PlanCompleteTime },
	"lastUpdateTime":   func(o models.Opportunity) string { return o.LastUpdateTime },
}

// OpportunityComparator 按字段名构造商机比较器
// sortField 为空表示不排序；未知字段返回校验错误
func OpportunityComparator(sortField, sortOrder string) (Comparator[models.Opportunity], error) {
	if sortField == "" {
		return nil, nil
	}
	accessor, ok := opportunitySortFields[sortField]
	if !ok {
		return nil, utils.CreateValidationError("不支持的排序字段: " + sortField)
	}
	cmp := func(a, b models.Opportunity) int {
		return compareStrings(accessor(a), accessor(b))
	}
	if sortOrder == "desc" {
		return Reverse(cmp), nil
	}
	return cmp, nil
}

// OpportunityPredicates 由筛选条件构造谓词集合，空条件跳过
func OpportunityPredicates(f models.OpportunityFilter) []Predicate[models.Opportunity] {
	var preds []Predicate[models.Opportunity]

	if f.Keyword != "" {
		preds = append(preds, func(o models.Opportunity) bool {
			return strings.Contains(o.Item, f.Keyword)
		})
	}
	if f.Year != 0 {
		preds = append(preds, func(o models.Opportunity) bool {
			return o.CreateYear == f.Year
		})
	}
	if f.CreateTimeStart != "" || f.CreateTimeEnd != "" {
		preds = append(preds, func(o models.Opportunity) bool {
			return utils.WithinDayRange(o.CreateTime, f.CreateTimeStart, f.CreateTimeEnd)
		})
	}
	if len(f.CustomerIDs) > 0 {
		ids := toSet(f.CustomerIDs)
		preds = append(preds, func(o models.Opportunity) bool {
			return ids[o.Customer.ID]
		})
	}
	if len(f.FollowerIDs) > 0 {
		ids := toSet(f.FollowerIDs)
		preds = append(preds, func(o models.Opportunity) bool {
			return ids[o.Follower.ID]
		})
	}
	if f.Status != "" {
		preds = append(preds, func(o models.Opportunity) bool {
			return string(o.Status) == f.Status
		})
	}
	if f.Importance != "" {
		preds = append(preds, func(o models.Opportunity) bool {
			return string(o.Importance) == f.Importance
		})
	}
	if f.Type != "" {
		preds = append(preds, func(o models.Opportunity) bool {
			return string(o.Type) == f.Type
		})
	}
	return preds
}

// QueryOpportunities 商机列表查询：筛选 + 排序 + 分页
func QueryOpportunities(collection []models.Opportunity, f models.OpportunityFilter, sortField, sortOrder string, page PageRequest) (QueryResult[models.Opportunity], error) {
	cmp, err := OpportunityComparator(sortField, sortOrder)
	if err != nil {
		return QueryResult[models.Opportunity]{}, err
	}
	return Query(collection, OpportunityPredicates(f), cmp, page), nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
