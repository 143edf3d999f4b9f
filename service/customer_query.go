package service

import (
	"strings"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/utils"
)

// customerSortFields 客户可排序字段
var customerSortFields = map[string]func(models.Customer) string{
	"name":       func(c models.Customer) string { return c.Name },
	"createTime": func(c models.Customer) string { return c.CreateTime },
	"updateTime": func(c models.Customer) string { return c.UpdateTime },
}

// CustomerComparator 按字段名构造客户比较器，未知字段返回校验错误
func CustomerComparator(sortField, sortOrder string) (Comparator[models.Customer], error) {
	if sortField == "" {
		return nil, nil
	}
	accessor, ok := customerSortFields[sortField]
	if !ok {
		return nil, utils.CreateValidationError("不支持的排序字段: " + sortField)
	}
	cmp := func(a, b models.Customer) int {
		return compareStrings(accessor(a), accessor(b))
	}
	if sortOrder == "desc" {
		return Reverse(cmp), nil
	}
	return cmp, nil
}

// CustomerPredicates 由筛选条件构造谓词集合
func CustomerPredicates(f models.CustomerFilter) []Predicate[models.Customer] {
	var preds []Predicate[models.Customer]

	if f.Keyword != "" {
		preds = append(preds, func(c models.Customer) bool {
			return strings.Contains(c.Name, f.Keyword)
		})
	}
	if f.IsKA != nil {
		preds = append(preds, func(c models.Customer) bool {
			return c.IsKA == *f.IsKA
		})
	}
	if f.MainVP != "" {
		preds = append(preds, func(c models.Customer) bool {
			return c.MainVP == f.MainVP
		})
	}
	if f.CustomerType != "" {
		preds = append(preds, func(c models.Customer) bool {
			return string(c.CustomerType) == f.CustomerType
		})
	}
	return preds
}

// QueryCustomers 客户列表查询：筛选 + 排序 + 分页
func QueryCustomers(collection []models.Customer, f models.CustomerFilter, sortField, sortOrder string, page PageRequest) (QueryResult[models.Customer], error) {
	cmp, err := CustomerComparator(sortField, sortOrder)
	if err != nil {
		return QueryResult[models.Customer]{}, err
	}
	return Query(collection, CustomerPredicates(f), cmp, page), nil
}
