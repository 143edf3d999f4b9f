package service

import "sort"

// 默认分页参数
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Predicate 筛选谓词，所有谓词按AND组合
type Predicate[T any] func(T) bool

// Comparator 两元比较器，返回 -1/0/1
type Comparator[T any] func(a, b T) int

// PageRequest 分页请求，页码从1开始
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize 非法的页码和页大小回退到默认值
func (p PageRequest) Normalize() PageRequest {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// QueryResult 查询结果
// Total 始终为筛选后、分页前的记录总数
type QueryResult[T any] struct {
	Items []T `json:"list"`
	Total int `json:"total"`
}

// Query 对集合依次应用筛选、排序、分页
// 不修改输入集合；排序是稳定的：排序键相等的记录保持输入中的相对顺序
func Query[T any](collection []T, predicates []Predicate[T], cmp Comparator[T], page PageRequest) QueryResult[T] {
	filtered := make([]T, 0, len(collection))
	for _, item := range collection {
		if matchAll(item, predicates) {
			filtered = append(filtered, item)
		}
	}

	if cmp != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return cmp(filtered[i], filtered[j]) < 0
		})
	}

	page = page.Normalize()
	start := (page.Page - 1) * page.PageSize
	end := start + page.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]T, end-start)
	copy(items, filtered[start:end])
	return QueryResult[T]{Items: items, Total: len(filtered)}
}

// Filter 只应用筛选，不分页
func Filter[T any](collection []T, predicates []Predicate[T]) []T {
	out := make([]T, 0, len(collection))
	for _, item := range collection {
		if matchAll(item, predicates) {
			out = append(out, item)
		}
	}
	return out
}

func matchAll[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if !p(item) {
			return false
		}
	}
	return true
}

// Reverse 反转比较器方向
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return -cmp(a, b)
	}
}

// compareStrings 字符串自然序比较，ISO日期字符串可直接按此排序
func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
