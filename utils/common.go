package utils

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID 生成记录ID：毫秒时间戳 + 随机后缀
// 非密码学意义上的唯一，对本系统的数据规模足够
func GenerateID() string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteByte(base36Chars[rand.Intn(len(base36Chars))])
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), b.String())
}

// NowISO 当前时间的ISO-8601字符串
func NowISO() string {
	return time.Now().Format(time.RFC3339)
}

// 支持的日期字符串格式，按常见程度排列
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate 解析日期字符串
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析日期: %s", value)
}

// StartOfDay 截断到当天零点
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween 计算两个时间之间的自然日差值，忽略时分秒
// 各自取所在时区的日历日期比较，带不同时区偏移的时间不会产生偏差
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// WithinDayRange 判断日期字符串是否落在闭区间 [start, end] 内
// 按日历日期比较，等于任一边界日期即命中；空边界表示该侧不限
func WithinDayRange(value, start, end string) bool {
	t, err := ParseDate(value)
	if err != nil {
		return false
	}
	day := t.Format("2006-01-02")

	if start != "" {
		if s, err := ParseDate(start); err == nil && day < s.Format("2006-01-02") {
			return false
		}
	}
	if end != "" {
		if e, err := ParseDate(end); err == nil && day > e.Format("2006-01-02") {
			return false
		}
	}
	return true
}

// LastWeekRange 上一个自然周（周一至周日）的日期范围
func LastWeekRange(today time.Time) (start, end string) {
	// 周一为一周的开始
	offset := (int(today.Weekday()) + 6) % 7
	thisWeekStart := StartOfDay(today).AddDate(0, 0, -offset)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)
	lastWeekEnd := thisWeekStart.AddDate(0, 0, -1)
	return lastWeekStart.Format("2006-01-02"), lastWeekEnd.Format("2006-01-02")
}
