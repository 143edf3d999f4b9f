package service

import (
	"time"

	"github.com/SuperCup/pms-bd-process/utils"
)

// ReminderWindowDays 提醒窗口：计划完成日当天起，向后3个自然日（含）
const ReminderWindowDays = 3

// DaysUntil 计算从today到dueDate的自然日差值，可为负
// 两端都按自然日计算，时分秒被忽略
func DaysUntil(dueDate, today time.Time) int {
	return utils.DaysBetween(today, dueDate)
}

// InReminderWindow 判断dueDate是否落在提醒窗口内
// 当天到期和3天后到期都在窗口内；已过期（负差值）和4天及以上不在
func InReminderWindow(dueDate, today time.Time) bool {
	days := DaysUntil(dueDate, today)
	return days >= 0 && days <= ReminderWindowDays
}

// InReminderWindowStr 字符串日期版本，解析失败视为不在窗口内
func InReminderWindowStr(dueDate string, today time.Time) bool {
	due, err := utils.ParseDate(dueDate)
	if err != nil {
		return false
	}
	return InReminderWindow(due, today)
}
