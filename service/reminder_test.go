package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
)

func TestInReminderWindow(t *testing.T) {
	today := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)

	cases := []struct {
		name string
		due  time.Time
		want bool
	}{
		{"当天到期", time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), true},
		{"1天后到期", time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local), true},
		{"3天后到期", time.Date(2025, 3, 13, 23, 59, 0, 0, time.Local), true},
		{"4天后到期", time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local), false},
		{"昨天已过期", time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local), false},
		{"一个月后", time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InReminderWindow(tc.due, today))
		})
	}
}

func TestInReminderWindowIgnoresTimeOfDay(t *testing.T) {
	// 23:59创建的记录和00:01创建的记录按同一自然日计算
	today := time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)
	due := time.Date(2025, 3, 13, 0, 1, 0, 0, time.Local)
	assert.True(t, InReminderWindow(due, today))
	assert.Equal(t, 3, DaysUntil(due, today))
}

func TestInReminderWindowStr(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	assert.True(t, InReminderWindowStr("2025-03-12", today))
	assert.False(t, InReminderWindowStr("2025-03-20", today))

	t.Run("解析失败视为不在窗口内", func(t *testing.T) {
		assert.False(t, InReminderWindowStr("无效日期", today))
		assert.False(t, InReminderWindowStr("", today))
	})
}

func TestSchedulerTriggerRule(t *testing.T) {
	store := repository.NewStore()
	customer, err := store.CreateCustomer(models.CustomerCreateRequest{Name: "和路雪", IsKA: true})
	require.NoError(t, err)

	insert := func(id string, status models.OpportunityStatus, planOffsetDays int) {
		store.InsertOpportunity(models.Opportunity{
			ID:               id,
			Item:             "测试商机" + id,
			Customer:         customer,
			Follower:         models.User{ID: "u1", Name: "王雄军"},
			Status:           status,
			PlanCompleteTime: time.Now().AddDate(0, 0, planOffsetDays).Format("2006-01-02"),
		})
	}
	insert("due-today", models.StatusInProgress, 0)
	insert("due-soon", models.StatusInProgress, 2)
	insert("due-far", models.StatusInProgress, 10)
	insert("overdue", models.StatusInProgress, -1)
	insert("won-due", models.StatusWon, 1)

	rule := store.CreateReminderRule(models.ReminderRuleCreateRequest{
		Name:        "到期提醒",
		TriggerDays: []int{0, 1, 2, 3, 4, 5, 6},
		BeforeDays:  3,
		Message:     "商机即将到期",
	})

	scheduler := NewScheduler(store, "")
	count, err := scheduler.TriggerRule(rule.ID)
	require.NoError(t, err)

	// 只有进行中且落在提前提醒窗口内的商机触发
	assert.Equal(t, 2, count)

	state, ok := store.GetReminderState("due-today")
	require.True(t, ok)
	assert.Equal(t, 1, state.RemindCount)
	assert.NotEmpty(t, state.LastRemindTime)

	_, ok = store.GetReminderState("won-due")
	assert.False(t, ok)

	t.Run("再次触发累加提醒次数", func(t *testing.T) {
		_, err := scheduler.TriggerRule(rule.ID)
		require.NoError(t, err)
		state, ok := store.GetReminderState("due-soon")
		require.True(t, ok)
		assert.Equal(t, 2, state.RemindCount)
	})

	t.Run("触发不存在的规则返回错误", func(t *testing.T) {
		_, err := scheduler.TriggerRule("missing")
		require.Error(t, err)
	})
}
