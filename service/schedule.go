package service

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/utils"
)

// Scheduler 提醒调度器
// 每天按cron表达式扫描一次：启用的规则在其配置的周几触发，
// 对计划完成时间落在提前提醒天数内的进行中商机记录一次提醒
type Scheduler struct {
	store *repository.Store
	cron  *cron.Cron
	spec  string
}

// NewScheduler 创建提醒调度器
func NewScheduler(store *repository.Store, spec string) *Scheduler {
	if spec == "" {
		spec = "0 9 * * *" // 每天上午9点
	}
	return &Scheduler{
		store: store,
		cron:  cron.New(),
		spec:  spec,
	}
}

// Start 启动调度
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.RunDailyReminders); err != nil {
		return err
	}
	s.cron.Start()
	utils.Logger.Info().Str("spec", s.spec).Msg("提醒调度器已启动")
	return nil
}

// Stop 停止调度
func (s *Scheduler) Stop() {
	s.cron.Stop()
	utils.Logger.Info().Msg("提醒调度器已停止")
}

// RunDailyReminders 执行每日提醒检查
func (s *Scheduler) RunDailyReminders() {
	now := time.Now()
	utils.Logger.Info().Time("time", now).Msg("开始执行每日提醒检查任务...")

	weekday := int(now.Weekday())
	checked := 0
	for _, rule := range s.store.ListReminderRules() {
		if !rule.Enabled || !containsDay(rule.TriggerDays, weekday) {
			continue
		}
		checked += s.runRule(rule, now)
	}

	utils.Logger.Info().Int("reminders", checked).Msg("每日提醒检查任务完成")
}

// TriggerRule 手动触发一条规则，忽略周几限制
func (s *Scheduler) TriggerRule(ruleID string) (int, error) {
	rule, err := s.store.GetReminderRule(ruleID)
	if err != nil {
		return 0, err
	}
	return s.runRule(rule, time.Now()), nil
}

// runRule 对单条规则执行扫描，返回触发的提醒数
func (s *Scheduler) runRule(rule models.ReminderRule, now time.Time) int {
	count := 0
	for _, o := range s.store.ListOpportunities() {
		if o.Status != models.StatusInProgress {
			continue
		}
		due, err := utils.ParseDate(o.PlanCompleteTime)
		if err != nil {
			continue
		}
		days := DaysUntil(due, now)
		if days < 0 || days > rule.BeforeDays {
			continue
		}

		state := s.store.BumpReminderState(o.ID, now.Format(time.RFC3339))
		utils.Logger.Info().
			Str("rule", rule.Name).
			Str("opportunityId", o.ID).
			Str("item", o.Item).
			Str("customer", o.Customer.Name).
			Str("follower", o.Follower.Name).
			Int("daysUntilDue", days).
			Int("remindCount", state.RemindCount).
			Msg(rule.Message)
		count++
	}
	return count
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
