package repository

import (
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/utils"
)

func TestMain(m *testing.M) {
	utils.Logger = zerolog.New(io.Discard)
	os.Exit(m.Run())
}

func TestCustomerCRUD(t *testing.T) {
	store := NewStore()

	customer, err := store.CreateCustomer(models.CustomerCreateRequest{
		Name: "和路雪",
		IsKA: true,
		Contacts: []models.CustomerContact{
			{DepartmentBrand: "可爱多", Industry: "冰品"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID)
	assert.NotEmpty(t, customer.CreateTime)
	assert.Equal(t, customer.CreateTime, customer.UpdateTime)
	require.Len(t, customer.Contacts, 1)
	assert.NotEmpty(t, customer.Contacts[0].ID, "创建时应为联系人分配ID")

	t.Run("按ID读取", func(t *testing.T) {
		got, err := store.GetCustomer(customer.ID)
		require.NoError(t, err)
		assert.Equal(t, "和路雪", got.Name)
	})

	t.Run("读取不存在的客户返回NotFound", func(t *testing.T) {
		_, err := store.GetCustomer("missing")
		require.Error(t, err)
		assert.True(t, utils.IsNotFound(err))
	})

	t.Run("空名称创建被拒绝", func(t *testing.T) {
		_, err := store.CreateCustomer(models.CustomerCreateRequest{Name: "   "})
		require.Error(t, err)
		assert.True(t, utils.IsValidationError(err))
	})

	t.Run("浅合并更新并刷新updateTime", func(t *testing.T) {
		address := "上海市闵行区"
		updated, err := store.UpdateCustomer(customer.ID, models.CustomerUpdateRequest{Address: &address})
		require.NoError(t, err)
		assert.Equal(t, "上海市闵行区", updated.Address)
		assert.Equal(t, "和路雪", updated.Name, "未提供的字段保持不变")
	})

	t.Run("更新不存在的客户返回NotFound", func(t *testing.T) {
		name := "x"
		_, err := store.UpdateCustomer("missing", models.CustomerUpdateRequest{Name: &name})
		assert.True(t, utils.IsNotFound(err))
	})

	t.Run("删除后不可读取，重复删除为空操作", func(t *testing.T) {
		store.DeleteCustomer(customer.ID)
		_, err := store.GetCustomer(customer.ID)
		assert.True(t, utils.IsNotFound(err))
		store.DeleteCustomer(customer.ID) // 不应panic也不报错
	})
}

func TestCustomerNameExists(t *testing.T) {
	store := NewStore()
	c1, err := store.CreateCustomer(models.CustomerCreateRequest{Name: "雀巢"})
	require.NoError(t, err)

	assert.True(t, store.CustomerNameExists("雀巢", ""))
	assert.False(t, store.CustomerNameExists("雀巢", c1.ID), "排除自身后不算重复")
	assert.False(t, store.CustomerNameExists("蒙牛", ""))
}

func TestCustomerContacts(t *testing.T) {
	store := NewStore()
	customer, err := store.CreateCustomer(models.CustomerCreateRequest{Name: "和路雪"})
	require.NoError(t, err)

	updated, err := store.AddCustomerContact(customer.ID, models.ContactRequest{
		DepartmentBrand: "可爱多", Industry: "冰品",
	})
	require.NoError(t, err)
	require.Len(t, updated.Contacts, 1)
	contactID := updated.Contacts[0].ID

	t.Run("同客户下部门品牌重复被拒绝", func(t *testing.T) {
		_, err := store.AddCustomerContact(customer.ID, models.ContactRequest{DepartmentBrand: " 可爱多 "})
		require.Error(t, err)
		assert.True(t, utils.IsValidationError(err))
	})

	t.Run("编辑联系人时重复检查排除自身", func(t *testing.T) {
		updated, err := store.UpdateCustomerContact(customer.ID, contactID, models.ContactRequest{
			DepartmentBrand: "可爱多", Industry: "冷饮",
		})
		require.NoError(t, err)
		assert.Equal(t, "冷饮", updated.Contacts[0].Industry)
	})

	t.Run("编辑为其他联系人的部门品牌被拒绝", func(t *testing.T) {
		second, err := store.AddCustomerContact(customer.ID, models.ContactRequest{DepartmentBrand: "梦龙"})
		require.NoError(t, err)
		_, err = store.UpdateCustomerContact(customer.ID, second.Contacts[1].ID, models.ContactRequest{DepartmentBrand: "可爱多"})
		require.Error(t, err)
		assert.True(t, utils.IsValidationError(err))
	})

	t.Run("删除联系人", func(t *testing.T) {
		require.NoError(t, store.DeleteCustomerContact(customer.ID, contactID))
		got, err := store.GetCustomer(customer.ID)
		require.NoError(t, err)
		require.Len(t, got.Contacts, 1)
		assert.Equal(t, "梦龙", got.Contacts[0].DepartmentBrand)
	})

	t.Run("删除不存在的联系人为空操作", func(t *testing.T) {
		assert.NoError(t, store.DeleteCustomerContact(customer.ID, "missing"))
	})
}

func TestOpportunityCRUD(t *testing.T) {
	store := NewStore()
	opportunity := models.Opportunity{
		ID:               "o1",
		Item:             "冰淇淋年度标",
		CreateTime:       "2025-03-01T10:00:00+08:00",
		CreateYear:       2025,
		CreateMonth:      3,
		Status:           models.StatusInProgress,
		PlanCompleteTime: "2025-04-01",
	}
	store.InsertOpportunity(opportunity)

	t.Run("新记录排在集合最前", func(t *testing.T) {
		store.InsertOpportunity(models.Opportunity{ID: "o2", Item: "第二条"})
		list := store.ListOpportunities()
		require.Len(t, list, 2)
		assert.Equal(t, "o2", list[0].ID)
	})

	t.Run("更新刷新lastUpdateTime", func(t *testing.T) {
		updated, err := store.UpdateOpportunity("o1", func(o *models.Opportunity) error {
			o.Status = models.StatusWon
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusWon, updated.Status)
		assert.NotEmpty(t, updated.LastUpdateTime)
	})

	t.Run("apply返回错误时不写回变更", func(t *testing.T) {
		_, err := store.UpdateOpportunity("o1", func(o *models.Opportunity) error {
			o.Item = "不应生效"
			return utils.CreateValidationError("事项不能为空")
		})
		require.Error(t, err)
		got, err := store.GetOpportunity("o1")
		require.NoError(t, err)
		assert.Equal(t, "冰淇淋年度标", got.Item)
	})

	t.Run("删除不存在的商机为空操作", func(t *testing.T) {
		store.DeleteOpportunity("missing")
		assert.Len(t, store.ListOpportunities(), 2)
	})
}

func TestAddProgress(t *testing.T) {
	store := NewStore()
	store.InsertOpportunity(models.Opportunity{ID: "o1", Item: "测试商机"})
	creator := models.User{ID: "u1", Name: "王雄军"}

	record, err := store.AddProgress("o1", "已完成初次拜访", creator)
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "o1", record.OpportunityID)

	t.Run("progress字段镜像最新记录", func(t *testing.T) {
		_, err := store.AddProgress("o1", "方案已提交", creator)
		require.NoError(t, err)

		got, err := store.GetOpportunity("o1")
		require.NoError(t, err)
		require.Len(t, got.ProgressHistory, 2)
		assert.Equal(t, "方案已提交", got.Progress)
		assert.Equal(t, got.ProgressHistory[1].CreateTime, got.LastUpdateTime)
	})

	t.Run("记录只追加保持时间顺序", func(t *testing.T) {
		got, _ := store.GetOpportunity("o1")
		assert.Equal(t, "已完成初次拜访", got.ProgressHistory[0].Content)
		assert.Equal(t, "方案已提交", got.ProgressHistory[1].Content)
	})

	t.Run("商机不存在返回NotFound", func(t *testing.T) {
		_, err := store.AddProgress("missing", "x", creator)
		assert.True(t, utils.IsNotFound(err))
	})
}

func TestListSnapshotIsolation(t *testing.T) {
	store := NewStore()
	store.InsertOpportunity(models.Opportunity{ID: "o1", Item: "原始事项"})

	snapshot := store.ListOpportunities()
	snapshot[0].Item = "篡改"

	got, err := store.GetOpportunity("o1")
	require.NoError(t, err)
	assert.Equal(t, "原始事项", got.Item, "快照修改不应影响存储内容")
}

func TestReminderRules(t *testing.T) {
	store := NewStore()
	rule := store.CreateReminderRule(models.ReminderRuleCreateRequest{
		Name:        "到期提醒",
		TriggerDays: []int{1, 2, 3, 4, 5},
		BeforeDays:  3,
		Message:     "商机即将到期",
	})
	assert.True(t, rule.Enabled, "未指定时默认启用")

	t.Run("浅合并更新", func(t *testing.T) {
		enabled := false
		updated, err := store.UpdateReminderRule(rule.ID, models.ReminderRuleUpdateRequest{Enabled: &enabled})
		require.NoError(t, err)
		assert.False(t, updated.Enabled)
		assert.Equal(t, "到期提醒", updated.Name)
	})

	t.Run("删除后列表为空", func(t *testing.T) {
		store.DeleteReminderRule(rule.ID)
		assert.Empty(t, store.ListReminderRules())
		store.DeleteReminderRule(rule.ID) // 空操作
	})
}

func TestInitializeStore(t *testing.T) {
	store := NewStore()
	store.InitializeStore()

	assert.NotEmpty(t, store.ListUsers())
	assert.NotEmpty(t, store.ListCustomers())
	assert.NotEmpty(t, store.ListOpportunities())
	assert.NotEmpty(t, store.ListPermissions())
	assert.NotEmpty(t, store.ListReminderRules())

	t.Run("重复初始化不产生重复数据", func(t *testing.T) {
		users := len(store.ListUsers())
		store.InitializeStore()
		assert.Len(t, store.ListUsers(), users)
	})

	t.Run("演示商机progress与最新跟进记录一致", func(t *testing.T) {
		for _, o := range store.ListOpportunities() {
			if len(o.ProgressHistory) > 0 {
				assert.Equal(t, o.ProgressHistory[len(o.ProgressHistory)-1].Content, o.Progress)
			}
		}
	})
}
