package repository

import (
	"time"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/utils"
)

// InitializeStore 初始化演示数据
// 仅在集合为空时写入，重复调用不产生副作用
func (s *Store) InitializeStore() {
	if len(s.ListUsers()) > 0 {
		utils.Logger.Info().Msg("数据已存在，跳过初始化")
		return
	}

	users := []models.User{
		{ID: "u-admin", Name: "黄贤春", BU: "食品BU", Role: models.UserRoleAdmin},
		{ID: "u-manager", Name: "赵露明", BU: "食品BU", Role: models.UserRoleManager},
		{ID: "u-business", Name: "王雄军", BU: "美妆BU", Role: models.UserRoleBusiness},
	}
	for _, u := range users {
		s.InsertUser(u)
	}

	walls, _ := s.CreateCustomer(models.CustomerCreateRequest{
		Name: "和路雪", Code: "KA001", IsKA: true,
		CustomerType: models.CustomerTypeKey,
		MainVP:       "u-manager",
		Contacts: []models.CustomerContact{
			{DepartmentBrand: "可爱多", Industry: "包装食品", DirectorManager: "李总监", MainBusiness: []string{"采购", "品牌合作"}},
			{DepartmentBrand: "梦龙", Industry: "包装食品", DirectorManager: "周经理", MainBusiness: []string{"市场推广"}},
		},
	})
	nestle, _ := s.CreateCustomer(models.CustomerCreateRequest{
		Name: "雀巢", Code: "KA002", IsKA: true,
		CustomerType: models.CustomerTypeKey,
		MainVP:       "u-manager",
		Contacts: []models.CustomerContact{
			{DepartmentBrand: "咖啡事业部", Industry: "饮料乳品", DirectorManager: "陈总监", MainBusiness: []string{"采购"}},
		},
	})
	mengniu, _ := s.CreateCustomer(models.CustomerCreateRequest{
		Name: "蒙牛", IsKA: false,
		CustomerType: models.CustomerTypeNew,
	})

	now := time.Now()
	seedOpportunities := []struct {
		item     string
		customer models.Customer
		follower models.User
		imp      models.Importance
		typ      models.OpportunityType
		status   models.OpportunityStatus
		plan     int // 计划完成日期偏移（天）
		created  int // 创建时间偏移（天）
	}{
		{"2026年度冰品渠道招标", walls, users[0], models.ImportanceVeryImportant, models.TypeInvitation, models.StatusInProgress, 2, -9},
		{"可爱多夏季促销物料采购", walls, users[1], models.ImportanceImportant, models.TypePurchase, models.StatusWon, -20, -45},
		{"梦龙新品上市服务介绍", walls, users[1], models.ImportanceImportant, models.TypeService, models.StatusCompletedVisit, 15, -6},
		{"咖啡礼盒年框合作", nestle, users[2], models.ImportanceVeryImportant, models.TypeLead, models.StatusInProgress, 0, -3},
		{"常温奶区域推广线索", mengniu, users[2], models.ImportanceImportant, models.TypeLead, models.StatusInProgress, 30, -1},
	}

	for _, seed := range seedOpportunities {
		createTime := now.AddDate(0, 0, seed.created)
		o := models.Opportunity{
			ID:               utils.GenerateID(),
			Item:             seed.item,
			CreateTime:       createTime.Format(time.RFC3339),
			CreateYear:       createTime.Year(),
			CreateMonth:      int(createTime.Month()),
			Customer:         seed.customer,
			Importance:       seed.imp,
			Type:             seed.typ,
			Follower:         seed.follower,
			PlanCompleteTime: now.AddDate(0, 0, seed.plan).Format("2006-01-02"),
			Status:           seed.status,
			ProgressHistory:  []models.ProgressRecord{},
			LastUpdateTime:   createTime.Format(time.RFC3339),
			RelatedDocs:      []string{},
		}
		s.InsertOpportunity(o)
	}

	s.ReplacePermissions(defaultPermissions())

	s.CreateReminderRule(models.ReminderRuleCreateRequest{
		Name:        "计划完成前提醒",
		TriggerDays: []int{1, 2, 3, 4, 5},
		BeforeDays:  3,
		Message:     "商机临近计划完成时间，请及时跟进",
	})

	utils.Logger.Info().
		Int("users", len(users)).
		Int("customers", 3).
		Int("opportunities", len(seedOpportunities)).
		Msg("演示数据初始化完成")
}

// defaultPermissions 各角色的默认字段权限
func defaultPermissions() []models.Permission {
	fields := []models.FieldConfig{
		{FieldName: "item", DisplayName: "事项", Required: true, Visible: true, Editable: true},
		{FieldName: "customer", DisplayName: "客户", Required: true, Visible: true, Editable: true},
		{FieldName: "importance", DisplayName: "事项重要程度", Required: true, Visible: true, Editable: true},
		{FieldName: "type", DisplayName: "类型", Required: true, Visible: true, Editable: true},
		{FieldName: "follower", DisplayName: "跟进人", Required: true, Visible: true, Editable: true},
		{FieldName: "planCompleteTime", DisplayName: "计划完成时间", Required: true, Visible: true, Editable: true},
		{FieldName: "status", DisplayName: "状态", Required: true, Visible: true, Editable: true},
		{FieldName: "progress", DisplayName: "进展", Required: false, Visible: true, Editable: true},
		{FieldName: "relatedDocs", DisplayName: "相关文档", Required: false, Visible: true, Editable: true},
	}

	readOnly := make([]models.FieldConfig, len(fields))
	copy(readOnly, fields)
	for i := range readOnly {
		readOnly[i].Editable = false
	}

	return []models.Permission{
		{Role: models.UserRoleAdmin, Permissions: []string{"opportunity:write", "customer:write", "permission:write", "reminder:write"}, FieldConfigs: fields},
		{Role: models.UserRoleManager, Permissions: []string{"opportunity:write", "customer:write"}, FieldConfigs: fields},
		{Role: models.UserRoleBusiness, Permissions: []string{"opportunity:write"}, FieldConfigs: fields},
		{Role: models.UserRoleViewer, Permissions: []string{"opportunity:read"}, FieldConfigs: readOnly},
	}
}
