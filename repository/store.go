package repository

import (
	"strings"
	"sync"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/utils"
)

// 集合名，用于日志
const (
	CustomersCollection     = "customers"
	OpportunitiesCollection = "opportunities"
	UsersCollection         = "users"
	PermissionsCollection   = "permissions"
	ReminderRulesCollection = "reminderRules"
)

// Store 进程内数据存储
// 所有写操作在锁内以最新集合状态完成读-改-写，并发发起的写不会互相覆盖；
// 操作完成顺序与调用顺序无关，调用方不得依赖
type Store struct {
	mu            sync.RWMutex
	customers     []models.Customer
	opportunities []models.Opportunity
	users         []models.User
	permissions   []models.Permission
	reminderRules []models.ReminderRule
	reminders     map[string]models.OpportunityReminder // 按商机ID
}

// NewStore 创建空数据存储
func NewStore() *Store {
	return &Store{
		reminders: make(map[string]models.OpportunityReminder),
	}
}

// ---------- 客户 ----------

// ListCustomers 返回客户集合快照
func (s *Store) ListCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// GetCustomer 按ID查找客户
func (s *Store) GetCustomer(id string) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, utils.CreateNotFoundError("客户")
}

// CustomerNameExists 检查客户名称是否已被其他客户占用（去重检查）
func (s *Store) CustomerNameExists(name, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.Name == name && c.ID != excludeID {
			return true
		}
	}
	return false
}

// CreateCustomer 创建客户，分配ID和时间戳
// 联系人之间的部门/品牌重复在写入前校验，校验失败不产生任何变更
func (s *Store) CreateCustomer(req models.CustomerCreateRequest) (models.Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Customer{}, utils.CreateValidationError("客户名称不能为空")
	}
	contacts, err := normalizeContacts(req.Contacts)
	if err != nil {
		return models.Customer{}, err
	}

	now := utils.NowISO()
	customer := models.Customer{
		ID:           utils.GenerateID(),
		Name:         req.Name,
		Code:         req.Code,
		IsKA:         req.IsKA,
		PMSCustomer:  req.PMSCustomer,
		Contacts:     contacts,
		Address:      req.Address,
		Follower:     req.Follower,
		CustomerType: req.CustomerType,
		MainVP:       req.MainVP,
		CreateTime:   now,
		UpdateTime:   now,
	}

	s.mu.Lock()
	s.customers = append(s.customers, customer)
	s.mu.Unlock()

	utils.LogStoreOperation("create", CustomersCollection, req.Name, customer.ID)
	return customer, nil
}

// UpdateCustomer 浅合并更新客户，刷新updateTime
func (s *Store) UpdateCustomer(id string, req models.CustomerUpdateRequest) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.customers {
		if s.customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Customer{}, utils.CreateNotFoundError("客户")
	}

	// 在副本上应用变更，校验失败时不写回
	updated := s.customers[idx]
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return models.Customer{}, utils.CreateValidationError("客户名称不能为空")
		}
		updated.Name = *req.Name
	}
	if req.Code != nil {
		updated.Code = *req.Code
	}
	if req.IsKA != nil {
		updated.IsKA = *req.IsKA
	}
	if req.PMSCustomer != nil {
		updated.PMSCustomer = req.PMSCustomer
	}
	if req.Contacts != nil {
		contacts, err := normalizeContacts(*req.Contacts)
		if err != nil {
			return models.Customer{}, err
		}
		updated.Contacts = contacts
	}
	if req.Address != nil {
		updated.Address = *req.Address
	}
	if req.Follower != nil {
		updated.Follower = req.Follower
	}
	if req.CustomerType != nil {
		updated.CustomerType = *req.CustomerType
	}
	if req.MainVP != nil {
		updated.MainVP = *req.MainVP
	}
	updated.UpdateTime = utils.NowISO()

	s.customers[idx] = updated
	return updated, nil
}

// DeleteCustomer 删除客户，联系人随客户一起删除；不存在时为空操作
func (s *Store) DeleteCustomer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			utils.LogStoreOperation("delete", CustomersCollection, id, nil)
			return
		}
	}
}

// LinkPMSCustomer 关联PMS客户
func (s *Store) LinkPMSCustomer(id string, pms *models.PMSCustomer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].PMSCustomer = pms
			s.customers[i].UpdateTime = utils.NowISO()
			return s.customers[i], nil
		}
	}
	return models.Customer{}, utils.CreateNotFoundError("客户")
}

// AddCustomerContact 新增联系人
// 部门/品牌在同一客户的联系人之间必须唯一（去除首尾空格后精确比较）
func (s *Store) AddCustomerContact(customerID string, req models.ContactRequest) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != customerID {
			continue
		}
		if err := checkContactDuplicate(s.customers[i].Contacts, req.DepartmentBrand, ""); err != nil {
			return models.Customer{}, err
		}
		contact := models.CustomerContact{
			ID:              utils.GenerateID(),
			DepartmentBrand: req.DepartmentBrand,
			Industry:        req.Industry,
			DirectorManager: req.DirectorManager,
			MainBusiness:    req.MainBusiness,
		}
		s.customers[i].Contacts = append(s.customers[i].Contacts, contact)
		s.customers[i].UpdateTime = utils.NowISO()
		return s.customers[i], nil
	}
	return models.Customer{}, utils.CreateNotFoundError("客户")
}

// UpdateCustomerContact 编辑联系人，重复检查排除被编辑的联系人自身
func (s *Store) UpdateCustomerContact(customerID, contactID string, req models.ContactRequest) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != customerID {
			continue
		}
		for j := range s.customers[i].Contacts {
			if s.customers[i].Contacts[j].ID != contactID {
				continue
			}
			if err := checkContactDuplicate(s.customers[i].Contacts, req.DepartmentBrand, contactID); err != nil {
				return models.Customer{}, err
			}
			s.customers[i].Contacts[j].DepartmentBrand = req.DepartmentBrand
			s.customers[i].Contacts[j].Industry = req.Industry
			s.customers[i].Contacts[j].DirectorManager = req.DirectorManager
			s.customers[i].Contacts[j].MainBusiness = req.MainBusiness
			s.customers[i].UpdateTime = utils.NowISO()
			return s.customers[i], nil
		}
		return models.Customer{}, utils.CreateNotFoundError("联系人")
	}
	return models.Customer{}, utils.CreateNotFoundError("客户")
}

// DeleteCustomerContact 删除联系人；不存在时为空操作
func (s *Store) DeleteCustomerContact(customerID, contactID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != customerID {
			continue
		}
		for j := range s.customers[i].Contacts {
			if s.customers[i].Contacts[j].ID == contactID {
				s.customers[i].Contacts = append(s.customers[i].Contacts[:j], s.customers[i].Contacts[j+1:]...)
				s.customers[i].UpdateTime = utils.NowISO()
				return nil
			}
		}
		return nil
	}
	return utils.CreateNotFoundError("客户")
}

// checkContactDuplicate 同一客户下部门/品牌唯一性校验，excludeID 为被编辑联系人
func checkContactDuplicate(contacts []models.CustomerContact, departmentBrand, excludeID string) error {
	name := strings.TrimSpace(departmentBrand)
	if name == "" {
		return nil
	}
	for _, c := range contacts {
		if c.ID != excludeID && strings.TrimSpace(c.DepartmentBrand) == name {
			return utils.CreateValidationError("部门/品牌 [" + name + "] 已存在")
		}
	}
	return nil
}

// normalizeContacts 为联系人分配ID并校验彼此之间的部门/品牌唯一性
func normalizeContacts(contacts []models.CustomerContact) ([]models.CustomerContact, error) {
	if len(contacts) == 0 {
		return nil, nil
	}
	out := make([]models.CustomerContact, 0, len(contacts))
	for _, c := range contacts {
		if err := checkContactDuplicate(out, c.DepartmentBrand, ""); err != nil {
			return nil, err
		}
		if c.ID == "" {
			c.ID = utils.GenerateID()
		}
		out = append(out, c)
	}
	return out, nil
}

// ---------- 商机 ----------

// ListOpportunities 返回商机集合快照
func (s *Store) ListOpportunities() []models.Opportunity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Opportunity, len(s.opportunities))
	copy(out, s.opportunities)
	return out
}

// GetOpportunity 按ID查找商机
func (s *Store) GetOpportunity(id string) (models.Opportunity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.opportunities {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Opportunity{}, utils.CreateNotFoundError("商机")
}

// InsertOpportunity 插入已组装好的商机记录（新记录排在最前）
func (s *Store) InsertOpportunity(o models.Opportunity) models.Opportunity {
	s.mu.Lock()
	s.opportunities = append([]models.Opportunity{o}, s.opportunities...)
	s.mu.Unlock()
	utils.LogStoreOperation("create", OpportunitiesCollection, o.Item, o.ID)
	return o
}

// UpdateOpportunity 在最新状态上应用变更函数，刷新lastUpdateTime
// apply 在写锁内执行：返回错误时不写回任何变更，且不得回调本Store的任何方法
func (s *Store) UpdateOpportunity(id string, apply func(*models.Opportunity) error) (models.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.opportunities {
		if s.opportunities[i].ID != id {
			continue
		}
		updated := s.opportunities[i]
		if err := apply(&updated); err != nil {
			return models.Opportunity{}, err
		}
		updated.LastUpdateTime = utils.NowISO()
		s.opportunities[i] = updated
		return updated, nil
	}
	return models.Opportunity{}, utils.CreateNotFoundError("商机")
}

// DeleteOpportunity 删除商机；不存在时为空操作
func (s *Store) DeleteOpportunity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.opportunities {
		if s.opportunities[i].ID == id {
			s.opportunities = append(s.opportunities[:i], s.opportunities[i+1:]...)
			utils.LogStoreOperation("delete", OpportunitiesCollection, id, nil)
			return
		}
	}
}

// AddProgress 追加跟进记录，progress 字段始终镜像最新一条记录的内容
func (s *Store) AddProgress(opportunityID, content string, creator models.User) (models.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.opportunities {
		if s.opportunities[i].ID != opportunityID {
			continue
		}
		record := models.ProgressRecord{
			ID:            utils.GenerateID(),
			OpportunityID: opportunityID,
			Content:       content,
			CreateTime:    utils.NowISO(),
			Creator:       creator,
		}
		s.opportunities[i].ProgressHistory = append(s.opportunities[i].ProgressHistory, record)
		s.opportunities[i].Progress = content
		s.opportunities[i].LastUpdateTime = record.CreateTime
		return record, nil
	}
	return models.ProgressRecord{}, utils.CreateNotFoundError("商机")
}

// ---------- 用户 ----------

// ListUsers 返回用户集合快照
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// GetUser 按ID查找用户
func (s *Store) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, utils.CreateNotFoundError("用户")
}

// CurrentUser 当前登录用户
// 无认证环境下固定为第一个用户
func (s *Store) CurrentUser() (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.users) == 0 {
		return models.User{}, utils.CreateNotFoundError("用户")
	}
	return s.users[0], nil
}

// InsertUser 插入用户
func (s *Store) InsertUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = utils.GenerateID()
	}
	s.users = append(s.users, u)
	return u
}

// ---------- 权限 ----------

// ListPermissions 返回权限配置快照
func (s *Store) ListPermissions() []models.Permission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Permission, len(s.permissions))
	copy(out, s.permissions)
	return out
}

// ReplacePermissions 整体替换权限配置
func (s *Store) ReplacePermissions(perms []models.Permission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissions = make([]models.Permission, len(perms))
	copy(s.permissions, perms)
}

// GetFieldConfigs 获取指定角色的字段配置
func (s *Store) GetFieldConfigs(role models.UserRole) []models.FieldConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.permissions {
		if p.Role == role {
			out := make([]models.FieldConfig, len(p.FieldConfigs))
			copy(out, p.FieldConfigs)
			return out
		}
	}
	return nil
}

// UpdateFieldConfigs 更新指定角色的字段配置
func (s *Store) UpdateFieldConfigs(role models.UserRole, configs []models.FieldConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.permissions {
		if s.permissions[i].Role == role {
			s.permissions[i].FieldConfigs = configs
			return nil
		}
	}
	return utils.CreateNotFoundError("角色权限配置")
}

// ---------- 提醒规则 ----------

// ListReminderRules 返回提醒规则快照
func (s *Store) ListReminderRules() []models.ReminderRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ReminderRule, len(s.reminderRules))
	copy(out, s.reminderRules)
	return out
}

// GetReminderRule 按ID查找提醒规则
func (s *Store) GetReminderRule(id string) (models.ReminderRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reminderRules {
		if r.ID == id {
			return r, nil
		}
	}
	return models.ReminderRule{}, utils.CreateNotFoundError("提醒规则")
}

// CreateReminderRule 创建提醒规则
func (s *Store) CreateReminderRule(req models.ReminderRuleCreateRequest) models.ReminderRule {
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	rule := models.ReminderRule{
		ID:          utils.GenerateID(),
		Name:        req.Name,
		TriggerDays: req.TriggerDays,
		BeforeDays:  req.BeforeDays,
		Message:     req.Message,
		Enabled:     enabled,
	}

	s.mu.Lock()
	s.reminderRules = append(s.reminderRules, rule)
	s.mu.Unlock()
	return rule
}

// UpdateReminderRule 浅合并更新提醒规则
func (s *Store) UpdateReminderRule(id string, req models.ReminderRuleUpdateRequest) (models.ReminderRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminderRules {
		if s.reminderRules[i].ID != id {
			continue
		}
		if req.Name != nil {
			s.reminderRules[i].Name = *req.Name
		}
		if req.TriggerDays != nil {
			s.reminderRules[i].TriggerDays = *req.TriggerDays
		}
		if req.BeforeDays != nil {
			s.reminderRules[i].BeforeDays = *req.BeforeDays
		}
		if req.Message != nil {
			s.reminderRules[i].Message = *req.Message
		}
		if req.Enabled != nil {
			s.reminderRules[i].Enabled = *req.Enabled
		}
		return s.reminderRules[i], nil
	}
	return models.ReminderRule{}, utils.CreateNotFoundError("提醒规则")
}

// DeleteReminderRule 删除提醒规则；不存在时为空操作
func (s *Store) DeleteReminderRule(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reminderRules {
		if s.reminderRules[i].ID == id {
			s.reminderRules = append(s.reminderRules[:i], s.reminderRules[i+1:]...)
			return
		}
	}
}

// ---------- 提醒状态 ----------

// GetReminderState 获取商机的提醒状态
func (s *Store) GetReminderState(opportunityID string) (models.OpportunityReminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reminders[opportunityID]
	return r, ok
}

// BumpReminderState 提醒触发后累加提醒次数并刷新最后提醒时间
func (s *Store) BumpReminderState(opportunityID, remindTime string) models.OpportunityReminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reminders[opportunityID]
	if !ok {
		r = models.OpportunityReminder{OpportunityID: opportunityID, IsActive: true}
	}
	r.RemindCount++
	r.LastRemindTime = remindTime
	s.reminders[opportunityID] = r
	return r
}
