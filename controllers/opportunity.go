package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/service"
	"github.com/SuperCup/pms-bd-process/utils"
)

// OpportunityController 商机接口
type OpportunityController struct {
	store *repository.Store
	blobs *repository.BlobStore
}

// NewOpportunityController 创建商机接口
func NewOpportunityController(store *repository.Store, blobs *repository.BlobStore) *OpportunityController {
	return &OpportunityController{store: store, blobs: blobs}
}

// parseOpportunityFilter 从查询参数解析商机筛选条件
// customerIds/followerIds 支持逗号分隔或重复参数两种写法
func parseOpportunityFilter(c *gin.Context) models.OpportunityFilter {
	year, _ := strconv.Atoi(c.Query("year"))
	return models.OpportunityFilter{
		Keyword:         c.Query("keyword"),
		Year:            year,
		CreateTimeStart: c.Query("createTimeStart"),
		CreateTimeEnd:   c.Query("createTimeEnd"),
		CustomerIDs:     parseIDList(c, "customerIds"),
		FollowerIDs:     parseIDList(c, "followerIds"),
		Status:          c.Query("status"),
		Importance:      c.Query("importance"),
		Type:            c.Query("type"),
	}
}

func parseIDList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// GetOpportunityList 获取商机列表
func (ctl *OpportunityController) GetOpportunityList(c *gin.Context) {
	page := parsePage(c).Normalize()
	result, err := service.QueryOpportunities(
		ctl.store.ListOpportunities(), parseOpportunityFilter(c),
		c.Query("sortField"), c.Query("sortOrder"), page,
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.PaginatedResponse(c, result.Items, result.Total, page.Page, page.PageSize)
}

// GetOpportunityDetail 获取商机详情
func (ctl *OpportunityController) GetOpportunityDetail(c *gin.Context) {
	opportunity, err := ctl.store.GetOpportunity(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, opportunity, "")
}

// CreateOpportunity 创建商机
// 客户与跟进人在创建时固化为快照；跟进人缺省为当前用户
func (ctl *OpportunityController) CreateOpportunity(c *gin.Context) {
	var req models.OpportunityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}

	customer, err := ctl.store.GetCustomer(req.CustomerID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var follower models.User
	if req.FollowerID != "" {
		follower, err = ctl.store.GetUser(req.FollowerID)
	} else {
		follower, err = ctl.store.CurrentUser()
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	opportunity := models.Opportunity{
		ID:               utils.GenerateID(),
		Item:             req.Item,
		CreateTime:       now.Format(time.RFC3339),
		CreateYear:       now.Year(),
		CreateMonth:      int(now.Month()),
		Customer:         customer,
		Importance:       req.Importance,
		Type:             req.Type,
		Follower:         follower,
		PlanCompleteTime: req.PlanCompleteTime,
		Status:           req.Status,
		Progress:         req.Progress,
		LastUpdateTime:   now.Format(time.RFC3339),
		RelatedDocs:      req.RelatedDocs,
	}
	if opportunity.Importance == "" {
		opportunity.Importance = models.ImportanceImportant
	}
	if opportunity.Type == "" {
		opportunity.Type = models.TypeInvitation
	}
	if opportunity.Status == "" {
		opportunity.Status = models.StatusInProgress
	}
	if opportunity.Progress != "" {
		opportunity.ProgressHistory = []models.ProgressRecord{{
			ID:            utils.GenerateID(),
			OpportunityID: opportunity.ID,
			Content:       opportunity.Progress,
			CreateTime:    opportunity.CreateTime,
			Creator:       follower,
		}}
	}

	ctl.store.InsertOpportunity(opportunity)
	utils.SuccessResponse(c, opportunity, "创建商机成功", http.StatusCreated)
}

// UpdateOpportunity 更新商机
// createTime/createYear/createMonth 创建时固化，不接受修改
func (ctl *OpportunityController) UpdateOpportunity(c *gin.Context) {
	var req models.OpportunityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}

	// 快照查询在进入存储写路径之前完成，写路径内不再回调存储
	var customer *models.Customer
	if req.CustomerID != nil {
		found, err := ctl.store.GetCustomer(*req.CustomerID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		customer = &found
	}
	var follower *models.User
	if req.FollowerID != nil {
		found, err := ctl.store.GetUser(*req.FollowerID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		follower = &found
	}

	opportunity, err := ctl.store.UpdateOpportunity(c.Param("id"), func(o *models.Opportunity) error {
		if req.Item != nil {
			if strings.TrimSpace(*req.Item) == "" {
				return utils.CreateValidationError("事项不能为空")
			}
			o.Item = *req.Item
		}
		if customer != nil {
			o.Customer = *customer
		}
		if req.Importance != nil {
			o.Importance = *req.Importance
		}
		if req.Type != nil {
			o.Type = *req.Type
		}
		if follower != nil {
			o.Follower = *follower
		}
		if req.PlanCompleteTime != nil {
			o.PlanCompleteTime = *req.PlanCompleteTime
		}
		if req.Status != nil {
			o.Status = *req.Status
		}
		if req.RelatedDocs != nil {
			o.RelatedDocs = *req.RelatedDocs
		}
		return nil
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, opportunity, "更新商机成功")
}

// DeleteOpportunity 删除商机，不存在时也返回成功
func (ctl *OpportunityController) DeleteOpportunity(c *gin.Context) {
	ctl.store.DeleteOpportunity(c.Param("id"))
	utils.SuccessResponse(c, nil, "删除商机成功")
}

// GetProgressRecords 获取跟进记录列表
func (ctl *OpportunityController) GetProgressRecords(c *gin.Context) {
	opportunity, err := ctl.store.GetOpportunity(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	records := opportunity.ProgressHistory
	if records == nil {
		records = []models.ProgressRecord{}
	}
	utils.SuccessResponse(c, records, "")
}

// AddProgressRecord 追加跟进记录
// 记录只追加不修改，商机的 progress 字段同步为最新内容
func (ctl *OpportunityController) AddProgressRecord(c *gin.Context) {
	var req models.AddProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		utils.HandleError(c, utils.CreateValidationError("跟进内容不能为空"))
		return
	}

	creator, err := ctl.store.CurrentUser()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	record, err := ctl.store.AddProgress(c.Param("id"), req.Content, creator)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, record, "添加跟进记录成功", http.StatusCreated)
}

// ExportOpportunities 导出商机列表为xlsx
// 应用与列表接口相同的筛选和排序，不分页
func (ctl *OpportunityController) ExportOpportunities(c *gin.Context) {
	cmp, err := service.OpportunityComparator(c.Query("sortField"), c.Query("sortOrder"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	items := service.Filter(ctl.store.ListOpportunities(), service.OpportunityPredicates(parseOpportunityFilter(c)))
	if cmp != nil {
		sort.SliceStable(items, func(i, j int) bool { return cmp(items[i], items[j]) < 0 })
	}

	f, err := service.ExportOpportunities(items, service.EffectiveOptionConfig(ctl.blobs))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("opportunities_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(c.Writer); err != nil {
		utils.LogError(err, nil, "导出商机文件写入失败")
	}
}
