package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/service"
	"github.com/SuperCup/pms-bd-process/utils"
)

// BoardController KA看板和上周进展看板接口
type BoardController struct {
	store *repository.Store
	blobs *repository.BlobStore
}

// NewBoardController 创建看板接口
func NewBoardController(store *repository.Store, blobs *repository.BlobStore) *BoardController {
	return &BoardController{store: store, blobs: blobs}
}

// boardRow 看板行，携带折叠展示下的全局行号
type boardRow struct {
	RowNumber int `json:"rowNumber"`
	models.Opportunity
}

// boardGroup 看板分组
type boardGroup struct {
	Key        string             `json:"key"`
	CustomerID string             `json:"customerId,omitempty"`
	Collapsed  bool               `json:"collapsed"`
	Stats      service.GroupStats `json:"stats"`
	Items      []boardRow         `json:"items"`
}

// GetKABoard KA商机看板
// 按客户名称分组，组内创建时间降序，应用持久化的可见性配置；
// collapsed 参数（可重复）指定折叠的分组键，折叠组不贡献行号偏移
func (ctl *BoardController) GetKABoard(c *gin.Context) {
	ka := make([]models.Opportunity, 0)
	for _, o := range ctl.store.ListOpportunities() {
		if o.Customer.IsKA {
			ka = append(ka, o)
		}
	}

	groups := service.GroupBy(ka, func(o models.Opportunity) string { return o.Customer.Name })
	service.SortWithinGroups(groups, service.ByCreateTimeDesc)
	groups = service.ApplyVisibility(groups, service.LoadKAFilterConfig(ctl.blobs))

	collapsed := make(map[string]bool)
	for _, key := range c.QueryArray("collapsed") {
		collapsed[key] = true
	}
	expanded := make(map[string]bool, len(groups))
	for _, g := range groups {
		expanded[g.Key] = !collapsed[g.Key]
	}

	out := make([]boardGroup, 0, len(groups))
	for _, g := range groups {
		bg := boardGroup{
			Key:       g.Key,
			Collapsed: collapsed[g.Key],
			Stats:     service.OpportunityGroupStats(g.Items),
			Items:     make([]boardRow, 0, len(g.Items)),
		}
		if len(g.Items) > 0 {
			bg.CustomerID = g.Items[0].Customer.ID
		}
		for i, o := range g.Items {
			bg.Items = append(bg.Items, boardRow{
				RowNumber:   service.GlobalRowNumber(groups, expanded, g.Key, i),
				Opportunity: o,
			})
		}
		out = append(out, bg)
	}

	utils.SuccessResponse(c, out, "")
}

// GetLastWeekBoard 上周进展看板
// 筛选上周（周一至周日）创建的商机，按跟进人分组，
// 组内先按状态优先级再按创建时间降序
func (ctl *BoardController) GetLastWeekBoard(c *gin.Context) {
	start, end := utils.LastWeekRange(time.Now())
	filter := models.OpportunityFilter{
		CreateTimeStart: start,
		CreateTimeEnd:   end,
	}
	items := service.Filter(ctl.store.ListOpportunities(), service.OpportunityPredicates(filter))

	groups := service.GroupBy(items, func(o models.Opportunity) string { return o.Follower.Name })
	service.SortWithinGroups(groups, service.ByStatusThenCreateTimeDesc)

	out := make([]boardGroup, 0, len(groups))
	for _, g := range groups {
		bg := boardGroup{
			Key:   g.Key,
			Stats: service.OpportunityGroupStats(g.Items),
			Items: make([]boardRow, 0, len(g.Items)),
		}
		for i, o := range g.Items {
			bg.Items = append(bg.Items, boardRow{RowNumber: i + 1, Opportunity: o})
		}
		out = append(out, bg)
	}

	utils.SuccessResponse(c, gin.H{
		"range":  gin.H{"start": filter.CreateTimeStart, "end": filter.CreateTimeEnd},
		"groups": out,
	}, "")
}
