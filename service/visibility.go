package service

import (
	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/utils"
)

// ApplyVisibility 对分组后的KA看板数据应用可见性配置
//
// 过滤分两级：
//  1. 客户级：visibleCustomers 非空时，不在集合内的客户分组整组丢弃；
//     为空或配置缺失时所有分组通过
//  2. 记录级：依次应用创建时间范围、状态白名单、计划完成时间范围，
//     每项都是可选的；过滤后变空的分组整组丢弃，不渲染空分组
//
// 幂等：同一配置应用两次与应用一次结果相同
func ApplyVisibility(groups []Group[models.Opportunity], cfg *models.KAFilterConfig) []Group[models.Opportunity] {
	if cfg.IsShowAll() {
		return groups
	}

	visible := toSet(cfg.VisibleCustomers)
	allowedStatus := toSet(cfg.Status)

	out := make([]Group[models.Opportunity], 0, len(groups))
	for _, g := range groups {
		if len(g.Items) == 0 {
			continue
		}
		// 同一分组内所有记录共享同一客户
		if len(visible) > 0 && !visible[g.Items[0].Customer.ID] {
			continue
		}

		items := make([]models.Opportunity, 0, len(g.Items))
		for _, o := range g.Items {
			if cfg.CreateTimeRange != nil &&
				!utils.WithinDayRange(o.CreateTime, cfg.CreateTimeRange.Start, cfg.CreateTimeRange.End) {
				continue
			}
			if len(allowedStatus) > 0 && !allowedStatus[string(o.Status)] {
				continue
			}
			if cfg.PlanCompleteTimeRange != nil &&
				!utils.WithinDayRange(o.PlanCompleteTime, cfg.PlanCompleteTimeRange.Start, cfg.PlanCompleteTimeRange.End) {
				continue
			}
			items = append(items, o)
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, Group[models.Opportunity]{Key: g.Key, Items: items})
	}
	return out
}

// LoadKAFilterConfig 读取持久化的KA筛选配置
// 未配置或内容损坏时返回nil（等价于展示全部）
func LoadKAFilterConfig(blobs *repository.BlobStore) *models.KAFilterConfig {
	var cfg models.KAFilterConfig
	if !blobs.Get(repository.KAFilterConfigKey, &cfg) {
		return nil
	}
	return &cfg
}

// SaveKAFilterConfig 保存KA筛选配置
func SaveKAFilterConfig(blobs *repository.BlobStore, cfg models.KAFilterConfig) error {
	return blobs.Set(repository.KAFilterConfigKey, cfg)
}

// ResetKAFilterConfig 重置为"展示全部"
// 写入零值配置而不是隐藏全部客户的配置
func ResetKAFilterConfig(blobs *repository.BlobStore) error {
	return blobs.Set(repository.KAFilterConfigKey, models.KAFilterConfig{VisibleCustomers: []string{}})
}
