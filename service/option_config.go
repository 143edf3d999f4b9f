package service

import (
	"github.com/SuperCup/pms-bd-process/models"
	"github.com/SuperCup/pms-bd-process/repository"
	"github.com/SuperCup/pms-bd-process/utils"
)

// EffectiveOptionConfig 读取生效的选项配置
// 持久化内容按字段与内置默认值合并：缺失的字段回退默认，不做深合并；
// 整个配置缺失或损坏时返回完整默认配置
func EffectiveOptionConfig(blobs *repository.BlobStore) models.OptionConfig {
	defaults := models.DefaultOptionConfig()

	var saved models.OptionConfig
	if !blobs.Get(repository.OptionConfigKey, &saved) {
		return defaults
	}

	if saved.Importance == nil {
		saved.Importance = defaults.Importance
	}
	if saved.Status == nil {
		saved.Status = defaults.Status
	}
	if saved.Type == nil {
		saved.Type = defaults.Type
	}
	return saved
}

// SaveOptionConfig 校验并保存选项配置
// 每个列表内 value 必须唯一，校验失败时不写入
func SaveOptionConfig(blobs *repository.BlobStore, cfg models.OptionConfig) error {
	for _, list := range []struct {
		name  string
		items []models.OptionItem
	}{
		{"重要程度", cfg.Importance},
		{"状态", cfg.Status},
		{"类型", cfg.Type},
	} {
		seen := make(map[string]bool, len(list.items))
		for _, item := range list.items {
			if seen[item.Value] {
				return utils.CreateValidationError(list.name + "选项值 [" + item.Value + "] 重复")
			}
			seen[item.Value] = true
		}
	}
	return blobs.Set(repository.OptionConfigKey, cfg)
}
