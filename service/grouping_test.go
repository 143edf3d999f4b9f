package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuperCup/pms-bd-process/models"
)

func boardItem(id, customer, createTime string, status models.OpportunityStatus) models.Opportunity {
	return models.Opportunity{
		ID:         id,
		CreateTime: createTime,
		Customer:   models.Customer{ID: "id-" + customer, Name: customer},
		Follower:   models.User{Name: "王雄军"},
		Status:     status,
	}
}

func TestGroupBy(t *testing.T) {
	items := []models.Opportunity{
		boardItem("1", "蒙牛", "2025-03-01", models.StatusInProgress),
		boardItem("2", "和路雪", "2025-03-02", models.StatusInProgress),
		boardItem("3", "蒙牛", "2025-03-03", models.StatusWon),
	}

	groups := GroupBy(items, func(o models.Opportunity) string { return o.Customer.Name })

	t.Run("分组键按字典序排列", func(t *testing.T) {
		require.Len(t, groups, 2)
		assert.Equal(t, "和路雪", groups[0].Key)
		assert.Equal(t, "蒙牛", groups[1].Key)
	})

	t.Run("同组记录保持输入顺序", func(t *testing.T) {
		require.Len(t, groups[1].Items, 2)
		assert.Equal(t, "1", groups[1].Items[0].ID)
		assert.Equal(t, "3", groups[1].Items[1].ID)
	})

	t.Run("两次分组结果一致", func(t *testing.T) {
		again := GroupBy(items, func(o models.Opportunity) string { return o.Customer.Name })
		assert.Equal(t, groups, again)
	})
}

func TestSortWithinGroups(t *testing.T) {
	groups := []Group[models.Opportunity]{
		{Key: "A", Items: []models.Opportunity{
			boardItem("old", "A", "2025-01-01", models.StatusInProgress),
			boardItem("new", "A", "2025-06-01", models.StatusInProgress),
		}},
		{Key: "B", Items: []models.Opportunity{
			boardItem("mid", "B", "2025-03-01", models.StatusInProgress),
		}},
	}

	SortWithinGroups(groups, ByCreateTimeDesc)

	// 组内降序，组间互不影响
	assert.Equal(t, "new", groups[0].Items[0].ID)
	assert.Equal(t, "old", groups[0].Items[1].ID)
	assert.Equal(t, "mid", groups[1].Items[0].ID)
}

func TestGlobalRowNumber(t *testing.T) {
	groups := []Group[models.Opportunity]{
		{Key: "A", Items: make([]models.Opportunity, 3)},
		{Key: "B", Items: make([]models.Opportunity, 2)},
		{Key: "C", Items: make([]models.Opportunity, 4)},
	}

	t.Run("全部展开时行号全局连续", func(t *testing.T) {
		expanded := map[string]bool{"A": true, "B": true, "C": true}
		assert.Equal(t, 1, GlobalRowNumber(groups, expanded, "A", 0))
		assert.Equal(t, 4, GlobalRowNumber(groups, expanded, "B", 0))
		assert.Equal(t, 6, GlobalRowNumber(groups, expanded, "C", 0))
		assert.Equal(t, 9, GlobalRowNumber(groups, expanded, "C", 3))
	})

	t.Run("折叠的分组不贡献行号偏移", func(t *testing.T) {
		expanded := map[string]bool{"A": false, "B": true, "C": true}
		assert.Equal(t, 1, GlobalRowNumber(groups, expanded, "B", 0))
		assert.Equal(t, 3, GlobalRowNumber(groups, expanded, "C", 0))
	})

	t.Run("展开折叠状态变化后重新计算", func(t *testing.T) {
		allExpanded := map[string]bool{"A": true, "B": true, "C": true}
		bCollapsed := map[string]bool{"A": true, "B": false, "C": true}
		assert.Equal(t, 6, GlobalRowNumber(groups, allExpanded, "C", 0))
		assert.Equal(t, 4, GlobalRowNumber(groups, bCollapsed, "C", 0))
	})
}

func TestOpportunityGroupStats(t *testing.T) {
	t.Run("中标率保留一位小数", func(t *testing.T) {
		items := []models.Opportunity{
			boardItem("1", "A", "2025-01-01", models.StatusWon),
			boardItem("2", "A", "2025-01-02", models.StatusInProgress),
			boardItem("3", "A", "2025-01-03", models.StatusLost),
		}
		stats := OpportunityGroupStats(items)
		assert.Equal(t, 3, stats.Count)
		assert.Equal(t, 33.3, stats.WonRatio)
	})

	t.Run("主跟进人取当前排序下第一条记录", func(t *testing.T) {
		items := []models.Opportunity{
			{Follower: models.User{Name: "赵露明"}},
			{Follower: models.User{Name: "王雄军"}},
		}
		stats := OpportunityGroupStats(items)
		assert.Equal(t, "赵露明", stats.MainFollower)
	})

	t.Run("空分组返回零值", func(t *testing.T) {
		stats := OpportunityGroupStats(nil)
		assert.Equal(t, 0, stats.Count)
		assert.Equal(t, 0.0, stats.WonRatio)
		assert.Empty(t, stats.MainFollower)
	})
}

func TestByStatusThenCreateTimeDesc(t *testing.T) {
	items := []models.Opportunity{
		boardItem("lost", "A", "2025-06-01", models.StatusLost),
		boardItem("won", "A", "2025-01-01", models.StatusWon),
		boardItem("progress-old", "A", "2025-02-01", models.StatusInProgress),
		boardItem("progress-new", "A", "2025-05-01", models.StatusInProgress),
		boardItem("visit", "A", "2025-04-01", models.StatusCompletedVisit),
	}
	groups := []Group[models.Opportunity]{{Key: "A", Items: items}}

	SortWithinGroups(groups, ByStatusThenCreateTimeDesc)

	var ids []string
	for _, o := range groups[0].Items {
		ids = append(ids, o.ID)
	}
	// 进行中优先（组内创建时间降序），流失垫底
	assert.Equal(t, []string{"progress-new", "progress-old", "visit", "won", "lost"}, ids)
}
