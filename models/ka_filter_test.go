package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangeJSON(t *testing.T) {
	t.Run("序列化为二元数组", func(t *testing.T) {
		data, err := json.Marshal(DateRange{Start: "2025-01-01", End: "2025-12-31"})
		require.NoError(t, err)
		assert.JSONEq(t, `["2025-01-01","2025-12-31"]`, string(data))
	})

	t.Run("从二元数组反序列化", func(t *testing.T) {
		var r DateRange
		require.NoError(t, json.Unmarshal([]byte(`["2025-01-01","2025-06-30"]`), &r))
		assert.Equal(t, "2025-01-01", r.Start)
		assert.Equal(t, "2025-06-30", r.End)
	})

	t.Run("元素数量不对时报错", func(t *testing.T) {
		var r DateRange
		assert.Error(t, json.Unmarshal([]byte(`["2025-01-01"]`), &r))
	})
}

func TestKAFilterConfigIsShowAll(t *testing.T) {
	var nilCfg *KAFilterConfig
	assert.True(t, nilCfg.IsShowAll())
	assert.True(t, (&KAFilterConfig{}).IsShowAll())
	assert.True(t, (&KAFilterConfig{VisibleCustomers: []string{}}).IsShowAll())

	assert.False(t, (&KAFilterConfig{VisibleCustomers: []string{"c1"}}).IsShowAll())
	assert.False(t, (&KAFilterConfig{Status: []string{"won"}}).IsShowAll())
	assert.False(t, (&KAFilterConfig{CreateTimeRange: &DateRange{Start: "2025-01-01", End: "2025-12-31"}}).IsShowAll())
}

func TestKAFilterConfigJSONRoundTrip(t *testing.T) {
	cfg := KAFilterConfig{
		VisibleCustomers:      []string{"c1", "c2"},
		CreateTimeRange:       &DateRange{Start: "2025-01-01", End: "2025-06-30"},
		Status:                []string{"in-progress", "won"},
		PlanCompleteTimeRange: &DateRange{Start: "2025-03-01", End: "2025-09-30"},
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var back KAFilterConfig
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, cfg, back)
}
