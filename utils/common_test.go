package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	parts := strings.SplitN(id, "-", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[1], 9)

	t.Run("连续生成不重复", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := GenerateID()
			assert.False(t, seen[id])
			seen[id] = true
		}
	})
}

func TestParseDate(t *testing.T) {
	cases := []string{
		"2025-03-10T09:00:00+08:00",
		"2025-03-10T09:00:00.000Z",
		"2025-03-10 09:00:00",
		"2025-03-10",
	}
	for _, value := range cases {
		t.Run(value, func(t *testing.T) {
			parsed, err := ParseDate(value)
			require.NoError(t, err)
			assert.Equal(t, 2025, parsed.Year())
			assert.Equal(t, time.March, parsed.Month())
			assert.Equal(t, 10, parsed.Day())
		})
	}

	t.Run("无法解析的内容返回错误", func(t *testing.T) {
		_, err := ParseDate("昨天")
		assert.Error(t, err)
	})
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 3, DaysBetween(
		time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local),
		time.Date(2025, 3, 13, 0, 1, 0, 0, time.Local),
	), "时分秒不影响自然日差值")

	assert.Equal(t, -1, DaysBetween(
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		time.Date(2025, 3, 9, 12, 0, 0, 0, time.Local),
	))

	assert.Equal(t, 0, DaysBetween(
		time.Date(2025, 3, 10, 1, 0, 0, 0, time.Local),
		time.Date(2025, 3, 10, 23, 0, 0, 0, time.Local),
	))
}

func TestWithinDayRange(t *testing.T) {
	t.Run("闭区间包含两端边界", func(t *testing.T) {
		assert.True(t, WithinDayRange("2025-03-01T00:00:00+08:00", "2025-03-01", "2025-03-31"))
		assert.True(t, WithinDayRange("2025-03-31T23:59:00+08:00", "2025-03-01", "2025-03-31"))
		assert.False(t, WithinDayRange("2025-04-01", "2025-03-01", "2025-03-31"))
		assert.False(t, WithinDayRange("2025-02-28", "2025-03-01", "2025-03-31"))
	})

	t.Run("空边界表示该侧不限", func(t *testing.T) {
		assert.True(t, WithinDayRange("2020-01-01", "", "2025-03-31"))
		assert.True(t, WithinDayRange("2030-01-01", "2025-03-01", ""))
		assert.True(t, WithinDayRange("2030-01-01", "", ""))
	})

	t.Run("无法解析的值不命中", func(t *testing.T) {
		assert.False(t, WithinDayRange("无效", "2025-03-01", "2025-03-31"))
	})

	t.Run("无法解析的边界被忽略", func(t *testing.T) {
		assert.True(t, WithinDayRange("2025-03-10", "无效", "无效"))
	})
}

func TestLastWeekRange(t *testing.T) {
	// 2025-03-12 是周三，上周为 03-03(周一) 至 03-09(周日)
	start, end := LastWeekRange(time.Date(2025, 3, 12, 15, 0, 0, 0, time.Local))
	assert.Equal(t, "2025-03-03", start)
	assert.Equal(t, "2025-03-09", end)

	t.Run("周一当天上周为上个完整周", func(t *testing.T) {
		start, end := LastWeekRange(time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local))
		assert.Equal(t, "2025-03-03", start)
		assert.Equal(t, "2025-03-09", end)
	})

	t.Run("周日属于本周而非下周", func(t *testing.T) {
		start, end := LastWeekRange(time.Date(2025, 3, 16, 0, 0, 0, 0, time.Local))
		assert.Equal(t, "2025-03-03", start)
		assert.Equal(t, "2025-03-09", end)
	})
}
