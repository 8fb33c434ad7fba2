package scoring

import (
	"testing"
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := testNow.AddDate(0, 0, -n)
	return &t
}

func TestDaysSince(t *testing.T) {
	t.Run("空时间戳返回nil", func(t *testing.T) {
		assert.Nil(t, DaysSince(nil, testNow))
	})

	t.Run("整天数向下取整", func(t *testing.T) {
		// 10天 + 6小时，仍算10天
		ts := testNow.Add(-10*24*time.Hour - 6*time.Hour)
		d := DaysSince(&ts, testNow)
		require.NotNil(t, d)
		assert.Equal(t, 10, *d)
	})

	t.Run("同一天返回0", func(t *testing.T) {
		ts := testNow.Add(-3 * time.Hour)
		d := DaysSince(&ts, testNow)
		require.NotNil(t, d)
		assert.Equal(t, 0, *d)
	})

	t.Run("未来时间戳按0处理，不返回负数", func(t *testing.T) {
		ts := testNow.Add(48 * time.Hour)
		d := DaysSince(&ts, testNow)
		require.NotNil(t, d)
		assert.Equal(t, 0, *d)
	})
}

func TestCadenceDays(t *testing.T) {
	assert.Equal(t, 7, CadenceDays(models.AccountTierA))
	assert.Equal(t, 14, CadenceDays(models.AccountTierB))
	assert.Equal(t, 30, CadenceDays(models.AccountTierC))
}
