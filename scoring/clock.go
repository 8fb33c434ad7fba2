package scoring

import (
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"
)

// DaysSince 计算时间戳距离now的整天数（向下取整）
// 时间戳为空返回nil，表示从未联系
// 未来时间戳（时钟偏差、测试数据）按0天处理，不返回负值
func DaysSince(t *time.Time, now time.Time) *int {
	if t == nil {
		return nil
	}
	days := int(now.Sub(*t).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

// CadenceDays 返回客户分级对应的期望联系间隔（天）
func CadenceDays(tier models.AccountTier) int {
	switch tier {
	case models.AccountTierA:
		return 7
	case models.AccountTierB:
		return 14
	case models.AccountTierC:
		return 30
	}
	return 0
}
