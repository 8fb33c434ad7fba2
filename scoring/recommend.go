package scoring

import (
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"
)

// PickRecommendedContact 选出最该优先触达的联系人
// 排序规则：从未触达的联系人优先于任何触达过的联系人；
// 触达过的按距今天数降序（越久未联系越靠前）；
// 并列时按联系人ID升序，保证结果确定
func PickRecommendedContact(contacts []models.Contact, now time.Time) *models.Contact {
	if len(contacts) == 0 {
		return nil
	}

	best := contacts[0]
	for _, candidate := range contacts[1:] {
		if moreOverdue(candidate, best, now) {
			best = candidate
		}
	}
	return &best
}

// moreOverdue 判断a是否比b更需要触达
func moreOverdue(a, b models.Contact, now time.Time) bool {
	da := DaysSince(a.LastTouchAt, now)
	db := DaysSince(b.LastTouchAt, now)

	// 从未触达的严格优先
	if da == nil && db != nil {
		return true
	}
	if da != nil && db == nil {
		return false
	}
	if da != nil && db != nil && *da != *db {
		return *da > *db
	}

	// 并列按ID升序
	return a.ID.Hex() < b.ID.Hex()
}
