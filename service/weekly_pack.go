package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/BerniceZTT/intimacy_crm/scoring"
)

// FormatWeeklyPack 生成本周跟进清单的纯文本导出
// 只做排版，不改变工作清单的排序和内容
func FormatWeeklyPack(worklist scoring.Worklist, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "本周跟进清单 (%s)\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "待联系客户: %d / %d\n", len(worklist.MustContact), len(worklist.All))
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")

	if len(worklist.MustContact) == 0 {
		b.WriteString("本周没有到期客户，保持节奏。\n")
		return b.String()
	}

	for i, enriched := range worklist.MustContact {
		account := enriched.Account
		score := enriched.Score

		fmt.Fprintf(&b, "%d. %s [%s级] 亲密度%d (%s)\n", i+1, account.Name, account.Tier, score.Total, score.Label)
		fmt.Fprintf(&b, "   上次联系: %s\n", enriched.LastTouchText)

		if contact := enriched.RecommendedContact; contact != nil {
			line := fmt.Sprintf("   建议联系: %s (%s)", contact.Name, contact.Area)
			if contact.PreferredChannel != "" {
				line += fmt.Sprintf("，渠道: %s", contact.PreferredChannel)
			}
			b.WriteString(line)
			b.WriteString("\n")
			if contact.PersonalHook != "" {
				fmt.Fprintf(&b, "   切入点: %s\n", contact.PersonalHook)
			}
		} else {
			b.WriteString("   建议联系: 暂无联系人，先补充联系人\n")
		}

		if len(score.MissingAreas) > 0 {
			areas := make([]string, 0, len(score.MissingAreas))
			for _, area := range score.MissingAreas {
				areas = append(areas, string(area))
			}
			fmt.Fprintf(&b, "   缺口业务线: %s\n", strings.Join(areas, ", "))
		}

		b.WriteString("\n")
	}

	return b.String()
}
