package scoring

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"
)

// WorklistFilter 工作清单筛选条件
// SearchText 对客户名称和国家做忽略大小写的子串匹配
// Tier 为 "all" 或具体分级，精确匹配
type WorklistFilter struct {
	SearchText string `json:"searchText"`
	Tier       string `json:"tier"`
}

// EnrichedAccount 评分后的客户视图
type EnrichedAccount struct {
	Account            models.Account               `json:"account"`
	Score              IntimacyScore                `json:"score"`
	Coverage           map[models.BusinessArea]int  `json:"coverage"`
	RecommendedContact *models.Contact              `json:"recommendedContact,omitempty"`
	Due                bool                         `json:"due"`

	// 展示用字段
	LastTouchText string `json:"lastTouchText"`
	ValueText     string `json:"valueText"`
}

// Worklist 今日跟进视图
type Worklist struct {
	MustContact []EnrichedAccount `json:"mustContact"`
	All         []EnrichedAccount `json:"all"`
}

// IsDue 判断客户是否到期需要联系
// 从未联系过的客户永远算到期
func IsDue(account models.Account, now time.Time) bool {
	days := DaysSince(account.LastInteractionAt, now)
	if days == nil {
		return true
	}
	return *days > CadenceDays(account.Tier)
}

// BuildWorklist 构建工作清单
// 纯函数，无副作用：每次调用从快照重新计算，不缓存、不增量更新
// 同一次调用内所有客户用同一个now评估
func BuildWorklist(accounts []models.Account, contactsByAccount map[string][]models.Contact, filter WorklistFilter, now time.Time) (Worklist, error) {
	// 先筛选再评分
	filtered := make([]models.Account, 0, len(accounts))
	for _, account := range accounts {
		if matchesFilter(account, filter) {
			filtered = append(filtered, account)
		}
	}

	all := make([]EnrichedAccount, 0, len(filtered))
	for _, account := range filtered {
		contacts := contactsByAccount[account.ID.Hex()]
		enriched, err := enrichAccount(account, contacts, now)
		if err != nil {
			return Worklist{}, err
		}
		all = append(all, enriched)
	}

	mustContact := make([]EnrichedAccount, 0, len(all))
	for _, enriched := range all {
		if enriched.Due {
			mustContact = append(mustContact, enriched)
		}
	}

	// mustContact：总分升序，并列按覆盖率升序，最缺照顾的客户排最前
	sort.SliceStable(mustContact, func(i, j int) bool {
		if mustContact[i].Score.Total != mustContact[j].Score.Total {
			return mustContact[i].Score.Total < mustContact[j].Score.Total
		}
		return mustContact[i].Score.Coverage < mustContact[j].Score.Coverage
	})

	// all：总分升序，风险最高的客户排最前
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score.Total < all[j].Score.Total
	})

	return Worklist{MustContact: mustContact, All: all}, nil
}

// enrichAccount 对单个客户做评分、覆盖率和推荐联系人计算
func enrichAccount(account models.Account, contacts []models.Contact, now time.Time) (EnrichedAccount, error) {
	score, err := ComputeIntimacyScore(account, contacts, now)
	if err != nil {
		return EnrichedAccount{}, err
	}

	counts, err := CoverageByArea(contacts)
	if err != nil {
		return EnrichedAccount{}, err
	}

	return EnrichedAccount{
		Account:            account,
		Score:              score,
		Coverage:           counts,
		RecommendedContact: PickRecommendedContact(contacts, now),
		Due:                IsDue(account, now),
		LastTouchText:      formatDaysText(score.DaysSinceLast),
		ValueText:          formatValueText(account.ValueUsd),
	}, nil
}

// matchesFilter 判断客户是否命中筛选条件
func matchesFilter(account models.Account, filter WorklistFilter) bool {
	if filter.Tier != "" && filter.Tier != "all" && string(account.Tier) != filter.Tier {
		return false
	}

	search := strings.TrimSpace(strings.ToLower(filter.SearchText))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(account.Name), search) ||
		strings.Contains(strings.ToLower(account.Country), search)
}

// formatDaysText 距上次联系的展示文本
func formatDaysText(days *int) string {
	if days == nil {
		return "从未联系"
	}
	if *days == 0 {
		return "今天"
	}
	return fmt.Sprintf("%d天前", *days)
}

// formatValueText 客户价值的展示文本
func formatValueText(valueUsd float64) string {
	if valueUsd <= 0 {
		return "-"
	}
	return fmt.Sprintf("$%.0f", valueUsd)
}
