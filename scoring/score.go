package scoring

import (
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"
)

// 评分常量，全系统唯一出处，任何页面不得自行复制计算逻辑
const (
	maxRecencyScore = 60 // 及时性满分
	maxTotalScore   = 100

	// 超出节奏后每天扣的及时性分数
	// 这是全系统最影响行为的一个数字，改动必须同步改测试
	penaltyPerDay = 5

	// 评级阈值
	strongThreshold = 80
	okThreshold     = 55
)

// ScoreLabel 评级枚举
type ScoreLabel string

const (
	ScoreLabelStrong ScoreLabel = "Strong"
	ScoreLabelOk     ScoreLabel = "Ok"
	ScoreLabelRisk   ScoreLabel = "Risk"
)

// ScoreTone 评级展示色调，只用于前端展示，不参与排序
type ScoreTone string

const (
	ScoreToneGood    ScoreTone = "good"
	ScoreToneNeutral ScoreTone = "neutral"
	ScoreToneWarn    ScoreTone = "warn"
)

// IntimacyScore 亲密度评分结果
// 除总分外暴露全部中间量，工作清单排序和前端展示都依赖这些字段
type IntimacyScore struct {
	Total    int        `json:"total"`
	Recency  int        `json:"recency"`
	Coverage int        `json:"coverage"`
	Label    ScoreLabel `json:"label"`
	Tone     ScoreTone  `json:"tone"`

	Cadence          int                   `json:"cadence"`
	DaysSinceLast    *int                  `json:"daysSinceLast"`
	CoveredAreaCount int                   `json:"coveredAreaCount"`
	MissingAreas     []models.BusinessArea `json:"missingAreas"`
}

// ComputeIntimacyScore 计算客户亲密度评分
// 纯函数：now由调用方显式传入，同一快照下结果可重复计算
func ComputeIntimacyScore(account models.Account, contacts []models.Contact, now time.Time) (IntimacyScore, error) {
	if err := account.Tier.Validate(); err != nil {
		return IntimacyScore{}, err
	}

	counts, err := CoverageByArea(contacts)
	if err != nil {
		return IntimacyScore{}, err
	}

	cadence := CadenceDays(account.Tier)
	days := DaysSince(account.LastInteractionAt, now)

	// 及时性：从未联系记0分；在节奏内满分；逾期按天扣分
	recency := 0
	if days != nil {
		if *days <= cadence {
			recency = maxRecencyScore
		} else {
			recency = maxRecencyScore - (*days-cadence)*penaltyPerDay
			if recency < 0 {
				recency = 0
			}
		}
	}

	coverage := CoverageScore(counts)

	total := recency + coverage
	if total > maxTotalScore {
		total = maxTotalScore
	}
	if total < 0 {
		total = 0
	}

	label, tone := classify(total)

	return IntimacyScore{
		Total:            total,
		Recency:          recency,
		Coverage:         coverage,
		Label:            label,
		Tone:             tone,
		Cadence:          cadence,
		DaysSinceLast:    days,
		CoveredAreaCount: CoveredAreaCount(counts),
		MissingAreas:     MissingAreas(counts),
	}, nil
}

// classify 按阈值映射评级和色调
func classify(total int) (ScoreLabel, ScoreTone) {
	switch {
	case total >= strongThreshold:
		return ScoreLabelStrong, ScoreToneGood
	case total >= okThreshold:
		return ScoreLabelOk, ScoreToneNeutral
	default:
		return ScoreLabelRisk, ScoreToneWarn
	}
}
