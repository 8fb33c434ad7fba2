package scoring

import (
	"math"

	"github.com/BerniceZTT/intimacy_crm/models"
)

// 覆盖率满分，五条业务线全覆盖时得40分
const maxCoverageScore = 40

// CoverageByArea 按业务线统计联系人数量，五条业务线全部返回，无联系人的计0
func CoverageByArea(contacts []models.Contact) (map[models.BusinessArea]int, error) {
	counts := make(map[models.BusinessArea]int, len(models.AllBusinessAreas))
	for _, area := range models.AllBusinessAreas {
		counts[area] = 0
	}
	for _, contact := range contacts {
		if err := contact.Area.Validate(); err != nil {
			return nil, err
		}
		counts[contact.Area]++
	}
	return counts, nil
}

// MissingAreas 返回没有任何联系人的业务线，按固定枚举顺序
func MissingAreas(counts map[models.BusinessArea]int) []models.BusinessArea {
	missing := []models.BusinessArea{}
	for _, area := range models.AllBusinessAreas {
		if counts[area] == 0 {
			missing = append(missing, area)
		}
	}
	return missing
}

// CoveredAreaCount 统计至少有一个联系人的业务线数量
func CoveredAreaCount(counts map[models.BusinessArea]int) int {
	covered := 0
	for _, area := range models.AllBusinessAreas {
		if counts[area] > 0 {
			covered++
		}
	}
	return covered
}

// CoverageScore 覆盖率得分 [0,40]
// 只衡量覆盖完整度：一条业务线有5个联系人和有1个联系人贡献相同
func CoverageScore(counts map[models.BusinessArea]int) int {
	covered := CoveredAreaCount(counts)
	return int(math.Round(float64(maxCoverageScore) * float64(covered) / float64(len(models.AllBusinessAreas))))
}
