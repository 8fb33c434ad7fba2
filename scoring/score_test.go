package scoring

import (
	"testing"

	"github.com/BerniceZTT/intimacy_crm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountWithTier(tier models.AccountTier, lastDays *int) models.Account {
	account := models.Account{Name: "测试客户", Tier: tier}
	if lastDays != nil {
		account.LastInteractionAt = daysAgo(*lastDays)
	}
	return account
}

func intPtr(n int) *int { return &n }

func threeAreaContacts() []models.Contact {
	return []models.Contact{
		contactIn(models.BusinessAreaMarketing),
		contactIn(models.BusinessAreaRnD),
		contactIn(models.BusinessAreaProcurement),
	}
}

func TestComputeIntimacyScore(t *testing.T) {
	// 场景A: A级客户10天前联系，节奏7天，逾期3天
	// recency = 60 - 3*5 = 45，覆盖3/5 = 24，总分69 → Ok
	t.Run("场景A", func(t *testing.T) {
		score, err := ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(10)), threeAreaContacts(), testNow)
		require.NoError(t, err)

		assert.Equal(t, 45, score.Recency)
		assert.Equal(t, 24, score.Coverage)
		assert.Equal(t, 69, score.Total)
		assert.Equal(t, ScoreLabelOk, score.Label)
		assert.Equal(t, ScoreToneNeutral, score.Tone)
		assert.Equal(t, 7, score.Cadence)
		require.NotNil(t, score.DaysSinceLast)
		assert.Equal(t, 10, *score.DaysSinceLast)
		assert.Equal(t, 3, score.CoveredAreaCount)
		assert.Len(t, score.MissingAreas, 2)
	})

	// 场景B: 从未联系 → recency 0，总分24 → Risk
	t.Run("场景B", func(t *testing.T) {
		account := accountWithTier(models.AccountTierA, nil)
		score, err := ComputeIntimacyScore(account, threeAreaContacts(), testNow)
		require.NoError(t, err)

		assert.Equal(t, 0, score.Recency)
		assert.Equal(t, 24, score.Total)
		assert.Equal(t, ScoreLabelRisk, score.Label)
		assert.Nil(t, score.DaysSinceLast)
		assert.True(t, IsDue(account, testNow))
	})

	// 场景D: 节奏内满分及时性 + 零联系人 → 总分60恰好落在Ok区间下沿之上
	t.Run("场景D", func(t *testing.T) {
		score, err := ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(2)), nil, testNow)
		require.NoError(t, err)

		assert.Equal(t, 60, score.Recency)
		assert.Equal(t, 0, score.Coverage)
		assert.Equal(t, 60, score.Total)
		assert.Equal(t, ScoreLabelOk, score.Label)
		assert.Equal(t, 0, score.CoveredAreaCount)
		assert.Len(t, score.MissingAreas, 5)
	})

	t.Run("节奏内满分", func(t *testing.T) {
		// 刚好在节奏边界上，d == c 仍算节奏内
		score, err := ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(7)), nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, 60, score.Recency)
	})

	t.Run("每逾期一天扣5分", func(t *testing.T) {
		// 逾期1天=55，逾期2天=50，这个常数变了会改变整个排序行为
		score1, err := ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(8)), nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, 55, score1.Recency)

		score2, err := ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(9)), nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, 50, score2.Recency)
	})

	t.Run("严重逾期及时性归零不出负数", func(t *testing.T) {
		score, err := ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(365)), nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, 0, score.Recency)
		assert.Equal(t, 0, score.Total)
	})

	t.Run("评级阈值边界", func(t *testing.T) {
		// 80 → Strong
		fullCoverage := []models.Contact{
			contactIn(models.BusinessAreaMarketing),
			contactIn(models.BusinessAreaRnD),
			contactIn(models.BusinessAreaProcurement),
			contactIn(models.BusinessAreaCommercial),
			contactIn(models.BusinessAreaDirectors),
		}
		// recency 40 (逾期4天) + coverage 40 = 80
		score, err := ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(11)), fullCoverage, testNow)
		require.NoError(t, err)
		assert.Equal(t, 80, score.Total)
		assert.Equal(t, ScoreLabelStrong, score.Label)
		assert.Equal(t, ScoreToneGood, score.Tone)

		// 低于80掉出Strong: recency 35 + coverage 40 = 75 → Ok
		score, err = ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(12)), fullCoverage, testNow)
		require.NoError(t, err)
		assert.Equal(t, 75, score.Total)
		assert.Equal(t, ScoreLabelOk, score.Label)

		// 55 → Ok，阈值本身算Ok不算Risk
		// recency 15 (逾期9天) + coverage 40 = 55
		score, err = ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(16)), fullCoverage, testNow)
		require.NoError(t, err)
		assert.Equal(t, 55, score.Total)
		assert.Equal(t, ScoreLabelOk, score.Label)
		assert.Equal(t, ScoreToneNeutral, score.Tone)

		// 54 → Risk
		// recency 30 (逾期6天) + coverage 24 = 54
		score, err = ComputeIntimacyScore(accountWithTier(models.AccountTierA, intPtr(13)), threeAreaContacts(), testNow)
		require.NoError(t, err)
		assert.Equal(t, 54, score.Total)
		assert.Equal(t, ScoreLabelRisk, score.Label)
		assert.Equal(t, ScoreToneWarn, score.Tone)
	})

	// P4: 任意输入总分都在[0,100]
	t.Run("总分边界", func(t *testing.T) {
		for _, days := range []*int{nil, intPtr(0), intPtr(5), intPtr(50), intPtr(1000)} {
			for _, tier := range []models.AccountTier{models.AccountTierA, models.AccountTierB, models.AccountTierC} {
				score, err := ComputeIntimacyScore(accountWithTier(tier, days), threeAreaContacts(), testNow)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, score.Total, 0)
				assert.LessOrEqual(t, score.Total, 100)
			}
		}
	})

	t.Run("非法分级直接报错", func(t *testing.T) {
		_, err := ComputeIntimacyScore(models.Account{Tier: "S"}, nil, testNow)
		require.Error(t, err)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "tier", validationErr.Field)
	})

	// P6: 相同输入和相同now，两次计算结果完全一致
	t.Run("相同输入结果一致", func(t *testing.T) {
		account := accountWithTier(models.AccountTierB, intPtr(20))
		contacts := threeAreaContacts()

		first, err := ComputeIntimacyScore(account, contacts, testNow)
		require.NoError(t, err)
		second, err := ComputeIntimacyScore(account, contacts, testNow)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

// P5: 到期当且仅当从未联系或距今天数超过节奏
func TestIsDue(t *testing.T) {
	t.Run("从未联系的永远到期", func(t *testing.T) {
		assert.True(t, IsDue(accountWithTier(models.AccountTierC, nil), testNow))
	})

	t.Run("节奏内不到期", func(t *testing.T) {
		assert.False(t, IsDue(accountWithTier(models.AccountTierA, intPtr(7)), testNow))
		assert.False(t, IsDue(accountWithTier(models.AccountTierB, intPtr(14)), testNow))
		assert.False(t, IsDue(accountWithTier(models.AccountTierC, intPtr(30)), testNow))
	})

	t.Run("超过节奏到期", func(t *testing.T) {
		assert.True(t, IsDue(accountWithTier(models.AccountTierA, intPtr(8)), testNow))
		assert.True(t, IsDue(accountWithTier(models.AccountTierB, intPtr(15)), testNow))
		assert.True(t, IsDue(accountWithTier(models.AccountTierC, intPtr(31)), testNow))
	})
}
