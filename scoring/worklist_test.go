package scoring

import (
	"testing"
	"time"

	"github.com/BerniceZTT/intimacy_crm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func worklistAccount(hex, name, country string, tier models.AccountTier, lastDays *int) models.Account {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	account := models.Account{
		ID:      id,
		Name:    name,
		Tier:    tier,
		Country: country,
	}
	if lastDays != nil {
		account.LastInteractionAt = daysAgo(*lastDays)
	}
	return account
}

const (
	acctA = "a00000000000000000000001"
	acctB = "a00000000000000000000002"
	acctC = "a00000000000000000000003"
)

func TestBuildWorklist(t *testing.T) {
	accounts := []models.Account{
		// A级，逾期3天: recency 45, 无联系人 coverage 0 → 总分45，到期
		worklistAccount(acctA, "宏达电子", "China", models.AccountTierA, intPtr(10)),
		// B级，节奏内: recency 60, 覆盖1/5 coverage 8 → 总分68，不到期
		worklistAccount(acctB, "Alba Trading", "Spain", models.AccountTierB, intPtr(3)),
		// C级，从未联系: recency 0, 无联系人 → 总分0，到期
		worklistAccount(acctC, "Norte Foods", "Chile", models.AccountTierC, nil),
	}
	contactsByAccount := map[string][]models.Contact{
		acctB: {contactIn(models.BusinessAreaCommercial)},
	}

	t.Run("到期客户按总分升序排列", func(t *testing.T) {
		worklist, err := BuildWorklist(accounts, contactsByAccount, WorklistFilter{Tier: "all"}, testNow)
		require.NoError(t, err)

		require.Len(t, worklist.MustContact, 2)
		assert.Equal(t, "Norte Foods", worklist.MustContact[0].Account.Name)
		assert.Equal(t, "宏达电子", worklist.MustContact[1].Account.Name)

		require.Len(t, worklist.All, 3)
		assert.Equal(t, "Norte Foods", worklist.All[0].Account.Name)
		assert.Equal(t, "宏达电子", worklist.All[1].Account.Name)
		assert.Equal(t, "Alba Trading", worklist.All[2].Account.Name)
	})

	t.Run("到期标记与节奏一致", func(t *testing.T) {
		worklist, err := BuildWorklist(accounts, contactsByAccount, WorklistFilter{Tier: "all"}, testNow)
		require.NoError(t, err)

		for _, enriched := range worklist.All {
			assert.Equal(t, IsDue(enriched.Account, testNow), enriched.Due)
		}
	})

	t.Run("总分并列按覆盖率升序", func(t *testing.T) {
		// 甲: 从未联系 recency 0 + 全覆盖 coverage 40 = 40
		// 乙: A级逾期4天 recency 40 + 无联系人 coverage 0 = 40
		// 总分并列，覆盖率低的乙排前
		tied := []models.Account{
			worklistAccount(acctA, "甲", "", models.AccountTierA, nil),
			worklistAccount(acctB, "乙", "", models.AccountTierA, intPtr(11)),
		}
		fullCoverage := make([]models.Contact, 0, len(models.AllBusinessAreas))
		for _, area := range models.AllBusinessAreas {
			fullCoverage = append(fullCoverage, contactIn(area))
		}
		tiedContacts := map[string][]models.Contact{acctA: fullCoverage}

		worklist, err := BuildWorklist(tied, tiedContacts, WorklistFilter{Tier: "all"}, testNow)
		require.NoError(t, err)
		require.Len(t, worklist.MustContact, 2)
		assert.Equal(t, worklist.MustContact[0].Score.Total, worklist.MustContact[1].Score.Total)
		assert.Equal(t, "乙", worklist.MustContact[0].Account.Name)
		assert.Equal(t, "甲", worklist.MustContact[1].Account.Name)

		// 同总分同覆盖率时保持稳定顺序
		sameScore := []models.Account{
			worklistAccount(acctA, "丙", "", models.AccountTierA, nil),
			worklistAccount(acctB, "丁", "", models.AccountTierA, nil),
		}
		worklist, err = BuildWorklist(sameScore, nil, WorklistFilter{Tier: "all"}, testNow)
		require.NoError(t, err)
		require.Len(t, worklist.MustContact, 2)
		assert.Equal(t, "丙", worklist.MustContact[0].Account.Name)
	})

	t.Run("文本筛选忽略大小写，匹配名称和国家", func(t *testing.T) {
		worklist, err := BuildWorklist(accounts, contactsByAccount, WorklistFilter{SearchText: "alba", Tier: "all"}, testNow)
		require.NoError(t, err)
		require.Len(t, worklist.All, 1)
		assert.Equal(t, "Alba Trading", worklist.All[0].Account.Name)

		worklist, err = BuildWorklist(accounts, contactsByAccount, WorklistFilter{SearchText: "CHILE", Tier: "all"}, testNow)
		require.NoError(t, err)
		require.Len(t, worklist.All, 1)
		assert.Equal(t, "Norte Foods", worklist.All[0].Account.Name)
	})

	t.Run("分级筛选精确匹配", func(t *testing.T) {
		worklist, err := BuildWorklist(accounts, contactsByAccount, WorklistFilter{Tier: "A"}, testNow)
		require.NoError(t, err)
		require.Len(t, worklist.All, 1)
		assert.Equal(t, "宏达电子", worklist.All[0].Account.Name)

		// 空分级等同all
		worklist, err = BuildWorklist(accounts, contactsByAccount, WorklistFilter{}, testNow)
		require.NoError(t, err)
		assert.Len(t, worklist.All, 3)
	})

	t.Run("筛选在评分排序之前", func(t *testing.T) {
		worklist, err := BuildWorklist(accounts, contactsByAccount, WorklistFilter{SearchText: "不存在的客户", Tier: "all"}, testNow)
		require.NoError(t, err)
		assert.Empty(t, worklist.MustContact)
		assert.Empty(t, worklist.All)
	})

	t.Run("推荐联系人和展示字段齐全", func(t *testing.T) {
		worklist, err := BuildWorklist(accounts, contactsByAccount, WorklistFilter{Tier: "B"}, testNow)
		require.NoError(t, err)
		require.Len(t, worklist.All, 1)

		enriched := worklist.All[0]
		require.NotNil(t, enriched.RecommendedContact)
		assert.Equal(t, models.BusinessAreaCommercial, enriched.RecommendedContact.Area)
		assert.Equal(t, "3天前", enriched.LastTouchText)
		assert.Len(t, enriched.Coverage, 5)
	})

	t.Run("从未联系的展示文本", func(t *testing.T) {
		worklist, err := BuildWorklist(accounts, contactsByAccount, WorklistFilter{Tier: "C"}, testNow)
		require.NoError(t, err)
		require.Len(t, worklist.All, 1)
		assert.Equal(t, "从未联系", worklist.All[0].LastTouchText)
	})

	// 纯函数: 相同快照和now，重复调用结果一致
	t.Run("重复调用结果一致", func(t *testing.T) {
		first, err := BuildWorklist(accounts, contactsByAccount, WorklistFilter{Tier: "all"}, testNow)
		require.NoError(t, err)
		second, err := BuildWorklist(accounts, contactsByAccount, WorklistFilter{Tier: "all"}, testNow)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("非法分级数据直接报错", func(t *testing.T) {
		bad := []models.Account{worklistAccount(acctA, "坏数据", "", "X", nil)}
		_, err := BuildWorklist(bad, nil, WorklistFilter{Tier: "all"}, time.Now())
		require.Error(t, err)
	})
}
