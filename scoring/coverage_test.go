package scoring

import (
	"testing"

	"github.com/BerniceZTT/intimacy_crm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactIn(area models.BusinessArea) models.Contact {
	return models.Contact{Area: area}
}

func TestCoverageByArea(t *testing.T) {
	t.Run("五条业务线全部返回，无联系人的计0", func(t *testing.T) {
		counts, err := CoverageByArea([]models.Contact{
			contactIn(models.BusinessAreaMarketing),
			contactIn(models.BusinessAreaMarketing),
			contactIn(models.BusinessAreaRnD),
		})
		require.NoError(t, err)

		assert.Len(t, counts, 5)
		assert.Equal(t, 2, counts[models.BusinessAreaMarketing])
		assert.Equal(t, 1, counts[models.BusinessAreaRnD])
		assert.Equal(t, 0, counts[models.BusinessAreaProcurement])
		assert.Equal(t, 0, counts[models.BusinessAreaCommercial])
		assert.Equal(t, 0, counts[models.BusinessAreaDirectors])
	})

	t.Run("非法业务线直接报错，不兜底", func(t *testing.T) {
		_, err := CoverageByArea([]models.Contact{{Area: "Sales"}})
		require.Error(t, err)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "area", validationErr.Field)
		assert.Equal(t, "Sales", validationErr.Value)
	})
}

func TestMissingAreas(t *testing.T) {
	counts, err := CoverageByArea([]models.Contact{
		contactIn(models.BusinessAreaCommercial),
	})
	require.NoError(t, err)

	missing := MissingAreas(counts)
	assert.Equal(t, []models.BusinessArea{
		models.BusinessAreaMarketing,
		models.BusinessAreaRnD,
		models.BusinessAreaProcurement,
		models.BusinessAreaDirectors,
	}, missing)
}

func TestCoverageScore(t *testing.T) {
	t.Run("空联系人得0分", func(t *testing.T) {
		counts, err := CoverageByArea(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, CoverageScore(counts))
	})

	t.Run("3条业务线得24分", func(t *testing.T) {
		counts, err := CoverageByArea([]models.Contact{
			contactIn(models.BusinessAreaMarketing),
			contactIn(models.BusinessAreaRnD),
			contactIn(models.BusinessAreaProcurement),
		})
		require.NoError(t, err)
		assert.Equal(t, 24, CoverageScore(counts))
	})

	// P3: 满分40当且仅当五条业务线全覆盖，一条线多个联系人不加分
	t.Run("全覆盖得满分40", func(t *testing.T) {
		counts, err := CoverageByArea([]models.Contact{
			contactIn(models.BusinessAreaMarketing),
			contactIn(models.BusinessAreaRnD),
			contactIn(models.BusinessAreaProcurement),
			contactIn(models.BusinessAreaCommercial),
			contactIn(models.BusinessAreaDirectors),
			contactIn(models.BusinessAreaDirectors),
		})
		require.NoError(t, err)
		assert.Equal(t, 40, CoverageScore(counts))
	})

	t.Run("一条线堆满联系人不等于全覆盖", func(t *testing.T) {
		contacts := make([]models.Contact, 5)
		for i := range contacts {
			contacts[i] = contactIn(models.BusinessAreaMarketing)
		}
		counts, err := CoverageByArea(contacts)
		require.NoError(t, err)
		assert.Equal(t, 8, CoverageScore(counts))
	})

	t.Run("得分始终在0到40之间", func(t *testing.T) {
		for n := 0; n <= 5; n++ {
			contacts := make([]models.Contact, n)
			for i := 0; i < n; i++ {
				contacts[i] = contactIn(models.AllBusinessAreas[i])
			}
			counts, err := CoverageByArea(contacts)
			require.NoError(t, err)
			score := CoverageScore(counts)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 40)
		}
	})
}
