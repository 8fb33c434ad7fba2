package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountTierValidate(t *testing.T) {
	for _, tier := range []AccountTier{AccountTierA, AccountTierB, AccountTierC} {
		assert.NoError(t, tier.Validate())
	}

	for _, bad := range []string{"", "D", "a", "AA"} {
		err := AccountTier(bad).Validate()
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "tier", validationErr.Field)
		assert.Equal(t, bad, validationErr.Value)
	}
}

func TestBusinessAreaValidate(t *testing.T) {
	for _, area := range AllBusinessAreas {
		assert.NoError(t, area.Validate())
	}

	// 不允许空业务线，也不允许静默兜底到某条线
	for _, bad := range []string{"", "Sales", "r&d", "RND"} {
		err := BusinessArea(bad).Validate()
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "area", validationErr.Field)
	}
}

func TestContactChannelValidate(t *testing.T) {
	for _, channel := range []ContactChannel{ContactChannelCall, ContactChannelWhatsapp, ContactChannelEmail} {
		assert.NoError(t, channel.Validate())
	}

	for _, bad := range []string{"", "sms", "WhatsApp"} {
		err := ContactChannel(bad).Validate()
		require.Error(t, err)
	}
}

func TestValidateNextStepDate(t *testing.T) {
	assert.NoError(t, ValidateNextStepDate("2025-06-20"))

	for _, bad := range []string{"", "20250620", "2025/06/20", "06-20-2025", "明天"} {
		err := ValidateNextStepDate(bad)
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "nextStepDate", validationErr.Field)
	}
}

func TestRequireNonBlank(t *testing.T) {
	// binding:"required" 只拦空串，纯空白必须在这里拦住
	for _, bad := range []string{"", " ", "   ", "\t", "\n", " \t \n "} {
		_, err := RequireNonBlank("summary", bad)
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "summary", validationErr.Field)
	}

	got, err := RequireNonBlank("name", "  王工  ")
	require.NoError(t, err)
	assert.Equal(t, "王工", got)

	got, err = RequireNonBlank("nextStep", "发送样品报价")
	require.NoError(t, err)
	assert.Equal(t, "发送样品报价", got)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("tier", "S")
	assert.Contains(t, err.Error(), "tier")
	assert.Contains(t, err.Error(), "S")
}
