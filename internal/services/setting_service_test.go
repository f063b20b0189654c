package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

func TestSettingService_Get(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	t.Run("encrypted values are masked on the way out", func(t *testing.T) {
		testHelper.mockSettingRepository.EXPECT().Get(models.SettingKeyBankAccountRef).
			Return(models.Setting{Key: models.SettingKeyBankAccountRef, Value: "DE02", Encrypted: true}, nil)

		out, err := testHelper.settingService.Get(ctx, models.SettingKeyBankAccountRef)
		require.NoError(t, err)
		assert.Equal(t, "*****", out.Value)
		assert.True(t, out.Encrypted)
	})

	t.Run("missing key maps to structured error", func(t *testing.T) {
		testHelper.mockSettingRepository.EXPECT().Get("nope").
			Return(models.Setting{}, common.ErrDataNotFound)

		_, err := testHelper.settingService.Get(ctx, "nope")
		require.Error(t, err)

		var detail models.ErrorDetail
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, models.ErrKeySettingNotFound, detail.Code)
	})
}

func TestSettingService_Upsert(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockSettingRepository.EXPECT().
		Upsert(models.Setting{Key: models.SettingKeyMemoLimit, Value: "250"}).
		Return(models.Setting{Key: models.SettingKeyMemoLimit, Value: "250"}, nil)

	out, err := testHelper.settingService.Upsert(context.Background(), models.SettingKeyMemoLimit,
		models.UpsertSettingRequest{Value: "250"})
	require.NoError(t, err)
	assert.Equal(t, "250", out.Value)
}

func TestSettingService_IntOrDefault(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("stored value wins", func(t *testing.T) {
		testHelper.mockSettingRepository.EXPECT().Get(models.SettingKeyFetchWindowDays).
			Return(models.Setting{Key: models.SettingKeyFetchWindowDays, Value: "14"}, nil)

		assert.Equal(t, 14, testHelper.settingService.IntOrDefault(models.SettingKeyFetchWindowDays, 30))
	})

	t.Run("missing key falls back", func(t *testing.T) {
		testHelper.mockSettingRepository.EXPECT().Get(models.SettingKeyFetchWindowDays).
			Return(models.Setting{}, common.ErrDataNotFound)

		assert.Equal(t, 30, testHelper.settingService.IntOrDefault(models.SettingKeyFetchWindowDays, 30))
	})

	t.Run("unparseable value falls back", func(t *testing.T) {
		testHelper.mockSettingRepository.EXPECT().Get(models.SettingKeyFetchWindowDays).
			Return(models.Setting{Key: models.SettingKeyFetchWindowDays, Value: "soon"}, nil)

		assert.Equal(t, 30, testHelper.settingService.IntOrDefault(models.SettingKeyFetchWindowDays, 30))
	})
}
