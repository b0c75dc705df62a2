package di

import (
	"context"
	"testing"

	historyService "github.com/reshetovitsme/telegram-notifier/internal/modules/history/service"
	notificationService "github.com/reshetovitsme/telegram-notifier/internal/modules/notification/service"
	profileService "github.com/reshetovitsme/telegram-notifier/internal/modules/profile/service"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/config"
	httpServer "github.com/reshetovitsme/telegram-notifier/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		TelegramAPIURL:           "http://127.0.0.1:1",
		StoragePath:              t.TempDir(),
		HTTPPort:                 "0",
		SendRatePerSecond:        1,
		HistoryRetentionDays:     30,
		HistoryPruneSchedule:     "@daily",
		TelegramBotToken:         "123456:ABC-DEF1234",
		TelegramChatID:           "-100123",
		TelegramTopicID:          7,
		TelegramSendMetadataLink: true,
		TelegramMetadataLinkType: "TVDb",
	}
}

func TestSetup_WiresServices(t *testing.T) {
	cfg := testConfig(t)
	injector, err := SetupWith(func() (*config.Config, error) { return cfg, nil })
	require.NoError(t, err)

	_, err = do.Invoke[*httpServer.Server](injector)
	require.NoError(t, err)
	_, err = do.Invoke[*historyService.Pruner](injector)
	require.NoError(t, err)

	transport, err := do.Invoke[notificationService.Transport](injector)
	require.NoError(t, err)
	assert.IsType(t, &historyService.Recorder{}, transport)

	profiles := do.MustInvoke[*profileService.Service](injector)
	seeded, err := profiles.GetProfile(config.SeedProfileName)
	require.NoError(t, err)
	assert.Equal(t, "-100123", seeded.Settings.ChatID)
	require.NotNil(t, seeded.Settings.TopicID)
	assert.Equal(t, 7, *seeded.Settings.TopicID)

	assert.NoError(t, Shutdown(context.Background(), injector))
}

func TestSetup_NoSeedWithoutToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.TelegramBotToken = ""
	injector, err := SetupWith(func() (*config.Config, error) { return cfg, nil })
	require.NoError(t, err)

	profiles := do.MustInvoke[*profileService.Service](injector)
	all, err := profiles.GetAllProfiles()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSetup_InvalidSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.TelegramChatID = ""
	injector, err := SetupWith(func() (*config.Config, error) { return cfg, nil })
	require.NoError(t, err)

	_, err = do.Invoke[*profileService.Service](injector)
	assert.Error(t, err)
}
