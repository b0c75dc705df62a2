package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// SeedProfileName is the profile created from telegram_* settings at startup
const SeedProfileName = "default"

type Config struct {
	TelegramAPIURL       string  `koanf:"telegram_api_url"`
	StoragePath          string  `koanf:"storage_path"`
	HTTPPort             string  `koanf:"http_port"`
	AppEnv               AppEnv  `koanf:"app_env"`
	LogLevel             string  `koanf:"log_level"`
	SendRatePerSecond    float64 `koanf:"send_rate_per_second"`
	HistoryRetentionDays int     `koanf:"history_retention_days"`
	HistoryPruneSchedule string  `koanf:"history_prune_schedule"`

	// Optional profile seeded at startup
	TelegramBotToken         string `koanf:"telegram_bot_token"`
	TelegramChatID           string `koanf:"telegram_chat_id"`
	TelegramTopicID          int    `koanf:"telegram_topic_id"`
	TelegramSendSilently     bool   `koanf:"telegram_send_silently"`
	TelegramSendMetadataLink bool   `koanf:"telegram_send_metadata_link"`
	TelegramMetadataLinkType string `koanf:"telegram_metadata_link_type"`
}

var configFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

// Load reads the first config file found in the working directory, then
// environment variables, which override file values.
func Load() (*Config, error) {
	configFile, _ := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})
	return LoadFrom(configFile)
}

// LoadFrom is Load with an explicit config file. An empty path skips the file.
func LoadFrom(configFile string) (*Config, error) {
	k := koanf.New(".")

	if configFile != "" {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	defaults := map[string]any{
		"telegram_api_url":            "https://api.telegram.org",
		"storage_path":                "./data",
		"http_port":                   "8080",
		"app_env":                     "production",
		"log_level":                   "info",
		"send_rate_per_second":        1,
		"history_retention_days":      30,
		"history_prune_schedule":      "@daily",
		"telegram_send_metadata_link": true,
		"telegram_metadata_link_type": string(settingsDomain.MetadataLinkTypeIMDb),
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	if _, err := settingsDomain.ParseMetadataLinkType(cfg.TelegramMetadataLinkType); err != nil {
		return nil, oops.With("telegram_metadata_link_type", cfg.TelegramMetadataLinkType).Wrap(err)
	}

	return &cfg, nil
}

// Level returns the configured log level, defaulting to info
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// HistoryRetention returns the history retention window
func (c *Config) HistoryRetention() time.Duration {
	return time.Duration(c.HistoryRetentionDays) * 24 * time.Hour
}

// SeedSettings returns the settings described by the telegram_* keys.
// ok is false when no bot token is configured.
func (c *Config) SeedSettings() (settings settingsDomain.Settings, ok bool) {
	if c.TelegramBotToken == "" {
		return settings, false
	}

	linkType, _ := settingsDomain.ParseMetadataLinkType(c.TelegramMetadataLinkType)
	settings = settingsDomain.Settings{
		BotToken:         c.TelegramBotToken,
		ChatID:           c.TelegramChatID,
		SendSilently:     c.TelegramSendSilently,
		SendMetadataLink: c.TelegramSendMetadataLink,
		MetadataLinkType: linkType,
	}
	if c.TelegramTopicID != 0 {
		topicID := c.TelegramTopicID
		settings.TopicID = &topicID
	}
	return settings, true
}
