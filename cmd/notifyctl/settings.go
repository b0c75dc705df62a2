package main

import (
	"fmt"

	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/config"
	"github.com/reshetovitsme/telegram-notifier/internal/transport/telegram"
	"github.com/spf13/cobra"
)

// settingsFlags are the flags shared by every subcommand
type settingsFlags struct {
	configFile   string
	apiURL       string
	token        string
	chatID       string
	topicID      int
	silent       bool
	metadataLink bool
	linkType     string
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configFile, "config", "c", "", "Config file (default: config.yaml/.yml/.json/.toml in the working directory)")
	flags.StringVar(&f.apiURL, "api-url", "", "Telegram Bot API URL")
	flags.StringVarP(&f.token, "token", "t", "", "Bot token")
	flags.StringVar(&f.chatID, "chat-id", "", "Chat ID")
	flags.IntVar(&f.topicID, "topic-id", 0, "Topic ID (0 for none)")
	flags.BoolVar(&f.silent, "silent", false, "Send without notification sound")
	flags.BoolVar(&f.metadataLink, "metadata-link", true, "Link series messages to a metadata site")
	flags.StringVar(&f.linkType, "link-type", "", "Metadata link type: IMDb, TVDb, TVMaze, Trakt")
}

func (f *settingsFlags) loadConfig() (*config.Config, error) {
	if f.configFile != "" {
		return config.LoadFrom(f.configFile)
	}
	return config.Load()
}

// resolve merges flags over the configured telegram_* keys
func (f *settingsFlags) resolve(cmd *cobra.Command) (*config.Config, settingsDomain.Settings, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, settingsDomain.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	settings, ok := cfg.SeedSettings()
	if !ok {
		settings = settingsDomain.Default()
		settings.ChatID = cfg.TelegramChatID
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.TelegramAPIURL = f.apiURL
	}
	if flags.Changed("token") {
		settings.BotToken = f.token
	}
	if flags.Changed("chat-id") {
		settings.ChatID = f.chatID
	}
	if flags.Changed("topic-id") {
		settings.TopicID = nil
		if f.topicID != 0 {
			topicID := f.topicID
			settings.TopicID = &topicID
		}
	}
	if flags.Changed("silent") {
		settings.SendSilently = f.silent
	}
	if flags.Changed("metadata-link") {
		settings.SendMetadataLink = f.metadataLink
	}
	if flags.Changed("link-type") {
		linkType, err := settingsDomain.ParseMetadataLinkType(f.linkType)
		if err != nil {
			return nil, settingsDomain.Settings{}, err
		}
		settings.MetadataLinkType = linkType
	}

	return cfg, settings, nil
}

func newProxy(cfg *config.Config) *telegram.Proxy {
	return telegram.NewProxy(cfg.TelegramAPIURL)
}

// printResult writes each failure on its own line and returns an error when
// there are any
func printResult(cmd *cobra.Command, res settingsDomain.ValidationResult) error {
	out := cmd.OutOrStdout()
	if res.IsValid() {
		fmt.Fprintln(out, "OK")
		return nil
	}

	for _, line := range res.Strings() {
		fmt.Fprintln(out, line)
	}
	return fmt.Errorf("%d validation failure(s)", len(res.Failures))
}
