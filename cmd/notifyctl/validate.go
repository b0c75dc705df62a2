package main

import (
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check settings without contacting Telegram",
		Long: `Check that the bot token and chat ID are set and the topic ID is valid.

Examples:
  notifyctl validate --token 123456:ABC --chat-id -100123
  notifyctl validate --token 123456:ABC --chat-id -100123 --topic-id 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, settings, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd, settingsDomain.Validate(&settings))
		},
	}

	flags.register(cmd)
	return cmd
}
