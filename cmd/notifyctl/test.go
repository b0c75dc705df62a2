package main

import (
	notificationService "github.com/reshetovitsme/telegram-notifier/internal/modules/notification/service"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/spf13/cobra"
)

func testCmd() *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send a test message to the configured chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, settings, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			if res := settingsDomain.Validate(&settings); !res.IsValid() {
				return printResult(cmd, res)
			}

			notifier := notificationService.NewNotifier(newProxy(cfg), &settings)
			return printResult(cmd, notifier.Test(cmd.Context()))
		},
	}

	flags.register(cmd)
	return cmd
}
