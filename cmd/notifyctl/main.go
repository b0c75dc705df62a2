// notifyctl validates Telegram settings and sends notifications without
// running the server.
//
// Usage:
//
//	notifyctl validate --token 123456:ABC --chat-id -100123
//	notifyctl test --token 123456:ABC --chat-id -100123
//	notifyctl send --event grab --message "Episode grabbed"
//
// Settings not given as flags are read from the telegram_* config keys.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notifyctl",
		Short: "Validate Telegram settings and send notifications",
		Long: `notifyctl talks to the Telegram Bot API directly.

Flags override the telegram_* keys of the config file and environment.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(testCmd())
	rootCmd.AddCommand(sendCmd())

	return rootCmd
}
