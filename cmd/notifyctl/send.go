package main

import (
	"fmt"
	"strings"

	eventDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/event/domain"
	notificationService "github.com/reshetovitsme/telegram-notifier/internal/modules/notification/service"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/spf13/cobra"
)

type sendFlags struct {
	event       string
	message     string
	seriesTitle string
	imdbID      string
	tvdbID      int
	tvMazeID    int
}

func (f *sendFlags) envelope() eventDomain.Envelope {
	envelope := eventDomain.Envelope{
		EventType: eventDomain.EventType(f.event),
		Message:   f.message,
	}
	if f.seriesTitle != "" || f.imdbID != "" || f.tvdbID != 0 || f.tvMazeID != 0 {
		envelope.Series = &eventDomain.Series{
			Title:    f.seriesTitle,
			ImdbID:   f.imdbID,
			TvdbID:   f.tvdbID,
			TvMazeID: f.tvMazeID,
		}
	}
	return envelope
}

func sendCmd() *cobra.Command {
	var flags settingsFlags
	var send sendFlags

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a single event notification",
		Long: `Format an event the way the server does and send it.

Examples:
  notifyctl send --event grab --message "Show S01E01 grabbed"
  notifyctl send --event series_add --message "Show added" --series-title Show --imdb-id tt0903747`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, settings, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			if res := settingsDomain.Validate(&settings); !res.IsValid() {
				return printResult(cmd, res)
			}

			event, err := send.envelope().Event()
			if err != nil {
				return err
			}

			notifier := notificationService.NewNotifier(newProxy(cfg), &settings)
			if err := notifier.Notify(cmd.Context(), event); err != nil {
				return fmt.Errorf("failed to send %s: %w", event.Type(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sent %s\n", event.Type())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&send.event, "event", "e", "", "Event type: "+strings.Join(eventDomain.EventTypeNames(), ", "))
	cmd.Flags().StringVarP(&send.message, "message", "m", "", "Event message")
	cmd.Flags().StringVar(&send.seriesTitle, "series-title", "", "Series title")
	cmd.Flags().StringVar(&send.imdbID, "imdb-id", "", "Series IMDb ID")
	cmd.Flags().IntVar(&send.tvdbID, "tvdb-id", 0, "Series TVDb ID")
	cmd.Flags().IntVar(&send.tvMazeID, "tvmaze-id", 0, "Series TVMaze ID")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}
