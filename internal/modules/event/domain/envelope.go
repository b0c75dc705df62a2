package domain

import (
	sharederrors "github.com/reshetovitsme/telegram-notifier/internal/shared/errors"
	"github.com/samber/oops"
)

// Envelope is the flat wire form of an Event, tagged by EventType.
type Envelope struct {
	EventType       EventType    `json:"event_type"`
	Message         string       `json:"message,omitempty"`
	Series          *Series      `json:"series,omitempty"`
	Quality         string       `json:"quality,omitempty"`
	DownloadClient  string       `json:"download_client,omitempty"`
	SourcePath      string       `json:"source_path,omitempty"`
	IsUpgrade       bool         `json:"is_upgrade,omitempty"`
	Reason          string       `json:"reason,omitempty"`
	DeletedFiles    bool         `json:"deleted_files,omitempty"`
	HealthCheck     *HealthCheck `json:"health_check,omitempty"`
	PreviousVersion string       `json:"previous_version,omitempty"`
	NewVersion      string       `json:"new_version,omitempty"`
}

// Event converts the envelope into its typed variant.
func (e Envelope) Event() (Event, error) {
	eventType, err := ParseEventType(string(e.EventType))
	if err != nil {
		return nil, oops.With("event_type", e.EventType).Wrap(sharederrors.ErrInvalidEnvelope)
	}

	switch eventType {
	case EventTypeGrab:
		return GrabMessage{Message: e.Message, Series: e.Series, Quality: e.Quality, DownloadClient: e.DownloadClient}, nil
	case EventTypeDownload:
		return DownloadMessage{Message: e.Message, Series: e.Series, SourcePath: e.SourcePath, IsUpgrade: e.IsUpgrade}, nil
	case EventTypeEpisodeDelete:
		return EpisodeDeleteMessage{Message: e.Message, Series: e.Series, Reason: e.Reason}, nil
	case EventTypeSeriesAdd:
		return SeriesAddMessage{Message: e.Message, Series: e.Series}, nil
	case EventTypeSeriesDelete:
		return SeriesDeleteMessage{Message: e.Message, Series: e.Series, DeletedFiles: e.DeletedFiles}, nil
	case EventTypeHealthIssue, EventTypeHealthRestored:
		check := e.HealthCheck
		if check == nil {
			// a bare message is accepted as the check message
			if e.Message == "" {
				return nil, oops.With("event_type", eventType).Wrapf(sharederrors.ErrInvalidEnvelope, "health_check is required")
			}
			check = &HealthCheck{Message: e.Message}
		}
		if eventType == EventTypeHealthIssue {
			return HealthIssueMessage{Check: *check}, nil
		}
		return HealthRestoredMessage{PreviousCheck: *check}, nil
	case EventTypeApplicationUpdate:
		return ApplicationUpdateMessage{Message: e.Message, PreviousVersion: e.PreviousVersion, NewVersion: e.NewVersion}, nil
	case EventTypeManualInteractionRequired:
		return ManualInteractionRequiredMessage{Message: e.Message, Series: e.Series, DownloadClient: e.DownloadClient}, nil
	}

	return nil, oops.With("event_type", eventType).Wrap(sharederrors.ErrUnsupportedEvent)
}
