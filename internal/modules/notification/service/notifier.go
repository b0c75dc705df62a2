package service

import (
	"context"

	eventDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/event/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/modules/notification/domain"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	sharederrors "github.com/reshetovitsme/telegram-notifier/internal/shared/errors"
	"github.com/samber/oops"
)

// Transport delivers formatted notifications and probes credentials
type Transport interface {
	SendNotification(ctx context.Context, title, body string, settings *settingsDomain.Settings) error
	Test(ctx context.Context, settings *settingsDomain.Settings) *settingsDomain.ValidationFailure
}

// Notifier turns events into a title/body pair and hands them to the transport.
// It holds no state besides its settings, so one instance may serve concurrent events.
// Transport errors are returned unchanged.
type Notifier struct {
	transport Transport
	settings  *settingsDomain.Settings
}

// NewNotifier creates a notifier for the given settings
func NewNotifier(transport Transport, settings *settingsDomain.Settings) *Notifier {
	return &Notifier{
		transport: transport,
		settings:  settings,
	}
}

// Notify routes ev to the matching On* operation.
func (n *Notifier) Notify(ctx context.Context, ev eventDomain.Event) error {
	switch e := ev.(type) {
	case eventDomain.GrabMessage:
		return n.OnGrab(ctx, e)
	case eventDomain.DownloadMessage:
		return n.OnDownload(ctx, e)
	case eventDomain.EpisodeDeleteMessage:
		return n.OnEpisodeFileDelete(ctx, e)
	case eventDomain.SeriesAddMessage:
		return n.OnSeriesAdd(ctx, e)
	case eventDomain.SeriesDeleteMessage:
		return n.OnSeriesDelete(ctx, e)
	case eventDomain.HealthIssueMessage:
		return n.OnHealthIssue(ctx, e.Check)
	case eventDomain.HealthRestoredMessage:
		return n.OnHealthRestored(ctx, e.PreviousCheck)
	case eventDomain.ApplicationUpdateMessage:
		return n.OnApplicationUpdate(ctx, e)
	case eventDomain.ManualInteractionRequiredMessage:
		return n.OnManualInteractionRequired(ctx, e)
	}
	return oops.With("event", ev).Wrap(sharederrors.ErrUnsupportedEvent)
}

func (n *Notifier) OnGrab(ctx context.Context, message eventDomain.GrabMessage) error {
	return n.transport.SendNotification(ctx, domain.EpisodeGrabbedTitle, message.Message, n.settings)
}

func (n *Notifier) OnDownload(ctx context.Context, message eventDomain.DownloadMessage) error {
	return n.transport.SendNotification(ctx, domain.EpisodeDownloadedTitle, message.Message, n.settings)
}

func (n *Notifier) OnEpisodeFileDelete(ctx context.Context, message eventDomain.EpisodeDeleteMessage) error {
	return n.transport.SendNotification(ctx, domain.EpisodeDeletedTitle, message.Message, n.settings)
}

func (n *Notifier) OnSeriesAdd(ctx context.Context, message eventDomain.SeriesAddMessage) error {
	text := FormatMessageWithLink(n.settings, message.Message, message.Series)
	return n.transport.SendNotification(ctx, domain.SeriesAddedTitle, text, n.settings)
}

// OnSeriesDelete sends the plain message. The linked form is computed and
// discarded, so deleted series are never linked.
func (n *Notifier) OnSeriesDelete(ctx context.Context, message eventDomain.SeriesDeleteMessage) error {
	_ = FormatMessageWithLink(n.settings, message.Message, message.Series)
	return n.transport.SendNotification(ctx, domain.SeriesDeletedTitle, message.Message, n.settings)
}

func (n *Notifier) OnHealthIssue(ctx context.Context, check eventDomain.HealthCheck) error {
	return n.transport.SendNotification(ctx, domain.HealthIssueTitle, check.Message, n.settings)
}

func (n *Notifier) OnHealthRestored(ctx context.Context, previousCheck eventDomain.HealthCheck) error {
	return n.transport.SendNotification(ctx, domain.HealthRestoredTitle, domain.HealthRestoredPrefix+previousCheck.Message, n.settings)
}

func (n *Notifier) OnApplicationUpdate(ctx context.Context, message eventDomain.ApplicationUpdateMessage) error {
	return n.transport.SendNotification(ctx, domain.ApplicationUpdateTitle, message.Message, n.settings)
}

func (n *Notifier) OnManualInteractionRequired(ctx context.Context, message eventDomain.ManualInteractionRequiredMessage) error {
	return n.transport.SendNotification(ctx, domain.ManualInteractionRequiredTitle, message.Message, n.settings)
}

// Test probes the transport with the notifier's settings
func (n *Notifier) Test(ctx context.Context) settingsDomain.ValidationResult {
	return settingsDomain.NewValidationResult(n.transport.Test(ctx, n.settings))
}
