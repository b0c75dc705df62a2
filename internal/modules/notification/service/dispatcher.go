package service

import (
	"context"
	"log/slog"

	eventDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/event/domain"
	profileDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/profile/domain"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	sharederrors "github.com/reshetovitsme/telegram-notifier/internal/shared/errors"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/metrics"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// ProfileSource provides the stored notification profiles
type ProfileSource interface {
	GetProfile(name string) (*profileDomain.Profile, error)
	GetAllProfiles() ([]*profileDomain.Profile, error)
}

// Dispatcher fans events out to every subscribed profile
type Dispatcher struct {
	profiles  ProfileSource
	transport Transport
	logger    *slog.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(profiles ProfileSource, transport Transport) *Dispatcher {
	return &Dispatcher{
		profiles:  profiles,
		transport: transport,
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger
func (d *Dispatcher) SetLogger(logger *slog.Logger) {
	d.logger = logger
}

// Dispatch sends ev to each subscribed profile in name order. Profiles with
// invalid settings are skipped, and ErrNoProfiles is returned when none is
// left to send to. Delivery errors are joined; one failing profile does not
// stop the rest.
func (d *Dispatcher) Dispatch(ctx context.Context, ev eventDomain.Event) error {
	if ev == nil {
		return sharederrors.ErrUnsupportedEvent
	}
	eventType := ev.Type()
	metrics.DispatchedEvents.WithLabelValues(eventType.String()).Inc()

	all, err := d.profiles.GetAllProfiles()
	if err != nil {
		return oops.With("event_type", eventType, "context", "failed to load profiles").Wrap(err)
	}

	subscribed := lo.Filter(all, func(p *profileDomain.Profile, _ int) bool {
		return p.Subscribed(eventType)
	})
	if len(subscribed) == 0 {
		return oops.With("event_type", eventType).Wrap(sharederrors.ErrNoProfiles)
	}

	var errs []error
	attempted := 0
	for _, profile := range subscribed {
		if res := settingsDomain.Validate(&profile.Settings); !res.IsValid() {
			d.logger.Warn("Skipping profile with invalid settings", "profile", profile.Name, "failures", res.Strings())
			continue
		}

		attempted++
		notifier := NewNotifier(d.transport, &profile.Settings)
		if err := notifier.Notify(ctx, ev); err != nil {
			d.logger.Error("Failed to deliver notification", "profile", profile.Name, "event_type", eventType, "error", err)
			errs = append(errs, oops.With("profile", profile.Name).Wrap(err))
			continue
		}

		d.logger.Info("Notification delivered", "profile", profile.Name, "event_type", eventType)
	}

	if attempted == 0 {
		return oops.With("event_type", eventType).Wrapf(sharederrors.ErrNoProfiles, "no subscribed profile has valid settings")
	}

	return oops.Join(errs...)
}

// Test probes the transport with a stored profile's settings
func (d *Dispatcher) Test(ctx context.Context, name string) (settingsDomain.ValidationResult, error) {
	profile, err := d.profiles.GetProfile(name)
	if err != nil {
		return settingsDomain.ValidationResult{}, err
	}

	if res := settingsDomain.Validate(&profile.Settings); !res.IsValid() {
		return res, nil
	}

	return NewNotifier(d.transport, &profile.Settings).Test(ctx), nil
}
