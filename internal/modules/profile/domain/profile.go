package domain

import (
	"regexp"
	"time"

	eventDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/event/domain"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/samber/lo"
)

const FieldName = "Name"

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidName reports whether name is usable as a profile name. Valid names
// are safe to use as file names.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Profile is a named Telegram destination with the events it subscribes to
type Profile struct {
	Name      string                  `json:"name"`
	Settings  settingsDomain.Settings `json:"settings"`
	Events    []eventDomain.EventType `json:"events,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// Subscribed reports whether the profile wants events of type t.
// A profile without an explicit list receives everything.
func (p *Profile) Subscribed(t eventDomain.EventType) bool {
	return len(p.Events) == 0 || lo.Contains(p.Events, t)
}

// Validate checks the name, the event list and the stored settings
func (p *Profile) Validate() settingsDomain.ValidationResult {
	res := settingsDomain.ValidateStored(&p.Settings)

	if !ValidName(p.Name) {
		res.Add(settingsDomain.NewFailure(FieldName, "must be 1-64 letters, digits, '-' or '_'"))
	}
	for _, t := range p.Events {
		if !t.IsValid() {
			res.Add(settingsDomain.NewFailure("Events", t.String()+" is not a valid EventType"))
		}
	}

	return res
}

// Masked returns a copy with the bot token hidden
func (p Profile) Masked() Profile {
	p.Settings = p.Settings.Masked()
	return p
}
