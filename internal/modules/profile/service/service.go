package service

import (
	"errors"
	"time"

	"github.com/reshetovitsme/telegram-notifier/internal/modules/profile/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/modules/profile/repository"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	sharederrors "github.com/reshetovitsme/telegram-notifier/internal/shared/errors"
	"github.com/samber/oops"
)

// Service handles profile business logic
type Service struct {
	repo repository.Repository
	now  func() time.Time
}

// New creates a new profile service
func New(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// SaveProfile validates and stores a profile. Invalid profiles are rejected
// with an error wrapping ErrInvalidSettings.
func (s *Service) SaveProfile(profile *domain.Profile) error {
	profile.Settings.Normalize()
	if err := profile.Validate().Err(); err != nil {
		return oops.With("profile", profile.Name).Wrap(err)
	}

	now := s.now().UTC()
	existing, err := s.repo.GetProfile(profile.Name)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
	case errors.Is(err, sharederrors.ErrProfileNotFound):
		profile.CreatedAt = now
	default:
		return err
	}
	profile.UpdatedAt = now

	return s.repo.SaveProfile(profile)
}

// GetProfile retrieves a profile by name
func (s *Service) GetProfile(name string) (*domain.Profile, error) {
	return s.repo.GetProfile(name)
}

// GetAllProfiles retrieves all profiles
func (s *Service) GetAllProfiles() ([]*domain.Profile, error) {
	return s.repo.GetAllProfiles()
}

// DeleteProfile deletes a profile
func (s *Service) DeleteProfile(name string) error {
	return s.repo.DeleteProfile(name)
}

// SeedProfile stores settings under name, keeping the event subscriptions of
// an existing profile with that name.
func (s *Service) SeedProfile(name string, settings settingsDomain.Settings) error {
	profile := &domain.Profile{Name: name, Settings: settings}

	existing, err := s.repo.GetProfile(name)
	switch {
	case err == nil:
		profile.Events = existing.Events
	case !errors.Is(err, sharederrors.ErrProfileNotFound):
		return err
	}

	return s.SaveProfile(profile)
}
