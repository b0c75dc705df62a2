package repository

import (
	"github.com/reshetovitsme/telegram-notifier/internal/modules/profile/domain"
)

// Repository defines the interface for profile persistence
type Repository interface {
	SaveProfile(profile *domain.Profile) error
	GetProfile(name string) (*domain.Profile, error)
	GetAllProfiles() ([]*domain.Profile, error)
	DeleteProfile(name string) error
}
