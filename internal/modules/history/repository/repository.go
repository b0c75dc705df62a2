package repository

import (
	"time"

	"github.com/reshetovitsme/telegram-notifier/internal/modules/history/domain"
)

// Repository defines the interface for delivery history persistence
type Repository interface {
	SaveEntry(entry *domain.Entry) error
	GetEntries(limit int) ([]*domain.Entry, error)
	GetRecentEntries(since time.Time) ([]*domain.Entry, error)
	DeleteBefore(before time.Time) (int, error)
}
