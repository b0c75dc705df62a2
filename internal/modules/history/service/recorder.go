package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/reshetovitsme/telegram-notifier/internal/modules/history/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/modules/history/repository"
	notificationService "github.com/reshetovitsme/telegram-notifier/internal/modules/notification/service"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
)

// Recorder wraps a transport and stores every successful delivery.
// Storage problems are logged and never turn a delivered message into a failure.
type Recorder struct {
	next   notificationService.Transport
	repo   repository.Repository
	logger *slog.Logger
	now    func() time.Time
}

var _ notificationService.Transport = (*Recorder)(nil)

// NewRecorder creates a recording transport around next
func NewRecorder(next notificationService.Transport, repo repository.Repository) *Recorder {
	return &Recorder{
		next:   next,
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}
}

// SetLogger sets the logger
func (r *Recorder) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

func (r *Recorder) SendNotification(ctx context.Context, title, body string, settings *settingsDomain.Settings) error {
	if err := r.next.SendNotification(ctx, title, body, settings); err != nil {
		return err
	}

	entry := &domain.Entry{
		ID:      uuid.NewString(),
		Title:   title,
		Body:    body,
		ChatID:  settings.ChatID,
		TopicID: settings.TopicID,
		SentAt:  r.now().UTC(),
	}
	if err := r.repo.SaveEntry(entry); err != nil {
		r.logger.Error("Failed to record notification", "error", err, "chat_id", settings.ChatID, "title", title)
	}

	return nil
}

// Test is passed through unrecorded
func (r *Recorder) Test(ctx context.Context, settings *settingsDomain.Settings) *settingsDomain.ValidationFailure {
	return r.next.Test(ctx, settings)
}
