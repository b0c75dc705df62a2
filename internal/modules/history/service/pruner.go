package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/reshetovitsme/telegram-notifier/internal/modules/history/repository"
	"github.com/robfig/cron/v3"
	"github.com/samber/oops"
)

// Pruner periodically removes history entries older than the retention window
type Pruner struct {
	repo      repository.Repository
	schedule  string
	retention time.Duration
	logger    *slog.Logger
	now       func() time.Time
	cron      *cron.Cron
}

// NewPruner creates a pruner running on a cron schedule such as "@daily"
func NewPruner(repo repository.Repository, schedule string, retention time.Duration) *Pruner {
	return &Pruner{
		repo:      repo,
		schedule:  schedule,
		retention: retention,
		logger:    slog.Default(),
		now:       time.Now,
	}
}

// SetLogger sets the logger
func (p *Pruner) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// Start schedules pruning and runs one pass immediately
func (p *Pruner) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(p.schedule, func() {
		if _, err := p.Prune(); err != nil {
			p.logger.Error("Failed to prune history", "error", err)
		}
	}); err != nil {
		return oops.With("schedule", p.schedule, "context", "invalid prune schedule").Wrap(err)
	}
	p.cron = c

	if _, err := p.Prune(); err != nil {
		p.logger.Error("Failed to prune history", "error", err)
	}

	c.Start()
	go func() {
		<-ctx.Done()
		p.Stop()
	}()

	return nil
}

// Stop stops the schedule and waits for a running prune to finish
func (p *Pruner) Stop() {
	if p.cron == nil {
		return
	}
	<-p.cron.Stop().Done()
}

// Prune deletes entries sent before now minus retention
func (p *Pruner) Prune() (int, error) {
	cutoff := p.now().Add(-p.retention)
	deleted, err := p.repo.DeleteBefore(cutoff)
	if err != nil {
		return deleted, err
	}
	if deleted > 0 {
		p.logger.Info("Pruned history", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}
