package service

import (
	"fmt"
	"html"
	"time"

	"github.com/gorilla/feeds"
	historyDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/history/domain"
	historyRepo "github.com/reshetovitsme/telegram-notifier/internal/modules/history/repository"
	"github.com/samber/lo/mutable"
	"github.com/samber/oops"
)

const feedSize = 50

// Service renders delivery history as an RSS feed
type Service struct {
	historyRepo historyRepo.Repository
}

// New creates a new feed service
func New(historyRepo historyRepo.Repository) *Service {
	return &Service{
		historyRepo: historyRepo,
	}
}

// GenerateFeed builds a feed of the most recent deliveries
func (s *Service) GenerateFeed(baseURL string) (*feeds.Feed, error) {
	entries, err := s.historyRepo.GetEntries(feedSize)
	if err != nil {
		return nil, oops.With("context", "failed to get history").Wrap(err)
	}

	return s.buildFeed(entries, baseURL), nil
}

// GenerateFeedSince builds a feed of the deliveries sent after since,
// capped to the same size as GenerateFeed
func (s *Service) GenerateFeedSince(baseURL string, since time.Time) (*feeds.Feed, error) {
	entries, err := s.historyRepo.GetRecentEntries(since)
	if err != nil {
		return nil, oops.With("since", since, "context", "failed to get history").Wrap(err)
	}

	// repository order is oldest first
	mutable.Reverse(entries)
	if len(entries) > feedSize {
		entries = entries[:feedSize]
	}

	return s.buildFeed(entries, baseURL), nil
}

func (s *Service) buildFeed(entries []*historyDomain.Entry, baseURL string) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       "Telegram notifications",
		Link:        &feeds.Link{Href: baseURL + "/rss"},
		Description: "Notifications delivered to Telegram",
		Author:      &feeds.Author{Name: "telegram-notifier"},
		Created:     time.Unix(0, 0).UTC(),
	}

	if len(entries) > 0 {
		// entries are newest first
		feed.Updated = entries[0].SentAt
		feed.Created = entries[len(entries)-1].SentAt
	}

	feed.Items = make([]*feeds.Item, 0, len(entries))
	for _, entry := range entries {
		feed.Items = append(feed.Items, s.entryToFeedItem(entry, baseURL))
	}

	return feed
}

func (s *Service) entryToFeedItem(entry *historyDomain.Entry, baseURL string) *feeds.Item {
	description := entry.Body
	if description == "" {
		description = "No text content"
	}

	target := entry.ChatID
	if entry.TopicID != nil {
		target = fmt.Sprintf("%s (topic %d)", entry.ChatID, *entry.TopicID)
	}

	return &feeds.Item{
		Title:       entry.Title,
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/rss#%s", baseURL, entry.ID)},
		Description: description,
		Content:     fmt.Sprintf("<p>%s</p><p><small>Sent to %s</small></p>", html.EscapeString(description), html.EscapeString(target)),
		Created:     entry.SentAt,
		Id:          entry.ID,
	}
}
