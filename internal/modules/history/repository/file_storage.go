package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/reshetovitsme/telegram-notifier/internal/modules/history/domain"
	"github.com/samber/oops"
)

// FileStorage implements Repository using one JSON file per entry.
// File names start with the zero-padded send time so directory order is chronological.
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based history repository
func NewFileStorage(basePath string) (Repository, error) {
	historyPath := filepath.Join(basePath, "history")
	if err := os.MkdirAll(historyPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create history directory").Wrap(err)
	}

	return &FileStorage{basePath: historyPath}, nil
}

func entryFileName(entry *domain.Entry) string {
	return fmt.Sprintf("%020d-%s.json", entry.SentAt.UnixNano(), entry.ID)
}

func (s *FileStorage) SaveEntry(entry *domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, entryFileName(entry))
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return oops.With("entry_id", entry.ID, "context", "failed to marshal history entry").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return oops.With("entry_id", entry.ID, "context", "failed to write history entry").Wrap(err)
	}
	return nil
}

func (s *FileStorage) GetEntries(limit int) ([]*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.readDir()
	if err != nil {
		return nil, err
	}

	var result []*domain.Entry
	count := 0
	for i := len(entries) - 1; i >= 0 && count < limit; i-- {
		entry, ok := s.readEntry(entries[i])
		if !ok {
			continue
		}

		result = append(result, entry)
		count++
	}

	return result, nil
}

func (s *FileStorage) GetRecentEntries(since time.Time) ([]*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.readDir()
	if err != nil {
		return nil, err
	}

	var result []*domain.Entry
	for _, dirEntry := range entries {
		entry, ok := s.readEntry(dirEntry)
		if !ok {
			continue
		}

		if entry.SentAt.After(since) {
			result = append(result, entry)
		}
	}

	return result, nil
}

func (s *FileStorage) DeleteBefore(before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readDir()
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, dirEntry := range entries {
		entry, ok := s.readEntry(dirEntry)
		if !ok || !entry.SentAt.Before(before) {
			continue
		}

		path := filepath.Join(s.basePath, dirEntry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return deleted, oops.With("path", path, "context", "failed to delete history entry").Wrap(err)
		}
		deleted++
	}

	return deleted, nil
}

func (s *FileStorage) readDir() ([]os.DirEntry, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, oops.With("history_dir", s.basePath, "context", "failed to read history directory").Wrap(err)
	}
	return entries, nil
}

func (s *FileStorage) readEntry(dirEntry os.DirEntry) (*domain.Entry, bool) {
	if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != ".json" {
		return nil, false
	}

	data, err := os.ReadFile(filepath.Join(s.basePath, dirEntry.Name()))
	if err != nil {
		return nil, false
	}

	var entry domain.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	return &entry, true
}
