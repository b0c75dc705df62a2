package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/reshetovitsme/telegram-notifier/internal/modules/profile/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository with one JSON file per profile
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based profile repository
func NewFileStorage(basePath string) (Repository, error) {
	profilePath := filepath.Join(basePath, "profiles")
	if err := os.MkdirAll(profilePath, 0700); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create profiles directory").Wrap(err)
	}

	return &FileStorage{basePath: profilePath}, nil
}

func (s *FileStorage) SaveProfile(profile *domain.Profile) error {
	if !domain.ValidName(profile.Name) {
		return oops.With("profile", profile.Name).Wrapf(errors.ErrInvalidSettings, "invalid profile name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, profile.Name+".json")
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return oops.With("profile", profile.Name, "context", "failed to marshal profile").Wrap(err)
	}

	// profiles hold bot tokens
	if err := os.WriteFile(path, data, 0600); err != nil {
		return oops.With("profile", profile.Name, "context", "failed to write profile").Wrap(err)
	}
	return nil
}

func (s *FileStorage) GetProfile(name string) (*domain.Profile, error) {
	if !domain.ValidName(name) {
		return nil, oops.With("profile", name).Wrap(errors.ErrProfileNotFound)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.basePath, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oops.With("profile", name).Wrap(errors.ErrProfileNotFound)
		}
		return nil, oops.With("profile", name, "context", "failed to read profile").Wrap(err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, oops.With("profile", name, "context", "failed to unmarshal profile").Wrap(err)
	}

	return &profile, nil
}

func (s *FileStorage) GetAllProfiles() ([]*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, oops.With("directory", s.basePath, "context", "failed to read profiles directory").Wrap(err)
	}

	profiles := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (*domain.Profile, bool) {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			return nil, false
		}

		path := filepath.Join(s.basePath, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, false
		}

		var profile domain.Profile
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, false
		}

		return &profile, true
	})

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}

func (s *FileStorage) DeleteProfile(name string) error {
	if !domain.ValidName(name) {
		return oops.With("profile", name).Wrap(errors.ErrProfileNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, name+".json")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return oops.With("profile", name).Wrap(errors.ErrProfileNotFound)
		}
		return oops.With("profile", name, "context", "failed to delete profile").Wrap(err)
	}
	return nil
}
