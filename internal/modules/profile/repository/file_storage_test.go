package repository

import (
	"os"
	"path/filepath"
	"testing"

	eventDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/event/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/modules/profile/domain"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(name string) *domain.Profile {
	s := settingsDomain.Default()
	s.BotToken = "123456:ABC-DEF"
	s.ChatID = "-100200300"
	return &domain.Profile{
		Name:     name,
		Settings: s,
		Events:   []eventDomain.EventType{eventDomain.EventTypeGrab},
	}
}

func TestFileStorage_SaveAndGet(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, repo.SaveProfile(newProfile("family")))

	got, err := repo.GetProfile("family")
	require.NoError(t, err)
	assert.Equal(t, "family", got.Name)
	assert.Equal(t, "-100200300", got.Settings.ChatID)
	assert.Equal(t, settingsDomain.MetadataLinkTypeIMDb, got.Settings.MetadataLinkType)
	assert.Equal(t, []eventDomain.EventType{eventDomain.EventTypeGrab}, got.Events)

	info, err := os.Stat(filepath.Join(dir, "profiles", "family.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStorage_GetMissing(t *testing.T) {
	repo, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = repo.GetProfile("nope")
	assert.ErrorIs(t, err, errors.ErrProfileNotFound)

	assert.ErrorIs(t, repo.DeleteProfile("nope"), errors.ErrProfileNotFound)
}

func TestFileStorage_GetAllSortedAndSkipsGarbage(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, repo.SaveProfile(newProfile("zeta")))
	require.NoError(t, repo.SaveProfile(newProfile("alpha")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profiles", "broken.json"), []byte("{"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profiles", "notes.txt"), []byte("x"), 0600))

	all, err := repo.GetAllProfiles()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "zeta", all[1].Name)
}

func TestFileStorage_Delete(t *testing.T) {
	repo, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, repo.SaveProfile(newProfile("ops")))
	require.NoError(t, repo.DeleteProfile("ops"))

	_, err = repo.GetProfile("ops")
	assert.ErrorIs(t, err, errors.ErrProfileNotFound)
}

func TestFileStorage_RejectsNamesOutsideStore(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileStorage(dir)
	require.NoError(t, err)

	victim := filepath.Join(dir, "victim.json")
	require.NoError(t, os.WriteFile(victim, []byte(`{"name":"victim"}`), 0600))

	for _, name := range []string{"../victim", "..", "a/b", ""} {
		_, err := repo.GetProfile(name)
		assert.ErrorIs(t, err, errors.ErrProfileNotFound, name)

		assert.ErrorIs(t, repo.DeleteProfile(name), errors.ErrProfileNotFound, name)

		assert.ErrorIs(t, repo.SaveProfile(newProfile(name)), errors.ErrInvalidSettings, name)
	}

	assert.FileExists(t, victim)
	_, err = os.Stat(filepath.Join(dir, "x.json"))
	assert.True(t, os.IsNotExist(err))
}
