package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	feedService "github.com/reshetovitsme/telegram-notifier/internal/modules/feed/service"
	historyRepo "github.com/reshetovitsme/telegram-notifier/internal/modules/history/repository"
	historyService "github.com/reshetovitsme/telegram-notifier/internal/modules/history/service"
	notificationService "github.com/reshetovitsme/telegram-notifier/internal/modules/notification/service"
	profileDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/profile/domain"
	profileRepo "github.com/reshetovitsme/telegram-notifier/internal/modules/profile/repository"
	profileService "github.com/reshetovitsme/telegram-notifier/internal/modules/profile/service"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	mu          sync.Mutex
	titles      []string
	bodies      []string
	sendErr     error
	testFailure *settingsDomain.ValidationFailure
}

func (s *stubTransport) SendNotification(_ context.Context, title, body string, _ *settingsDomain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.titles = append(s.titles, title)
	s.bodies = append(s.bodies, body)
	return nil
}

func (s *stubTransport) Test(context.Context, *settingsDomain.Settings) *settingsDomain.ValidationFailure {
	return s.testFailure
}

type fixture struct {
	dir       string
	server    *Server
	transport *stubTransport
	profiles  *profileService.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pRepo, err := profileRepo.NewFileStorage(dir)
	require.NoError(t, err)
	hRepo, err := historyRepo.NewFileStorage(dir)
	require.NoError(t, err)

	transport := &stubTransport{}
	recorder := historyService.NewRecorder(transport, hRepo)
	recorder.SetLogger(logger)

	profiles := profileService.New(pRepo)
	dispatcher := notificationService.NewDispatcher(profiles, recorder)
	dispatcher.SetLogger(logger)

	srv := New(&config.Config{HTTPPort: "0"}, dispatcher, profiles, feedService.New(hRepo))
	srv.SetLogger(logger)

	return &fixture{dir: dir, server: srv, transport: transport, profiles: profiles}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (f *fixture) saveProfile(t *testing.T, name, chatID string) {
	t.Helper()
	s := settingsDomain.Default()
	s.BotToken = "123456:ABC-DEF1234"
	s.ChatID = chatID
	require.NoError(t, f.profiles.SaveProfile(&profileDomain.Profile{Name: name, Settings: s}))
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestEvents_Delivered(t *testing.T) {
	f := newFixture(t)
	f.saveProfile(t, "main", "-100123")

	rec := f.do(t, http.MethodPost, "/events", `{
		"event_type": "series_add",
		"message": "Breaking Bad added",
		"series": {"title": "Breaking Bad", "imdb_id": "tt0903747"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, f.transport.titles, 1)
	assert.Equal(t, "Series Added", f.transport.titles[0])
	assert.Equal(t, "[Breaking Bad added](https://www.imdb.com/title/tt0903747)", f.transport.bodies[0])

	feed := f.do(t, http.MethodGet, "/rss", "")
	assert.Equal(t, http.StatusOK, feed.Code)
	assert.Contains(t, feed.Header().Get("Content-Type"), "application/rss+xml")
	assert.Contains(t, feed.Body.String(), "Series Added")
}

func TestEvents_Errors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, http.MethodPost, "/events", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown event type", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, http.MethodPost, "/events", `{"event_type":"rename"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no profiles", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, http.MethodPost, "/events", `{"event_type":"grab","message":"x"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delivery failure", func(t *testing.T) {
		f := newFixture(t)
		f.saveProfile(t, "main", "-100123")
		f.transport.sendErr = errors.New("forbidden")
		rec := f.do(t, http.MethodPost, "/events", `{"event_type":"grab","message":"x"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestProfiles_SaveListDelete(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPut, "/profiles/main", `{
		"settings": {"bot_token": "123456:ABC-DEF1234", "chat_id": "-100123", "topic_id": 5},
		"events": ["grab", "download"]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := f.profiles.GetProfile("main")
	require.NoError(t, err)
	assert.True(t, stored.Settings.SendMetadataLink)
	assert.Equal(t, settingsDomain.MetadataLinkTypeIMDb, stored.Settings.MetadataLinkType)
	require.NotNil(t, stored.Settings.TopicID)
	assert.Equal(t, 5, *stored.Settings.TopicID)

	rec = f.do(t, http.MethodGet, "/profiles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "ABC-DEF1234")

	var listed []profileDomain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "main", listed[0].Name)

	rec = f.do(t, http.MethodDelete, "/profiles/main", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodDelete, "/profiles/main", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfiles_SaveInvalid(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPut, "/profiles/main", `{"settings": {"topic_id": 1}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var res settingsDomain.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{
		"BotToken: must not be empty",
		"ChatId: must not be empty",
		"TopicId: Topic ID must be greater than 1 or empty",
	}, res.Strings())

	_, err := f.profiles.GetProfile("main")
	assert.Error(t, err)
}

func TestProfiles_Test(t *testing.T) {
	f := newFixture(t)
	f.saveProfile(t, "main", "-100123")

	rec := f.do(t, http.MethodPost, "/profiles/main/test", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"failures":[]}`, rec.Body.String())

	f.transport.testFailure = settingsDomain.NewFailure(settingsDomain.FieldChatID, "chat not found")
	rec = f.do(t, http.MethodPost, "/profiles/main/test", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"failures":[{"field":"ChatId","message":"chat not found"}]}`, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/profiles/missing/test", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestProfiles_LinkTypeAnyCase(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPut, "/profiles/p1", `{
		"settings": {"bot_token": "123456:ABC-DEF1234", "chat_id": "-100123", "metadata_link_type": "imdb"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := f.profiles.GetProfile("p1")
	require.NoError(t, err)
	assert.Equal(t, settingsDomain.MetadataLinkTypeIMDb, stored.Settings.MetadataLinkType)

	rec = f.do(t, http.MethodPost, "/events", `{
		"event_type": "series_add",
		"message": "Show Added",
		"series": {"imdb_id": "tt123"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, f.transport.bodies, 1)
	assert.Equal(t, "[Show Added](https://www.imdb.com/title/tt123)", f.transport.bodies[0])
}

func TestProfiles_NameCannotLeaveStore(t *testing.T) {
	f := newFixture(t)
	victim := filepath.Join(f.dir, "victim.json")
	require.NoError(t, os.WriteFile(victim, []byte(`{"name":"victim","settings":{"bot_token":"123456:ABC-DEF1234","chat_id":"-1"}}`), 0600))

	rec := f.do(t, http.MethodDelete, "/profiles/..%2Fvictim", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/profiles/..%2Fvictim/test", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPut, "/profiles/..%2Fvictim", `{"settings": {"bot_token": "123456:ABC-DEF1234", "chat_id": "-1"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	assert.FileExists(t, victim)
	assert.Empty(t, f.transport.titles)
}

func TestRSS_Since(t *testing.T) {
	f := newFixture(t)
	f.saveProfile(t, "main", "-100123")

	rec := f.do(t, http.MethodPost, "/events", `{"event_type":"grab","message":"Show S01E01"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/rss?since=1h", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Episode Grabbed")

	rec = f.do(t, http.MethodGet, "/rss?since=2999-01-01T00:00:00Z", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Episode Grabbed")

	rec = f.do(t, http.MethodGet, "/rss?since=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShutdownBeforeStart(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.server.Shutdown(context.Background()))
}
