package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyConfig returns a config file with no telegram_* keys
func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0600))
	return path
}

type botAPI struct {
	mu     sync.Mutex
	paths  []string
	bodies []string
	fail   string
}

func (b *botAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.paths = append(b.paths, r.URL.Path)
	b.bodies = append(b.bodies, string(body))
	fail := b.fail
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail != "" {
		fmt.Fprintf(w, `{"ok":false,"error_code":400,"description":%q}`, fail)
		return
	}
	fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"date":1700000000,"chat":{"id":-100123,"type":"supergroup"}}}`)
}

func newBotAPI(t *testing.T) (*botAPI, string) {
	t.Helper()
	api := &botAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return api, srv.URL
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "notifyctl", cmd.Use)

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"validate", "test", "send"})
}

func TestValidate(t *testing.T) {
	cfg := emptyConfig(t)

	t.Run("valid", func(t *testing.T) {
		out, err := run(t, "validate", "-c", cfg, "--token", "123456:ABC", "--chat-id", "-100123", "--topic-id", "5")
		require.NoError(t, err)
		assert.Equal(t, "OK\n", out)
	})

	t.Run("invalid", func(t *testing.T) {
		out, err := run(t, "validate", "-c", cfg, "--token", "", "--chat-id", "", "--topic-id", "1")
		require.Error(t, err)
		assert.Equal(t, strings.Join([]string{
			"BotToken: must not be empty",
			"ChatId: must not be empty",
			"TopicId: Topic ID must be greater than 1 or empty",
		}, "\n")+"\n", out)
	})

	t.Run("bad link type", func(t *testing.T) {
		_, err := run(t, "validate", "-c", cfg, "--token", "123456:ABC", "--chat-id", "1", "--link-type", "imdb2")
		assert.Error(t, err)
	})
}

func TestTest(t *testing.T) {
	cfg := emptyConfig(t)
	api, url := newBotAPI(t)

	out, err := run(t, "test", "-c", cfg, "--api-url", url, "--token", "123456:ABC", "--chat-id", "-100123")
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)
	require.Len(t, api.paths, 1)
	assert.Equal(t, "/bot123456:ABC/sendMessage", api.paths[0])

	api.fail = "Bad Request: chat not found"
	out, err = run(t, "test", "-c", cfg, "--api-url", url, "--token", "123456:ABC", "--chat-id", "-100123")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(out, "ChatId: "), out)
}

func TestSend(t *testing.T) {
	cfg := emptyConfig(t)
	api, url := newBotAPI(t)

	out, err := run(t, "send", "-c", cfg, "--api-url", url, "--token", "123456:ABC", "--chat-id", "-100123",
		"--event", "series_add", "--message", "Breaking Bad added", "--imdb-id", "tt0903747")
	require.NoError(t, err)
	assert.Equal(t, "Sent series_add\n", out)

	require.Len(t, api.bodies, 1)
	assert.Contains(t, api.bodies[0], "Series Added")
	assert.Contains(t, api.bodies[0], "https://www.imdb.com/title/tt0903747")
}

func TestSend_Errors(t *testing.T) {
	cfg := emptyConfig(t)
	api, url := newBotAPI(t)

	_, err := run(t, "send", "-c", cfg, "--api-url", url, "--token", "123456:ABC", "--chat-id", "-100123",
		"--event", "rename", "--message", "x")
	assert.Error(t, err)

	_, err = run(t, "send", "-c", cfg, "--api-url", url, "--chat-id", "-100123", "--event", "grab", "--message", "x")
	assert.Error(t, err)

	assert.Empty(t, api.paths)
}
