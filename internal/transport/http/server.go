package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	eventDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/event/domain"
	feedService "github.com/reshetovitsme/telegram-notifier/internal/modules/feed/service"
	notificationService "github.com/reshetovitsme/telegram-notifier/internal/modules/notification/service"
	profileDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/profile/domain"
	profileService "github.com/reshetovitsme/telegram-notifier/internal/modules/profile/service"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/config"
	sharederrors "github.com/reshetovitsme/telegram-notifier/internal/shared/errors"
	"github.com/samber/lo"
	sloghttp "github.com/samber/slog-http"
)

const maxBodyBytes = 1 << 20

// Server exposes event intake, profile management and delivery history over HTTP
type Server struct {
	cfg            *config.Config
	dispatcher     *notificationService.Dispatcher
	profileService *profileService.Service
	feedService    *feedService.Service
	logger         *slog.Logger
	server         *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, dispatcher *notificationService.Dispatcher, profileService *profileService.Service, feedService *feedService.Service) *Server {
	s := &Server{
		cfg:            cfg,
		dispatcher:     dispatcher,
		profileService: profileService,
		feedService:    feedService,
		logger:         slog.Default(),
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// SetLogger sets the logger. Call it before Start.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
	s.server.Handler = s.Handler()
}

// Handler returns the routed handler wrapped in logging and recovery middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /events", s.handleEvent)
	mux.HandleFunc("GET /profiles", s.handleListProfiles)
	mux.HandleFunc("PUT /profiles/{name}", s.handleSaveProfile)
	mux.HandleFunc("DELETE /profiles/{name}", s.handleDeleteProfile)
	mux.HandleFunc("POST /profiles/{name}/test", s.handleTestProfile)
	mux.HandleFunc("GET /rss", s.handleRSSFeed)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "addr", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var envelope eventDomain.Envelope
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&envelope); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	event, err := envelope.Event()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.dispatcher.Dispatch(r.Context(), event); err != nil {
		if errors.Is(err, sharederrors.ErrNoProfiles) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error("Error dispatching event", "event_type", event.Type(), "error", err)
		writeError(w, http.StatusBadGateway, "delivery failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "delivered", "event_type": event.Type().String()})
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.profileService.GetAllProfiles()
	if err != nil {
		s.logger.Error("Error listing profiles", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}

	writeJSON(w, http.StatusOK, lo.Map(profiles, func(p *profileDomain.Profile, _ int) profileDomain.Profile {
		return p.Masked()
	}))
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	profile := profileDomain.Profile{Settings: settingsDomain.Default()}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	profile.Name = r.PathValue("name")
	profile.Settings.Normalize()

	if res := profile.Validate(); !res.IsValid() {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}

	if err := s.profileService.SaveProfile(&profile); err != nil {
		s.logger.Error("Error saving profile", "profile", profile.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	writeJSON(w, http.StatusOK, profile.Masked())
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.profileService.DeleteProfile(name); err != nil {
		if errors.Is(err, sharederrors.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Error("Error deleting profile", "profile", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTestProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	res, err := s.dispatcher.Test(r.Context(), name)
	if err != nil {
		if errors.Is(err, sharederrors.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Error("Error testing profile", "profile", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to test profile")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRSSFeed(w http.ResponseWriter, r *http.Request) {
	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)

	var feed *feeds.Feed
	var err error
	if raw := r.URL.Query().Get("since"); raw != "" {
		since, parseErr := parseSince(raw, time.Now())
		if parseErr != nil {
			http.Error(w, "Invalid since: use RFC 3339 or a duration such as 24h", http.StatusBadRequest)
			return
		}
		feed, err = s.feedService.GenerateFeedSince(baseURL, since)
	} else {
		feed, err = s.feedService.GenerateFeed(baseURL)
	}
	if err != nil {
		s.logger.Error("Error generating feed", "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Telegram Notifier</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Telegram Notifier</h1>
    <div class="info">
        <p>Post events to <code>POST /events</code>.</p>
        <p>Manage destinations with <code>/profiles/{name}</code>.</p>
    </div>
    <p><a href="/rss">Delivery history</a> | <a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// parseSince accepts an RFC 3339 timestamp or a duration counted back from now
func parseSince(raw string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
