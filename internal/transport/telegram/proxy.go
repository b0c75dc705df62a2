package telegram

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	notificationDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/notification/domain"
	notificationService "github.com/reshetovitsme/telegram-notifier/internal/modules/notification/service"
	settingsDomain "github.com/reshetovitsme/telegram-notifier/internal/modules/settings/domain"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/metrics"
	"github.com/samber/oops"
	"golang.org/x/time/rate"
)

const DefaultAPIURL = "https://api.telegram.org"

// Proxy delivers notifications through the Telegram Bot API
type Proxy struct {
	apiURL     string
	httpClient bot.HttpClient
	limiter    *rate.Limiter
	logger     *slog.Logger

	mu   sync.Mutex
	bots map[string]*bot.Bot
}

var _ notificationService.Transport = (*Proxy)(nil)

// Option configures a Proxy
type Option func(*Proxy)

// WithHTTPClient overrides the HTTP client used for API calls
func WithHTTPClient(client bot.HttpClient) Option {
	return func(p *Proxy) {
		p.httpClient = client
	}
}

// WithRateLimit limits sends across all chats to perSecond messages
func WithRateLimit(perSecond float64) Option {
	return func(p *Proxy) {
		if perSecond <= 0 {
			p.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewProxy creates a proxy talking to apiURL
func NewProxy(apiURL string, opts ...Option) *Proxy {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	p := &Proxy{
		apiURL:  strings.TrimRight(apiURL, "/"),
		limiter: rate.NewLimiter(rate.Inf, 1),
		logger:  slog.Default(),
		bots:    make(map[string]*bot.Bot),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetLogger sets the logger
func (p *Proxy) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// SendNotification posts "<b>title</b>\nbody" to the configured chat
func (p *Proxy) SendNotification(ctx context.Context, title, body string, settings *settingsDomain.Settings) error {
	if err := p.send(ctx, title, body, settings); err != nil {
		return oops.
			With("chat_id", settings.ChatID, "topic_id", settings.TopicID).
			Wrapf(err, "failed to send telegram notification")
	}
	return nil
}

// Test sends a test message and reports the problem, if any, as a field failure
func (p *Proxy) Test(ctx context.Context, settings *settingsDomain.Settings) *settingsDomain.ValidationFailure {
	err := p.send(ctx, notificationDomain.TestTitle, notificationDomain.TestMessage, settings)
	metrics.ConnectionTests.WithLabelValues(metrics.Result(err)).Inc()
	if err == nil {
		return nil
	}

	p.logger.Error("Unable to send test message", "error", err, "chat_id", settings.ChatID)
	return testFailure(err)
}

func (p *Proxy) send(ctx context.Context, title, body string, settings *settingsDomain.Settings) error {
	b, err := p.botFor(settings.BotToken)
	if err != nil {
		return err
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	params := &bot.SendMessageParams{
		ChatID:              settings.ChatID,
		Text:                formatText(title, body),
		ParseMode:           models.ParseModeHTML,
		DisableNotification: settings.SendSilently,
	}
	if settings.TopicID != nil {
		params.MessageThreadID = *settings.TopicID
	}

	start := time.Now()
	_, err = b.SendMessage(ctx, params)
	result := metrics.Result(err)
	metrics.NotificationsSent.WithLabelValues(result).Inc()
	metrics.SendDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err == nil {
		p.logger.Debug("Sent telegram notification", "chat_id", settings.ChatID, "title", title)
	}
	return err
}

// botFor returns a client for token, creating it on first use
func (p *Proxy) botFor(token string) (*bot.Bot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if b, ok := p.bots[token]; ok {
		return b, nil
	}

	opts := []bot.Option{
		bot.WithSkipGetMe(),
		bot.WithServerURL(p.apiURL),
	}
	if p.httpClient != nil {
		opts = append(opts, bot.WithHTTPClient(time.Minute, p.httpClient))
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
	}
	p.bots[token] = b
	return b, nil
}

// testFailure maps a Bot API error onto the settings field most likely at fault
func testFailure(err error) *settingsDomain.ValidationFailure {
	for _, apiErr := range []error{bot.ErrorBadRequest, bot.ErrorUnauthorized, bot.ErrorForbidden, bot.ErrorNotFound} {
		if !errors.Is(err, apiErr) {
			continue
		}

		description := apiDescription(err, apiErr)
		if apiErr == bot.ErrorBadRequest && strings.Contains(strings.ToLower(description), "chat not found") {
			return settingsDomain.NewFailure(settingsDomain.FieldChatID, description)
		}
		return settingsDomain.NewFailure(settingsDomain.FieldBotToken, description)
	}

	return settingsDomain.NewFailure(settingsDomain.FieldConnection, err.Error())
}

// apiDescription strips the client's sentinel prefix, leaving the API's own description
func apiDescription(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()+", "); i >= 0 {
		return msg[i+len(sentinel.Error())+2:]
	}
	return msg
}
