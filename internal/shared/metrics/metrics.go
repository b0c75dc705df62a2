package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_notifier_send_total",
			Help: "Total Telegram notification send attempts by result.",
		},
		[]string{"result"},
	)
	SendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "telegram_notifier_send_duration_seconds",
			Help:    "Duration of Telegram sendMessage calls.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"result"},
	)
	ConnectionTests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_notifier_test_total",
			Help: "Total connection tests by result.",
		},
		[]string{"result"},
	)
	DispatchedEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_notifier_events_total",
			Help: "Events received for dispatch by event type.",
		},
		[]string{"event_type"},
	)
)

// Result maps an error to a result label
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
