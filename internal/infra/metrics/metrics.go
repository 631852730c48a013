// internal/infra/metrics/metrics.go
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Trigger label values.
const (
	TriggerSchedule = "schedule"
	TriggerCommand  = "command"
)

// Skip reason label values.
const (
	ReasonInvalid         = "invalid"
	ReasonUnrepresentable = "unrepresentable"
)

var (
	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_reminder_messages_sent_total",
		Help: "Nearest-event messages delivered, by trigger.",
	}, []string{"trigger"})

	MessageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_reminder_message_errors_total",
		Help: "Nearest-event messages that could not be built or delivered, by trigger.",
	}, []string{"trigger"})

	SkippedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_reminder_skipped_records_total",
		Help: "Stored records left out of the nearest-event search, by reason.",
	}, []string{"reason"})
)

// Serve exposes /metrics on addr in the background. The returned server should be closed on shutdown.
func Serve(addr string, log *logrus.Entry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.WithField("addr", addr).Info("Metrics endpoint listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Metrics server failed")
		}
	}()
	return srv
}
