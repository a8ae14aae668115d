// Package metrics holds the prometheus registry exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var Registry = prometheus.NewRegistry()

var (
	AlarmsReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hkcamera_alarms_received_total",
		Help: "Alarm callbacks received, by command.",
	}, []string{"command"})
	AlarmsDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hkcamera_alarms_dropped_total",
		Help: "Alarm events dropped, by reason.",
	}, []string{"reason"})
	PicturesSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hkcamera_pictures_saved_total",
		Help: "Alarm pictures written to disk.",
	})
	PictureWriteErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hkcamera_picture_write_errors_total",
		Help: "Alarm pictures that failed to persist.",
	})
	CallbackRegistrations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hkcamera_callback_registrations_total",
		Help: "Periodic alarm callback registrations.",
	})
	Captures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hkcamera_captures_total",
		Help: "Still captures, by result.",
	}, []string{"result"})
	CaptureDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hkcamera_capture_duration_seconds",
		Help:    "Login, capture and persist time per camera.",
		Buckets: prometheus.DefBuckets,
	})
	QueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hkcamera_alarm_queue_length",
		Help: "Decoded alarm events waiting for handlers.",
	})
)

func init() {
	Registry.MustRegister(
		AlarmsReceived,
		AlarmsDropped,
		PicturesSaved,
		PictureWriteErrors,
		CallbackRegistrations,
		Captures,
		CaptureDuration,
		QueueLength,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
