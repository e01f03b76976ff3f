package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the collectors exported on the metrics endpoint
type Metrics struct {
	Registry        *prometheus.Registry
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	UploadsTotal    *prometheus.CounterVec
	OrphanedObjects prometheus.Counter
}

// Upload outcomes recorded in UploadsTotal
const (
	UploadSuccess       = "success"
	UploadStorageFailed = "storage_failed"
	UploadRecordFailed  = "record_failed"
	UploadRejected      = "rejected"
	UploadDisabled      = "disabled"
)

func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		UploadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "car_uploads_total",
			Help:      "Car image uploads by outcome.",
		}, []string{"result"}),
		OrphanedObjects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "car_upload_orphaned_objects_total",
			Help:      "Stored images left behind because cleanup after a failed insert also failed.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.UploadsTotal,
		m.OrphanedObjects,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveUpload counts one upload outcome; nil receiver is a no-op
func (m *Metrics) ObserveUpload(result string) {
	if m == nil {
		return
	}
	m.UploadsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveOrphan() {
	if m == nil {
		return
	}
	m.OrphanedObjects.Inc()
}
