package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Logical instrument names. Dashboards refer to these; the Prometheus
// exposition uses the underscored names below.
const (
	CounterName  = "palindrome.counter"
	TimerName    = "palindrome.timer"
	ListSizeName = "palindrome.list.size"
)

const (
	counterMetric   = "palindrome_counter_total"
	timerMetric     = "palindrome_timer_seconds"
	listSizeMetric  = "palindrome_list_size"
	evictionsMetric = "palindrome_list_evictions_total"
)

// ErrListSizeTracked is returned when a second list is bound to the size gauge.
var ErrListSizeTracked = errors.New("list size gauge already bound")

// Sizer reports a live element count.
type Sizer interface {
	Size() int
}

// Metrics owns the process metric instruments on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	checks       prometheus.Counter
	checkTimer   prometheus.Histogram
	evictions    prometheus.Counter
	requestCount *prometheus.CounterVec
	errorCount   *prometheus.CounterVec
	listSize     prometheus.GaugeFunc
}

// TimerSnapshot summarizes the recorded check durations.
type TimerSnapshot struct {
	Count      uint64
	SumSeconds float64
}

// Snapshot is a point-in-time read of the palindrome instruments.
type Snapshot struct {
	Counter  float64
	Timer    TimerSnapshot
	ListSize float64
}

// NewMetrics initializes the registry and its instruments.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: counterMetric,
			Help: "Number of counted palindrome checks.",
		}),
		checkTimer: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    timerMetric,
			Help:    "Duration of timed palindrome checks.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: evictionsMetric,
			Help: "Entries dropped from a bounded request log.",
		}),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests processed.",
		}, []string{"path", "method", "status"}),
		errorCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "HTTP requests that ended in an error response.",
		}, []string{"path", "method", "code"}),
	}

	m.registry.MustRegister(
		m.checks,
		m.checkTimer,
		m.evictions,
		m.requestCount,
		m.errorCount,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// TrackListSize binds the list size gauge to s. The gauge reads s on every
// collection, so it always reports the live size.
func (m *Metrics) TrackListSize(s Sizer) error {
	if m == nil {
		return nil
	}
	if m.listSize != nil {
		return ErrListSizeTracked
	}
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: listSizeMetric,
		Help: "Current number of entries in the request log.",
	}, func() float64 {
		return float64(s.Size())
	})
	if err := m.registry.Register(gauge); err != nil {
		return err
	}
	m.listSize = gauge
	return nil
}

// IncCheckCounter counts one counted check.
func (m *Metrics) IncCheckCounter() {
	if m == nil {
		return
	}
	m.checks.Inc()
}

// ObserveCheckDuration records one timed check.
func (m *Metrics) ObserveCheckDuration(d time.Duration) {
	if m == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	m.checkTimer.Observe(d.Seconds())
}

// RecordListEviction counts an entry dropped from a bounded request log.
func (m *Metrics) RecordListEviction() {
	if m == nil {
		return
	}
	m.evictions.Inc()
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int) {
	if m == nil {
		return
	}
	m.requestCount.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errorCount.WithLabelValues(path, method, code).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Snapshot gathers the registry and returns the palindrome instruments.
func (m *Metrics) Snapshot() (Snapshot, error) {
	var snap Snapshot
	if m == nil {
		return snap, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return snap, err
	}
	for _, mf := range families {
		if len(mf.GetMetric()) == 0 {
			continue
		}
		metric := mf.GetMetric()[0]
		switch mf.GetName() {
		case counterMetric:
			snap.Counter = metric.GetCounter().GetValue()
		case timerMetric:
			snap.Timer = timerSnapshot(metric.GetHistogram())
		case listSizeMetric:
			snap.ListSize = metric.GetGauge().GetValue()
		}
	}
	return snap, nil
}

func timerSnapshot(h *dto.Histogram) TimerSnapshot {
	return TimerSnapshot{
		Count:      h.GetSampleCount(),
		SumSeconds: h.GetSampleSum(),
	}
}
