package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder exposes HTTP and broadcast activity as Prometheus metrics on its
// own registry.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	subscribers  prometheus.Gauge
	subscribed   prometheus.Counter
	removed      *prometheus.CounterVec
	published    *prometheus.CounterVec

	strikeHits     prometheus.Gauge
	strikeMisses   prometheus.Gauge
	strikeHitRatio prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "broadcast_subscribers",
			Help: "Currently connected dashboard subscribers",
		}),
		subscribed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "broadcast_subscriptions_total",
			Help: "Total number of subscriptions opened",
		}),
		removed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "broadcast_subscribers_removed_total",
			Help: "Subscribers removed, by reason",
		}, []string{"reason"}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "broadcast_events_published_total",
			Help: "Events published to subscribers, by event type",
		}, []string{"type"}),
		strikeHits: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "security_strike_cache_hits",
			Help: "Strike cache hits since start",
		}),
		strikeMisses: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "security_strike_cache_misses",
			Help: "Strike cache misses since start",
		}),
		strikeHitRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "security_strike_cache_hit_ratio",
			Help: "Strike cache hit ratio",
		}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.subscribers,
		r.subscribed,
		r.removed,
		r.published,
		r.strikeHits,
		r.strikeMisses,
		r.strikeHitRatio,
	)
	return r
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	r.httpRequests.WithLabelValues(m.Method, m.Path, strconv.Itoa(m.StatusCode)).Inc()
	r.httpDuration.WithLabelValues(m.Method, m.Path).Observe(m.DurationMs / 1000)
}

// RecordInfra updates the periodically sampled gauges.
func (r *Recorder) RecordInfra(m InfraMetric) {
	r.strikeHits.Set(float64(m.CacheHits))
	r.strikeMisses.Set(float64(m.CacheMisses))
	r.strikeHitRatio.Set(m.CacheHitRatio)
}

func (r *Recorder) SubscriberAdded() {
	r.subscribers.Inc()
	r.subscribed.Inc()
}

func (r *Recorder) SubscriberRemoved(reason string) {
	r.subscribers.Dec()
	r.removed.WithLabelValues(reason).Inc()
}

func (r *Recorder) EventPublished(eventType string) {
	r.published.WithLabelValues(eventType).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
