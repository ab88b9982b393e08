package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "futsal_cup"

// Detail view outcomes.
const (
	OutcomeShown    = "shown"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
)

// Recorder owns the page metrics on its own registry so tests can build as
// many as they like.
type Recorder struct {
	registry      *prometheus.Registry
	pageViews     prometheus.Counter
	detailViews   *prometheus.CounterVec
	streamsActive prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pageViews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Full page renders.",
		}),
		detailViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_detail_requests_total",
			Help:      "Match detail modal requests by outcome.",
		}, []string{"outcome"}),
		streamsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "countdown_streams_active",
			Help:      "Countdown websocket streams currently open.",
		}),
	}
	r.registry.MustRegister(r.pageViews, r.detailViews, r.streamsActive)
	return r
}

func (r *Recorder) PageView() {
	if r == nil {
		return
	}
	r.pageViews.Inc()
}

func (r *Recorder) DetailView(outcome string) {
	if r == nil {
		return
	}
	r.detailViews.WithLabelValues(outcome).Inc()
}

// StreamOpened bumps the open stream gauge and returns the matching close.
func (r *Recorder) StreamOpened() func() {
	if r == nil {
		return func() {}
	}
	r.streamsActive.Inc()
	return r.streamsActive.Dec
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
