package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sortbench/internal/algorithms"
	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
)

// Recorder is a benchmark.Observer that exports run progress as Prometheus
// metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry
	now      func() time.Time
	started  time.Time

	TrialsTotal   *prometheus.CounterVec
	ResultSeconds *prometheus.HistogramVec
	SkippedTotal  *prometheus.CounterVec
	Results       prometheus.Gauge
	RunDuration   prometheus.Gauge
}

var _ benchmark.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		now:      time.Now,
	}

	r.TrialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sortbench_trials_total",
			Help: "Total number of timed sort invocations",
		},
		[]string{"algorithm", "input_type"},
	)

	// Medians range from microseconds for small inputs to tens of seconds
	// for quadratic sorts at the size limit.
	r.ResultSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sortbench_result_seconds",
			Help:    "Median sort time per measured combination in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"algorithm", "input_type"},
	)

	r.SkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sortbench_skipped_total",
			Help: "Total number of combinations skipped by the size policy",
		},
		[]string{"algorithm"},
	)

	r.Results = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sortbench_results",
			Help: "Number of results collected in the current run",
		},
	)

	r.RunDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sortbench_run_duration_seconds",
			Help: "Wall-clock duration of the last completed run in seconds",
		},
	)

	r.registry.MustRegister(r.TrialsTotal, r.ResultSeconds, r.SkippedTotal, r.Results, r.RunDuration)
	return r
}

// Registry exposes the registry for gathering in tests and exporters.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) RunStarted(sizes []int, trials, algorithmCount int) {
	r.started = r.now()
	r.Results.Set(0)
}

func (r *Recorder) SizeStarted(size int) {}

func (r *Recorder) Measured(result benchmark.Result) {
	labels := prometheus.Labels{"algorithm": result.Algorithm, "input_type": result.InputType.String()}
	r.TrialsTotal.With(labels).Add(float64(result.Trials))
	r.ResultSeconds.With(labels).Observe(result.TimeSeconds)
	r.Results.Inc()
}

func (r *Recorder) Skipped(entry algorithms.Entry, size int, inputType generator.InputType) {
	r.SkippedTotal.WithLabelValues(entry.Name).Inc()
}

func (r *Recorder) RunFinished(results []benchmark.Result) {
	r.Results.Set(float64(len(results)))
	if !r.started.IsZero() {
		r.RunDuration.Set(r.now().Sub(r.started).Seconds())
	}
}
