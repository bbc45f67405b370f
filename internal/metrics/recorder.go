// Package metrics records team run metrics in a Prometheus registry. The CLI
// is short-lived, so metrics are exported as a node_exporter textfile rather
// than served.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

type Recorder struct {
	registry *prometheus.Registry

	turnsTotal    *prometheus.CounterVec
	turnDuration  *prometheus.HistogramVec
	runsTotal     *prometheus.CounterVec
	finalQuality  *prometheus.GaugeVec
	analysesTotal *prometheus.CounterVec

	logger *zap.Logger
}

func NewRecorder(namespace string, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		turnsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "team_turns_total",
				Help:      "Total number of team turns by role and status",
			},
			[]string{"role", "status"},
		),
		turnDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "team_turn_duration_seconds",
				Help:      "LLM turn duration in seconds",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
			[]string{"role"},
		),
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "team_runs_total",
				Help:      "Total number of team runs by content type and outcome",
			},
			[]string{"content_type", "outcome"},
		),
		finalQuality: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "team_final_quality",
				Help:      "Overall quality score of the last delivered content",
			},
			[]string{"content_type"},
		),
		analysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Total number of local analyses by command",
			},
			[]string{"command"},
		),
		logger: logger.With(zap.String("component", "metrics")),
	}
}

func (r *Recorder) ObserveTurn(role string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.turnsTotal.WithLabelValues(role, status).Inc()
	r.turnDuration.WithLabelValues(role).Observe(d.Seconds())
}

// ObserveRun records a finished run. Runs that hit the round limit count as
// exhausted rather than approved.
func (r *Recorder) ObserveRun(contentType string, quality float64, terminated bool) {
	outcome := "approved"
	if !terminated {
		outcome = "exhausted"
	}
	r.runsTotal.WithLabelValues(contentType, outcome).Inc()
	r.finalQuality.WithLabelValues(contentType).Set(quality)
}

func (r *Recorder) ObserveAnalysis(command string) {
	r.analysesTotal.WithLabelValues(command).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the registry in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	r.logger.Debug("metrics written", zap.String("path", path))
	return nil
}
