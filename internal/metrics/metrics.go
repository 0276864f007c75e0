// Package metrics provides the centralized Prometheus registry for the
// prop edge pipeline.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PipelineRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "pipeline_runs_total",
		Help:      "Total pipeline runs by outcome",
	}, []string{"status"})
	GameLogsFetchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "game_logs_fetched_total",
		Help:      "Total game log rows fetched from the stats feed",
	})
	MarketsFetchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "markets_fetched_total",
		Help:      "Total player prop market lines fetched",
	})
	MarketFetchErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "market_fetch_errors_total",
		Help:      "Total market fetch failures",
	})
	PlayersExcludedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "players_excluded_total",
		Help:      "Players excluded from scoring by reason",
	}, []string{"reason"})
)

// Gauge metrics
var (
	CandidatesScored = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "prop_edge",
		Name:      "candidates_scored",
		Help:      "Edge candidates scored in the latest run",
	})
	SlatePicks = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "prop_edge",
		Name:      "slate_picks",
		Help:      "Picks in the latest slate",
	})
	SlateUnders = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "prop_edge",
		Name:      "slate_unders",
		Help:      "UNDER picks in the latest slate",
	})
	TopRating = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "prop_edge",
		Name:      "top_rating",
		Help:      "Highest rating in the latest slate",
	})
)

// Histogram metrics
var (
	PipelineDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "prop_edge",
		Name:      "pipeline_duration_seconds",
		Help:      "End-to-end pipeline run duration in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
	})
	StageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "prop_edge",
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual pipeline stages in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PipelineRunsTotal)
		registry.MustRegister(GameLogsFetchedTotal)
		registry.MustRegister(MarketsFetchedTotal)
		registry.MustRegister(MarketFetchErrorsTotal)
		registry.MustRegister(PlayersExcludedTotal)

		registry.MustRegister(CandidatesScored)
		registry.MustRegister(SlatePicks)
		registry.MustRegister(SlateUnders)
		registry.MustRegister(TopRating)

		registry.MustRegister(PipelineDuration)
		registry.MustRegister(StageDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordRun records a completed pipeline run.
func RecordRun(status string, durationSeconds float64) {
	PipelineRunsTotal.WithLabelValues(status).Inc()
	PipelineDuration.Observe(durationSeconds)
}

// RecordStage records the duration of one pipeline stage.
func RecordStage(stage string, durationSeconds float64) {
	StageDuration.WithLabelValues(stage).Observe(durationSeconds)
}

// RecordExclusion records a player dropped from scoring.
func RecordExclusion(reason string) {
	PlayersExcludedTotal.WithLabelValues(reason).Inc()
}

// RecordSlate updates the slate gauges for the latest run.
func RecordSlate(picks, unders int, topRating float64) {
	SlatePicks.Set(float64(picks))
	SlateUnders.Set(float64(unders))
	TopRating.Set(topRating)
}
