// SPDX-License-Identifier: MIT

// Package metrics records MST run and load statistics as Prometheus
// collectors. Nothing is served over the network: the command dumps the
// registry to a node-exporter textfile when metrics_file is configured.
package metrics

import (
	"github.com/katalvlaran/citymst/loader"
	"github.com/katalvlaran/citymst/prim_kruskal"
	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns the citymst collectors registered on one registry.
type Recorder struct {
	Runs         *prometheus.CounterVec
	RunSeconds   *prometheus.HistogramVec
	TreeCost     *prometheus.GaugeVec
	Disconnected *prometheus.CounterVec
	GraphCities  prometheus.Gauge
	GraphEdges   prometheus.Gauge
	SkippedLines prometheus.Counter
}

// NewRecorder registers the collectors on reg. It panics if they are already
// registered there, like promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "citymst_runs_total",
			Help: "Total number of MST engine runs.",
		}, []string{"algorithm"}),

		RunSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "citymst_run_seconds",
			Help:    "Wall-clock time of the MST algorithm body.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),

		TreeCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "citymst_tree_cost",
			Help: "Total cost of the most recent tree per algorithm.",
		}, []string{"algorithm"}),

		Disconnected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "citymst_disconnected_total",
			Help: "Runs whose tree did not span every city.",
		}, []string{"algorithm"}),

		GraphCities: f.NewGauge(prometheus.GaugeOpts{
			Name: "citymst_graph_cities",
			Help: "Cities in the Graph Store after the last load.",
		}),

		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Name: "citymst_graph_edges",
			Help: "Edges in the Graph Store after the last load.",
		}),

		SkippedLines: f.NewCounter(prometheus.CounterOpts{
			Name: "citymst_skipped_lines_total",
			Help: "Malformed input lines skipped by the loader.",
		}),
	}
}

// ObserveRun records one engine result.
func (r *Recorder) ObserveRun(res prim_kruskal.Result) {
	if r == nil {
		return
	}
	r.Runs.WithLabelValues(res.Algorithm).Inc()
	r.RunSeconds.WithLabelValues(res.Algorithm).Observe(res.ElapsedSeconds())
	r.TreeCost.WithLabelValues(res.Algorithm).Set(float64(res.TotalCost))
	if res.Disconnected {
		r.Disconnected.WithLabelValues(res.Algorithm).Inc()
	}
}

// ObserveLoad records the outcome of a load.
func (r *Recorder) ObserveLoad(sum loader.Summary) {
	if r == nil {
		return
	}
	r.GraphCities.Set(float64(sum.Cities))
	r.GraphEdges.Set(float64(sum.Edges))
	r.SkippedLines.Add(float64(len(sum.Skipped)))
}

// WriteTextfile dumps g to path in the Prometheus text format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return errors.Annotatef(prometheus.WriteToTextfile(path, g), "write metrics to %s", path)
}
