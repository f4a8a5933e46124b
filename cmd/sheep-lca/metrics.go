package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rshade/sheep-lca/internal/lca"
)

const metricsNamespace = "sheep_lca"

// runMetrics is a private registry filled after a batch and written in the
// node_exporter textfile format.
type runMetrics struct {
	reg *prometheus.Registry

	farms          prometheus.Counter
	batchSeconds   prometheus.Gauge
	farmSeconds    prometheus.Histogram
	climate        *prometheus.GaugeVec
	eutrophication *prometheus.GaugeVec
	airQuality     *prometheus.GaugeVec
}

func newRunMetrics() *runMetrics {
	m := &runMetrics{
		reg: prometheus.NewRegistry(),
		farms: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "farms_evaluated_total",
			Help:      "Number of farms evaluated.",
		}),
		batchSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of the last batch.",
		}),
		farmSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "farm_duration_seconds",
			Help:      "Time spent evaluating one farm.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		}),
		climate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "climate_emissions_kg",
			Help:      "Climate change emissions per farm and category.",
		}, []string{"farm_id", "category"}),
		eutrophication: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "eutrophication_kg_po4e",
			Help:      "Total eutrophication potential per farm.",
		}, []string{"farm_id"}),
		airQuality: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "air_quality_kg_nh3",
			Help:      "Total ammonia emissions per farm.",
		}, []string{"farm_id"}),
	}
	m.reg.MustRegister(m.farms, m.batchSeconds, m.farmSeconds, m.climate, m.eutrophication, m.airQuality)
	return m
}

func (m *runMetrics) observe(results []lca.Result, elapsed time.Duration) {
	m.batchSeconds.Set(elapsed.Seconds())
	for _, r := range results {
		id := strconv.Itoa(r.Totals.FarmID)
		m.farms.Inc()
		m.farmSeconds.Observe(r.Duration.Seconds())
		for cat, v := range r.Totals.Climate.Dictionary() {
			m.climate.WithLabelValues(id, cat).Set(v)
		}
		m.eutrophication.WithLabelValues(id).Set(r.Totals.Eutrophication.Total())
		m.airQuality.WithLabelValues(id).Set(r.Totals.AirQuality.Total())
	}
}

func (m *runMetrics) writeTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
