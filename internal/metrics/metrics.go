// Package metrics collects in-process counters and histograms describing
// the translation pipeline's activity. Nothing here is served over HTTP —
// a Collector is dumped on demand (e.g. a CLI --dump-metrics flag) via
// WriteText.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector wraps a private prometheus.Registry with the counters and
// histogram the engine records against on every stroke and translation.
type Collector struct {
	registry *prometheus.Registry

	strokes        prometheus.Counter
	translations   prometheus.Counter
	undoEvents     prometheus.Counter
	backtrackDepth prometheus.Histogram
}

// New registers a fresh set of metrics on a private registry — never the
// global default registry, since this collector is never served.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		strokes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stenoengine_strokes_total",
			Help: "Total number of chords fed into the translator.",
		}),
		translations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stenoengine_translations_total",
			Help: "Total number of new translations produced.",
		}),
		undoEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stenoengine_undo_events_total",
			Help: "Total number of translations retracted by a backtrack or correction.",
		}),
		backtrackDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stenoengine_backtrack_depth",
			Help:    "Number of prior translations replaced by a single new one.",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		}),
	}
	c.registry.MustRegister(c.strokes, c.translations, c.undoEvents, c.backtrackDepth)
	return c
}

// ObserveStroke records one chord handed to the translator.
func (c *Collector) ObserveStroke() { c.strokes.Inc() }

// ObserveTranslation records the outcome of one translate call: the
// number of translations retracted (undo) and produced (do). A non-empty
// undo also counts as an undo event, and its length feeds the backtrack
// depth histogram.
func (c *Collector) ObserveTranslation(undoLen, doLen int) {
	c.translations.Add(float64(doLen))
	if undoLen > 0 {
		c.undoEvents.Inc()
		c.backtrackDepth.Observe(float64(undoLen))
	}
}

// WriteText dumps every registered metric in Prometheus text exposition
// format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
