// Package engine wires a chord source through the translator and
// formatter to an output sink — the top-level pipeline the CLI and any
// other embedder drive.
package engine

import (
	"strings"

	"stenoengine/internal/chord"
	"stenoengine/internal/dictionary"
	"stenoengine/internal/formatter"
	"stenoengine/internal/metrics"
	"stenoengine/internal/orthography"
	"stenoengine/internal/output"
	"stenoengine/internal/translator"
	"stenoengine/pkg/logger"
)

// Engine combines the translator, formatter, and output sink into the
// complete capture-translate-format-display pipeline, plus stroke/
// translation logging and metrics collection that sit outside that
// pipeline proper.
type Engine struct {
	dict       *dictionary.Dictionary
	translator *translator.Translator
	formatter  *formatter.Formatter
	metrics    *metrics.Collector

	logStrokes               bool
	logTranslations          bool
	translationLogHandle     int
	haveTranslationLogHandle bool
}

// New constructs a pipeline with an empty dictionary, undo length 30 (the
// reference engine's own constant — deep enough to backtrack through a
// sentence of corrections), table-less formatter, and a null output sink.
func New() *Engine {
	d := dictionary.New()
	tr := translator.New()
	tr.SetUndoLength(30)
	tr.SetDictionary(d)

	f := formatter.New()
	tr.AddListener(f.Format)

	e := &Engine{dict: d, translator: tr, formatter: f}
	tr.AddListener(func(undo, do []*translator.Translation, _ *translator.Translation) {
		if e.metrics != nil {
			e.metrics.ObserveTranslation(len(undo), len(do))
		}
	})
	return e
}

// SetOutput directs the formatter's rendering to sink.
func (e *Engine) SetOutput(sink output.Sink) { e.formatter.SetSink(sink) }

// SetOrthographyTable wires an irregular-inflection override table into
// the formatter's suffix handling.
func (e *Engine) SetOrthographyTable(t *orthography.Table) { e.formatter.SetTable(t) }

// SetMetrics attaches a Collector that future strokes/translations/undos
// are recorded against. Pass nil to stop recording.
func (e *Engine) SetMetrics(c *metrics.Collector) { e.metrics = c }

// Metrics returns the attached Collector, or nil if none was set.
func (e *Engine) Metrics() *metrics.Collector { return e.metrics }

// ProcessStroke feeds one chord through the pipeline.
func (e *Engine) ProcessStroke(c chord.Chord) {
	if e.logStrokes {
		logger.Info("stroke", "keys", strings.Join(keyStrings(c), " "))
	}
	if e.metrics != nil {
		e.metrics.ObserveStroke()
	}
	e.translator.Translate(c)
}

func keyStrings(c chord.Chord) []string {
	keys := c.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

// LoadDictionaries replaces the engine's dictionary with a fresh stack
// loaded from paths, later paths overriding earlier ones on key collision.
func (e *Engine) LoadDictionaries(paths ...string) error {
	d, err := dictionary.LoadStack(paths...)
	if err != nil {
		return err
	}
	e.dict = d
	e.translator.SetDictionary(d)
	return nil
}

// AddTranslation inserts a single dictionary entry.
func (e *Engine) AddTranslation(key dictionary.Key, value string) { e.translator.AddTranslation(key, value) }

// AddTranslations inserts a batch of "/"-joined-key dictionary entries.
func (e *Engine) AddTranslations(m map[string]string) { e.translator.AddTranslations(m) }

// RemoveTranslations deletes the given dictionary entries.
func (e *Engine) RemoveTranslations(keys []dictionary.Key) { e.translator.RemoveTranslations(keys) }

// SetLogStrokes toggles per-stroke structured logging.
func (e *Engine) SetLogStrokes(yes bool) { e.logStrokes = yes }

// SetLogTranslations toggles per-translation structured logging by
// registering or unregistering a dedicated translator listener —
// mirroring the reference engine's add_listener/remove_listener toggle
// rather than a branch inside a single always-registered listener.
func (e *Engine) SetLogTranslations(yes bool) {
	if yes && !e.haveTranslationLogHandle {
		e.translationLogHandle = e.translator.AddListener(e.logTranslation)
		e.haveTranslationLogHandle = true
		e.logTranslations = true
		return
	}
	if !yes && e.haveTranslationLogHandle {
		e.translator.RemoveListener(e.translationLogHandle)
		e.haveTranslationLogHandle = false
		e.logTranslations = false
	}
}

func (e *Engine) logTranslation(undo, do []*translator.Translation, prev *translator.Translation) {
	logger.Info("translation", "undo", len(undo), "do", len(do))
}
