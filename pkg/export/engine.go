// Package export renders structured data to canonical YAML and flattened
// CSV, and checks that the emitted YAML round-trips to the same structured
// data. Output is deterministic: key order follows the data's own order and
// strings are quoted only when leaving them plain would change their
// meaning.
package export

import "github.com/goliatone/go-yamlform/pkg/schema"

// Option customises the engine.
type Option func(*Engine)

// WithIndent overrides the YAML indent width (default 2).
func WithIndent(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.indent = width
		}
	}
}

// WithCSVHeader controls whether ToCSV emits the path,value header row
// (default on).
func WithCSVHeader(enabled bool) Option {
	return func(e *Engine) {
		e.csvHeader = enabled
	}
}

// Engine converts structured data into the two export formats.
type Engine struct {
	indent    int
	csvHeader bool
}

// New constructs an engine with the default settings.
func New(options ...Option) *Engine {
	e := &Engine{indent: 2, csvHeader: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Validate re-parses the engine's own YAML output for data and deep-compares
// it against the original, kind by kind. A nil error means the round-trip
// reproduced the structured data exactly.
func (e *Engine) Validate(data *schema.Map) error {
	text, err := e.ToYAML(data)
	if err != nil {
		return err
	}
	return e.ValidateText(data, text)
}
