package export

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-yamlform/pkg/schema"
)

// ValidationError reports the first position, in depth-first document
// order, where re-parsed YAML output disagrees with the original structured
// data. It flags the export rather than blocking it; the caller decides
// what to do with the diagnostic.
type ValidationError struct {
	// Path is the dotted path of the mismatch.
	Path string
	// Reason describes the disagreement.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "export: round-trip mismatch: " + e.Reason
	}
	return fmt.Sprintf("export: round-trip mismatch at %s: %s", e.Path, e.Reason)
}

// ValidateText re-parses text and deep-compares it against data. Numeric
// values must match in both value and kind; an integer that comes back as a
// float is a mismatch even when the magnitudes agree.
func (e *Engine) ValidateText(data *schema.Map, text string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return &ValidationError{Reason: fmt.Sprintf("output does not parse: %v", err)}
	}
	parsed, err := schema.FromNode(&doc)
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("output does not decode: %v", err)}
	}
	return compareValues("", data, parsed)
}

func compareValues(path string, want, got any) error {
	switch w := want.(type) {
	case *schema.Map:
		g, ok := got.(*schema.Map)
		if !ok {
			return mismatch(path, "expected mapping, re-parsed as %s", describe(got))
		}
		if w.Len() != g.Len() {
			return mismatch(path, "mapping has %d keys, re-parsed with %d", w.Len(), g.Len())
		}
		for i, entry := range w.Entries() {
			other := g.Entries()[i]
			childPath := joinPath(path, entry.Key)
			if entry.Key != other.Key {
				return mismatch(childPath, "expected key %q at position %d, re-parsed as %q", entry.Key, i, other.Key)
			}
			if err := compareValues(childPath, entry.Value, other.Value); err != nil {
				return err
			}
		}
		return nil

	case []any:
		g, ok := got.([]any)
		if !ok {
			return mismatch(path, "expected list, re-parsed as %s", describe(got))
		}
		if len(w) != len(g) {
			return mismatch(path, "list has %d elements, re-parsed with %d", len(w), len(g))
		}
		for i := range w {
			if err := compareValues(joinPath(path, fmt.Sprintf("%d", i)), w[i], g[i]); err != nil {
				return err
			}
		}
		return nil

	case float64:
		g, ok := got.(float64)
		if !ok {
			return mismatch(path, "expected float %v, re-parsed as %s", w, describe(got))
		}
		if math.IsNaN(w) && math.IsNaN(g) {
			return nil
		}
		if w != g {
			return mismatch(path, "expected float %v, re-parsed as %v", w, g)
		}
		return nil

	default:
		if want != got {
			return mismatch(path, "expected %s, re-parsed as %s", describe(want), describe(got))
		}
		return nil
	}
}

func mismatch(path, format string, args ...any) *ValidationError {
	return &ValidationError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func describe(value any) string {
	switch v := value.(type) {
	case *schema.Map:
		return "mapping"
	case []any:
		return "list"
	case string:
		return fmt.Sprintf("string %q", v)
	case int64:
		return fmt.Sprintf("integer %d", v)
	case float64:
		return fmt.Sprintf("float %v", v)
	case bool:
		return fmt.Sprintf("boolean %v", v)
	default:
		return fmt.Sprintf("%T %v", value, value)
	}
}
