package schema

import "gopkg.in/yaml.v3"

// Map is an insertion-ordered string-keyed mapping. Structured data uses it
// instead of a Go map so document order is an explicit, checkable property
// of the value rather than an accident of iteration. Values are scalars
// (string, int64, float64, bool), []any, or nested *Map.
type Map struct {
	entries []Entry
	index   map[string]int
}

// Entry is one key/value pair of a Map.
type Entry struct {
	Key   string
	Value any
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

// Set appends the pair, or replaces the value in place when the key already
// exists. Replacement keeps the original position.
func (m *Map) Set(key string, value any) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// Get looks up the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Len reports the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns the pairs in insertion order. The slice is shared; callers
// must not mutate it.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	return m.entries
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Equal reports whether both maps hold the same keys in the same order with
// deeply equal values. Value types must match exactly; an int64 never equals
// a float64 of the same magnitude.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, e := range m.Entries() {
		oe := other.Entries()[i]
		if e.Key != oe.Key || !valueEqual(e.Value, oe.Value) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case *Map:
		bv, ok := b.(*Map)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// FromNode converts a parsed yaml.Node into the structured-data value
// domain: scalars by resolved tag, sequences to []any, mappings to ordered
// *Map. Export validation uses it to re-read emitted YAML in a form
// directly comparable to the original structured data.
func FromNode(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	if n == nil {
		return nil, schemaErrorf("", 0, "nil node")
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, schemaErrorf("", 0, "document is empty")
		}
		return FromNode(n.Content[0])

	case yaml.ScalarNode:
		value, _ := scalarValue(n)
		return value, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, elem := range n.Content {
			value, err := FromNode(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil

	case yaml.MappingNode:
		out := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := resolveAlias(n.Content[i])
			if keyNode.ShortTag() != "!!str" {
				return nil, schemaErrorf("", keyNode.Line, "mapping key is not a string")
			}
			value, err := FromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out.Set(keyNode.Value, value)
		}
		return out, nil

	default:
		return nil, schemaErrorf("", n.Line, "unsupported node")
	}
}
