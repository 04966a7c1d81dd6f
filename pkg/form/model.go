package form

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goliatone/go-yamlform/pkg/schema"
)

// Model pairs one inferred schema with the session's value tree. The schema
// is immutable once loaded; the value tree is seeded from template defaults
// and mutated only through Set. Each editing session owns exactly one Model
// and the model holds no global state.
type Model struct {
	sch    *schema.Schema
	root   *valueNode
	locked bool
}

// valueNode mirrors one schema field. Exactly one of scalar, list, or
// children is active depending on the field kind.
type valueNode struct {
	field    *schema.Field
	scalar   any
	list     []any
	children []*valueNode
}

// New constructs a model and loads the supplied schema.
func New(sch *schema.Schema) (*Model, error) {
	m := &Model{}
	if err := m.Load(sch); err != nil {
		return nil, err
	}
	return m, nil
}

// Load replaces the schema and reseeds the value tree from the template
// defaults. It fails with ErrLocked while an export is running.
func (m *Model) Load(sch *schema.Schema) error {
	if m.locked {
		return ErrLocked
	}
	if sch == nil {
		return fmt.Errorf("form: schema is required")
	}
	m.sch = sch
	m.root = seed(&sch.Root)
	return nil
}

// Reset discards all entered values and reseeds from the defaults.
func (m *Model) Reset() error {
	if m.locked {
		return ErrLocked
	}
	if m.sch == nil {
		return fmt.Errorf("form: no schema loaded")
	}
	m.root = seed(&m.sch.Root)
	return nil
}

// Schema returns the loaded schema.
func (m *Model) Schema() *schema.Schema {
	return m.sch
}

// RootKey returns the template's top-level key.
func (m *Model) RootKey() string {
	if m.sch == nil {
		return ""
	}
	return m.sch.RootKey
}

func seed(field *schema.Field) *valueNode {
	node := &valueNode{field: field}
	switch {
	case field.Kind.Scalar():
		node.scalar = field.Default
		if node.scalar == nil {
			node.scalar = ""
		}
	case field.Kind == schema.KindList && field.Elem != schema.KindMapping:
		if defaults, ok := field.Default.([]any); ok {
			node.list = append([]any(nil), defaults...)
		}
	default:
		node.children = make([]*valueNode, len(field.Children))
		for i := range field.Children {
			node.children[i] = seed(&field.Children[i])
		}
	}
	return node
}

// Get resolves a path and returns the current value: scalars as themselves,
// scalar lists as a copied []any, mappings and mapping lists as a fresh
// structured-data projection. No interior reference escapes the model.
func (m *Model) Get(path Path) (any, error) {
	if m.sch == nil {
		return nil, fmt.Errorf("form: no schema loaded")
	}
	node, elem, err := m.resolve(path)
	if err != nil {
		return nil, err
	}
	if elem >= 0 {
		return node.list[elem], nil
	}
	return project(node), nil
}

// Set writes a value at path after checking it against the field's frozen
// kind. An empty string is accepted for every scalar kind and means
// "unset". On failure the prior value is retained.
func (m *Model) Set(path Path, value any) error {
	if m.sch == nil {
		return fmt.Errorf("form: no schema loaded")
	}
	node, elem, err := m.resolve(path)
	if err != nil {
		return err
	}

	field := node.field
	switch {
	case elem >= 0:
		normalized, got, ok := normalizeScalar(field.Elem, value)
		if !ok {
			return &TypeMismatchError{Path: path, Want: field.Elem, Got: got}
		}
		node.list[elem] = normalized
		return nil

	case field.Kind.Scalar():
		normalized, got, ok := normalizeScalar(field.Kind, value)
		if !ok {
			return &TypeMismatchError{Path: path, Want: field.Kind, Got: got}
		}
		node.scalar = normalized
		return nil

	case field.Kind == schema.KindList && field.Elem != schema.KindMapping:
		elems, ok := toSlice(value)
		if !ok {
			return &TypeMismatchError{Path: path, Want: schema.KindList, Got: schema.Classify(value)}
		}
		normalized := make([]any, len(elems))
		for i, e := range elems {
			v, got, ok := normalizeScalar(field.Elem, e)
			if !ok {
				return &TypeMismatchError{Path: path.Child(strconv.Itoa(i)), Want: field.Elem, Got: got}
			}
			normalized[i] = v
		}
		node.list = normalized
		return nil

	default:
		return fmt.Errorf("form: %s: %s fields cannot be assigned directly", path, field.Kind)
	}
}

// StructuredData projects the value tree into the ordered nested structure
// consumed by the export engine, with the root key as the single top-level
// entry.
func (m *Model) StructuredData() *schema.Map {
	out := schema.NewMap()
	if m.sch == nil {
		return out
	}
	out.Set(m.sch.RootKey, project(m.root))
	return out
}

// Export runs fn against the current structured data while holding the
// model's export lock, so Load and Reset cannot swap state mid-export.
func (m *Model) Export(fn func(*schema.Map) error) error {
	if fn == nil {
		return fmt.Errorf("form: export callback is required")
	}
	m.locked = true
	defer func() { m.locked = false }()
	return fn(m.StructuredData())
}

func project(node *valueNode) any {
	switch {
	case node.field.Kind.Scalar():
		return node.scalar
	case node.field.Kind == schema.KindList && node.field.Elem != schema.KindMapping:
		return append([]any(nil), node.list...)
	case node.field.Kind == schema.KindList:
		out := make([]any, len(node.children))
		for i, child := range node.children {
			out[i] = project(child)
		}
		return out
	default:
		out := schema.NewMap()
		for _, child := range node.children {
			out.Set(child.field.Key, project(child))
		}
		return out
	}
}

// resolve walks the value tree along path. The second result is the element
// index when the path ends inside a scalar list, -1 otherwise.
func (m *Model) resolve(path Path) (*valueNode, int, error) {
	node := m.root
	for i, segment := range path {
		field := node.field
		switch {
		case field.Kind == schema.KindMapping:
			child := childByKey(node, segment)
			if child == nil {
				return nil, -1, &PathError{Path: path}
			}
			node = child

		case field.Kind == schema.KindList && field.Elem == schema.KindMapping:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node.children) {
				return nil, -1, &PathError{Path: path}
			}
			node = node.children[idx]

		case field.Kind == schema.KindList:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node.list) || i != len(path)-1 {
				return nil, -1, &PathError{Path: path}
			}
			return node, idx, nil

		default:
			return nil, -1, &PathError{Path: path}
		}
	}
	return node, -1, nil
}

func childByKey(node *valueNode, key string) *valueNode {
	for _, child := range node.children {
		if child.field.Key == key {
			return child
		}
	}
	return nil
}

// normalizeScalar checks value against the wanted scalar kind and converts
// it to the canonical representation (int64, float64, bool, string). The
// returned kind is the value's classification, for diagnostics.
func normalizeScalar(want schema.Kind, value any) (any, schema.Kind, bool) {
	if s, ok := value.(string); ok && s == "" {
		// Empty string is the universal "unset" marker.
		return "", schema.KindString, true
	}

	switch want {
	case schema.KindString:
		switch v := value.(type) {
		case nil:
			return "", schema.KindString, true
		case string:
			return v, schema.KindString, true
		}
	case schema.KindBool:
		if b, ok := value.(bool); ok {
			return b, schema.KindBool, true
		}
	case schema.KindInt:
		if i, ok := toInt64(value); ok {
			return i, schema.KindInt, true
		}
	case schema.KindFloat:
		if f, ok := toFloat64(value); ok {
			return f, schema.KindFloat, true
		}
	}
	return nil, schema.Classify(value), false
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	}
	return 0, false
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		if i, ok := toInt64(value); ok {
			return float64(i), true
		}
	}
	return 0, false
}

func toSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}
