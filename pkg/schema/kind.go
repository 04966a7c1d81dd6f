package schema

import "math"

// Kind is the closed set of value shapes a field can take. It is assigned
// once during inference and never changes for the lifetime of a session.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
	KindMapping
)

// String reports the human-readable kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindList:
		return "list"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Scalar reports whether the kind is a leaf scalar.
func (k Kind) Scalar() bool {
	switch k {
	case KindString, KindInt, KindFloat, KindBool:
		return true
	default:
		return false
	}
}

// Classify maps a decoded value onto its Kind. Precedence follows the rules
// YAML scalars demand once decoded: booleans before integers, integers
// before floats (an integer-valued float classifies as an integer),
// sequences and mappings before the string fallback. Nil classifies as
// string; it stands in for the empty default.
//
// Inference does not use Classify: it resolves scalars by their YAML tag,
// so a literal 8.0 freezes as a float field even though Classify(8.0)
// returns KindInt. Classify's integral-float rule instead governs values
// written into an already-frozen field, letting 8.0 land in an integer
// field.
func Classify(value any) Kind {
	switch v := value.(type) {
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32:
		return classifyFloat(float64(v))
	case float64:
		return classifyFloat(v)
	case []any, []string:
		return KindList
	case map[string]any, *Map:
		return KindMapping
	default:
		return KindString
	}
}

func classifyFloat(v float64) Kind {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return KindFloat
	}
	if v == math.Trunc(v) {
		return KindInt
	}
	return KindFloat
}

// ElemKind reports the common scalar kind of a sequence's elements,
// defaulting to string when the elements disagree. The second result is
// false when any element is not a scalar.
func ElemKind(values []any) (Kind, bool) {
	elem := KindString
	for i, v := range values {
		k := Classify(v)
		if !k.Scalar() {
			return KindString, false
		}
		if i == 0 {
			elem = k
			continue
		}
		if k != elem {
			elem = KindString
		}
	}
	return elem, true
}
